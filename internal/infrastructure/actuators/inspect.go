package actuators

import (
	"crypto/sha256"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/doeshing/iris-go/internal/ports"
)

// suspiciousContent flags shell and code constructs that rarely appear in
// benign files a user would ask about.
var suspiciousContent = []*regexp.Regexp{
	regexp.MustCompile(`(?i)eval\s*\(`),
	regexp.MustCompile(`(?i)exec\s*\(`),
	regexp.MustCompile(`(?i)system\s*\(`),
	regexp.MustCompile(`(?i)shell_exec`),
	regexp.MustCompile(`(?i)base64_decode`),
	regexp.MustCompile(`(?i)rm\s+-rf\s+/`),
	regexp.MustCompile(`(?i)chmod\s+777`),
	regexp.MustCompile(`(?i)wget.*\|.*sh`),
	regexp.MustCompile(`(?i)curl.*\|.*bash`),
	regexp.MustCompile(`(?i)nc\s+-e`),
	regexp.MustCompile(`(?i)password\s*=`),
	regexp.MustCompile(`(?i)api[_-]?key\s*=`),
}

var phishingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)paypal.*verify`),
	regexp.MustCompile(`(?i)amazon.*account.*suspend`),
	regexp.MustCompile(`(?i)bank.*urgent`),
	regexp.MustCompile(`(?i)password.*expire`),
	regexp.MustCompile(`(?i)verify.*identity`),
	regexp.MustCompile(`(?i)suspended.*account`),
}

var suspiciousTLDs = []string{".tk", ".ml", ".ga", ".cf", ".gq", ".xyz", ".top", ".work", ".click"}

const maxScanBytes = 1 << 20

// Inspector analyzes local files and checks links before the user opens
// them.
type Inspector struct {
	run        CommandRunner
	httpClient *http.Client
	log        ports.Logger
}

func NewInspector(log ports.Logger) *Inspector {
	return &Inspector{
		run: ShellRunner(),
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		log: log,
	}
}

// AnalyzeFile reports size, type, SHA-256 and any suspicious content
// patterns found in the first megabyte.
func (ins *Inspector) AnalyzeFile(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "File does not exist: " + path
		}
		return "Could not analyze " + path + ": " + err.Error()
	}
	if info.IsDir() {
		return path + " is a directory, not a file."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "File analysis of %s:\n", path)
	fmt.Fprintf(&b, "Size: %d bytes\n", info.Size())
	fmt.Fprintf(&b, "Modified: %s\n", info.ModTime().Format(time.RFC3339))

	if out, err := ins.run(fmt.Sprintf("file -b '%s'", path)); err == nil && out != "" {
		fmt.Fprintf(&b, "Type: %s\n", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(&b, "Could not read contents: %s\n", err.Error())
		return b.String()
	}
	fmt.Fprintf(&b, "SHA-256: %x\n", sha256.Sum256(data))

	if len(data) > maxScanBytes {
		data = data[:maxScanBytes]
	}
	findings := scanContent(data)
	if len(findings) == 0 {
		b.WriteString("No suspicious patterns found.")
	} else {
		fmt.Fprintf(&b, "WARNING: %d suspicious pattern(s):\n", len(findings))
		for _, f := range findings {
			b.WriteString("  - " + f + "\n")
		}
	}
	return b.String()
}

func scanContent(data []byte) []string {
	var findings []string
	for _, pattern := range suspiciousContent {
		if match := pattern.Find(data); match != nil {
			findings = append(findings, fmt.Sprintf("%s (matched %q)", pattern.String(), string(match)))
		}
	}
	return findings
}

// CheckLink inspects a URL's structure, probes it with a HEAD request and
// flags phishing indicators. It reports findings, it does not block.
func (ins *Inspector) CheckLink(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return "That doesn't look like a valid URL: " + rawURL
	}

	var threats, warnings []string

	host := parsed.Hostname()
	if net.ParseIP(host) != nil {
		threats = append(threats, "URL uses an IP address instead of a domain name")
	}
	for _, tld := range suspiciousTLDs {
		if strings.HasSuffix(host, tld) {
			warnings = append(warnings, "suspicious top-level domain: "+tld)
		}
	}
	if parts := strings.Split(host, "."); len(parts) > 4 {
		warnings = append(warnings, fmt.Sprintf("many subdomains (%d)", len(parts)))
	}
	if strings.Contains(rawURL, "@") {
		threats = append(threats, "URL contains an @ symbol, a common credential-phishing trick")
	}
	if parsed.Scheme != "https" {
		warnings = append(warnings, "not using HTTPS, the connection is unencrypted")
	}
	for _, pattern := range phishingPatterns {
		if pattern.MatchString(rawURL) {
			threats = append(threats, "phishing-style wording in the URL")
			break
		}
	}

	redirects, probeErr := ins.followRedirects(rawURL)
	if probeErr != nil {
		warnings = append(warnings, "could not reach the URL: "+probeErr.Error())
	} else if redirects > 3 {
		warnings = append(warnings, fmt.Sprintf("excessive redirects (%d)", redirects))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Link check for %s:\n", rawURL)
	switch {
	case len(threats) > 0:
		b.WriteString("Verdict: DANGEROUS\n")
	case len(warnings) > 0:
		b.WriteString("Verdict: CAUTION\n")
	default:
		b.WriteString("Verdict: looks safe\n")
	}
	for _, t := range threats {
		b.WriteString("  ! " + t + "\n")
	}
	for _, w := range warnings {
		b.WriteString("  - " + w + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// followRedirects walks up to ten HEAD redirects and returns how many
// hops the URL takes.
func (ins *Inspector) followRedirects(rawURL string) (int, error) {
	current := rawURL
	for hops := 0; hops < 10; hops++ {
		resp, err := ins.headRequest(current)
		if err != nil {
			return hops, err
		}
		location := resp.Header.Get("Location")
		resp.Body.Close()

		if resp.StatusCode < 300 || resp.StatusCode >= 400 || location == "" {
			return hops, nil
		}
		current = location
	}
	return 10, nil
}

func (ins *Inspector) headRequest(target string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodHead, target, nil)
	if err != nil {
		return nil, err
	}
	return ins.httpClient.Do(req)
}

var _ ports.FileInspector = (*Inspector)(nil)
