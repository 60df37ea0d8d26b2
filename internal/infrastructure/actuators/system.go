package actuators

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/doeshing/iris-go/internal/domain"
	"github.com/doeshing/iris-go/internal/pkg/fuzzy"
	"github.com/doeshing/iris-go/internal/ports"
)

// appMapping lists each launchable application: the canonical key, the
// spoken variants transcription tends to produce, the binary to run, and
// the name read back to the user.
type appMapping struct {
	canonical string
	variants  []string
	command   string
	display   string
}

var appMappings = []appMapping{
	{"firefox", []string{"firefox", "fire fox", "mozilla", "fox"}, "firefox", "Firefox"},
	{"chrome", []string{"chrome", "google chrome", "google-chrome"}, "google-chrome", "Chrome"},
	{"brave", []string{"brave", "brave browser"}, "brave-browser", "Brave"},
	{"wireshark", []string{"wireshark", "wire shark", "shark"}, "wireshark", "Wireshark"},
	{"burpsuite", []string{"burpsuite", "burp suite", "burp"}, "burpsuite", "Burp Suite"},
	{"metasploit", []string{"metasploit", "meta sploit", "msfconsole", "msf"}, "msfconsole", "Metasploit"},
	{"terminal", []string{"terminal", "gnome-terminal", "console"}, "gnome-terminal", "Terminal"},
	{"calculator", []string{"calculator", "calc", "gnome-calculator"}, "gnome-calculator", "Calculator"},
	{"nautilus", []string{"nautilus", "files", "file manager", "folders"}, "nautilus", "File Manager"},
	{"gedit", []string{"gedit", "text editor", "editor"}, "gedit", "Text Editor"},
	{"code", []string{"code", "vs code", "visual studio code", "vscode"}, "code", "VS Code"},
	{"spotify", []string{"spotify", "music"}, "spotify", "Spotify"},
	{"gnome-control-center", []string{"gnome-control-center", "settings", "system settings"}, "gnome-control-center", "System Settings"},
	{"hydra-gtk", []string{"hydra-gtk", "hydra", "brute force", "bruteforce"}, "hydra-gtk", "Hydra"},
	{"aircrack-ng", []string{"aircrack-ng", "aircrack", "air crack"}, "aircrack-ng", "Aircrack-ng"},
	{"sqlmap", []string{"sqlmap", "sql map"}, "sqlmap", "SQLMap"},
	{"john", []string{"john", "john the ripper"}, "john", "John the Ripper"},
	{"maltego", []string{"maltego"}, "maltego", "Maltego"},
	{"beef-xss", []string{"beef-xss", "beef"}, "beef-xss", "BeEF"},
	{"ettercap", []string{"ettercap"}, "ettercap", "Ettercap"},
	{"armitage", []string{"armitage"}, "armitage", "Armitage"},
	{"ghidra", []string{"ghidra"}, "ghidra", "Ghidra"},
	{"zenmap", []string{"zenmap", "nmap"}, "zenmap", "Nmap"},
	{"ida", []string{"ida", "ida pro"}, "ida", "IDA Pro"},
	{"gdb", []string{"gdb", "debugger"}, "gdb", "GDB"},
}

// System launches applications and drives the desktop session.
type System struct {
	settings domain.SystemSettings
	run      CommandRunner
	spawn    Spawner
	log      ports.Logger
	now      func() time.Time
}

func NewSystem(settings domain.SystemSettings, log ports.Logger) *System {
	return &System{
		settings: settings,
		run:      ShellRunner(),
		spawn:    ShellSpawner(),
		log:      log,
		now:      time.Now,
	}
}

// OpenApplication resolves a spoken application name against the known
// mappings, falling back to fuzzy and phonetic matching before giving up.
func (s *System) OpenApplication(name string) string {
	original := strings.TrimSpace(name)
	cleaned := strings.ToLower(original)
	cleaned = strings.ReplaceAll(cleaned, "the ", "")
	cleaned = strings.ReplaceAll(cleaned, " web", "")
	cleaned = strings.ReplaceAll(cleaned, " browser", "")
	cleaned = strings.ReplaceAll(cleaned, " application", "")
	cleaned = strings.ReplaceAll(cleaned, " app", "")
	cleaned = strings.TrimSpace(cleaned)

	if cleaned == "" {
		return "Which application should I open?"
	}

	if mapping := matchApplication(cleaned); mapping != nil {
		if err := s.spawn(mapping.command); err != nil {
			return "I couldn't open " + mapping.display + ": " + err.Error()
		}
		return "Opening " + mapping.display
	}

	// Unknown app: try it as a binary name, with dashes then without.
	for _, candidate := range []string{
		strings.ReplaceAll(cleaned, " ", "-"),
		strings.ReplaceAll(strings.ReplaceAll(cleaned, " ", ""), "-", ""),
	} {
		if commandExists(s.run, candidate) {
			if err := s.spawn(candidate); err == nil {
				return "Opening " + original
			}
		}
	}

	return "I don't know how to open " + original + ". Make sure it's installed."
}

func matchApplication(input string) *appMapping {
	for i := range appMappings {
		for _, variant := range appMappings[i].variants {
			if input == variant || strings.Contains(input, variant) {
				return &appMappings[i]
			}
		}
	}
	for i := range appMappings {
		for _, variant := range appMappings[i].variants {
			if fuzzy.SmartMatch(input, variant) {
				return &appMappings[i]
			}
		}
	}
	return nil
}

// SetVolume adjusts the default sink through pactl, or amixer when the
// config asks for it.
func (s *System) SetVolume(direction string) string {
	var command string
	pactl := s.settings.VolumeCommand == "" || s.settings.VolumeCommand == "pactl"

	switch strings.ToLower(direction) {
	case "up", "increase":
		if pactl {
			command = "pactl set-sink-volume @DEFAULT_SINK@ +10%"
		} else {
			command = "amixer set Master 10%+"
		}
	case "down", "decrease":
		if pactl {
			command = "pactl set-sink-volume @DEFAULT_SINK@ -10%"
		} else {
			command = "amixer set Master 10%-"
		}
	case "mute":
		if pactl {
			command = "pactl set-sink-mute @DEFAULT_SINK@ toggle"
		} else {
			command = "amixer set Master toggle"
		}
	default:
		return "I don't understand that volume command"
	}

	if _, err := s.run(command); err != nil {
		return "I couldn't change the volume: " + err.Error()
	}
	return "Volume " + direction
}

// PowerCommand acknowledges the request without executing it. Shutdown and
// suspend need root and a misheard utterance must never take the machine
// down.
func (s *System) PowerCommand(action string) string {
	var message string
	switch strings.ToLower(action) {
	case "shutdown", "power off":
		message = "Shutting down the system. Goodbye!"
	case "restart", "reboot":
		message = "Restarting the system."
	case "sleep", "suspend":
		message = "Putting the system to sleep."
	default:
		return "I don't understand that power command"
	}
	return message + " (Note: Power commands require administrator privileges and are currently disabled for safety)"
}

// TakeScreenshot captures the screen into the configured directory. An
// empty path generates a timestamped filename.
func (s *System) TakeScreenshot(path string) string {
	if path == "" {
		name := fmt.Sprintf("screenshot_%d.png", s.now().UnixMilli())
		path = filepath.Join(s.settings.ScreenshotDir, name)
	}
	if _, err := s.run(fmt.Sprintf("gnome-screenshot -f '%s'", path)); err != nil {
		return "Failed to take screenshot: " + err.Error()
	}
	return "Screenshot saved as: " + path
}

func (s *System) MinimizeWindow() string {
	if _, err := s.run("xdotool getactivewindow windowminimize"); err != nil {
		return "Failed to minimize: " + err.Error()
	}
	return "Window minimized"
}

func (s *System) MaximizeWindow() string {
	if _, err := s.run("xdotool getactivewindow windowmaximize"); err != nil {
		return "Failed to maximize: " + err.Error()
	}
	return "Window maximized"
}

func (s *System) CloseWindow() string {
	if _, err := s.run("xdotool key alt+F4"); err != nil {
		return "Failed to close window: " + err.Error()
	}
	return "Window closed"
}

var _ ports.SystemActuator = (*System)(nil)
