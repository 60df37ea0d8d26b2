package actuators

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/iris-go/internal/domain"
)

// fakeShell records commands and returns canned results per substring.
type fakeShell struct {
	commands []string
	spawned  []string
	fail     map[string]error
	output   map[string]string
}

func newFakeShell() *fakeShell {
	return &fakeShell{fail: map[string]error{}, output: map[string]string{}}
}

func (f *fakeShell) runner() CommandRunner {
	return func(command string) (string, error) {
		f.commands = append(f.commands, command)
		for sub, err := range f.fail {
			if strings.Contains(command, sub) {
				return "", err
			}
		}
		for sub, out := range f.output {
			if strings.Contains(command, sub) {
				return out, nil
			}
		}
		return "", nil
	}
}

func (f *fakeShell) spawner() Spawner {
	return func(command string) error {
		f.spawned = append(f.spawned, command)
		for sub, err := range f.fail {
			if strings.Contains(command, sub) {
				return err
			}
		}
		return nil
	}
}

func newTestSystem(shell *fakeShell) *System {
	s := NewSystem(domain.SystemSettings{ScreenshotDir: "/tmp/shots"}, nil)
	s.run = shell.runner()
	s.spawn = shell.spawner()
	s.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return s
}

func TestOpenApplicationKnownApp(t *testing.T) {
	tests := []struct {
		spoken  string
		command string
		reply   string
	}{
		{"firefox", "firefox", "Opening Firefox"},
		{"fire fox", "firefox", "Opening Firefox"},
		{"the firefox browser", "firefox", "Opening Firefox"},
		{"google chrome", "google-chrome", "Opening Chrome"},
		{"wire shark", "wireshark", "Opening Wireshark"},
		{"burp", "burpsuite", "Opening Burp Suite"},
		{"vs code", "code", "Opening VS Code"},
		{"files", "nautilus", "Opening File Manager"},
		{"music", "spotify", "Opening Spotify"},
	}
	for _, tt := range tests {
		shell := newFakeShell()
		sys := newTestSystem(shell)

		got := sys.OpenApplication(tt.spoken)

		if got != tt.reply {
			t.Errorf("OpenApplication(%q) = %q, want %q", tt.spoken, got, tt.reply)
		}
		if diff := cmp.Diff([]string{tt.command}, shell.spawned); diff != "" {
			t.Errorf("spawned commands for %q (-want +got):\n%s", tt.spoken, diff)
		}
	}
}

func TestOpenApplicationFuzzyMisspelling(t *testing.T) {
	shell := newFakeShell()
	sys := newTestSystem(shell)

	got := sys.OpenApplication("firefx")

	if got != "Opening Firefox" {
		t.Errorf("OpenApplication(firefx) = %q", got)
	}
}

func TestOpenApplicationUnknownFallsBackToWhich(t *testing.T) {
	shell := newFakeShell()
	sys := newTestSystem(shell)

	got := sys.OpenApplication("obscuretool xyz")

	if !strings.Contains(got, "Opening obscuretool xyz") {
		t.Errorf("fallback open failed: %q", got)
	}
	if len(shell.commands) == 0 || !strings.HasPrefix(shell.commands[0], "which ") {
		t.Errorf("expected a which probe, got %v", shell.commands)
	}
}

func TestOpenApplicationUnknownNotInstalled(t *testing.T) {
	shell := newFakeShell()
	shell.fail["which"] = errors.New("exit status 1")
	sys := newTestSystem(shell)

	got := sys.OpenApplication("obscuretool xyz")

	if !strings.Contains(got, "Make sure it's installed") {
		t.Errorf("missing install hint: %q", got)
	}
	if len(shell.spawned) != 0 {
		t.Errorf("nothing should have been spawned: %v", shell.spawned)
	}
}

func TestSetVolume(t *testing.T) {
	tests := []struct {
		direction string
		wantCmd   string
	}{
		{"up", "pactl set-sink-volume @DEFAULT_SINK@ +10%"},
		{"increase", "pactl set-sink-volume @DEFAULT_SINK@ +10%"},
		{"down", "pactl set-sink-volume @DEFAULT_SINK@ -10%"},
		{"mute", "pactl set-sink-mute @DEFAULT_SINK@ toggle"},
	}
	for _, tt := range tests {
		shell := newFakeShell()
		sys := newTestSystem(shell)

		got := sys.SetVolume(tt.direction)

		if got != "Volume "+tt.direction {
			t.Errorf("SetVolume(%q) = %q", tt.direction, got)
		}
		if diff := cmp.Diff([]string{tt.wantCmd}, shell.commands); diff != "" {
			t.Errorf("commands for %q (-want +got):\n%s", tt.direction, diff)
		}
	}
}

func TestSetVolumeAmixerFallback(t *testing.T) {
	shell := newFakeShell()
	sys := newTestSystem(shell)
	sys.settings.VolumeCommand = "amixer"

	sys.SetVolume("up")

	if diff := cmp.Diff([]string{"amixer set Master 10%+"}, shell.commands); diff != "" {
		t.Errorf("amixer command (-want +got):\n%s", diff)
	}
}

func TestSetVolumeUnknownDirection(t *testing.T) {
	sys := newTestSystem(newFakeShell())

	if got := sys.SetVolume("sideways"); got != "I don't understand that volume command" {
		t.Errorf("SetVolume(sideways) = %q", got)
	}
}

func TestPowerCommandNeverExecutes(t *testing.T) {
	shell := newFakeShell()
	sys := newTestSystem(shell)

	got := sys.PowerCommand("shutdown")

	if !strings.Contains(got, "Shutting down the system") || !strings.Contains(got, "disabled for safety") {
		t.Errorf("PowerCommand(shutdown) = %q", got)
	}
	if len(shell.commands) != 0 || len(shell.spawned) != 0 {
		t.Errorf("power command must not run anything: %v %v", shell.commands, shell.spawned)
	}
}

func TestTakeScreenshotGeneratesName(t *testing.T) {
	shell := newFakeShell()
	sys := newTestSystem(shell)

	got := sys.TakeScreenshot("")

	want := "/tmp/shots/screenshot_1700000000000.png"
	if !strings.Contains(got, want) {
		t.Errorf("TakeScreenshot() = %q, want path %q", got, want)
	}
	if len(shell.commands) != 1 || !strings.Contains(shell.commands[0], "gnome-screenshot -f") {
		t.Errorf("commands = %v", shell.commands)
	}
}

func TestWindowOps(t *testing.T) {
	shell := newFakeShell()
	sys := newTestSystem(shell)

	if got := sys.MinimizeWindow(); got != "Window minimized" {
		t.Errorf("MinimizeWindow() = %q", got)
	}
	if got := sys.MaximizeWindow(); got != "Window maximized" {
		t.Errorf("MaximizeWindow() = %q", got)
	}
	if got := sys.CloseWindow(); got != "Window closed" {
		t.Errorf("CloseWindow() = %q", got)
	}

	want := []string{
		"xdotool getactivewindow windowminimize",
		"xdotool getactivewindow windowmaximize",
		"xdotool key alt+F4",
	}
	if diff := cmp.Diff(want, shell.commands); diff != "" {
		t.Errorf("window commands (-want +got):\n%s", diff)
	}
}
