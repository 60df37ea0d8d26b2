package actuators

import (
	"fmt"
	"strings"
	"time"

	"github.com/doeshing/iris-go/internal/ports"
)

// Automation drives the focused window through xdotool. The short pauses
// between keystroke batches give the window manager time to deliver focus.
type Automation struct {
	run   CommandRunner
	sleep func(time.Duration)
	log   ports.Logger
}

func NewAutomation(log ports.Logger) *Automation {
	return &Automation{
		run:   ShellRunner(),
		sleep: time.Sleep,
		log:   log,
	}
}

func (a *Automation) TypeText(text string) string {
	if _, err := a.run(xdotoolType(text)); err != nil {
		return "Failed to type text: " + err.Error()
	}
	return "Typing: " + text
}

func (a *Automation) PressKey(key string) string {
	if _, err := a.run("xdotool key " + key); err != nil {
		return "Failed to press key: " + err.Error()
	}
	return "Pressed: " + key
}

// ExecuteInTerminal types the command into the focused terminal and hits
// Return. It does not open a terminal itself.
func (a *Automation) ExecuteInTerminal(command string) string {
	if _, err := a.run(xdotoolType(command)); err != nil {
		return "Failed to execute in terminal: " + err.Error()
	}
	a.sleep(100 * time.Millisecond)
	if _, err := a.run("xdotool key Return"); err != nil {
		return "Failed to execute in terminal: " + err.Error()
	}
	return "Executed in terminal: " + command
}

// NavigateToURL focuses the browser address bar, types the URL and submits
// it. The scheme defaults to https.
func (a *Automation) NavigateToURL(url string) string {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}

	a.sleep(500 * time.Millisecond)
	if _, err := a.run("xdotool key ctrl+l"); err != nil {
		return "Failed to navigate: " + err.Error()
	}
	a.sleep(200 * time.Millisecond)
	if _, err := a.run(xdotoolType(url)); err != nil {
		return "Failed to navigate: " + err.Error()
	}
	a.sleep(200 * time.Millisecond)
	if _, err := a.run("xdotool key Return"); err != nil {
		return "Failed to navigate: " + err.Error()
	}
	return "Navigating to: " + url
}

// SearchInBrowser types the query into the address bar, letting the
// browser's default search engine handle it.
func (a *Automation) SearchInBrowser(query string) string {
	a.sleep(500 * time.Millisecond)
	if _, err := a.run("xdotool key ctrl+l"); err != nil {
		return "Failed to search: " + err.Error()
	}
	a.sleep(200 * time.Millisecond)
	if _, err := a.run(xdotoolType(query)); err != nil {
		return "Failed to search: " + err.Error()
	}
	a.sleep(200 * time.Millisecond)
	if _, err := a.run("xdotool key Return"); err != nil {
		return "Failed to search: " + err.Error()
	}
	return "Searching for: " + query
}

// xdotoolType builds the type command with single quotes escaped so
// arbitrary text cannot break out of the argument.
func xdotoolType(text string) string {
	escaped := strings.ReplaceAll(text, "'", `'\''`)
	return fmt.Sprintf("xdotool type --delay 50 '%s'", escaped)
}

var _ ports.AutomationActuator = (*Automation)(nil)
