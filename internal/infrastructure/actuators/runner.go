// Package actuators holds the outbound adapters that touch the host:
// launching applications, driving windows with xdotool, opening the
// browser, and wrapping the security tools. Every actuator shells out
// through an injectable runner so tests never spawn processes, and every
// method returns a spoken-friendly status string instead of an error.
package actuators

import (
	"bytes"
	"os/exec"
	"strings"
)

// CommandRunner executes a shell command line and returns its combined
// output once the process exits.
type CommandRunner func(command string) (string, error)

// Spawner starts a command without waiting for it. Used for launching
// GUI applications that outlive the assistant.
type Spawner func(command string) error

// ShellRunner returns a CommandRunner backed by /bin/sh -c.
func ShellRunner() CommandRunner {
	return func(command string) (string, error) {
		c := exec.Command("/bin/sh", "-c", command)
		var out bytes.Buffer
		c.Stdout = &out
		c.Stderr = &out
		err := c.Run()
		return strings.TrimSpace(out.String()), err
	}
}

// ShellSpawner returns a Spawner backed by /bin/sh -c.
func ShellSpawner() Spawner {
	return func(command string) error {
		return exec.Command("/bin/sh", "-c", command).Start()
	}
}

// commandExists checks PATH for a binary using the runner so tests can
// control the answer.
func commandExists(run CommandRunner, name string) bool {
	_, err := run("which " + name)
	return err == nil
}
