package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/doeshing/iris-go/internal/app"
)

// Session is the interactive read-route-print loop.
type Session struct {
	in        *bufio.Reader
	out       io.Writer
	container *app.Container
}

// NewSession constructs a session referencing stdio.
func NewSession(container *app.Container, in io.Reader, out io.Writer) *Session {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Session{
		in:        bufio.NewReader(in),
		out:       out,
		container: container,
	}
}

// Run reads commands until the user says goodbye or input ends. Each line is
// one utterance; replies print in full before the next prompt.
func (s *Session) Run(ctx context.Context) error {
	s.banner(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, "you> ")
		line, err := s.in.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				fmt.Fprintln(s.out)
				return nil
			}
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		spinner := NewSpinner(s.out)
		spinner.Start()
		result, err := s.container.AssistService.ProcessCommand(ctx, line)
		spinner.Stop()
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			continue
		}

		RenderResult(s.out, result)
		if result.Done {
			return nil
		}
	}
}

func (s *Session) banner(ctx context.Context) {
	name := s.container.Config.Assistant.Name
	if name == "" {
		name = "I.R.I.S"
	}
	fmt.Fprintf(s.out, "%s ready. Network: %s\n", name, s.container.Network.Status(ctx))
	fmt.Fprintln(s.out, "Type a command, or 'exit' to quit.")
}
