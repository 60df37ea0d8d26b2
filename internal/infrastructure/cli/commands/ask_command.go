package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/doeshing/iris-go/internal/app"
)

// NewAskCommand creates the ask command for one-shot requests.
func NewAskCommand(container *app.Container) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "ask [command text]",
		Short: "Route a single command and print the reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.AssistService == nil {
				return fmt.Errorf(ErrAssistServiceUnavailable)
			}
			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			result, err := container.AssistService.ProcessCommand(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Reply)
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Abort the request after this duration")
	return cmd
}
