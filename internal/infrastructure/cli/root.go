package cli

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/doeshing/iris-go/internal/app"
	"github.com/doeshing/iris-go/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command. Running iris with no arguments
// starts an interactive session; passing text routes it as a single command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	var timeout time.Duration

	root := &cobra.Command{
		Use:   "iris [command text]",
		Short: "IRIS - desktop voice assistant core",
		Long:  "IRIS routes natural-language commands to desktop actions, security tools or an AI backend.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				session := NewSession(container, nil, cmd.OutOrStdout())
				return session.Run(cmd.Context())
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
			RenderResult(cmd.OutOrStdout(), result)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().DurationVar(&timeout, "timeout", 0, "Abort a single command after this duration")

	root.AddCommand(commands.NewAskCommand(container))
	root.AddCommand(commands.NewModeCommand(container))
	root.AddCommand(commands.NewNetworkCommand(container))
	root.AddCommand(commands.NewHistoryCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	root.AddCommand(commands.NewDoctorCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	return root, nil
}
