package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/iris-go/internal/app"
	"github.com/doeshing/iris-go/internal/domain"
)

// NewModeCommand creates the mode command for backend selection.
func NewModeCommand(container *app.Container) *cobra.Command {
	modeCmd := &cobra.Command{
		Use:   "mode",
		Short: "Show or change the AI backend selection mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showMode(cmd, cmd.OutOrStdout(), container)
		},
	}

	modeCmd.AddCommand(
		newModeSetCommand(container),
		newModeAutoCommand(container),
	)

	return modeCmd
}

// newModeSetCommand creates the 'mode set' subcommand
func newModeSetCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "set <gemini|grok|ollama>",
		Short: "Pin one backend for every query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backend := domain.Provider(strings.ToLower(args[0]))
			if !domain.KnownProvider(backend) {
				return fmt.Errorf("unknown backend %q (choose gemini, grok or ollama)", args[0])
			}
			container.AI.SetManualMode(true, backend)
			fmt.Fprintf(cmd.OutOrStdout(), "Manual mode: every query goes to %s.\n", backend)
			return nil
		},
	}
}

// newModeAutoCommand creates the 'mode auto' subcommand
func newModeAutoCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "auto",
		Short: "Return to network-based automatic selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			container.AI.SetManualMode(false, domain.ProviderAuto)
			fmt.Fprintln(cmd.OutOrStdout(), "Automatic mode: backend follows network conditions.")
			return nil
		},
	}
}

// showMode displays the selection mode and what the next query would use
func showMode(cmd *cobra.Command, out io.Writer, container *app.Container) error {
	mode := container.AI.Mode()
	if mode.ManualEnabled {
		fmt.Fprintf(out, "Mode: manual (%s)\n", mode.ManualSelection)
	} else {
		fmt.Fprintln(out, "Mode: automatic")
	}
	fmt.Fprintf(out, "Next query would use: %s\n", container.AI.CurrentBackend(cmd.Context()))
	return nil
}
