package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/iris-go/internal/app"
	"github.com/doeshing/iris-go/internal/domain"
)

// NewNetworkCommand creates the network command.
func NewNetworkCommand(container *app.Container) *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "network",
		Short: "Show cached network status",
		RunE: func(cmd *cobra.Command, args []string) error {
			if refresh {
				container.Network.Refresh()
			}
			status := container.Network.Status(cmd.Context())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Status: %s\n", status)
			fmt.Fprintf(out, "Checked: %s\n", status.CheckedAt.Format(domain.TimestampFormat))
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Drop the cache and probe again")
	return cmd
}
