package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/iris-go/internal/app"
	"github.com/doeshing/iris-go/internal/domain"
)

// NewHistoryCommand creates the history command with all subcommands
func NewHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect conversation transcripts",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(container),
		newHistorySearchCommand(container),
		newHistoryClearCommand(container),
	)

	return historyCmd
}

// newHistoryListCommand creates the 'history list' subcommand
func newHistoryListCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent exchanges",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listTranscripts(cmd.OutOrStdout(), container, limit, "")
		},
	}

	cmd.Flags().IntVar(&limit, "limit", domain.DefaultTranscriptListLimit, "Max entries to show")
	return cmd
}

// newHistorySearchCommand creates the 'history search' subcommand
func newHistorySearchCommand(container *app.Container) *cobra.Command {
	var query string
	var limit int

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search transcripts for a keyword",
		RunE: func(cmd *cobra.Command, args []string) error {
			if query == "" {
				return fmt.Errorf(ErrQueryRequired)
			}
			return listTranscripts(cmd.OutOrStdout(), container, limit, query)
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Search keyword")
	cmd.Flags().IntVar(&limit, "limit", domain.DefaultTranscriptListLimit, "Limit search results")
	return cmd
}

// newHistoryClearCommand creates the 'history clear' subcommand
func newHistoryClearCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all stored transcripts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Transcripts == nil {
				return fmt.Errorf(ErrTranscriptsUnavailable)
			}
			if err := container.Transcripts.Clear(); err != nil {
				return fmt.Errorf("failed to clear history: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), MsgHistoryCleared)
			return nil
		},
	}
}

// listTranscripts prints matching exchanges, newest first
func listTranscripts(out io.Writer, container *app.Container, limit int, search string) error {
	if container.Transcripts == nil {
		return fmt.Errorf(ErrTranscriptsUnavailable)
	}

	records, err := container.Transcripts.Records(limit, search)
	if err != nil {
		return fmt.Errorf("failed to retrieve transcripts: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(out, MsgNoHistoryRecorded)
		return nil
	}

	for _, rec := range records {
		fmt.Fprintf(out, "%s | %s | you: %s\n",
			rec.Timestamp.Format(domain.TimestampFormat),
			rec.Source,
			rec.Input)
		fmt.Fprintf(out, "  iris: %s\n", rec.Response)
	}
	return nil
}
