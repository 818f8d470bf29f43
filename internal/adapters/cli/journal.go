package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewJournalCommand creates the journal command
func NewJournalCommand() *cobra.Command {
	var (
		limit int
		level string
	)

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Show the expedition journal",
		Long: `Show the most recent journal entries. Every command records what
it did here.

Example:
  tellsim journal --limit 20 --level warn`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			var levelFilter *string
			if level != "" {
				levelFilter = &level
			}
			entries, err := app.journal.Recent(context.Background(), limit, levelFilter)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("The journal is empty")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tLEVEL\tMESSAGE")
			for _, entry := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\n",
					entry.Timestamp.Format("2006-01-02 15:04:05"), entry.Level, entry.Message)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries to show")
	cmd.Flags().StringVar(&level, "level", "", "Filter by level: info, warn or error")
	return cmd
}
