package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nocount/illien/internal/app"
	"github.com/nocount/illien/internal/journal"
)

func newListCommand(ctx context.Context, opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List journal entries",
		Long:  "List journal entries, daily entries newest first followed by titled notes.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(opts)
			if err != nil {
				return err
			}

			entries, err := store.List(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, e := range entries {
				fmt.Fprintln(out, e.Title)
			}
			return nil
		},
	}
}

// entryForArgs maps the --date/--title flag pair onto a single entry.
func entryForArgs(date, title string) (journal.Entry, error) {
	switch {
	case date != "" && title != "":
		return journal.Entry{}, fmt.Errorf("--date and --title are mutually exclusive")
	case date != "":
		if !journal.IsDailyFilename(date + ".md") {
			return journal.Entry{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
		}
		return journal.EntryForFilename(date + ".md"), nil
	case title != "":
		return journal.TitledEntry(title), nil
	default:
		return journal.Entry{}, nil
	}
}
