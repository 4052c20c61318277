package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nocount/illien/internal/app"
	"github.com/nocount/illien/internal/journal"
)

func newCatCommand(ctx context.Context, opts *app.Options) *cobra.Command {
	var (
		date  string
		title string
	)

	cmd := &cobra.Command{
		Use:   "cat",
		Short: "Print one entry's content",
		Long:  "Print the content of a single entry. Without flags, today's daily entry.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(opts)
			if err != nil {
				return err
			}

			entry, err := entryForArgs(date, title)
			if err != nil {
				return err
			}
			if entry.Filename == "" {
				entry = journal.DailyEntry(time.Now())
			}

			text, ok, err := store.Load(ctx, entry.Filename)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("entry %q does not exist", entry.Title)
			}

			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Daily entry date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&title, "title", "", "Titled entry name")

	return cmd
}
