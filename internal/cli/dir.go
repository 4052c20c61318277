package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nocount/illien/internal/app"
	"github.com/nocount/illien/internal/prefs"
)

func newDirCommand(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "dir [path]",
		Short: "Print or set the journal directory",
		Long:  "Print the stored journal directory, or persist a new one for future sessions.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				expanded, err := prefs.ExpandPath(args[0])
				if err != nil {
					return err
				}
				return prefs.SetJournalDirectory(opts.PrefsPath, expanded)
			}

			p := prefs.Load(opts.PrefsPath)
			if p.JournalDirectory == "" {
				return fmt.Errorf("no journal directory configured")
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.JournalDirectory)
			return nil
		},
	}
}
