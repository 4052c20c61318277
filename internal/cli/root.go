// Package cli defines the illien command line. The bare command starts the
// TUI; subcommands expose the journal for scripting.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nocount/illien/internal/app"
	"github.com/nocount/illien/internal/journal"
)

// NewRootCommand creates the top-level Cobra command hosting subcommands and
// the TUI launcher.
func NewRootCommand(ctx context.Context) *cobra.Command {
	opts := &app.Options{}

	cmd := &cobra.Command{
		Use:   "illien",
		Short: "A minimal Markdown journal in your terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(ctx, *opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Directory, "dir", "", "Journal directory override (not persisted)")
	cmd.PersistentFlags().StringVar(&opts.PrefsPath, "prefs", "", "Preferences file override")

	cmd.AddCommand(
		newListCommand(ctx, opts),
		newCatCommand(ctx, opts),
		newDirCommand(opts),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	return NewRootCommand(ctx).Execute()
}

// Main is the helper used by cmd/illien/main.go to keep wiring in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// openStore resolves the journal store for subcommands, which unlike the TUI
// cannot prompt for a directory.
func openStore(opts *app.Options) (*journal.Store, error) {
	store, err := app.OpenStore(*opts)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, fmt.Errorf("no journal directory configured; run illien once or pass --dir")
	}
	return store, nil
}
