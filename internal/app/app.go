package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"github.com/nocount/illien/internal/journal"
	"github.com/nocount/illien/internal/prefs"
	"github.com/nocount/illien/internal/ui"
)

// Options configure the illien application.
type Options struct {
	Directory string        // journal directory override; empty uses the stored preference
	PrefsPath string        // empty uses default ~/.config/illien/prefs.toml
	Debounce  time.Duration // autosave quiet period; zero uses the standard delay
}

// Run boots the illien TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	userPrefs := prefs.Load(opts.PrefsPath)

	store, err := openStore(opts, userPrefs)
	if err != nil {
		return err
	}

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		PrefsPath: opts.PrefsPath,
		Dark:      resolveDarkMode(userPrefs),
		Debounce:  opts.Debounce,
	}
	return ui.Run(uiOpts)
}

// OpenStore resolves the journal directory and builds a store for it. A nil
// store with a nil error means no directory has been chosen yet; the UI
// prompts for one on startup, CLI callers report it as an error.
func OpenStore(opts Options) (*journal.Store, error) {
	return openStore(opts, prefs.Load(opts.PrefsPath))
}

func openStore(opts Options, userPrefs prefs.Prefs) (*journal.Store, error) {
	dir := strings.TrimSpace(opts.Directory)
	if dir == "" {
		dir = userPrefs.JournalDirectory
	}
	if dir == "" {
		return nil, nil
	}

	expanded, err := prefs.ExpandPath(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve journal directory: %w", err)
	}
	return journal.NewStore(expanded)
}

// resolveDarkMode applies the theme precedence once at startup:
// stored preference, then the terminal's reported background, then dark.
func resolveDarkMode(p prefs.Prefs) bool {
	if p.DarkMode != nil {
		return *p.DarkMode
	}
	return termenv.HasDarkBackground()
}
