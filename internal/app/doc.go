// Package app provides the orchestration layer for the illien application.
//
// # Overview
//
// This package wires together preferences, the journal store, and the UI to
// create the complete illien TUI experience. It serves as the composition
// root where all dependencies are initialized and connected.
//
// # Startup Sequence
//
//  1. Load user preferences from ~/.config/illien/prefs.toml
//  2. Resolve the journal directory: CLI override > stored preference
//  3. Resolve the theme: stored dark_mode > terminal background > dark
//  4. Build the journal.Store for the directory (nil when none chosen yet)
//  5. Start the TUI and block until the user exits or the context cancels
//
// When no journal directory has ever been chosen, the UI starts anyway and
// opens the directory prompt; choosing a directory there persists the
// preference and brings up today's entry.
//
// # Error Handling
//
// Only an unresolvable explicit directory is fatal. Missing or unreadable
// preferences degrade to in-memory defaults, and all storage failures after
// startup surface through the save-status indicator rather than dialogs.
package app
