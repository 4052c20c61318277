// Package ui implements the Bubble Tea terminal interface for illien.
//
// # Overview
//
// The interface is a single-window journal: a header bar with the current
// entry and its save status, a sidebar listing daily and titled entries, an
// editor pane, and a footer with key hints. Modals handle the three
// dialogs (new entry title, delete confirmation, journal directory) and a
// read-only Markdown preview can replace the editor pane.
//
// # Architecture
//
// The root Model owns a session.State and advances it exclusively through
// session.Apply; the effects that come back are translated into Bubble Tea
// commands in commands.go. All storage work happens inside those command
// closures, which capture their arguments at scheduling time, so the model
// never shares mutable state with a running command.
//
// The debounce timer is a tea.Tick carrying the generation that armed it.
// The session ignores fires from superseded generations, which is what
// makes "cancel" synchronous even though ticks cannot be stopped.
//
// # Focus
//
// Keystrokes go to either the editor or the sidebar. Editor focus reserves
// only control chords and escape so that every printable key types; sidebar
// focus uses plain vim-style keys. Escape toggles between the two.
package ui
