package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit        key.Binding
	Help        key.Binding
	ToggleTheme key.Binding
	Preview     key.Binding
	Copy        key.Binding
	Escape      key.Binding

	// Entry actions
	Today     key.Binding
	NewEntry  key.Binding
	Delete    key.Binding
	Directory key.Binding

	// Sidebar navigation
	Up      key.Binding
	Down    key.Binding
	Open    key.Binding
	Sidebar key.Binding

	// Modal input
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default key bindings. Plain letters only work
// with the sidebar focused; everything reachable while typing uses a
// control chord or escape.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Toggle dark/light"),
		),
		Preview: key.NewBinding(
			key.WithKeys("ctrl+p", "p"),
			key.WithHelp("ctrl+p", "Toggle preview"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y", "y"),
			key.WithHelp("ctrl+y", "Copy entry"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Switch pane / close"),
		),

		Today: key.NewBinding(
			key.WithKeys("ctrl+t", "t"),
			key.WithHelp("ctrl+t", "Go to today"),
		),
		NewEntry: key.NewBinding(
			key.WithKeys("ctrl+n", "n"),
			key.WithHelp("ctrl+n", "New titled entry"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Delete entry (sidebar)"),
		),
		Directory: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "Set journal directory"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open entry"),
		),
		Sidebar: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Focus sidebar"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),
	}
}

// ShortHelp returns key bindings for the footer hint line.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Sidebar, k.Today, k.NewEntry, k.Preview, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Escape},
		{k.Today, k.NewEntry, k.Delete, k.Directory},
		{k.Preview, k.Copy, k.ToggleTheme},
		{k.Help, k.Quit},
	}
}
