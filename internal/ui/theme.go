package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the UI. Two themes exist, dark and light, toggled
// with a single key and persisted as a preference.
type Theme struct {
	Name string
	Dark bool

	Background string // outermost background
	Surface    string // header and footer bars
	Border     string // unfocused pane border
	BorderFocus string

	Text  string
	Muted string
	Faint string

	Accent  string
	Success string
	Warning string
	Danger  string

	SelectionBg   string
	SelectionText string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		SectionTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Bold(true),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)),

		PaneFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)),

		StatusSaved: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),

		StatusSaving: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		StatusUnsaved: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)),

		ErrorText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text       lipgloss.Style
	MutedText  lipgloss.Style
	FaintText  lipgloss.Style
	AccentText lipgloss.Style

	Header       lipgloss.Style
	Footer       lipgloss.Style
	Logo         lipgloss.Style
	Selected     lipgloss.Style
	SectionTitle lipgloss.Style
	Pane         lipgloss.Style
	PaneFocus    lipgloss.Style

	StatusSaved   lipgloss.Style
	StatusSaving  lipgloss.Style
	StatusUnsaved lipgloss.Style
	ErrorText     lipgloss.Style
}

// ThemeFor returns the theme for the given mode.
func ThemeFor(dark bool) Theme {
	if dark {
		return darkTheme()
	}
	return lightTheme()
}

func darkTheme() Theme {
	// Tailwind CSS Slate/Sky palette.
	return Theme{
		Name: "Dark",
		Dark: true,

		Background:  "#020617", // slate-950
		Surface:     "#1e293b", // slate-800
		Border:      "#334155", // slate-700
		BorderFocus: "#38bdf8", // sky-400

		Text:  "#f1f5f9", // slate-100
		Muted: "#94a3b8", // slate-400
		Faint: "#64748b", // slate-500

		Accent:  "#38bdf8", // sky-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500

		SelectionBg:   "#0284c7", // sky-600
		SelectionText: "#f8fafc", // slate-50
	}
}

func lightTheme() Theme {
	return Theme{
		Name: "Light",
		Dark: false,

		Background:  "#f8fafc", // slate-50
		Surface:     "#e2e8f0", // slate-200
		Border:      "#cbd5e1", // slate-300
		BorderFocus: "#0284c7", // sky-600

		Text:  "#0f172a", // slate-900
		Muted: "#475569", // slate-600
		Faint: "#94a3b8", // slate-400

		Accent:  "#0284c7", // sky-600
		Success: "#16a34a", // green-600
		Warning: "#d97706", // amber-600
		Danger:  "#dc2626", // red-600

		SelectionBg:   "#0ea5e9", // sky-500
		SelectionText: "#f8fafc", // slate-50
	}
}
