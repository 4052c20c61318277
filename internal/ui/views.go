package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/nocount/illien/internal/journal"
	"github.com/nocount/illien/internal/session"
)

// Layout constants.
const (
	sidebarMinWidth = 24
	sidebarMaxWidth = 36
	modalWidth      = 56
)

func (m *Model) resizePanes() {
	w, h := m.paneSize()
	m.editor.SetWidth(w)
	m.editor.SetHeight(h)

	m.preview = viewport.New(w, h)
	m.help.Width = m.width
	m.refreshPreview()
}

func (m Model) sidebarWidth() int {
	w := m.width / 4
	if w < sidebarMinWidth {
		w = sidebarMinWidth
	}
	if w > sidebarMaxWidth {
		w = sidebarMaxWidth
	}
	return w
}

// paneSize returns the inner size of the editor/preview pane: the window
// minus sidebar, pane borders, and the header and footer lines.
func (m Model) paneSize() (width, height int) {
	width = m.width - m.sidebarWidth() - 4
	height = m.height - 4
	if width < 10 {
		width = 10
	}
	if height < 3 {
		height = 3
	}
	return width, height
}

func (m Model) renderMain() string {
	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderSidebar(),
		m.renderEditorPane(),
	)
	return strings.Join([]string{m.renderHeader(), body, m.renderFooter()}, "\n")
}

// renderHeader renders the top bar: logo, current entry, save status, date.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	left := styles.Logo.Render("illien") + "  " +
		styles.AccentText.Render(m.entryLabel()) + "  " +
		m.renderSaveStatus(styles)

	right := styles.MutedText.Render(time.Now().Format("Mon, 02 Jan 2006"))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return styles.Header.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) entryLabel() string {
	if m.store == nil {
		return "no journal"
	}
	return m.session.Entry.Title
}

// renderSaveStatus renders the three-state persistence indicator.
func (m Model) renderSaveStatus(styles Styles) string {
	switch m.session.Status {
	case session.StatusUnsaved:
		return styles.StatusUnsaved.Render("● unsaved")
	case session.StatusSaving:
		return styles.StatusSaving.Render("● saving…")
	default:
		return styles.StatusSaved.Render("● saved")
	}
}

// renderSidebar renders the entry list, daily entries under "Journal" and
// titled entries under "Notes".
func (m Model) renderSidebar() string {
	styles := m.theme.Styles()
	width := m.sidebarWidth() - 2
	_, height := m.paneSize()

	var lines []string
	index := 0

	appendEntries := func(title string, entries []journal.Entry) {
		lines = append(lines, styles.SectionTitle.Render(title))
		if len(entries) == 0 {
			lines = append(lines, styles.FaintText.Render("  (none)"))
		}
		for _, e := range entries {
			label := truncate(e.Title, width-4)
			marker := "  "
			if e.Filename == m.session.Entry.Filename {
				marker = styles.AccentText.Render("› ")
			}
			line := marker + label
			if index == m.selected && m.focus == focusSidebar {
				line = styles.Selected.Width(width).Render(marker + label)
			}
			lines = append(lines, line)
			index++
		}
	}

	appendEntries("Journal", m.daily)
	lines = append(lines, "")
	appendEntries("Notes", m.titled)

	lines = visibleWindow(lines, m.selectedLine(), height)

	pane := styles.Pane
	if m.focus == focusSidebar {
		pane = styles.PaneFocus
	}
	return pane.Width(width).Height(height).Render(strings.Join(lines, "\n"))
}

// selectedLine converts the selected entry index into a sidebar line number,
// accounting for section titles, placeholders, and the blank spacer.
func (m Model) selectedLine() int {
	if m.selected < len(m.daily) {
		return 1 + m.selected
	}
	offset := 1 + len(m.daily)
	if len(m.daily) == 0 {
		offset++ // "(none)" placeholder
	}
	offset += 2 // spacer + "Notes" title
	return offset + (m.selected - len(m.daily))
}

// visibleWindow slices lines so that the focus line is on screen.
func visibleWindow(lines []string, focus, height int) []string {
	if len(lines) <= height {
		return lines
	}
	start := focus - height/2
	if start < 0 {
		start = 0
	}
	if start+height > len(lines) {
		start = len(lines) - height
	}
	return lines[start : start+height]
}

func (m Model) renderEditorPane() string {
	styles := m.theme.Styles()

	pane := styles.Pane
	if m.focus == focusEditor {
		pane = styles.PaneFocus
	}

	w, h := m.paneSize()
	if m.showPreview {
		return pane.Width(w).Height(h).Render(m.preview.View())
	}
	if m.store == nil {
		hint := styles.MutedText.Render("No journal directory chosen.\nPress esc then D to choose one.")
		return pane.Width(w).Height(h).Render(hint)
	}
	if m.session.Loading {
		return pane.Width(w).Height(h).Render(styles.FaintText.Render("Loading..."))
	}
	return pane.Width(w).Height(h).Render(m.editor.View())
}

// renderFooter renders key hints, overridden by transient status or error.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	switch {
	case m.errorMsg != "":
		return styles.Footer.Width(m.width).Render(styles.ErrorText.Render("! " + m.errorMsg))
	case m.statusMsg != "":
		return styles.Footer.Width(m.width).Render(m.statusMsg)
	default:
		return styles.Footer.Width(m.width).Render(m.help.View(m.keys))
	}
}

func (m Model) renderModal() string {
	content := m.modal.View(m.theme, m.width)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	h := m.help
	h.ShowAll = true

	box := styles.Pane.Padding(1, 2).Render(
		styles.Logo.Render("illien") + "  " +
			styles.MutedText.Render("key bindings") + "\n\n" +
			h.View(m.keys) + "\n\n" +
			styles.FaintText.Render("press any key to close"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func truncate(s string, max int) string {
	if max < 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

