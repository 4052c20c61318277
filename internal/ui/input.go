package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nocount/illien/internal/journal"
	"github.com/nocount/illien/internal/session"
)

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help.
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		m.modal = modal
		if closed {
			m.modal = nil
		}
		return m, cmd
	}

	if m.focus == focusSidebar {
		return m.handleSidebarKey(msg)
	}
	return m.handleEditorKey(msg)
}

// handleEditorKey routes keys while the editor pane is focused. Only control
// chords and escape are intercepted; everything else is typing.
func (m Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showPreview {
		switch msg.String() {
		case "esc", "ctrl+p", "p", "q":
			m.showPreview = false
			return m, nil
		}
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "esc":
		m.focus = focusSidebar
		return m, nil
	case "ctrl+t":
		return m.selectEntry(journal.DailyEntry(time.Now()))
	case "ctrl+n":
		m.modal = newEntryTitleModal()
		return m, nil
	case "ctrl+p":
		m.showPreview = true
		m.refreshPreview()
		return m, nil
	case "ctrl+y":
		return m.copyBuffer(), nil
	}

	if m.session.Loading {
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if v := m.editor.Value(); v != m.session.Buffer {
		next, sessCmd := m.applySession(session.EditEvent{Text: v})
		next.statusMsg = ""
		return next, tea.Batch(cmd, sessCmd)
	}
	return m, cmd
}

// handleSidebarKey routes keys while the sidebar is focused.
func (m Model) handleSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.focus = focusEditor
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.entries)-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if entry, ok := m.entryAt(m.selected); ok {
			return m.selectEntry(entry)
		}
		return m, nil

	case key.Matches(msg, m.keys.Today):
		return m.selectEntry(journal.DailyEntry(time.Now()))

	case key.Matches(msg, m.keys.NewEntry):
		m.modal = newEntryTitleModal()
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		// Daily entries reject delete silently; no confirmation appears.
		if m.session.Entry.Type == journal.TypeTitled {
			m.modal = newConfirmDeleteModal(m.session.Entry.Title)
		}
		return m, nil

	case key.Matches(msg, m.keys.Directory):
		m.modal = newDirPromptModal(m.dirValue())
		return m, nil

	case key.Matches(msg, m.keys.ToggleTheme):
		return m.toggleTheme(), nil

	case key.Matches(msg, m.keys.Preview):
		m.showPreview = true
		m.refreshPreview()
		m.focus = focusEditor
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		return m.copyBuffer(), nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	}

	if msg.String() == "q" {
		return m, tea.Quit
	}
	return m, nil
}

// entryAt returns the sidebar entry at index i. List order is already
// daily-then-titled, matching the rendered sidebar.
func (m Model) entryAt(i int) (journal.Entry, bool) {
	if i < 0 || i >= len(m.entries) {
		return journal.Entry{}, false
	}
	return m.entries[i], true
}

func (m Model) dirValue() string {
	if m.store == nil {
		return ""
	}
	return m.store.Dir()
}
