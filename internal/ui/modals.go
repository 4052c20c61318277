package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Modal is the interface for modal dialogs. Update returns the updated
// modal, a command, and whether the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width int) string
}

func renderModalBox(theme Theme, width int, title, body string) string {
	styles := theme.Styles()
	w := modalWidth
	if w > width-4 {
		w = width - 4
	}
	return styles.PaneFocus.Width(w).Padding(1, 2).Render(
		styles.AccentText.Bold(true).Render(title) + "\n\n" + body,
	)
}

// entryTitleModal prompts for a new titled entry's name. An empty title
// disables create; the dialog itself never writes a file.
type entryTitleModal struct {
	input textinput.Model
}

func newEntryTitleModal() *entryTitleModal {
	ti := textinput.New()
	ti.Placeholder = "Entry title"
	ti.CharLimit = 120
	ti.Focus()
	return &entryTitleModal{input: ti}
}

func (d *entryTitleModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil, false
	}

	switch {
	case key.Matches(keyMsg, keys.Cancel):
		return d, nil, true
	case key.Matches(keyMsg, keys.Confirm):
		title := strings.TrimSpace(d.input.Value())
		if title == "" {
			return d, nil, false
		}
		return d, func() tea.Msg { return createEntryMsg{title: title} }, true
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd, false
}

func (d *entryTitleModal) View(theme Theme, width int) string {
	styles := theme.Styles()
	hint := styles.FaintText.Render("enter to create, esc to cancel")
	return renderModalBox(theme, width, "New entry", d.input.View()+"\n\n"+hint)
}

// confirmDeleteModal asks before deleting a titled entry.
type confirmDeleteModal struct {
	title string
}

func newConfirmDeleteModal(title string) *confirmDeleteModal {
	return &confirmDeleteModal{title: title}
}

func (d *confirmDeleteModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil, false
	}

	switch keyMsg.String() {
	case "y", "Y", "enter":
		return d, func() tea.Msg { return deleteConfirmedMsg{} }, true
	case "n", "N", "esc":
		return d, nil, true
	}
	return d, nil, false
}

func (d *confirmDeleteModal) View(theme Theme, width int) string {
	styles := theme.Styles()
	body := "Delete " + styles.AccentText.Render(d.title) + "?\n\n" +
		styles.FaintText.Render("y to delete, n to cancel")
	return renderModalBox(theme, width, "Delete entry", body)
}

// dirPromptModal asks for the journal directory. It opens automatically on
// first run, when no directory preference exists yet.
type dirPromptModal struct {
	input textinput.Model
}

func newDirPromptModal(current string) *dirPromptModal {
	ti := textinput.New()
	ti.Placeholder = "~/journal"
	ti.SetValue(current)
	ti.CharLimit = 512
	ti.Focus()
	return &dirPromptModal{input: ti}
}

func (d *dirPromptModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil, false
	}

	switch {
	case key.Matches(keyMsg, keys.Cancel):
		return d, nil, true
	case key.Matches(keyMsg, keys.Confirm):
		path := strings.TrimSpace(d.input.Value())
		if path == "" {
			return d, nil, false
		}
		return d, func() tea.Msg { return dirChosenMsg{path: path} }, true
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd, false
}

func (d *dirPromptModal) View(theme Theme, width int) string {
	styles := theme.Styles()
	body := "Where should journal entries live?\n\n" +
		d.input.View() + "\n\n" +
		styles.FaintText.Render("enter to confirm, esc to cancel")
	return renderModalBox(theme, width, "Journal directory", body)
}
