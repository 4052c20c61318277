package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nocount/illien/internal/journal"
	"github.com/nocount/illien/internal/session"
)

// Messages produced by async storage commands. Each carries enough identity
// for the session to drop results that arrive after an entry switch.

type entryLoadedMsg struct {
	entry journal.Entry
	text  string
	found bool
	err   error
}

type saveDoneMsg struct {
	filename string
	nonEmpty bool
	err      error
}

type entriesMsg struct {
	entries []journal.Entry
	err     error
}

type deleteDoneMsg struct {
	today journal.Entry
	err   error
}

// saveTimerMsg reports a debounce timer expiring. Stale generations are
// ignored by the session.
type saveTimerMsg struct {
	gen int
}

// Messages produced by modals when the user confirms an action.

type dirChosenMsg struct {
	path string
}

type createEntryMsg struct {
	title string
}

type deleteConfirmedMsg struct{}

// saveTimerCmd arms the debounce timer for one generation.
func saveTimerCmd(gen int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return saveTimerMsg{gen: gen}
	})
}

func (m Model) loadEntryCmd(entry journal.Entry) tea.Cmd {
	store := m.store
	ctx := m.ctx
	return func() tea.Msg {
		text, found, err := store.Load(ctx, entry.Filename)
		return entryLoadedMsg{entry: entry, text: text, found: found, err: err}
	}
}

// saveEntryCmd flushes the captured filename/content pair. The pair comes
// from the session's SaveEffect and is never re-read from the model, so an
// in-flight save always writes against the entry that armed it.
func (m Model) saveEntryCmd(filename, text string) tea.Cmd {
	store := m.store
	ctx := m.ctx
	return func() tea.Msg {
		err := store.Save(ctx, filename, text)
		return saveDoneMsg{filename: filename, nonEmpty: text != "", err: err}
	}
}

func (m Model) listEntriesCmd() tea.Cmd {
	store := m.store
	ctx := m.ctx
	return func() tea.Msg {
		entries, err := store.List(ctx)
		return entriesMsg{entries: entries, err: err}
	}
}

func (m Model) deleteEntryCmd(filename string) tea.Cmd {
	store := m.store
	ctx := m.ctx
	return func() tea.Msg {
		err := store.Delete(ctx, filename)
		return deleteDoneMsg{today: journal.DailyEntry(time.Now()), err: err}
	}
}

// runEffects translates session effects into Bubble Tea commands. With no
// journal store configured yet every storage effect is dropped; the
// directory prompt is already on screen in that state.
func (m Model) runEffects(effects []session.Effect) tea.Cmd {
	var cmds []tea.Cmd
	for _, eff := range effects {
		switch eff := eff.(type) {
		case session.StartTimerEffect:
			cmds = append(cmds, saveTimerCmd(eff.Gen, m.debounce))
		case session.SaveEffect:
			if m.store != nil {
				cmds = append(cmds, m.saveEntryCmd(eff.Filename, eff.Text))
			}
		case session.LoadEffect:
			if m.store != nil {
				cmds = append(cmds, m.loadEntryCmd(eff.Entry))
			}
		case session.DeleteEffect:
			if m.store != nil {
				cmds = append(cmds, m.deleteEntryCmd(eff.Filename))
			}
		case session.RefreshListEffect:
			if m.store != nil {
				cmds = append(cmds, m.listEntriesCmd())
			}
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
