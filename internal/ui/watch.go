package ui

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// The journal directory is plain files, so other programs can add or remove
// entries while illien runs. A fixed-cadence stat of the directory keeps the
// sidebar in sync without a platform watcher dependency.

const watchInterval = 2 * time.Second

// watchTickMsg carries the directory's modification time at tick time. A
// zero time means the directory could not be statted.
type watchTickMsg struct {
	modTime time.Time
}

func (m Model) watchTickCmd() tea.Cmd {
	dir := ""
	if m.store != nil {
		dir = m.store.Dir()
	}
	return tea.Tick(watchInterval, func(time.Time) tea.Msg {
		var modTime time.Time
		if dir != "" {
			if info, err := os.Stat(dir); err == nil {
				modTime = info.ModTime()
			}
		}
		return watchTickMsg{modTime: modTime}
	})
}

// handleWatchTick refreshes the entry list when the directory's modification
// time moves, then re-arms the tick.
func (m Model) handleWatchTick(msg watchTickMsg) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{m.watchTickCmd()}
	if !msg.modTime.IsZero() && !msg.modTime.Equal(m.dirModTime) {
		m.dirModTime = msg.modTime
		if m.store != nil {
			cmds = append(cmds, m.listEntriesCmd())
		}
	}
	return m, tea.Batch(cmds...)
}
