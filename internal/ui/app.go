package ui

import (
	"context"
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nocount/illien/internal/journal"
	"github.com/nocount/illien/internal/prefs"
	"github.com/nocount/illien/internal/session"
)

// focusArea identifies which pane receives keystrokes.
type focusArea int

const (
	focusEditor focusArea = iota
	focusSidebar
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *journal.Store // nil when no journal directory is chosen yet
	PrefsPath string
	Dark      bool
	Debounce  time.Duration // zero uses session.DebounceDelay
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	store     *journal.Store
	prefsPath string
	debounce  time.Duration

	session session.State
	entries []journal.Entry
	daily   []journal.Entry
	titled  []journal.Entry

	editor   textarea.Model
	preview  viewport.Model
	showPreview bool

	theme Theme
	keys  keyMap
	help  help.Model

	focus    focusArea
	selected int // sidebar index over daily then titled
	width    int
	height   int
	ready    bool

	modal      Modal
	showHelp   bool
	dirModTime time.Time

	statusMsg string
	errorMsg  string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	debounce := opts.Debounce
	if debounce == 0 {
		debounce = session.DebounceDelay
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	ta := textarea.New()
	ta.Placeholder = "Write..."
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.Focus()

	m := Model{
		ctx:       ctx,
		store:     opts.Store,
		prefsPath: prefsPath,
		debounce:  debounce,
		editor:    ta,
		theme:     ThemeFor(opts.Dark),
		keys:      DefaultKeyMap(),
		help:      help.New(),
	}

	if m.store == nil {
		m.modal = newDirPromptModal("")
	} else {
		sess, _ := session.NewState(journal.DailyEntry(time.Now()))
		m.session = sess
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnterAltScreen, textarea.Blink}
	if m.store != nil {
		cmds = append(cmds,
			m.loadEntryCmd(m.session.Entry),
			m.listEntriesCmd(),
			m.watchTickCmd(),
		)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizePanes()
		return m, nil

	case saveTimerMsg:
		return m.applySession(session.TimerFiredEvent{Gen: msg.gen})

	case entryLoadedMsg:
		return m.handleEntryLoaded(msg)

	case saveDoneMsg:
		if msg.err != nil {
			log.Printf("save %s failed: %v", msg.filename, msg.err)
			m.errorMsg = "Save failed; will retry on next edit."
		}
		return m.applySession(session.SaveResultEvent{
			Filename: msg.filename,
			NonEmpty: msg.nonEmpty,
			Err:      msg.err,
		})

	case entriesMsg:
		return m.handleEntries(msg)

	case deleteDoneMsg:
		if msg.err != nil {
			log.Printf("delete failed: %v", msg.err)
			m.errorMsg = "Delete failed."
		} else {
			m.statusMsg = "Entry deleted."
			m.focus = focusEditor
		}
		return m.applySession(session.DeleteResultEvent{Today: msg.today, Err: msg.err})

	case dirChosenMsg:
		return m.handleDirChosen(msg.path)

	case createEntryMsg:
		return m.selectEntry(journal.TitledEntry(msg.title))

	case deleteConfirmedMsg:
		return m.applySession(session.DeleteRequestEvent{})

	case watchTickMsg:
		return m.handleWatchTick(msg)
	}

	return m, nil
}

// applySession advances the autosave state machine and schedules its effects.
func (m Model) applySession(ev session.Event) (Model, tea.Cmd) {
	next, effects := session.Apply(m.session, ev)
	m.session = next
	return m, m.runEffects(effects)
}

func (m Model) handleEntryLoaded(msg entryLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// Swallowed: a load failure is presented as an empty entry.
		log.Printf("load %s failed: %v", msg.entry.Filename, msg.err)
	}

	next, cmd := m.applySession(session.LoadResultEvent{
		Entry: msg.entry,
		Text:  msg.text,
		Found: msg.found,
		Err:   msg.err,
	})

	// Only sync the editor when the result is for the entry on screen.
	if msg.entry.Filename == next.session.Entry.Filename && !next.session.Loading {
		next.editor.SetValue(next.session.Buffer)
		next.refreshPreview()
	}
	return next, cmd
}

func (m Model) handleEntries(msg entriesMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		log.Printf("list entries failed: %v", msg.err)
		m.errorMsg = "Could not read the journal directory."
		return m, nil
	}

	m.entries = msg.entries
	m.daily, m.titled = journal.Partition(msg.entries)
	if max := len(m.entries) - 1; m.selected > max {
		m.selected = max
	}
	if m.selected < 0 {
		m.selected = 0
	}
	return m, nil
}

func (m Model) handleDirChosen(path string) (tea.Model, tea.Cmd) {
	expanded, err := prefs.ExpandPath(path)
	if err != nil {
		m.errorMsg = "Invalid directory path."
		return m, nil
	}
	store, err := journal.NewStore(expanded)
	if err != nil {
		m.errorMsg = "Invalid directory path."
		return m, nil
	}

	if err := prefs.SetJournalDirectory(m.prefsPath, expanded); err != nil {
		// Diagnostic only; the directory still works for this session.
		log.Printf("persist journal directory failed: %v", err)
	}

	hadStore := m.store != nil
	m.store = store
	m.errorMsg = ""
	m.statusMsg = "Journal directory set."

	sess, _ := session.NewState(journal.DailyEntry(time.Now()))
	m.session = sess
	m.editor.SetValue("")
	m.focus = focusEditor

	cmds := []tea.Cmd{m.loadEntryCmd(sess.Entry), m.listEntriesCmd()}
	if !hadStore {
		// The watch tick re-arms itself, so it is only seeded once.
		cmds = append(cmds, m.watchTickCmd())
	}
	return m, tea.Batch(cmds...)
}

// selectEntry switches the session to target and focuses the editor.
func (m Model) selectEntry(target journal.Entry) (Model, tea.Cmd) {
	next, cmd := m.applySession(session.SelectEvent{Entry: target})
	next.editor.SetValue("")
	next.focus = focusEditor
	next.statusMsg = ""
	next.errorMsg = ""
	return next, cmd
}

func (m Model) copyBuffer() Model {
	if err := clipboard.WriteAll(m.session.Buffer); err != nil {
		log.Printf("clipboard write failed: %v", err)
		m.errorMsg = "Could not copy to clipboard."
		return m
	}
	m.statusMsg = "Entry copied to clipboard."
	m.errorMsg = ""
	return m
}

func (m Model) toggleTheme() Model {
	dark := !m.theme.Dark
	m.theme = ThemeFor(dark)
	if err := prefs.SetDarkMode(m.prefsPath, dark); err != nil {
		log.Printf("persist dark mode failed: %v", err)
	}
	m.refreshPreview()
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.modal != nil {
		return m.renderModal()
	}
	return m.renderMain()
}
