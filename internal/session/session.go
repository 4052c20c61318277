package session

import (
	"time"

	"github.com/nocount/illien/internal/journal"
)

// DebounceDelay is the quiet period after the last edit before the buffer is
// flushed to disk.
const DebounceDelay = 1000 * time.Millisecond

// SaveStatus is the three-state persistence indicator shown to the user.
type SaveStatus int

const (
	StatusSaved SaveStatus = iota
	StatusUnsaved
	StatusSaving
)

// String returns the indicator label.
func (s SaveStatus) String() string {
	switch s {
	case StatusUnsaved:
		return "unsaved"
	case StatusSaving:
		return "saving"
	default:
		return "saved"
	}
}

// State is the complete session state. The zero value is not meaningful;
// sessions start with NewState.
type State struct {
	Entry  journal.Entry
	Buffer string
	Status SaveStatus

	// TimerGen is the generation a debounce timer must present to be
	// honored. Bumping it cancels any timer already running.
	TimerGen int

	// Loading is set between selecting an entry and its load completing.
	// Edits arriving in that window are dropped; the buffer is about to be
	// replaced anyway.
	Loading bool
}

// NewState opens a session on the given entry. The caller must perform the
// returned effects (a load of the entry's content).
func NewState(entry journal.Entry) (State, []Effect) {
	s := State{Entry: entry, Status: StatusSaved, Loading: true}
	return s, []Effect{LoadEffect{Entry: entry}}
}

// Event is anything that advances the session.
type Event interface{ sessionEvent() }

// EditEvent carries the full buffer text after a user edit.
type EditEvent struct {
	Text string
}

// TimerFiredEvent reports a debounce timer expiring. Gen identifies which
// timer fired; stale generations are ignored.
type TimerFiredEvent struct {
	Gen int
}

// SaveResultEvent reports a completed flush. Filename is the entry the save
// was issued against, which may no longer be current.
type SaveResultEvent struct {
	Filename string
	NonEmpty bool
	Err      error
}

// SelectEvent switches the session to another entry. It covers selecting
// from the sidebar, jumping to today, and creating a new titled entry.
type SelectEvent struct {
	Entry journal.Entry
}

// LoadResultEvent carries the persisted content of a selected entry.
// Found is false when the entry has never been saved.
type LoadResultEvent struct {
	Entry journal.Entry
	Text  string
	Found bool
	Err   error
}

// DeleteRequestEvent asks for the current entry to be deleted. Daily entries
// reject the request silently.
type DeleteRequestEvent struct{}

// DeleteResultEvent reports a completed delete. Today is the daily entry the
// session falls back to on success.
type DeleteResultEvent struct {
	Today journal.Entry
	Err   error
}

func (EditEvent) sessionEvent()          {}
func (TimerFiredEvent) sessionEvent()    {}
func (SaveResultEvent) sessionEvent()    {}
func (SelectEvent) sessionEvent()        {}
func (LoadResultEvent) sessionEvent()    {}
func (DeleteRequestEvent) sessionEvent() {}
func (DeleteResultEvent) sessionEvent()  {}

// Effect is a side effect the caller must perform after a transition.
type Effect interface{ sessionEffect() }

// StartTimerEffect arms a debounce timer that should deliver
// TimerFiredEvent{Gen} after DebounceDelay.
type StartTimerEffect struct {
	Gen int
}

// SaveEffect flushes text to the named file. Both values are captured at
// timer-fire time and must not be re-read from later state.
type SaveEffect struct {
	Filename string
	Text     string
}

// LoadEffect reads the entry's persisted content.
type LoadEffect struct {
	Entry journal.Entry
}

// DeleteEffect removes the named file.
type DeleteEffect struct {
	Filename string
}

// RefreshListEffect re-reads the entry list for the sidebar.
type RefreshListEffect struct{}

func (StartTimerEffect) sessionEffect()  {}
func (SaveEffect) sessionEffect()        {}
func (LoadEffect) sessionEffect()        {}
func (DeleteEffect) sessionEffect()      {}
func (RefreshListEffect) sessionEffect() {}

// Apply advances the session by one event and returns the next state plus
// the effects to perform. It never mutates its input.
func Apply(s State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case EditEvent:
		return applyEdit(s, ev)
	case TimerFiredEvent:
		return applyTimerFired(s, ev)
	case SaveResultEvent:
		return applySaveResult(s, ev)
	case SelectEvent:
		return applySelect(s, ev.Entry)
	case LoadResultEvent:
		return applyLoadResult(s, ev)
	case DeleteRequestEvent:
		return applyDeleteRequest(s)
	case DeleteResultEvent:
		return applyDeleteResult(s, ev)
	default:
		return s, nil
	}
}

func applyEdit(s State, ev EditEvent) (State, []Effect) {
	if s.Loading {
		return s, nil
	}

	s.Buffer = ev.Text
	s.Status = StatusUnsaved
	s.TimerGen++
	return s, []Effect{StartTimerEffect{Gen: s.TimerGen}}
}

func applyTimerFired(s State, ev TimerFiredEvent) (State, []Effect) {
	// A mismatched generation is a timer that was cancelled by a later
	// edit, switch, or delete: it must never cause a save.
	if ev.Gen != s.TimerGen || s.Status != StatusUnsaved {
		return s, nil
	}

	s.Status = StatusSaving
	return s, []Effect{SaveEffect{Filename: s.Entry.Filename, Text: s.Buffer}}
}

func applySaveResult(s State, ev SaveResultEvent) (State, []Effect) {
	var effects []Effect
	if ev.Err == nil && ev.NonEmpty {
		// The save may have created a new file; the sidebar needs it.
		effects = append(effects, RefreshListEffect{})
	}

	// A result for a previously current entry must not disturb the status
	// of the entry open now.
	if ev.Filename != s.Entry.Filename {
		return s, effects
	}

	if s.Status != StatusSaving {
		return s, effects
	}

	if ev.Err != nil {
		s.Status = StatusUnsaved
		return s, effects
	}
	s.Status = StatusSaved
	return s, effects
}

func applySelect(s State, target journal.Entry) (State, []Effect) {
	s.TimerGen++
	s.Entry = target
	s.Buffer = ""
	s.Status = StatusSaved
	s.Loading = true
	return s, []Effect{LoadEffect{Entry: target}}
}

func applyLoadResult(s State, ev LoadResultEvent) (State, []Effect) {
	if ev.Entry.Filename != s.Entry.Filename {
		return s, nil
	}

	s.Loading = false
	s.Status = StatusSaved
	if ev.Err != nil || !ev.Found {
		// Load failures fall back to an empty buffer: a never-written
		// entry and an unreadable one look the same to the editor.
		s.Buffer = ""
		return s, nil
	}
	s.Buffer = ev.Text
	return s, nil
}

func applyDeleteRequest(s State) (State, []Effect) {
	if s.Entry.Type != journal.TypeTitled {
		return s, nil
	}

	// Cancel any pending flush so the file cannot be recreated between the
	// delete being issued and completing.
	s.TimerGen++
	return s, []Effect{DeleteEffect{Filename: s.Entry.Filename}}
}

func applyDeleteResult(s State, ev DeleteResultEvent) (State, []Effect) {
	if ev.Err != nil {
		return s, nil
	}

	next, effects := applySelect(s, ev.Today)
	return next, append([]Effect{RefreshListEffect{}}, effects...)
}
