// Package session implements the entry selector and autosave state machine.
//
// # Overview
//
// The session owns the currently open entry, the in-memory text buffer, and
// the save-status indicator. It mediates between user edits and the journal
// store: edits mark the buffer dirty and arm a debounce timer; when the timer
// fires with no further edits, the buffer is flushed; switching entries
// abandons any pending flush and loads the target entry instead.
//
// # Design
//
// The machine is a single pure transition function:
//
//	next, effects := session.Apply(state, event)
//
// Events are everything that can happen to the session (an edit, a timer
// firing, a save or load or delete completing, an entry being selected).
// Effects are the side effects the caller must perform (start a timer, call
// save/load/delete, refresh the entry list). The caller (the TUI) turns
// effects into Bubble Tea commands; tests feed events directly and assert on
// states and effects, so the debounce discipline is testable without a live
// timer.
//
// # Debounce and Cancellation
//
// Every edit bumps the timer generation and emits StartTimerEffect carrying
// the new generation. A TimerFiredEvent is honored only when its generation
// matches the state's current one; anything else is a cancelled timer and a
// no-op. Cancellation is therefore synchronous and total: bumping the
// generation (on edit, entry switch, or delete request) guarantees no stale
// timer can trigger a save. At most one live timer exists per buffer.
//
// A save that has already been issued is not cancellable. SaveEffect captures
// the filename and content at timer-fire time, so an in-flight save always
// completes against the entry that was current when the timer fired, even if
// the user has since switched entries. Edits made between timer fire and an
// entry switch are abandoned with the switch.
//
// # Status Transitions
//
//	saved   --edit-->                unsaved   (timer armed)
//	unsaved --edit-->                unsaved   (timer re-armed, not queued)
//	unsaved --timer fires-->         saving    (SaveEffect emitted)
//	saving  --save ok-->             saved     (list refreshed if non-empty)
//	saving  --save failed-->         unsaved   (dirty flag preserved)
//	any     --select entry-->        saved     (timer cancelled, LoadEffect)
//
// Load failures and absent files both yield an empty buffer with status
// saved: an entry that has never been written is indistinguishable from an
// empty one.
package session
