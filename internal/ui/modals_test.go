package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestEntryTitleModalRejectsEmptyTitle(t *testing.T) {
	keys := DefaultKeyMap()
	modal := newEntryTitleModal()

	_, cmd, closed := modal.Update(tea.KeyMsg{Type: tea.KeyEnter}, keys)
	if closed {
		t.Fatal("modal must stay open on an empty title")
	}
	if cmd != nil {
		t.Fatal("empty title must not produce a command")
	}
}

func TestEntryTitleModalCreatesOnConfirm(t *testing.T) {
	keys := DefaultKeyMap()
	modal := newEntryTitleModal()

	m, _, _ := modal.Update(keyRunes("Trip notes"), keys)
	_, cmd, closed := m.Update(tea.KeyMsg{Type: tea.KeyEnter}, keys)
	if !closed {
		t.Fatal("modal must close on confirm")
	}
	if cmd == nil {
		t.Fatal("confirm must produce a command")
	}

	msg, ok := cmd().(createEntryMsg)
	if !ok {
		t.Fatalf("command produced %T, want createEntryMsg", cmd())
	}
	if msg.title != "Trip notes" {
		t.Fatalf("title = %q, want %q", msg.title, "Trip notes")
	}
}

func TestEntryTitleModalCancels(t *testing.T) {
	keys := DefaultKeyMap()
	modal := newEntryTitleModal()

	_, cmd, closed := modal.Update(tea.KeyMsg{Type: tea.KeyEsc}, keys)
	if !closed {
		t.Fatal("modal must close on escape")
	}
	if cmd != nil {
		t.Fatal("cancel must not produce a command")
	}
}

func TestConfirmDeleteModal(t *testing.T) {
	keys := DefaultKeyMap()

	cases := []struct {
		key     string
		confirm bool
	}{
		{"y", true},
		{"Y", true},
		{"n", false},
		{"N", false},
	}
	for _, tc := range cases {
		modal := newConfirmDeleteModal("Scratch")
		_, cmd, closed := modal.Update(keyRunes(tc.key), keys)
		if !closed {
			t.Errorf("key %q: modal must close", tc.key)
		}
		if tc.confirm && cmd == nil {
			t.Errorf("key %q: expected a delete command", tc.key)
		}
		if !tc.confirm && cmd != nil {
			t.Errorf("key %q: expected no command", tc.key)
		}
	}
}

func TestDirPromptModalEmitsPath(t *testing.T) {
	keys := DefaultKeyMap()
	modal := newDirPromptModal("")

	m, _, _ := modal.Update(keyRunes("~/journal"), keys)
	_, cmd, closed := m.Update(tea.KeyMsg{Type: tea.KeyEnter}, keys)
	if !closed {
		t.Fatal("modal must close on confirm")
	}

	msg, ok := cmd().(dirChosenMsg)
	if !ok {
		t.Fatalf("command produced %T, want dirChosenMsg", cmd())
	}
	if msg.path != "~/journal" {
		t.Fatalf("path = %q, want %q", msg.path, "~/journal")
	}
}

func TestDirPromptModalKeepsCurrentValue(t *testing.T) {
	modal := newDirPromptModal("/home/me/journal")
	keys := DefaultKeyMap()

	_, cmd, closed := modal.Update(tea.KeyMsg{Type: tea.KeyEnter}, keys)
	if !closed {
		t.Fatal("modal must close on confirm")
	}
	if msg := cmd().(dirChosenMsg); msg.path != "/home/me/journal" {
		t.Fatalf("path = %q, want the prefilled value", msg.path)
	}
}
