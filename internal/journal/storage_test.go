package journal

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestStore_LoadMissingFile(t *testing.T) {
	s := newTestStore(t)

	text, ok, err := s.Load(context.Background(), "2026-01-20.md")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if ok {
		t.Fatal("ok = true, want false for missing file")
	}
	if text != "" {
		t.Fatalf("text = %q, want empty", text)
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	content := "# Hello\n\nélan ünïcode 日本語\nlast line, no trailing newline"
	if err := s.Save(ctx, "2026-01-20.md", content); err != nil {
		t.Fatalf("Save: %v", err)
	}

	text, ok, err := s.Load(ctx, "2026-01-20.md")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("ok = false, want true after save")
	}
	if text != content {
		t.Fatalf("text = %q, want %q", text, content)
	}
}

func TestStore_SaveOverwritesWholeFile(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "note.md", "a much longer first version"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(ctx, "note.md", "short"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	text, _, err := s.Load(ctx, "note.md")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if text != "short" {
		t.Fatalf("text = %q, want %q", text, "short")
	}
}

func TestStore_SaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "journal")
	s, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	if err := s.Save(context.Background(), "2026-01-20.md", "Hello"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "2026-01-20.md")); err != nil {
		t.Fatalf("saved file missing: %v", err)
	}
}

func TestStore_DeleteMissingFile(t *testing.T) {
	s := newTestStore(t)

	err := s.Delete(context.Background(), "Trip Notes.md")
	if !errors.Is(err, ErrNotExist) {
		t.Fatalf("Delete = %v, want ErrNotExist", err)
	}
}

func TestStore_DeleteRemovesFromList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "Trip Notes.md", "notes"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Delete(ctx, "Trip Notes.md"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	entries, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("List = %#v, want empty", entries)
	}
}

func TestStore_ListMissingDirectory(t *testing.T) {
	s, err := NewStore(filepath.Join(t.TempDir(), "never-created"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	entries, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("List = %#v, want empty", entries)
	}
}

func TestStore_ListOrderAndClassification(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	files := []string{
		"2026-01-18.md",
		"2026-01-20.md",
		"banana.md",
		"Apple pie.md",
		"2025-12-31.md",
		"zebra.md",
		"ignored.txt",
	}
	for _, f := range files {
		if err := s.Save(ctx, f, "x"); err != nil {
			t.Fatalf("Save %s: %v", f, err)
		}
	}

	entries, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	wantOrder := []string{
		"2026-01-20.md", // daily, newest first
		"2026-01-18.md",
		"2025-12-31.md",
		"Apple pie.md", // titled, case-insensitive alphabetical
		"banana.md",
		"zebra.md",
	}
	if len(entries) != len(wantOrder) {
		t.Fatalf("List returned %d entries, want %d: %#v", len(entries), len(wantOrder), entries)
	}
	for i, want := range wantOrder {
		if entries[i].Filename != want {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i].Filename, want)
		}
	}

	daily, titled := Partition(entries)
	if len(daily) != 3 || len(titled) != 3 {
		t.Fatalf("Partition = %d daily, %d titled, want 3 and 3", len(daily), len(titled))
	}
}

func TestStore_ListSkipsSubdirectories(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := os.MkdirAll(filepath.Join(s.Dir(), "nested.md"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := s.Save(ctx, "real.md", "x"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 || entries[0].Filename != "real.md" {
		t.Fatalf("List = %#v, want only real.md", entries)
	}
}

func TestNewStore_EmptyDirRejected(t *testing.T) {
	if _, err := NewStore("   "); err == nil {
		t.Fatal("NewStore with blank dir should fail")
	}
}
