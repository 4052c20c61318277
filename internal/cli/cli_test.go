package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(context.Background())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListPrintsDailyThenTitled(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"Groceries.md", "2024-03-01.md", "2024-03-02.md", "apples.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x\n"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	out, err := runCommand(t, "--dir", dir, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	want := "2024-03-02\n2024-03-01\napples\nGroceries\n"
	if out != want {
		t.Fatalf("list output = %q, want %q", out, want)
	}
}

func TestListWithoutDirectoryFails(t *testing.T) {
	prefsPath := filepath.Join(t.TempDir(), "prefs.toml")
	if _, err := runCommand(t, "--prefs", prefsPath, "list"); err == nil {
		t.Fatal("expected error when no directory is configured")
	}
}

func TestCatByDate(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "2024-03-01.md"), []byte("march first\n"), 0o644); err != nil {
		t.Fatalf("write entry: %v", err)
	}

	out, err := runCommand(t, "--dir", dir, "cat", "--date", "2024-03-01")
	if err != nil {
		t.Fatalf("cat: %v", err)
	}
	if out != "march first\n" {
		t.Fatalf("cat output = %q, want %q", out, "march first\n")
	}
}

func TestCatByTitleSanitizes(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "My- Trip.md"), []byte("notes\n"), 0o644); err != nil {
		t.Fatalf("write entry: %v", err)
	}

	out, err := runCommand(t, "--dir", dir, "cat", "--title", "My: Trip")
	if err != nil {
		t.Fatalf("cat: %v", err)
	}
	if out != "notes\n" {
		t.Fatalf("cat output = %q, want %q", out, "notes\n")
	}
}

func TestCatMissingEntryFails(t *testing.T) {
	if _, err := runCommand(t, "--dir", t.TempDir(), "cat", "--title", "absent"); err == nil {
		t.Fatal("expected error for missing entry")
	}
}

func TestCatRejectsDateAndTitleTogether(t *testing.T) {
	if _, err := runCommand(t, "--dir", t.TempDir(), "cat", "--date", "2024-03-01", "--title", "x"); err == nil {
		t.Fatal("expected error for both --date and --title")
	}
}

func TestCatRejectsMalformedDate(t *testing.T) {
	if _, err := runCommand(t, "--dir", t.TempDir(), "cat", "--date", "March 1"); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestDirRoundTrip(t *testing.T) {
	prefsPath := filepath.Join(t.TempDir(), "prefs.toml")
	journalDir := t.TempDir()

	if _, err := runCommand(t, "--prefs", prefsPath, "dir", journalDir); err != nil {
		t.Fatalf("dir set: %v", err)
	}

	out, err := runCommand(t, "--prefs", prefsPath, "dir")
	if err != nil {
		t.Fatalf("dir get: %v", err)
	}
	if out != journalDir+"\n" {
		t.Fatalf("dir output = %q, want %q", out, journalDir+"\n")
	}
}

func TestDirUnsetFails(t *testing.T) {
	prefsPath := filepath.Join(t.TempDir(), "prefs.toml")
	if _, err := runCommand(t, "--prefs", prefsPath, "dir"); err == nil {
		t.Fatal("expected error when no directory is stored")
	}
}
