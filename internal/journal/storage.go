package journal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// Store reads and writes journal entries under a single directory.
type Store struct {
	dir string
}

// NewStore constructs a Store rooted at dir. The directory is created lazily
// on the first save, not here; a journal that has never been written to
// should leave no trace on disk.
func NewStore(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("journal directory is empty")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve journal directory: %w", err)
	}
	return &Store{dir: abs}, nil
}

// Dir returns the absolute journal directory.
func (s *Store) Dir() string {
	return s.dir
}

// Load returns the content of filename. ok is false when the file does not
// exist, which callers treat as an empty, never-saved entry.
func (s *Store) Load(ctx context.Context, filename string) (text string, ok bool, err error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("load entry %s: %w", filename, err)
	}
	return string(data), true, nil
}

// Save overwrites the whole file content for filename, creating the journal
// directory if needed.
func (s *Store) Save(ctx context.Context, filename, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, dirPermissions); err != nil {
		return fmt.Errorf("create journal directory: %w", err)
	}
	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, []byte(text), filePermissions); err != nil {
		return fmt.Errorf("save entry %s: %w", filename, err)
	}
	return nil
}

// Delete removes the file for filename. Deleting an entry that was never
// saved is an error, mirroring what the user sees in the sidebar.
func (s *Store) Delete(ctx context.Context, filename string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := filepath.Join(s.dir, filename)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNotExist
		}
		return fmt.Errorf("stat entry %s: %w", filename, err)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("delete entry %s: %w", filename, err)
	}
	return nil
}

// List scans the journal directory for *.md files and returns their
// descriptors: daily entries first by date descending, then titled entries
// by case-insensitive title. A missing directory lists as empty.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("list journal directory: %w", err)
	}

	var entries []Entry
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".md") {
			continue
		}
		entries = append(entries, EntryForFilename(de.Name()))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entryLess(entries[i], entries[j])
	})
	return entries, nil
}

func entryLess(a, b Entry) bool {
	switch {
	case a.IsDaily() && b.IsDaily():
		return a.Date > b.Date
	case a.IsDaily():
		return true
	case b.IsDaily():
		return false
	default:
		return strings.ToLower(a.Title) < strings.ToLower(b.Title)
	}
}

// Partition splits a List result into its daily and titled halves for
// sidebar display. Order within each half is preserved.
func Partition(entries []Entry) (daily, titled []Entry) {
	for _, e := range entries {
		if e.IsDaily() {
			daily = append(daily, e)
		} else {
			titled = append(titled, e)
		}
	}
	return daily, titled
}
