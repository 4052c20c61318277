package journal

import (
	"strings"
	"time"
)

// EntryType distinguishes date-bound entries from freely titled ones.
type EntryType string

const (
	TypeDaily  EntryType = "daily"
	TypeTitled EntryType = "titled"
)

// Entry describes one journal file. Filename is the identity; Date is the
// ISO date for daily entries and empty for titled ones.
type Entry struct {
	Filename string
	Type     EntryType
	Title    string
	Date     string
}

// IsDaily reports whether the entry is bound to a calendar date.
func (e Entry) IsDaily() bool {
	return e.Type == TypeDaily
}

// DailyEntry returns the descriptor for the daily entry of the given day.
func DailyEntry(t time.Time) Entry {
	date := t.Format("2006-01-02")
	return Entry{
		Filename: date + ".md",
		Type:     TypeDaily,
		Title:    date,
		Date:     date,
	}
}

// TitledEntry returns the descriptor for a titled entry. The supplied title
// is sanitized, so the descriptor's Title always matches the on-disk name.
func TitledEntry(title string) Entry {
	clean := SanitizeTitle(title)
	return Entry{
		Filename: clean + ".md",
		Type:     TypeTitled,
		Title:    clean,
	}
}

// EntryForFilename reconstructs a descriptor from an on-disk filename.
func EntryForFilename(filename string) Entry {
	if IsDailyFilename(filename) {
		date := filename[:10]
		return Entry{Filename: filename, Type: TypeDaily, Title: date, Date: date}
	}
	return Entry{
		Filename: filename,
		Type:     TypeTitled,
		Title:    strings.TrimSuffix(filename, ".md"),
	}
}

// IsDailyFilename reports whether filename has the exact YYYY-MM-DD.md shape.
func IsDailyFilename(filename string) bool {
	if len(filename) != 13 || !strings.HasSuffix(filename, ".md") {
		return false
	}
	if filename[4] != '-' || filename[7] != '-' {
		return false
	}
	return allDigits(filename[0:4]) && allDigits(filename[5:7]) && allDigits(filename[8:10])
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// SanitizeTitle maps a user-supplied title to its filename-safe form:
// every character not allowed in filenames becomes "-", and whitespace runs
// collapse to a single space. The result determines the on-disk identity.
func SanitizeTitle(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	inSpace := false
	for _, r := range title {
		switch r {
		case '<', '>', ':', '"', '/', '\\', '|', '?', '*':
			b.WriteByte('-')
			inSpace = false
		case ' ', '\t', '\n', '\r', '\f', '\v':
			if !inSpace {
				b.WriteByte(' ')
			}
			inSpace = true
		default:
			b.WriteRune(r)
			inSpace = false
		}
	}
	return b.String()
}
