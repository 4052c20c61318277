// Package journal defines journal entries and their on-disk storage.
//
// # Overview
//
// A journal is a flat directory of Markdown files. Each file is one entry,
// and the filename alone determines the entry's identity and kind:
//
//   - Daily entries are named YYYY-MM-DD.md and belong to a calendar date.
//   - Titled entries are any other *.md file; the title is the filename
//     without the extension.
//
// This naming is the persisted format. Existing journal directories written
// by other builds of illien must keep working, so the daily-entry detection,
// the title sanitization rules, and the listing order are all fixed contracts.
//
// # Core Types
//
// Entry: a descriptor (filename, type, title, date) for one file. Entries
// carry no content; content is read and written through the Store.
//
// Store: the file-system adapter. It exposes exactly four operations:
//
//	Load(ctx, filename)   -> (text, ok, err)   ok=false means never saved
//	Save(ctx, filename, text) -> err           whole-file overwrite
//	List(ctx)             -> ([]Entry, err)    daily desc, then titled asc
//	Delete(ctx, filename) -> err               ErrNotExist when missing
//
// # Filename Sanitization
//
// Titles become filenames by replacing each of the characters
//
//	< > : " / \ | ? *
//
// with "-" and collapsing whitespace runs to a single space. Each disallowed
// character is replaced individually; runs are not merged. The title
// "My: Trip/Notes?" therefore becomes the file "My- Trip-Notes-.md".
//
// # Listing Order
//
// List returns daily entries first, newest date first, followed by titled
// entries sorted by case-insensitive title. The comparator matches the
// ordering users see in pre-existing journals and must not change.
package journal
