package journal

import "errors"

// ErrNotExist is returned by Delete when the entry has no file on disk.
var ErrNotExist = errors.New("journal entry does not exist")
