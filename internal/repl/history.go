package repl

import (
	"os"

	"github.com/DogMillionaire/mal/internal/errs"
)

// History appends interactive input lines to history.txt in the
// working directory, one line per entry.
type History struct {
	file *os.File
}

// OpenHistory opens (creating if absent) history.txt for append.
func OpenHistory(path string) (*History, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errs.Wrap(errs.KindIO, "cannot open history file", err)
	}
	return &History{file: f}, nil
}

// Append writes line followed by a newline.
func (h *History) Append(line string) error {
	if _, err := h.file.WriteString(line + "\n"); err != nil {
		return errs.Wrap(errs.KindIO, "cannot write history", err)
	}
	return nil
}

// Close releases the underlying file handle.
func (h *History) Close() error {
	return h.file.Close()
}
