package timelog

import (
	"context"
	"errors"
	"os"

	"github.com/jidn/idid-cli/internal/dates"
	"github.com/jidn/idid-cli/internal/files"
)

// ErrNoEntries is returned by Last when the log holds nothing.
var ErrNoEntries = errors.New("log has no entries")

// Reader reconstructs entries from the TSV file owned by a files.Manager.
type Reader struct {
	manager *files.Manager

	// StartText overrides the marker sentinel; empty means DefaultStartText.
	StartText string
	// BufferSize overrides the backward-read chunk size; 0 means
	// DefaultBufferSize.
	BufferSize int
}

// NewReader wires a reader using the shared files.Manager.
func NewReader(manager *files.Manager) *Reader {
	return &Reader{manager: manager}
}

// Query returns entries whose begin date falls inside at least one range
// and whose text passes every filter, in chronological order. A missing
// log file behaves like an empty one. An empty range set returns no
// entries without touching the file.
func (r *Reader) Query(ctx context.Context, ranges []dates.DateRange, filters []Filter) ([]Entry, error) {
	if r == nil || r.manager == nil {
		return nil, errors.New("reader not initialized with file manager")
	}
	if len(ranges) == 0 {
		return []Entry{}, nil
	}

	file, scanner, err := OpenBackward(r.manager.TSVPath(), r.BufferSize)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Entry{}, nil
		}
		return nil, err
	}
	defer file.Close()

	return Reconstruct(ranges, filters, scanner, r.StartText)
}

// Last returns the most recent stored line as a zero-duration entry; its
// Begin and Cease are both the stored timestamp. Useful for the
// "in progress" trailer.
func (r *Reader) Last(ctx context.Context) (Entry, error) {
	if r == nil || r.manager == nil {
		return Entry{}, errors.New("reader not initialized with file manager")
	}

	file, scanner, err := OpenBackward(r.manager.TSVPath(), r.BufferSize)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Entry{}, ErrNoEntries
		}
		return Entry{}, err
	}
	defer file.Close()

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		return ParseLine(line)
	}
	if err := scanner.Err(); err != nil {
		return Entry{}, err
	}
	return Entry{}, ErrNoEntries
}
