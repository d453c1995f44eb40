package timelog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jidn/idid-cli/internal/files"
)

// appendAttempts bounds how often a missing file or directory is created
// and the append retried before the error surfaces.
const appendAttempts = 2

// Writer appends records to the TSV file owned by a files.Manager.
type Writer struct {
	manager *files.Manager
}

// NewWriter wires a writer using the shared files.Manager.
func NewWriter(manager *files.Manager) *Writer {
	return &Writer{manager: manager}
}

// Append records text with the given end timestamp. When the file or its
// directories do not exist yet they are created and the append retried.
func (w *Writer) Append(ctx context.Context, at time.Time, text string) error {
	if w == nil || w.manager == nil {
		return errors.New("writer not initialized with file manager")
	}

	line := FormatLine(at, text) + "\n"
	var lastErr error
	for attempt := 0; attempt <= appendAttempts; attempt++ {
		err := appendLine(w.manager.TSVPath(), line)
		if err == nil {
			return nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		lastErr = err
		if err := w.manager.EnsureFile(); err != nil {
			return err
		}
	}
	return fmt.Errorf("append after %d attempts: %w", appendAttempts, lastErr)
}

func appendLine(path, line string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return err
	}
	if _, err := file.WriteString(line); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
