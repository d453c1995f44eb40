package timelog

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultBufferSize is the working-buffer size for backward reads.
const DefaultBufferSize = 8192

// BackwardScanner walks a file's lines in reverse order, last line first,
// reading fixed-size chunks backward from the end so the file never has to
// fit in memory. The API mirrors bufio.Scanner: call Scan until it returns
// false, then check Err.
type BackwardScanner struct {
	src     io.ReaderAt
	size    int64
	read    int64 // bytes consumed, counted from the end of the file
	bufSize int

	queue   []string // complete lines ready to emit, newest first
	segment *string  // partial first line of the previous chunk
	line    string
	err     error
}

// NewBackwardScanner prepares a scanner over src, which holds size bytes.
// A bufSize below 1 falls back to DefaultBufferSize.
func NewBackwardScanner(src io.ReaderAt, size int64, bufSize int) *BackwardScanner {
	if bufSize < 1 {
		bufSize = DefaultBufferSize
	}
	return &BackwardScanner{src: src, size: size, bufSize: bufSize}
}

// OpenBackward opens path for backward scanning. The caller must Close the
// returned file once scanning is done.
func OpenBackward(path string, bufSize int) (*os.File, *BackwardScanner, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, nil, fmt.Errorf("stat %s: %w", path, err)
	}
	return file, NewBackwardScanner(file, info.Size(), bufSize), nil
}

// Scan advances to the next line in reverse order. It returns false at the
// start of the file or on a read error.
func (s *BackwardScanner) Scan() bool {
	for {
		if len(s.queue) > 0 {
			s.line = s.queue[0]
			s.queue = s.queue[1:]
			return true
		}
		if s.read >= s.size {
			// Start of file: the carried fragment is the first line.
			if s.segment != nil {
				s.line = *s.segment
				s.segment = nil
				return true
			}
			return false
		}
		if err := s.fill(); err != nil {
			s.err = err
			return false
		}
	}
}

// Text returns the line found by the last call to Scan.
func (s *BackwardScanner) Text() string {
	return s.line
}

// Err returns the first read error encountered, if any.
func (s *BackwardScanner) Err() error {
	return s.err
}

// fill reads the next chunk walking backward and queues its complete lines.
// The chunk's leading fragment may continue a line whose prefix lives in the
// next chunk back, so it is carried instead of emitted.
func (s *BackwardScanner) fill() error {
	remaining := s.size - s.read
	chunkLen := int64(s.bufSize)
	if chunkLen > remaining {
		chunkLen = remaining
	}
	start := s.size - s.read - chunkLen

	buf := make([]byte, chunkLen)
	if _, err := s.src.ReadAt(buf, start); err != nil && err != io.EOF {
		return fmt.Errorf("read chunk at %d: %w", start, err)
	}
	s.read += chunkLen

	chunk := string(buf)
	lines := strings.Split(chunk, "\n")

	if s.segment != nil {
		if !strings.HasSuffix(chunk, "\n") {
			// The carried fragment is the tail of this chunk's last line.
			lines[len(lines)-1] += *s.segment
		} else {
			s.queue = append(s.queue, *s.segment)
		}
		s.segment = nil
	}

	carry := lines[0]
	s.segment = &carry
	for i := len(lines) - 1; i > 0; i-- {
		if lines[i] != "" {
			s.queue = append(s.queue, lines[i])
		}
	}
	return nil
}
