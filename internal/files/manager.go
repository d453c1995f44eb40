// Package files centralizes where the accomplishment TSV lives on disk and
// how it is created on first use.
package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o600
)

// DefaultRelPath locates the TSV under the user's home directory when
// nothing overrides it.
const DefaultRelPath = ".local/share/idid/idid.tsv"

// Manager holds the resolved absolute path of the TSV file.
type Manager struct {
	tsvPath string
}

// NewManager constructs a Manager for the given TSV path. An empty path
// falls back to DefaultTSVPath. A leading ~ is expanded.
func NewManager(path string) (*Manager, error) {
	var err error
	if path == "" {
		path, err = DefaultTSVPath()
		if err != nil {
			return nil, err
		}
	}
	path, err = homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand path: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return &Manager{tsvPath: abs}, nil
}

// TSVPath returns the absolute path of the log file. The file may not
// exist yet; read paths treat a missing file as an empty log.
func (m *Manager) TSVPath() string {
	return m.tsvPath
}

// EnsureFile creates the parent directories and an empty TSV if the file
// does not exist yet.
func (m *Manager) EnsureFile() error {
	if m == nil {
		return errors.New("files.Manager is nil")
	}
	if err := os.MkdirAll(filepath.Dir(m.tsvPath), dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	file, err := os.OpenFile(m.tsvPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, filePermissions)
	if err != nil {
		return fmt.Errorf("create log file: %w", err)
	}
	return file.Close()
}

// DefaultTSVPath resolves DefaultRelPath against the user's home directory.
func DefaultTSVPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, filepath.FromSlash(DefaultRelPath)), nil
}
