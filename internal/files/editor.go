package files

import (
	"errors"
	"os"
	"os/exec"
)

// ErrNoEditor is returned when EDITOR is not set.
var ErrNoEditor = errors.New("EDITOR is not set")

// OpenInEditor opens path with the user's EDITOR, positioned at the end of
// the file the way vi derivatives understand "+$".
func OpenInEditor(path string) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		return ErrNoEditor
	}

	cmd := exec.Command(editor, path, "+$")
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
