package files

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewManagerDefaultsToHome(t *testing.T) {
	mgr, err := NewManager("")
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if !strings.HasSuffix(mgr.TSVPath(), filepath.FromSlash(DefaultRelPath)) {
		t.Fatalf("TSVPath = %q, want suffix %q", mgr.TSVPath(), DefaultRelPath)
	}
}

func TestNewManagerExpandsTilde(t *testing.T) {
	mgr, err := NewManager("~/worklog/idid.tsv")
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if strings.Contains(mgr.TSVPath(), "~") {
		t.Fatalf("tilde not expanded: %q", mgr.TSVPath())
	}
	if !filepath.IsAbs(mgr.TSVPath()) {
		t.Fatalf("path not absolute: %q", mgr.TSVPath())
	}
}

func TestEnsureFileCreatesMissingDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dirs", "idid.tsv")
	mgr, err := NewManager(path)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	if err := mgr.EnsureFile(); err != nil {
		t.Fatalf("EnsureFile: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size() != 0 {
		t.Fatalf("new file not empty: %d bytes", info.Size())
	}

	// A second call must not truncate existing content.
	if err := os.WriteFile(path, []byte("line\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := mgr.EnsureFile(); err != nil {
		t.Fatalf("EnsureFile again: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "line\n" {
		t.Fatalf("content lost: %q", data)
	}
}
