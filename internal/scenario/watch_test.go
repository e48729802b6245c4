package scenario

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIsScenarioFile(t *testing.T) {
	tests := map[string]bool{
		"hud.yaml":     true,
		"dir/hud.YML":  true,
		"hud.yaml.swp": false,
		"notes.txt":    false,
		"no-extension": false,
	}

	for path, want := range tests {
		t.Run(path, func(t *testing.T) {
			if got := IsScenarioFile(path); got != want {
				t.Errorf("IsScenarioFile(%q) = %v, want %v", path, got, want)
			}
		})
	}
}

func TestWatcher_ReportsScenarioWrites(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	path := filepath.Join(dir, "hud.yaml")
	if err := os.WriteFile(path, []byte(hudScenario), 0644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	select {
	case got := <-w.Events:
		if got != path {
			t.Errorf("event = %q, want %q", got, path)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Error("Events not closed after Close")
	}
}

func TestNewWatcher_MissingDir(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("NewWatcher(missing) error = nil, want error")
	}
}
