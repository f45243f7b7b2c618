package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileTriggersOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spec.yaml")
	if err := os.WriteFile(path, []byte("provider: p\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	fired := make(chan struct{}, 8)
	closer, err := File(path, 50*time.Millisecond, func() {
		fired <- struct{}{}
	})
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()

	if err := os.WriteFile(path, []byte("provider: q\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not fire after write")
	}
}

func TestFileIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spec.yaml")
	if err := os.WriteFile(path, []byte("provider: p\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	fired := make(chan struct{}, 8)
	closer, err := File(path, 30*time.Millisecond, func() {
		fired <- struct{}{}
	})
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case <-fired:
		t.Fatal("watcher fired for an unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestFileCloseStopsLoop(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spec.yaml")
	if err := os.WriteFile(path, []byte("provider: p\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	closer, err := File(path, 10*time.Millisecond, func() {})
	if err != nil {
		t.Fatal(err)
	}
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}
}
