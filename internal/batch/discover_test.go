package batch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscoverSingleFile(t *testing.T) {
	dir := t.TempDir()
	video := filepath.Join(dir, "clip.mp4")
	touch(t, video)

	files, isDir, err := discover(video, false)
	if err != nil {
		t.Fatalf("discover() error = %v", err)
	}
	if isDir {
		t.Error("isDir = true for a file root")
	}
	if len(files) != 1 || files[0] != video {
		t.Errorf("files = %v, want [%s]", files, video)
	}
}

func TestDiscoverDirectory(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.mp4"))
	touch(t, filepath.Join(dir, "b.MOV"))
	touch(t, filepath.Join(dir, "c.avi"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "d.mkv"))
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0755); err != nil {
		t.Fatal(err)
	}
	touch(t, filepath.Join(dir, "nested", "e.mp4"))

	files, isDir, err := discover(dir, false)
	if err != nil {
		t.Fatalf("discover() error = %v", err)
	}
	if !isDir {
		t.Error("isDir = false for a directory root")
	}
	if len(files) != 3 {
		t.Fatalf("files = %v, want the 3 top-level videos", files)
	}
}

func TestDiscoverSkipsTranscribed(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "done.mp4"))
	touch(t, filepath.Join(dir, "done.srt"))
	touch(t, filepath.Join(dir, "todo.mp4"))

	files, _, err := discover(dir, false)
	if err != nil {
		t.Fatalf("discover() error = %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "todo.mp4" {
		t.Errorf("files = %v, want only todo.mp4", files)
	}

	// Force retranscribes everything.
	files, _, err = discover(dir, true)
	if err != nil {
		t.Fatalf("discover(force) error = %v", err)
	}
	if len(files) != 2 {
		t.Errorf("files with force = %v, want both videos", files)
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	_, _, err := discover("/nonexistent/path", false)
	if err == nil {
		t.Fatal("discover() should fail for a missing root")
	}
	var discoveryErr *DiscoveryError
	if !errors.As(err, &discoveryErr) {
		t.Errorf("error = %T, want *DiscoveryError", err)
	}
}
