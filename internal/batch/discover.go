package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// videoExtensions lists the media files batch discovery picks up.
var videoExtensions = []string{".mp4", ".mov", ".avi"}

// DiscoveryError reports a root path the batch could not enumerate.
type DiscoveryError struct {
	Path string
	Err  error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("discover %s: %v", e.Path, e.Err)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// discover resolves the job set for a root path. A file root yields
// that one file; a directory root yields every video directly inside
// it (no recursion). Without force, files with an existing caption
// beside them are excluded before dispatch.
func discover(root string, force bool) (files []string, isDir bool, err error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, false, &DiscoveryError{Path: root, Err: err}
	}

	if !info.IsDir() {
		return []string{root}, false, nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, true, &DiscoveryError{Path: root, Err: err}
	}

	for _, entry := range entries {
		if entry.IsDir() || !isVideoFile(entry.Name()) {
			continue
		}
		path := filepath.Join(root, entry.Name())
		if !force && captionExists(path) {
			continue
		}
		files = append(files, path)
	}

	return files, true, nil
}

// isVideoFile checks if the file has a supported video extension.
func isVideoFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, supported := range videoExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// captionExists reports whether a same-named .srt already sits beside
// the video, which marks the file as already transcribed.
func captionExists(videoPath string) bool {
	srtPath := strings.TrimSuffix(videoPath, filepath.Ext(videoPath)) + ".srt"
	_, err := os.Stat(srtPath)
	return err == nil
}
