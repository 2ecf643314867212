package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/editkit/cutscribe/internal/logger"
)

// New creates a Watcher that hands newly created videos in rootDir to
// the handler, running at most maxConcurrent handlers at once.
func New(rootDir string, handler EventHandler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsWatcher.Add(rootDir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	return &implWatcher{
		rootDir: rootDir,
		handler: handler,
		logger:  log,
		watcher: fsWatcher,
		sem:     newSemaphore(maxConcurrent),
	}, nil
}
