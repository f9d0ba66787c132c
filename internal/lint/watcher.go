package lint

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches AST envelope files for changes so callers can re-lint
// on save.
type Watcher struct {
	mu sync.Mutex

	// fsWatcher is the underlying file watcher.
	fsWatcher *fsnotify.Watcher

	// watched is the set of files and directories being watched.
	watched map[string]bool

	// Events channel receives change notifications.
	Events chan WatchEvent

	// Errors channel receives watcher errors.
	Errors chan error

	// done signals the watcher to stop.
	done      chan struct{}
	closeOnce sync.Once
}

// WatchEvent represents a file change event.
type WatchEvent struct {
	// Path is the envelope file that changed.
	Path string

	// Op is the operation (write, create, remove, etc.).
	Op fsnotify.Op
}

// NewWatcher creates a new file watcher.
func NewWatcher() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		watched:   make(map[string]bool),
		Events:    make(chan WatchEvent, 100),
		Errors:    make(chan error, 10),
		done:      make(chan struct{}),
	}

	go w.run()

	return w, nil
}

// Add adds a file or directory to watch. Directories are watched so new
// envelope files appearing in them are picked up.
func (w *Watcher) Add(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("getting absolute path: %w", err)
	}

	if w.watched[absPath] {
		return nil
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return err
	}

	// Editors often replace files on save; watching the parent directory
	// keeps events flowing after the inode changes.
	target := absPath
	if !info.IsDir() {
		target = filepath.Dir(absPath)
	}

	if !w.watched[target] {
		if err := w.fsWatcher.Add(target); err != nil {
			return fmt.Errorf("watching %s: %w", target, err)
		}
		w.watched[target] = true
	}
	w.watched[absPath] = true

	return nil
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsWatcher.Close()
	})
	return err
}

// run forwards relevant filesystem events until the watcher is closed.
func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !IsEnvelopeFile(filepath.Base(event.Name)) {
				continue
			}
			select {
			case w.Events <- WatchEvent{Path: event.Name, Op: event.Op}:
			case <-w.done:
				return
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.done:
				return
			}
		}
	}
}
