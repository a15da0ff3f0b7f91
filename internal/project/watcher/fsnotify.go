package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches a single file using fsnotify.
type FileWatcher struct {
	mu sync.Mutex

	watcher *fsnotify.Watcher
	config  Config

	path string // absolute path of the watched file, or ""
	dir  string // directory registered with fsnotify

	pending *Event
	timer   *time.Timer

	events chan Event
	errors chan error

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// New creates a watcher. Call Watch to select the file.
func New(opts ...Option) (*FileWatcher, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.BufferSize <= 0 {
		config.BufferSize = 16
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &FileWatcher{
		watcher: fsw,
		config:  config,
		events:  make(chan Event, config.BufferSize),
		errors:  make(chan error, config.BufferSize),
		closeCh: make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Watch switches the watcher to path. The file's directory must exist.
func (w *FileWatcher) Watch(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(absPath)
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return ErrPathNotExist
		}
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if dir != w.dir {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
		if w.dir != "" {
			_ = w.watcher.Remove(w.dir) // the old directory may be gone
		}
		w.dir = dir
	}
	w.path = absPath
	w.dropPendingLocked()
	return nil
}

// Path returns the watched file, or "" if none.
func (w *FileWatcher) Path() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

// Events returns the event channel.
func (w *FileWatcher) Events() <-chan Event {
	return w.events
}

// Errors returns the error channel.
func (w *FileWatcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher and closes its channels.
func (w *FileWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.dropPendingLocked()
	close(w.closeCh)
	w.mu.Unlock()

	w.closedWg.Wait()

	close(w.events)
	close(w.errors)

	return w.watcher.Close()
}

// processLoop handles incoming fsnotify events.
func (w *FileWatcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case fsEvent, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(fsEvent)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

// handleFSEvent records an event for the watched file and (re)arms the
// debounce timer.
func (w *FileWatcher) handleFSEvent(fsEvent fsnotify.Event) {
	op := convertOp(fsEvent.Op)
	if op == 0 {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || w.path == "" || filepath.Clean(fsEvent.Name) != w.path {
		return
	}

	now := time.Now()
	if w.pending != nil {
		w.pending.Op |= op
		w.pending.Timestamp = now
		w.timer.Reset(w.config.DebounceDelay)
		return
	}

	w.pending = &Event{Path: w.path, Op: op, Timestamp: now}
	w.timer = time.AfterFunc(w.config.DebounceDelay, w.fire)
}

// fire sends the pending event. The send happens under the lock so that
// it cannot race with Close closing the channel.
func (w *FileWatcher) fire() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending == nil || w.closed {
		return
	}
	event := *w.pending
	w.pending = nil
	w.timer = nil

	select {
	case w.events <- event:
	default:
		// Channel full; the receiver already has a change to look at.
	}
}

func (w *FileWatcher) dropPendingLocked() {
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.pending = nil
}

func (w *FileWatcher) sendError(err error) {
	select {
	case w.errors <- err:
	case <-w.closeCh:
	default:
	}
}

// convertOp converts fsnotify operations to our Op type.
func convertOp(op fsnotify.Op) Op {
	var result Op
	if op.Has(fsnotify.Create) {
		result |= OpCreate
	}
	if op.Has(fsnotify.Write) {
		result |= OpWrite
	}
	if op.Has(fsnotify.Remove) {
		result |= OpRemove
	}
	if op.Has(fsnotify.Rename) {
		result |= OpRename
	}
	return result
}
