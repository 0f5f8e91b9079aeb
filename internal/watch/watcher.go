// Package watch monitors an export folder and triggers a catalog
// rescan when the texture files in it change.
package watch

import (
	"fmt"
	"os"
	"sync"
	"time"

	"texwire/internal/log"

	"github.com/fsnotify/fsnotify"
)

// FileModification represents a file event detected by the watcher
type FileModification struct {
	Path      string
	Timestamp time.Time
	Op        fsnotify.Op
}

// Watcher monitors one directory for changes using fsnotify. Event
// bursts (a texture export writes many files at once) are coalesced:
// the callback fires once after the directory has been quiet for the
// configured period.
type Watcher struct {
	dir       string
	quiet     time.Duration
	fsWatcher *fsnotify.Watcher

	stopChan chan struct{}

	mutex   sync.Mutex
	running bool
}

// New creates a watcher for a directory. quiet is the debounce window
// applied to event bursts.
func New(dir string, quiet time.Duration) (*Watcher, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("error accessing directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	return &Watcher{
		dir:       dir,
		quiet:     quiet,
		fsWatcher: fsWatcher,
		stopChan:  make(chan struct{}),
	}, nil
}

// Directory returns the watched directory.
func (w *Watcher) Directory() string {
	return w.dir
}

// Start begins watching. onChange is called from the watch goroutine
// once per settled burst of file events. Start returns an error if the
// watcher is already running.
func (w *Watcher) Start(onChange func([]FileModification)) error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.stopChan = make(chan struct{})
	w.mutex.Unlock()

	go w.loop(onChange)
	return nil
}

func (w *Watcher) loop(onChange func([]FileModification)) {
	log.Debugf("watching %s", w.dir)

	var pending []FileModification
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			pending = append(pending, FileModification{
				Path:      event.Name,
				Timestamp: time.Now(),
				Op:        event.Op,
			})
			if timer == nil {
				timer = time.NewTimer(w.quiet)
			} else {
				timer.Reset(w.quiet)
			}
			fire = timer.C

		case <-fire:
			log.Debugf("directory settled after %d events", len(pending))
			batch := pending
			pending = nil
			fire = nil
			onChange(batch)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Warnf("watcher error: %v", err)

		case <-w.stopChan:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// Stop terminates the watch goroutine and releases the fsnotify
// watcher.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if !w.running {
		return
	}
	w.running = false
	close(w.stopChan)
	w.fsWatcher.Close()
}

// Running reports whether the watcher has been started and not yet
// stopped.
func (w *Watcher) Running() bool {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.running
}
