// Package watch reports annotation docs created or written in a directory.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/revelaction/segfolia/logger"
)

// DefaultExtensions are the file extensions watched when none are given.
var DefaultExtensions = []string{".json"}

// DefaultDelay is how long a path must be quiet before its event is reported.
const DefaultDelay = 200 * time.Millisecond

type Operation int

const (
	Created Operation = iota
	Modified
)

func (o Operation) String() string {
	if o == Created {
		return "created"
	}
	return "modified"
}

type Event struct {
	Path      string
	Operation Operation
}

// Watcher wraps a fsnotify watcher, filtering events by file extension.
type Watcher struct {
	// Quiet period before an event is reported
	Delay time.Duration

	watcher    *fsnotify.Watcher
	extensions []string
}

func NewWatcher(extensions []string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	return &Watcher{
		Delay:      DefaultDelay,
		watcher:    w,
		extensions: extensions,
	}, nil
}

// Watch starts monitoring dir. Events of a path are coalesced until the path
// has been quiet for Delay, so a file is reported once its writer is done.
// The reported operation is the first one seen. The returned channel is
// closed when ctx is done or the watcher is stopped.
func (w *Watcher) Watch(ctx context.Context, dir string) (<-chan Event, error) {
	if err := w.watcher.Add(dir); err != nil {
		return nil, err
	}

	events := make(chan Event, 100)

	go func() {
		defer close(events)

		quit := make(chan struct{})
		defer close(quit)

		ready := make(chan settled)
		pending := map[string]*pendingEvent{}
		defer func() {
			for _, p := range pending {
				p.timer.Stop()
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if !w.isWatchedExtension(event.Name) {
					continue
				}

				var op Operation
				switch {
				case event.Has(fsnotify.Create):
					op = Created
				case event.Has(fsnotify.Write):
					op = Modified
				default:
					continue
				}

				p, ok := pending[event.Name]
				if !ok {
					p = &pendingEvent{op: op}
					pending[event.Name] = p
				} else {
					p.timer.Stop()
				}
				p.gen++
				p.timer = w.settleAfter(settled{path: event.Name, gen: p.gen}, ready, quit)

			case s := <-ready:
				p, ok := pending[s.path]
				// A later event restarted the delay.
				if !ok || p.gen != s.gen {
					continue
				}
				delete(pending, s.path)

				select {
				case events <- Event{Path: s.path, Operation: p.op}:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("watch %s: %v", dir, err)
			}
		}
	}()

	return events, nil
}

type pendingEvent struct {
	op    Operation
	gen   int
	timer *time.Timer
}

type settled struct {
	path string
	gen  int
}

func (w *Watcher) settleAfter(s settled, ready chan<- settled, quit <-chan struct{}) *time.Timer {
	return time.AfterFunc(w.Delay, func() {
		select {
		case ready <- s:
		case <-quit:
		}
	})
}

func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

func (w *Watcher) isWatchedExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range w.extensions {
		if ext == e {
			return true
		}
	}
	return false
}
