package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is emitted by Disk.Watch when a stored key changes on disk.
type Event struct {
	// Key is the storage key that changed. Empty means "something changed,
	// reload everything".
	Key string
}

// Watch streams change events until ctx is cancelled. Callers should drain the
// returned channel to avoid blocking the watcher. The channel is closed once
// ctx is done or the watcher encounters an unrecoverable error. Errors from
// the watcher are passed to onErr when it is not nil.
func (p *Disk) Watch(ctx context.Context, onErr func(error)) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, fmt.Errorf("store: base path unknown")
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(p.basePath); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	events := make(chan Event, 16)

	go func() {
		var (
			mu     sync.Mutex
			closed bool
		)
		defer func() {
			mu.Lock()
			closed = true
			close(events)
			mu.Unlock()
		}()
		defer watcher.Close()

		send := func(ev Event) {
			mu.Lock()
			defer mu.Unlock()
			if closed {
				return
			}
			select {
			case events <- ev:
			default:
				// Drop events if the consumer is not ready; the next one
				// triggers the same reload.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				if onErr != nil {
					onErr(err)
				}
				throttle.Enqueue(Event{}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				key := p.keyForPath(evt.Name)
				if key == "" {
					continue
				}
				throttle.Enqueue(Event{Key: key}, send)
			}
		}
	}()

	return events, nil
}

// keyForPath maps a file path under the base path back to its key. diskv
// writes through temporary files; those are ignored.
func (p *Disk) keyForPath(path string) string {
	rel, err := filepath.Rel(p.basePath, path)
	if err != nil || rel == "." || strings.Contains(rel, string(os.PathSeparator)) {
		return ""
	}
	if strings.HasPrefix(rel, ".") || strings.HasSuffix(rel, ".tmp") {
		return ""
	}
	return rel
}

// eventThrottle coalesces rapid change notifications so consumers reload once
// per burst of filesystem activity instead of on every single write.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]struct{}
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[string]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	t.pending[ev.Key] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[string]struct{})
	t.timer = nil
	t.mu.Unlock()

	if _, all := pending[""]; all {
		send(Event{})
		return
	}
	for key := range pending {
		send(Event{Key: key})
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
