package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/colonyops/dossier/internal/core/logging"
)

const (
	debounceDelay   = 50 * time.Millisecond
	eventBufferSize = 16
)

// ChangeEvent reports that a record file was written.
type ChangeEvent struct {
	ID        string
	Timestamp time.Time
}

// Watcher watches a directory of record files using fsnotify.
type Watcher struct {
	dir     string
	watcher *fsnotify.Watcher

	mu          sync.Mutex
	subscribers map[string][]chan ChangeEvent // id or "*" -> channels
	debounce    map[string]*time.Timer        // id -> debounce timer

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher for dir. The directory is created if it
// doesn't exist.
func NewWatcher(dir string) (*Watcher, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		dir:         dir,
		watcher:     fw,
		subscribers: make(map[string][]chan ChangeEvent),
		debounce:    make(map[string]*time.Timer),
		ctx:         ctx,
		cancel:      cancel,
	}

	w.wg.Add(1)
	go w.run()

	return w, nil
}

// Watch returns a channel that receives an event each time the record with
// the given ID changes. Use "*" to watch every record. The channel is
// closed when ctx is done or the watcher is closed.
func (w *Watcher) Watch(ctx context.Context, id string) <-chan ChangeEvent {
	ch := make(chan ChangeEvent, eventBufferSize)

	w.mu.Lock()
	w.subscribers[id] = append(w.subscribers[id], ch)
	w.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			w.unsubscribe(id, ch)
		case <-w.ctx.Done():
			// Watcher is closing, channel will be closed by Close()
		}
	}()

	return ch
}

// Close stops watching and closes all subscriber channels.
func (w *Watcher) Close() error {
	w.cancel()

	w.mu.Lock()
	for _, timer := range w.debounce {
		timer.Stop()
	}
	for _, subs := range w.subscribers {
		for _, ch := range subs {
			close(ch)
		}
	}
	w.subscribers = make(map[string][]chan ChangeEvent)
	w.mu.Unlock()

	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) unsubscribe(id string, ch chan ChangeEvent) {
	w.mu.Lock()
	defer w.mu.Unlock()

	subs := w.subscribers[id]
	for i, sub := range subs {
		if sub == ch {
			w.subscribers[id] = append(subs[:i], subs[i+1:]...)
			close(ch)
			break
		}
	}
	if len(w.subscribers[id]) == 0 {
		delete(w.subscribers, id)
	}
}

func (w *Watcher) run() {
	defer w.wg.Done()

	logger := logging.Component("watcher")
	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn().Err(err).Str("dir", w.dir).Msg("watch error")
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	filename := filepath.Base(event.Name)
	if !strings.HasSuffix(filename, ".json") {
		return
	}
	id := strings.TrimSuffix(filename, ".json")

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.ctx.Err() != nil {
		return
	}
	if timer, exists := w.debounce[id]; exists {
		timer.Stop()
	}
	w.debounce[id] = time.AfterFunc(debounceDelay, func() {
		w.notify(id)
	})
}

func (w *Watcher) notify(id string) {
	event := ChangeEvent{ID: id, Timestamp: time.Now()}

	w.mu.Lock()
	defer w.mu.Unlock()

	delete(w.debounce, id)
	if w.ctx.Err() != nil {
		return
	}

	for _, key := range []string{id, "*"} {
		for _, ch := range w.subscribers[key] {
			select {
			case ch <- event:
			default:
				// Channel full, drop event to prevent blocking
			}
		}
	}
}
