// Package store holds the details state shared between the document loader
// and the details view. Readers always receive whole snapshots, so a single
// render never mixes fields from two different states.
package store

import (
	"context"
	"sync"

	"github.com/colonyops/dossier/internal/core/document"
	"github.com/colonyops/dossier/internal/core/logging"
)

// Snapshot is one consistent view of the store.
type Snapshot struct {
	Data              document.DetailsState
	IsError           bool
	IsLoadingSkeleton bool
	Version           uint64 // bumped on every change
}

// Selectors over a snapshot.
func SelectData(s Snapshot) document.DetailsState { return s.Data }
func SelectIsError(s Snapshot) bool                { return s.IsError }
func SelectIsSkeleton(s Snapshot) bool             { return s.IsLoadingSkeleton }
func SelectDocumentID(s Snapshot) string           { return s.Data.ID }

// Store is the details store. The zero value is not usable; use New.
type Store struct {
	mu          sync.RWMutex
	snap        Snapshot
	subscribers []chan Snapshot
	closed      bool
	done        chan struct{} // closed by Close to release subscriber goroutines
	wg          sync.WaitGroup
}

// New creates a store in the loading state with no data.
func New() *Store {
	return &Store{
		snap: Snapshot{IsLoadingSkeleton: true},
		done: make(chan struct{}),
	}
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Dispatch applies an action. Subscribers are notified only when the
// resulting snapshot differs from the current one under shallow equality.
// Returns true if the snapshot changed.
func (s *Store) Dispatch(a Action) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := a.reduce(s.snap)
	if Equal(s.snap, next) {
		return false
	}
	next.Version = s.snap.Version + 1
	s.snap = next

	logger := logging.Component("store")
	logger.Debug().
		Str("action", a.name()).
		Str("document_id", next.Data.ID).
		Bool("error", next.IsError).
		Bool("loading", next.IsLoadingSkeleton).
		Uint64("version", next.Version).
		Msg("snapshot changed")

	if !s.closed {
		for _, ch := range s.subscribers {
			offerLatest(ch, next)
		}
	}
	return true
}

// Subscribe returns a channel that receives each changed snapshot. Slow
// readers only ever see the latest snapshot; intermediate ones are dropped.
// The channel is closed when ctx is done or the store is closed.
func (s *Store) Subscribe(ctx context.Context) <-chan Snapshot {
	ch := make(chan Snapshot, 1)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(ch)
		return ch
	}
	s.subscribers = append(s.subscribers, ch)
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		select {
		case <-ctx.Done():
			s.unsubscribe(ch)
		case <-s.done:
		}
	}()

	return ch
}

// Close closes all subscriber channels and waits for their goroutines to
// exit. Dispatch keeps working afterwards but no longer notifies.
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.done)
	for _, ch := range s.subscribers {
		close(ch)
	}
	s.subscribers = nil
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Store) unsubscribe(ch chan Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sub := range s.subscribers {
		if sub == ch {
			s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
			close(ch)
			return
		}
	}
}

// offerLatest replaces any undelivered snapshot with snap. Callers hold s.mu.
func offerLatest(ch chan Snapshot, snap Snapshot) {
	select {
	case ch <- snap:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- snap:
	default:
	}
}

// Equal compares two snapshots shallowly: scalar fields by value, the
// attachment slice and linked document by identity. Version is ignored.
func Equal(a, b Snapshot) bool {
	return a.IsError == b.IsError &&
		a.IsLoadingSkeleton == b.IsLoadingSkeleton &&
		SameData(a.Data, b.Data)
}

// SameData is the shallow comparison Equal applies to the data slice.
func SameData(a, b document.DetailsState) bool {
	return a.ID == b.ID &&
		a.Number == b.Number &&
		a.CreatedAt.Equal(b.CreatedAt) &&
		a.Type == b.Type &&
		a.Status == b.Status &&
		a.Account == b.Account &&
		a.ItemCount == b.ItemCount &&
		a.Fee == b.Fee &&
		a.LinkedDocument == b.LinkedDocument &&
		sameAttachments(a.Attachments, b.Attachments)
}

func sameAttachments(a, b []document.Attachment) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}
