// Package projector holds the in-memory lists the presentation layer renders.
//
// A Snapshot is replaced wholesale, never edited. Readers always see either
// the old or the new list. Whether observers are pushed each replacement or
// must poll Get is fixed per snapshot by its Mode.
package projector

import (
	"errors"
	"slices"
	"sync"
	"sync/atomic"
)

// ErrNotObservable is returned by Subscribe on a pull-mode snapshot.
var ErrNotObservable = errors.New("snapshot is pull-only")

type Mode int

const (
	// ModePull snapshots are read on demand; nobody is notified of changes.
	ModePull Mode = iota
	// ModePush snapshots deliver every replacement to subscribers.
	ModePush
)

type Snapshot[T any] struct {
	mode    Mode
	current atomic.Pointer[[]T]
	version atomic.Uint64

	mu     sync.Mutex // serializes Replace and guards subs
	subs   map[uint64]chan []T
	nextID uint64
}

func New[T any](mode Mode) *Snapshot[T] {
	s := &Snapshot[T]{mode: mode, subs: make(map[uint64]chan []T)}
	empty := []T{}
	s.current.Store(&empty)
	return s
}

// Get returns a copy of the current list.
func (s *Snapshot[T]) Get() []T {
	return slices.Clone(*s.current.Load())
}

// Version counts replacements since construction.
func (s *Snapshot[T]) Version() uint64 {
	return s.version.Load()
}

// Replace swaps in a copy of list and, in push mode, notifies subscribers.
func (s *Snapshot[T]) Replace(list []T) {
	next := slices.Clone(list)
	if next == nil {
		next = []T{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current.Store(&next)
	s.version.Add(1)
	for _, ch := range s.subs {
		deliver(ch, slices.Clone(next))
	}
}

// Subscribe registers a push observer. The channel receives the current
// list right away and then each replacement. A slow observer only sees the
// latest list. cancel closes the channel; it is safe to call more than once.
func (s *Snapshot[T]) Subscribe() (<-chan []T, func(), error) {
	if s.mode != ModePush {
		return nil, func() {}, ErrNotObservable
	}

	ch := make(chan []T, 1)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	ch <- s.Get()
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			close(ch)
			s.mu.Unlock()
		})
	}
	return ch, cancel, nil
}

// Subscribers reports the number of live push observers.
func (s *Snapshot[T]) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// deliver drops an undelivered older value so the newest always fits.
// Callers hold s.mu, so nobody else sends on ch concurrently.
func deliver[T any](ch chan []T, list []T) {
	select {
	case ch <- list:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- list
}
