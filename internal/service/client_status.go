package service

import (
	"sync"

	"github.com/MKhiriev/fit-sync/models"
)

// StatusBroadcaster fans the latest [models.SyncState] out to subscribers.
// Each subscriber gets a one-slot channel; a slow reader only ever sees the
// most recent state.
type StatusBroadcaster struct {
	mu     sync.Mutex
	subs   map[int]chan models.SyncState
	nextID int
	last   models.SyncState
	closed bool
}

// NewStatusBroadcaster creates a broadcaster whose Last starts at initial.
func NewStatusBroadcaster(initial models.SyncState) *StatusBroadcaster {
	return &StatusBroadcaster{
		subs: make(map[int]chan models.SyncState),
		last: initial.Clone(),
	}
}

// Subscribe returns a channel primed with the current state and a function
// that unsubscribes and closes it.
func (b *StatusBroadcaster) Subscribe() (<-chan models.SyncState, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan models.SyncState, 1)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	ch <- b.last.Clone()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
			}
		})
	}
}

// Publish records s and delivers it without blocking.
func (b *StatusBroadcaster) Publish(s models.SyncState) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.last = s.Clone()
	for _, ch := range b.subs {
		deliverLatest(ch, b.last.Clone())
	}
}

// Last returns a copy of the most recently published state.
func (b *StatusBroadcaster) Last() models.SyncState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last.Clone()
}

// Close closes every subscriber channel. Later Publish calls are ignored.
func (b *StatusBroadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}

// deliverLatest replaces whatever is buffered in ch with s.
func deliverLatest(ch chan models.SyncState, s models.SyncState) {
	select {
	case ch <- s:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- s:
	default:
	}
}
