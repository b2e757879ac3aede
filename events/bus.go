// Package events is the typed publish/subscribe fabric shared by the core and
// its external subscribers. The set of topics is fixed by the Bus struct.
package events

import (
	"sync"
	"sync/atomic"
)

// Subscription identifies a handler registered on a Topic. The zero value
// is never issued and unsubscribing it is a no-op.
type Subscription uint64

type handler[T any] struct {
	id Subscription
	fn func(T)
}

// Topic delivers values of one message kind to its subscribers
// synchronously, in subscription order. Handlers may publish, subscribe or
// unsubscribe while being invoked; changes to the subscriber list take
// effect from the next Publish.
type Topic[T any] struct {
	mu       sync.Mutex
	ids      *atomic.Uint64
	handlers []handler[T]
}

func newTopic[T any](ids *atomic.Uint64) *Topic[T] {
	return &Topic[T]{ids: ids}
}

// Subscribe registers fn and returns the token needed to remove it.
func (t *Topic[T]) Subscribe(fn func(T)) Subscription {
	id := Subscription(t.ids.Add(1))
	t.mu.Lock()
	defer t.mu.Unlock()
	t.handlers = append(t.handlers, handler[T]{id: id, fn: fn})
	return id
}

// Unsubscribe removes the handler registered under id. It reports whether a
// handler was removed.
func (t *Topic[T]) Unsubscribe(id Subscription) bool {
	if id == 0 {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, h := range t.handlers {
		if h.id == id {
			// copy so an in-flight Publish keeps its own view
			next := make([]handler[T], 0, len(t.handlers)-1)
			next = append(next, t.handlers[:i]...)
			next = append(next, t.handlers[i+1:]...)
			t.handlers = next
			return true
		}
	}
	return false
}

// Publish invokes every current subscriber with msg and returns after the
// last one has returned.
func (t *Topic[T]) Publish(msg T) {
	t.mu.Lock()
	snapshot := t.handlers
	t.mu.Unlock()

	for _, h := range snapshot {
		h.fn(msg)
	}
}

// Len returns the number of subscribers.
func (t *Topic[T]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.handlers)
}

// Bus groups the topics of the game. Construct it once and pass it to every
// component that publishes or subscribes.
type Bus struct {
	ids atomic.Uint64

	Collected        *Topic[Collected]
	InventoryChanged *Topic[InventoryChanged]
}

// NewBus creates a bus with all topics ready.
func NewBus() *Bus {
	b := &Bus{}
	b.Collected = newTopic[Collected](&b.ids)
	b.InventoryChanged = newTopic[InventoryChanged](&b.ids)
	return b
}
