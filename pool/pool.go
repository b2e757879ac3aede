// Package pool keeps per-type bookkeeping of reusable handles. It never
// allocates handles itself.
package pool

import (
	"iter"
)

type bucket[H comparable] struct {
	queue  []H // pooled, FIFO
	pooled map[H]struct{}
	active []H // insertion order
	index  map[H]struct{}
}

func newBucket[H comparable]() *bucket[H] {
	return &bucket[H]{
		pooled: make(map[H]struct{}),
		index:  make(map[H]struct{}),
	}
}

func (b *bucket[H]) tracked(h H) bool {
	_, inPool := b.pooled[h]
	_, inActive := b.index[h]
	return inPool || inActive
}

func (b *bucket[H]) enqueue(h H) {
	b.queue = append(b.queue, h)
	b.pooled[h] = struct{}{}
}

func (b *bucket[H]) removeActive(h H) bool {
	if _, ok := b.index[h]; !ok {
		return false
	}
	delete(b.index, h)
	for i, a := range b.active {
		if a == h {
			b.active = append(b.active[:i], b.active[i+1:]...)
			break
		}
	}
	return true
}

// Pool tracks, for every key K, which handles are pooled and which are
// active. A tracked handle is always in exactly one of the two sets.
type Pool[K comparable, H comparable] struct {
	buckets   map[K]*bucket[H]
	order     []K
	setActive func(h H, active bool)
}

// New creates a pool. setActive is called whenever a handle changes side;
// it may be nil.
func New[K comparable, H comparable](setActive func(h H, active bool)) *Pool[K, H] {
	if setActive == nil {
		setActive = func(H, bool) {}
	}
	return &Pool[K, H]{
		buckets:   make(map[K]*bucket[H]),
		setActive: setActive,
	}
}

// RegisterType ensures an empty queue and active set exist for k.
func (p *Pool[K, H]) RegisterType(k K) {
	p.bucket(k)
}

func (p *Pool[K, H]) bucket(k K) *bucket[H] {
	b, ok := p.buckets[k]
	if !ok {
		b = newBucket[H]()
		p.buckets[k] = b
		p.order = append(p.order, k)
	}
	return b
}

// AddToPool deactivates h and enqueues it. Handles already tracked under k
// are left untouched.
func (p *Pool[K, H]) AddToPool(k K, h H) {
	b := p.bucket(k)
	if b.tracked(h) {
		return
	}
	p.setActive(h, false)
	b.enqueue(h)
}

// Get moves the oldest pooled handle into the active set and activates it.
// ok is false when nothing is pooled for k.
func (p *Pool[K, H]) Get(k K) (h H, ok bool) {
	b := p.bucket(k)
	if len(b.queue) == 0 {
		return h, false
	}
	h = b.queue[0]
	var zero H
	b.queue[0] = zero
	b.queue = b.queue[1:]
	delete(b.pooled, h)

	b.active = append(b.active, h)
	b.index[h] = struct{}{}
	p.setActive(h, true)
	return h, true
}

// Return deactivates h, removes it from the active set and enqueues it.
// Returning a handle that is already pooled does nothing.
func (p *Pool[K, H]) Return(k K, h H) {
	b := p.bucket(k)
	if _, pooled := b.pooled[h]; pooled {
		return
	}
	p.setActive(h, false)
	b.removeActive(h)
	b.enqueue(h)
}

// ActiveCount returns the number of active handles for k.
func (p *Pool[K, H]) ActiveCount(k K) int {
	if b, ok := p.buckets[k]; ok {
		return len(b.active)
	}
	return 0
}

// PooledCount returns the number of pooled handles for k.
func (p *Pool[K, H]) PooledCount(k K) int {
	if b, ok := p.buckets[k]; ok {
		return len(b.queue)
	}
	return 0
}

// TotalCreated returns the number of handles tracked for k.
func (p *Pool[K, H]) TotalCreated(k K) int {
	return p.ActiveCount(k) + p.PooledCount(k)
}

// IsActive reports whether h is in the active set of k.
func (p *Pool[K, H]) IsActive(k K, h H) bool {
	if b, ok := p.buckets[k]; ok {
		_, active := b.index[h]
		return active
	}
	return false
}

// Types returns the registered keys in registration order.
func (p *Pool[K, H]) Types() []K {
	return append([]K(nil), p.order...)
}

// GetActiveHandles yields every active handle across all keys. The set is
// copied when iteration starts, so callers may Return handles while
// ranging. Each range over the sequence takes a fresh snapshot.
func (p *Pool[K, H]) GetActiveHandles() iter.Seq[H] {
	return func(yield func(H) bool) {
		var snapshot []H
		for _, k := range p.order {
			snapshot = append(snapshot, p.buckets[k].active...)
		}
		for _, h := range snapshot {
			if !yield(h) {
				return
			}
		}
	}
}
