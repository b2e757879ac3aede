// Package inventory counts collected tools per type and applies the capacity
// limit that gates further pickups.
package inventory

import (
	"sync"

	"github.com/automoto/toolrush/components"
	"github.com/automoto/toolrush/config"
	"github.com/automoto/toolrush/events"
	"github.com/automoto/toolrush/logger"
	"github.com/sirupsen/logrus"
)

// Counter holds one clamped count per tool type. Counts only change through
// Add and Reset; every change is announced on bus.InventoryChanged before
// the mutating call returns.
type Counter struct {
	mu          sync.RWMutex
	counts      events.Counts
	maxCapacity int
	bus         *events.Bus
	sub         events.Subscription
}

// NewCounter creates a zeroed counter and subscribes it to Collected.
func NewCounter(bus *events.Bus, maxCapacity int) *Counter {
	if maxCapacity <= 0 {
		maxCapacity = 1
	}
	c := &Counter{
		maxCapacity: maxCapacity,
		bus:         bus,
	}
	c.sub = bus.Collected.Subscribe(c.onCollected)
	logger.Log.WithField("capacity", maxCapacity).Debug("inventory: subscribed to collected events")
	return c
}

// Close detaches the counter from the bus.
func (c *Counter) Close() {
	c.bus.Collected.Unsubscribe(c.sub)
}

func (c *Counter) onCollected(evt events.Collected) {
	e := evt.Entry
	if e == nil || !e.Valid() || !e.HasComponent(components.Tool) {
		logger.Log.Warn("inventory: collected event without a tool entry, ignoring")
		return
	}
	t := components.Tool.Get(e).Type
	if !t.Valid() {
		logger.Log.WithField("tool", int(t)).Warn("inventory: collected event with unknown tool type, ignoring")
		return
	}

	if !c.CanAddMore(t, 1) {
		logger.Log.WithField("tool", t).Info("inventory: full, pickup value dropped")
		return
	}
	c.Add(t, 1)
	logger.Log.WithFields(logrus.Fields{"tool": t, "count": c.GetCount(t)}).Debug("inventory: collected")
}

// MaxCapacity returns the per-type capacity.
func (c *Counter) MaxCapacity() int {
	return c.maxCapacity
}

// Add changes the count of t by amount, clamped to [0, MaxCapacity].
// A positive amount is accepted only when it fits entirely (CanAddMore);
// negative amounts are always applied. InventoryChanged is published when
// the stored count actually changed.
func (c *Counter) Add(t config.ToolType, amount int) {
	if !t.Valid() || amount == 0 {
		return
	}

	c.mu.Lock()
	prev := c.counts[t]
	if amount > 0 && amount > c.maxCapacity-prev {
		c.mu.Unlock()
		return
	}
	// prev is within [0, maxCapacity], so the sum cannot wrap
	next := clamp(prev+max(amount, -prev), 0, c.maxCapacity)
	c.counts[t] = next
	snapshot := c.counts
	c.mu.Unlock()

	if next == prev {
		return
	}
	c.bus.InventoryChanged.Publish(events.InventoryChanged{Counts: snapshot})
}

// CanAddMore reports whether amount more of t would fit.
func (c *Counter) CanAddMore(t config.ToolType, amount int) bool {
	if !t.Valid() {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return amount <= c.maxCapacity-c.counts[t]
}

// IsFull reports whether t has reached capacity.
func (c *Counter) IsFull(t config.ToolType) bool {
	if !t.Valid() {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counts[t] >= c.maxCapacity
}

// GetCount returns the count of t, or 0 for an unknown type.
func (c *Counter) GetCount(t config.ToolType) int {
	if !t.Valid() {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counts[t]
}

// GetAllCounts returns a copy of every counter.
func (c *Counter) GetAllCounts() events.Counts {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counts
}

// Reset zeroes every counter and publishes the empty snapshot.
func (c *Counter) Reset() {
	c.mu.Lock()
	c.counts = events.Counts{}
	snapshot := c.counts
	c.mu.Unlock()

	c.bus.InventoryChanged.Publish(events.InventoryChanged{Counts: snapshot})
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
