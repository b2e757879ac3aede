package events

import (
	"reflect"
	"testing"

	"github.com/automoto/toolrush/config"
)

func TestPublishInSubscriptionOrder(t *testing.T) {
	bus := NewBus()
	var got []string
	bus.InventoryChanged.Subscribe(func(InventoryChanged) { got = append(got, "a") })
	bus.InventoryChanged.Subscribe(func(InventoryChanged) { got = append(got, "b") })
	bus.InventoryChanged.Subscribe(func(InventoryChanged) { got = append(got, "c") })

	bus.InventoryChanged.Publish(InventoryChanged{})

	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("delivery order = %v, want %v", got, want)
	}
}

func TestUnsubscribe(t *testing.T) {
	bus := NewBus()
	calls := 0
	sub := bus.Collected.Subscribe(func(Collected) { calls++ })

	if !bus.Collected.Unsubscribe(sub) {
		t.Fatal("Unsubscribe returned false for a live subscription")
	}
	if bus.Collected.Unsubscribe(sub) {
		t.Error("second Unsubscribe returned true")
	}
	if bus.Collected.Unsubscribe(0) {
		t.Error("Unsubscribe(0) returned true")
	}

	bus.Collected.Publish(Collected{})
	if calls != 0 {
		t.Errorf("handler called %d times after unsubscribe", calls)
	}
	if n := bus.Collected.Len(); n != 0 {
		t.Errorf("Len = %d, want 0", n)
	}
}

func TestSubscriptionsAreUniqueAcrossTopics(t *testing.T) {
	bus := NewBus()
	a := bus.Collected.Subscribe(func(Collected) {})
	b := bus.InventoryChanged.Subscribe(func(InventoryChanged) {})
	if a == b || a == 0 || b == 0 {
		t.Errorf("subscriptions %d and %d should be distinct and non-zero", a, b)
	}
	// a token from one topic does not remove handlers of another
	if bus.InventoryChanged.Unsubscribe(a) {
		t.Error("cross-topic Unsubscribe removed a handler")
	}
}

func TestReentrantPublish(t *testing.T) {
	bus := NewBus()
	var seen []int

	bus.InventoryChanged.Subscribe(func(m InventoryChanged) {
		seen = append(seen, m.Counts[config.ToolSaw])
		if m.Counts[config.ToolSaw] < 3 {
			var next Counts
			next[config.ToolSaw] = m.Counts[config.ToolSaw] + 1
			bus.InventoryChanged.Publish(InventoryChanged{Counts: next})
		}
	})

	bus.InventoryChanged.Publish(InventoryChanged{})

	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(seen, want) {
		t.Errorf("nested deliveries = %v, want %v", seen, want)
	}
}

func TestSubscriberChangesDuringPublish(t *testing.T) {
	bus := NewBus()
	lateCalls, victimCalls := 0, 0

	var victim Subscription
	bus.Collected.Subscribe(func(Collected) {
		bus.Collected.Subscribe(func(Collected) { lateCalls++ })
		bus.Collected.Unsubscribe(victim)
	})
	victim = bus.Collected.Subscribe(func(Collected) { victimCalls++ })

	bus.Collected.Publish(Collected{})
	if lateCalls != 0 {
		t.Errorf("handler added during delivery ran %d times in the same publish", lateCalls)
	}
	if victimCalls != 1 {
		t.Errorf("handler removed during delivery ran %d times, want 1", victimCalls)
	}

	bus.Collected.Publish(Collected{})
	if victimCalls != 1 {
		t.Errorf("removed handler ran again on the next publish")
	}
	if lateCalls != 1 {
		t.Errorf("late handler ran %d times on the next publish, want 1", lateCalls)
	}
}

func TestCountsGet(t *testing.T) {
	var c Counts
	c[config.ToolHammer] = 4
	if got := c.Get(config.ToolHammer); got != 4 {
		t.Errorf("Get(hammer) = %d", got)
	}
	if got := c.Get(config.ToolType(99)); got != 0 {
		t.Errorf("Get(unknown) = %d", got)
	}
}
