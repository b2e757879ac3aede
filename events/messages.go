package events

import (
	"github.com/automoto/toolrush/config"
	"github.com/yohamta/donburi"
)

// Counts is a point-in-time copy of every inventory counter, indexed by
// tool type. Being an array it is copied on assignment.
type Counts [config.NumToolTypes]int

// Get returns the count for t, or 0 for an unknown type.
func (c Counts) Get(t config.ToolType) int {
	if !t.Valid() {
		return 0
	}
	return c[t]
}

// Collected is published when the player picks up a tool. Entry is the
// tool's entry and is still active while subscribers run.
type Collected struct {
	Entry *donburi.Entry
}

// InventoryChanged is published after every accepted inventory change.
type InventoryChanged struct {
	Counts Counts
}
