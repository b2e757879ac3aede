// Package quest implements the house delivery: a set of required tool counts
// that the player hands in from the inventory.
package quest

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/automoto/toolrush/config"
	"github.com/automoto/toolrush/events"
	"github.com/automoto/toolrush/logger"
)

// DefaultMaxEach is the upper bound Randomize uses when none is given.
const DefaultMaxEach = 5

// ErrNotEnoughTools is returned by Deliver when any requirement is unmet.
var ErrNotEnoughTools = errors.New("not enough tools")

// Inventory is what a delivery reads from and consumes.
type Inventory interface {
	GetCount(t config.ToolType) int
	Add(t config.ToolType, amount int)
}

// Delivery holds how many of each tool the house asks for.
type Delivery struct {
	Required events.Counts
}

// NewDelivery returns a delivery for required, randomizing it when every
// requirement is zero.
func NewDelivery(required events.Counts, rng *rand.Rand) *Delivery {
	d := &Delivery{Required: required}
	if d.empty() {
		d.Randomize(rng, DefaultMaxEach)
	}
	return d
}

func (d *Delivery) empty() bool {
	for _, n := range d.Required {
		if n > 0 {
			return false
		}
	}
	return true
}

// Randomize sets every requirement to a value in [0, maxEach].
func (d *Delivery) Randomize(rng *rand.Rand, maxEach int) {
	if maxEach < 0 {
		maxEach = 0
	}
	for i := range d.Required {
		d.Required[i] = rng.IntN(maxEach + 1)
	}
}

// Missing returns, per tool, how many more the inventory needs.
func (d *Delivery) Missing(inv Inventory) events.Counts {
	var missing events.Counts
	for _, t := range config.AllToolTypes {
		if need := d.Required[t] - inv.GetCount(t); need > 0 {
			missing[t] = need
		}
	}
	return missing
}

// Ready reports whether Deliver would succeed.
func (d *Delivery) Ready(inv Inventory) bool {
	return d.Missing(inv) == events.Counts{}
}

// Deliver removes every requirement from inv. When anything is missing the
// inventory is left untouched and ErrNotEnoughTools is returned.
func (d *Delivery) Deliver(inv Inventory) error {
	if missing := d.Missing(inv); missing != (events.Counts{}) {
		return fmt.Errorf("%w: missing %v", ErrNotEnoughTools, describe(missing))
	}
	for _, t := range config.AllToolTypes {
		if need := d.Required[t]; need > 0 {
			inv.Add(t, -need)
		}
	}
	logger.Log.WithField("required", describe(d.Required)).Info("quest: delivery complete")
	return nil
}

func describe(c events.Counts) map[string]int {
	out := make(map[string]int)
	for _, t := range config.AllToolTypes {
		if c[t] > 0 {
			out[t.String()] = c[t]
		}
	}
	return out
}
