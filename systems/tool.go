package systems

import (
	"math/rand/v2"

	"github.com/automoto/toolrush/components"
	"github.com/automoto/toolrush/config"
	"github.com/automoto/toolrush/events"
	"github.com/automoto/toolrush/gamemath"
	"github.com/automoto/toolrush/logger"
	"github.com/automoto/toolrush/systems/factory"
	"github.com/automoto/toolrush/timer"
	"github.com/yohamta/donburi"
)

// InventoryQuery is the part of the inventory a tool needs to decide whether
// it may be picked up.
type InventoryQuery interface {
	IsFull(t config.ToolType) bool
}

// behavior is the per-variant part of a tool's lifecycle.
type behavior interface {
	activate(c *ToolController, e *donburi.Entry)
	update(c *ToolController, e *donburi.Entry, dt float64)
}

var behaviors = map[config.BehaviorKind]behavior{
	config.BehaviorSpin:     spinBehavior{},
	config.BehaviorWander:   wanderBehavior{},
	config.BehaviorLifetime: lifetimeBehavior{},
}

// ToolController drives every tool through
// pooled -> active -> collecting -> pooled.
type ToolController struct {
	world     donburi.World
	pool      *factory.ToolPool
	bus       *events.Bus
	inventory InventoryQuery
	timers    *timer.Scheduler
	bounds    gamemath.Rect
	rng       *rand.Rand
}

// NewToolController wires a controller. bounds is the arena rectangle that
// wandering tools stay inside.
func NewToolController(
	w donburi.World,
	p *factory.ToolPool,
	bus *events.Bus,
	inventory InventoryQuery,
	timers *timer.Scheduler,
	bounds gamemath.Rect,
	rng *rand.Rand,
) *ToolController {
	return &ToolController{
		world:     w,
		pool:      p,
		bus:       bus,
		inventory: inventory,
		timers:    timers,
		bounds:    bounds,
		rng:       rng,
	}
}

// OnSpawn activates a tool that the factory has just placed.
func (c *ToolController) OnSpawn(e *donburi.Entry) {
	tool := components.Tool.Get(e)
	c.cancelTimers(e)
	tool.State = components.ToolActive

	factory.EnableCollider(c.world, e)
	if tool.View != nil {
		tool.View.Show()
	}

	if tool.InventorySub == 0 {
		tool.InventorySub = c.bus.InventoryChanged.Subscribe(func(events.InventoryChanged) {
			c.refreshCollectable(e)
		})
	}
	c.refreshCollectable(e)

	if b, ok := behaviors[tool.Template.Behavior]; ok {
		b.activate(c, e)
	}
}

// CanBeCollected reports the pickup gate of an active tool.
func (c *ToolController) CanBeCollected(e *donburi.Entry) bool {
	tool := components.Tool.Get(e)
	return tool.State == components.ToolActive && tool.CanBeCollected
}

func (c *ToolController) refreshCollectable(e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	tool := components.Tool.Get(e)
	if tool.State != components.ToolActive {
		return
	}
	tool.CanBeCollected = !c.inventory.IsFull(tool.Type)
}

// TryCollect handles player contact. A tool whose inventory slot is full
// stays in the world. It reports whether the tool was collected.
func (c *ToolController) TryCollect(e *donburi.Entry) bool {
	tool := components.Tool.Get(e)
	if tool.State != components.ToolActive || !tool.ColliderEnabled {
		return false
	}
	if !tool.CanBeCollected {
		return false
	}
	c.Collect(e)
	return true
}

// Collect disables the collider, starts the collect effect, publishes
// Collected and returns the tool to the pool. None of it waits for the
// effect to finish.
func (c *ToolController) Collect(e *donburi.Entry) {
	tool := components.Tool.Get(e)
	if tool.State != components.ToolActive {
		return
	}
	tool.State = components.ToolCollecting
	t := tool.Type

	factory.DisableCollider(c.world, e)
	if tool.View != nil {
		tool.View.PlayCollectEffect(func() {
			logger.Log.WithField("tool", t).Trace("tool: collect effect finished")
		})
	}

	c.bus.Collected.Publish(events.Collected{Entry: e})
	c.ReturnToPool(e)
}

// ReturnToPool cancels the tool's timers, detaches it from the bus, hides
// it and hands it back to the pool.
func (c *ToolController) ReturnToPool(e *donburi.Entry) {
	tool := components.Tool.Get(e)
	if tool.State == components.ToolPooled {
		return
	}
	c.cancelTimers(e)

	c.bus.InventoryChanged.Unsubscribe(tool.InventorySub)
	tool.InventorySub = 0
	tool.CanBeCollected = false

	if e.HasComponent(components.Lifetime) {
		components.Lifetime.Get(e).Blinking = false
	}
	if tool.View != nil {
		tool.View.StopBlink()
		tool.View.Hide()
	}

	c.pool.Return(tool.Type, e)
}

// ReturnAll sends every active tool back to the pool.
func (c *ToolController) ReturnAll() {
	for e := range c.pool.GetActiveHandles() {
		c.ReturnToPool(e)
	}
}

// Update runs one tick of every active tool's behavior.
func (c *ToolController) Update(dt float64) {
	for e := range c.pool.GetActiveHandles() {
		tool := components.Tool.Get(e)
		if tool.State != components.ToolActive {
			continue
		}
		if b, ok := behaviors[tool.Template.Behavior]; ok {
			b.update(c, e, dt)
		}
	}
}

// schedule records tok as owned by e so ReturnToPool can cancel it.
func (c *ToolController) schedule(e *donburi.Entry, tok timer.Token) {
	tool := components.Tool.Get(e)
	tool.Timers = append(tool.Timers, tok)
}

func (c *ToolController) cancelTimers(e *donburi.Entry) {
	tool := components.Tool.Get(e)
	for _, tok := range tool.Timers {
		c.timers.Cancel(tok)
	}
	tool.Timers = tool.Timers[:0]
}

// isActive is checked by timer callbacks before touching a tool.
func (c *ToolController) isActive(e *donburi.Entry) bool {
	return e.Valid() && components.Tool.Get(e).State == components.ToolActive
}
