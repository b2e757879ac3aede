package systems

import (
	"github.com/automoto/toolrush/components"
	"github.com/automoto/toolrush/logger"
	"github.com/yohamta/donburi"
)

const defaultBlinkInterval = 0.25

// lifetimeBehavior expires the tool Lifetime seconds after activation and
// starts the blink warning at BlinkAt.
type lifetimeBehavior struct{}

func (lifetimeBehavior) activate(c *ToolController, e *donburi.Entry) {
	tpl := components.Tool.Get(e).Template

	lt := components.Lifetime.Get(e)
	lt.SpawnedAt = c.timers.Now()
	lt.Elapsed = 0
	lt.Blinking = false

	if tpl.BlinkAt < tpl.Lifetime {
		c.schedule(e, c.timers.After(tpl.BlinkAt, func() {
			c.startBlink(e)
		}))
	}
	c.schedule(e, c.timers.After(tpl.Lifetime, func() {
		c.expire(e)
	}))
}

func (lifetimeBehavior) update(c *ToolController, e *donburi.Entry, _ float64) {
	lt := components.Lifetime.Get(e)
	lt.Elapsed = c.timers.Now() - lt.SpawnedAt
}

func (c *ToolController) startBlink(e *donburi.Entry) {
	if !c.isActive(e) {
		return
	}
	lt := components.Lifetime.Get(e)
	if lt.Blinking {
		return
	}
	lt.Blinking = true

	tool := components.Tool.Get(e)
	if tool.View == nil {
		return
	}
	interval := tool.Template.BlinkInterval
	if interval <= 0 {
		interval = defaultBlinkInterval
	}
	tool.View.StartBlink(interval)
}

// expire returns the tool without publishing Collected.
func (c *ToolController) expire(e *donburi.Entry) {
	if !c.isActive(e) {
		return
	}
	logger.Log.WithField("tool", components.Tool.Get(e).Type).Debug("tool: lifetime over")
	c.ReturnToPool(e)
}
