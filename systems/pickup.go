package systems

import (
	"github.com/automoto/toolrush/components"
	"github.com/automoto/toolrush/gamemath"
	"github.com/yohamta/donburi/features/math"
)

// PlayerLocator reports where the collecting player currently is.
type PlayerLocator interface {
	Position() math.Vec2
}

// UpdatePickups collects every active tool the player is touching. It
// returns the number of tools collected this tick.
func (c *ToolController) UpdatePickups(player PlayerLocator) int {
	if player == nil {
		return 0
	}
	at := player.Position()

	collected := 0
	for e := range c.pool.GetActiveHandles() {
		tool := components.Tool.Get(e)
		if tool.State != components.ToolActive || !tool.ColliderEnabled {
			continue
		}
		pos := components.Transform.Get(e).Position
		if gamemath.Distance(pos, at) > tool.Template.CollectDistance {
			continue
		}
		if c.TryCollect(e) {
			collected++
		}
	}
	return collected
}
