package systems

import (
	"math"

	"github.com/automoto/toolrush/components"
	"github.com/automoto/toolrush/config"
	"github.com/automoto/toolrush/gamemath"
	"github.com/automoto/toolrush/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

const (
	directionAttempts       = 6
	minDirectionChangeDelay = 0.05
)

// wanderBehavior moves the tool along a smoothed random heading, steering
// off obstacles and the arena bounds.
type wanderBehavior struct{}

func (wanderBehavior) activate(c *ToolController, e *donburi.Entry) {
	tpl := components.Tool.Get(e).Template

	w := components.Wander.Get(e)
	w.Heading = gamemath.RandomUnit(c.rng)
	w.Target = w.Heading
	c.pickDirection(e)

	interval := math.Max(minDirectionChangeDelay, tpl.DirectionChangeInterval)
	c.schedule(e, c.timers.Every(interval, func() {
		if c.isActive(e) {
			c.pickDirection(e)
		}
	}))
}

func (wanderBehavior) update(c *ToolController, e *donburi.Entry, dt float64) {
	tpl := components.Tool.Get(e).Template
	pos := components.Transform.Get(e).Position
	w := components.Wander.Get(e)

	heading := gamemath.Normalize(gamemath.Lerp(w.Heading, w.Target, tpl.TurnSmoothness*dt))
	if heading.X == 0 && heading.Y == 0 {
		heading = w.Target
	}
	w.Heading = heading

	if hit, ok := c.probeObstacles(e, w.Heading, tpl); ok {
		w.Target = gamemath.Normalize(gamemath.Reflect(w.Heading, hit.Normal))
	}

	next := gamemath.Add(pos, gamemath.Scale(w.Heading, tpl.Speed*dt))
	if tpl.StayInBounds && !c.bounds.Contains(next) {
		if tpl.ReflectOnBounds {
			w.Heading = gamemath.Normalize(c.bounds.ReflectOffBounds(w.Heading, next))
			w.Target = w.Heading
			next = gamemath.Add(pos, gamemath.Scale(w.Heading, tpl.Speed*dt))
		} else {
			c.pickDirection(e)
		}
		if !c.bounds.Contains(next) {
			next = pos
		}
	}

	factory.MoveTool(e, next)
}

// pickDirection chooses a new target heading. With StayInBounds it prefers
// headings whose look-ahead point stays in the arena, then falls back to
// reflecting the current heading off the crossed edge, then to reversing.
func (c *ToolController) pickDirection(e *donburi.Entry) {
	tpl := components.Tool.Get(e).Template
	pos := components.Transform.Get(e).Position
	w := components.Wander.Get(e)

	if !tpl.StayInBounds {
		w.Target = gamemath.RandomUnit(c.rng)
		return
	}

	reach := math.Max(1, tpl.AvoidObstacleDistance+tpl.Speed)
	for i := 0; i < directionAttempts; i++ {
		candidate := gamemath.RandomUnit(c.rng)
		if c.bounds.Contains(gamemath.Add(pos, gamemath.Scale(candidate, reach))) {
			w.Target = candidate
			return
		}
	}

	projected := gamemath.Add(pos, gamemath.Scale(w.Heading, reach))
	w.Target = gamemath.Normalize(c.bounds.ReflectOffBounds(w.Heading, projected))
}

// probeObstacles sweeps a circle of AvoidObstacleRadius ahead of the tool
// for AvoidObstacleDistance and returns the nearest obstacle contact.
func (c *ToolController) probeObstacles(e *donburi.Entry, dir gamemath.Vec2, tpl *config.ToolTemplate) (gamemath.SweepHit, bool) {
	tool := components.Tool.Get(e)
	if !tool.ColliderEnabled || tpl.AvoidObstacleDistance <= 0 || len(tpl.ObstacleTags) == 0 {
		return gamemath.SweepHit{}, false
	}
	obj := components.Object.Get(e).Object
	origin := components.Transform.Get(e).Position
	dist := tpl.AvoidObstacleDistance

	seen := make(map[*resolv.Object]struct{})
	var best gamemath.SweepHit
	found := false
	for _, step := range [...]float64{0, dist / 2, dist} {
		check := obj.Check(dir.X*step, dir.Y*step, tpl.ObstacleTags...)
		if check == nil {
			continue
		}
		for _, o := range check.ObjectsByTags(tpl.ObstacleTags...) {
			if o == obj {
				continue
			}
			if _, dup := seen[o]; dup {
				continue
			}
			seen[o] = struct{}{}

			box := gamemath.RectFromXYWH(o.X, o.Y, o.W, o.H)
			hit, ok := gamemath.SweepCircleRect(origin, dir, tpl.AvoidObstacleRadius, dist, box)
			if ok && (!found || hit.Distance < best.Distance) {
				best = hit
				found = true
			}
		}
	}
	return best, found
}
