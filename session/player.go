package session

import (
	"github.com/automoto/toolrush/gamemath"
	"github.com/yohamta/donburi/features/math"
)

// Player is the collector. Input code moves it; the pickup system and the
// spawner only read its position.
type Player struct {
	position math.Vec2
	start    math.Vec2
	speed    float64
	bounds   gamemath.Rect
}

func newPlayer(start math.Vec2, speed float64, bounds gamemath.Rect) *Player {
	return &Player{position: start, start: start, speed: speed, bounds: bounds}
}

func (p *Player) Position() math.Vec2 {
	return p.position
}

// SetPosition teleports the player, clamped to the arena.
func (p *Player) SetPosition(pos math.Vec2) {
	p.position = clampToRect(pos, p.bounds)
}

// Move walks the player along dir for dt seconds. dir need not be
// normalized.
func (p *Player) Move(dir math.Vec2, dt float64) {
	if dir.X == 0 && dir.Y == 0 {
		return
	}
	step := gamemath.Scale(gamemath.Normalize(dir), p.speed*dt)
	p.SetPosition(gamemath.Add(p.position, step))
}

func (p *Player) reset() {
	p.position = p.start
}

func clampToRect(v math.Vec2, r gamemath.Rect) math.Vec2 {
	if v.X < r.Min.X {
		v.X = r.Min.X
	} else if v.X > r.Max.X {
		v.X = r.Max.X
	}
	if v.Y < r.Min.Y {
		v.Y = r.Min.Y
	} else if v.Y > r.Max.Y {
		v.Y = r.Max.Y
	}
	return v
}
