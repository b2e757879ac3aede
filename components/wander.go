package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// WanderData steers a tool around the arena.
type WanderData struct {
	Heading math.Vec2 // unit direction of travel
	Target  math.Vec2 // unit direction Heading turns toward
}

var Wander = donburi.NewComponentType[WanderData]()
