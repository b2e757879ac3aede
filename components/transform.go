package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type TransformData struct {
	Position math.Vec2 // center of the entity
	Rotation float64   // degrees
}

var Transform = donburi.NewComponentType[TransformData]()
