package components

import (
	"github.com/yohamta/donburi"
)

// LifetimeData tracks a tool that expires on its own.
type LifetimeData struct {
	SpawnedAt float64 // scheduler time of activation
	Elapsed   float64
	Blinking  bool
}

var Lifetime = donburi.NewComponentType[LifetimeData]()
