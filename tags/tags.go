package tags

import "github.com/yohamta/donburi"

var (
	Tool     = donburi.NewTag().SetName("Tool")
	Saw      = donburi.NewTag().SetName("Saw")
	Axe      = donburi.NewTag().SetName("Axe")
	Hammer   = donburi.NewTag().SetName("Hammer")
	Obstacle = donburi.NewTag().SetName("Obstacle")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvTool   = "tool"
	ResolvPlayer = "Player"

	ResolvSaw    = "saw"
	ResolvAxe    = "axe"
	ResolvHammer = "hammer"
)
