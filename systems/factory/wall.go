package factory

import (
	"github.com/automoto/toolrush/archetypes"
	"github.com/automoto/toolrush/components"
	"github.com/automoto/toolrush/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateObstacle adds a solid box that wandering tools steer around.
// Extra resolv tags let templates target specific obstacles.
func CreateObstacle(w donburi.World, x, y, width, height float64, extraTags ...string) *donburi.Entry {
	wall := archetypes.Obstacle.Spawn(w)

	objTags := append([]string{tags.ResolvSolid}, extraTags...)
	obj := resolv.NewObject(x, y, width, height, objTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}
