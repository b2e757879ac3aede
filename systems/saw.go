package systems

import (
	"math"

	"github.com/automoto/toolrush/components"
	"github.com/yohamta/donburi"
)

// spinBehavior rotates the tool in place.
type spinBehavior struct{}

func (spinBehavior) activate(*ToolController, *donburi.Entry) {}

func (spinBehavior) update(_ *ToolController, e *donburi.Entry, dt float64) {
	tool := components.Tool.Get(e)
	tr := components.Transform.Get(e)
	tr.Rotation = math.Mod(tr.Rotation+tool.Template.RotationSpeed*dt, 360)
}
