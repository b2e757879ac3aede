package scenes

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sync"

	"github.com/automoto/toolrush/components"
	"github.com/automoto/toolrush/config"
	"github.com/automoto/toolrush/logger"
	"github.com/automoto/toolrush/quest"
	"github.com/automoto/toolrush/session"
	"github.com/automoto/toolrush/view"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

const layerDefault ecs.LayerID = 0

var (
	obstacleColor = color.RGBA{R: 90, G: 90, B: 110, A: 255}
	playerColor   = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	toolColors    = [config.NumToolTypes]color.NRGBA{
		config.ToolSaw:    {R: 220, G: 80, B: 60, A: 255},
		config.ToolAxe:    {R: 80, G: 180, B: 90, A: 255},
		config.ToolHammer: {R: 230, G: 190, B: 60, A: 255},
	}
)

// ArenaScene runs a session and draws it with plain shapes.
type ArenaScene struct {
	ecs     *ecs.ECS
	session *session.Session
	dt      float64
	message string
	once    sync.Once
}

func NewArenaScene(s *session.Session) *ArenaScene {
	rate := s.Config().World.TickRate
	if rate <= 0 {
		rate = ebiten.DefaultTPS
	}
	return &ArenaScene{session: s, dt: 1 / float64(rate)}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	e := ecs.NewECS(as.session.World())

	e.AddSystem(as.updateInput)
	e.AddSystem(as.updateSession)

	e.AddRenderer(layerDefault, as.drawObstacles)
	e.AddRenderer(layerDefault, as.drawTools)
	e.AddRenderer(layerDefault, as.drawPlayer)
	e.AddRenderer(layerDefault, as.drawHUD)

	as.ecs = e
	as.session.Start()
}

func (as *ArenaScene) updateInput(_ *ecs.ECS) {
	var dir dmath.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dir.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dir.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dir.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dir.Y++
	}
	as.session.Player().Move(dir, as.dt)

	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		as.deliver()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		as.session.Restart()
		as.message = "restarted"
	}
}

func (as *ArenaScene) deliver() {
	err := as.session.Deliver()
	switch {
	case err == nil:
		as.message = "delivered!"
	case errors.Is(err, quest.ErrNotEnoughTools):
		as.message = "not enough tools"
	default:
		logger.Log.WithError(err).Error("arena: delivery failed")
		as.message = "delivery failed"
	}
}

func (as *ArenaScene) updateSession(_ *ecs.ECS) {
	as.session.Update(as.dt)
}

func (as *ArenaScene) drawObstacles(_ *ecs.ECS, screen *ebiten.Image) {
	for _, o := range as.session.Obstacles() {
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), obstacleColor, false)
	}
}

func (as *ArenaScene) drawTools(_ *ecs.ECS, screen *ebiten.Image) {
	as.session.EachTool(func(e *donburi.Entry) {
		tool := components.Tool.Get(e)
		v, ok := tool.View.(*view.ToolView)
		if !ok || !v.Drawn() {
			return
		}
		tr := components.Transform.Get(e)

		c := toolColors[tool.Type]
		c.A = uint8(255 * v.Alpha())
		size := tool.Template.HitboxSize * float64(v.Scale())
		x := tr.Position.X - size/2
		y := tr.Position.Y - size/2
		vector.FillRect(screen, float32(x), float32(y), float32(size), float32(size), c, false)

		if tool.Template.Behavior == config.BehaviorSpin {
			rad := tr.Rotation * math.Pi / 180
			ex := tr.Position.X + math.Cos(rad)*size/2
			ey := tr.Position.Y + math.Sin(rad)*size/2
			vector.StrokeLine(screen, float32(tr.Position.X), float32(tr.Position.Y), float32(ex), float32(ey), 2, color.White, false)
		}
	})
}

func (as *ArenaScene) drawPlayer(_ *ecs.ECS, screen *ebiten.Image) {
	p := as.session.Player().Position()
	size := as.session.Config().World.PlayerSize
	vector.FillRect(screen, float32(p.X-size/2), float32(p.Y-size/2), float32(size), float32(size), playerColor, false)
}

func (as *ArenaScene) drawHUD(_ *ecs.ECS, screen *ebiten.Image) {
	counts := as.session.Inventory().GetAllCounts()
	need := as.session.Quest().Required

	line := ""
	for _, t := range config.AllToolTypes {
		line += fmt.Sprintf("%s %d/%d  ", t, counts[t], need[t])
	}
	ebitenutil.DebugPrintAt(screen, line, 4, 4)
	ebitenutil.DebugPrintAt(screen, "arrows: move  F: deliver  R: restart", 4, 20)
	if as.message != "" {
		ebitenutil.DebugPrintAt(screen, as.message, 4, 36)
	}
}
