package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/toolrush/components"
	"github.com/automoto/toolrush/config"
	"github.com/automoto/toolrush/events"
	"github.com/automoto/toolrush/gamemath"
	"github.com/automoto/toolrush/inventory"
	"github.com/automoto/toolrush/systems/factory"
	"github.com/automoto/toolrush/timer"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type fakeView struct {
	shown, hidden           int
	blinkStarts, blinkStops int
	blinkInterval           float64
	effects                 int
}

func (v *fakeView) Initialize(config.ToolType, *config.ToolTemplate) {}
func (v *fakeView) Show() { v.shown++ }
func (v *fakeView) Hide() { v.hidden++ }
func (v *fakeView) StopBlink() { v.blinkStops++ }

func (v *fakeView) StartBlink(interval float64) {
	v.blinkStarts++
	v.blinkInterval = interval
}

func (v *fakeView) PlayCollectEffect(onComplete func()) {
	v.effects++
	if onComplete != nil {
		onComplete()
	}
}

type fixedPlayer math.Vec2

func (p fixedPlayer) Position() math.Vec2 { return math.Vec2(p) }

var testBounds = gamemath.RectFromXYWH(0, 0, 200, 200)

type rig struct {
	world      donburi.World
	bus        *events.Bus
	inv        *inventory.Counter
	timers     *timer.Scheduler
	pool       *factory.ToolPool
	controller *ToolController
	factory    *factory.ToolFactory
	rng        *rand.Rand
	views      map[*donburi.Entry]*fakeView
	collected  []*donburi.Entry
}

func newRig(t *testing.T, entries []config.ToolEntry, capacity int, obstacles ...config.Rect) *rig {
	t.Helper()
	r := &rig{
		world:  donburi.NewWorld(),
		bus:    events.NewBus(),
		timers: timer.NewScheduler(),
		rng:    rand.New(rand.NewPCG(7, 11)),
		views:  make(map[*donburi.Entry]*fakeView),
	}
	factory.CreateSpace(r.world, 200, 200, 16, 16)
	for _, o := range obstacles {
		factory.CreateObstacle(r.world, o.X, o.Y, o.W, o.H)
	}
	r.inv = inventory.NewCounter(r.bus, capacity)
	r.bus.Collected.Subscribe(func(m events.Collected) {
		r.collected = append(r.collected, m.Entry)
	})
	r.pool = factory.NewToolPool(r.world)
	r.controller = NewToolController(r.world, r.pool, r.bus, r.inv, r.timers, testBounds, r.rng)

	r.factory = factory.NewToolFactory(r.world, r.pool, entries, r.controller, func(config.ToolType) components.Presentable {
		return &fakeView{}
	})
	r.factory.Prewarm()

	// pair every built entry with its view
	components.Tool.Each(r.world, func(e *donburi.Entry) {
		if v, ok := components.Tool.Get(e).View.(*fakeView); ok {
			r.views[e] = v
		}
	})
	return r
}

func (r *rig) spawn(t *testing.T, ty config.ToolType, pos math.Vec2) *donburi.Entry {
	t.Helper()
	e, ok := r.factory.Spawn(ty, pos)
	if !ok {
		t.Fatalf("Spawn(%s) failed", ty)
	}
	if _, ok := r.views[e]; !ok {
		if v, ok := components.Tool.Get(e).View.(*fakeView); ok {
			r.views[e] = v
		}
	}
	return e
}

// step advances timers and behaviors the way the session does.
func (r *rig) step(dt float64) {
	r.timers.Advance(dt)
	r.controller.Update(dt)
}

func sawTemplate(maxCount int) *config.ToolTemplate {
	return &config.ToolTemplate{
		Behavior:        config.BehaviorSpin,
		RotationSpeed:   90,
		MaxCount:        maxCount,
		CollectDistance: 18,
		HitboxSize:      16,
	}
}

func axeTemplate(maxCount int) *config.ToolTemplate {
	return &config.ToolTemplate{
		Behavior:                config.BehaviorWander,
		Speed:                   40,
		MaxCount:                maxCount,
		CollectDistance:         18,
		HitboxSize:              16,
		DirectionChangeInterval: 2,
		TurnSmoothness:          6,
		AvoidObstacleDistance:   30,
		AvoidObstacleRadius:     4,
		ObstacleTags:            []string{"solid"},
		StayInBounds:            true,
		ReflectOnBounds:         true,
	}
}

func hammerTemplate(maxCount int) *config.ToolTemplate {
	return &config.ToolTemplate{
		Behavior:        config.BehaviorLifetime,
		MaxCount:        maxCount,
		Lifetime:        10,
		BlinkAt:         7,
		BlinkInterval:   0.25,
		CollectDistance: 18,
		HitboxSize:      16,
	}
}
