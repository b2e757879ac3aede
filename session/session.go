// Package session assembles the tool loop for one arena: world, collision
// space, bus, inventory, timers, pool, controller, factory and spawner.
package session

import (
	"math/rand/v2"
	"time"

	"github.com/automoto/toolrush/components"
	"github.com/automoto/toolrush/config"
	"github.com/automoto/toolrush/events"
	"github.com/automoto/toolrush/gamemath"
	"github.com/automoto/toolrush/inventory"
	"github.com/automoto/toolrush/logger"
	"github.com/automoto/toolrush/quest"
	"github.com/automoto/toolrush/systems"
	"github.com/automoto/toolrush/systems/factory"
	"github.com/automoto/toolrush/timer"
	"github.com/automoto/toolrush/view"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// seedStream is the second PCG word; only RandomSeed varies between runs.
const seedStream = 0x9e3779b97f4a7c15

type Session struct {
	cfg config.Config
	rng *rand.Rand

	world      donburi.World
	bus        *events.Bus
	inventory  *inventory.Counter
	timers     *timer.Scheduler
	pool       *factory.ToolPool
	controller *systems.ToolController
	factory    *factory.ToolFactory
	spawner    *systems.Spawner
	views      *view.Registry
	player     *Player
	delivery   *quest.Delivery
}

// New builds a session from cfg and fills the tool pools. Spawning starts
// with Start.
func New(cfg config.Config) *Session {
	seed := cfg.World.RandomSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	s := &Session{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(seed, seedStream)),
	}

	w := cfg.World
	bounds := gamemath.RectFromCenter(w.SpawnAreaCenter, w.SpawnAreaSize)
	arena := gamemath.RectFromXYWH(0, 0, float64(w.Width), float64(w.Height))

	s.world = donburi.NewWorld()
	factory.CreateSpace(s.world, w.Width, w.Height, w.CellSize, w.CellSize)
	for _, o := range w.Obstacles {
		factory.CreateObstacle(s.world, o.X, o.Y, o.W, o.H)
	}

	s.bus = events.NewBus()
	s.inventory = inventory.NewCounter(s.bus, cfg.Inventory.MaxCapacity)
	s.timers = timer.NewScheduler()
	s.pool = factory.NewToolPool(s.world)
	s.player = newPlayer(w.PlayerStart, w.PlayerSpeed, arena)
	s.views = view.NewRegistry()

	s.controller = systems.NewToolController(s.world, s.pool, s.bus, s.inventory, s.timers, bounds, s.rng)
	s.factory = factory.NewToolFactory(s.world, s.pool, cfg.Tools, s.controller, s.views.New)
	s.spawner = systems.NewSpawner(s.pool, s.factory, s.player, w, s.rng)
	s.delivery = quest.NewDelivery(events.Counts{}, s.rng)

	s.factory.Prewarm()

	logger.Log.WithFields(logrus.Fields{
		"seed":      seed,
		"obstacles": len(w.Obstacles),
		"capacity":  s.inventory.MaxCapacity(),
	}).Info("session: ready")
	return s
}

// Start runs the first spawn pass and schedules the periodic ones.
func (s *Session) Start() {
	s.spawner.Start(s.timers)
}

// Update advances the session by dt seconds: due timers (spawn passes,
// wander re-picks, lifetime expiry), behaviors, pickup contact, views.
func (s *Session) Update(dt float64) {
	s.timers.Advance(dt)
	s.controller.Update(dt)
	s.controller.UpdatePickups(s.player)
	s.views.Update(dt)
}

// Deliver hands the current quest in. On success the round restarts.
func (s *Session) Deliver() error {
	if err := s.delivery.Deliver(s.inventory); err != nil {
		return err
	}
	s.Restart()
	return nil
}

// Restart returns every active tool, empties the inventory, draws a new
// quest requirement, puts the player back at the start and resumes spawning.
func (s *Session) Restart() {
	s.spawner.Stop()
	s.controller.ReturnAll()
	s.inventory.Reset()
	s.delivery.Randomize(s.rng, quest.DefaultMaxEach)
	s.player.reset()
	s.spawner.Start(s.timers)
	logger.Log.Info("session: restarted")
}

// Close stops spawning and detaches the inventory from the bus.
func (s *Session) Close() {
	s.spawner.Stop()
	s.inventory.Close()
}

// EachTool calls fn for every tool entry, pooled ones included.
func (s *Session) EachTool(fn func(e *donburi.Entry)) {
	components.Tool.Each(s.world, fn)
}

// Obstacles returns the obstacle rectangles of the arena.
func (s *Session) Obstacles() []config.Rect { return s.cfg.World.Obstacles }

func (s *Session) Config() config.Config { return s.cfg }
func (s *Session) World() donburi.World { return s.world }
func (s *Session) Bus() *events.Bus { return s.bus }
func (s *Session) Inventory() *inventory.Counter { return s.inventory }
func (s *Session) Timers() *timer.Scheduler { return s.timers }
func (s *Session) Pool() *factory.ToolPool { return s.pool }
func (s *Session) Controller() *systems.ToolController { return s.controller }
func (s *Session) Factory() *factory.ToolFactory { return s.factory }
func (s *Session) Spawner() *systems.Spawner { return s.spawner }
func (s *Session) Player() *Player { return s.player }
func (s *Session) Quest() *quest.Delivery { return s.delivery }
func (s *Session) SpawnArea() gamemath.Rect { return s.spawner.Area() }
func (s *Session) PlayerPosition() math.Vec2 { return s.player.Position() }
