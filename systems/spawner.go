package systems

import (
	"math/rand/v2"

	"github.com/automoto/toolrush/components"
	"github.com/automoto/toolrush/config"
	"github.com/automoto/toolrush/gamemath"
	"github.com/automoto/toolrush/logger"
	"github.com/automoto/toolrush/systems/factory"
	"github.com/automoto/toolrush/timer"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Placement is a tool that was spawned at a position that passed every
// distance check.
type Placement struct {
	Type     config.ToolType
	Position math.Vec2
	Entry    *donburi.Entry
}

// Spawner keeps each configured tool type topped up to its MaxCount.
type Spawner struct {
	pool    *factory.ToolPool
	factory *factory.ToolFactory
	player  PlayerLocator
	cfg     config.WorldConfig
	area    gamemath.Rect
	rng     *rand.Rand

	timers *timer.Scheduler
	tick   timer.Token

	onAccept func(Placement)
}

func NewSpawner(p *factory.ToolPool, f *factory.ToolFactory, player PlayerLocator, cfg config.WorldConfig, rng *rand.Rand) *Spawner {
	return &Spawner{
		pool:    p,
		factory: f,
		player:  player,
		cfg:     cfg,
		area:    gamemath.RectFromCenter(cfg.SpawnAreaCenter, cfg.SpawnAreaSize),
		rng:     rng,
	}
}

// OnAccept registers fn to observe every placement whose spawn succeeded.
func (s *Spawner) OnAccept(fn func(Placement)) {
	s.onAccept = fn
}

// Area returns the rectangle spawn positions are sampled from.
func (s *Spawner) Area() gamemath.Rect {
	return s.area
}

// Start runs one spawn pass right away and then one every SpawnInterval
// seconds of scheduler time.
func (s *Spawner) Start(timers *timer.Scheduler) {
	s.Stop()
	s.timers = timers
	s.TrySpawnAll()
	s.tick = timers.Every(s.cfg.SpawnInterval, s.TrySpawnAll)
}

// Stop cancels the periodic pass.
func (s *Spawner) Stop() {
	if s.timers != nil && s.tick != 0 {
		s.timers.Cancel(s.tick)
	}
	s.tick = 0
}

// TrySpawnAll places at most one tool of every type that is below its
// MaxCount.
func (s *Spawner) TrySpawnAll() {
	for _, t := range config.AllToolTypes {
		tpl := s.factory.Template(t)
		if tpl == nil {
			continue
		}
		if s.pool.ActiveCount(t) >= tpl.MaxCount {
			continue
		}

		pos, ok := s.findPosition()
		if !ok {
			logger.Log.WithFields(logrus.Fields{
				"tool":     t,
				"attempts": s.cfg.SpawnAttempts,
			}).Debug("spawner: no free position this pass")
			continue
		}
		e, ok := s.factory.Spawn(t, pos)
		if !ok {
			logger.Log.WithFields(logrus.Fields{
				"tool":     t,
				"position": pos,
			}).Warn("spawner: factory could not spawn tool")
			continue
		}
		if s.onAccept != nil {
			s.onAccept(Placement{Type: t, Position: pos, Entry: e})
		}
	}
}

func (s *Spawner) findPosition() (math.Vec2, bool) {
	for i := 0; i < s.cfg.SpawnAttempts; i++ {
		p := s.area.RandomPoint(s.rng.Float64(), s.rng.Float64())
		if s.nearActiveTool(p) {
			continue
		}
		if s.player != nil && gamemath.Distance(p, s.player.Position()) < s.cfg.MinDistanceFromPlayer {
			continue
		}
		return p, true
	}
	return math.Vec2{}, false
}

func (s *Spawner) nearActiveTool(p math.Vec2) bool {
	for e := range s.pool.GetActiveHandles() {
		if gamemath.Distance(p, components.Transform.Get(e).Position) < s.cfg.MinToolDistance {
			return true
		}
	}
	return false
}
