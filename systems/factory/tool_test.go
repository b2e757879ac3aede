package factory

import (
	"testing"

	"github.com/automoto/toolrush/components"
	"github.com/automoto/toolrush/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type spawnRecorder struct {
	spawned []*donburi.Entry
}

func (r *spawnRecorder) OnSpawn(e *donburi.Entry) {
	r.spawned = append(r.spawned, e)
}

type stubView struct {
	initialized config.ToolType
	calls       int
}

func (v *stubView) Initialize(t config.ToolType, _ *config.ToolTemplate) {
	v.initialized = t
	v.calls++
}
func (v *stubView) Show() {}
func (v *stubView) Hide() {}
func (v *stubView) StartBlink(float64) {}
func (v *stubView) StopBlink() {}
func (v *stubView) PlayCollectEffect(func()) {}

func newTestWorld() donburi.World {
	w := donburi.NewWorld()
	CreateSpace(w, 640, 360, 16, 16)
	return w
}

func sawOnly(maxCount, overflow int) []config.ToolEntry {
	return []config.ToolEntry{{
		Type: config.ToolSaw,
		Template: &config.ToolTemplate{
			Behavior:    config.BehaviorSpin,
			MaxCount:    maxCount,
			HitboxSize:  16,
			MaxOverflow: overflow,
		},
	}}
}

func TestPrewarmThenSpawnPastCapacity(t *testing.T) {
	w := newTestWorld()
	p := NewToolPool(w)
	rec := &spawnRecorder{}
	f := NewToolFactory(w, p, sawOnly(3, 0), rec, nil)

	f.Prewarm()

	if got := p.ActiveCount(config.ToolSaw); got != 0 {
		t.Fatalf("ActiveCount after prewarm = %d, want 0", got)
	}
	if got := p.PooledCount(config.ToolSaw); got != 3 {
		t.Fatalf("PooledCount after prewarm = %d, want 3", got)
	}

	positions := []math.Vec2{{X: 10, Y: 20}, {X: 100, Y: 50}, {X: 300, Y: 200}}
	seen := make(map[*donburi.Entry]bool)
	for _, pos := range positions {
		e, ok := f.Spawn(config.ToolSaw, pos)
		if !ok {
			t.Fatalf("Spawn at %v failed", pos)
		}
		if seen[e] {
			t.Fatalf("Spawn returned the same entry twice")
		}
		seen[e] = true
		if got := components.Transform.Get(e).Position; got != pos {
			t.Errorf("position = %v, want %v", got, pos)
		}
		if got := components.Tool.Get(e).State; got != components.ToolActive {
			t.Errorf("state = %v, want active", got)
		}
	}
	if f.Created(config.ToolSaw) != 3 {
		t.Errorf("Created = %d before overflow, want 3", f.Created(config.ToolSaw))
	}

	extra, ok := f.Spawn(config.ToolSaw, math.Vec2{X: 1, Y: 1})
	if !ok || seen[extra] {
		t.Fatalf("on-demand Spawn ok=%v reused=%v", ok, seen[extra])
	}
	if got := p.ActiveCount(config.ToolSaw); got != 4 {
		t.Errorf("ActiveCount = %d, want 4", got)
	}
	if got := p.TotalCreated(config.ToolSaw); got != 4 {
		t.Errorf("TotalCreated = %d, want 4", got)
	}
	if len(rec.spawned) != 4 {
		t.Errorf("activator called %d times, want 4", len(rec.spawned))
	}
}

func TestOverflowLimit(t *testing.T) {
	w := newTestWorld()
	p := NewToolPool(w)
	f := NewToolFactory(w, p, sawOnly(1, 1), nil, nil)
	f.Prewarm()

	for i := 0; i < 2; i++ {
		if _, ok := f.Spawn(config.ToolSaw, math.Vec2{}); !ok {
			t.Fatalf("Spawn #%d failed within the overflow budget", i)
		}
	}
	if _, ok := f.Spawn(config.ToolSaw, math.Vec2{}); ok {
		t.Error("Spawn succeeded past MaxCount+MaxOverflow")
	}
}

func TestPrewarmSkipsBadEntries(t *testing.T) {
	w := newTestWorld()
	p := NewToolPool(w)
	entries := []config.ToolEntry{
		{Type: config.ToolSaw, Template: nil},
		{Type: config.ToolAxe, Template: &config.ToolTemplate{Behavior: "teleport", MaxCount: 2}},
		{Type: config.ToolType(9), Template: &config.ToolTemplate{Behavior: config.BehaviorSpin, MaxCount: 2}},
		{Type: config.ToolHammer, Template: &config.ToolTemplate{Behavior: config.BehaviorLifetime, MaxCount: 2, HitboxSize: 8}},
	}
	f := NewToolFactory(w, p, entries, nil, nil)

	f.Prewarm()

	if got := p.Types(); len(got) != 1 || got[0] != config.ToolHammer {
		t.Errorf("registered types = %v, want only hammer", got)
	}
	if got := p.PooledCount(config.ToolHammer); got != 2 {
		t.Errorf("PooledCount(hammer) = %d, want 2", got)
	}
	if _, ok := f.Spawn(config.ToolSaw, math.Vec2{}); ok {
		t.Error("Spawn succeeded for a type without a template")
	}
	if _, ok := f.Spawn(config.ToolAxe, math.Vec2{}); ok {
		t.Error("Spawn succeeded for an unknown behavior")
	}
}

func TestBuildAttachesBehaviorComponentsAndView(t *testing.T) {
	w := newTestWorld()
	p := NewToolPool(w)
	var views []*stubView
	viewFor := func(config.ToolType) components.Presentable {
		v := &stubView{}
		views = append(views, v)
		return v
	}
	entries := []config.ToolEntry{
		{Type: config.ToolAxe, Template: &config.ToolTemplate{Behavior: config.BehaviorWander, MaxCount: 1, HitboxSize: 12}},
		{Type: config.ToolHammer, Template: &config.ToolTemplate{Behavior: config.BehaviorLifetime, MaxCount: 1, HitboxSize: 12}},
	}
	f := NewToolFactory(w, p, entries, nil, viewFor)
	f.Prewarm()

	axe, _ := f.Spawn(config.ToolAxe, math.Vec2{X: 50, Y: 60})
	hammer, _ := f.Spawn(config.ToolHammer, math.Vec2{})

	if !axe.HasComponent(components.Wander) || axe.HasComponent(components.Lifetime) {
		t.Error("axe should carry Wander only")
	}
	if !hammer.HasComponent(components.Lifetime) || hammer.HasComponent(components.Wander) {
		t.Error("hammer should carry Lifetime only")
	}
	if len(views) != 2 || views[0].initialized != config.ToolAxe || views[1].initialized != config.ToolHammer {
		t.Errorf("views not initialized per tool: %+v", views)
	}

	obj := components.Object.Get(axe)
	if obj.X != 44 || obj.Y != 54 {
		t.Errorf("collider at (%v,%v), want (44,54)", obj.X, obj.Y)
	}
	if obj.Data != axe {
		t.Error("collider does not point back at its entry")
	}
}

func TestColliderFollowsPool(t *testing.T) {
	w := newTestWorld()
	p := NewToolPool(w)
	f := NewToolFactory(w, p, sawOnly(1, 0), nil, nil)
	f.Prewarm()

	e, _ := f.Spawn(config.ToolSaw, math.Vec2{X: 30, Y: 30})
	EnableCollider(w, e)
	if !components.Tool.Get(e).ColliderEnabled || components.Object.Get(e).Space == nil {
		t.Fatal("collider not added to the space")
	}

	p.Return(config.ToolSaw, e)

	tool := components.Tool.Get(e)
	if tool.ColliderEnabled {
		t.Error("returning to the pool left the collider in the space")
	}
	if tool.State != components.ToolPooled {
		t.Errorf("state = %v, want pooled", tool.State)
	}
}
