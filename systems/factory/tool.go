package factory

import (
	"github.com/automoto/toolrush/archetypes"
	"github.com/automoto/toolrush/components"
	"github.com/automoto/toolrush/config"
	"github.com/automoto/toolrush/logger"
	"github.com/automoto/toolrush/pool"
	"github.com/automoto/toolrush/tags"
	"github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ToolPool is the pool specialisation used for tool entries.
type ToolPool = pool.Pool[config.ToolType, *donburi.Entry]

// Activator receives a tool right after it has been placed by Spawn.
type Activator interface {
	OnSpawn(e *donburi.Entry)
}

// ViewFactory builds the optional presentation for a new tool.
// Returning nil leaves the tool without one.
type ViewFactory func(t config.ToolType) components.Presentable

var resolvVariantTags = map[config.ToolType]string{
	config.ToolSaw:    tags.ResolvSaw,
	config.ToolAxe:    tags.ResolvAxe,
	config.ToolHammer: tags.ResolvHammer,
}

// ToolFactory builds tool entries from templates and hands them out through
// the pool.
type ToolFactory struct {
	world     donburi.World
	pool      *ToolPool
	entries   []config.ToolEntry
	activator Activator
	views     ViewFactory

	created [config.NumToolTypes]int
}

func NewToolFactory(w donburi.World, p *ToolPool, entries []config.ToolEntry, activator Activator, views ViewFactory) *ToolFactory {
	return &ToolFactory{
		world:     w,
		pool:      p,
		entries:   entries,
		activator: activator,
		views:     views,
	}
}

// Template returns the template configured for t, or nil.
func (f *ToolFactory) Template(t config.ToolType) *config.ToolTemplate {
	return config.Template(f.entries, t)
}

// Created returns how many entries of type t this factory has built.
func (f *ToolFactory) Created(t config.ToolType) int {
	if !t.Valid() {
		return 0
	}
	return f.created[t]
}

// Prewarm builds MaxCount pooled instances for every configured tool.
// Entries with a missing template or an unknown behavior are logged and
// skipped.
func (f *ToolFactory) Prewarm() {
	for _, e := range f.entries {
		log := logger.Log.WithField("tool", e.Type)
		if e.Template == nil {
			log.Warn("factory prewarm: entry has no template, skipping")
			continue
		}
		if !e.Type.Valid() {
			log.Warn("factory prewarm: unknown tool type, skipping")
			continue
		}
		if _, ok := archetypes.ToolExtras(e.Type, e.Template.Behavior); !ok {
			log.WithField("behavior", e.Template.Behavior).Error("factory prewarm: template has no known behavior, skipping")
			continue
		}

		f.pool.RegisterType(e.Type)
		for i := 0; i < max(0, e.Template.MaxCount); i++ {
			entry, ok := f.build(e.Type, e.Template)
			if !ok {
				break
			}
			f.pool.AddToPool(e.Type, entry)
		}
		log.WithField("count", f.pool.PooledCount(e.Type)).Debug("factory prewarm: pool filled")
	}
}

// Spawn takes a pooled tool of type t, or builds one when the pool is empty,
// moves it to pos and runs its activation hook.
func (f *ToolFactory) Spawn(t config.ToolType, pos math.Vec2) (*donburi.Entry, bool) {
	entry, ok := f.pool.Get(t)
	if !ok {
		tpl := f.Template(t)
		if tpl == nil {
			logger.Log.WithField("tool", t).Error("factory spawn: no template registered")
			return nil, false
		}
		if tpl.MaxOverflow > 0 && f.created[t] >= tpl.MaxCount+tpl.MaxOverflow {
			logger.Log.WithFields(logrus.Fields{
				"tool":    t,
				"created": f.created[t],
			}).Warn("factory spawn: overflow limit reached")
			return nil, false
		}
		if entry, ok = f.build(t, tpl); !ok {
			return nil, false
		}
		// track the new instance, then take it straight back out
		f.pool.AddToPool(t, entry)
		if entry, ok = f.pool.Get(t); !ok {
			return nil, false
		}
		logger.Log.WithField("tool", t).Debug("factory spawn: pool empty, built on demand")
	}

	MoveTool(entry, pos)
	if f.activator != nil {
		f.activator.OnSpawn(entry)
	}
	return entry, true
}

func (f *ToolFactory) build(t config.ToolType, tpl *config.ToolTemplate) (*donburi.Entry, bool) {
	extras, ok := archetypes.ToolExtras(t, tpl.Behavior)
	if !ok {
		logger.Log.WithFields(logrus.Fields{
			"tool":     t,
			"behavior": tpl.Behavior,
		}).Error("factory: template has no known behavior")
		return nil, false
	}

	entry := archetypes.Tool.Spawn(f.world, extras...)

	size := tpl.HitboxSize
	if size <= 0 {
		size = 1
	}
	obj := resolv.NewObject(0, 0, size, size, tags.ResolvTool, resolvVariantTags[t])
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	var view components.Presentable
	if f.views != nil {
		view = f.views(t)
	}
	if view != nil {
		view.Initialize(t, tpl)
	}

	components.Tool.SetValue(entry, components.ToolData{
		Type:     t,
		Template: tpl,
		State:    components.ToolPooled,
		View:     view,
	})

	f.created[t]++
	return entry, true
}

// MoveTool places the tool's center at pos and keeps its collider in sync.
func MoveTool(e *donburi.Entry, pos math.Vec2) {
	tr := components.Transform.Get(e)
	tr.Position = pos

	obj := components.Object.Get(e)
	obj.X = pos.X - obj.W/2
	obj.Y = pos.Y - obj.H/2
	obj.Update()
}

// EnableCollider adds the tool's collision object to the space.
func EnableCollider(w donburi.World, e *donburi.Entry) {
	tool := components.Tool.Get(e)
	if tool.ColliderEnabled {
		return
	}
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(components.Object.Get(e).Object)
	}
	tool.ColliderEnabled = true
}

// DisableCollider removes the tool's collision object from the space.
func DisableCollider(w donburi.World, e *donburi.Entry) {
	tool := components.Tool.Get(e)
	if !tool.ColliderEnabled {
		return
	}
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Remove(components.Object.Get(e).Object)
	}
	tool.ColliderEnabled = false
}

// ActivationHook returns the pool callback that flips a tool between the
// pooled and active states. Deactivation also disables the collider.
func ActivationHook(w donburi.World) func(e *donburi.Entry, active bool) {
	return func(e *donburi.Entry, active bool) {
		if e == nil || !e.Valid() || !e.HasComponent(components.Tool) {
			return
		}
		tool := components.Tool.Get(e)
		if active {
			tool.State = components.ToolActive
			return
		}
		DisableCollider(w, e)
		tool.State = components.ToolPooled
	}
}

// NewToolPool creates the tool pool for w with ActivationHook installed.
func NewToolPool(w donburi.World) *ToolPool {
	return pool.New[config.ToolType, *donburi.Entry](ActivationHook(w))
}
