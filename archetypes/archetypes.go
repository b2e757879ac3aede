package archetypes

import (
	"github.com/automoto/toolrush/components"
	"github.com/automoto/toolrush/config"
	"github.com/automoto/toolrush/tags"
	"github.com/yohamta/donburi"
)

var (
	Tool = newArchetype(
		tags.Tool,
		components.Tool,
		components.Transform,
		components.Object,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
)

// behaviorComponents lists the extra components each behavior needs.
// A behavior missing from this map cannot be built.
var behaviorComponents = map[config.BehaviorKind][]donburi.IComponentType{
	config.BehaviorSpin:     nil,
	config.BehaviorWander:   {components.Wander},
	config.BehaviorLifetime: {components.Lifetime},
}

var variantTags = map[config.ToolType]donburi.IComponentType{
	config.ToolSaw:    tags.Saw,
	config.ToolAxe:    tags.Axe,
	config.ToolHammer: tags.Hammer,
}

// ToolExtras returns the components a tool of type t with behavior kind
// needs on top of the Tool archetype. ok is false for an unknown behavior.
func ToolExtras(t config.ToolType, kind config.BehaviorKind) (cs []donburi.IComponentType, ok bool) {
	extra, ok := behaviorComponents[kind]
	if !ok {
		return nil, false
	}
	cs = append(cs, extra...)
	if tag, ok := variantTags[t]; ok {
		cs = append(cs, tag)
	}
	return cs, true
}

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
