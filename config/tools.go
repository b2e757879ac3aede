package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ToolType identifies a collectible tool variant. It keys pools, counters and
// templates.
type ToolType int

const (
	ToolSaw ToolType = iota
	ToolAxe
	ToolHammer

	NumToolTypes = int(ToolHammer) + 1
)

var toolTypeNames = [NumToolTypes]string{
	ToolSaw:    "saw",
	ToolAxe:    "axe",
	ToolHammer: "hammer",
}

// AllToolTypes lists every variant in declaration order.
var AllToolTypes = [NumToolTypes]ToolType{ToolSaw, ToolAxe, ToolHammer}

func (t ToolType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("ToolType(%d)", int(t))
	}
	return toolTypeNames[t]
}

// Valid reports whether t is one of the declared variants.
func (t ToolType) Valid() bool {
	return t >= 0 && int(t) < NumToolTypes
}

// ParseToolType resolves a case-insensitive variant name.
func ParseToolType(name string) (ToolType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range toolTypeNames {
		if n == name {
			return ToolType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tool type %q", name)
}

func (t ToolType) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

func (t *ToolType) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseToolType(value.Value)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// BehaviorKind selects the per-tick logic a tool runs while active.
type BehaviorKind string

const (
	BehaviorSpin     BehaviorKind = "spin"
	BehaviorWander   BehaviorKind = "wander"
	BehaviorLifetime BehaviorKind = "lifetime"
)
