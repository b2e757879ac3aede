package components

import (
	"github.com/automoto/toolrush/config"
	"github.com/automoto/toolrush/events"
	"github.com/automoto/toolrush/timer"
	"github.com/yohamta/donburi"
)

type ToolState int

const (
	ToolPooled ToolState = iota
	ToolActive
	ToolCollecting
)

func (s ToolState) String() string {
	switch s {
	case ToolPooled:
		return "pooled"
	case ToolActive:
		return "active"
	case ToolCollecting:
		return "collecting"
	}
	return "unknown"
}

// Presentable is the optional visual side of a tool. The core calls it for
// side effects only and never waits on it.
type Presentable interface {
	Initialize(t config.ToolType, tpl *config.ToolTemplate)
	Show()
	Hide()
	StartBlink(interval float64)
	StopBlink()
	// PlayCollectEffect may call onComplete now, later, or never.
	PlayCollectEffect(onComplete func())
}

type ToolData struct {
	Type     config.ToolType
	Template *config.ToolTemplate
	State    ToolState

	CanBeCollected  bool
	ColliderEnabled bool

	View Presentable // nil when the tool has no presentation

	Timers       []timer.Token
	InventorySub events.Subscription
}

var Tool = donburi.NewComponentType[ToolData]()
