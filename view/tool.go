// Package view is the tween-driven presentation of tools. It holds no
// drawing code; renderers read Alpha, Scale and Visible.
package view

import (
	"github.com/automoto/toolrush/components"
	"github.com/automoto/toolrush/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	blinkMinAlpha         = 0.2
	collectEffectDuration = 0.35
)

// ToolView implements components.Presentable.
type ToolView struct {
	toolType config.ToolType
	sprite   string
	visible  bool

	alpha     float32
	blink     *gween.Tween
	blinkDown bool
	blinkStep float32

	scale    float32
	effect   *gween.Tween
	onEffect func()
}

var _ components.Presentable = (*ToolView)(nil)

func NewToolView() *ToolView {
	return &ToolView{alpha: 1, scale: 1}
}

func (v *ToolView) Initialize(t config.ToolType, tpl *config.ToolTemplate) {
	v.toolType = t
	if tpl != nil {
		v.sprite = tpl.Sprite
	}
}

func (v *ToolView) Show() {
	v.visible = true
	v.alpha = 1
	v.scale = 1
}

func (v *ToolView) Hide() {
	v.visible = false
}

// StartBlink fades the tool between full and low alpha, one leg per
// interval.
func (v *ToolView) StartBlink(interval float64) {
	v.blinkStep = float32(interval)
	v.blinkDown = true
	v.blink = gween.New(1, blinkMinAlpha, v.blinkStep, ease.Linear)
}

func (v *ToolView) StopBlink() {
	v.blink = nil
	v.alpha = 1
}

// PlayCollectEffect shrinks the tool to nothing and then calls onComplete.
// The effect keeps playing after Hide.
func (v *ToolView) PlayCollectEffect(onComplete func()) {
	v.effect = gween.New(1, 0, collectEffectDuration, ease.InQuad)
	v.onEffect = onComplete
}

// Update advances the blink and collect tweens by dt seconds.
func (v *ToolView) Update(dt float64) {
	step := float32(dt)

	if v.blink != nil {
		a, done := v.blink.Update(step)
		v.alpha = a
		if done {
			from, to := float32(blinkMinAlpha), float32(1)
			if !v.blinkDown {
				from, to = 1, blinkMinAlpha
			}
			v.blinkDown = !v.blinkDown
			v.blink = gween.New(from, to, v.blinkStep, ease.Linear)
		}
	}

	if v.effect != nil {
		s, done := v.effect.Update(step)
		v.scale = s
		if done {
			v.effect = nil
			cb := v.onEffect
			v.onEffect = nil
			if cb != nil {
				cb()
			}
		}
	}
}

func (v *ToolView) Type() config.ToolType { return v.toolType }
func (v *ToolView) Sprite() string { return v.sprite }
func (v *ToolView) Visible() bool { return v.visible }
func (v *ToolView) Alpha() float32 { return v.alpha }
func (v *ToolView) Scale() float32 { return v.scale }
func (v *ToolView) Blinking() bool { return v.blink != nil }
func (v *ToolView) EffectPlaying() bool { return v.effect != nil }

// Drawn reports whether a renderer should draw the tool this frame.
func (v *ToolView) Drawn() bool {
	return v.visible || v.effect != nil
}
