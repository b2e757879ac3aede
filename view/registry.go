package view

import (
	"github.com/automoto/toolrush/components"
	"github.com/automoto/toolrush/config"
)

// Registry creates a view per tool and advances all of them together.
type Registry struct {
	views []*ToolView
}

func NewRegistry() *Registry {
	return &Registry{}
}

// New is a factory.ViewFactory.
func (r *Registry) New(config.ToolType) components.Presentable {
	v := NewToolView()
	r.views = append(r.views, v)
	return v
}

func (r *Registry) Update(dt float64) {
	for _, v := range r.views {
		v.Update(dt)
	}
}

func (r *Registry) Len() int {
	return len(r.views)
}
