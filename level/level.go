// Package level reads arena layouts from Tiled maps.
package level

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/automoto/toolrush/config"
	"github.com/lafriks/go-tiled"
)

// DefaultObstacleLayer is the object group LoadObstacles reads by default.
const DefaultObstacleLayer = "Obstacles"

// ErrNoLayer is returned when the map has no object group with the
// requested name.
var ErrNoLayer = errors.New("object layer not found")

// Arena is the subset of a map the game uses.
type Arena struct {
	Width, Height int
	Obstacles     []config.Rect
}

// Load parses the TMX file at path inside fsys and collects the rectangles
// of the named object group.
func Load(fsys fs.FS, path, layer string) (Arena, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return Arena{}, fmt.Errorf("load level %s: %w", path, err)
	}
	if layer == "" {
		layer = DefaultObstacleLayer
	}

	arena := Arena{
		Width:  m.Width * m.TileWidth,
		Height: m.Height * m.TileHeight,
	}
	found := false
	for _, og := range m.ObjectGroups {
		if og.Name != layer {
			continue
		}
		found = true
		for _, o := range og.Objects {
			if o.Width <= 0 || o.Height <= 0 {
				continue
			}
			arena.Obstacles = append(arena.Obstacles, config.Rect{
				X: o.X,
				Y: o.Y,
				W: o.Width,
				H: o.Height,
			})
		}
	}
	if !found {
		return arena, fmt.Errorf("load level %s: %q: %w", path, layer, ErrNoLayer)
	}
	return arena, nil
}

// LoadObstacles returns only the obstacle rectangles of the named layer.
func LoadObstacles(fsys fs.FS, path, layer string) ([]config.Rect, error) {
	arena, err := Load(fsys, path, layer)
	if err != nil {
		return nil, err
	}
	return arena.Obstacles, nil
}
