package gamemath

// Rect is an axis-aligned box described by its min and max corners.
type Rect struct {
	Min, Max Vec2
}

// RectFromCenter builds a rect centered on c with the given full size.
func RectFromCenter(c, size Vec2) Rect {
	half := Scale(size, 0.5)
	return Rect{Min: Sub(c, half), Max: Add(c, half)}
}

// RectFromXYWH builds a rect from a top-left corner and a size.
func RectFromXYWH(x, y, w, h float64) Rect {
	return Rect{Min: Vec2{X: x, Y: y}, Max: Vec2{X: x + w, Y: y + h}}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Center returns the midpoint of r.
func (r Rect) Center() Vec2 {
	return Vec2{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Size returns the width and height of r.
func (r Rect) Size() Vec2 {
	return Sub(r.Max, r.Min)
}

// Expand grows r by d on every side.
func (r Rect) Expand(d float64) Rect {
	return Rect{
		Min: Vec2{X: r.Min.X - d, Y: r.Min.Y - d},
		Max: Vec2{X: r.Max.X + d, Y: r.Max.Y + d},
	}
}

// RandomPoint maps two uniform samples in [0,1) to a point inside r.
func (r Rect) RandomPoint(u, v float64) Vec2 {
	return Vec2{
		X: r.Min.X + u*(r.Max.X-r.Min.X),
		Y: r.Min.Y + v*(r.Max.Y-r.Min.Y),
	}
}

// OutsideNormal returns the inward normal of every edge p has crossed,
// summed. It is zero when p is inside r.
func (r Rect) OutsideNormal(p Vec2) Vec2 {
	var n Vec2
	if p.X < r.Min.X {
		n.X += 1
	} else if p.X > r.Max.X {
		n.X -= 1
	}
	if p.Y < r.Min.Y {
		n.Y += 1
	} else if p.Y > r.Max.Y {
		n.Y -= 1
	}
	return n
}

// ReflectOffBounds reflects dir off the edges that projected lies beyond.
// When projected is inside r the direction is reversed.
func (r Rect) ReflectOffBounds(dir, projected Vec2) Vec2 {
	n := r.OutsideNormal(projected)
	if n.X == 0 && n.Y == 0 {
		return Negate(dir)
	}
	return Reflect(dir, n)
}
