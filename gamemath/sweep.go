package gamemath

import "math"

// SweepHit describes where a swept circle first touches a box.
type SweepHit struct {
	Distance float64 // travel along the direction before contact
	Normal   Vec2    // unit surface normal at the contact
}

// SweepCircleRect casts a circle of the given radius from origin along the
// unit direction dir for at most maxDist and reports the first contact with
// box. The box is inflated by the radius, so corners are treated as square.
// A circle that already overlaps the box reports Distance 0 and a normal
// pointing from the box toward the origin along the axis of least
// penetration.
func SweepCircleRect(origin, dir Vec2, radius, maxDist float64, box Rect) (SweepHit, bool) {
	b := box.Expand(radius)

	if b.Contains(origin) {
		return SweepHit{Distance: 0, Normal: overlapNormal(origin, b)}, true
	}

	tEnter := math.Inf(-1)
	tExit := math.Inf(1)
	var normal Vec2

	axes := [2]struct {
		o, d, lo, hi float64
		n           Vec2
	}{
		{origin.X, dir.X, b.Min.X, b.Max.X, Vec2{X: 1}},
		{origin.Y, dir.Y, b.Min.Y, b.Max.Y, Vec2{Y: 1}},
	}
	for _, a := range axes {
		if a.d == 0 {
			if a.o < a.lo || a.o > a.hi {
				return SweepHit{}, false
			}
			continue
		}
		t1 := (a.lo - a.o) / a.d
		t2 := (a.hi - a.o) / a.d
		n := Negate(a.n)
		if t1 > t2 {
			t1, t2 = t2, t1
			n = a.n
		}
		if t1 > tEnter {
			tEnter = t1
			normal = n
		}
		if t2 < tExit {
			tExit = t2
		}
		if tEnter > tExit {
			return SweepHit{}, false
		}
	}

	if tEnter < 0 || tEnter > maxDist {
		return SweepHit{}, false
	}
	return SweepHit{Distance: tEnter, Normal: normal}, true
}

func overlapNormal(p Vec2, b Rect) Vec2 {
	left := p.X - b.Min.X
	right := b.Max.X - p.X
	top := p.Y - b.Min.Y
	bottom := b.Max.Y - p.Y

	best := left
	n := Vec2{X: -1}
	if right < best {
		best, n = right, Vec2{X: 1}
	}
	if top < best {
		best, n = top, Vec2{Y: -1}
	}
	if bottom < best {
		n = Vec2{Y: 1}
	}
	return n
}
