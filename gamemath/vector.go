package gamemath

import (
	"math"
	"math/rand/v2"

	dmath "github.com/yohamta/donburi/features/math"
)

// Vec2 is the donburi vector type; helpers here treat it as a value.
type Vec2 = dmath.Vec2

// Add returns a+b.
func Add(a, b Vec2) Vec2 {
	return Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns a-b.
func Sub(a, b Vec2) Vec2 {
	return Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Scale returns v*s.
func Scale(v Vec2, s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of a and b.
func Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Length returns the magnitude of v.
func Length(v Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Normalize returns v scaled to unit length, or the zero vector.
func Normalize(v Vec2) Vec2 {
	l := Length(v)
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Lerp interpolates from a to b. t is clamped to [0, 1].
func Lerp(a, b Vec2, t float64) Vec2 {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Vec2{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// Reflect mirrors dir about a surface with the given normal.
// normal does not need to be unit length.
func Reflect(dir, normal Vec2) Vec2 {
	n := Normalize(normal)
	d := 2 * Dot(dir, n)
	return Vec2{X: dir.X - d*n.X, Y: dir.Y - d*n.Y}
}

// Negate returns -v.
func Negate(v Vec2) Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// RandomUnit returns a uniformly distributed unit vector.
func RandomUnit(rng *rand.Rand) Vec2 {
	angle := rng.Float64() * 2 * math.Pi
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}
