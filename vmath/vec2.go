package vmath

import "math"

// Vec2 is a float64 2D vector in viewport pixel space
type Vec2 struct {
	X, Y float64
}

// Epsilon is the magnitude below which a vector is treated as zero
const Epsilon = 1e-9

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// V2Dist returns Euclidean distance between two points
func V2Dist(a, b Vec2) float64 {
	return V2Mag(V2Sub(a, b))
}

// V2Normalize returns the unit vector of v, zero-safe
func V2Normalize(v Vec2) Vec2 {
	mag := V2Mag(v)
	if mag < Epsilon {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// V2NormalizeOr returns the unit vector of v, or fallback when v is degenerate
func V2NormalizeOr(v, fallback Vec2) Vec2 {
	mag := V2Mag(v)
	if mag < Epsilon {
		return fallback
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// V2IsZero reports whether v is shorter than tol
func V2IsZero(v Vec2, tol float64) bool {
	return V2MagSq(v) < tol*tol
}
