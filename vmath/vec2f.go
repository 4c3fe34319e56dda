package vmath

import "math"

// Vec2F is a float64 2D vector in canvas space (y grows downward)
type Vec2F struct {
	X, Y float64
}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2FSub(a, b Vec2F) Vec2F {
	return Vec2F{a.X - b.X, a.Y - b.Y}
}

func V2FScale(v Vec2F, s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

func V2FMag(v Vec2F) float64 {
	return math.Hypot(v.X, v.Y)
}

// V2FRotate rotates v counter-clockwise by angle radians
func V2FRotate(v Vec2F, angle float64) Vec2F {
	s, c := math.Sincos(angle)
	return Vec2F{v.X*c - v.Y*s, v.X*s + v.Y*c}
}
