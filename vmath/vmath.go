package vmath

import (
	"math"
	"math/rand"
)

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Lerp interpolates a toward b by t without clamping
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Smoothstep is the cubic Hermite step between edge0 and edge1
func Smoothstep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := Clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

// Fract returns the fractional part, always in [0, 1)
func Fract(x float64) float64 {
	return x - math.Floor(x)
}

// RandRange returns a uniform value in [lo, hi)
func RandRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// RandSpread returns a uniform value in [-width/2, width/2)
func RandSpread(rng *rand.Rand, width float64) float64 {
	return (rng.Float64() - 0.5) * width
}

// RandAngle returns a uniform angle in [0, 2π)
func RandAngle(rng *rand.Rand) float64 {
	return rng.Float64() * 2 * math.Pi
}

// RandUnit3 returns a random unit direction, zero-safe
func RandUnit3(rng *rand.Rand) Vec3F {
	for {
		v := Vec3F{
			X: RandSpread(rng, 2),
			Y: RandSpread(rng, 2),
			Z: RandSpread(rng, 2),
		}
		if m := V3FMagSq(v); m > 1e-6 && m <= 1 {
			return V3FNormalize(v)
		}
	}
}
