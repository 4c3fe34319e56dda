package physics

import (
	"github.com/lixenwraith/cinefx/vmath"
)

// Box is an axis-aligned container for bodies
type Box struct {
	Min, Max vmath.Vec3F
}

// SymmetricBox returns a box spanning [-half, half] on every axis
func SymmetricBox(half vmath.Vec3F) Box {
	return Box{
		Min: vmath.Vec3F{X: -half.X, Y: -half.Y, Z: -half.Z},
		Max: half,
	}
}

// Contains reports whether p lies inside the box, with eps tolerance
func (b Box) Contains(p vmath.Vec3F, eps float64) bool {
	return p.X >= b.Min.X-eps && p.X <= b.Max.X+eps &&
		p.Y >= b.Min.Y-eps && p.Y <= b.Max.Y+eps &&
		p.Z >= b.Min.Z-eps && p.Z <= b.Max.Z+eps
}

// Damp scales velocity by a per-frame retention factor
func Damp(vel *vmath.Vec3F, factor float64) {
	vel.X *= factor
	vel.Y *= factor
	vel.Z *= factor
}

// Integrate advances pos by vel*dt when speed² exceeds restSq
// Returns false for bodies considered at rest
func Integrate(pos *vmath.Vec3F, vel vmath.Vec3F, dt, restSq float64) bool {
	if vmath.V3FMagSq(vel) <= restSq {
		return false
	}
	*pos = vmath.V3FAddScaled(*pos, vel, dt)
	return true
}

// ReflectAxis clamps position component and reflects velocity on boundary
func ReflectAxis(pos, vel *float64, lo, hi, restitution float64) bool {
	if *pos < lo {
		*pos = lo
		if *vel < 0 {
			*vel = -*vel * restitution
		}
		return true
	}
	if *pos > hi {
		*pos = hi
		if *vel > 0 {
			*vel = -*vel * restitution
		}
		return true
	}
	return false
}

// ReflectBox applies ReflectAxis on all three axes, returns true on any contact
func ReflectBox(pos, vel *vmath.Vec3F, box Box, restitution float64) bool {
	hitX := ReflectAxis(&pos.X, &vel.X, box.Min.X, box.Max.X, restitution)
	hitY := ReflectAxis(&pos.Y, &vel.Y, box.Min.Y, box.Max.Y, restitution)
	hitZ := ReflectAxis(&pos.Z, &vel.Z, box.Min.Z, box.Max.Z, restitution)
	return hitX || hitY || hitZ
}

// Clamp limits p to the box
func (b Box) Clamp(p vmath.Vec3F) vmath.Vec3F {
	return vmath.Vec3F{
		X: vmath.Clamp(p.X, b.Min.X, b.Max.X),
		Y: vmath.Clamp(p.Y, b.Min.Y, b.Max.Y),
		Z: vmath.Clamp(p.Z, b.Min.Z, b.Max.Z),
	}
}
