package cubefield

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/cinefx/gpu"
	"github.com/lixenwraith/cinefx/parameter"
	"github.com/lixenwraith/cinefx/vmath"
)

// CubeState is the interaction state of a cube
type CubeState uint8

const (
	Floating CubeState = iota
	Dragging
	Shattered
)

func (s CubeState) String() string {
	switch s {
	case Floating:
		return "floating"
	case Dragging:
		return "dragging"
	case Shattered:
		return "shattered"
	default:
		return "unknown"
	}
}

// Cube is a floating glass rigid body
type Cube struct {
	ID    int
	State CubeState

	Pos vmath.Vec3F
	Vel vmath.Vec3F
	Rot vmath.Vec3F // Euler XYZ, radians

	Scale       float64
	scaleVel    float64
	BaseScale   float64
	TargetScale float64

	// Seed offsets the animated shading per cube
	Seed float64

	geometry *gpu.Geometry
	material *gpu.Material
}

// Alive reports whether the cube still participates in the field
func (c *Cube) Alive() bool {
	return c.State != Shattered
}

// Orientation returns the rotation matrix for the cube's Euler angles
func (c *Cube) Orientation() mgl64.Mat3 {
	return orientation(c.Rot)
}

func orientation(rot vmath.Vec3F) mgl64.Mat3 {
	return mgl64.Rotate3DX(rot.X).Mul3(mgl64.Rotate3DY(rot.Y)).Mul3(mgl64.Rotate3DZ(rot.Z))
}

// HalfExtent is the world half size along each local axis
func (c *Cube) HalfExtent() float64 {
	return parameter.CubeHalfSize * c.Scale
}

// BoundingRadius encloses the cube at any orientation
func (c *Cube) BoundingRadius() float64 {
	return c.HalfExtent() * math.Sqrt(3)
}

// hit describes where a ray enters and leaves an oriented box
type hit struct {
	tNear, tFar float64
	nearAxis    int
	nearSign    float64
	farAxis     int
	farSign     float64
}

// intersect runs the slab test in the cube's local frame
// rot is the cube orientation, rotT its transpose
func intersect(origin, dir, center mgl64.Vec3, rotT mgl64.Mat3, half float64) (hit, bool) {
	o := rotT.Mul3x1(origin.Sub(center))
	d := rotT.Mul3x1(dir)

	h := hit{tNear: math.Inf(-1), tFar: math.Inf(1)}
	for axis := 0; axis < 3; axis++ {
		if math.Abs(d[axis]) < 1e-12 {
			if o[axis] < -half || o[axis] > half {
				return hit{}, false
			}
			continue
		}
		inv := 1 / d[axis]
		t1 := (-half - o[axis]) * inv
		t2 := (half - o[axis]) * inv
		// Entering through the face whose normal opposes d
		sign := -math.Copysign(1, d[axis])
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > h.tNear {
			h.tNear = t1
			h.nearAxis = axis
			h.nearSign = sign
		}
		if t2 < h.tFar {
			h.tFar = t2
			h.farAxis = axis
			h.farSign = -sign
		}
		if h.tNear > h.tFar {
			return hit{}, false
		}
	}
	if h.tFar < 0 {
		return hit{}, false
	}
	return h, true
}

// Intersect reports the entry distance of a world ray, false on miss
func (c *Cube) Intersect(origin, dir mgl64.Vec3) (float64, bool) {
	h, ok := intersect(origin, dir, toMgl(c.Pos), c.Orientation().Transpose(), c.HalfExtent())
	if !ok {
		return 0, false
	}
	return h.tNear, true
}

// release frees the cube's device resources exactly once
func (c *Cube) release() int {
	var res []gpu.Resource
	if c.geometry != nil {
		res = append(res, c.geometry)
	}
	if c.material != nil {
		res = append(res, c.material)
	}
	n := gpu.Release(res...)
	c.geometry = nil
	c.material = nil
	return n
}
