package cubefield

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/cinefx/parameter"
	"github.com/lixenwraith/cinefx/vmath"
)

// Camera is an orthographic camera looking down -Z at the origin
type Camera struct {
	frustum float64
	eye     mgl64.Vec3

	halfW float64
	halfH float64

	view  mgl64.Mat4
	proj  mgl64.Mat4
	vp    mgl64.Mat4
	invVP mgl64.Mat4
}

// NewCamera creates a square-aspect camera
func NewCamera() *Camera {
	c := &Camera{
		frustum: parameter.CameraFrustum,
		eye:     mgl64.Vec3{0, 0, parameter.CameraEyeZ},
	}
	c.view = mgl64.LookAtV(c.eye, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0})
	c.SetAspect(1)
	return c
}

// SetAspect fits the frustum height and widens horizontally by aspect
func (c *Camera) SetAspect(aspect float64) {
	if aspect <= 0 {
		aspect = 1
	}
	c.halfH = c.frustum / 2
	c.halfW = c.frustum * aspect / 2
	c.proj = mgl64.Ortho(-c.halfW, c.halfW, -c.halfH, c.halfH, parameter.CameraNear, parameter.CameraFar)
	c.vp = c.proj.Mul4(c.view)
	c.invVP = c.vp.Inv()
}

// HalfExtents returns the visible half width and height in world units
func (c *Camera) HalfExtents() (float64, float64) {
	return c.halfW, c.halfH
}

// Ray returns the world-space pick ray through an NDC point
func (c *Camera) Ray(ndcX, ndcY float64) (origin, dir mgl64.Vec3) {
	near := c.invVP.Mul4x1(mgl64.Vec4{ndcX, ndcY, -1, 1})
	far := c.invVP.Mul4x1(mgl64.Vec4{ndcX, ndcY, 1, 1})
	origin = near.Vec3().Mul(1 / near.W())
	end := far.Vec3().Mul(1 / far.W())
	return origin, end.Sub(origin).Normalize()
}

// Project maps a world point to NDC plus depth in [-1,1]
func (c *Camera) Project(p mgl64.Vec3) (x, y, depth float64) {
	clip := c.vp.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w == 0 {
		return 0, 0, 1
	}
	return clip.X() / w, clip.Y() / w, clip.Z() / w
}

// PixelsPerUnit converts world length to pixels for a viewport height
func (c *Camera) PixelsPerUnit(viewportH float64) float64 {
	return viewportH / (2 * c.halfH)
}

func toMgl(v vmath.Vec3F) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) vmath.Vec3F {
	return vmath.Vec3F{X: v[0], Y: v[1], Z: v[2]}
}
