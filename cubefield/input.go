package cubefield

import (
	"math"
	"time"

	"github.com/lixenwraith/cinefx/parameter"
	"github.com/lixenwraith/cinefx/vmath"
)

// dragState tracks the cube under the pointer between down and up
type dragState struct {
	cube     *Cube
	lastX    float64
	lastY    float64
	lastTime time.Time
	velocity vmath.Vec3F
}

// Dragged returns the cube being dragged, nil when idle
func (f *Field) Dragged() *Cube {
	return f.drag.cube
}

// Hovered returns the cube under the pointer, nil when none
func (f *Field) Hovered() *Cube {
	return f.hovered
}

// Pick returns the nearest live cube under an NDC point
func (f *Field) Pick(ndcX, ndcY float64) *Cube {
	origin, dir := f.camera.Ray(ndcX, ndcY)
	var best *Cube
	bestT := math.Inf(1)
	for _, c := range f.cubes {
		t, ok := c.Intersect(origin, dir)
		if ok && t < bestT {
			best, bestT = c, t
		}
	}
	return best
}

// PointerMove handles a move in container CSS pixels
func (f *Field) PointerMove(x, y float64, at time.Time) {
	if !f.Ready() {
		return
	}
	nx, ny := f.Adapter().ToNDC(x, y)
	f.PointerMoveNDC(nx, ny, at)
}

// PointerDown handles a press in container CSS pixels
func (f *Field) PointerDown(x, y float64, at time.Time) {
	if !f.Ready() {
		return
	}
	nx, ny := f.Adapter().ToNDC(x, y)
	f.PointerDownNDC(nx, ny, at)
}

// PointerUp ends a drag
func (f *Field) PointerUp(x, y float64, at time.Time) {
	f.PointerUpNDC()
}

// PointerLeave ends drag and hover
func (f *Field) PointerLeave() {
	f.PointerUpNDC()
	f.setHover(nil)
}

// PointerDownNDC starts dragging the cube under the point, if any
func (f *Field) PointerDownNDC(ndcX, ndcY float64, at time.Time) {
	if f.closed {
		return
	}
	c := f.Pick(ndcX, ndcY)
	if c == nil {
		return
	}
	c.State = Dragging
	c.Vel = vmath.Vec3F{}
	c.TargetScale = c.BaseScale * parameter.CubePressScale
	f.drag = dragState{cube: c, lastX: ndcX, lastY: ndcY, lastTime: at}
}

// PointerMoveNDC moves the dragged cube or updates hover
func (f *Field) PointerMoveNDC(ndcX, ndcY float64, at time.Time) {
	if f.closed {
		return
	}
	d := &f.drag
	if d.cube == nil {
		f.setHover(f.Pick(ndcX, ndcY))
		return
	}

	dt := at.Sub(d.lastTime).Seconds()
	if dt <= 0 {
		dt = parameter.CubeFallbackDT
	}
	dt = math.Max(dt, parameter.CubeMinDragDT)

	move := vmath.Vec3F{
		X: (ndcX - d.lastX) * parameter.CubeDragGain,
		Y: (ndcY - d.lastY) * parameter.CubeDragGain,
	}
	d.cube.Pos = fieldBounds.Clamp(vmath.V3FAdd(d.cube.Pos, move))
	d.velocity = vmath.V3FScale(move, 1/dt)
	d.lastX, d.lastY, d.lastTime = ndcX, ndcY, at
}

// PointerUpNDC releases the dragged cube with its last drag velocity
func (f *Field) PointerUpNDC() {
	c := f.drag.cube
	if c == nil {
		return
	}
	c.Vel = vmath.V3FClampMag(f.drag.velocity, parameter.CubeMaxSpeed)
	c.State = Floating
	c.TargetScale = c.BaseScale
	if f.hovered == c {
		c.TargetScale = c.BaseScale * parameter.CubeHoverScale
	}
	f.drag = dragState{}
}

func (f *Field) setHover(c *Cube) {
	if f.hovered == c {
		return
	}
	if prev := f.hovered; prev != nil && prev != f.drag.cube {
		prev.TargetScale = prev.BaseScale
	}
	f.hovered = c
	if c != nil && c != f.drag.cube {
		c.TargetScale = c.BaseScale * parameter.CubeHoverScale
	}
}
