// Package surface sizes a canvas backing store to its container and maps the simulation's
// logical coordinate space into it
package surface

import (
	"math"

	"github.com/lixenwraith/cinefx/render"
)

// MaxDPR caps the device pixel ratio applied to backing stores
const MaxDPR = 2.0

// Fit selects how logical space maps into the container
type Fit uint8

const (
	// Letterbox keeps a fixed logical size, scaled uniformly and centered
	Letterbox Fit = iota
	// Stretch makes the logical size track the container in CSS pixels
	Stretch
)

// Adapter tracks container size and derives backing size and logical transform
// Zero value is not usable, construct with New
type Adapter struct {
	fit      Fit
	logicalW float64
	logicalH float64

	containerW int
	containerH int
	dpr        float64

	backingW int
	backingH int
	scale    float64
	offX     float64
	offY     float64
}

// New creates an adapter for a fixed logical space, ignored in Stretch mode
func New(fit Fit, logicalW, logicalH float64) *Adapter {
	return &Adapter{fit: fit, logicalW: logicalW, logicalH: logicalH, scale: 1}
}

// Resize applies a container size and device pixel ratio to c
// Returns false without touching c when the container is empty or nothing changed
func (a *Adapter) Resize(c *render.Canvas, containerW, containerH int, dpr float64) bool {
	if containerW <= 0 || containerH <= 0 {
		return false
	}
	if dpr <= 0 || math.IsNaN(dpr) {
		dpr = 1
	}
	dpr = math.Min(dpr, MaxDPR)
	if containerW == a.containerW && containerH == a.containerH && dpr == a.dpr {
		return false
	}

	a.containerW = containerW
	a.containerH = containerH
	a.dpr = dpr
	a.backingW = int(math.Round(float64(containerW) * dpr))
	a.backingH = int(math.Round(float64(containerH) * dpr))

	switch a.fit {
	case Stretch:
		a.logicalW = float64(containerW)
		a.logicalH = float64(containerH)
		a.scale = dpr
		a.offX, a.offY = 0, 0
	default:
		sx := float64(a.backingW) / a.logicalW
		sy := float64(a.backingH) / a.logicalH
		a.scale = math.Min(sx, sy)
		a.offX = (float64(a.backingW) - a.logicalW*a.scale) / 2
		a.offY = (float64(a.backingH) - a.logicalH*a.scale) / 2
	}

	c.Resize(a.backingW, a.backingH)
	c.SetTransform(a.scale, a.offX, a.offY)
	return true
}

// Ready reports whether a non-empty size has been applied
func (a *Adapter) Ready() bool {
	return a.backingW > 0 && a.backingH > 0
}

// Backing returns the backing store size in device pixels
func (a *Adapter) Backing() (int, int) {
	return a.backingW, a.backingH
}

// Logical returns the logical scene size
func (a *Adapter) Logical() (float64, float64) {
	return a.logicalW, a.logicalH
}

// ToLogical maps a container-space point (CSS pixels) to logical coordinates
func (a *Adapter) ToLogical(x, y float64) (float64, float64) {
	bx, by := x*a.dpr, y*a.dpr
	return (bx - a.offX) / a.scale, (by - a.offY) / a.scale
}

// ToNDC maps a container-space point to normalized device coordinates over the logical area
// x in [-1,1] left to right, y in [-1,1] bottom to top
func (a *Adapter) ToNDC(x, y float64) (float64, float64) {
	lx, ly := a.ToLogical(x, y)
	return lx/a.logicalW*2 - 1, -(ly/a.logicalH*2 - 1)
}
