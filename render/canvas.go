package render

import (
	"image"

	"golang.org/x/image/vector"
)

// CompositeOp selects how drawn colors combine with the canvas
type CompositeOp uint8

const (
	// SourceOver is normal alpha blending
	SourceOver CompositeOp = iota
	// Lighter adds source to destination (additive glow)
	Lighter
)

// Canvas is a software drawing surface with canvas-2D compositing semantics
// Drawing calls take logical coordinates mapped to backing pixels by a uniform transform
// A Canvas is not safe for concurrent use
type Canvas struct {
	width  int
	height int
	pix    []Pixel

	op    CompositeOp
	alpha float64

	scale      float64
	offX, offY float64

	// Scratch for path fills, sized lazily to the backing store
	mask   *image.Alpha
	raster *vector.Rasterizer
	img    *image.RGBA
}

// NewCanvas creates a cleared canvas with identity transform
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{alpha: 1, scale: 1}
	c.Resize(width, height)
	return c
}

// Resize adjusts backing dimensions, reallocates only if capacity insufficient
func (c *Canvas) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(c.pix) < size {
		c.pix = make([]Pixel, size)
	} else {
		c.pix = c.pix[:size]
		clear(c.pix)
	}
	c.width = width
	c.height = height
	c.mask = nil
	c.raster = nil
	c.img = nil
}

// Size returns backing dimensions in pixels
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// SetComposite selects the composite operator for subsequent draws
func (c *Canvas) SetComposite(op CompositeOp) {
	c.op = op
}

// Composite returns the active composite operator
func (c *Canvas) Composite() CompositeOp {
	return c.op
}

// SetGlobalAlpha multiplies every subsequent draw, clamped to [0,1]
func (c *Canvas) SetGlobalAlpha(a float64) {
	switch {
	case a < 0:
		a = 0
	case a > 1:
		a = 1
	}
	c.alpha = a
}

// SetTransform maps logical (x, y) to backing (x*scale+offX, y*scale+offY)
func (c *Canvas) SetTransform(scale, offX, offY float64) {
	if scale <= 0 {
		scale = 1
	}
	c.scale = scale
	c.offX = offX
	c.offY = offY
}

// Scale returns logical-to-backing scale factor
func (c *Canvas) Scale() float64 {
	return c.scale
}

// ResetState restores source-over, full alpha, keeps transform
func (c *Canvas) ResetState() {
	c.op = SourceOver
	c.alpha = 1
}

// toBacking maps logical coordinates to backing pixels
func (c *Canvas) toBacking(x, y float64) (float64, float64) {
	return x*c.scale + c.offX, y*c.scale + c.offY
}

// toLogical maps backing pixel center to logical coordinates
func (c *Canvas) toLogical(px, py int) (float64, float64) {
	return (float64(px) + 0.5 - c.offX) / c.scale, (float64(py) + 0.5 - c.offY) / c.scale
}

// At returns the backing pixel, zero outside bounds
func (c *Canvas) At(x, y int) Pixel {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return Pixel{}
	}
	return c.pix[y*c.width+x]
}

// Clear fills the whole backing store with an opaque color, ignoring state
func (c *Canvas) Clear(bg RGB) {
	if len(c.pix) == 0 {
		return
	}
	c.pix[0] = Pixel{R: float32(bg.R), G: float32(bg.G), B: float32(bg.B)}
	// Exponential copy
	for filled := 1; filled < len(c.pix); filled *= 2 {
		copy(c.pix[filled:], c.pix[:filled])
	}
}

// Blend composites col onto a backing pixel with fractional coverage
func (c *Canvas) Blend(x, y int, col Color, coverage float64) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	a := col.A * coverage * c.alpha
	if a <= 0 {
		return
	}
	if a > 1 {
		a = 1
	}
	idx := y*c.width + x
	switch c.op {
	case Lighter:
		c.pix[idx] = blendAdd(c.pix[idx], col, a)
	default:
		c.pix[idx] = blendOver(c.pix[idx], col, a)
	}
}

// Fade draws a translucent overlay across the entire backing store
// Used instead of Clear to leave motion trails
func (c *Canvas) Fade(col Color) {
	saved := c.op
	c.op = SourceOver
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			c.Blend(x, y, col, 1)
		}
	}
	c.op = saved
}

// backingRect converts a logical bounding box to clipped backing pixel bounds
func (c *Canvas) backingRect(x0, y0, x1, y1 float64) (int, int, int, int, bool) {
	bx0, by0 := c.toBacking(x0, y0)
	bx1, by1 := c.toBacking(x1, y1)
	minX := max(0, int(bx0)-1)
	minY := max(0, int(by0)-1)
	maxX := min(c.width-1, int(bx1)+1)
	maxY := min(c.height-1, int(by1)+1)
	return minX, minY, maxX, maxY, minX <= maxX && minY <= maxY
}
