package render

import (
	"image"
	"math"

	"github.com/lixenwraith/cinefx/vmath"
	"golang.org/x/image/vector"
)

// FillPolygon fills a closed logical polygon using nonzero coverage from x/image/vector
func (c *Canvas) FillPolygon(pts []vmath.Vec2F, p Paint) {
	if len(pts) < 3 || c.width == 0 || c.height == 0 {
		return
	}
	if c.raster == nil {
		c.raster = vector.NewRasterizer(c.width, c.height)
		c.mask = image.NewAlpha(image.Rect(0, 0, c.width, c.height))
	} else {
		c.raster.Reset(c.width, c.height)
	}

	lo := vmath.Vec2F{X: math.Inf(1), Y: math.Inf(1)}
	hi := vmath.Vec2F{X: math.Inf(-1), Y: math.Inf(-1)}
	for i, q := range pts {
		bx, by := c.toBacking(q.X, q.Y)
		if i == 0 {
			c.raster.MoveTo(float32(bx), float32(by))
		} else {
			c.raster.LineTo(float32(bx), float32(by))
		}
		lo.X, lo.Y = math.Min(lo.X, bx), math.Min(lo.Y, by)
		hi.X, hi.Y = math.Max(hi.X, bx), math.Max(hi.Y, by)
	}
	c.raster.ClosePath()

	minX := max(0, int(math.Floor(lo.X)))
	minY := max(0, int(math.Floor(lo.Y)))
	maxX := min(c.width-1, int(math.Ceil(hi.X)))
	maxY := min(c.height-1, int(math.Ceil(hi.Y)))
	if minX > maxX || minY > maxY {
		return
	}

	// Rasterizer accumulates over the mask, clear the touched region first
	for y := minY; y <= maxY; y++ {
		row := c.mask.Pix[y*c.mask.Stride+minX : y*c.mask.Stride+maxX+1]
		clear(row)
	}
	c.raster.Draw(c.mask, c.mask.Bounds(), image.Opaque, image.Point{})

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			a := c.mask.Pix[y*c.mask.Stride+x]
			if a == 0 {
				continue
			}
			lx, ly := c.toLogical(x, y)
			c.Blend(x, y, p.ColorAt(lx, ly), float64(a)/255)
		}
	}
}
