package render

import (
	"math"

	"github.com/lixenwraith/cinefx/vmath"
)

// coverage converts a signed logical distance inside an edge to pixel coverage
func (c *Canvas) coverage(inside float64) float64 {
	return vmath.Clamp01(inside*c.scale + 0.5)
}

// FillRect fills an axis-aligned logical rectangle
func (c *Canvas) FillRect(x, y, w, h float64, p Paint) {
	if w <= 0 || h <= 0 {
		return
	}
	minX, minY, maxX, maxY, ok := c.backingRect(x, y, x+w, y+h)
	if !ok {
		return
	}
	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			lx, ly := c.toLogical(px, py)
			cov := c.coverage(math.Min(math.Min(lx-x, x+w-lx), math.Min(ly-y, y+h-ly)))
			if cov > 0 {
				c.Blend(px, py, p.ColorAt(lx, ly), cov)
			}
		}
	}
}

// FillCircle fills an antialiased disc
func (c *Canvas) FillCircle(cx, cy, r float64, p Paint) {
	if r <= 0 {
		return
	}
	minX, minY, maxX, maxY, ok := c.backingRect(cx-r, cy-r, cx+r, cy+r)
	if !ok {
		return
	}
	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			lx, ly := c.toLogical(px, py)
			cov := c.coverage(r - math.Hypot(lx-cx, ly-cy))
			if cov > 0 {
				c.Blend(px, py, p.ColorAt(lx, ly), cov)
			}
		}
	}
}

// segDist returns the distance from (px,py) to segment a-b
func segDist(px, py, ax, ay, bx, by float64) float64 {
	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	t := 0.0
	if lenSq > 0 {
		t = vmath.Clamp01(((px-ax)*dx + (py-ay)*dy) / lenSq)
	}
	return math.Hypot(px-(ax+t*dx), py-(ay+t*dy))
}

// StrokeLine draws a segment with round caps
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, p Paint) {
	c.StrokePolyline([]vmath.Vec2F{{X: x0, Y: y0}, {X: x1, Y: y1}}, width, p)
}

// StrokePolyline draws connected segments, each pixel blended once
func (c *Canvas) StrokePolyline(pts []vmath.Vec2F, width float64, p Paint) {
	if len(pts) < 2 || width <= 0 {
		return
	}
	half := width / 2
	lo, hi := pts[0], pts[0]
	for _, q := range pts[1:] {
		lo.X, lo.Y = math.Min(lo.X, q.X), math.Min(lo.Y, q.Y)
		hi.X, hi.Y = math.Max(hi.X, q.X), math.Max(hi.Y, q.Y)
	}
	minX, minY, maxX, maxY, ok := c.backingRect(lo.X-half, lo.Y-half, hi.X+half, hi.Y+half)
	if !ok {
		return
	}
	// Sub-pixel strokes keep at least one backing pixel of footprint with reduced alpha
	fade := 1.0
	if minW := 1 / c.scale; width < minW {
		fade = width / minW
		half = minW / 2
	}
	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			lx, ly := c.toLogical(px, py)
			d := math.Inf(1)
			for i := 1; i < len(pts); i++ {
				d = math.Min(d, segDist(lx, ly, pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y))
			}
			cov := c.coverage(half-d) * fade
			if cov > 0 {
				c.Blend(px, py, p.ColorAt(lx, ly), cov)
			}
		}
	}
}

// StrokeEllipse outlines an axis-aligned ellipse
// Distance to the curve uses the first-order |F|/|∇F| estimate
func (c *Canvas) StrokeEllipse(cx, cy, rx, ry, width float64, p Paint) {
	if rx <= 0 || ry <= 0 || width <= 0 {
		return
	}
	half := width / 2
	fade := 1.0
	if minW := 1 / c.scale; width < minW {
		fade = width / minW
		half = minW / 2
	}
	minX, minY, maxX, maxY, ok := c.backingRect(cx-rx-half, cy-ry-half, cx+rx+half, cy+ry+half)
	if !ok {
		return
	}
	rx2, ry2 := rx*rx, ry*ry
	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			lx, ly := c.toLogical(px, py)
			dx, dy := lx-cx, ly-cy
			f := dx*dx/rx2 + dy*dy/ry2 - 1
			gx, gy := 2*dx/rx2, 2*dy/ry2
			g := math.Hypot(gx, gy)
			if g == 0 {
				continue
			}
			cov := c.coverage(half-math.Abs(f)/g) * fade
			if cov > 0 {
				c.Blend(px, py, p.ColorAt(lx, ly), cov)
			}
		}
	}
}
