package render

import (
	"math"
	"sort"
)

// Paint resolves a fill color at a logical canvas position
// Implemented by Color (solid), Linear and Radial
type Paint interface {
	ColorAt(x, y float64) Color
}

// ColorStop is a gradient stop at Offset in [0,1]
type ColorStop struct {
	Offset float64
	Color  Color
}

// Stops copies and sorts stops by offset
func Stops(stops ...ColorStop) []ColorStop {
	out := make([]ColorStop, len(stops))
	copy(out, stops)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Offset < out[j].Offset })
	return out
}

// sampleStops evaluates a piecewise-linear ramp, clamping outside the first/last stop
func sampleStops(stops []ColorStop, t float64) Color {
	n := len(stops)
	if n == 0 {
		return Color{}
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	if t >= stops[n-1].Offset {
		return stops[n-1].Color
	}
	for i := 1; i < n; i++ {
		if t <= stops[i].Offset {
			a, b := stops[i-1], stops[i]
			span := b.Offset - a.Offset
			if span <= 0 {
				return b.Color
			}
			return LerpColor(a.Color, b.Color, (t-a.Offset)/span)
		}
	}
	return stops[n-1].Color
}

// Linear is a gradient along the segment (X0,Y0)-(X1,Y1)
type Linear struct {
	X0, Y0, X1, Y1 float64
	Stops          []ColorStop
}

// ColorAt projects (x, y) onto the gradient axis
func (g Linear) ColorAt(x, y float64) Color {
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return sampleStops(g.Stops, 0)
	}
	t := ((x-g.X0)*dx + (y-g.Y0)*dy) / lenSq
	return sampleStops(g.Stops, t)
}

// Radial is a concentric gradient from R0 to R1 around (CX, CY)
type Radial struct {
	CX, CY float64
	R0, R1 float64
	Stops  []ColorStop
}

// ColorAt maps distance from center into the [R0, R1] ramp
func (g Radial) ColorAt(x, y float64) Color {
	span := g.R1 - g.R0
	if span <= 0 {
		return sampleStops(g.Stops, 1)
	}
	d := math.Hypot(x-g.CX, y-g.CY)
	return sampleStops(g.Stops, (d-g.R0)/span)
}
