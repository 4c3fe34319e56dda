package stage

import "math"

// Rect is a panel area in container pixels
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether a container point lies inside r
func (r Rect) Contains(x, y float64) bool {
	return x >= float64(r.X) && y >= float64(r.Y) &&
		x < float64(r.X+r.W) && y < float64(r.Y+r.H)
}

// Grid splits a container into n near-square cells, row major
// Remainder pixels go to the last row and column
func Grid(width, height, n int) []Rect {
	if n <= 0 {
		return nil
	}
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	rows := (n + cols - 1) / cols
	cellW, cellH := width/cols, height/rows

	out := make([]Rect, n)
	for i := range out {
		col, row := i%cols, i/cols
		r := Rect{X: col * cellW, Y: row * cellH, W: cellW, H: cellH}
		if col == cols-1 || i == n-1 {
			r.W = width - r.X
		}
		if row == rows-1 {
			r.H = height - r.Y
		}
		out[i] = r
	}
	return out
}
