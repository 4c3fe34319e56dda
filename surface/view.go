package surface

import "github.com/lixenwraith/cinefx/render"

// View pairs a canvas with the adapter that sizes it
// Embedded by every simulation component
type View struct {
	adapter *Adapter
	canvas  *render.Canvas
}

// NewView creates an unsized view, drawing is skipped until the first successful Resize
func NewView(fit Fit, logicalW, logicalH float64) *View {
	return &View{
		adapter: New(fit, logicalW, logicalH),
		canvas:  render.NewCanvas(0, 0),
	}
}

// Resize forwards container changes to the adapter
func (v *View) Resize(containerW, containerH int, dpr float64) bool {
	return v.adapter.Resize(v.canvas, containerW, containerH, dpr)
}

// Ready reports whether the backing store has a drawable size
func (v *View) Ready() bool {
	return v.adapter.Ready()
}

// Canvas returns the drawing surface
func (v *View) Canvas() *render.Canvas {
	return v.canvas
}

// Adapter exposes coordinate mapping
func (v *View) Adapter() *Adapter {
	return v.adapter
}
