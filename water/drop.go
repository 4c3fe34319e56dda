package water

import (
	"math/rand"

	"github.com/lixenwraith/cinefx/parameter"
	"github.com/lixenwraith/cinefx/parameter/visual"
	"github.com/lixenwraith/cinefx/render"
	"github.com/lixenwraith/cinefx/vmath"
)

// Drop is a falling streak recycled in place on pool contact
type Drop struct {
	X, Y   float64
	VX, VY float64

	Life    float64
	Size    float64
	Length  float64
	Opacity float64

	rng      *rand.Rand
	sourceX  float64
	contactY float64
	onHit    func(x float64)
}

func newDrop(rng *rand.Rand, sourceX, poolY float64, onHit func(x float64)) *Drop {
	d := &Drop{
		rng:      rng,
		sourceX:  sourceX,
		contactY: poolY - parameter.DropContactPad,
		onHit:    onHit,
	}
	d.reset()
	return d
}

// reset returns the drop to a fresh spawn above the scene
func (d *Drop) reset() {
	d.X = d.sourceX + vmath.RandSpread(d.rng, parameter.DropXSpread)
	d.Y = parameter.DropSpawnY
	d.VY = vmath.RandRange(d.rng, parameter.DropVYMin, parameter.DropVYMax)
	d.VX = vmath.RandSpread(d.rng, parameter.DropVXSpread)
	d.Life = 1
	d.Size = vmath.RandRange(d.rng, parameter.DropSizeMin, parameter.DropSizeMax)
	d.Length = vmath.RandRange(d.rng, parameter.DropLengthMin, parameter.DropLengthMax)
	d.Opacity = vmath.RandRange(d.rng, parameter.DropOpacityMin, parameter.DropOpacityMax)
}

// Update falls under gravity, on contact reports the impact and resets
// Drops are never removed
func (d *Drop) Update() bool {
	d.Y += d.VY
	d.X += d.VX
	d.VY += parameter.DropGravity
	d.Life -= parameter.DropDecay

	if d.Y >= d.contactY {
		if d.onHit != nil {
			d.onHit(d.X)
		}
		d.reset()
	} else if d.Life <= 0 {
		d.reset()
	}
	return true
}

// Width thins the streak as the drop ages
func (d *Drop) Width() float64 {
	return d.Size * (0.5 + 0.5*vmath.Clamp01(d.Life))
}

// Draw renders a gradient streak with a bright head
func (d *Drop) Draw(c *render.Canvas) {
	c.SetComposite(render.SourceOver)
	top := d.Y - d.Length
	c.StrokeLine(d.X, top, d.X, d.Y, d.Width(), render.Linear{
		X0: d.X, Y0: top, X1: d.X, Y1: d.Y,
		Stops: []render.ColorStop{
			{Offset: 0, Color: visual.DropTail.Alpha(0)},
			{Offset: 0.3, Color: visual.DropTail.Alpha(d.Opacity * 0.5)},
			{Offset: 1, Color: visual.DropHead.Alpha(d.Opacity)},
		},
	})
	c.FillCircle(d.X, d.Y, d.Size/2, visual.Highlight.Alpha(d.Opacity))
}
