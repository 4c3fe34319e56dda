package fire

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/cinefx/parameter"
	"github.com/lixenwraith/cinefx/render"
	"github.com/lixenwraith/cinefx/vmath"
)

// Wisp is a faint smoke puff rising above the flames
type Wisp struct {
	X, Y    float64
	OriginX float64
	VX, VY  float64

	Life  float64
	Decay float64

	Size    float64
	MaxSize float64

	TurbPhase float64
	TurbSpeed float64
	Rotation  float64
	RotSpeed  float64
}

func newWisp(rng *rand.Rand, baseX, baseY float64) *Wisp {
	x := baseX + vmath.RandSpread(rng, parameter.FireWidth*parameter.WispSpreadFactor)
	return &Wisp{
		X:         x,
		Y:         baseY - parameter.WispBaseRise - rng.Float64()*parameter.WispSpawnJitterY,
		OriginX:   x,
		VX:        vmath.RandSpread(rng, parameter.WispVXSpread),
		VY:        vmath.RandRange(rng, parameter.WispVYMin, parameter.WispVYMax),
		Life:      1,
		Decay:     vmath.RandRange(rng, parameter.WispDecayMin, parameter.WispDecayMax),
		Size:      vmath.RandRange(rng, parameter.WispSizeMin, parameter.WispSizeMax),
		MaxSize:   vmath.RandRange(rng, parameter.WispMaxSizeMin, parameter.WispMaxSizeMax),
		TurbPhase: vmath.RandAngle(rng),
		TurbSpeed: vmath.RandRange(rng, parameter.WispTurbSpeedMin, parameter.WispTurbSpeedMax),
		Rotation:  vmath.RandAngle(rng),
		RotSpeed:  vmath.RandSpread(rng, parameter.WispRotSpread),
	}
}

// Update advances one frame, growing toward MaxSize
func (w *Wisp) Update() bool {
	w.TurbPhase += w.TurbSpeed
	w.X = w.OriginX + math.Sin(w.TurbPhase)*parameter.WispTurbulence*(1-w.Life)
	w.OriginX += w.VX
	w.Y += w.VY
	w.Life -= w.Decay
	w.Size += (w.MaxSize - w.Size) * parameter.WispGrowth
	w.Rotation += w.RotSpeed
	return w.Life > 0 && w.Y > parameter.WispEscapeY
}

// Draw renders a gray radial puff with normal blending
// Rotation nudges the gradient focus so overlapping wisps do not look stamped
func (w *Wisp) Draw(c *render.Canvas) {
	if w.Life <= 0 || w.Size <= 0 {
		return
	}
	alpha := w.Life * parameter.WispAlpha
	gray := 40 + (1-w.Life)*30
	fx := w.X + math.Cos(w.Rotation)*w.Size*0.1
	fy := w.Y + math.Sin(w.Rotation)*w.Size*0.1

	c.SetComposite(render.SourceOver)
	c.FillCircle(w.X, w.Y, w.Size, render.Radial{
		CX: fx, CY: fy, R1: w.Size,
		Stops: []render.ColorStop{
			{Offset: 0, Color: render.RGBA(gray+20, gray+20, gray+25, alpha)},
			{Offset: 0.5, Color: render.RGBA(gray, gray, gray+5, alpha*0.6)},
			{Offset: 1, Color: render.RGBA(gray-10, gray-10, gray-5, 0)},
		},
	})
}
