package fire

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/cinefx/parameter"
	"github.com/lixenwraith/cinefx/parameter/visual"
	"github.com/lixenwraith/cinefx/render"
	"github.com/lixenwraith/cinefx/vmath"
)

// Flame is a turbulent tongue of fire rising from the fuel bed
type Flame struct {
	X, Y    float64
	OriginX float64
	VX, VY  float64

	Life  float64
	Decay float64

	BaseSize float64
	Size     float64

	FlickerSpeed float64
	FlickerPhase float64
	FlickerAmp   float64

	TurbPhase float64
	TurbSpeed float64
	TurbAmp   float64

	// Temp shifts the hottest band between yellow and white
	Temp float64
}

// newFlame spawns at the base line with full life
func newFlame(rng *rand.Rand, baseX, baseY float64) *Flame {
	x := baseX + vmath.RandSpread(rng, parameter.FireWidth)
	return &Flame{
		X:            x,
		Y:            baseY,
		OriginX:      x,
		VX:           vmath.RandSpread(rng, parameter.FlameVXSpread),
		VY:           vmath.RandRange(rng, parameter.FlameVYMin, parameter.FlameVYMax),
		Life:         1,
		Decay:        vmath.RandRange(rng, parameter.FlameDecayMin, parameter.FlameDecayMax),
		BaseSize:     vmath.RandRange(rng, parameter.FlameSizeMin, parameter.FlameSizeMax),
		FlickerSpeed: vmath.RandRange(rng, parameter.FlickerSpeedMin, parameter.FlickerSpeedMax),
		FlickerPhase: vmath.RandAngle(rng),
		FlickerAmp:   vmath.RandRange(rng, parameter.FlickerAmpMin, parameter.FlickerAmpMax),
		TurbPhase:    vmath.RandAngle(rng),
		TurbSpeed:    vmath.RandRange(rng, parameter.TurbSpeedMin, parameter.TurbSpeedMax),
		TurbAmp:      vmath.RandRange(rng, parameter.TurbAmpMin, parameter.TurbAmpMax),
		Temp:         rng.Float64(),
	}
}

// Update advances one frame
func (f *Flame) Update() bool {
	f.TurbPhase += f.TurbSpeed
	f.X = f.OriginX + f.Turbulence() + f.VX*(1-f.Life)*parameter.FlameDriftGain

	f.Y += f.VY
	f.VY *= parameter.FlameVYDrag
	f.OriginX += f.VX

	f.Life -= f.Decay
	f.Size = FlameSize(f.BaseSize, f.Life)
	f.FlickerPhase += f.FlickerSpeed

	return f.Life > 0
}

// Turbulence is the lateral waver, damped as the flame ages
func (f *Flame) Turbulence() float64 {
	return math.Sin(f.TurbPhase) * f.TurbAmp * (1 - f.Life*0.5)
}

// FlameSize peaks mid-life and is zero at birth and expiry
func FlameSize(baseSize, life float64) float64 {
	return baseSize * math.Sin(life*math.Pi) * parameter.FlameSizeShape
}

// FlameAlpha is the body opacity for a given life
func FlameAlpha(life float64) float64 {
	if life <= 0 {
		return 0
	}
	return math.Pow(life, parameter.FlameAlphaExp) * parameter.FlameAlphaMax
}

// FlameColor maps progress (1 - life) through the temperature bands
func FlameColor(progress, temp float64) render.RGB {
	bands := visual.FlameBands
	start := 0.0
	for i, b := range bands {
		if progress < b.Until || i == len(bands)-1 {
			if i == 0 {
				return render.Lerp(b.From, b.To, temp)
			}
			return render.Lerp(b.From, b.To, (progress-start)/(b.Until-start))
		}
		start = b.Until
	}
	return bands[len(bands)-1].To
}

// Radius is the drawn body radius including flicker
func (f *Flame) Radius() float64 {
	return f.Size * (1 + math.Sin(f.FlickerPhase)*f.FlickerAmp*f.Life)
}

// Draw renders outer glow, body and, for young flames, a hot core
func (f *Flame) Draw(c *render.Canvas) {
	if f.Size <= 0 {
		return
	}
	r := f.Radius()
	if r <= 0 {
		return
	}
	alpha := FlameAlpha(f.Life)
	progress := 1 - f.Life
	col := FlameColor(progress, f.Temp)
	cr, cg, cb := float64(col.R), float64(col.G), float64(col.B)

	c.SetComposite(render.Lighter)

	glowR := r * parameter.FlameGlowScale
	c.FillCircle(f.X, f.Y, glowR, render.Radial{
		CX: f.X, CY: f.Y, R1: glowR,
		Stops: []render.ColorStop{
			{Offset: 0, Color: render.RGBA(cr, cg*0.5, 0, alpha*0.3)},
			{Offset: 0.5, Color: render.RGBA(cr*0.7, cg*0.3, 0, alpha*0.15)},
			{Offset: 1, Color: render.RGBA(0, 0, 0, 0)},
		},
	})

	c.FillCircle(f.X, f.Y, r, render.Radial{
		CX: f.X, CY: f.Y, R1: r,
		Stops: []render.ColorStop{
			{Offset: 0, Color: render.RGBA(cr, cg, cb, alpha)},
			{Offset: 0.4, Color: render.RGBA(cr, cg*0.7, cb*0.5, alpha*0.8)},
			{Offset: 0.7, Color: render.RGBA(cr*0.8, cg*0.4, 0, alpha*0.4)},
			{Offset: 1, Color: visual.FlameEdge.Alpha(0)},
		},
	})

	if progress < 0.3 && f.Life > 0.5 {
		coreR := r * 0.4
		c.FillCircle(f.X, f.Y, coreR, render.Radial{
			CX: f.X, CY: f.Y, R1: coreR,
			Stops: []render.ColorStop{
				{Offset: 0, Color: visual.FlameCoreHot.Alpha(alpha * 0.8)},
				{Offset: 0.5, Color: visual.FlameCoreWarm.Alpha(alpha * 0.4)},
				{Offset: 1, Color: visual.FlameCoreEdge.Alpha(0)},
			},
		})
	}
}
