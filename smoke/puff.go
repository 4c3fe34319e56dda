package smoke

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/cinefx/parameter"
	"github.com/lixenwraith/cinefx/render"
	"github.com/lixenwraith/cinefx/vmath"
)

// Puff is a buoyant smoke particle drawn as overlapping soft layers
type Puff struct {
	X, Y   float64
	BaseX  float64
	VX, VY float64

	Life  float64
	Decay float64

	Size    float64
	MaxSize float64

	Rotation      float64
	RotationSpeed float64

	TurbPhase float64
	TurbSpeed float64
	TurbAmp   float64

	Opacity float64
	Gray    float64
}

func newPuff(rng *rand.Rand, sourceX, sourceY float64) *Puff {
	x := sourceX + vmath.RandSpread(rng, parameter.SmokeSpawnXSpread)
	p := &Puff{
		X:             x,
		Y:             sourceY,
		BaseX:         x,
		VX:            vmath.RandSpread(rng, parameter.SmokeVXSpread),
		VY:            vmath.RandRange(rng, parameter.SmokeVYMin, parameter.SmokeVYMax),
		Life:          1,
		Decay:         vmath.RandRange(rng, parameter.SmokeDecayMin, parameter.SmokeDecayMax),
		MaxSize:       vmath.RandRange(rng, parameter.SmokeMaxSizeMin, parameter.SmokeMaxSizeMax),
		Rotation:      vmath.RandAngle(rng),
		RotationSpeed: vmath.RandSpread(rng, parameter.SmokeRotSpread),
		TurbPhase:     vmath.RandAngle(rng),
		TurbSpeed:     vmath.RandRange(rng, parameter.SmokeTurbSpeedMin, parameter.SmokeTurbSpeedMax),
		TurbAmp:       vmath.RandRange(rng, parameter.SmokeTurbAmpMin, parameter.SmokeTurbAmpMax),
		Opacity:       vmath.RandRange(rng, parameter.SmokeOpacityMin, parameter.SmokeOpacityMax),
		Gray:          vmath.RandRange(rng, parameter.SmokeGrayMin, parameter.SmokeGrayMax),
	}
	p.Size = PuffSize(p.MaxSize, p.Life)
	return p
}

// PuffSize grows linearly with age
func PuffSize(maxSize, life float64) float64 {
	return parameter.SmokeBaseSize + (1-life)*maxSize
}

// PuffAlpha fades with life, scaled by the puff's opacity
func PuffAlpha(opacity, life float64) float64 {
	if life <= 0 {
		return 0
	}
	return math.Pow(life, parameter.SmokeAlphaExp) * opacity
}

// Update advances one frame
func (p *Puff) Update() bool {
	p.TurbPhase += p.TurbSpeed
	p.X = p.BaseX + math.Sin(p.TurbPhase)*p.TurbAmp*(1-p.Life)
	p.BaseX += p.VX
	p.Y += p.VY
	p.VY *= parameter.SmokeVYDrag
	p.Life -= p.Decay
	p.Rotation += p.RotationSpeed
	p.Size = PuffSize(p.MaxSize, p.Life)
	return p.Life > 0 && p.Y > parameter.SmokeEscapeY
}

// Draw composites four offset radial layers rotated by the accumulated angle
func (p *Puff) Draw(c *render.Canvas) {
	alpha := PuffAlpha(p.Opacity, p.Life)
	if alpha <= 0 {
		return
	}
	gray := p.Gray + (1-p.Life)*parameter.SmokeGrayAging

	c.SetComposite(render.SourceOver)
	c.SetGlobalAlpha(alpha)
	defer c.SetGlobalAlpha(1)

	stops := []render.ColorStop{
		{Offset: 0, Color: render.RGBA(gray+30, gray+30, gray+35, 0.8)},
		{Offset: 0.3, Color: render.RGBA(gray+10, gray+10, gray+15, 0.5)},
		{Offset: 0.6, Color: render.RGBA(gray, gray, gray+5, 0.3)},
		{Offset: 1, Color: render.RGBA(gray-20, gray-20, gray-15, 0)},
	}
	for i := 0; i < parameter.SmokeLayers; i++ {
		off := vmath.V2FRotate(vmath.Vec2F{X: p.Size * parameter.SmokeLayerOffset}, float64(i)*math.Pi/2+p.Rotation)
		cx, cy := p.X+off.X, p.Y+off.Y
		r := p.Size * (parameter.SmokeLayerBase + float64(i)*parameter.SmokeLayerGrowth)
		c.FillCircle(cx, cy, r, render.Radial{CX: cx, CY: cy, R1: r, Stops: stops})
	}
}
