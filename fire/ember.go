package fire

import (
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/lixenwraith/cinefx/parameter"
	"github.com/lixenwraith/cinefx/parameter/visual"
	"github.com/lixenwraith/cinefx/render"
	"github.com/lixenwraith/cinefx/vmath"
)

// Wind is a slowly evolving Perlin field pushing embers sideways
type Wind struct {
	noise *perlin.Perlin
	t     float64
}

// NewWind seeds the field
func NewWind(seed int64) *Wind {
	return &Wind{
		noise: perlin.NewPerlin(parameter.EmberWindAlpha, parameter.EmberWindBeta, parameter.EmberWindOctave, seed),
	}
}

// Advance moves the field forward one frame
func (w *Wind) Advance() {
	w.t += parameter.EmberWindSpeed
}

// At returns lateral acceleration at a logical position
func (w *Wind) At(x, y float64) float64 {
	n := w.noise.Noise2D(x*parameter.EmberWindScale+w.t, y*parameter.EmberWindScale)
	return n * parameter.EmberWindGain
}

// Ember is a bright spark thrown upward out of the fire
type Ember struct {
	X, Y   float64
	VX, VY float64

	Life       float64
	Decay      float64
	Size       float64
	Brightness float64

	TwinkleSpeed float64
	TwinklePhase float64

	wind *Wind
}

func newEmber(rng *rand.Rand, wind *Wind, baseX, baseY float64) *Ember {
	return &Ember{
		X:            baseX + vmath.RandSpread(rng, parameter.FireWidth*parameter.EmberSpreadFactor),
		Y:            baseY - rng.Float64()*parameter.EmberSpawnJitterY,
		VX:           vmath.RandSpread(rng, parameter.EmberVXSpread),
		VY:           vmath.RandRange(rng, parameter.EmberVYMin, parameter.EmberVYMax),
		Life:         1,
		Decay:        vmath.RandRange(rng, parameter.EmberDecayMin, parameter.EmberDecayMax),
		Size:         vmath.RandRange(rng, parameter.EmberSizeMin, parameter.EmberSizeMax),
		Brightness:   vmath.RandRange(rng, parameter.EmberBrightMin, 1),
		TwinkleSpeed: vmath.RandRange(rng, parameter.EmberTwinkleMin, parameter.EmberTwinkleMax),
		TwinklePhase: vmath.RandAngle(rng),
		wind:         wind,
	}
}

// Update advances one frame, expiring above the canvas top
func (e *Ember) Update() bool {
	e.X += e.VX
	e.Y += e.VY
	e.VY += parameter.EmberGravity
	e.VX *= parameter.EmberDrag
	e.Life -= e.Decay
	e.TwinklePhase += e.TwinkleSpeed
	if e.wind != nil {
		e.VX += e.wind.At(e.X, e.Y)
	}
	return e.Life > 0 && e.Y > parameter.EmberEscapeY
}

// Alpha combines life, brightness and twinkle
func (e *Ember) Alpha() float64 {
	twinkle := 0.5 + math.Sin(e.TwinklePhase)*0.5
	return math.Max(0, e.Life) * e.Brightness * twinkle
}

// Draw renders a soft glow with a hot core
func (e *Ember) Draw(c *render.Canvas) {
	alpha := e.Alpha()
	if alpha <= 0 {
		return
	}
	c.SetComposite(render.Lighter)

	glowR := e.Size * parameter.EmberGlowScale
	c.FillCircle(e.X, e.Y, glowR, render.Radial{
		CX: e.X, CY: e.Y, R1: glowR,
		Stops: []render.ColorStop{
			{Offset: 0, Color: visual.EmberGlowInner.Alpha(alpha * 0.6)},
			{Offset: 0.5, Color: visual.EmberGlowMid.Alpha(alpha * 0.2)},
			{Offset: 1, Color: visual.EmberGlowOuter.Alpha(0)},
		},
	})
	c.FillCircle(e.X, e.Y, e.Size, visual.EmberCore.Alpha(alpha))
}
