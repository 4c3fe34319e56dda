package water

import (
	"math/rand"

	"github.com/lixenwraith/cinefx/parameter"
	"github.com/lixenwraith/cinefx/parameter/visual"
	"github.com/lixenwraith/cinefx/render"
	"github.com/lixenwraith/cinefx/vmath"
)

// Splash is a ballistic droplet thrown up by an impact
type Splash struct {
	X, Y   float64
	VX, VY float64

	Size  float64
	Life  float64
	Decay float64

	poolY float64
}

func newSplash(rng *rand.Rand, x, poolY float64) *Splash {
	return &Splash{
		X:     x,
		Y:     poolY,
		VX:    vmath.RandSpread(rng, parameter.SplashVXSpread),
		VY:    vmath.RandRange(rng, parameter.SplashVYMin, parameter.SplashVYMax),
		Size:  vmath.RandRange(rng, parameter.SplashSizeMin, parameter.SplashSizeMax),
		Life:  1,
		Decay: vmath.RandRange(rng, parameter.SplashDecayMin, parameter.SplashDecayMax),
		poolY: poolY,
	}
}

// Update applies gravity and bounces off the surface when crossing it downward
func (s *Splash) Update() bool {
	s.X += s.VX
	s.Y += s.VY
	s.VY += parameter.SplashGravity
	s.VX *= parameter.SplashDrag
	s.Life -= s.Decay

	if s.Y > s.poolY && s.VY > 0 {
		s.VY *= parameter.SplashBounce
		s.Y = s.poolY
	}
	return s.Life > 0
}

// Draw renders the droplet and a specular dot
func (s *Splash) Draw(c *render.Canvas) {
	if s.Life <= 0 {
		return
	}
	alpha := s.Life * 0.8
	c.SetComposite(render.SourceOver)
	c.FillCircle(s.X, s.Y, s.Size*s.Life, visual.SplashColor.Alpha(alpha))
	c.FillCircle(s.X-s.Size*0.2, s.Y-s.Size*0.2, s.Size*0.3, visual.Highlight.Alpha(alpha*0.5))
}

// Ripple is an expanding flattened ring on the pool
type Ripple struct {
	X, Y      float64
	Radius    float64
	MaxRadius float64
	Speed     float64
}

func newRipple(rng *rand.Rand, x, y float64) *Ripple {
	return &Ripple{
		X:         x,
		Y:         y,
		Radius:    parameter.RippleRadius0,
		MaxRadius: vmath.RandRange(rng, parameter.RippleMaxMin, parameter.RippleMaxMax),
		Speed:     vmath.RandRange(rng, parameter.RippleSpeedMin, parameter.RippleSpeedMax),
	}
}

// Life is the remaining fraction of growth
func (r *Ripple) Life() float64 {
	return 1 - r.Radius/r.MaxRadius
}

// Update grows the ring until it reaches MaxRadius
func (r *Ripple) Update() bool {
	r.Radius += r.Speed
	return r.Radius < r.MaxRadius
}

// Draw strokes a dim outer and a bright inner ellipse
func (r *Ripple) Draw(c *render.Canvas) {
	alpha := r.Life()
	if alpha <= 0 {
		return
	}
	c.SetComposite(render.SourceOver)
	c.StrokeEllipse(r.X, r.Y, r.Radius, r.Radius*parameter.RippleFlatOuter, 2, visual.RippleOuter.Alpha(alpha*0.5))
	c.StrokeEllipse(r.X, r.Y, r.Radius*parameter.RippleFlatInnerX, r.Radius*parameter.RippleFlatInnerY, 1, visual.RippleInner.Alpha(alpha))
}
