// Package water simulates rain falling into a wavy pool: recycled drops, splash debris
// and expanding ripples over an analytic surface with drifting caustics
package water

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/cinefx/parameter"
	"github.com/lixenwraith/cinefx/parameter/visual"
	"github.com/lixenwraith/cinefx/particle"
	"github.com/lixenwraith/cinefx/render"
	"github.com/lixenwraith/cinefx/surface"
	"github.com/lixenwraith/cinefx/vmath"
)

var dropPolicy = particle.SpawnPolicy{PerFrame: 1, Probability: parameter.DropProbability}

// Stats reports live population sizes and cumulative impacts
type Stats struct {
	Drops    int
	Splashes int
	Ripples  int
	Impacts  int
}

// Simulation owns the drop, splash and ripple populations
type Simulation struct {
	*surface.View

	rng   *rand.Rand
	poolY float64
	time  float64

	drops    *particle.Population[*Drop]
	splashes *particle.Population[*Splash]
	ripples  *particle.Population[*Ripple]

	impacts int

	// OnImpact fires once per drop contact with the impact x
	OnImpact func(x float64)

	wave []vmath.Vec2F
}

// New creates a pool with the initial drops already in flight
func New(rng *rand.Rand) *Simulation {
	s := &Simulation{
		View:     surface.NewView(surface.Letterbox, parameter.SceneWidth, parameter.SceneHeight),
		rng:      rng,
		poolY:    parameter.SceneHeight - parameter.PoolDepth,
		drops:    particle.NewPopulation[*Drop](parameter.DropMax),
		splashes: particle.NewPopulation[*Splash](parameter.SplashCap),
		ripples:  particle.NewPopulation[*Ripple](parameter.RippleCap),
	}
	for i := 0; i < parameter.DropInitial; i++ {
		d := s.newDrop()
		d.Y = rng.Float64() * parameter.SceneHeight * parameter.DropSeedSpan
		s.drops.Add(d)
	}
	return s
}

func (s *Simulation) newDrop() *Drop {
	return newDrop(s.rng, parameter.SceneWidth/2, s.poolY, s.impact)
}

// impact spawns the splash burst and a single ripple at the contact point
func (s *Simulation) impact(x float64) {
	n := parameter.SplashMin + s.rng.Intn(parameter.SplashExtra)
	for i := 0; i < n; i++ {
		s.splashes.Add(newSplash(s.rng, x, s.poolY))
	}
	s.ripples.Add(newRipple(s.rng, x, s.poolY+parameter.RippleDrop))
	s.impacts++
	if s.OnImpact != nil {
		s.OnImpact(x)
	}
}

// SurfaceY is the pool line height at x and time t
func SurfaceY(poolY, x, t float64) float64 {
	return poolY +
		math.Sin(x*parameter.WaveFreqA+t*parameter.WaveSpeedA)*parameter.WaveAmpA +
		math.Sin(x*parameter.WaveFreqB+t*parameter.WaveSpeedB)*parameter.WaveAmpB
}

// Name identifies the component
func (s *Simulation) Name() string {
	return "water"
}

// Frame advances and draws one frame
func (s *Simulation) Frame(dt float64) {
	if !s.Ready() {
		return
	}
	s.Step(s.Canvas())
}

// Step runs one frame on c
func (s *Simulation) Step(c *render.Canvas) {
	s.time += parameter.WaterTimeStep

	c.ResetState()
	c.Fade(visual.WaterBackground.Alpha(parameter.WaterFadeAlpha))
	s.drawPool(c)

	particle.Spawn(s.drops, dropPolicy, s.rng, s.newDrop)

	// Ripples sit behind drops, splashes in front
	s.ripples.Step()
	s.ripples.Draw(c)

	s.drops.Step()
	s.drops.Draw(c)

	s.splashes.Step()
	s.splashes.Draw(c)

	c.ResetState()
}

// drawPool fills the wavy pool, strokes its highlight and adds caustics
func (s *Simulation) drawPool(c *render.Canvas) {
	w, h := parameter.SceneWidth, parameter.SceneHeight

	s.wave = s.wave[:0]
	s.wave = append(s.wave, vmath.Vec2F{X: 0, Y: s.poolY})
	for x := 0.0; x <= w; x += parameter.WaveFillStep {
		s.wave = append(s.wave, vmath.Vec2F{X: x, Y: SurfaceY(s.poolY, x, s.time)})
	}
	s.wave = append(s.wave, vmath.Vec2F{X: w, Y: h}, vmath.Vec2F{X: 0, Y: h})
	c.FillPolygon(s.wave, render.Linear{
		X0: 0, Y0: s.poolY, X1: 0, Y1: h,
		Stops: []render.ColorStop{
			{Offset: 0, Color: visual.PoolTop.Alpha(0.9)},
			{Offset: 0.3, Color: visual.PoolMid.Alpha(0.95)},
			{Offset: 1, Color: visual.PoolBottom.Alpha(1)},
		},
	})

	s.wave = s.wave[:0]
	for x := 0.0; x <= w; x += parameter.WaveSampleStep {
		s.wave = append(s.wave, vmath.Vec2F{X: x, Y: SurfaceY(s.poolY, x, s.time)})
	}
	c.StrokePolyline(s.wave, 2, visual.PoolHighlight.Alpha(0.4))

	c.SetComposite(render.Lighter)
	r := parameter.CausticRadius
	for i := 0; i < parameter.CausticCount; i++ {
		fi := float64(i)
		cx := w/(parameter.CausticCount+1)*(fi+1) + math.Sin(s.time+fi)*parameter.CausticSwayX
		cy := s.poolY + parameter.CausticDepth + math.Cos(s.time*parameter.CausticSwayRate+fi)*parameter.CausticSwayY
		c.FillRect(cx-r, cy-r/2, 2*r, r, render.Radial{
			CX: cx, CY: cy, R1: r,
			Stops: []render.ColorStop{
				{Offset: 0, Color: visual.CausticCenter.Alpha(0.15)},
				{Offset: 1, Color: visual.CausticEdge.Alpha(0)},
			},
		})
	}
	c.SetComposite(render.SourceOver)
}

// PoolY returns the resting pool line
func (s *Simulation) PoolY() float64 {
	return s.poolY
}

// Time returns the wave clock
func (s *Simulation) Time() float64 {
	return s.time
}

// Stats returns population sizes
func (s *Simulation) Stats() Stats {
	return Stats{
		Drops:    s.drops.Len(),
		Splashes: s.splashes.Len(),
		Ripples:  s.ripples.Len(),
		Impacts:  s.impacts,
	}
}

// Close drops every particle
func (s *Simulation) Close() error {
	s.drops.Clear()
	s.splashes.Clear()
	s.ripples.Clear()
	return nil
}
