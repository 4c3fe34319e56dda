// Package fire simulates a campfire from three cooperating particle populations:
// flames (additive, depth sorted), embers (additive sparks) and smoke wisps (normal blending)
package fire

import (
	"cmp"
	"math/rand"

	"github.com/lixenwraith/cinefx/parameter"
	"github.com/lixenwraith/cinefx/parameter/visual"
	"github.com/lixenwraith/cinefx/particle"
	"github.com/lixenwraith/cinefx/render"
	"github.com/lixenwraith/cinefx/surface"
)

var (
	flamePolicy = particle.SpawnPolicy{PerFrame: parameter.FlamePerFrame, Probability: 1}
	emberPolicy = particle.SpawnPolicy{PerFrame: 1, Probability: parameter.EmberProbability}
	wispPolicy  = particle.SpawnPolicy{PerFrame: 1, Probability: parameter.WispProbability}
)

// Stats reports live population sizes
type Stats struct {
	Flames int
	Embers int
	Wisps  int
}

// Simulation owns all fire populations
// Advanced only from the owning frame loop
type Simulation struct {
	*surface.View

	rng  *rand.Rand
	wind *Wind

	baseX float64
	baseY float64

	flames *particle.Population[*Flame]
	embers *particle.Population[*Ember]
	wisps  *particle.Population[*Wisp]

	frames int
}

// New creates an empty fire in the standard 400x300 scene
func New(rng *rand.Rand) *Simulation {
	return &Simulation{
		View:   surface.NewView(surface.Letterbox, parameter.SceneWidth, parameter.SceneHeight),
		rng:    rng,
		wind:   NewWind(rng.Int63()),
		baseX:  parameter.SceneWidth / 2,
		baseY:  parameter.SceneHeight - parameter.FireBaseOffset,
		flames: particle.NewPopulation[*Flame](parameter.FlameCap),
		embers: particle.NewPopulation[*Ember](parameter.EmberCap),
		wisps:  particle.NewPopulation[*Wisp](parameter.WispCap),
	}
}

// Name identifies the component
func (s *Simulation) Name() string {
	return "fire"
}

// Frame advances and draws one frame into the view's canvas
// Constants are per frame so dt only matters to the caller's pacing
func (s *Simulation) Frame(dt float64) {
	if !s.Ready() {
		return
	}
	s.Step(s.Canvas())
}

// Step runs one frame of simulation and compositing on c
func (s *Simulation) Step(c *render.Canvas) {
	s.frames++
	s.drawBackdrop(c)

	particle.Spawn(s.flames, flamePolicy, s.rng, func() *Flame { return newFlame(s.rng, s.baseX, s.baseY) })
	particle.Spawn(s.embers, emberPolicy, s.rng, func() *Ember { return newEmber(s.rng, s.wind, s.baseX, s.baseY) })
	particle.Spawn(s.wisps, wispPolicy, s.rng, func() *Wisp { return newWisp(s.rng, s.baseX, s.baseY) })

	// Background layer
	s.wisps.Step()
	s.wisps.Draw(c)

	// Higher flames (smaller y) drawn last
	s.flames.Step()
	s.flames.Sort(func(a, b *Flame) int { return cmp.Compare(b.Y, a.Y) })
	s.flames.Draw(c)

	// Foreground sparks
	s.wind.Advance()
	s.embers.Step()
	s.embers.Draw(c)

	c.ResetState()
}

// drawBackdrop fades the previous frame and lays down the glow and ground reflection
func (s *Simulation) drawBackdrop(c *render.Canvas) {
	c.ResetState()
	c.Fade(visual.FireBackground.Alpha(parameter.FireFadeAlpha))

	c.SetComposite(render.Lighter)
	gx, gy := s.baseX, s.baseY+parameter.FireGlowDrop
	c.FillCircle(gx, gy, parameter.FireGlowRadius, render.Radial{
		CX: gx, CY: gy, R1: parameter.FireGlowRadius,
		Stops: []render.ColorStop{
			{Offset: 0, Color: visual.FireGlowCore.Alpha(0.4)},
			{Offset: 0.3, Color: visual.FireGlowMid.Alpha(0.2)},
			{Offset: 0.6, Color: visual.FireGlowOuter.Alpha(0.1)},
			{Offset: 1, Color: render.RGBA(0, 0, 0, 0)},
		},
	})

	groundH := parameter.SceneHeight - s.baseY
	c.FillRect(s.baseX-parameter.FireGroundHalfW, s.baseY, 2*parameter.FireGroundHalfW, groundH, render.Linear{
		X0: 0, Y0: s.baseY, X1: 0, Y1: parameter.SceneHeight,
		Stops: []render.ColorStop{
			{Offset: 0, Color: visual.FireGroundTop.Alpha(parameter.FireGroundAlphaA)},
			{Offset: 1, Color: visual.FireGroundLow.Alpha(parameter.FireGroundAlphaB)},
		},
	})
}

// Stats returns current population sizes
func (s *Simulation) Stats() Stats {
	return Stats{
		Flames: s.flames.Len(),
		Embers: s.embers.Len(),
		Wisps:  s.wisps.Len(),
	}
}

// Frames returns how many frames have been simulated
func (s *Simulation) Frames() int {
	return s.frames
}

// Close drops every particle, the fire holds no device resources
func (s *Simulation) Close() error {
	s.flames.Clear()
	s.embers.Clear()
	s.wisps.Clear()
	return nil
}
