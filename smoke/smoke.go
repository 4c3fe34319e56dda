// Package smoke simulates a rising smoke column of turbulent, depth-sorted puffs
// drawn over a slowly fading canvas
package smoke

import (
	"cmp"
	"math/rand"

	"github.com/lixenwraith/cinefx/parameter"
	"github.com/lixenwraith/cinefx/parameter/visual"
	"github.com/lixenwraith/cinefx/particle"
	"github.com/lixenwraith/cinefx/render"
	"github.com/lixenwraith/cinefx/surface"
	"github.com/lixenwraith/cinefx/vmath"
)

var puffPolicy = particle.SpawnPolicy{PerFrame: 1, Probability: parameter.SmokeProbability}

// Simulation owns the puff population
type Simulation struct {
	*surface.View

	rng     *rand.Rand
	sourceX float64
	sourceY float64
	puffs   *particle.Population[*Puff]
	primed  bool
}

// New creates a smoke column pre-seeded at staggered heights
func New(rng *rand.Rand) *Simulation {
	s := &Simulation{
		View:    surface.NewView(surface.Letterbox, parameter.SceneWidth, parameter.SceneHeight),
		rng:     rng,
		sourceX: parameter.SceneWidth / 2,
		sourceY: parameter.SceneHeight + parameter.SmokeSourceDrop,
		puffs:   particle.NewPopulation[*Puff](parameter.SmokeCap),
	}
	s.seed()
	return s
}

// seed fills the column so the first frame is not empty
func (s *Simulation) seed() {
	for i := 0; i < parameter.SmokeSeedCount; i++ {
		p := newPuff(s.rng, s.sourceX, s.sourceY)
		p.Y = parameter.SceneHeight - float64(i)/parameter.SmokeSeedCount*parameter.SceneHeight*parameter.SmokeSeedSpan
		p.Life = vmath.RandRange(s.rng, parameter.SmokeSeedLifeMin, 1)
		p.Size = PuffSize(p.MaxSize, p.Life)
		s.puffs.Add(p)
	}
}

// Name identifies the component
func (s *Simulation) Name() string {
	return "smoke"
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
	if !s.primed {
		c.Clear(visual.SmokeBackground)
		s.primed = true
	}
	c.ResetState()
	c.Fade(visual.SmokeBackground.Alpha(parameter.SmokeFadeAlpha))

	particle.Spawn(s.puffs, puffPolicy, s.rng, func() *Puff { return newPuff(s.rng, s.sourceX, s.sourceY) })

	// Lower puffs (larger y) first
	s.puffs.Sort(func(a, b *Puff) int { return cmp.Compare(b.Y, a.Y) })
	s.puffs.Step()
	s.puffs.Draw(c)

	c.ResetState()
	r := parameter.SmokeSourceRadius
	c.FillRect(s.sourceX-r, parameter.SceneHeight-50, 2*r, r, render.Radial{
		CX: s.sourceX, CY: s.sourceY, R1: r,
		Stops: []render.ColorStop{
			{Offset: 0, Color: visual.SmokeGlowInner.Alpha(0.3)},
			{Offset: 1, Color: visual.SmokeGlowOuter.Alpha(0)},
		},
	})
}

// Len returns the live puff count
func (s *Simulation) Len() int {
	return s.puffs.Len()
}

// Close drops every puff
func (s *Simulation) Close() error {
	s.puffs.Clear()
	return nil
}
