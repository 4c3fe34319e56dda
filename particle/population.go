package particle

import (
	"math/rand"
	"slices"

	"github.com/lixenwraith/cinefx/render"
)

// Particle is a short-lived visual entity advanced once per frame
type Particle interface {
	// Update mutates the particle, returning false when it should be removed
	Update() bool
	// Draw renders without mutating state
	Draw(c *render.Canvas)
}

// Population is an owned, hard-capped particle collection
// Touched only from the owning component's frame loop
type Population[T Particle] struct {
	items []T
	limit int
}

// NewPopulation creates an empty population with a hard cap
func NewPopulation[T Particle](capacity int) *Population[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Population[T]{
		items: make([]T, 0, capacity),
		limit: capacity,
	}
}

// Len returns the live count
func (p *Population[T]) Len() int {
	return len(p.items)
}

// Cap returns the hard cap
func (p *Population[T]) Cap() int {
	return p.limit
}

// Room returns how many more particles fit
func (p *Population[T]) Room() int {
	return p.limit - len(p.items)
}

// Add appends v, refusing when at cap
func (p *Population[T]) Add(v T) bool {
	if len(p.items) >= p.limit {
		return false
	}
	p.items = append(p.items, v)
	return true
}

// Step updates every particle back to front, removing those whose Update returns false
// Survivor order is preserved; returns the number removed
func (p *Population[T]) Step() int {
	removed := 0
	for i := len(p.items) - 1; i >= 0; i-- {
		if !p.items[i].Update() {
			p.items = slices.Delete(p.items, i, i+1)
			removed++
		}
	}
	return removed
}

// Sort orders particles in place, stable
func (p *Population[T]) Sort(less func(a, b T) int) {
	slices.SortStableFunc(p.items, less)
}

// Each visits particles in stored order
func (p *Population[T]) Each(fn func(T)) {
	for _, v := range p.items {
		fn(v)
	}
}

// At returns the i-th particle in stored order
func (p *Population[T]) At(i int) T {
	return p.items[i]
}

// Draw renders particles in stored order
func (p *Population[T]) Draw(c *render.Canvas) {
	for _, v := range p.items {
		v.Draw(c)
	}
}

// Clear drops every particle, keeping capacity
func (p *Population[T]) Clear() {
	clear(p.items)
	p.items = p.items[:0]
}

// SpawnPolicy gates per-frame spawning
type SpawnPolicy struct {
	PerFrame    int     // Spawn attempts per frame
	Probability float64 // Each attempt succeeds when a uniform draw falls below this
}

// Spawn runs the policy's attempts for one frame, never exceeding the cap
// Returns the number added
func Spawn[T Particle](p *Population[T], policy SpawnPolicy, rng *rand.Rand, spawn func() T) int {
	added := 0
	for i := 0; i < policy.PerFrame && p.Room() > 0; i++ {
		if policy.Probability < 1 && rng.Float64() >= policy.Probability {
			continue
		}
		if p.Add(spawn()) {
			added++
		}
	}
	return added
}
