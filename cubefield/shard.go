package cubefield

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/cinefx/gpu"
	"github.com/lixenwraith/cinefx/parameter"
	"github.com/lixenwraith/cinefx/physics"
	"github.com/lixenwraith/cinefx/vmath"
)

// Shard is a debris fragment spawned by a shatter
// Shards never collide
type Shard struct {
	Pos    vmath.Vec3F
	Vel    vmath.Vec3F
	Rot    vmath.Vec3F
	AngVel vmath.Vec3F

	Life    float64
	MaxLife float64
	Gravity float64

	BaseScale float64
	Scale     float64
	Opacity   float64

	Template int
	Color    colorful.Color

	material *gpu.Material
	active   bool
}

// Ratio is the remaining life fraction in [0,1]
func (s *Shard) Ratio() float64 {
	if s.MaxLife <= 0 {
		return 0
	}
	return vmath.Clamp01(s.Life / s.MaxLife)
}

// update integrates one step, returning false once expired
func (s *Shard) update(dt float64) bool {
	s.Pos = vmath.V3FAddScaled(s.Pos, s.Vel, dt)
	s.Vel.Y += s.Gravity * dt
	physics.Damp(&s.Vel, parameter.ShardDamping)

	s.Rot = vmath.V3FAddScaled(s.Rot, s.AngVel, dt)
	physics.Damp(&s.AngVel, parameter.ShardDamping)

	s.Life -= dt
	ratio := s.Ratio()
	s.Opacity = ratio * parameter.ShardAlpha
	s.Scale = s.BaseScale * (0.5 + 0.5*ratio)
	if s.material != nil {
		s.material.Opacity = s.Opacity
	}
	return s.Life > 0
}

// shardArena recycles shard slots by index
// Reused slots are fully overwritten
type shardArena struct {
	slots []Shard
	free  []int
	live  int
}

// acquire returns a zeroed, active slot index
func (a *shardArena) acquire() int {
	var i int
	if n := len(a.free); n > 0 {
		i = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, Shard{})
		i = len(a.slots) - 1
	}
	a.slots[i] = Shard{active: true}
	a.live++
	return i
}

// release disposes the slot's material and returns it to the free list
func (a *shardArena) release(i int) {
	s := &a.slots[i]
	if !s.active {
		return
	}
	if s.material != nil {
		gpu.Release(s.material)
	}
	a.slots[i] = Shard{}
	a.free = append(a.free, i)
	a.live--
}

// each visits active shards in slot order
func (a *shardArena) each(fn func(i int, s *Shard)) {
	for i := range a.slots {
		if a.slots[i].active {
			fn(i, &a.slots[i])
		}
	}
}

// clear releases every active shard
func (a *shardArena) clear() {
	for i := range a.slots {
		a.release(i)
	}
}

// tetraBase is a regular tetrahedron inscribed in the unit sphere
var tetraBase = [4]vmath.Vec3F{
	{X: 1, Y: 1, Z: 1},
	{X: -1, Y: -1, Z: 1},
	{X: -1, Y: 1, Z: -1},
	{X: 1, Y: -1, Z: -1},
}

var tetraFaces = [][3]int{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}}

// newShardTemplates builds irregular tetrahedra shared by every shard
func newShardTemplates(dev *gpu.Device, rng *rand.Rand) []*gpu.Geometry {
	out := make([]*gpu.Geometry, parameter.ShardTemplates)
	for i := range out {
		radius := vmath.RandRange(rng, parameter.ShardRadiusMin, parameter.ShardRadiusMax)
		verts := make([]vmath.Vec3F, len(tetraBase))
		for j, v := range tetraBase {
			v = vmath.V3FScale(vmath.V3FNormalize(v), radius)
			verts[j] = vmath.Vec3F{
				X: v.X * vmath.RandRange(rng, parameter.ShardJitterMin, parameter.ShardJitterMax),
				Y: v.Y * vmath.RandRange(rng, parameter.ShardJitterMin, parameter.ShardJitterMax),
				Z: v.Z * vmath.RandRange(rng, parameter.ShardJitterMin, parameter.ShardJitterMax),
			}
		}
		out[i] = dev.NewGeometry("shard-template", verts, tetraFaces)
	}
	return out
}
