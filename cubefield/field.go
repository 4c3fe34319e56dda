// Package cubefield runs floating glass cubes with damped physics, box reflection,
// pairwise shattering collisions and pointer drag, rendered by a per-pixel glass shader
package cubefield

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"github.com/charmbracelet/harmonica"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/cinefx/gpu"
	"github.com/lixenwraith/cinefx/parameter"
	"github.com/lixenwraith/cinefx/parameter/visual"
	"github.com/lixenwraith/cinefx/physics"
	"github.com/lixenwraith/cinefx/surface"
	"github.com/lixenwraith/cinefx/vmath"
)

var (
	fieldBounds = physics.SymmetricBox(vmath.Vec3F{
		X: parameter.CubeBoundX,
		Y: parameter.CubeBoundY,
		Z: parameter.CubeBoundZ,
	})

	// ShatterOnImpact requires contact and speed
	ShatterOnImpact = physics.ShatterProfile{
		ContactDistance: parameter.CubeContactDistance,
		SpeedThreshold:  parameter.CubeShatterSpeed,
	}
)

// Stats reports live entity counts
type Stats struct {
	Cubes     int
	Shards    int
	Shattered int
}

// Field owns cubes, shards and their device resources
// All methods must be called from the owning frame loop
type Field struct {
	*surface.View

	rng    *rand.Rand
	dev    *gpu.Device
	camera *Camera
	spring harmonica.Spring

	cubes     []*Cube
	shards    shardArena
	templates []*gpu.Geometry
	palette   []colorful.Color

	drag    dragState
	hovered *Cube

	time      float64
	shattered int
	closed    bool

	// OnShatter fires after a cube is replaced by shards
	OnShatter func(pos vmath.Vec3F, shards int)

	// Scratch
	bodies  []physics.Body
	flagged []int
	order   []*Cube
}

// New creates the ring of cubes
func New(rng *rand.Rand) *Field {
	dev := gpu.NewDevice()
	f := &Field{
		View:      surface.NewView(surface.Stretch, 0, 0),
		rng:       rng,
		dev:       dev,
		camera:    NewCamera(),
		spring:    harmonica.NewSpring(harmonica.FPS(parameter.FrameRate), parameter.CubeSpringFreq, parameter.CubeSpringDamping),
		templates: newShardTemplates(dev, rng),
	}
	for _, h := range visual.ShardPalette {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(fmt.Sprintf("cubefield: shard color %q: %v", h, err))
		}
		f.palette = append(f.palette, c)
	}
	for i := 0; i < parameter.CubeCount; i++ {
		f.cubes = append(f.cubes, f.newCube(i))
	}
	return f
}

func (f *Field) newCube(i int) *Cube {
	angle := float64(i) / parameter.CubeCount * 2 * math.Pi
	c := &Cube{
		ID: i,
		Pos: vmath.Vec3F{
			X: math.Cos(angle) * parameter.CubeRingX,
			Y: math.Sin(angle) * parameter.CubeRingY,
		},
		Rot: vmath.Vec3F{
			X: f.rng.Float64() * math.Pi,
			Y: f.rng.Float64() * math.Pi,
			Z: f.rng.Float64() * math.Pi,
		},
		Scale:       parameter.CubeBaseScale,
		BaseScale:   parameter.CubeBaseScale,
		TargetScale: parameter.CubeBaseScale,
		Seed:        float64(i) * parameter.CubeSeedStep,
	}
	c.geometry = f.dev.NewGeometry(fmt.Sprintf("cube-%d", i), cubeVertices(), nil)
	c.material = f.dev.NewMaterial(fmt.Sprintf("glass-%d", i), c.Seed)
	return c
}

func cubeVertices() []vmath.Vec3F {
	h := parameter.CubeHalfSize
	out := make([]vmath.Vec3F, 0, 8)
	for _, x := range []float64{-h, h} {
		for _, y := range []float64{-h, h} {
			for _, z := range []float64{-h, h} {
				out = append(out, vmath.Vec3F{X: x, Y: y, Z: z})
			}
		}
	}
	return out
}

// Name identifies the component
func (f *Field) Name() string {
	return "cubes"
}

// Resize also refits the camera aspect
func (f *Field) Resize(containerW, containerH int, dpr float64) bool {
	if !f.View.Resize(containerW, containerH, dpr) {
		return false
	}
	f.camera.SetAspect(float64(containerW) / float64(containerH))
	return true
}

// Camera exposes the projection
func (f *Field) Camera() *Camera {
	return f.camera
}

// Device exposes resource accounting
func (f *Field) Device() *gpu.Device {
	return f.dev
}

// Cubes returns the live cubes in stable order
func (f *Field) Cubes() []*Cube {
	return f.cubes
}

// Stats returns live counts
func (f *Field) Stats() Stats {
	return Stats{Cubes: len(f.cubes), Shards: f.shards.live, Shattered: f.shattered}
}

// EachShard visits live shards
func (f *Field) EachShard(fn func(s *Shard)) {
	f.shards.each(func(_ int, s *Shard) { fn(s) })
}

// Frame advances physics by dt seconds and renders when sized
func (f *Field) Frame(dt float64) {
	if f.closed {
		return
	}
	if dt <= 0 {
		return
	}
	dt = math.Min(dt, parameter.MaxFrameDelta)
	f.Update(dt)
	if f.Ready() {
		f.Render(f.Canvas())
	}
}

// Update runs one physics step: cube integration, collision, shatter, shards
func (f *Field) Update(dt float64) {
	if f.closed {
		return
	}
	f.time += dt

	for _, c := range f.cubes {
		c.Rot.X += dt * parameter.CubeSpinX
		c.Rot.Y += dt * parameter.CubeSpinY
		c.Scale, c.scaleVel = f.spring.Update(c.Scale, c.scaleVel, c.TargetScale)

		if f.drag.cube == c {
			continue
		}
		physics.Damp(&c.Vel, parameter.CubeDamping)
		if physics.Integrate(&c.Pos, c.Vel, dt, parameter.CubeRestSpeedSq) {
			physics.ReflectBox(&c.Pos, &c.Vel, fieldBounds, parameter.CubeRestitution)
		}
	}

	f.collide()
	f.updateShards(dt)
}

// collide shatters every cube in a destructive contact
func (f *Field) collide() {
	f.bodies = f.bodies[:0]
	for _, c := range f.cubes {
		f.bodies = append(f.bodies, physics.Body{Pos: c.Pos, Vel: c.Vel})
	}
	f.flagged = physics.ShatterPairs(f.bodies, ShatterOnImpact, f.flagged)
	if len(f.flagged) == 0 {
		return
	}

	// Snapshot before removal shifts indices
	victims := make([]*Cube, len(f.flagged))
	for i, idx := range f.flagged {
		victims[i] = f.cubes[idx]
	}
	for _, c := range victims {
		f.Shatter(c)
	}
}

// Shatter replaces a live cube with shards, releasing its resources exactly once
// Returns the number of shards spawned, 0 if the cube was already gone
func (f *Field) Shatter(c *Cube) int {
	idx := -1
	for i, live := range f.cubes {
		if live == c {
			idx = i
			break
		}
	}
	if idx < 0 || !c.Alive() {
		return 0
	}

	if f.drag.cube == c {
		f.drag = dragState{}
	}
	if f.hovered == c {
		f.hovered = nil
	}

	c.release()
	c.State = Shattered
	f.cubes = append(f.cubes[:idx], f.cubes[idx+1:]...)
	f.shattered++

	n := parameter.ShardMin + f.rng.Intn(parameter.ShardExtra)
	for i := 0; i < n; i++ {
		f.spawnShard(c.Pos)
	}
	if f.OnShatter != nil {
		f.OnShatter(c.Pos, n)
	}
	return n
}

func (f *Field) spawnShard(origin vmath.Vec3F) {
	i := f.shards.acquire()
	s := &f.shards.slots[i]

	s.Pos = vmath.Vec3F{
		X: origin.X + vmath.RandSpread(f.rng, parameter.ShardSpawnSpread),
		Y: origin.Y + vmath.RandSpread(f.rng, parameter.ShardSpawnSpread),
		Z: origin.Z + vmath.RandSpread(f.rng, parameter.ShardSpawnSpread),
	}
	s.Rot = vmath.Vec3F{X: vmath.RandAngle(f.rng), Y: vmath.RandAngle(f.rng), Z: vmath.RandAngle(f.rng)}
	s.BaseScale = vmath.RandRange(f.rng, parameter.ShardScaleMin, parameter.ShardScaleMax)
	s.Scale = s.BaseScale
	s.Vel = vmath.V3FScale(vmath.RandUnit3(f.rng), vmath.RandRange(f.rng, parameter.ShardSpeedMin, parameter.ShardSpeedMax))
	s.AngVel = vmath.Vec3F{
		X: vmath.RandSpread(f.rng, parameter.ShardSpinSpread),
		Y: vmath.RandSpread(f.rng, parameter.ShardSpinSpread),
		Z: vmath.RandSpread(f.rng, parameter.ShardSpinSpread),
	}
	s.Life = vmath.RandRange(f.rng, parameter.ShardLifeMin, parameter.ShardLifeMax)
	s.MaxLife = s.Life
	s.Gravity = vmath.RandRange(f.rng, parameter.ShardGravityMin, parameter.ShardGravityMax)
	s.Opacity = parameter.ShardAlpha
	s.Template = f.rng.Intn(len(f.templates))
	s.Color = f.palette[f.rng.Intn(len(f.palette))]
	s.material = f.dev.NewMaterial("shard", 0)
	s.material.Opacity = s.Opacity
	s.material.Color = [3]float64{s.Color.R, s.Color.G, s.Color.B}
}

func (f *Field) updateShards(dt float64) {
	f.shards.each(func(i int, s *Shard) {
		if !s.update(dt) {
			f.shards.release(i)
		}
	})
}

// Close releases every cube, shard and template resource; safe to call twice
func (f *Field) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	f.drag = dragState{}
	f.hovered = nil

	for _, c := range f.cubes {
		c.release()
	}
	f.cubes = nil
	f.shards.clear()

	res := make([]gpu.Resource, 0, len(f.templates))
	for _, g := range f.templates {
		res = append(res, g)
	}
	gpu.Release(res...)
	f.templates = nil

	if live := f.dev.Live(); live != 0 {
		return fmt.Errorf("cubefield: %d device resources leaked on close", live)
	}
	log.Printf("cubefield: closed, %d resources released", f.dev.Disposed())
	return nil
}
