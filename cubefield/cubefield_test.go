package cubefield

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cinefx/gpu"
	"github.com/lixenwraith/cinefx/parameter"
	"github.com/lixenwraith/cinefx/parameter/visual"
	"github.com/lixenwraith/cinefx/vmath"
)

const step = 1.0 / 60

func newTestField(t *testing.T, seed int64) *Field {
	t.Helper()
	f := New(rand.New(rand.NewSource(seed)))
	t.Cleanup(func() { _ = f.Close() })
	return f
}

// isolate drops every cube except those listed, releasing their resources
func isolate(f *Field, keep ...int) {
	var kept []*Cube
	for i, c := range f.cubes {
		if containsInt(keep, i) {
			kept = append(kept, c)
			continue
		}
		c.release()
		c.State = Shattered
	}
	f.cubes = kept
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// container maps NDC to container pixels for an 800x400 stretch view at dpr 1
func container(nx, ny float64) (float64, float64) {
	return (nx + 1) / 2 * 800, (1 - ny) / 2 * 400
}

func TestNewFieldLayout(t *testing.T) {
	f := newTestField(t, 1)

	require.Len(t, f.Cubes(), parameter.CubeCount)
	c0 := f.Cubes()[0]
	assert.InDelta(t, 3.6, c0.Pos.X, 1e-9)
	assert.InDelta(t, 0, c0.Pos.Y, 1e-9)
	c2 := f.Cubes()[2]
	assert.InDelta(t, 0, c2.Pos.X, 1e-9)
	assert.InDelta(t, 2.2, c2.Pos.Y, 1e-9)

	for i, c := range f.Cubes() {
		assert.Equal(t, Floating, c.State)
		assert.Equal(t, float64(i)*parameter.CubeSeedStep, c.Seed)
		assert.Equal(t, parameter.CubeBaseScale, c.Scale)
	}

	dev := f.Device()
	assert.Equal(t, parameter.CubeCount+parameter.ShardTemplates, dev.LiveOf(gpu.KindGeometry))
	assert.Equal(t, parameter.CubeCount, dev.LiveOf(gpu.KindMaterial))
}

func TestDampedMotionStaysInBounds(t *testing.T) {
	f := newTestField(t, 2)
	isolate(f, 0)
	c := f.Cubes()[0]
	c.Vel = vmath.Vec3F{X: 12, Y: 8, Z: -5}

	start := vmath.V3FMag(c.Vel)
	for n := 1; n <= 600; n++ {
		f.Update(step)
		if !fieldBounds.Contains(c.Pos, 1e-9) {
			t.Fatalf("Expected cube inside bounds at frame %d, got %+v", n, c.Pos)
		}
		limit := start * math.Pow(parameter.CubeDamping, float64(n))
		if got := vmath.V3FMag(c.Vel); got > limit+1e-9 {
			t.Fatalf("Expected speed <= %f at frame %d, got %f", limit, n, got)
		}
	}
	assert.Less(t, vmath.V3FMagSq(c.Vel), 1e-6)
}

func TestCollisionRequiresContactAndSpeed(t *testing.T) {
	tests := []struct {
		name    string
		offset  float64
		vel     vmath.Vec3F
		shatter bool
	}{
		{"slow contact", 0.3, vmath.Vec3F{}, false},
		{"slow drift in contact", 0.3, vmath.Vec3F{X: 1}, false},
		{"fast but apart", 2.0, vmath.Vec3F{X: 3}, false},
		{"fast contact", 0.3, vmath.Vec3F{X: 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestField(t, 3)
			isolate(f, 0, 1)
			a, b := f.Cubes()[0], f.Cubes()[1]
			a.Pos = vmath.Vec3F{}
			b.Pos = vmath.Vec3F{X: tt.offset}
			a.Vel = tt.vel

			f.Update(step)
			if tt.shatter {
				assert.Empty(t, f.Cubes())
				assert.Equal(t, 2, f.Stats().Shattered)
			} else {
				assert.Len(t, f.Cubes(), 2)
				assert.Zero(t, f.Stats().Shards)
			}
		})
	}
}

func TestShatterReplacesCubeWithShards(t *testing.T) {
	f := newTestField(t, 4)
	dev := f.Device()
	c := f.Cubes()[3]

	var hookPos vmath.Vec3F
	hookShards := 0
	f.OnShatter = func(pos vmath.Vec3F, shards int) {
		hookPos = pos
		hookShards = shards
	}

	geoBefore := dev.LiveOf(gpu.KindGeometry)
	matBefore := dev.LiveOf(gpu.KindMaterial)
	n := f.Shatter(c)

	assert.GreaterOrEqual(t, n, parameter.ShardMin)
	assert.Less(t, n, parameter.ShardMin+parameter.ShardExtra)
	assert.Equal(t, parameter.CubeCount-1, f.Stats().Cubes)
	assert.Equal(t, n, f.Stats().Shards)
	assert.Equal(t, Shattered, c.State)
	assert.NotContains(t, f.Cubes(), c)

	assert.Equal(t, geoBefore-1, dev.LiveOf(gpu.KindGeometry))
	assert.Equal(t, matBefore-1+n, dev.LiveOf(gpu.KindMaterial))

	assert.Equal(t, c.Pos, hookPos)
	assert.Equal(t, n, hookShards)

	// Second shatter of the same cube is a no-op
	disposed := dev.Disposed()
	assert.Zero(t, f.Shatter(c))
	assert.Equal(t, disposed, dev.Disposed())

	f.EachShard(func(s *Shard) {
		assert.InDelta(t, s.Life, s.MaxLife, 1e-12)
		assert.GreaterOrEqual(t, s.Life, parameter.ShardLifeMin)
		assert.Less(t, s.Life, parameter.ShardLifeMax)
		assert.Equal(t, parameter.ShardAlpha, s.Opacity)
		assert.LessOrEqual(t, vmath.V3FDist(s.Pos, c.Pos), parameter.ShardSpawnSpread)
	})
}

func TestShardsFadeAndExpire(t *testing.T) {
	f := newTestField(t, 5)
	isolate(f, 0)
	n := f.Shatter(f.Cubes()[0])
	require.Positive(t, n)

	f.Update(1)
	f.EachShard(func(s *Shard) {
		assert.InDelta(t, s.Ratio()*parameter.ShardAlpha, s.Opacity, 1e-12)
		assert.InDelta(t, s.BaseScale*(0.5+0.5*s.Ratio()), s.Scale, 1e-12)
		assert.InDelta(t, s.Opacity, s.material.Opacity, 1e-12)
	})

	for i := 0; i < int(parameter.ShardLifeMax/step)+2; i++ {
		f.Update(step)
	}
	assert.Zero(t, f.Stats().Shards)
	// Only the shard templates remain
	assert.Equal(t, parameter.ShardTemplates, f.Device().Live())
}

func TestShardArenaReuse(t *testing.T) {
	dev := gpu.NewDevice()
	var a shardArena

	i := a.acquire()
	s := &a.slots[i]
	s.Life = 2
	s.Vel = vmath.Vec3F{X: 1, Y: 2, Z: 3}
	s.Template = 7
	s.material = dev.NewMaterial("shard", 0)

	a.release(i)
	assert.Zero(t, a.live)
	assert.Zero(t, dev.Live())

	j := a.acquire()
	assert.Equal(t, i, j)
	assert.Equal(t, Shard{active: true}, a.slots[j])
	assert.Equal(t, 1, a.live)

	// Double release is ignored
	a.release(j)
	a.release(j)
	assert.Zero(t, a.live)
	assert.Len(t, a.free, 1)
}

func TestCloseReleasesAllResources(t *testing.T) {
	f := New(rand.New(rand.NewSource(6)))
	f.Shatter(f.Cubes()[0])
	f.Update(step)
	require.Positive(t, f.Device().Live())

	require.NoError(t, f.Close())
	assert.Zero(t, f.Device().Live())
	assert.Empty(t, f.Cubes())
	assert.Zero(t, f.Stats().Shards)

	disposed := f.Device().Disposed()
	require.NoError(t, f.Close())
	assert.Equal(t, disposed, f.Device().Disposed())

	// Closed fields ignore further work
	f.Frame(step)
	f.PointerDownNDC(0.9, 0, time.Now())
	assert.Nil(t, f.Dragged())
}

func TestHoverAndLeave(t *testing.T) {
	f := newTestField(t, 7)
	require.True(t, f.Resize(800, 400, 1))
	c0 := f.Cubes()[0]

	x, y := container(0.9, 0)
	f.PointerMove(x, y, time.Now())
	require.Same(t, c0, f.Hovered())
	assert.InDelta(t, c0.BaseScale*parameter.CubeHoverScale, c0.TargetScale, 1e-12)

	// Empty space clears hover
	x, y = container(0, 0)
	f.PointerMove(x, y, time.Now())
	assert.Nil(t, f.Hovered())
	assert.Equal(t, c0.BaseScale, c0.TargetScale)

	x, y = container(0.9, 0)
	f.PointerMove(x, y, time.Now())
	f.PointerLeave()
	assert.Nil(t, f.Hovered())
	assert.Equal(t, c0.BaseScale, c0.TargetScale)
}

func TestHoverScaleEasesTowardTarget(t *testing.T) {
	f := newTestField(t, 8)
	require.True(t, f.Resize(800, 400, 1))
	c0 := f.Cubes()[0]

	x, y := container(0.9, 0)
	f.PointerMove(x, y, time.Now())
	for i := 0; i < 120; i++ {
		f.Update(step)
	}
	assert.InDelta(t, c0.BaseScale*parameter.CubeHoverScale, c0.Scale, 1e-3)
}

func TestPointerIgnoredBeforeResize(t *testing.T) {
	f := newTestField(t, 9)
	f.PointerDown(760, 200, time.Now())
	f.PointerMove(760, 200, time.Now())
	assert.Nil(t, f.Dragged())
	assert.Nil(t, f.Hovered())
}

func TestDragVelocity(t *testing.T) {
	t0 := time.Unix(1000, 0)

	t.Run("timestamps define velocity", func(t *testing.T) {
		f := newTestField(t, 10)
		require.True(t, f.Resize(800, 400, 1))
		c0 := f.Cubes()[0]
		f.PointerDownNDC(0.9, 0, t0)
		require.Same(t, c0, f.Dragged())
		assert.Equal(t, Dragging, c0.State)
		assert.InDelta(t, c0.BaseScale*parameter.CubePressScale, c0.TargetScale, 1e-12)

		f.PointerMoveNDC(0.8, 0.05, t0.Add(100*time.Millisecond))
		assert.InDelta(t, 3.2, c0.Pos.X, 1e-9)
		assert.InDelta(t, 0.2, c0.Pos.Y, 1e-9)

		f.PointerUpNDC()
		assert.Nil(t, f.Dragged())
		assert.Equal(t, Floating, c0.State)
		assert.InDelta(t, -0.4/0.1, c0.Vel.X, 1e-6)
		assert.InDelta(t, 0.2/0.1, c0.Vel.Y, 1e-6)
	})

	t.Run("release speed is capped", func(t *testing.T) {
		f := newTestField(t, 15)
		require.True(t, f.Resize(800, 400, 1))
		c0 := f.Cubes()[0]
		f.PointerDownNDC(0.9, 0, t0)
		f.PointerMoveNDC(0.5, 0, t0.Add(10*time.Millisecond))
		f.PointerUpNDC()
		assert.InDelta(t, parameter.CubeMaxSpeed, vmath.V3FMag(c0.Vel), 1e-9)
	})

	t.Run("coincident timestamps fall back", func(t *testing.T) {
		f := newTestField(t, 11)
		require.True(t, f.Resize(800, 400, 1))
		c0 := f.Cubes()[0]
		f.PointerDownNDC(0.9, 0, t0)
		f.PointerMoveNDC(0.9, 0.004, t0)
		f.PointerUpNDC()
		assert.InDelta(t, 0.016/parameter.CubeFallbackDT, c0.Vel.Y, 1e-9)
	})

	t.Run("drag clamps to bounds", func(t *testing.T) {
		f := newTestField(t, 12)
		require.True(t, f.Resize(800, 400, 1))
		c0 := f.Cubes()[0]
		f.PointerDownNDC(0.9, 0, t0)
		f.PointerMoveNDC(5, 0, t0.Add(time.Second))
		assert.Equal(t, parameter.CubeBoundX, c0.Pos.X)
	})

	t.Run("miss starts nothing", func(t *testing.T) {
		f := newTestField(t, 13)
		require.True(t, f.Resize(800, 400, 1))
		f.PointerDownNDC(0, 0, t0)
		assert.Nil(t, f.Dragged())
	})
}

func TestDragIntoNeighbourShattersBoth(t *testing.T) {
	f := newTestField(t, 42)
	require.True(t, f.Resize(800, 400, 1))

	halfW, halfH := f.Camera().HalfExtents()
	require.InDelta(t, 4.0, halfW, 1e-9)
	require.InDelta(t, 2.0, halfH, 1e-9)

	c0, c1 := f.Cubes()[0], f.Cubes()[1]
	assert.InDelta(t, 2.5456, c1.Pos.X, 1e-4)
	assert.InDelta(t, 1.5556, c1.Pos.Y, 1e-4)

	shatters := 0
	f.OnShatter = func(vmath.Vec3F, int) { shatters++ }

	t0 := time.Unix(2000, 0)
	x, y := container(0.9, 0)
	f.PointerDown(x, y, t0)
	require.Same(t, c0, f.Dragged())

	x, y = container(0.2364, 0.3889)
	f.PointerMove(x, y, t0.Add(100*time.Millisecond))
	assert.InDelta(t, 0.9456, c0.Pos.X, 1e-3)
	assert.InDelta(t, 1.5556, c0.Pos.Y, 1e-3)

	x, y = container(0.2364+0.025, 0.3889)
	f.PointerMove(x, y, t0.Add(110*time.Millisecond))
	f.PointerUp(x, y, t0.Add(120*time.Millisecond))
	assert.InDelta(t, 10, c0.Vel.X, 1e-6)
	assert.InDelta(t, 0, c0.Vel.Y, 1e-6)

	for i := 0; i < 120 && len(f.Cubes()) == parameter.CubeCount; i++ {
		f.Frame(step)
	}

	stats := f.Stats()
	assert.Equal(t, parameter.CubeCount-2, stats.Cubes)
	assert.Equal(t, 2, stats.Shattered)
	assert.Equal(t, 2, shatters)
	assert.GreaterOrEqual(t, stats.Shards, 2*parameter.ShardMin)
	assert.LessOrEqual(t, stats.Shards, 2*(parameter.ShardMin+parameter.ShardExtra-1))
	assert.NotContains(t, f.Cubes(), c0)
	assert.NotContains(t, f.Cubes(), c1)

	dev := f.Device()
	assert.Equal(t, stats.Cubes+parameter.ShardTemplates, dev.LiveOf(gpu.KindGeometry))
	assert.Equal(t, stats.Cubes+stats.Shards, dev.LiveOf(gpu.KindMaterial))
}

func TestFrameRendersGlass(t *testing.T) {
	f := newTestField(t, 14)

	// Unsized frames still advance physics but draw nothing
	f.Frame(step)
	w, h := f.Canvas().Size()
	assert.Zero(t, w*h)

	require.True(t, f.Resize(80, 40, 1))
	f.Frame(step)

	bg := visual.CubeBackground
	corner := f.Canvas().At(40, 20).RGB()
	assert.Equal(t, bg, corner)

	// Cube 0 sits at NDC (0.9, 0)
	center := f.Canvas().At(76, 20).RGB()
	assert.NotEqual(t, bg, center)
}

func TestCubeIntersect(t *testing.T) {
	c := &Cube{Pos: vmath.Vec3F{X: 1}, Scale: 1}
	cam := NewCamera()

	origin, dir := cam.Ray(0.5, 0)
	tHit, ok := c.Intersect(origin, dir)
	require.True(t, ok)
	// Eye at z=10 looking down -Z, near face at z=0.5
	p := origin.Add(dir.Mul(tHit))
	assert.InDelta(t, 0.5, p.Z(), 1e-9)

	_, ok = c.Intersect(cam.Ray(-0.5, 0))
	assert.False(t, ok)

	c.Rot = vmath.Vec3F{Z: math.Pi / 4}
	// Corner of the rotated cube reaches x = 1 + sqrt(0.5)
	_, ok = c.Intersect(cam.Ray((1+0.7)/2, 0))
	assert.True(t, ok)
	_, ok = c.Intersect(cam.Ray((1+0.72)/2, 0))
	assert.False(t, ok)
}
