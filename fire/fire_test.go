package fire

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/cinefx/parameter"
	"github.com/lixenwraith/cinefx/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFire(seed int64) (*Simulation, *render.Canvas) {
	s := New(rand.New(rand.NewSource(seed)))
	// Small backing store keeps the per-pixel work cheap
	s.Resize(100, 75, 1)
	return s, s.Canvas()
}

func TestFlamePopulationStabilizesAtCap(t *testing.T) {
	s, c := newTestFire(42)

	peak := 0
	sum := 0
	window := 0
	for f := 0; f < 500; f++ {
		s.Step(c)
		n := s.Stats().Flames
		if n > parameter.FlameCap {
			t.Fatalf("Expected at most %d flames, got %d at frame %d", parameter.FlameCap, n, f)
		}
		if f >= 400 {
			peak = max(peak, n)
			sum += n
			window++
		}
	}

	assert.Equal(t, parameter.FlameCap, peak, "population should reach the cap")
	assert.GreaterOrEqual(t, float64(sum)/float64(window), float64(parameter.FlameCap-4), "population should hover at the cap")
}

func TestEmbersAndWispsRespectCaps(t *testing.T) {
	s, c := newTestFire(7)
	for f := 0; f < 300; f++ {
		s.Step(c)
		st := s.Stats()
		require.LessOrEqual(t, st.Embers, parameter.EmberCap)
		require.LessOrEqual(t, st.Wisps, parameter.WispCap)
	}
	assert.Greater(t, s.Stats().Embers, 0)
	assert.Equal(t, 300, s.Frames())
}

func TestFlameLifeMonotone(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	f := newFlame(rng, 200, 280)
	prev := f.Life
	for f.Update() {
		if f.Life >= prev {
			t.Fatalf("Expected life to strictly decrease, got %f after %f", f.Life, prev)
		}
		prev = f.Life
		if f.Size != FlameSize(f.BaseSize, f.Life) {
			t.Fatalf("Expected size to be a pure function of life")
		}
	}
	assert.LessOrEqual(t, f.Life, 0.0)
}

func TestFlameSizeShape(t *testing.T) {
	tests := []struct {
		name string
		life float64
		want float64
	}{
		{"Birth", 1, 0},
		{"Mid life peak", 0.5, 40},
		{"Expiry", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FlameSize(50, tt.life)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected size %f, got %f", tt.want, got)
			}
		})
	}
}

func TestFlameColorBands(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		want     render.RGB
	}{
		{"Core cool", 0.05, render.RGB{R: 255, G: 247, B: 180}},
		{"Yellow start", 0.15, render.RGB{R: 255, G: 240, B: 180}},
		{"Orange start", 0.35, render.RGB{R: 255, G: 160, B: 30}},
		{"Red start", 0.6, render.RGB{R: 255, G: 60, B: 0}},
		{"Dark red end", 1.0, render.RGB{R: 135, G: 0, B: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FlameColor(tt.progress, 0)
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}

	// Red channel never increases as the flame ages
	prev := 256
	for p := 0.15; p <= 1.0; p += 0.01 {
		r := int(FlameColor(p, 0).R)
		assert.LessOrEqual(t, r, prev)
		prev = r
	}
}

func TestEmberExpiresAboveCanvas(t *testing.T) {
	e := &Ember{Y: -19, VY: -5, Life: 1, Decay: 0.01}
	assert.False(t, e.Update(), "ember above the escape line is removed")
}

func TestWispGrowsTowardMax(t *testing.T) {
	w := newWisp(rand.New(rand.NewSource(1)), 200, 280)
	start := w.Size
	for i := 0; i < 50; i++ {
		w.Update()
	}
	assert.Greater(t, w.Size, start)
	assert.LessOrEqual(t, w.Size, w.MaxSize)
}

func TestFireDrawsGlow(t *testing.T) {
	s, c := newTestFire(11)
	for i := 0; i < 30; i++ {
		s.Frame(1.0 / 60)
	}
	// Fire base region is bright, top corner stays dark
	base := c.At(50, 68)
	corner := c.At(1, 1)
	assert.Greater(t, base.R, corner.R)
	assert.Greater(t, base.R, float32(100))

	require.NoError(t, s.Close())
	assert.Equal(t, Stats{}, s.Stats())
}

func TestFrameSkippedBeforeResize(t *testing.T) {
	s := New(rand.New(rand.NewSource(1)))
	s.Frame(1.0 / 60)
	assert.Equal(t, 0, s.Frames())
}
