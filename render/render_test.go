package render

import (
	"image"
	"image/gif"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/cinefx/vmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositeOps(t *testing.T) {
	tests := []struct {
		name string
		op   CompositeOp
		bg   RGB
		col  Color
		want Pixel
	}{
		{"SourceOver opaque replaces", SourceOver, RGB{10, 10, 10}, RGBA(200, 100, 0, 1), Pixel{200, 100, 0}},
		{"SourceOver half mixes", SourceOver, RGB{0, 0, 0}, RGBA(200, 100, 50, 0.5), Pixel{100, 50, 25}},
		{"Lighter adds", Lighter, RGB{100, 100, 100}, RGBA(100, 50, 0, 1), Pixel{200, 150, 100}},
		{"Lighter saturates", Lighter, RGB{200, 200, 200}, RGBA(200, 200, 200, 1), Pixel{255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(2, 2)
			c.Clear(tt.bg)
			c.SetComposite(tt.op)
			c.Blend(0, 0, tt.col, 1)
			got := c.At(0, 0)
			if math.Abs(float64(got.R-tt.want.R)) > 0.01 || math.Abs(float64(got.G-tt.want.G)) > 0.01 || math.Abs(float64(got.B-tt.want.B)) > 0.01 {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestGlobalAlpha(t *testing.T) {
	c := NewCanvas(1, 1)
	c.SetGlobalAlpha(0.5)
	c.Blend(0, 0, RGBA(200, 200, 200, 1), 1)
	assert.InDelta(t, 100, c.At(0, 0).R, 0.01)

	c.SetGlobalAlpha(3)
	c.ResetState()
	assert.Equal(t, SourceOver, c.Composite())
}

func TestResizeReusesCapacity(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Clear(RGB{50, 50, 50})
	c.Resize(5, 5)
	w, h := c.Size()
	assert.Equal(t, 5, w)
	assert.Equal(t, 5, h)
	assert.Equal(t, 100, cap(c.pix))
	assert.Equal(t, Pixel{}, c.At(4, 4), "resize clears reused storage")
}

func TestGradients(t *testing.T) {
	stops := Stops(
		ColorStop{1, RGBA(255, 255, 255, 1)},
		ColorStop{0, RGBA(0, 0, 0, 1)},
	)
	r := Radial{CX: 0, CY: 0, R0: 0, R1: 10, Stops: stops}
	assert.InDelta(t, 0, r.ColorAt(0, 0).R, 1e-9)
	assert.InDelta(t, 127.5, r.ColorAt(5, 0).R, 1e-9)
	assert.InDelta(t, 255, r.ColorAt(50, 0).R, 1e-9, "clamped past last stop")

	l := Linear{X0: 0, Y0: 0, X1: 0, Y1: 100, Stops: stops}
	assert.InDelta(t, 25.5, l.ColorAt(40, 10).R, 1e-9)
}

func TestFillCircleCoverage(t *testing.T) {
	c := NewCanvas(40, 40)
	c.FillCircle(20, 20, 10, RGBA(255, 0, 0, 1))
	assert.InDelta(t, 255, c.At(20, 20).R, 0.01)
	assert.Equal(t, float32(0), c.At(2, 2).R)
	// Edge pixel partially covered
	edge := c.At(29, 20).R
	assert.Greater(t, edge, float32(0))
}

func TestTransformLetterbox(t *testing.T) {
	c := NewCanvas(100, 50)
	c.SetTransform(0.5, 10, 0)
	c.FillRect(0, 0, 20, 20, RGBA(0, 255, 0, 1))
	// Logical (0..20) maps to backing 10..20
	assert.InDelta(t, 255, c.At(15, 5).G, 0.01)
	assert.Equal(t, float32(0), c.At(5, 5).G)
	assert.Equal(t, float32(0), c.At(25, 5).G)
}

func TestFillPolygon(t *testing.T) {
	c := NewCanvas(20, 20)
	tri := []vmath.Vec2F{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 0, Y: 20}}
	c.FillPolygon(tri, RGBA(0, 0, 255, 1))
	assert.InDelta(t, 255, c.At(2, 2).B, 0.5)
	assert.Equal(t, float32(0), c.At(18, 18).B)

	// Reuse must not accumulate previous coverage
	c.Clear(RGB{})
	c.FillPolygon([]vmath.Vec2F{{X: 10, Y: 10}, {X: 20, Y: 10}, {X: 20, Y: 20}}, RGBA(0, 0, 255, 1))
	assert.Equal(t, float32(0), c.At(2, 2).B)
}

func TestStrokes(t *testing.T) {
	c := NewCanvas(50, 50)
	c.StrokeLine(5, 25, 45, 25, 2, RGBA(255, 255, 255, 1))
	assert.Greater(t, c.At(25, 25).R, float32(200))
	assert.Equal(t, float32(0), c.At(25, 10).R)

	c.Clear(RGB{})
	c.StrokeEllipse(25, 25, 20, 6, 2, RGBA(255, 255, 255, 1))
	assert.Greater(t, c.At(45, 25).R, float32(100), "on the rim")
	assert.Equal(t, float32(0), c.At(25, 25).R, "center untouched")
}

func TestFadeLeavesTrails(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Clear(RGB{200, 200, 200})
	c.SetComposite(Lighter)
	c.Fade(RGBA(0, 0, 0, 0.25))
	assert.InDelta(t, 150, c.At(1, 1).R, 0.01)
	assert.Equal(t, Lighter, c.Composite(), "fade restores composite op")
}

func TestImageAndBloom(t *testing.T) {
	c := NewCanvas(16, 16)
	c.FillCircle(8, 8, 3, RGBA(255, 240, 200, 1))
	img := c.Image()
	require.Equal(t, image.Rect(0, 0, 16, 16), img.Bounds())
	assert.Equal(t, uint8(255), img.RGBAAt(8, 8).A)

	out := Bloom(img, DefaultBloom)
	// Glow spreads past the disc edge
	assert.Greater(t, out.RGBAAt(8, 13).R, img.RGBAAt(8, 13).R)

	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, SavePNG(path, out))
}

func TestSaveGIF(t *testing.T) {
	var frames []image.Image
	for i := 0; i < 3; i++ {
		c := NewCanvas(12, 8)
		c.Clear(RGB{R: uint8(60 * i)})
		frames = append(frames, c.Image())
	}
	path := filepath.Join(t.TempDir(), "anim.gif")
	require.NoError(t, SaveGIF(path, frames, 4))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	g, err := gif.DecodeAll(f)
	require.NoError(t, err)
	assert.Len(t, g.Image, 3)
	assert.Equal(t, []int{4, 4, 4}, g.Delay)

	assert.Error(t, SaveGIF(path, nil, 4))
}
