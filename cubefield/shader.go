package cubefield

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/cinefx/parameter/visual"
	"github.com/lixenwraith/cinefx/render"
)

// Iridescent accents shared by highlights and edge glow
var (
	cyan    = mgl32.Vec3{0.0, 0.9, 0.95}
	magenta = mgl32.Vec3{0.9, 0.2, 0.8}
	pink    = mgl32.Vec3{1.0, 0.4, 0.7}
	white   = mgl32.Vec3{1, 1, 1}
)

// light is a directional specular source
type light struct {
	dir   mgl32.Vec3
	power float32
	tint  mgl32.Vec3
	gain  float32
}

var lights = [3]light{
	{dir: mgl32.Vec3{1.5, 2.0, 1.0}.Normalize(), power: 60, tint: cyan, gain: 0.8},
	{dir: mgl32.Vec3{-1.0, 1.5, 1.5}.Normalize(), power: 40, tint: magenta, gain: 0.6},
	{dir: mgl32.Vec3{0.5, -0.5, 2.0}.Normalize(), power: 25, tint: pink, gain: 0.5},
}

var faceColors = mustPalette(visual.CubeFaceHex[:])

func mustPalette(hexes []string) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(fmt.Sprintf("cubefield: palette color %q: %v", h, err))
		}
		out[i] = mgl32.Vec3{float32(c.R), float32(c.G), float32(c.B)}
	}
	return out
}

// fragment carries per-pixel shading inputs
type fragment struct {
	normal    mgl32.Vec3 // World normal, facing the viewer for front faces
	objNormal mgl32.Vec3 // Object-space face normal, fixed to the cube
	local     mgl32.Vec3 // Object-space position in [-0.5, 0.5]
	view      mgl32.Vec3 // Unit vector toward the viewer
	seed      float32
	time      float32
}

// reflect mirrors i about n
func reflect(i, n mgl32.Vec3) mgl32.Vec3 {
	return i.Sub(n.Mul(2 * n.Dot(i)))
}

func smoothstep32(e0, e1, x float32) float32 {
	t := (x - e0) / (e1 - e0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

// dominantAxis returns the index of the largest absolute component
func dominantAxis(v mgl32.Vec3) int {
	ax, ay, az := math32.Abs(v[0]), math32.Abs(v[1]), math32.Abs(v[2])
	switch {
	case ax >= ay && ax >= az:
		return 0
	case ay >= az:
		return 1
	default:
		return 2
	}
}

// edgeFactor is 0 at a face center and 1 on its rim
func edgeFactor(local mgl32.Vec3, axis int) float32 {
	var u, v float32
	switch axis {
	case 0:
		u, v = local[1], local[2]
	case 1:
		u, v = local[0], local[2]
	default:
		u, v = local[0], local[1]
	}
	d := math32.Max(math32.Abs(u), math32.Abs(v))
	return smoothstep32(0.3, 0.5, d)
}

// edgeHue cycles through the spectrum over time and along the cube
func edgeHue(f fragment) mgl32.Vec3 {
	h := f.time*0.1 + f.seed*0.13 + (f.local[0]+f.local[1]+f.local[2])*0.5
	h -= math32.Floor(h)
	c := colorful.Hsv(float64(h*360), 0.75, 1)
	return mgl32.Vec3{float32(c.R), float32(c.G), float32(c.B)}
}

// shade evaluates the glass material for one fragment
func shade(f fragment) (mgl32.Vec3, float32) {
	n := f.normal
	ndv := math32.Abs(n.Dot(f.view))
	fresnel := math32.Pow(1-ndv, 3)

	axis := dominantAxis(f.objNormal)
	face := faceColors[axis]
	edge := edgeFactor(f.local, axis)

	// Dark glassy centers, brighter rims
	col := face.Mul(0.25 + 0.35*edge)
	col = col.Add(edgeHue(f).Mul(edge * 0.9))

	var specSum float32
	for i, l := range lights {
		s := math32.Pow(math32.Max(reflect(l.dir.Mul(-1), n).Dot(f.view), 0), l.power)
		col = col.Add(l.tint.Mul(s * l.gain))
		if i < 2 {
			specSum += s
		}
	}
	col = col.Add(white.Mul(specSum * 0.3))

	glow := lerp3(cyan, magenta, fresnel).Mul(fresnel * fresnel * 0.8)
	col = col.Add(glow).Add(face.Mul(fresnel * 0.5))

	alpha := 0.45 + fresnel*0.5 + specSum*0.2 + edge*0.3
	if alpha > 1 {
		alpha = 1
	}
	return col, alpha
}

func lerp3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// toColor converts linear [0,1+] shader output to a canvas color
func toColor(c mgl32.Vec3, alpha float32) render.Color {
	return render.Color{
		R: float64(math32.Min(c[0], 1)) * 255,
		G: float64(math32.Min(c[1], 1)) * 255,
		B: float64(math32.Min(c[2], 1)) * 255,
		A: float64(alpha),
	}
}
