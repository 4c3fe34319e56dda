package cubefield

import (
	"cmp"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/cinefx/parameter/visual"
	"github.com/lixenwraith/cinefx/render"
	"github.com/lixenwraith/cinefx/vmath"
)

// Back faces show through the glass at reduced strength
const backFaceAlpha = 0.5

var shardLight = mgl64.Vec3{0.4, 0.8, 0.6}.Normalize()

// Render draws cubes back to front, then shards
func (f *Field) Render(c *render.Canvas) {
	c.ResetState()
	c.Clear(visual.CubeBackground)

	f.order = append(f.order[:0], f.cubes...)
	slices.SortStableFunc(f.order, func(a, b *Cube) int {
		return cmp.Compare(a.Pos.Z, b.Pos.Z)
	})
	for _, cube := range f.order {
		f.drawCube(c, cube)
	}
	f.drawShards(c)
}

// drawCube ray casts every backing pixel inside the cube's projected bounds
func (f *Field) drawCube(c *render.Canvas, cube *Cube) {
	bw, bh := c.Size()
	if bw == 0 || bh == 0 {
		return
	}
	rot := cube.Orientation()
	rotT := rot.Transpose()
	center := toMgl(cube.Pos)
	half := cube.HalfExtent()

	cx, cy, _ := f.camera.Project(center)
	halfW, halfH := f.camera.HalfExtents()
	r := cube.BoundingRadius()
	x0, x1 := ndcToPixel(cx-r/halfW, bw), ndcToPixel(cx+r/halfW, bw)
	y0, y1 := ndcToPixel(-(cy+r/halfH), bh), ndcToPixel(-(cy-r/halfH), bh)
	x0, y0 = max(0, x0-1), max(0, y0-1)
	x1, y1 = min(bw-1, x1+1), min(bh-1, y1+1)

	time := float32(f.time)
	seed := float32(cube.Seed)
	for py := y0; py <= y1; py++ {
		ny := 1 - (float64(py)+0.5)/float64(bh)*2
		for px := x0; px <= x1; px++ {
			nx := (float64(px)+0.5)/float64(bw)*2 - 1
			origin, dir := f.camera.Ray(nx, ny)
			h, ok := intersect(origin, dir, center, rotT, half)
			if !ok {
				continue
			}
			view := toVec32(dir.Mul(-1))

			back := f.fragmentAt(origin, dir, h.tFar, h.farAxis, h.farSign, rot, rotT, center, half)
			back.normal = back.normal.Mul(-1)
			back.view, back.seed, back.time = view, seed, time
			col, alpha := shade(back)
			c.Blend(px, py, toColor(col, alpha*backFaceAlpha), 1)

			front := f.fragmentAt(origin, dir, h.tNear, h.nearAxis, h.nearSign, rot, rotT, center, half)
			front.view, front.seed, front.time = view, seed, time
			col, alpha = shade(front)
			c.Blend(px, py, toColor(col, alpha), 1)
		}
	}
}

// fragmentAt builds shading inputs for the face hit at distance t
func (f *Field) fragmentAt(origin, dir mgl64.Vec3, t float64, axis int, sign float64,
	rot, rotT mgl64.Mat3, center mgl64.Vec3, half float64) fragment {
	var objN mgl64.Vec3
	objN[axis] = sign
	p := origin.Add(dir.Mul(t))
	local := rotT.Mul3x1(p.Sub(center)).Mul(0.5 / half)
	return fragment{
		normal:    toVec32(rot.Mul3x1(objN)),
		objNormal: toVec32(objN),
		local:     toVec32(local),
	}
}

// drawShards fills the visible faces of every live shard with flat shading
func (f *Field) drawShards(c *render.Canvas) {
	if f.shards.live == 0 || len(f.templates) == 0 {
		return
	}
	lw, lh := f.Adapter().Logical()
	var world [4]mgl64.Vec3
	var tri [3]vmath.Vec2F

	f.shards.each(func(_ int, s *Shard) {
		geo := f.templates[s.Template]
		rot := orientation(s.Rot)
		pos := toMgl(s.Pos)
		for i, v := range geo.Vertices {
			if i >= len(world) {
				break
			}
			world[i] = rot.Mul3x1(toMgl(v).Mul(s.Scale)).Add(pos)
		}
		base := render.RGB{
			R: uint8(s.Color.R * 255),
			G: uint8(s.Color.G * 255),
			B: uint8(s.Color.B * 255),
		}
		for _, face := range geo.Faces {
			a, b, cc := world[face[0]], world[face[1]], world[face[2]]
			n := b.Sub(a).Cross(cc.Sub(a))
			if n.Len() == 0 {
				continue
			}
			n = n.Normalize()
			if n.Dot(a.Add(b).Add(cc).Mul(1.0/3).Sub(pos)) < 0 {
				n = n.Mul(-1)
			}
			// Camera looks down -Z
			if n.Z() <= 0 {
				continue
			}
			lit := 0.35 + 0.65*math.Max(0, n.Dot(shardLight))
			for k, v := range [3]mgl64.Vec3{a, b, cc} {
				x, y, _ := f.camera.Project(v)
				tri[k] = vmath.Vec2F{X: (x + 1) / 2 * lw, Y: (1 - y) / 2 * lh}
			}
			c.FillPolygon(tri[:], render.Scale(base, lit).Alpha(s.Opacity))
		}
	})
}

func ndcToPixel(ndc float64, size int) int {
	return int(math.Floor((ndc + 1) / 2 * float64(size)))
}

func toVec32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}
