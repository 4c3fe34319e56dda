// fx-snapshot renders scenes headlessly and writes PNG frames and an optional GIF
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/cinefx/cubefield"
	"github.com/lixenwraith/cinefx/parameter"
	"github.com/lixenwraith/cinefx/render"
	"github.com/lixenwraith/cinefx/scene"
	"github.com/lixenwraith/cinefx/stage"
)

type options struct {
	scene  string
	frames int
	every  int
	width  int
	height int
	dpr    float64
	seed   int64
	out    string
	bloom  bool
	gif    bool
	fling  bool
}

func main() {
	var o options
	flag.StringVar(&o.scene, "scene", "fire", "scene: fire, smoke, water, cubes or all")
	flag.IntVar(&o.frames, "frames", 180, "frames to simulate")
	flag.IntVar(&o.every, "every", 30, "write a PNG every N frames, 0 for last only")
	flag.IntVar(&o.width, "width", 400, "container width in pixels")
	flag.IntVar(&o.height, "height", 300, "container height in pixels")
	flag.Float64Var(&o.dpr, "dpr", 1, "device pixel ratio, capped at 2")
	flag.Int64Var(&o.seed, "seed", time.Now().UnixNano(), "random seed")
	flag.StringVar(&o.out, "out", "snapshots", "output directory")
	flag.BoolVar(&o.bloom, "bloom", false, "apply bloom to written frames")
	flag.BoolVar(&o.gif, "gif", false, "also write an animated GIF of every frame")
	flag.BoolVar(&o.fling, "fling", false, "cubes: throw the first cube into its neighbour")
	flag.Parse()

	if err := run(o); err != nil {
		fmt.Fprintf(os.Stderr, "fx-snapshot: %v\n", err)
		os.Exit(1)
	}
}

func run(o options) error {
	if o.frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", o.frames)
	}
	if err := os.MkdirAll(o.out, 0o755); err != nil {
		return fmt.Errorf("output dir: %w", err)
	}

	comps, err := scene.Build(o.scene, o.seed, scene.Hooks{})
	if err != nil {
		return err
	}
	st := stage.New(16)
	for _, c := range comps {
		if err := st.Mount(c); err != nil {
			return err
		}
	}
	defer func() {
		if err := st.UnmountAll(); err != nil {
			log.Printf("fx-snapshot: %v", err)
		}
	}()
	st.Post(stage.Resize(o.width, o.height, o.dpr))

	var frames []image.Image
	written := 0
	st.OnFrame = func(panels []*stage.Panel) {
		n := st.Frames()
		if o.fling && n == 1 {
			fling(panels)
		}
		last := n == o.frames
		snap := o.every > 0 && n%o.every == 0
		if !snap && !last && !o.gif {
			return
		}
		img := compose(panels, o.width, o.height, o.dpr)
		if o.gif {
			frames = append(frames, img)
		}
		if snap || last {
			var out image.Image = img
			if o.bloom {
				out = render.Bloom(img, render.DefaultBloom)
			}
			path := filepath.Join(o.out, fmt.Sprintf("%s-%04d.png", o.scene, n))
			if err := render.SavePNG(path, out); err != nil {
				log.Printf("fx-snapshot: %v", err)
				return
			}
			written++
		}
	}

	for i := 0; i < o.frames; i++ {
		st.Step(parameter.FramePeriod.Seconds())
	}

	if o.gif {
		path := filepath.Join(o.out, o.scene+".gif")
		if err := render.SaveGIF(path, frames, int(parameter.FramePeriod/(10*time.Millisecond))); err != nil {
			return err
		}
		fmt.Println("wrote", path)
	}
	fmt.Printf("wrote %d frames to %s\n", written, o.out)
	return nil
}

// compose places each panel's backing store at its rect, scaled by dpr
func compose(panels []*stage.Panel, w, h int, dpr float64) *image.RGBA {
	dpr = min(max(dpr, 1), 2)
	full := image.NewRGBA(image.Rect(0, 0, int(float64(w)*dpr), int(float64(h)*dpr)))
	for _, p := range panels {
		src := p.Component.Canvas().Image()
		origin := image.Pt(int(float64(p.Rect.X)*dpr), int(float64(p.Rect.Y)*dpr))
		b := src.Bounds()
		for y := 0; y < b.Dy(); y++ {
			row := full.PixOffset(origin.X, origin.Y+y)
			if origin.Y+y >= full.Rect.Dy() {
				break
			}
			n := min(b.Dx(), full.Rect.Dx()-origin.X) * 4
			copy(full.Pix[row:row+n], src.Pix[y*src.Stride:y*src.Stride+n])
		}
	}
	return full
}

// fling drags the first cube toward its ring neighbour and releases it fast enough to shatter
func fling(panels []*stage.Panel) {
	for _, p := range panels {
		f, ok := p.Component.(*cubefield.Field)
		if !ok || len(f.Cubes()) < 2 {
			continue
		}
		a, b := f.Cubes()[0], f.Cubes()[1]
		halfW, halfH := f.Camera().HalfExtents()
		ax, ay := a.Pos.X/halfW, a.Pos.Y/halfH
		t0 := time.Now()
		f.PointerDownNDC(ax, ay, t0)
		// Park left of the neighbour, then flick right
		gain := parameter.CubeDragGain
		tx := ax + (b.Pos.X-1.5-a.Pos.X)/gain
		ty := ay + (b.Pos.Y-a.Pos.Y)/gain
		f.PointerMoveNDC(tx, ty, t0.Add(100*time.Millisecond))
		f.PointerMoveNDC(tx+0.1/gain, ty, t0.Add(110*time.Millisecond))
		f.PointerUpNDC()
		log.Printf("fx-snapshot: flung cube %d toward cube %d", a.ID, b.ID)
	}
}
