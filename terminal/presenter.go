// Package terminal presents canvases in a tcell screen using half blocks, two pixels per cell,
// and translates tcell input into stage events
package terminal

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"

	"github.com/lixenwraith/cinefx/render"
	"github.com/lixenwraith/cinefx/stage"
)

// HalfBlock draws the upper pixel as foreground and the lower as background
const HalfBlock = '▀'

// Presenter blits mounted panels into a tcell screen
type Presenter struct {
	screen tcell.Screen
	mode   ColorMode
	scaler draw.Scaler

	frame   *image.RGBA
	scratch map[string]*image.RGBA

	caption string
}

// NewPresenter wraps an initialized screen
func NewPresenter(screen tcell.Screen, mode ColorMode) *Presenter {
	return &Presenter{
		screen:  screen,
		mode:    mode,
		scaler:  draw.ApproxBiLinear,
		scratch: make(map[string]*image.RGBA),
	}
}

// Container returns the drawable area in pixels, two per cell vertically
func (p *Presenter) Container() (int, int) {
	w, h := p.screen.Size()
	return w, h * 2
}

// SetMode switches the color conversion
func (p *Presenter) SetMode(mode ColorMode) {
	p.mode = mode
}

// SetCaption sets a one-line overlay drawn on the bottom row
func (p *Presenter) SetCaption(text string) {
	p.caption = text
}

// Present composes every panel into the frame and shows it
func (p *Presenter) Present(panels []*stage.Panel) {
	w, h := p.Container()
	if w <= 0 || h <= 0 {
		return
	}
	if p.frame == nil || p.frame.Rect.Dx() != w || p.frame.Rect.Dy() != h {
		p.frame = image.NewRGBA(image.Rect(0, 0, w, h))
	} else {
		clear(p.frame.Pix)
	}

	for _, panel := range panels {
		p.compose(panel)
	}
	p.blit()
	p.drawCaption()
	p.screen.Show()
}

// compose scales one panel's canvas into its rect
func (p *Presenter) compose(panel *stage.Panel) {
	canvas := panel.Component.Canvas()
	cw, ch := canvas.Size()
	r := panel.Rect
	if cw == 0 || ch == 0 || r.W <= 0 || r.H <= 0 {
		return
	}

	name := panel.Component.Name()
	src := p.scratch[name]
	if src == nil || src.Rect.Dx() != cw || src.Rect.Dy() != ch {
		src = image.NewRGBA(image.Rect(0, 0, cw, ch))
		p.scratch[name] = src
	}
	canvas.CopyTo(src)

	dr := image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
	if cw == r.W && ch == r.H {
		draw.Copy(p.frame, dr.Min, src, src.Bounds(), draw.Src, nil)
		return
	}
	p.scaler.Scale(p.frame, dr, src, src.Bounds(), draw.Src, nil)
}

func (p *Presenter) blit() {
	w, h := p.Container()
	for row := 0; row < h/2; row++ {
		for x := 0; x < w; x++ {
			top := p.frame.RGBAAt(x, row*2)
			bottom := p.frame.RGBAAt(x, row*2+1)
			style := tcell.StyleDefault.
				Foreground(toTcell(rgbOf(top), p.mode)).
				Background(toTcell(rgbOf(bottom), p.mode))
			p.screen.SetContent(x, row, HalfBlock, nil, style)
		}
	}
}

func (p *Presenter) drawCaption() {
	if p.caption == "" {
		return
	}
	w, h := p.screen.Size()
	if h == 0 {
		return
	}
	style := tcell.StyleDefault.
		Foreground(toTcell(render.RGB{R: 230, G: 230, B: 230}, p.mode)).
		Background(toTcell(render.RGB{}, p.mode))
	x := 0
	for _, r := range p.caption {
		if x >= w {
			break
		}
		p.screen.SetContent(x, h-1, r, nil, style)
		x++
	}
}

func rgbOf(c color.RGBA) render.RGB {
	return render.RGB{R: c.R, G: c.G, B: c.B}
}
