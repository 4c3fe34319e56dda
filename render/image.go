package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/blend"
	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/imgio"
)

// Image returns a fresh opaque RGBA snapshot of the backing store
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	c.CopyTo(img)
	return img
}

// CopyTo writes the backing store into dst, clipped to the smaller extent
func (c *Canvas) CopyTo(dst *image.RGBA) {
	b := dst.Bounds()
	w := min(c.width, b.Dx())
	h := min(c.height, b.Dy())
	for y := 0; y < h; y++ {
		off := y * dst.Stride
		for x := 0; x < w; x++ {
			rgb := c.pix[y*c.width+x].RGB()
			i := off + x*4
			dst.Pix[i] = rgb.R
			dst.Pix[i+1] = rgb.G
			dst.Pix[i+2] = rgb.B
			dst.Pix[i+3] = 255
		}
	}
}

// BloomOptions tunes the bright-pass glow
type BloomOptions struct {
	Threshold float64 // Luma in [0,255] below which pixels do not glow
	Radius    float64 // Gaussian blur radius in backing pixels
	Strength  float64 // Multiplier on the blurred highlights
}

// DefaultBloom is a soft glow suited for the fire and caustics
var DefaultBloom = BloomOptions{Threshold: 140, Radius: 6, Strength: 0.8}

// Bloom extracts highlights, blurs them and adds them back over the snapshot
func Bloom(src image.Image, opt BloomOptions) *image.RGBA {
	bright := adjust.Apply(src, func(c color.RGBA) color.RGBA {
		luma := float64(c.R)*0.299 + float64(c.G)*0.587 + float64(c.B)*0.114
		if luma < opt.Threshold {
			return color.RGBA{A: 255}
		}
		return color.RGBA{
			R: clamp(float64(c.R) * opt.Strength),
			G: clamp(float64(c.G) * opt.Strength),
			B: clamp(float64(c.B) * opt.Strength),
			A: 255,
		}
	})
	if opt.Radius > 0 {
		bright = blur.Gaussian(bright, opt.Radius)
	}
	return blend.Add(src, bright)
}

// SavePNG encodes img to path
func SavePNG(path string, img image.Image) error {
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return nil
}
