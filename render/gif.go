package render

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"os"

	"golang.org/x/image/draw"
)

// SaveGIF quantizes frames to the Plan9 palette with dithering and writes an animation
// delay is in hundredths of a second per frame
func SaveGIF(path string, frames []image.Image, delay int) error {
	if len(frames) == 0 {
		return fmt.Errorf("save gif %s: no frames", path)
	}
	out := &gif.GIF{}
	for _, frame := range frames {
		p := image.NewPaletted(frame.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(p, p.Bounds(), frame, frame.Bounds().Min)
		out.Image = append(out.Image, p)
		out.Delay = append(out.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save gif %s: %w", path, err)
	}
	if err := gif.EncodeAll(f, out); err != nil {
		f.Close()
		return fmt.Errorf("save gif %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save gif %s: %w", path, err)
	}
	return nil
}
