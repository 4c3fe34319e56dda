package render

import "math"

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Color is a straight-alpha color, channels in [0,255], A in [0,1]
// Channel values outside [0,255] are tolerated and clamped on composite
type Color struct {
	R, G, B float64
	A       float64
}

// RGBA builds a Color from canvas-style rgba() components
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Alpha lifts an opaque RGB into a Color with alpha a
func (c RGB) Alpha(a float64) Color {
	return Color{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: a}
}

// WithAlpha returns c with alpha scaled by k
func (c Color) WithAlpha(k float64) Color {
	c.A *= k
	return c
}

// ColorAt implements Paint for solid fills
func (c Color) ColorAt(x, y float64) Color {
	return c
}

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v + 0.5)
}

// ToRGB drops alpha and clamps channels
func (c Color) ToRGB() RGB {
	return RGB{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B)}
}

// LerpColor interpolates all four channels, t clamped to [0,1]
func LerpColor(a, b Color, t float64) Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

// Lerp linearly interpolates between two colors
// t=0 returns a, t=1 returns b
func Lerp(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return RGB{
		R: uint8(float64(a.R) + t*float64(int(b.R)-int(a.R))),
		G: uint8(float64(a.G) + t*float64(int(b.G)-int(a.G))),
		B: uint8(float64(a.B) + t*float64(int(b.B)-int(a.B))),
	}
}

// Scale multiplies all channels by factor, clamped
func Scale(c RGB, factor float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}

// Pixel is one canvas sample, float channels kept in [0,255]
type Pixel struct {
	R, G, B float32
}

// RGB quantizes the pixel
func (p Pixel) RGB() RGB {
	return RGB{R: clamp(float64(p.R)), G: clamp(float64(p.G)), B: clamp(float64(p.B))}
}

// Luma is Rec. 601 brightness in [0,255]
func (p Pixel) Luma() float64 {
	return float64(p.R)*0.299 + float64(p.G)*0.587 + float64(p.B)*0.114
}

// blendOver is source-over: dst*(1-a) + src*a
func blendOver(dst Pixel, src Color, a float64) Pixel {
	inv := 1.0 - a
	return Pixel{
		R: float32(math.Min(255, math.Max(0, float64(dst.R)*inv+src.R*a))),
		G: float32(math.Min(255, math.Max(0, float64(dst.G)*inv+src.G*a))),
		B: float32(math.Min(255, math.Max(0, float64(dst.B)*inv+src.B*a))),
	}
}

// blendAdd is the canvas 'lighter' operator, saturating at 255
func blendAdd(dst Pixel, src Color, a float64) Pixel {
	return Pixel{
		R: float32(math.Min(255, float64(dst.R)+math.Max(0, src.R)*a)),
		G: float32(math.Min(255, float64(dst.G)+math.Max(0, src.G)*a)),
		B: float32(math.Min(255, float64(dst.B)+math.Max(0, src.B)*a)),
	}
}
