package visual

import "github.com/lixenwraith/cinefx/render"

// Backgrounds and fade overlays
var (
	FireBackground  = render.RGB{R: 8, G: 4, B: 2}
	SmokeBackground = render.RGB{R: 15, G: 18, B: 25}
	WaterBackground = render.RGB{R: 8, G: 20, B: 35}
	CubeBackground  = render.RGB{R: 6, G: 8, B: 14}
)

// Flame temperature bands, keyed by progress (1 - life)
// The first band interpolates by flame temperature instead of progress
var FlameBands = []FlameBand{
	{Until: 0.15, From: render.RGB{R: 255, G: 247, B: 180}, To: render.RGB{R: 255, G: 247, B: 230}},
	{Until: 0.35, From: render.RGB{R: 255, G: 240, B: 180}, To: render.RGB{R: 255, G: 160, B: 30}},
	{Until: 0.60, From: render.RGB{R: 255, G: 160, B: 30}, To: render.RGB{R: 255, G: 60, B: 0}},
	{Until: 1.00, From: render.RGB{R: 255, G: 60, B: 0}, To: render.RGB{R: 135, G: 0, B: 0}},
}

// FlameBand is one piecewise-linear segment of the flame ramp
type FlameBand struct {
	Until    float64
	From, To render.RGB
}

// Fire glow and sparks
var (
	FireGlowCore   = render.RGB{R: 255, G: 100, B: 20}
	FireGlowMid    = render.RGB{R: 255, G: 50, B: 0}
	FireGlowOuter  = render.RGB{R: 150, G: 30, B: 0}
	FireGroundTop  = render.RGB{R: 255, G: 80, B: 20}
	FireGroundLow  = render.RGB{R: 100, G: 30, B: 0}
	FlameEdge      = render.RGB{R: 80, G: 20, B: 0}
	FlameCoreHot   = render.RGB{R: 255, G: 255, B: 240}
	FlameCoreWarm  = render.RGB{R: 255, G: 255, B: 200}
	FlameCoreEdge  = render.RGB{R: 255, G: 200, B: 100}
	EmberGlowInner = render.RGB{R: 255, G: 180, B: 50}
	EmberGlowMid   = render.RGB{R: 255, G: 100, B: 20}
	EmberGlowOuter = render.RGB{R: 255, G: 50, B: 0}
	EmberCore      = render.RGB{R: 255, G: 255, B: 200}
)

// Water
var (
	DropTail      = render.RGB{R: 180, G: 220, B: 255}
	DropHead      = render.RGB{R: 220, G: 240, B: 255}
	Highlight     = render.RGB{R: 255, G: 255, B: 255}
	SplashColor   = render.RGB{R: 200, G: 230, B: 255}
	RippleOuter   = render.RGB{R: 150, G: 200, B: 255}
	RippleInner   = render.RGB{R: 200, G: 230, B: 255}
	PoolTop       = render.RGB{R: 30, G: 80, B: 120}
	PoolMid       = render.RGB{R: 20, G: 60, B: 100}
	PoolBottom    = render.RGB{R: 10, G: 40, B: 70}
	PoolHighlight = render.RGB{R: 150, G: 200, B: 255}
	CausticCenter = render.RGB{R: 100, G: 180, B: 255}
	CausticEdge   = render.RGB{R: 50, G: 100, B: 150}
)

// Smoke emitter glow
var (
	SmokeGlowInner = render.RGB{R: 100, G: 100, B: 110}
	SmokeGlowOuter = render.RGB{R: 50, G: 50, B: 60}
)

// ShardPalette lists shard tints as hex, parsed once by the cube field
var ShardPalette = []string{"#00e5ff", "#b366ff", "#33ff88", "#ffffff", "#e0e8ff"}

// Cube face base colors per dominant object-space axis (x, y, z)
var CubeFaceHex = [3]string{"#1a6bff", "#8a2be2", "#00c8b4"}
