package parameter

// Scene space shared by the 2D simulations, in logical pixels
const (
	SceneWidth  = 400.0
	SceneHeight = 300.0
)

// Fire source
const (
	// FireBaseOffset is the distance from the scene bottom to the flame base line
	FireBaseOffset = 20.0
	// FireWidth is the horizontal spread of the fuel bed
	FireWidth = 120.0
)

// Flame population
const (
	FlameCap      = 80
	FlamePerFrame = 2

	FlameVXSpread = 0.5 // Total width, so ±0.25
	FlameVYMin    = -4.5
	FlameVYMax    = -2.0
	FlameVYDrag   = 0.99

	FlameDecayMin = 0.008
	FlameDecayMax = 0.02

	FlameSizeMin   = 25.0
	FlameSizeMax   = 60.0
	FlameSizeShape = 0.8 // Multiplier on sin(life*π)

	FlickerSpeedMin = 0.1
	FlickerSpeedMax = 0.25
	FlickerAmpMin   = 0.2
	FlickerAmpMax   = 0.5

	TurbSpeedMin = 0.03
	TurbSpeedMax = 0.07
	TurbAmpMin   = 15.0
	TurbAmpMax   = 35.0

	// FlameDriftGain converts lateral velocity into aged drift
	FlameDriftGain = 50.0
	// FlameAlphaExp shapes draw alpha as life^exp
	FlameAlphaExp = 0.6
	FlameAlphaMax = 0.9
	// FlameGlowScale is the outer glow radius relative to flame size
	FlameGlowScale = 1.5
)

// Ember population
const (
	EmberCap         = 30
	EmberProbability = 0.4

	EmberSpreadFactor = 0.8
	EmberSpawnJitterY = 50.0
	EmberVXSpread     = 2.0
	EmberVYMin        = -6.0
	EmberVYMax        = -2.0
	EmberGravity      = 0.02
	EmberDrag         = 0.99
	EmberDecayMin     = 0.01
	EmberDecayMax     = 0.03
	EmberSizeMin      = 1.0
	EmberSizeMax      = 3.5
	EmberTwinkleMin   = 0.2
	EmberTwinkleMax   = 0.5
	EmberEscapeY      = -20.0
	EmberBrightMin    = 0.7
	EmberGlowScale    = 4.0

	// Perlin wind field applied to embers
	EmberWindAlpha  = 2.0
	EmberWindBeta   = 2.0
	EmberWindOctave = 3
	EmberWindScale  = 0.01  // Spatial frequency, per logical pixel
	EmberWindSpeed  = 0.015 // Field advance per frame
	EmberWindGain   = 0.08  // Lateral acceleration per unit noise
)

// Smoke wisps rising off the fire
const (
	WispCap         = 15
	WispProbability = 0.15

	WispSpreadFactor = 0.5
	WispBaseRise     = 80.0
	WispSpawnJitterY = 40.0
	WispVXSpread     = 0.3
	WispVYMin        = -0.8
	WispVYMax        = -0.3
	WispDecayMin     = 0.003
	WispDecayMax     = 0.007
	WispSizeMin      = 15.0
	WispSizeMax      = 35.0
	WispMaxSizeMin   = 50.0
	WispMaxSizeMax   = 80.0
	WispGrowth       = 0.02
	WispTurbulence   = 30.0
	WispRotSpread    = 0.02
	WispAlpha        = 0.25
	WispTurbSpeedMin = 0.02
	WispTurbSpeedMax = 0.04
	WispEscapeY      = -50.0
)

// Fire backdrop
const (
	FireFadeAlpha    = 0.25
	FireGlowRadius   = 180.0
	FireGlowDrop     = 10.0 // Glow center below the base line
	FireGroundHalfW  = 100.0
	FireGroundAlphaA = 0.3
	FireGroundAlphaB = 0.1
)
