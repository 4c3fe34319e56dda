package parameter

// Pool and drops
const (
	PoolDepth = 80.0 // Pool line sits this far above the scene bottom

	DropInitial     = 8
	DropMax         = 10
	DropProbability = 0.1
	DropSeedSpan    = 0.7 // Initial drops placed within this fraction of scene height

	DropXSpread    = 80.0
	DropSpawnY     = -20.0
	DropVYMin      = 6.0
	DropVYMax      = 10.0
	DropGravity    = 0.4
	DropVXSpread   = 1.0
	DropSizeMin    = 3.0
	DropSizeMax    = 7.0
	DropLengthMin  = 15.0
	DropLengthMax  = 35.0
	DropOpacityMin = 0.6
	DropOpacityMax = 1.0
	DropContactPad = 5.0

	// DropDecay ages a falling drop so its streak thins on the way down; reset on contact
	DropDecay = 0.004
)

// Splashes
const (
	SplashMin        = 5
	SplashExtra      = 5 // Count is SplashMin + rand[0, SplashExtra)
	SplashVXSpread   = 6.0
	SplashVYMin      = -8.0
	SplashVYMax      = -3.0
	SplashSizeMin    = 1.0
	SplashSizeMax    = 4.0
	SplashDecayMin   = 0.03
	SplashDecayMax   = 0.05
	SplashGravity    = 0.3
	SplashDrag       = 0.98
	SplashBounce     = -0.3
	SplashCap        = 512
	RippleCap        = 64
	RippleDrop       = 10.0 // Ripple center below the pool line
	RippleRadius0    = 5.0
	RippleMaxMin     = 60.0
	RippleMaxMax     = 100.0
	RippleSpeedMin   = 1.5
	RippleSpeedMax   = 2.0
	RippleFlatOuter  = 0.3
	RippleFlatInnerX = 0.7
	RippleFlatInnerY = 0.2
)

// Pool surface
const (
	WaterTimeStep   = 0.02
	WaterFadeAlpha  = 0.3
	WaveFreqA       = 0.03
	WaveSpeedA      = 2.0
	WaveAmpA        = 3.0
	WaveFreqB       = 0.05
	WaveSpeedB      = 3.0
	WaveAmpB        = 2.0
	WaveFillStep    = 10.0
	WaveSampleStep  = 5.0
	CausticCount    = 5
	CausticRadius   = 40.0
	CausticSwayX    = 20.0
	CausticSwayY    = 10.0
	CausticDepth    = 30.0
	CausticSwayRate = 0.7
)
