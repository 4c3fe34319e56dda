package parameter

import "time"

// Camera
const (
	CameraFrustum = 4.0 // Visible world height of the orthographic camera
	CameraEyeZ    = 10.0
	CameraNear    = 0.1
	CameraFar     = 100.0
)

// Cube field layout and physics
const (
	CubeCount      = 8
	CubeRingX      = 3.6
	CubeRingY      = 2.2
	CubeSeedStep   = 2.0
	CubeBaseScale  = 0.9
	CubeHalfSize   = 0.5   // Unit cube half extent before scaling
	CubeFallbackDT = 0.016 // Drag sample interval when timestamps coincide
	CubeMinDragDT  = 0.001

	CubeBoundX = 4.4
	CubeBoundY = 3.2
	CubeBoundZ = 5.0

	CubeDamping     = 0.96
	CubeRestitution = 0.7
	CubeMaxSpeed    = 12.0
	CubeRestSpeedSq = 1e-4

	CubeSpinX = 0.25 // Idle rotation, radians per second
	CubeSpinY = 0.35

	// CubeContactDistance and CubeShatterSpeed gate destructive collisions
	CubeContactDistance = 0.85
	CubeShatterSpeed    = 1.5

	CubeHoverScale = 1.15
	CubePressScale = 1.2
	// CubeDragGain maps NDC deltas to world units
	CubeDragGain = 4.0

	// Spring smoothing for hover/press scale
	CubeSpringFreq    = 6.0
	CubeSpringDamping = 1.0
)

// Shards
const (
	ShardMin         = 40
	ShardExtra       = 16 // Count is ShardMin + rand[0, ShardExtra)
	ShardTemplates   = 10
	ShardSpawnSpread = 0.4
	ShardScaleMin    = 0.6
	ShardScaleMax    = 1.4
	ShardSpeedMin    = 1.5
	ShardSpeedMax    = 4.0
	ShardSpinSpread  = 8.0
	ShardLifeMin     = 3.0
	ShardLifeMax     = 5.0
	ShardGravityMin  = -3.0
	ShardGravityMax  = -2.0
	ShardDamping     = 0.98
	ShardRadiusMin   = 0.08
	ShardRadiusMax   = 0.14
	ShardJitterMin   = 0.7 // Per-vertex template distortion
	ShardJitterMax   = 1.3
	ShardAlpha       = 0.6
)

// Frame timing
const (
	FrameRate   = 60
	FramePeriod = time.Second / FrameRate
	// MaxFrameDelta bounds dt after stalls so bodies do not tunnel
	MaxFrameDelta = 0.1
)
