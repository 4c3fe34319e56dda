package parameter

// Smoke column
const (
	SmokeCap         = 50
	SmokeProbability = 0.3
	SmokeSeedCount   = 40
	SmokeSeedSpan    = 1.5 // Seeded heights span this multiple of scene height
	SmokeSeedLifeMin = 0.3

	SmokeSourceDrop   = 30.0 // Emitter below the scene bottom
	SmokeSpawnXSpread = 40.0
	SmokeVXSpread     = 0.3
	SmokeVYMin        = -1.7
	SmokeVYMax        = -0.5
	SmokeVYDrag       = 0.998
	SmokeDecayMin     = 0.002
	SmokeDecayMax     = 0.005
	SmokeBaseSize     = 20.0
	SmokeMaxSizeMin   = 80.0
	SmokeMaxSizeMax   = 140.0
	SmokeRotSpread    = 0.01
	SmokeTurbSpeedMin = 0.01
	SmokeTurbSpeedMax = 0.03
	SmokeTurbAmpMin   = 20.0
	SmokeTurbAmpMax   = 50.0
	SmokeOpacityMin   = 0.4
	SmokeOpacityMax   = 0.7
	SmokeGrayMin      = 60.0
	SmokeGrayMax      = 100.0
	SmokeGrayAging    = 60.0
	SmokeAlphaExp     = 0.7
	SmokeEscapeY      = -100.0

	// Puff composition
	SmokeLayers       = 4
	SmokeLayerOffset  = 0.3
	SmokeLayerBase    = 0.6
	SmokeLayerGrowth  = 0.15
	SmokeFadeAlpha    = 0.08
	SmokeSourceRadius = 80.0
)
