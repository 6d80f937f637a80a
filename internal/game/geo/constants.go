package geo

// Height model (Z units).
const (
	// DefaultBlockHeight is the minimum headroom above a landing surface.
	DefaultBlockHeight = 16
	// DefaultCharacterHeight is the vertical span a standing mobile occupies.
	DefaultCharacterHeight = 16

	// MinZ is the "no landing" marker and the floor of the standable band.
	MinZ = -128
	// SentinelZ bounds the top of every sorted column.
	SentinelZ = 128

	// stepClearance is added to the top of the standable band.
	stepClearance = 2
	// flyingSnapDistance: a flying avatar lands on a no-diagonal slab this close.
	flyingSnapDistance = 25
)

// Search costs.
const (
	CostStraight = 1
	CostDiagonal = 2
	CostTurn     = 1
)

// Terrain graphics that are never drawn nor stood on.
const (
	landNoDrawMin       = 0x01AE
	landNoDrawMax       = 0x01B5
	landNoDrawVoid      = 0x0002
	landNoDrawBlackVoid = 0x01DB
)
