package world

// ObjectIDGenerator generates unique object IDs for map entities.
//
// ID ranges (convention):
//
//	0x00000000 - 0x0FFFFFFF: Reserved (0 = invalid)
//	0x10000000 - 0x1FFFFFFF: Players
//	0x20000000 - 0x2FFFFFFF: Mobiles
//	0x30000000 - 0x3FFFFFFF: Items and multi components
//	0x40000000 - 0x4FFFFFFF: Statics
//	0x50000000 - 0xFFFFFFFF: Land (0x50000000 + y*width + x)
type ObjectIDGenerator struct {
	nextPlayerID uint32
	nextMobileID uint32
	nextItemID   uint32
	nextStaticID uint32
}

// LandIDBase is the first object ID of terrain slabs.
const LandIDBase uint32 = 0x50000000

// NewObjectIDGenerator creates a new ID generator.
func NewObjectIDGenerator() *ObjectIDGenerator {
	return &ObjectIDGenerator{
		nextPlayerID: 0x10000000,
		nextMobileID: 0x20000000,
		nextItemID:   0x30000000,
		nextStaticID: 0x40000000,
	}
}

// NextPlayerID generates next unique player object ID.
func (g *ObjectIDGenerator) NextPlayerID() uint32 {
	g.nextPlayerID++
	return g.nextPlayerID
}

// NextMobileID generates next unique mobile object ID.
func (g *ObjectIDGenerator) NextMobileID() uint32 {
	g.nextMobileID++
	return g.nextMobileID
}

// NextItemID generates next unique item object ID.
func (g *ObjectIDGenerator) NextItemID() uint32 {
	g.nextItemID++
	return g.nextItemID
}

// NextStaticID generates next unique static object ID.
func (g *ObjectIDGenerator) NextStaticID() uint32 {
	g.nextStaticID++
	return g.nextStaticID
}
