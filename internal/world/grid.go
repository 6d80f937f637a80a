package world

// Sector grid constants.
// Objects are indexed per sector of SectorSize×SectorSize columns.
const (
	// SectorShift - shift by N bits for 2^N columns per sector (2^3 = 8)
	SectorShift = 3

	// SectorSize - sector side in columns
	SectorSize = 1 << SectorShift

	// SectorMask extracts the local column index inside a sector
	SectorMask = SectorSize - 1
)

// CoordToSectorIndex converts a column coordinate to its sector index.
// Formula: coord >> SectorShift
func CoordToSectorIndex(x, y int) (sx, sy int) {
	return x >> SectorShift, y >> SectorShift
}

// CoordToLocal converts a column coordinate to its offset inside the sector.
func CoordToLocal(x, y int) (lx, ly int) {
	return x & SectorMask, y & SectorMask
}

// SectorsFor returns how many sectors cover a map of width×height columns.
func SectorsFor(width, height int) (sx, sy int) {
	return (width + SectorMask) >> SectorShift, (height + SectorMask) >> SectorShift
}
