package model

// Corner indexes a land tile's four corner heights.
// A tile at (x, y) takes its corners from the heights of (x, y), (x+1, y),
// (x+1, y+1) and (x, y+1).
type Corner uint8

const (
	CornerTop    Corner = iota // (x, y), the tile's own height
	CornerRight                // (x+1, y)
	CornerBottom               // (x+1, y+1)
	CornerLeft                 // (x, y+1)
)

// Land is the terrain slab of one map column.
type Land struct {
	WorldObject

	corners   [4]int
	minZ      int
	averageZ  int
	stretched bool
}

// NewLand creates a terrain slab at (x, y) from its corner heights.
// The slab's Z is its own (top) corner.
func NewLand(objectID uint32, graphic uint16, x, y int, top, right, bottom, left int) *Land {
	l := &Land{
		WorldObject: NewWorldObject(objectID, graphic, NewLocation(x, y, top)),
	}
	l.SetCorners(top, right, bottom, left)
	return l
}

// NewFlatLand creates a terrain slab whose four corners share height z.
func NewFlatLand(objectID uint32, graphic uint16, x, y, z int) *Land {
	return NewLand(objectID, graphic, x, y, z, z, z, z)
}

func (*Land) Kind() Kind { return KindLand }

// SetCorners recomputes the slab geometry from new corner heights.
func (l *Land) SetCorners(top, right, bottom, left int) {
	l.corners = [4]int{top, right, bottom, left}
	l.location.Z = top
	l.minZ = min(top, right, bottom, left)

	// Average along the flatter diagonal.
	if abs(top-bottom) <= abs(left-right) {
		l.averageZ = (top + bottom) >> 1
	} else {
		l.averageZ = (left + right) >> 1
	}

	l.stretched = top != right || top != bottom || top != left
}

// CornerZ returns the height of corner c.
func (l *Land) CornerZ(c Corner) int {
	return l.corners[c&3]
}

// MinZ returns the lowest corner height.
func (l *Land) MinZ() int {
	return l.minZ
}

// AverageZ returns the standing height of the slab.
func (l *Land) AverageZ() int {
	return l.averageZ
}

// Stretched reports whether the slab is sloped (corners differ).
func (l *Land) Stretched() bool {
	return l.stretched
}

// CurrentAverageZ returns the standing height on a sloped slab for a body
// heading in direction d. Diagonal headings read a single corner, cardinal
// headings average two.
func (l *Land) CurrentAverageZ(d Direction) int {
	d &= 7
	result := l.directionZ(int(d>>1+1) & 3)
	if d.IsDiagonal() {
		return result
	}
	return (result + l.directionZ(int(d>>1))) >> 1
}

func (l *Land) directionZ(i int) int {
	switch i {
	case 1:
		return l.corners[CornerBottom]
	case 2:
		return l.corners[CornerRight]
	case 3:
		return l.corners[CornerLeft]
	default:
		return l.corners[CornerTop]
	}
}
