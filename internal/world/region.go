package world

import (
	"slices"

	"github.com/udisondev/tilewalk/internal/model"
)

// Sector holds the stacked objects of SectorSize×SectorSize columns.
// Each column stack is kept sorted by Z, bottom to top; objects with equal Z
// keep their insertion order.
type Sector struct {
	sx, sy int

	columns [SectorSize * SectorSize][]model.Object
	count   int

	// version is incremented on every Add/Remove.
	version uint64
}

// NewSector creates an empty sector.
func NewSector(sx, sy int) *Sector {
	return &Sector{sx: sx, sy: sy}
}

// SX returns sector X index
func (s *Sector) SX() int {
	return s.sx
}

// SY returns sector Y index
func (s *Sector) SY() int {
	return s.sy
}

// Version returns current sector version (incremented on Add/Remove).
func (s *Sector) Version() uint64 {
	return s.version
}

// ObjectCount returns the number of objects in the sector.
func (s *Sector) ObjectCount() int {
	return s.count
}

// Add inserts obj into the stack of its column.
func (s *Sector) Add(obj model.Object) {
	lx, ly := CoordToLocal(obj.X(), obj.Y())
	col := s.columns[ly*SectorSize+lx]

	i := len(col)
	for i > 0 && col[i-1].Z() > obj.Z() {
		i--
	}
	s.columns[ly*SectorSize+lx] = slices.Insert(col, i, obj)

	s.count++
	s.version++
}

// Remove deletes the object with objectID from the column (x, y).
// Returns false if the object is not there.
func (s *Sector) Remove(objectID uint32, x, y int) bool {
	lx, ly := CoordToLocal(x, y)
	idx := ly*SectorSize + lx
	col := s.columns[idx]

	i := slices.IndexFunc(col, func(o model.Object) bool { return o.ObjectID() == objectID })
	if i < 0 {
		return false
	}
	s.columns[idx] = slices.Delete(col, i, i+1)

	s.count--
	s.version++
	return true
}

// Column returns the stack of column (x, y), bottom to top.
// IMPORTANT: Returned slice is owned by the sector — DO NOT modify.
func (s *Sector) Column(x, y int) []model.Object {
	lx, ly := CoordToLocal(x, y)
	return s.columns[ly*SectorSize+lx]
}

// ForEachObject iterates over all objects in this sector.
// If fn returns false, iteration stops.
func (s *Sector) ForEachObject(fn func(model.Object) bool) {
	for _, col := range s.columns {
		for _, obj := range col {
			if !fn(obj) {
				return
			}
		}
	}
}

// Clear removes all objects from this sector.
func (s *Sector) Clear() {
	for i := range s.columns {
		s.columns[i] = nil
	}
	s.count = 0
	s.version++
}
