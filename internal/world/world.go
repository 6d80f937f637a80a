package world

import (
	"errors"
	"fmt"

	"github.com/udisondev/tilewalk/internal/model"
)

// ErrOutOfBounds is returned for coordinates outside the map.
var ErrOutOfBounds = errors.New("coordinates out of map bounds")

// Map is one facet of the world: a terrain height grid plus a sector index of
// every object stacked on each column.
//
// Not safe for concurrent use: the map is owned by the simulation tick goroutine.
type Map struct {
	index  int
	width  int
	height int

	landGraphic []uint16
	landZ       []int
	hasLand     []bool
	lands       []*model.Land

	sectorsX int
	sectorsY int
	sectors  []*Sector

	objects map[uint32]model.Object
	ids     *ObjectIDGenerator
}

// NewMap creates an empty map of width×height columns without terrain.
func NewMap(index, width, height int) *Map {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	sx, sy := SectorsFor(width, height)
	m := &Map{
		index:       index,
		width:       width,
		height:      height,
		landGraphic: make([]uint16, width*height),
		landZ:       make([]int, width*height),
		hasLand:     make([]bool, width*height),
		lands:       make([]*model.Land, width*height),
		sectorsX:    sx,
		sectorsY:    sy,
		sectors:     make([]*Sector, sx*sy),
		objects:     make(map[uint32]model.Object),
		ids:         NewObjectIDGenerator(),
	}
	for y := range sy {
		for x := range sx {
			m.sectors[y*sx+x] = NewSector(x, y)
		}
	}
	return m
}

// Index returns the facet index (0 is the primary facet).
func (m *Map) Index() int {
	return m.index
}

// Width returns the number of columns along X.
func (m *Map) Width() int {
	return m.width
}

// Height returns the number of columns along Y.
func (m *Map) Height() int {
	return m.height
}

// IDs returns the map's object ID generator.
func (m *Map) IDs() *ObjectIDGenerator {
	return m.ids
}

// InBounds reports whether (x, y) is a column of the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}

// SetLand places a terrain slab of graphic at height z on column (x, y).
// Corner geometry of the slab and of its three neighbours that share the
// corner (x, y) is recomputed.
func (m *Map) SetLand(x, y int, graphic uint16, z int) error {
	if !m.InBounds(x, y) {
		return fmt.Errorf("setting land at (%d, %d): %w", x, y, ErrOutOfBounds)
	}

	i := y*m.width + x
	m.landGraphic[i] = graphic
	m.landZ[i] = z
	m.hasLand[i] = true

	m.rebuildLand(x, y)
	m.rebuildLand(x-1, y)
	m.rebuildLand(x, y-1)
	m.rebuildLand(x-1, y-1)
	return nil
}

// FillLand covers every column with flat terrain of graphic at height z.
func (m *Map) FillLand(graphic uint16, z int) {
	for i := range m.landGraphic {
		m.landGraphic[i] = graphic
		m.landZ[i] = z
		m.hasLand[i] = true
	}
	for y := range m.height {
		for x := range m.width {
			m.rebuildLand(x, y)
		}
	}
}

// ClearLand removes the terrain of column (x, y).
func (m *Map) ClearLand(x, y int) {
	if !m.InBounds(x, y) {
		return
	}
	i := y*m.width + x
	m.hasLand[i] = false
	m.lands[i] = nil
}

// LandZ returns the terrain height of column (x, y).
func (m *Map) LandZ(x, y int) (int, bool) {
	if !m.InBounds(x, y) {
		return 0, false
	}
	i := y*m.width + x
	return m.landZ[i], m.hasLand[i]
}

// rebuildLand recomputes the slab at (x, y) from the heights of the four
// columns that own its corners. Missing neighbours repeat the slab's own height.
func (m *Map) rebuildLand(x, y int) {
	if !m.InBounds(x, y) {
		return
	}
	i := y*m.width + x
	if !m.hasLand[i] {
		return
	}

	top := m.landZ[i]
	right := m.cornerZ(x+1, y, top)
	bottom := m.cornerZ(x+1, y+1, top)
	left := m.cornerZ(x, y+1, top)

	if l := m.lands[i]; l != nil && l.Graphic() == m.landGraphic[i] {
		l.SetCorners(top, right, bottom, left)
		return
	}
	m.lands[i] = model.NewLand(LandIDBase+uint32(i), m.landGraphic[i], x, y, top, right, bottom, left)
}

func (m *Map) cornerZ(x, y, fallback int) int {
	if z, ok := m.LandZ(x, y); ok {
		return z
	}
	return fallback
}

// Terrain returns the terrain slab of column (x, y), or nil when the column
// has no terrain or lies outside the map.
func (m *Map) Terrain(x, y int) *model.Land {
	if !m.InBounds(x, y) {
		return nil
	}
	return m.lands[y*m.width+x]
}

// AppendObjectsAt appends everything stacked on column (x, y) to dst: the
// terrain slab first, then the other objects bottom to top.
func (m *Map) AppendObjectsAt(dst []model.Object, x, y int) []model.Object {
	if !m.InBounds(x, y) {
		return dst
	}
	if land := m.lands[y*m.width+x]; land != nil {
		dst = append(dst, land)
	}
	return append(dst, m.sector(x, y).Column(x, y)...)
}

// ObjectsAt returns a fresh slice with the column stack of (x, y).
func (m *Map) ObjectsAt(x, y int) []model.Object {
	return m.AppendObjectsAt(nil, x, y)
}

func (m *Map) sector(x, y int) *Sector {
	sx, sy := CoordToSectorIndex(x, y)
	return m.sectors[sy*m.sectorsX+sx]
}

// GetSector returns the sector containing column (x, y), nil if out of bounds.
func (m *Map) GetSector(x, y int) *Sector {
	if !m.InBounds(x, y) {
		return nil
	}
	return m.sector(x, y)
}

// AddObject places obj on the column of its location.
// Terrain is set with SetLand, not AddObject.
func (m *Map) AddObject(obj model.Object) error {
	if obj.Kind() == model.KindLand {
		return fmt.Errorf("adding object %d: land is placed with SetLand", obj.ObjectID())
	}
	if !m.InBounds(obj.X(), obj.Y()) {
		return fmt.Errorf("adding object %d at (%d, %d): %w", obj.ObjectID(), obj.X(), obj.Y(), ErrOutOfBounds)
	}
	if _, exists := m.objects[obj.ObjectID()]; exists {
		return fmt.Errorf("adding object %d: duplicate object ID", obj.ObjectID())
	}

	m.objects[obj.ObjectID()] = obj
	m.sector(obj.X(), obj.Y()).Add(obj)
	return nil
}

// RemoveObject removes the object from the map. Returns false if it is unknown.
func (m *Map) RemoveObject(objectID uint32) bool {
	obj, ok := m.objects[objectID]
	if !ok {
		return false
	}
	delete(m.objects, objectID)
	m.sector(obj.X(), obj.Y()).Remove(objectID, obj.X(), obj.Y())
	return true
}

// MoveObject relocates a placed object, keeping the column stacks sorted.
func (m *Map) MoveObject(objectID uint32, loc model.Location) error {
	obj, ok := m.objects[objectID]
	if !ok {
		return fmt.Errorf("moving object %d: not on the map", objectID)
	}
	if !m.InBounds(loc.X, loc.Y) {
		return fmt.Errorf("moving object %d to %v: %w", objectID, loc, ErrOutOfBounds)
	}

	m.sector(obj.X(), obj.Y()).Remove(objectID, obj.X(), obj.Y())
	setLocation(obj, loc)
	m.sector(loc.X, loc.Y).Add(obj)
	return nil
}

// setLocation updates the location through the embedded WorldObject.
func setLocation(obj model.Object, loc model.Location) {
	switch o := obj.(type) {
	case *model.Static:
		o.SetLocation(loc)
	case *model.Item:
		o.SetLocation(loc)
	case *model.Multi:
		o.SetLocation(loc)
	case *model.Mobile:
		o.SetLocation(loc)
	case *model.Player:
		o.SetLocation(loc)
	}
}

// GetObject returns object by ID
func (m *Map) GetObject(objectID uint32) (model.Object, bool) {
	obj, ok := m.objects[objectID]
	return obj, ok
}

// ObjectCount returns total number of placed objects (terrain excluded).
func (m *Map) ObjectCount() int {
	return len(m.objects)
}
