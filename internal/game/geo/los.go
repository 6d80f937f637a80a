package geo

import (
	"github.com/udisondev/tilewalk/internal/config"
	"github.com/udisondev/tilewalk/internal/model"
)

// LineOfSight answers visibility queries between two world positions.
// Not safe for concurrent use (reuses a column buffer).
type LineOfSight struct {
	world   World
	tiles   TileData
	cfg     config.LOS
	objects []model.Object
}

// NewLineOfSight creates a LOS checker over w.
func NewLineOfSight(w World, tiles TileData, cfg config.LOS) *LineOfSight {
	return &LineOfSight{
		world:   w,
		tiles:   tiles,
		cfg:     cfg,
		objects: make([]model.Object, 0, 16),
	}
}

// IsVisible checks line of sight from observer to target.
// Columns strictly between the two are scanned for objects crossing the
// sightline between both eye heights; every column after the observer must
// also keep its terrain below a ramp that depends on which end is higher.
func (l *LineOfSight) IsVisible(observer, target model.Location) bool {
	if observer == target {
		return true
	}

	lo := min(observer.Z, target.Z) + l.cfg.EyeHeight
	hi := max(observer.Z, target.Z) + l.cfg.EyeHeight

	if observer.SameColumn(target) {
		// Only what lies strictly between the two heights can block.
		return !l.columnBlocks(target.X, target.Y, min(observer.Z, target.Z)+1, max(observer.Z, target.Z)-1)
	}

	steps := observer.ChebyshevDistance(target)
	it := NewLineIterator(observer.X, observer.Y, target.X, target.Y)
	it.Next() // observer column

	for i := 1; it.Next(); i++ {
		x, y := it.X(), it.Y()

		if (x != target.X || y != target.Y) && l.columnBlocks(x, y, lo, hi) {
			return false
		}

		land := l.world.Terrain(x, y)
		if land == nil {
			continue
		}
		if !l.groundClear(land.AverageZ(), i, steps, observer.Z, target.Z) {
			return false
		}
	}
	return true
}

// groundClear is the terrain continuity check for the i-th of steps samples.
func (l *LineOfSight) groundClear(ground, i, steps, observerZ, targetZ int) bool {
	switch {
	case observerZ > targetZ:
		return ground <= targetZ+(steps-i)*l.cfg.SteepDrop
	case targetZ > observerZ:
		return ground <= observerZ+i*l.cfg.ShallowRise
	default:
		return ground <= observerZ+l.cfg.FlatTolerance
	}
}

func (l *LineOfSight) columnBlocks(x, y, minZ, maxZ int) bool {
	if minZ > maxZ {
		return false
	}
	l.objects = l.world.AppendObjectsAt(l.objects[:0], x, y)
	defer clear(l.objects)

	for _, obj := range l.objects {
		if l.ObjectBlocksLOS(obj, minZ, maxZ) {
			return true
		}
	}
	return false
}

// ObjectBlocksLOS reports whether obj obstructs a sightline crossing its
// column between losMinZ and losMaxZ. Only impassable or no-shoot statics,
// items and placed multi components block.
func (l *LineOfSight) ObjectBlocksLOS(obj model.Object, losMinZ, losMaxZ int) bool {
	switch o := obj.(type) {
	case *model.Static, *model.Item:
	case *model.Multi:
		if o.Preview {
			return false
		}
	default:
		return false
	}

	tile := l.tiles.Static(obj.Graphic())
	if !tile.IsImpassable() && !tile.IsNoShoot() {
		return false
	}

	z := obj.Z()
	return z <= losMaxZ && z+tile.Height >= losMinZ
}
