package world

import (
	"testing"

	"github.com/udisondev/tilewalk/internal/model"
)

// BenchmarkMap_AppendObjectsAt measures a column query with a reused buffer.
// Expected: 0 allocs/op.
func BenchmarkMap_AppendObjectsAt(b *testing.B) {
	m := NewMap(0, 64, 64)
	m.FillLand(0x3, 0)
	for z := range 6 {
		_ = m.AddObject(model.NewStatic(m.IDs().NextStaticID(), 0x10, model.NewLocation(10, 10, z*5)))
	}

	buf := make([]model.Object, 0, 16)

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		buf = m.AppendObjectsAt(buf[:0], 10, 10)
	}
}

// BenchmarkMap_MoveObject measures relocation across sector boundaries.
func BenchmarkMap_MoveObject(b *testing.B) {
	m := NewMap(0, 64, 64)
	mob := model.NewMobile(m.IDs().NextMobileID(), 0x190, model.NewLocation(7, 7, 0))
	_ = m.AddObject(mob)

	locs := [2]model.Location{model.NewLocation(8, 8, 0), model.NewLocation(7, 7, 0)}

	b.ResetTimer()
	b.ReportAllocs()

	for i := range b.N {
		_ = m.MoveObject(mob.ObjectID(), locs[i&1])
	}
}
