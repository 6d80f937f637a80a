package testutil

import (
	"testing"

	"github.com/udisondev/tilewalk/internal/model"
	"github.com/udisondev/tilewalk/internal/world"
)

// NewFlatMap создаёт карту width×height, покрытую травой на высоте z.
func NewFlatMap(t testing.TB, width, height, z int) *world.Map {
	t.Helper()

	m := world.NewMap(0, width, height)
	m.FillLand(LandGrass, z)
	return m
}

// AddStatic ставит статик graphic в (x, y, z).
func AddStatic(t testing.TB, m *world.Map, graphic uint16, x, y, z int) *model.Static {
	t.Helper()

	s := model.NewStatic(m.IDs().NextStaticID(), graphic, model.NewLocation(x, y, z))
	if err := m.AddObject(s); err != nil {
		t.Fatalf("AddStatic(%#04x, %d, %d): %v", graphic, x, y, err)
	}
	return s
}

// AddWall ставит стену высотой WallHeight на уровне земли в каждую из клеток.
func AddWall(t testing.TB, m *world.Map, cells ...[2]int) {
	t.Helper()

	for _, c := range cells {
		z, _ := m.LandZ(c[0], c[1])
		AddStatic(t, m, StaticWall, c[0], c[1], z)
	}
}

// AddItem кладёт предмет graphic в (x, y, z).
func AddItem(t testing.TB, m *world.Map, graphic uint16, x, y, z int, locked bool) *model.Item {
	t.Helper()

	it := model.NewItem(m.IDs().NextItemID(), graphic, model.NewLocation(x, y, z))
	it.Locked = locked
	if err := m.AddObject(it); err != nil {
		t.Fatalf("AddItem(%#04x, %d, %d): %v", graphic, x, y, err)
	}
	return it
}

// AddMobile ставит моба в (x, y, z).
func AddMobile(t testing.TB, m *world.Map, x, y, z int) *model.Mobile {
	t.Helper()

	mob := model.NewMobile(m.IDs().NextMobileID(), 0x0190, model.NewLocation(x, y, z))
	if err := m.AddObject(mob); err != nil {
		t.Fatalf("AddMobile(%d, %d): %v", x, y, err)
	}
	return mob
}
