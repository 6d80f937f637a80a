package geo

import (
	"testing"

	"github.com/udisondev/tilewalk/internal/config"
	"github.com/udisondev/tilewalk/internal/model"
	"github.com/udisondev/tilewalk/internal/testutil"
	"github.com/udisondev/tilewalk/internal/world"
)

func benchPathfinder(b *testing.B, m *world.Map, start model.Location) *Pathfinder {
	b.Helper()

	clock := testutil.NewManualClock()
	player := testutil.NewPlayer(start, clock)
	pf := NewPathfinder(m, testutil.NewTileData(), player, config.DefaultPathfinding())
	player.SetStepValidator(pf.ValidateStep)
	return pf
}

// BenchmarkGetPathTo_Open measures a 40-tile search on open ground.
// Pools are warm after the first iteration.
func BenchmarkGetPathTo_Open(b *testing.B) {
	m := testutil.NewFlatMap(b, 64, 64, 0)
	pf := benchPathfinder(b, m, model.NewLocation(2, 2, 0))

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		if _, ok := pf.GetPathTo(42, 30, 0, 0); !ok {
			b.Fatal("no path")
		}
	}
}

// BenchmarkGetPathTo_Wall measures a search forced around a long wall.
func BenchmarkGetPathTo_Wall(b *testing.B) {
	m := testutil.NewFlatMap(b, 64, 64, 0)
	for y := 0; y < 50; y++ {
		testutil.AddWall(b, m, [2]int{32, y})
	}
	pf := benchPathfinder(b, m, model.NewLocation(20, 10, 0))

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		if _, ok := pf.GetPathTo(44, 10, 0, 0); !ok {
			b.Fatal("no path")
		}
	}
}

// BenchmarkCanWalk measures a single step probe over a stacked column.
// Expected: 0 allocs/op.
func BenchmarkCanWalk(b *testing.B) {
	m := testutil.NewFlatMap(b, 8, 8, 0)
	testutil.AddStatic(b, m, testutil.StaticDecor, 3, 3, 0)
	testutil.AddStatic(b, m, testutil.StaticPlatform, 3, 3, 40)
	pf := benchPathfinder(b, m, model.NewLocation(2, 3, 0))

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		pf.CanWalk(model.East, 2, 3, 0)
	}
}

// BenchmarkIsVisible measures a 30-tile diagonal sightline.
func BenchmarkIsVisible(b *testing.B) {
	m := testutil.NewFlatMap(b, 40, 40, 0)
	los := NewLineOfSight(m, testutil.NewTileData(), config.DefaultPathfinding().LOS)
	from, to := model.NewLocation(2, 2, 0), model.NewLocation(32, 25, 0)

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		los.IsVisible(from, to)
	}
}
