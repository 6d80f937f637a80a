package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/tilewalk/internal/config"
	"github.com/udisondev/tilewalk/internal/model"
	"github.com/udisondev/tilewalk/internal/testutil"
	"github.com/udisondev/tilewalk/internal/world"
)

func newLOS(m *world.Map) *LineOfSight {
	return NewLineOfSight(m, testutil.NewTileData(), config.DefaultPathfinding().LOS)
}

func TestIsVisible_Objects(t *testing.T) {
	tests := []struct {
		name    string
		graphic uint16
		x       int
		want    bool
	}{
		{"wall between", testutil.StaticWall, 4, false},
		{"window between", testutil.StaticWindow, 4, false},
		{"barrel below eye level", testutil.StaticBarrel, 4, true},
		{"decoration", testutil.StaticDecor, 4, true},
		{"wall on observer column", testutil.StaticWall, 1, true},
		{"wall on target column", testutil.StaticWall, 8, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testutil.NewFlatMap(t, 10, 3, 0)
			testutil.AddStatic(t, m, tt.graphic, tt.x, 1, 0)

			los := newLOS(m)
			got := los.IsVisible(model.NewLocation(1, 1, 0), model.NewLocation(8, 1, 0))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsVisible_SamePoint(t *testing.T) {
	m := testutil.NewFlatMap(t, 3, 3, 0)
	testutil.AddStatic(t, m, testutil.StaticWall, 1, 1, 0)

	loc := model.NewLocation(1, 1, 0)
	assert.True(t, newLOS(m).IsVisible(loc, loc))
}

func TestIsVisible_OpenGround(t *testing.T) {
	m := testutil.NewFlatMap(t, 10, 10, 0)
	los := newLOS(m)

	assert.True(t, los.IsVisible(model.NewLocation(0, 0, 0), model.NewLocation(9, 9, 0)))
	assert.True(t, los.IsVisible(model.NewLocation(9, 0, 0), model.NewLocation(0, 7, 0)))
	assert.True(t, los.IsVisible(model.NewLocation(3, 3, 0), model.NewLocation(4, 3, 0)))
}

func TestIsVisible_MobilesDoNotBlock(t *testing.T) {
	m := testutil.NewFlatMap(t, 10, 3, 0)
	for x := 2; x < 8; x++ {
		testutil.AddMobile(t, m, x, 1, 0)
	}

	assert.True(t, newLOS(m).IsVisible(model.NewLocation(1, 1, 0), model.NewLocation(8, 1, 0)))
}

func TestIsVisible_Hill(t *testing.T) {
	m := testutil.NewFlatMap(t, 10, 3, 0)
	for x := 3; x <= 5; x++ {
		for y := range 3 {
			require.NoError(t, m.SetLand(x, y, testutil.LandGrass, 30))
		}
	}

	los := newLOS(m)
	assert.False(t, los.IsVisible(model.NewLocation(1, 1, 0), model.NewLocation(8, 1, 0)))
	assert.False(t, los.IsVisible(model.NewLocation(8, 1, 0), model.NewLocation(1, 1, 0)))
}

func TestIsVisible_UpSlope(t *testing.T) {
	m := world.NewMap(0, 10, 3)
	for x := range 10 {
		for y := range 3 {
			require.NoError(t, m.SetLand(x, y, testutil.LandGrass, x*5))
		}
	}

	// A gentle slope stays under the rising sightline.
	target := model.NewLocation(6, 1, m.Terrain(6, 1).AverageZ())
	assert.True(t, newLOS(m).IsVisible(model.NewLocation(0, 1, 0), target))
}

func TestIsVisible_FromPlatform(t *testing.T) {
	m := testutil.NewFlatMap(t, 6, 5, 0)
	testutil.AddStatic(t, m, testutil.StaticPlatform, 2, 2, 0)

	top := model.NewLocation(2, 2, testutil.PlatformHeight)
	below := model.NewLocation(3, 2, 0)

	los := newLOS(m)
	assert.True(t, los.IsVisible(top, below))
	assert.True(t, los.IsVisible(below, top))

	// Visible, yet out of reach: the platform edge is too high to climb.
	f := newFixture(t, m, below)
	_, ok := f.pf.CanWalk(model.West, below.X, below.Y, below.Z)
	assert.False(t, ok)
	f.requireNoLeaks(t)
}

func TestIsVisible_SameColumn(t *testing.T) {
	m := testutil.NewFlatMap(t, 3, 3, 0)
	ground := model.NewLocation(1, 1, 0)
	roof := model.NewLocation(1, 1, 40)

	los := newLOS(m)
	assert.True(t, los.IsVisible(ground, roof))

	testutil.AddStatic(t, m, testutil.StaticWindow, 1, 1, 20)
	assert.False(t, los.IsVisible(ground, roof))
	assert.False(t, los.IsVisible(roof, ground))
}

func TestObjectBlocksLOS(t *testing.T) {
	los := NewLineOfSight(nil, testutil.NewTileData(), config.DefaultPathfinding().LOS)

	wall := model.NewStatic(1, testutil.StaticWall, model.NewLocation(0, 0, 0))
	highWall := model.NewStatic(2, testutil.StaticWall, model.NewLocation(0, 0, 30))
	decor := model.NewStatic(3, testutil.StaticDecor, model.NewLocation(0, 0, 0))
	door := model.NewItem(4, testutil.ItemDoor, model.NewLocation(0, 0, 0))
	mobile := model.NewMobile(5, testutil.BodyHuman, model.NewLocation(0, 0, 0))
	land := model.NewFlatLand(6, testutil.LandMountain, 0, 0, 0)

	placed := model.NewMulti(7, testutil.StaticWall, model.NewLocation(0, 0, 0))
	preview := model.NewMulti(8, testutil.StaticWall, model.NewLocation(0, 0, 0))
	preview.Preview = true

	tests := []struct {
		name     string
		obj      model.Object
		min, max int
		want     bool
	}{
		{"wall across eye level", wall, 14, 14, true},
		{"wall below sightline", wall, 21, 30, false},
		{"wall touching sightline", wall, 20, 30, true},
		{"wall above sightline", highWall, 0, 29, false},
		{"decoration", decor, 0, 10, false},
		{"door item", door, 5, 5, true},
		{"mobile", mobile, 0, 20, false},
		{"land", land, 0, 20, false},
		{"placed multi", placed, 14, 14, true},
		{"multi preview", preview, 14, 14, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, los.ObjectBlocksLOS(tt.obj, tt.min, tt.max))
		})
	}
}
