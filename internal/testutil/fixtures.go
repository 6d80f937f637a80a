package testutil

import (
	"github.com/udisondev/tilewalk/internal/data"
)

// Графика тестового tiledata.
const (
	LandGrass    uint16 = 0x0003
	LandWater    uint16 = 0x00A8
	LandMountain uint16 = 0x0220
	LandNoDraw   uint16 = 0x0002

	StaticWall     uint16 = 0x0080
	StaticPlatform uint16 = 0x0B90
	StaticStairs   uint16 = 0x0753
	StaticBarrel   uint16 = 0x0E77
	StaticWindow   uint16 = 0x0D3C
	StaticDecor    uint16 = 0x0B3F
	ItemDoor       uint16 = 0x0675
	ItemInternal   uint16 = 0x0001
)

// Высоты тестовых статиков.
const (
	WallHeight     = 20
	PlatformHeight = 20
	StairsHeight   = 5
	BarrelHeight   = 10
)

// NewTileData возвращает tiledata с записями для всей тестовой графики.
// Стены и двери тяжёлые (weight 255), чтобы мёртвый аватар проходил только двери.
func NewTileData() *data.TileData {
	td := data.NewTileData()

	td.SetLand(LandGrass, data.LandTile{Name: "grass"})
	td.SetLand(LandWater, data.LandTile{Name: "water", Flags: data.FlagImpassable | data.FlagWet})
	td.SetLand(LandMountain, data.LandTile{Name: "mountain", Flags: data.FlagImpassable})
	td.SetLand(LandNoDraw, data.LandTile{Name: "nodraw"})

	td.SetStatic(StaticWall, data.StaticTile{
		Name: "wall", Flags: data.FlagImpassable, Height: WallHeight, Weight: 255,
	})
	td.SetStatic(StaticPlatform, data.StaticTile{
		Name: "platform", Flags: data.FlagSurface, Height: PlatformHeight, Weight: 255,
	})
	td.SetStatic(StaticStairs, data.StaticTile{
		Name: "stairs", Flags: data.FlagSurface | data.FlagBridge, Height: StairsHeight, Weight: 255,
	})
	td.SetStatic(StaticBarrel, data.StaticTile{
		Name: "barrel", Flags: data.FlagImpassable, Height: BarrelHeight, Weight: 50,
	})
	td.SetStatic(StaticWindow, data.StaticTile{
		Name: "window", Flags: data.FlagNoShoot, Height: WallHeight, Weight: 255,
	})
	td.SetStatic(StaticDecor, data.StaticTile{Name: "flowers", Height: 2, Weight: 1})
	td.SetStatic(ItemDoor, data.StaticTile{
		Name: "door", Flags: data.FlagImpassable | data.FlagDoor, Height: WallHeight, Weight: 255,
	})

	td.SetStatic(ItemInternal, data.StaticTile{
		Name: "internal", Flags: data.FlagImpassable | data.FlagInternal, Height: WallHeight, Weight: 255,
	})

	return td
}
