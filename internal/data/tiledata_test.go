package data

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTileData = `
land:
  - graphic: 0x0003
    name: grass
  - graphic: 0x00A8
    name: water
    flags: [impassable, wet]
  - graphic: 0x0244
    name: rock
    flags: [impassable, no_diagonal]
statics:
  - graphic: 0x0080
    name: stone wall
    flags: [impassable, no_shoot]
    height: 20
    weight: 255
  - graphic: 0x0751
    name: stairs
    flags: [surface, bridge]
    height: 5
  - graphic: 0x0675
    name: door
    flags: [impassable, door]
    height: 20
`

func TestParseTileData(t *testing.T) {
	td, err := ParseTileData(strings.NewReader(sampleTileData))
	require.NoError(t, err)

	lands, statics := td.Counts()
	assert.Equal(t, 3, lands)
	assert.Equal(t, 3, statics)

	grass := td.Land(0x0003)
	assert.Equal(t, "grass", grass.Name)
	assert.False(t, grass.IsImpassable())

	water := td.Land(0x00A8)
	assert.True(t, water.IsImpassable())
	assert.True(t, water.IsWet())

	assert.True(t, td.Land(0x0244).IsNoDiagonal())

	wall := td.Static(0x0080)
	assert.True(t, wall.IsImpassable())
	assert.True(t, wall.IsNoShoot())
	assert.Equal(t, 20, wall.Height)
	assert.Equal(t, 255, wall.Weight)

	stairs := td.Static(0x0751)
	assert.True(t, stairs.IsSurface())
	assert.True(t, stairs.IsBridge())
	assert.False(t, stairs.IsImpassable())

	assert.True(t, td.Static(0x0675).IsDoor())
}

func TestTileData_UnknownGraphicIsZero(t *testing.T) {
	td := NewTileData()

	assert.Equal(t, LandTile{}, td.Land(0x1234))
	assert.Equal(t, StaticTile{}, td.Static(0x1234))
}

func TestParseTileData_UnknownFlag(t *testing.T) {
	_, err := ParseTileData(strings.NewReader(`
statics:
  - graphic: 1
    flags: [sticky]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sticky")
}

func TestParseTileData_NegativeHeight(t *testing.T) {
	_, err := ParseTileData(strings.NewReader(`
statics:
  - graphic: 1
    height: -3
`))
	require.Error(t, err)
}

func TestParseTileData_Empty(t *testing.T) {
	td, err := ParseTileData(strings.NewReader(""))
	require.NoError(t, err)

	lands, statics := td.Counts()
	assert.Zero(t, lands)
	assert.Zero(t, statics)
}

func TestLoadTileData_PlainAndCompressed(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "tiledata.yaml")
	require.NoError(t, os.WriteFile(plain, []byte(sampleTileData), 0o644))

	packed := filepath.Join(dir, "tiledata.yaml.zst")
	require.NoError(t, WriteCompressedAsset(packed, []byte(sampleTileData)))

	for _, path := range []string{plain, packed} {
		td, err := LoadTileData(path)
		require.NoError(t, err, path)
		assert.Equal(t, 20, td.Static(0x0080).Height, path)
	}
}

func TestOpenAsset_UnknownFormat(t *testing.T) {
	_, err := OpenAsset(filepath.Join(t.TempDir(), "tiles.json"))
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestOpenAsset_Missing(t *testing.T) {
	_, err := LoadTileData(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
