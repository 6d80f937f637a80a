package data

import (
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"
)

// LandTile — запись tiledata для графики земли.
type LandTile struct {
	Name  string
	Flags TileFlag
}

func (t LandTile) IsImpassable() bool { return t.Flags.Has(FlagImpassable) }
func (t LandTile) IsWet() bool        { return t.Flags.Has(FlagWet) }
func (t LandTile) IsNoDiagonal() bool { return t.Flags.Has(FlagNoDiagonal) }

// StaticTile — запись tiledata для графики статиков и предметов.
type StaticTile struct {
	Name   string
	Flags  TileFlag
	Height int
	Weight int
}

func (t StaticTile) IsImpassable() bool { return t.Flags.Has(FlagImpassable) }
func (t StaticTile) IsSurface() bool    { return t.Flags.Has(FlagSurface) }
func (t StaticTile) IsBridge() bool     { return t.Flags.Has(FlagBridge) }
func (t StaticTile) IsWet() bool        { return t.Flags.Has(FlagWet) }
func (t StaticTile) IsDoor() bool       { return t.Flags.Has(FlagDoor) }
func (t StaticTile) IsInternal() bool   { return t.Flags.Has(FlagInternal) }
func (t StaticTile) IsNoShoot() bool    { return t.Flags.Has(FlagNoShoot) }

// TileData is a read-only lookup of tile records keyed by graphic id.
// Unknown graphics resolve to the zero record (no flags, no height).
type TileData struct {
	lands   map[uint16]LandTile
	statics map[uint16]StaticTile
}

// NewTileData creates an empty table.
func NewTileData() *TileData {
	return &TileData{
		lands:   make(map[uint16]LandTile),
		statics: make(map[uint16]StaticTile),
	}
}

// Land returns the land record for graphic.
func (t *TileData) Land(graphic uint16) LandTile {
	return t.lands[graphic]
}

// Static returns the static/item record for graphic.
func (t *TileData) Static(graphic uint16) StaticTile {
	return t.statics[graphic]
}

// SetLand registers a land record.
func (t *TileData) SetLand(graphic uint16, tile LandTile) {
	t.lands[graphic] = tile
}

// SetStatic registers a static record.
func (t *TileData) SetStatic(graphic uint16, tile StaticTile) {
	t.statics[graphic] = tile
}

// Counts returns the number of land and static records.
func (t *TileData) Counts() (lands, statics int) {
	return len(t.lands), len(t.statics)
}

type tileFile struct {
	Land    []landEntry   `yaml:"land"`
	Statics []staticEntry `yaml:"statics"`
}

type landEntry struct {
	Graphic uint16    `yaml:"graphic"`
	Name    string    `yaml:"name"`
	Flags   flagsYAML `yaml:"flags"`
}

type staticEntry struct {
	Graphic uint16    `yaml:"graphic"`
	Name    string    `yaml:"name"`
	Flags   flagsYAML `yaml:"flags"`
	Height  int       `yaml:"height"`
	Weight  int       `yaml:"weight"`
}

// flagsYAML decodes a list of flag names (e.g. [impassable, surface]).
type flagsYAML TileFlag

func (f *flagsYAML) UnmarshalYAML(value *yaml.Node) error {
	var names []string
	if err := value.Decode(&names); err != nil {
		return fmt.Errorf("line %d: flags must be a list of names: %w", value.Line, err)
	}

	var flags TileFlag
	for _, name := range names {
		flag, ok := flagNames[name]
		if !ok {
			return fmt.Errorf("line %d: unknown tile flag %q", value.Line, name)
		}
		flags |= flag
	}
	*f = flagsYAML(flags)
	return nil
}

// ParseTileData decodes a YAML tiledata document.
func ParseTileData(r io.Reader) (*TileData, error) {
	var file tileFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if err == io.EOF {
			return NewTileData(), nil
		}
		return nil, fmt.Errorf("decoding tiledata: %w", err)
	}

	td := NewTileData()
	for _, e := range file.Land {
		td.SetLand(e.Graphic, LandTile{Name: e.Name, Flags: TileFlag(e.Flags)})
	}
	for _, e := range file.Statics {
		if e.Height < 0 {
			return nil, fmt.Errorf("static %#04x: negative height %d", e.Graphic, e.Height)
		}
		td.SetStatic(e.Graphic, StaticTile{
			Name:   e.Name,
			Flags:  TileFlag(e.Flags),
			Height: e.Height,
			Weight: e.Weight,
		})
	}
	return td, nil
}

// LoadTileData reads a tiledata file (.yaml, .yml, optionally .zst-compressed).
func LoadTileData(path string) (*TileData, error) {
	r, err := OpenAsset(path)
	if err != nil {
		return nil, fmt.Errorf("loading tiledata: %w", err)
	}
	defer r.Close()

	td, err := ParseTileData(r)
	if err != nil {
		return nil, fmt.Errorf("loading tiledata %s: %w", path, err)
	}

	lands, statics := td.Counts()
	slog.Info("loaded tiledata", "path", path, "land", lands, "statics", statics)
	return td, nil
}
