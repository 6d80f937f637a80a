package world

import (
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/tilewalk/internal/data"
	"github.com/udisondev/tilewalk/internal/model"
)

// mapFile is the YAML layout of a map fixture.
type mapFile struct {
	Index   int           `yaml:"index"`
	Width   int           `yaml:"width"`
	Height  int           `yaml:"height"`
	Land    landSection   `yaml:"land"`
	Statics []objectEntry `yaml:"statics"`
	Items   []itemEntry   `yaml:"items"`
	Multis  []multiEntry  `yaml:"multis"`
	Mobiles []mobileEntry `yaml:"mobiles"`
}

type landSection struct {
	// Graphic and Z fill the whole map before patches are applied.
	Graphic *uint16      `yaml:"graphic"`
	Z       int          `yaml:"z"`
	Patches []landPatch  `yaml:"patches"`
	Holes   []coordEntry `yaml:"holes"`
}

type landPatch struct {
	X       int     `yaml:"x"`
	Y       int     `yaml:"y"`
	W       int     `yaml:"w"`
	H       int     `yaml:"h"`
	Graphic *uint16 `yaml:"graphic"`
	Z       int     `yaml:"z"`
}

type coordEntry struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type objectEntry struct {
	X       int    `yaml:"x"`
	Y       int    `yaml:"y"`
	Z       int    `yaml:"z"`
	Graphic uint16 `yaml:"graphic"`
}

type itemEntry struct {
	objectEntry `yaml:",inline"`
	Locked      bool `yaml:"locked"`
	Multi       bool `yaml:"multi"`
}

type multiEntry struct {
	objectEntry     `yaml:",inline"`
	Custom          bool `yaml:"custom"`
	Preview         bool `yaml:"preview"`
	GenericInternal bool `yaml:"generic_internal"`
	IgnoreInRender  bool `yaml:"ignore_in_render"`
}

type mobileEntry struct {
	X                int    `yaml:"x"`
	Y                int    `yaml:"y"`
	Z                int    `yaml:"z"`
	Body             uint16 `yaml:"body"`
	Dead             bool   `yaml:"dead"`
	IgnoreCharacters bool   `yaml:"ignore_characters"`
}

// ParseMap decodes a YAML map document.
func ParseMap(r io.Reader) (*Map, error) {
	var f mapFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding map: %w", err)
	}
	if f.Width <= 0 || f.Height <= 0 {
		return nil, fmt.Errorf("decoding map: invalid size %dx%d", f.Width, f.Height)
	}

	m := NewMap(f.Index, f.Width, f.Height)

	if f.Land.Graphic != nil {
		m.FillLand(*f.Land.Graphic, f.Land.Z)
	}
	for i, p := range f.Land.Patches {
		if err := applyPatch(m, p, f.Land.Graphic); err != nil {
			return nil, fmt.Errorf("land patch %d: %w", i, err)
		}
	}
	for _, h := range f.Land.Holes {
		m.ClearLand(h.X, h.Y)
	}

	for _, e := range f.Statics {
		s := model.NewStatic(m.ids.NextStaticID(), e.Graphic, model.NewLocation(e.X, e.Y, e.Z))
		if err := m.AddObject(s); err != nil {
			return nil, fmt.Errorf("static %#04x: %w", e.Graphic, err)
		}
	}
	for _, e := range f.Items {
		it := model.NewItem(m.ids.NextItemID(), e.Graphic, model.NewLocation(e.X, e.Y, e.Z))
		it.Locked = e.Locked
		it.MultiContainer = e.Multi
		if err := m.AddObject(it); err != nil {
			return nil, fmt.Errorf("item %#04x: %w", e.Graphic, err)
		}
	}
	for _, e := range f.Multis {
		mu := model.NewMulti(m.ids.NextItemID(), e.Graphic, model.NewLocation(e.X, e.Y, e.Z))
		mu.Custom = e.Custom
		mu.Preview = e.Preview
		if e.GenericInternal {
			mu.State |= model.MultiGenericInternal
		}
		if e.IgnoreInRender {
			mu.State |= model.MultiIgnoreInRender
		}
		if err := m.AddObject(mu); err != nil {
			return nil, fmt.Errorf("multi %#04x: %w", e.Graphic, err)
		}
	}
	for _, e := range f.Mobiles {
		mob := model.NewMobile(m.ids.NextMobileID(), e.Body, model.NewLocation(e.X, e.Y, e.Z))
		mob.Dead = e.Dead
		mob.IgnoreCharacters = e.IgnoreCharacters
		if err := m.AddObject(mob); err != nil {
			return nil, fmt.Errorf("mobile %#04x: %w", e.Body, err)
		}
	}

	return m, nil
}

func applyPatch(m *Map, p landPatch, fallback *uint16) error {
	graphic := p.Graphic
	if graphic == nil {
		graphic = fallback
	}
	if graphic == nil {
		return fmt.Errorf("no graphic for patch at (%d, %d)", p.X, p.Y)
	}

	w, h := max(p.W, 1), max(p.H, 1)
	for y := p.Y; y < p.Y+h; y++ {
		for x := p.X; x < p.X+w; x++ {
			if err := m.SetLand(x, y, *graphic, p.Z); err != nil {
				return err
			}
		}
	}
	return nil
}

// LoadMap reads a map file (.yaml, .yml, optionally .zst-compressed).
func LoadMap(path string) (*Map, error) {
	r, err := data.OpenAsset(path)
	if err != nil {
		return nil, fmt.Errorf("loading map: %w", err)
	}
	defer r.Close()

	m, err := ParseMap(r)
	if err != nil {
		return nil, fmt.Errorf("loading map %s: %w", path, err)
	}

	slog.Info("loaded map",
		"path", path,
		"index", m.Index(),
		"width", m.Width(),
		"height", m.Height(),
		"objects", m.ObjectCount())
	return m, nil
}
