package geo

import (
	"github.com/udisondev/tilewalk/internal/config"
	"github.com/udisondev/tilewalk/internal/data"
	"github.com/udisondev/tilewalk/internal/model"
	"github.com/udisondev/tilewalk/internal/pool"
)

// EntryFlag is the movement classification of a column entry.
type EntryFlag uint8

const (
	// FlagImpassableOrSurface: the entry occupies space (blocks or carries).
	FlagImpassableOrSurface EntryFlag = 1 << iota
	FlagSurface
	FlagBridge
	FlagNoDiagonal
)

// Has reports whether any bit of f2 is set in f.
func (f EntryFlag) Has(f2 EntryFlag) bool {
	return f&f2 != 0
}

// StepState classifies how the avatar moves.
type StepState uint8

const (
	StepNormal StepState = iota
	// StepDeadOrGM passes doors, light items and mobiles.
	StepDeadOrGM
	// StepAmphibious walks on water only (sea horse mount).
	StepAmphibious
	StepFlying
)

func (s StepState) String() string {
	switch s {
	case StepNormal:
		return "normal"
	case StepDeadOrGM:
		return "dead_or_gm"
	case StepAmphibious:
		return "amphibious"
	case StepFlying:
		return "flying"
	}
	return "unknown"
}

// ClassifyStepState derives the step state from the avatar's body and status.
func ClassifyStepState(body uint16, st model.Status) StepState {
	switch {
	case st.Dead || body == model.BodyGM:
		return StepDeadOrGM
	case st.Flying:
		return StepFlying
	case st.Mount == model.MountSeaHorse:
		return StepAmphibious
	}
	return StepNormal
}

// Entry is one terrain slab or object occupying a column.
type Entry struct {
	Flags    EntryFlag
	Z        int
	AverageZ int
	Height   int
	// Source is the originating object, nil for the sentinel.
	Source model.Object
}

// Column is a pooled scan result. Return it with Scanner.Release.
type Column struct {
	entries []Entry
	objects []model.Object
}

// Entries returns the column entries. Valid until the column is released.
func (c *Column) Entries() []Entry {
	return c.entries
}

// Len returns the number of entries.
func (c *Column) Len() int {
	return len(c.entries)
}

func (c *Column) add(flags EntryFlag, z, averageZ, height int, src model.Object) {
	c.entries = append(c.entries, Entry{
		Flags:    flags,
		Z:        z,
		AverageZ: averageZ,
		Height:   height,
		Source:   src,
	})
}

// stepContext is the avatar state a scan depends on.
// Captured once per search or per single-step probe.
type stepContext struct {
	state StepState
	self  uint32
	gm    bool
	// ignoreMobiles: no mobile blocks the avatar.
	ignoreMobiles bool
	avatarZ       int
}

// Scanner builds column entry lists from the world.
type Scanner struct {
	world   World
	tiles   TileData
	columns *pool.Pool[Column]

	ignoreStamina bool
	smoothDoors   bool
	house         *Bounds
}

// NewScanner creates a scanner over w.
func NewScanner(w World, tiles TileData, cfg config.Search) *Scanner {
	return &Scanner{
		world: w,
		tiles: tiles,
		columns: pool.New(16, func(c *Column) {
			clear(c.entries)
			c.entries = c.entries[:0]
			clear(c.objects)
			c.objects = c.objects[:0]
		}),
		ignoreStamina: cfg.IgnoreStaminaCheck,
		smoothDoors:   cfg.SmoothDoors,
	}
}

// Release returns c to the pool. nil is ignored.
func (s *Scanner) Release(c *Column) {
	s.columns.Put(c)
}

// Outstanding returns the number of columns not yet released.
func (s *Scanner) Outstanding() int {
	return s.columns.Outstanding()
}

func (s *Scanner) newContext(a Avatar) stepContext {
	loc, _ := a.EndPosition()
	st := a.Status()
	state := ClassifyStepState(a.Graphic(), st)
	return stepContext{
		state: state,
		self:  a.ObjectID(),
		gm:    a.Graphic() == model.BodyGM,
		ignoreMobiles: s.ignoreStamina ||
			state == StepDeadOrGM ||
			st.IgnoreCharacters ||
			st.Stamina >= st.StaminaMax ||
			s.world.Index() != 0,
		avatarZ: loc.Z,
	}
}

// scan lists the entries of column (x, y) for the avatar state in ctx.
// The column is empty when (x, y) has no terrain.
func (s *Scanner) scan(x, y int, ctx *stepContext) *Column {
	c := s.columns.Get()
	if s.world.Terrain(x, y) == nil {
		return c
	}

	c.objects = s.world.AppendObjectsAt(c.objects, x, y)
	for _, obj := range c.objects {
		if s.house != nil && obj.Z() < ctx.avatarZ {
			continue
		}

		switch o := obj.(type) {
		case *model.Land:
			s.addLand(c, o, ctx)
		case *model.Player:
			s.addMobile(c, o.Mobile, ctx)
		case *model.Mobile:
			s.addMobile(c, o, ctx)
		case *model.Multi:
			if o.Preview {
				continue
			}
			if s.house != nil && o.Custom && o.State&model.MultiGenericInternal == 0 {
				continue
			}
			s.addStatic(c, o, o.State&model.MultiIgnoreInRender != 0, ctx)
		case *model.Item:
			// The multi's own components carry its geometry.
			if o.MultiContainer || s.tiles.Static(o.Graphic()).IsInternal() {
				continue
			}
			drop := ctx.state == StepDeadOrGM && ctx.gm && !o.Locked
			s.addStatic(c, o, drop, ctx)
		case *model.Static:
			s.addStatic(c, o, false, ctx)
		}
	}
	return c
}

// Scan lists the entries of column (x, y) as seen by avatar.
func (s *Scanner) Scan(x, y int, avatar Avatar) *Column {
	ctx := s.newContext(avatar)
	return s.scan(x, y, &ctx)
}

func (s *Scanner) addLand(c *Column, land *model.Land, ctx *stepContext) {
	g := land.Graphic()
	if g == landNoDrawVoid || g == landNoDrawBlackVoid || (g >= landNoDrawMin && g <= landNoDrawMax) {
		return
	}

	tile := s.tiles.Land(g)
	flags := FlagImpassableOrSurface
	if ctx.state == StepAmphibious {
		if tile.IsWet() {
			flags = FlagImpassableOrSurface | FlagSurface | FlagBridge
		}
	} else {
		if !tile.IsImpassable() {
			flags = FlagImpassableOrSurface | FlagSurface | FlagBridge
		}
		if ctx.state == StepFlying && tile.IsNoDiagonal() {
			flags |= FlagNoDiagonal
		}
	}

	minZ, avgZ := land.MinZ(), land.AverageZ()
	c.add(flags, minZ, avgZ, avgZ-minZ, land)
}

func (s *Scanner) addMobile(c *Column, m *model.Mobile, ctx *stepContext) {
	if ctx.ignoreMobiles || m.ObjectID() == ctx.self || m.Dead || m.IgnoreCharacters {
		return
	}
	z := m.Z()
	c.add(FlagImpassableOrSurface, z, z+DefaultCharacterHeight, DefaultCharacterHeight, m)
}

// addStatic adds statics, items and multi components. drop clears the
// blocking flag so the avatar passes through the object.
func (s *Scanner) addStatic(c *Column, obj model.Object, drop bool, ctx *stepContext) {
	g := obj.Graphic()
	tile := s.tiles.Static(g)

	if !drop {
		drop = s.dropsBlocking(g, tile, ctx)
	}

	var flags EntryFlag
	if ctx.state == StepAmphibious {
		if tile.IsWet() {
			flags = FlagImpassableOrSurface | FlagSurface | FlagBridge
		}
	} else {
		if tile.IsImpassable() || tile.IsSurface() {
			flags = FlagImpassableOrSurface
		}
		if !tile.IsImpassable() {
			if tile.IsSurface() {
				flags |= FlagSurface
			}
			if tile.IsBridge() {
				flags |= FlagBridge
			}
		}
	}
	if drop {
		flags &^= FlagImpassableOrSurface
	}
	if flags == 0 {
		return
	}

	z := obj.Z()
	avg := z + tile.Height
	if tile.IsBridge() {
		avg = z + tile.Height/2
	}
	c.add(flags, z, avg, tile.Height, obj)
}

func (s *Scanner) dropsBlocking(g uint16, tile data.StaticTile, ctx *stepContext) bool {
	if ctx.state == StepDeadOrGM {
		if tile.IsDoor() || tile.Weight <= 0x5A {
			return true
		}
		switch {
		case g == 0x0692, g == 0x0846, g == 0x0873, g >= 0x06F5 && g <= 0x06F6:
			return true
		}
	}
	if s.smoothDoors && tile.IsDoor() {
		return true
	}
	return (g >= 0x3946 && g <= 0x3964) || g == 0x0082
}
