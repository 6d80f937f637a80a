package geo

import (
	"time"

	"github.com/udisondev/tilewalk/internal/config"
	"github.com/udisondev/tilewalk/internal/data"
	"github.com/udisondev/tilewalk/internal/model"
	"github.com/udisondev/tilewalk/internal/pool"
)

// World is the read-only view of the map the core queries.
type World interface {
	// Index returns the facet index (mobiles only block on facet 0).
	Index() int
	// Terrain returns the terrain slab of (x, y), nil if the column has none.
	Terrain(x, y int) *model.Land
	// AppendObjectsAt appends the column stack of (x, y), terrain first, bottom to top.
	AppendObjectsAt(dst []model.Object, x, y int) []model.Object
}

// TileData resolves per-graphic tile records.
type TileData interface {
	Land(graphic uint16) data.LandTile
	Static(graphic uint16) data.StaticTile
}

// Avatar is the controlled character the core moves.
type Avatar interface {
	ObjectID() uint32
	Graphic() uint16
	EndPosition() (model.Location, model.Direction)
	Status() model.Status
	QueuedSteps() int
	NextStepAt() time.Time
	Walk(dir model.Direction, run bool) bool
}

// Pathfinder is a pathfinding session for one avatar: search, step legality
// and autowalk. A new search clears the state of the previous one.
//
// Not safe for concurrent use: owned by the simulation tick goroutine.
type Pathfinder struct {
	scanner *Scanner
	avatar  Avatar
	search  config.Search
	walker  config.Walker
	clock   func() time.Time

	nodes  *pool.Pool[node]
	open   openSet
	closed map[nodeKey]*node
	goal   goalRegion
	ctx    stepContext
	last   SearchStats

	// autowalk
	path    []Waypoint
	cursor  int
	walking bool
	running bool
}

// NewPathfinder creates a session for avatar over world.
func NewPathfinder(w World, tiles TileData, avatar Avatar, cfg config.Pathfinding) *Pathfinder {
	return &Pathfinder{
		scanner: NewScanner(w, tiles, cfg.Search),
		avatar:  avatar,
		search:  cfg.Search,
		walker:  cfg.Walker,
		clock:   time.Now,
		nodes: pool.New(256, func(n *node) {
			*n = node{}
		}),
		open:   newOpenSet(),
		closed: make(map[nodeKey]*node, 256),
	}
}

// SetClock replaces the time source used for step pacing.
func (p *Pathfinder) SetClock(clock func() time.Time) {
	p.clock = clock
}

// Scanner returns the column scanner of the session.
func (p *Pathfinder) Scanner() *Scanner {
	return p.scanner
}

// SetCustomHouse limits landings to bounds while a custom house is being edited.
func (p *Pathfinder) SetCustomHouse(bounds Bounds) {
	p.scanner.house = &bounds
}

// ClearCustomHouse removes the custom-house boundary.
func (p *Pathfinder) ClearCustomHouse() {
	p.scanner.house = nil
}

// OutstandingNodes returns the number of search nodes not yet returned to the pool.
func (p *Pathfinder) OutstandingNodes() int {
	return p.nodes.Outstanding()
}

// Bounds is an inclusive column rectangle.
type Bounds struct {
	MinX, MinY, MaxX, MaxY int
}

// Contains reports whether (x, y) lies inside b.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}
