package geo

import (
	"log/slog"

	"github.com/udisondev/tilewalk/internal/model"
)

// Waypoint is one step of a reconstructed path: the column entered and the
// direction used to enter it.
type Waypoint struct {
	X, Y, Z   int
	Direction model.Direction
}

// SearchState is the terminal state of the last search.
type SearchState uint8

const (
	SearchIdle SearchState = iota
	SearchSearching
	SearchPathFound
	SearchExhausted
	SearchCancelled
)

func (s SearchState) String() string {
	switch s {
	case SearchIdle:
		return "idle"
	case SearchSearching:
		return "searching"
	case SearchPathFound:
		return "path_found"
	case SearchExhausted:
		return "exhausted"
	case SearchCancelled:
		return "cancelled"
	}
	return "unknown"
}

// SearchStats describes the last search.
type SearchStats struct {
	State      SearchState
	Closed     int
	PathLength int
}

type goalRegion struct {
	x, y, z int
	radius  int
}

// LastSearch returns the outcome of the most recent search.
func (p *Pathfinder) LastSearch() SearchStats {
	return p.last
}

// GetPathTo searches a route for the avatar from its end position to within
// radius of (x, y) at height z. The path excludes the start column; it is
// empty (and ok) when the avatar already stands in the goal region.
// Returns nil, false when the open set empties or the node budget runs out.
func (p *Pathfinder) GetPathTo(x, y, z, radius int) ([]Waypoint, bool) {
	p.cleanup()

	start, facing := p.avatar.EndPosition()
	p.ctx = p.scanner.newContext(p.avatar)
	p.goal = goalRegion{x: x, y: y, z: z, radius: max(radius, 0)}
	p.last = SearchStats{State: SearchSearching}

	if p.isGoal(start.X, start.Y, start.Z) {
		p.last.State = SearchPathFound
		return []Waypoint{}, true
	}

	p.open.push(p.newNode(start.X, start.Y, start.Z, facing, nil, 0))

	path, ok := p.runSearch()
	p.last.Closed = len(p.closed)
	p.cleanup()

	if !ok {
		p.last.State = SearchExhausted
		slog.Debug("path not found",
			"from", start.String(),
			"to", model.NewLocation(x, y, z).String(),
			"closed", p.last.Closed)
		return nil, false
	}

	p.last.State = SearchPathFound
	p.last.PathLength = len(path)
	slog.Debug("path found",
		"from", start.String(),
		"to", model.NewLocation(x, y, z).String(),
		"steps", len(path),
		"closed", p.last.Closed)
	return path, true
}

// runSearch drives the A* loop until a goal is dequeued or the search fails.
func (p *Pathfinder) runSearch() ([]Waypoint, bool) {
	var goal *node

	for {
		n := p.open.pop()
		if n == nil {
			if goal != nil {
				return p.reconstruct(goal)
			}
			return nil, false
		}
		if !n.valid {
			p.nodes.Put(n)
			continue
		}

		if goal != nil {
			path, ok := p.reconstruct(goal)
			p.nodes.Put(n)
			return path, ok
		}

		if len(p.closed) >= p.search.NodeBudget {
			p.nodes.Put(n)
			return nil, false
		}

		k := n.key()
		if _, closed := p.closed[k]; closed {
			slog.Warn("search node reopened", "x", n.x, "y", n.y, "z", n.z)
			p.nodes.Put(n)
			return nil, false
		}
		p.closed[k] = n

		p.expand(n, &goal)
	}
}

// expand enqueues every legal neighbour of n. A neighbour in the goal region
// becomes the goal candidate when it is cheaper than the current one.
func (p *Pathfinder) expand(n *node, goal **node) {
	for d := range model.DirectionCount {
		dir := model.Direction(d)

		step, ok := p.canWalk(dir, n.x, n.y, n.z)
		if !ok || step.Direction != dir {
			continue
		}

		k := nodeKey{step.X, step.Y, step.Z}
		if _, closed := p.closed[k]; closed {
			continue
		}

		cost := n.cost + abs(step.Z-n.z)
		if dir.IsDiagonal() {
			cost += CostDiagonal
		} else {
			cost += CostStraight
		}
		// Turn penalty only counts against the incoming direction, so the
		// result is turn-minimal locally, not globally.
		if n.parent != nil && dir != n.dir {
			cost += CostTurn
		}

		if old := p.open.lookup(k); old != nil {
			if old.cost <= cost {
				continue
			}
			p.open.invalidate(old)
		}

		child := p.newNode(step.X, step.Y, step.Z, dir, n, cost)
		p.open.push(child)

		if p.isGoal(step.X, step.Y, step.Z) && (*goal == nil || child.cost < (*goal).cost) {
			*goal = child
		}
	}
}

// reconstruct walks parent links from goal back to the start. The walk is
// bounded by the number of closed nodes; a longer chain means a cycle.
func (p *Pathfinder) reconstruct(goal *node) ([]Waypoint, bool) {
	limit := len(p.closed) + 1

	length := 0
	for n := goal; n.parent != nil; n = n.parent {
		length++
		if length > limit {
			slog.Warn("search path has a cycle", "goal_x", goal.x, "goal_y", goal.y, "limit", limit)
			return nil, false
		}
	}

	path := make([]Waypoint, length)
	i := length - 1
	for n := goal; n.parent != nil; n = n.parent {
		path[i] = Waypoint{X: n.x, Y: n.y, Z: n.z, Direction: n.dir}
		i--
	}
	return path, true
}

func (p *Pathfinder) isGoal(x, y, z int) bool {
	g := p.goal
	if model.Chebyshev(x, y, g.x, g.y) > g.radius {
		return false
	}
	return p.search.GoalZTolerance < 0 || abs(z-g.z) <= p.search.GoalZTolerance
}

func (p *Pathfinder) heuristic(x, y int) int {
	return model.Chebyshev(x, y, p.goal.x, p.goal.y) * CostStraight
}

func (p *Pathfinder) newNode(x, y, z int, dir model.Direction, parent *node, cost int) *node {
	n := p.nodes.Get()
	n.x, n.y, n.z = x, y, z
	n.dir = dir
	n.parent = parent
	n.cost = cost
	n.heuristic = p.heuristic(x, y)
	n.total = cost + n.heuristic
	return n
}

// cleanup releases every node of the open and closed sets. Idempotent.
func (p *Pathfinder) cleanup() {
	p.open.drain(p.nodes.Put)
	for k, n := range p.closed {
		p.nodes.Put(n)
		delete(p.closed, k)
	}
}
