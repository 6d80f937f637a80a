package geo

import (
	"log/slog"

	"github.com/udisondev/tilewalk/internal/model"
)

// Step is an accepted single-tile move.
type Step struct {
	X, Y, Z int
	// Direction actually taken; differs from the requested one when a blocked
	// diagonal slid along an adjacent cardinal.
	Direction model.Direction
}

// cardinalNeighbours are the offsets tried around a diagonal, in order.
var cardinalNeighbours = [2]int{1, -1}

// CanWalk probes a single step of the avatar heading dir from (x, y, z).
func (p *Pathfinder) CanWalk(dir model.Direction, x, y, z int) (Step, bool) {
	p.ctx = p.scanner.newContext(p.avatar)
	return p.canWalk(dir, x, y, z)
}

// ValidateStep adapts CanWalk to model.StepValidator.
func (p *Pathfinder) ValidateStep(dir model.Direction, from model.Location) (model.Location, model.Direction, bool) {
	step, ok := p.CanWalk(dir, from.X, from.Y, from.Z)
	if !ok {
		slog.Debug("step rejected", "from", from.String(), "direction", dir.String())
		return from, dir, false
	}
	return model.NewLocation(step.X, step.Y, step.Z), step.Direction, true
}

// canWalk applies the corner rule: a diagonal needs both adjacent cardinals
// passable from the origin; otherwise the first passable cardinal is taken.
func (p *Pathfinder) canWalk(dir model.Direction, x, y, z int) (Step, bool) {
	dir &= 7

	step, ok := p.stepTo(dir, x, y, z)
	if !dir.IsDiagonal() {
		return step, ok
	}

	for i := 0; i < len(cardinalNeighbours) && ok; i++ {
		_, ok = p.stepTo(dir.Rotate(cardinalNeighbours[i]), x, y, z)
	}
	if ok {
		return step, true
	}

	for _, off := range cardinalNeighbours {
		if step, ok = p.stepTo(dir.Rotate(off), x, y, z); ok {
			return step, true
		}
	}
	return Step{}, false
}

// stepTo resolves the landing Z of a single move without the corner rule.
func (p *Pathfinder) stepTo(dir model.Direction, x, y, z int) (Step, bool) {
	dx, dy := dir.Offset()
	nx, ny := x+dx, y+dy

	if h := p.scanner.house; h != nil && !h.Contains(nx, ny) {
		return Step{}, false
	}

	origin := p.scanner.scan(x, y, &p.ctx)
	dest := p.scanner.scan(nx, ny, &p.ctx)
	res, ok := ResolveStepZ(origin, dest, dir, z, p.ctx.state)
	p.scanner.Release(origin)
	p.scanner.Release(dest)

	if !ok {
		return Step{}, false
	}
	return Step{X: nx, Y: ny, Z: res.Landing, Direction: dir}, true
}
