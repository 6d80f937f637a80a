package geo

import (
	"log/slog"

	"github.com/udisondev/tilewalk/internal/model"
)

// WalkTo searches a path to (x, y, z) within radius and starts walking it.
// Returns false when the avatar is dead, no path exists, or the avatar
// already stands in the goal region.
func (p *Pathfinder) WalkTo(x, y, z, radius int) bool {
	if p.avatar.Status().Dead {
		return false
	}
	p.stop()

	path, ok := p.GetPathTo(x, y, z, radius)
	if !ok || len(path) == 0 {
		return false
	}

	start, _ := p.avatar.EndPosition()
	p.path = path
	p.cursor = 0
	p.walking = true
	p.running = model.Chebyshev(start.X, start.Y, x, y) > p.search.RunDistance

	slog.Debug("autowalk started", "steps", len(path), "run", p.running)
	p.ProcessAutoWalk()
	return true
}

// ProcessAutoWalk issues the next step of the path. Called once per tick;
// does nothing until the avatar's step queue has room and its cooldown has passed.
func (p *Pathfinder) ProcessAutoWalk() {
	if !p.walking {
		return
	}
	if p.avatar.QueuedSteps() >= p.walker.MaxQueuedSteps || p.clock().Before(p.avatar.NextStepAt()) {
		return
	}

	if p.cursor >= len(p.path) {
		slog.Debug("autowalk finished", "steps", len(p.path))
		p.stop()
		return
	}

	wp := p.path[p.cursor]
	if _, facing := p.avatar.EndPosition(); facing == wp.Direction {
		p.cursor++
	}

	if !p.avatar.Walk(wp.Direction, p.running) {
		slog.Debug("autowalk step rejected",
			"x", wp.X, "y", wp.Y, "z", wp.Z,
			"direction", wp.Direction.String())
		p.stop()
	}
}

// StopAutoWalk cancels autowalk and releases all search state. Safe to call
// when not walking.
func (p *Pathfinder) StopAutoWalk() {
	if p.walking && p.cursor < len(p.path) {
		p.last.State = SearchCancelled
	}
	p.stop()
}

// IsWalking reports whether autowalk is active.
func (p *Pathfinder) IsWalking() bool {
	return p.walking
}

// Path returns the path being walked and the index of the next waypoint.
func (p *Pathfinder) Path() ([]Waypoint, int) {
	return p.path, p.cursor
}

func (p *Pathfinder) stop() {
	p.walking = false
	p.path = nil
	p.cursor = 0
	p.cleanup()
}
