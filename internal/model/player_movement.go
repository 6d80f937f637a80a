package model

import "time"

// walker paces the player's steps. It mirrors the client-side step queue:
// each accepted step (or turn) is queued until the server acknowledges it,
// and no new step may be issued before nextStepAt.
type walker struct {
	delays     WalkDelays
	queued     int
	nextStepAt time.Time
	validate   StepValidator
	clock      func() time.Time
}

func newWalker(delays WalkDelays) walker {
	return walker{
		delays: delays,
		clock:  time.Now,
	}
}

// SetStepValidator installs the step legality check used by Walk.
func (p *Player) SetStepValidator(v StepValidator) {
	p.walker.validate = v
}

// SetClock replaces the time source (tests drive a manual clock).
func (p *Player) SetClock(clock func() time.Time) {
	p.walker.clock = clock
}

// QueuedSteps returns the number of unacknowledged steps.
func (p *Player) QueuedSteps() int {
	return p.walker.queued
}

// NextStepAt returns the earliest time the next step may be issued.
func (p *Player) NextStepAt() time.Time {
	return p.walker.nextStepAt
}

// AckStep confirms the oldest queued step.
func (p *Player) AckStep() {
	if p.walker.queued > 0 {
		p.walker.queued--
	}
}

// AckAll confirms every queued step.
func (p *Player) AckAll() {
	p.walker.queued = 0
}

// Walk issues one movement command. When the player does not face dir the
// command only turns; otherwise the step is validated and applied.
// Returns false if the command is rejected (queue full, cooldown, blocked, dead).
func (p *Player) Walk(dir Direction, run bool) bool {
	w := &p.walker
	dir &= 7

	now := w.clock()
	if w.queued >= w.delays.MaxQueuedSteps || now.Before(w.nextStepAt) {
		return false
	}
	if p.facing != dir {
		p.facing = dir
		w.queued++
		w.nextStepAt = now.Add(w.delays.Turn)
		return true
	}

	if w.validate == nil {
		return false
	}
	to, taken, ok := w.validate(dir, p.Location())
	if !ok {
		return false
	}

	p.SetLocation(to)
	p.facing = taken
	w.queued++
	w.nextStepAt = now.Add(p.stepDelay(run))
	return true
}

func (p *Player) stepDelay(run bool) time.Duration {
	d := p.walker.delays
	mounted := p.status.Mount != 0
	switch {
	case mounted && run:
		return d.MountedRun
	case mounted:
		return d.MountedWalk
	case run:
		return d.Run
	default:
		return d.Walk
	}
}
