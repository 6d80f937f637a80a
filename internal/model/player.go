package model

import "time"

// Body and mount graphics that change how the avatar moves.
const (
	BodyGM        uint16 = 0x03DB
	MountSeaHorse uint16 = 0x3EB3
)

// Status — состояние аватара, влияющее на правила передвижения.
type Status struct {
	Dead             bool
	Flying           bool
	IgnoreCharacters bool
	// Mount is the graphic of the ridden mount, 0 when on foot.
	Mount      uint16
	Stamina    int
	StaminaMax int
}

// StepValidator checks a single step from `from` heading dir.
// On success it returns the landing location and the direction actually taken
// (a blocked diagonal may slide along an adjacent cardinal).
type StepValidator func(dir Direction, from Location) (to Location, taken Direction, ok bool)

// WalkDelays configures the walker pacing.
type WalkDelays struct {
	MaxQueuedSteps int
	Walk           time.Duration
	Run            time.Duration
	MountedWalk    time.Duration
	MountedRun     time.Duration
	Turn           time.Duration
}

// DefaultWalkDelays returns classic client pacing.
func DefaultWalkDelays() WalkDelays {
	return WalkDelays{
		MaxQueuedSteps: 5,
		Walk:           400 * time.Millisecond,
		Run:            200 * time.Millisecond,
		MountedWalk:    200 * time.Millisecond,
		MountedRun:     100 * time.Millisecond,
		Turn:           100 * time.Millisecond,
	}
}

// Player — аватар, которым управляет клиент.
// Добавляет к Mobile направление взгляда, статус и шаговый walker.
// Не потокобезопасен: принадлежит горутине симуляции.
type Player struct {
	*Mobile

	facing Direction
	status Status
	walker walker
}

// NewPlayer creates a player at loc facing dir.
// The player cannot move until a step validator is installed with SetStepValidator.
func NewPlayer(objectID uint32, body uint16, loc Location, dir Direction, delays WalkDelays) *Player {
	return &Player{
		Mobile: NewMobile(objectID, body, loc),
		facing: dir & 7,
		status: Status{Stamina: 1, StaminaMax: 1},
		walker: newWalker(delays),
	}
}

// Facing returns the current resting direction.
func (p *Player) Facing() Direction {
	return p.facing
}

// SetFacing turns the player without queueing a step.
func (p *Player) SetFacing(d Direction) {
	p.facing = d & 7
}

// EndPosition returns the position and direction the player will have once
// every queued step is acknowledged. Steps are applied optimistically, so this
// is the current location.
func (p *Player) EndPosition() (Location, Direction) {
	return p.Location(), p.facing
}

// Status returns a copy of the movement-relevant status.
func (p *Player) Status() Status {
	return p.status
}

// SetStatus replaces the movement-relevant status.
func (p *Player) SetStatus(s Status) {
	p.status = s
	p.Dead = s.Dead
	p.IgnoreCharacters = s.IgnoreCharacters
}

// IsGM reports whether the player uses the GM body.
func (p *Player) IsGM() bool {
	return p.Graphic() == BodyGM
}
