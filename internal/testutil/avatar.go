package testutil

import (
	"time"

	"github.com/udisondev/tilewalk/internal/model"
)

// BodyHuman — обычное тело персонажа.
const BodyHuman uint16 = 0x0190

// ManualClock — часы, которые двигаются только вручную.
type ManualClock struct {
	now time.Time
}

// NewManualClock создаёт часы на фиксированном моменте.
func NewManualClock() *ManualClock {
	return &ManualClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now возвращает текущее время часов.
func (c *ManualClock) Now() time.Time {
	return c.now
}

// Advance сдвигает часы на d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// NewPlayer создаёт аватара в loc, смотрящего на север, с часами clock.
// Валидатор шагов ставит вызывающий (обычно Pathfinder.ValidateStep).
func NewPlayer(loc model.Location, clock *ManualClock) *model.Player {
	p := model.NewPlayer(0x10000001, BodyHuman, loc, model.North, model.DefaultWalkDelays())
	p.SetClock(clock.Now)
	return p
}
