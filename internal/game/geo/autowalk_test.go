package geo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/tilewalk/internal/model"
	"github.com/udisondev/tilewalk/internal/testutil"
)

const tick = 50 * time.Millisecond

// pump runs autowalk ticks, acknowledging every step, until it stops.
func pump(t *testing.T, f *fixture, maxTicks int) {
	t.Helper()

	for range maxTicks {
		if !f.pf.IsWalking() {
			return
		}
		f.clock.Advance(tick)
		f.player.AckAll()
		f.pf.ProcessAutoWalk()
	}
	if f.pf.IsWalking() {
		t.Fatalf("autowalk still running after %d ticks", maxTicks)
	}
}

func TestWalkTo_ReachesGoal(t *testing.T) {
	f := newFixture(t, testutil.NewFlatMap(t, 10, 10, 0), model.NewLocation(0, 0, 0))

	require.True(t, f.pf.WalkTo(4, 0, 0, 0))
	assert.True(t, f.pf.IsWalking())
	assert.Equal(t, model.East, f.player.Facing(), "first tick turns toward the path")
	assert.Equal(t, model.NewLocation(0, 0, 0), f.player.Location())

	pump(t, f, 200)

	assert.Equal(t, model.NewLocation(4, 0, 0), f.player.Location())
	assert.False(t, f.pf.IsWalking())
	assert.Equal(t, SearchPathFound, f.pf.LastSearch().State)
	f.requireNoLeaks(t)
}

func TestWalkTo_AlreadyFacingSkipsTurn(t *testing.T) {
	f := newFixture(t, testutil.NewFlatMap(t, 10, 10, 0), model.NewLocation(0, 5, 0))

	require.True(t, f.pf.WalkTo(0, 2, 0, 0))
	assert.Equal(t, model.NewLocation(0, 4, 0), f.player.Location(), "facing north already, first tick steps")

	_, cursor := f.pf.Path()
	assert.Equal(t, 1, cursor)
}

func TestWalkTo_Paced(t *testing.T) {
	f := newFixture(t, testutil.NewFlatMap(t, 10, 10, 0), model.NewLocation(0, 5, 0))

	require.True(t, f.pf.WalkTo(0, 0, 0, 0))
	require.Equal(t, model.NewLocation(0, 4, 0), f.player.Location())

	// Cooldown not elapsed: nothing happens.
	f.player.AckAll()
	f.pf.ProcessAutoWalk()
	assert.Equal(t, model.NewLocation(0, 4, 0), f.player.Location())

	f.clock.Advance(f.cfg.Walker.WalkDelay)
	f.pf.ProcessAutoWalk()
	assert.Equal(t, model.NewLocation(0, 3, 0), f.player.Location())
}

func TestWalkTo_QueueCap(t *testing.T) {
	f := newFixture(t, testutil.NewFlatMap(t, 10, 10, 0), model.NewLocation(0, 9, 0))

	require.True(t, f.pf.WalkTo(0, 0, 0, 0))
	for range f.cfg.Walker.MaxQueuedSteps * 2 {
		f.clock.Advance(time.Second)
		f.pf.ProcessAutoWalk()
	}

	assert.Equal(t, f.cfg.Walker.MaxQueuedSteps, f.player.QueuedSteps())
	assert.Equal(t, model.NewLocation(0, 9-f.cfg.Walker.MaxQueuedSteps, 0), f.player.Location())
	assert.True(t, f.pf.IsWalking(), "a full queue waits, it does not stop")
}

func TestWalkTo_RunsWhenFar(t *testing.T) {
	f := newFixture(t, testutil.NewFlatMap(t, 30, 3, 0), model.NewLocation(0, 1, 0))
	f.player.SetFacing(model.East)

	require.True(t, f.pf.WalkTo(20, 1, 0, 0))
	assert.True(t, f.pf.running)
	assert.Equal(t, f.clock.Now().Add(f.cfg.Walker.RunDelay), f.player.NextStepAt())

	f.pf.StopAutoWalk()
	require.True(t, f.pf.WalkTo(f.player.X()+3, 1, 0, 0))
	assert.False(t, f.pf.running)
}

func TestWalkTo_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *fixture)
		x, y  int
	}{
		{"dead", func(f *fixture) { f.player.SetStatus(model.Status{Dead: true}) }, 5, 5},
		{"already there", func(*fixture) {}, 2, 2},
		{"no path", func(f *fixture) { f.m.ClearLand(5, 5) }, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, testutil.NewFlatMap(t, 8, 8, 0), model.NewLocation(2, 2, 0))
			tt.setup(f)

			assert.False(t, f.pf.WalkTo(tt.x, tt.y, 0, 0))
			assert.False(t, f.pf.IsWalking())
			f.requireNoLeaks(t)
		})
	}
}

func TestProcessAutoWalk_StopsWhenStepRejected(t *testing.T) {
	m := testutil.NewFlatMap(t, 10, 3, 0)
	f := newFixture(t, m, model.NewLocation(0, 1, 0))
	f.player.SetFacing(model.East)

	require.True(t, f.pf.WalkTo(6, 1, 0, 0))
	require.Equal(t, model.NewLocation(1, 1, 0), f.player.Location())

	// The world changed after the search: a wall appears on the route.
	testutil.AddWall(t, m, [2]int{3, 1})

	pump(t, f, 100)

	assert.Equal(t, model.NewLocation(2, 1, 0), f.player.Location())
	assert.False(t, f.pf.IsWalking())
	f.requireNoLeaks(t)
}

func TestStopAutoWalk(t *testing.T) {
	f := newFixture(t, testutil.NewFlatMap(t, 10, 10, 0), model.NewLocation(0, 0, 0))

	// Not walking: a no-op.
	f.pf.StopAutoWalk()
	f.pf.StopAutoWalk()
	assert.Equal(t, SearchIdle, f.pf.LastSearch().State)
	f.requireNoLeaks(t)

	require.True(t, f.pf.WalkTo(9, 0, 0, 0))
	f.pf.StopAutoWalk()

	assert.False(t, f.pf.IsWalking())
	assert.Equal(t, SearchCancelled, f.pf.LastSearch().State)
	path, cursor := f.pf.Path()
	assert.Nil(t, path)
	assert.Zero(t, cursor)
	f.requireNoLeaks(t)

	// Ticks after a stop do nothing.
	loc := f.player.Location()
	f.clock.Advance(time.Second)
	f.player.AckAll()
	f.pf.ProcessAutoWalk()
	assert.Equal(t, loc, f.player.Location())
}
