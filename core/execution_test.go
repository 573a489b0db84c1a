package core

import (
	"testing"

	"github.com/automoto/kumite/components"
	cfg "github.com/automoto/kumite/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (h *harness) executing(playerIndex int) bool {
	return h.sim.Fighter(playerIndex).Executing
}

func TestTrajectoryEndsExactly(t *testing.T) {
	tests := []struct {
		move        cfg.MoveID
		facingRight bool
		wantDX      float64
	}{
		{cfg.MoveJump, true, 6},
		{cfg.MoveJump, false, -6},
		{cfg.MoveFlyingKick, true, 12},
		{cfg.MoveFlyingKick, false, -12},
		{cfg.MoveMiniJump, true, 0},
		{cfg.MoveMiniJump, false, 0},
		{cfg.MoveHighPunch, true, 0},
	}

	for _, tt := range tests {
		name := tt.move.String()
		if !tt.facingRight {
			name += "/left"
		}
		t.Run(name, func(t *testing.T) {
			h := newHarness(t)
			h.place(0, 100)
			p1 := h.sim.Fighter(cfg.Player1)
			p1.FacingRight = tt.facingRight

			require.True(t, h.sim.ExecuteMove(cfg.Player1, tt.move))
			h.tickUntil(ticksFor(cfg.Execution.Timeout), func() bool { return !h.executing(cfg.Player1) })

			assert.InDelta(t, tt.wantDX, p1.Position.X, 1e-12)
			assert.Equal(t, 0.0, p1.Position.Y)
			assert.Equal(t, cfg.MoveNone, p1.CurrentMove)
			assert.Equal(t, components.ExecutionIdle, components.Execution.Get(h.sim.FighterEntry(cfg.Player1)).State)
		})
	}
}

func TestArcRisesMidMove(t *testing.T) {
	h := newHarness(t)
	h.place(0, 100)
	require.True(t, h.sim.ExecuteMove(cfg.Player1, cfg.MoveJump))

	h.ticks(ticksFor(cfg.Moves[cfg.MoveJump].Duration() / 2))
	p1 := h.sim.Fighter(cfg.Player1)
	assert.Greater(t, p1.Position.Y, 1.0)
	assert.InDelta(t, 3.0, p1.Position.X, 0.2)
}

func TestMoveDurationFollowsPlaybackRate(t *testing.T) {
	h := newHarness(t)
	h.place(0, 100)
	require.True(t, h.sim.ExecuteMove(cfg.Player1, cfg.MoveAnkleKick))
	assert.Equal(t, 0.5, h.sim.Fighter(cfg.Player1).PlaybackRate)

	// 0.4s at half speed lasts 0.8s; it completes at 95% progress.
	want := ticksFor(0.8 * cfg.Execution.CompleteAt)
	h.ticks(want - 1)
	assert.True(t, h.executing(cfg.Player1))
	h.ticks(1)
	assert.False(t, h.executing(cfg.Player1))
}

func TestOneHitPerExecution(t *testing.T) {
	h := newHarness(t)
	hits := h.countHits()
	h.place(0, 1.2)

	require.True(t, h.sim.ExecuteMove(cfg.Player1, cfg.MoveHighPunch))
	h.tickUntil(ticksFor(cfg.Execution.Timeout), func() bool { return !h.executing(cfg.Player1) })

	assert.Equal(t, 1, *hits)
	assert.Equal(t, 0.0, h.sim.Fighter(cfg.Player1).Position.X)
}

func TestNoHitOutsideActiveWindow(t *testing.T) {
	h := newHarness(t)
	hits := h.countHits()
	h.place(0, 1.2)

	require.True(t, h.sim.ExecuteMove(cfg.Player1, cfg.MoveHighPunch))
	// Active window opens at 30% of 0.5s.
	h.ticks(ticksFor(0.5*0.3) - 1)
	assert.Zero(t, *hits)
	h.ticks(2)
	assert.Equal(t, 1, *hits)
}

func TestHitStopsTheTrajectory(t *testing.T) {
	h := newHarness(t)
	hits := h.countHits()
	h.place(0, 7)

	require.True(t, h.sim.ExecuteMove(cfg.Player1, cfg.MoveFlyingKick))
	h.tickUntil(ticksFor(cfg.Execution.Timeout), func() bool { return *hits > 0 })

	// The attacker is snapped to the trajectory end on the hit tick and
	// stays there for the rest of the move.
	p1 := h.sim.Fighter(cfg.Player1)
	assert.Equal(t, 12.0, p1.Position.X)
	assert.Equal(t, 0.0, p1.Position.Y)
	h.tickUntil(ticksFor(cfg.Execution.Timeout), func() bool { return !h.executing(cfg.Player1) })
	assert.Equal(t, 12.0, p1.Position.X)
	assert.Equal(t, 1, *hits)
}

func TestExecutionTimeout(t *testing.T) {
	restoreMatchConfig(t)
	cfg.Execution.CompleteAt = 2 // never reached
	cfg.Execution.Timeout = 0.1

	h := newHarness(t)
	h.place(0, 100)
	require.True(t, h.sim.ExecuteMove(cfg.Player1, cfg.MoveHighPunch))

	h.ticks(ticksFor(0.1) - 1)
	assert.True(t, h.executing(cfg.Player1))
	h.ticks(1)
	assert.False(t, h.executing(cfg.Player1))
}

func TestExecuteMoveRejects(t *testing.T) {
	h := newHarness(t)
	h.place(0, 100)

	assert.False(t, h.sim.ExecuteMove(cfg.Player1, cfg.MoveNone))
	assert.False(t, h.sim.ExecuteMove(cfg.Player1, cfg.MoveGreet))
	assert.False(t, h.sim.ExecuteMove(cfg.Player1, cfg.MoveID(99)))
	assert.False(t, h.sim.ExecuteMove(cfg.Player1, cfg.MoveID(-1)))
	assert.False(t, h.sim.ExecuteMove(5, cfg.MoveHighPunch))

	require.True(t, h.sim.ExecuteMove(cfg.Player1, cfg.MoveHighPunch))
	assert.False(t, h.sim.ExecuteMove(cfg.Player1, cfg.MoveLowKick), "already executing")
	assert.Equal(t, cfg.MoveHighPunch, h.sim.Fighter(cfg.Player1).CurrentMove)

	h.sim.Fighter(cfg.Player2).Frozen = true
	assert.False(t, h.sim.ExecuteMove(cfg.Player2, cfg.MoveHighPunch), "frozen")
	assert.Equal(t, []cfg.MoveID{cfg.MoveHighPunch}, h.rec.attacks)
}

func TestInterrupt(t *testing.T) {
	h := newHarness(t)
	h.place(0, 100)
	require.True(t, h.sim.ExecuteMove(cfg.Player1, cfg.MoveJump))
	h.ticks(20)

	p1 := h.sim.Fighter(cfg.Player1)
	mid := p1.Position
	require.Greater(t, mid.Y, 0.0)

	h.sim.Interrupt(cfg.Player1)
	assert.False(t, p1.Executing)
	assert.Equal(t, mid, p1.Position, "interrupt leaves the fighter where it stands")

	h.sim.Interrupt(cfg.Player1)
	h.sim.Interrupt(cfg.Player2)
	h.sim.Interrupt(9)
	assert.False(t, p1.Executing)

	h.ticks(5)
	assert.Equal(t, mid, p1.Position)
	assert.True(t, h.sim.ExecuteMove(cfg.Player1, cfg.MoveHighPunch), "idle again after interrupt")
}

func TestFrozenFighterHoldsItsMove(t *testing.T) {
	h := newHarness(t)
	h.place(0, 100)
	require.True(t, h.sim.ExecuteMove(cfg.Player1, cfg.MoveHighPunch))
	h.ticks(5)

	ex := components.Execution.Get(h.sim.FighterEntry(cfg.Player1))
	elapsed, deadline := ex.Elapsed, ex.Timeout.Deadline

	h.sim.Fighter(cfg.Player1).Frozen = true
	h.ticks(10)
	assert.Equal(t, elapsed, ex.Elapsed)
	assert.InDelta(t, deadline+10*cfg.TickDuration(), ex.Timeout.Deadline, 1e-9)
	assert.True(t, h.executing(cfg.Player1))

	h.sim.Fighter(cfg.Player1).Frozen = false
	h.tickUntil(ticksFor(1), func() bool { return !h.executing(cfg.Player1) })
}
