package core

import (
	"math"
	"testing"

	cfg "github.com/automoto/kumite/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// pressBoth holds actions for both players on the next tick and runs it.
func (h *harness) pressBoth(actions ...cfg.ActionID) {
	next := h.sim.CurrentTick() + 1
	h.in.hold(next, 1, cfg.Player1, actions...)
	h.in.hold(next, 1, cfg.Player2, actions...)
	h.sim.Tick()
}

func (h *harness) announcementTicks() int {
	return ticksFor(cfg.Match.HurtDuration+cfg.Match.AnnounceHold+cfg.Match.ScoreHold) + 5
}

func (h *harness) endingTicks() int {
	return ticksFor(cfg.Match.TimeUpHold+cfg.Match.MatchOverPause) + 5
}

func TestIntro(t *testing.T) {
	h := newHarness(t)
	h.sim.StartMatch()

	m := h.sim.Match()
	assert.Equal(t, cfg.MatchStateIntro, m.State)
	assert.True(t, m.MatchActive)
	assert.False(t, m.InputEnabled)
	assert.Equal(t, cfg.MessageBegin, h.rec.lastMessage())
	assert.Equal(t, cfg.MoveGreet, h.sim.Fighter(cfg.Player1).Pose)
	assert.Equal(t, cfg.MoveGreet, h.sim.Fighter(cfg.Player2).Pose)
	assert.Equal(t, map[int]int{0: 0, 1: 0}, h.rec.scores)
	assert.Equal(t, map[int]int{0: cfg.Match.MaxHealth, 1: cfg.Match.MaxHealth}, h.rec.health)
	assert.Equal(t, cfg.Match.RoundDuration, h.rec.timer)

	// Fighting input is ignored while the fighters greet.
	h.press(cfg.Player1, cfg.ActionFire1)
	assert.False(t, h.sim.Fighter(cfg.Player1).Executing)
	assert.Empty(t, h.rec.attacks)

	h.tickUntil(ticksFor(cfg.Match.GreetDuration)+2, func() bool {
		return h.state() == cfg.MatchStateRoundActive
	})
	assert.Equal(t, hiddenMessage, h.rec.lastMessage())
	assert.True(t, m.InputEnabled)
	assert.True(t, m.RoundActive)
	assert.Equal(t, cfg.MoveNone, h.sim.Fighter(cfg.Player1).Pose)
	assert.InDelta(t, cfg.Match.GreetDuration, h.sim.Now(), 2*cfg.TickDuration())
}

func TestJumpFromInput(t *testing.T) {
	h := newHarness(t)
	h.startRound()

	h.press(cfg.Player1, cfg.ActionUp)
	h.ticks(3)
	h.press(cfg.Player1, cfg.ActionRight)

	p1 := h.sim.Fighter(cfg.Player1)
	assert.True(t, p1.Executing)
	assert.Equal(t, cfg.MoveJump, p1.CurrentMove)
	assert.Equal(t, []cfg.MoveID{cfg.MoveJump}, h.rec.attacks)
}

func TestAnkleKickFromDownTimeout(t *testing.T) {
	h := newHarness(t)
	h.startRound()

	h.press(cfg.Player2, cfg.ActionDown)
	h.ticks(ticksFor(cfg.Combo.Window) - 2)
	assert.False(t, h.sim.Fighter(cfg.Player2).Executing)

	h.ticks(ticksFor(0.25) - ticksFor(cfg.Combo.Window) + 1)
	p2 := h.sim.Fighter(cfg.Player2)
	assert.True(t, p2.Executing)
	assert.Equal(t, cfg.MoveAnkleKick, p2.CurrentMove)
}

func TestFullPointHit(t *testing.T) {
	h := newHarness(t)
	hits := h.countHits()
	h.startRound()
	h.place(0, 1.2)

	h.press(cfg.Player1, cfg.ActionFire1)
	require.Equal(t, cfg.MoveHighPunch, h.sim.Fighter(cfg.Player1).CurrentMove)
	h.tickUntil(ticksFor(0.5), func() bool { return h.state() == cfg.MatchStateHitFreeze })

	m := h.sim.Match()
	assert.Equal(t, 1, *hits)
	assert.Equal(t, cfg.Match.FullPointValue, m.Scores[cfg.Player1].Points)
	assert.Equal(t, cfg.Match.MaxHealth-2, m.Scores[cfg.Player2].Health)
	assert.Equal(t, cfg.Match.FullPointValue, h.rec.scores[cfg.Player1])
	assert.Equal(t, cfg.Match.MaxHealth-2, h.rec.health[cfg.Player2])
	assert.Equal(t, []cfg.MoveID{cfg.MoveHighPunch}, h.rec.hurts)
	assert.False(t, m.InputEnabled)

	p1, p2 := h.sim.Fighter(cfg.Player1), h.sim.Fighter(cfg.Player2)
	assert.Equal(t, cfg.MoveHurt, p2.Pose)
	assert.True(t, p1.Frozen)
	assert.True(t, p2.Frozen)
	assert.Zero(t, p1.PlaybackRate)

	h.tickUntil(h.announcementTicks(), func() bool { return h.state() == cfg.MatchStateRoundActive })
	n := len(h.rec.messages)
	require.GreaterOrEqual(t, n, 3)
	assert.Equal(t, []string{cfg.MessageFullPoint, "1000", hiddenMessage}, h.rec.messages[n-3:])

	assert.Equal(t, -3.0, p1.Position.X)
	assert.Equal(t, 3.0, p2.Position.X)
	assert.True(t, p1.FacingRight)
	assert.False(t, p2.FacingRight)
	assert.False(t, p1.Frozen)
	assert.False(t, p1.Executing)
	assert.True(t, m.InputEnabled)
	assert.Equal(t, 1, *hits)
}

func TestHalfPointHit(t *testing.T) {
	h := newHarness(t)
	h.startRound()
	h.place(0, 2.5)

	h.press(cfg.Player1, cfg.ActionDown)
	h.press(cfg.Player1, cfg.ActionFire2)
	require.Equal(t, cfg.MoveCrouchKick, h.sim.Fighter(cfg.Player1).CurrentMove)
	h.tickUntil(ticksFor(0.5), func() bool { return h.state() == cfg.MatchStateHitFreeze })

	m := h.sim.Match()
	assert.Equal(t, cfg.Match.HalfPointValue, m.Scores[cfg.Player1].Points)
	assert.Equal(t, cfg.Match.MaxHealth-1, m.Scores[cfg.Player2].Health)

	h.tickUntil(h.announcementTicks(), func() bool { return h.state() == cfg.MatchStateRoundActive })
	n := len(h.rec.messages)
	assert.Equal(t, []string{cfg.MessageHalfPoint, "500", hiddenMessage}, h.rec.messages[n-3:])
}

func TestGroinPunchHurtPose(t *testing.T) {
	h := newHarness(t)
	h.startRound()
	h.place(0, 1.2)

	h.press(cfg.Player1, cfg.ActionDown)
	h.press(cfg.Player1, cfg.ActionRight)
	h.press(cfg.Player1, cfg.ActionFire1)
	require.Equal(t, cfg.MoveGroinPunch, h.sim.Fighter(cfg.Player1).CurrentMove)
	h.tickUntil(ticksFor(0.5), func() bool { return h.state() == cfg.MatchStateHitFreeze })

	assert.Equal(t, cfg.MoveHurtGroin, h.sim.Fighter(cfg.Player2).Pose)
	assert.Equal(t, []cfg.MoveID{cfg.MoveGroinPunch}, h.rec.hurts)
}

func TestDefenderMoveIsInterrupted(t *testing.T) {
	h := newHarness(t)
	h.startRound()
	h.place(0, 100)
	require.True(t, h.sim.ExecuteMove(cfg.Player2, cfg.MoveJump))
	h.ticks(5)

	h.sim.OnFighterHit(cfg.Player1, cfg.MoveHighKick)
	assert.Equal(t, cfg.MatchStateHitFreeze, h.state())
	assert.False(t, h.sim.Fighter(cfg.Player2).Executing)
}

func TestOnFighterHit(t *testing.T) {
	tests := []struct {
		name       string
		move       cfg.MoveID
		wantPoints int
		wantHealth int
	}{
		{"full point", cfg.MoveHighKick, 1000, 6},
		{"half point", cfg.MoveAnkleKick, 500, 7},
		{"pose scores as half", cfg.MoveWalk, 500, 7},
		{"jump scores as half", cfg.MoveJump, 500, 7},
		{"unknown move scores as half", cfg.MoveID(42), 500, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.startRound()
			h.sim.OnFighterHit(cfg.Player2, tt.move)

			m := h.sim.Match()
			assert.Equal(t, tt.wantPoints, m.Scores[cfg.Player2].Points)
			assert.Equal(t, tt.wantHealth, m.Scores[cfg.Player1].Health)
			assert.Zero(t, m.Scores[cfg.Player1].Points)
			assert.Equal(t, cfg.Match.MaxHealth, m.Scores[cfg.Player2].Health)
			assert.Equal(t, cfg.MatchStateHitFreeze, h.state())
		})
	}
}

func TestHealthNeverNegative(t *testing.T) {
	h := newHarness(t)
	h.startRound()
	m := h.sim.Match()
	m.Scores[cfg.Player2].Health = 1

	h.sim.OnFighterHit(cfg.Player1, cfg.MoveHighKick)
	assert.Zero(t, m.Scores[cfg.Player2].Health)
	assert.Zero(t, h.rec.health[cfg.Player2])
}

func TestOnFighterHitIgnoredOutsideMatch(t *testing.T) {
	h := newHarness(t)
	h.sim.OnFighterHit(cfg.Player1, cfg.MoveHighKick)

	m := h.sim.Match()
	assert.Zero(t, m.Scores[cfg.Player1].Points)
	assert.Equal(t, cfg.MatchStateIntro, m.State)
}

func TestMissingFighter(t *testing.T) {
	h := newHarness(t)
	h.startRound()
	h.sim.World().Remove(h.sim.FighterEntry(cfg.Player2).Entity())
	require.Nil(t, h.sim.Fighter(cfg.Player2))

	assert.NotPanics(t, func() {
		h.sim.OnFighterHit(cfg.Player1, cfg.MoveHighPunch)
		h.sim.OnFighterHit(cfg.Player2, cfg.MoveHighPunch)
		h.sim.Interrupt(cfg.Player2)
		assert.False(t, h.sim.HitCheck(cfg.Player1, cfg.MoveHighPunch))
		h.ticks(h.announcementTicks())
	})

	m := h.sim.Match()
	assert.Equal(t, cfg.Match.FullPointValue, m.Scores[cfg.Player1].Points)
	assert.Equal(t, cfg.Match.MaxHealth, m.Scores[cfg.Player2].Health)
	assert.Zero(t, m.Scores[cfg.Player2].Points)
}

func TestTimeUpDraw(t *testing.T) {
	h := newHarness(t)
	h.startRound()
	h.sim.Match().RoundTimer = 0.05

	h.tickUntil(ticksFor(0.05)+1, func() bool { return h.state() == cfg.MatchStateMatchEnding })
	m := h.sim.Match()
	assert.True(t, m.TimedOut)
	assert.Zero(t, m.RoundTimer)
	assert.Zero(t, h.rec.timer)
	assert.Equal(t, cfg.MessageTime, h.rec.lastMessage())
	assert.False(t, m.InputEnabled)

	h.tickUntil(h.endingTicks(), func() bool { return h.state() == cfg.MatchStateMatchOver })
	n := len(h.rec.messages)
	assert.Equal(t, []string{cfg.MessageTime, cfg.MessageMatchOver, cfg.MessageDraw}, h.rec.messages[n-3:])
	assert.Equal(t, cfg.WinnerDraw, m.WinnerIndex)
	assert.False(t, m.MatchActive)
	assert.True(t, h.sim.MatchOver())
}

func TestTimeUpLeaderWins(t *testing.T) {
	h := newHarness(t)
	h.startRound()
	h.sim.OnFighterHit(cfg.Player2, cfg.MoveAnkleKick)
	h.tickUntil(h.announcementTicks(), func() bool { return h.state() == cfg.MatchStateRoundActive })

	h.sim.Match().RoundTimer = 0.01
	h.tickUntil(h.endingTicks(), func() bool { return h.state() == cfg.MatchStateMatchOver })
	assert.Equal(t, cfg.Player2, h.sim.Match().WinnerIndex)
	assert.Equal(t, cfg.MessageYouLose, h.rec.lastMessage())
}

func TestKnockout(t *testing.T) {
	h := newHarness(t)
	h.startRound()
	m := h.sim.Match()
	m.Scores[cfg.Player2].Health = 2
	h.place(0, 1.2)

	h.press(cfg.Player1, cfg.ActionFire1)
	h.tickUntil(ticksFor(0.5), func() bool { return h.state() == cfg.MatchStateHitFreeze })
	assert.Zero(t, m.Scores[cfg.Player2].Health)

	h.tickUntil(h.announcementTicks(), func() bool { return h.state() == cfg.MatchStateMatchEnding })
	assert.False(t, m.TimedOut)

	h.tickUntil(h.endingTicks(), func() bool { return h.state() == cfg.MatchStateMatchOver })
	n := len(h.rec.messages)
	assert.Equal(t, []string{hiddenMessage, cfg.MessageMatchOver, cfg.MessageYouWin}, h.rec.messages[n-3:])
	assert.Equal(t, cfg.Player1, m.WinnerIndex)
	assert.NotContains(t, h.rec.messages, cfg.MessageTime)
}

func TestSimultaneousHitsKeepFirst(t *testing.T) {
	h := newHarness(t)
	hits := h.countHits()
	h.startRound()
	h.place(0, 1.2)

	h.pressBoth(cfg.ActionFire1)
	h.tickUntil(ticksFor(0.5), func() bool { return h.state() == cfg.MatchStateHitFreeze })

	m := h.sim.Match()
	assert.Equal(t, 2, *hits, "both hits land on the same tick")
	assert.Equal(t, cfg.Match.FullPointValue, m.Scores[cfg.Player1].Points)
	assert.Zero(t, m.Scores[cfg.Player2].Points)
	assert.Equal(t, cfg.Match.MaxHealth, m.Scores[cfg.Player1].Health)
	assert.Equal(t, cfg.Match.MaxHealth-2, m.Scores[cfg.Player2].Health)
	assert.Len(t, h.rec.hurts, 1)
}

func TestRestartMatchCancelsPendingWaits(t *testing.T) {
	h := newHarness(t)
	h.startRound()
	h.sim.OnFighterHit(cfg.Player1, cfg.MoveHighKick)
	require.Equal(t, cfg.MatchStateHitFreeze, h.state())

	h.sim.RestartMatch()
	m := h.sim.Match()
	assert.Equal(t, cfg.MatchStateIntro, m.State)
	assert.Zero(t, m.Scores[cfg.Player1].Points)
	assert.Equal(t, cfg.Match.MaxHealth, m.Scores[cfg.Player2].Health)
	assert.False(t, h.sim.Fighter(cfg.Player1).Frozen)

	h.ticks(ticksFor(cfg.Match.HurtDuration) + 1)
	assert.Equal(t, cfg.MatchStateIntro, h.state())
	assert.Equal(t, cfg.MessageBegin, h.rec.lastMessage())
	assert.NotContains(t, h.rec.messages, cfg.MessageFullPoint)

	h.tickUntil(ticksFor(cfg.Match.GreetDuration)+2, func() bool { return h.state() == cfg.MatchStateRoundActive })
}

func TestRestartAfterMatchOver(t *testing.T) {
	h := newHarness(t)
	h.startRound()
	h.sim.Match().RoundTimer = 0.01
	h.tickUntil(h.endingTicks(), h.sim.MatchOver)

	h.sim.RestartMatch()
	m := h.sim.Match()
	assert.True(t, m.MatchActive)
	assert.Equal(t, cfg.WinnerNone, m.WinnerIndex)
	assert.Equal(t, cfg.Match.RoundDuration, m.RoundTimer)
	assert.False(t, m.TimedOut)
}

func TestRoundTimerCountsDown(t *testing.T) {
	h := newHarness(t)
	h.startRound()
	before := h.rec.timerSet

	h.ticks(cfg.Sim.TickRate)
	assert.InDelta(t, cfg.Match.RoundDuration-1, h.rec.timer, 1e-6)
	assert.Equal(t, before+cfg.Sim.TickRate, h.rec.timerSet)
}

func TestRoundLastsExactTickCount(t *testing.T) {
	h := newHarness(t)
	h.startRound()

	want := int(math.Round(cfg.Match.RoundDuration * float64(cfg.Sim.TickRate)))
	n := 0
	for h.state() == cfg.MatchStateRoundActive && n <= want+5 {
		h.sim.Tick()
		n++
	}
	assert.Equal(t, want, n)
	assert.Equal(t, cfg.MatchStateMatchEnding, h.state())
	assert.Zero(t, h.sim.Match().RoundTimer)
}

func TestOnFighterHitIgnoredDuringAnnouncement(t *testing.T) {
	h := newHarness(t)
	h.startRound()
	h.sim.OnFighterHit(cfg.Player1, cfg.MoveHighKick)
	require.Equal(t, cfg.MatchStateHitFreeze, h.state())

	m := h.sim.Match()
	h.sim.OnFighterHit(cfg.Player1, cfg.MoveHighKick)
	h.sim.OnFighterHit(cfg.Player2, cfg.MoveAnkleKick)
	assert.Equal(t, cfg.Match.FullPointValue, m.Scores[cfg.Player1].Points)
	assert.Equal(t, cfg.Match.MaxHealth-cfg.Match.FullPointDamage, m.Scores[cfg.Player2].Health)
	assert.Zero(t, m.Scores[cfg.Player2].Points)
	assert.Equal(t, cfg.Match.MaxHealth, m.Scores[cfg.Player1].Health)

	// Still ignored while the result is being called.
	m.Scores[cfg.Player2].Health = 0
	h.tickUntil(h.announcementTicks(), func() bool { return h.state() == cfg.MatchStateMatchEnding })
	h.sim.OnFighterHit(cfg.Player2, cfg.MoveHighKick)
	assert.Zero(t, m.Scores[cfg.Player2].Points)
}

func TestOnFighterHitIgnoredDuringIntro(t *testing.T) {
	h := newHarness(t)
	h.sim.StartMatch()
	require.Equal(t, cfg.MatchStateIntro, h.state())

	h.sim.OnFighterHit(cfg.Player1, cfg.MoveHighKick)
	m := h.sim.Match()
	assert.Zero(t, m.Scores[cfg.Player1].Points)
	assert.Equal(t, cfg.Match.MaxHealth, m.Scores[cfg.Player2].Health)
	assert.Equal(t, cfg.MatchStateIntro, h.state())
}

func TestWalking(t *testing.T) {
	h := newHarness(t)
	h.startRound()
	p1 := h.sim.Fighter(cfg.Player1)

	h.in.hold(h.sim.CurrentTick()+1, ticksFor(0.5), cfg.Player1, cfg.ActionRight)
	h.ticks(ticksFor(0.5))
	assert.InDelta(t, -3+5*cfg.Walk.StepDistance, p1.Position.X, 1e-9)
	assert.Equal(t, cfg.MoveWalk, p1.Pose)
	assert.False(t, p1.Executing)

	h.ticks(1)
	assert.Equal(t, cfg.MoveNone, p1.Pose)
	assert.InDelta(t, -3+5*cfg.Walk.StepDistance, p1.Position.X, 1e-9)
	assert.True(t, p1.FacingRight)
}

func TestWalkingStopsAtStageBounds(t *testing.T) {
	h := newHarness(t)
	h.startRound()
	h.place(h.sim.Stage().MinX+0.1, 3)
	p1 := h.sim.Fighter(cfg.Player1)

	h.in.hold(h.sim.CurrentTick()+1, ticksFor(1), cfg.Player1, cfg.ActionLeft)
	h.ticks(ticksFor(1))
	assert.Equal(t, h.sim.Stage().MinX, p1.Position.X)
	assert.True(t, p1.FacingRight, "walking back does not turn the fighter")
}

func TestTurnAroundFromInput(t *testing.T) {
	h := newHarness(t)
	h.startRound()
	p1 := h.sim.Fighter(cfg.Player1)

	h.press(cfg.Player1, cfg.ActionLeft)
	h.ticks(2)
	h.press(cfg.Player1, cfg.ActionLeft)
	assert.False(t, p1.FacingRight)
}

func TestNilCollaborators(t *testing.T) {
	sim := NewSimulation(donburi.NewWorld(), nil)
	assert.NotPanics(t, func() {
		sim.StartMatch()
		sim.RunTicks(ticksFor(cfg.Match.GreetDuration) + 2)
		sim.Fighter(cfg.Player2).Position.X = 1.2
		sim.Fighter(cfg.Player1).Position.X = 0
		require.True(t, sim.ExecuteMove(cfg.Player1, cfg.MoveHighPunch))
		sim.RunTicks(ticksFor(1))
		sim.Match().RoundTimer = 0.01
		sim.RunTicks(ticksFor(10))
	})
	assert.True(t, sim.MatchOver())
	assert.Equal(t, cfg.Player1, sim.Match().WinnerIndex)
}
