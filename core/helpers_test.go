package core

import (
	"math"
	"testing"

	"github.com/automoto/kumite/components"
	cfg "github.com/automoto/kumite/config"
	"github.com/automoto/kumite/shared/stage"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"go.uber.org/zap/zaptest"
)

const hiddenMessage = "<hidden>"

// recorder captures every collaborator call.
type recorder struct {
	messages []string
	attacks  []cfg.MoveID
	hurts    []cfg.MoveID
	scores   map[int]int
	health   map[int]int
	timer    float64
	timerSet int
}

func newRecorder() *recorder {
	return &recorder{
		scores: make(map[int]int),
		health: make(map[int]int),
	}
}

func (r *recorder) PlayAttackSound(move cfg.MoveID) { r.attacks = append(r.attacks, move) }
func (r *recorder) PlayHurtSound(move cfg.MoveID)   { r.hurts = append(r.hurts, move) }
func (r *recorder) ShowMessage(text string)         { r.messages = append(r.messages, text) }
func (r *recorder) HideMessage()                    { r.messages = append(r.messages, hiddenMessage) }
func (r *recorder) SetScore(playerIndex, value int) { r.scores[playerIndex] = value }
func (r *recorder) SetHealthLevel(playerIndex, units int) {
	r.health[playerIndex] = units
}
func (r *recorder) SetTimer(seconds float64) {
	r.timer = seconds
	r.timerSet++
}

func (r *recorder) lastMessage() string {
	if len(r.messages) == 0 {
		return ""
	}
	return r.messages[len(r.messages)-1]
}

// scriptedInput replays held actions keyed by tick.
type scriptedInput struct {
	frames map[int64][2]components.InputFrame
}

func newScriptedInput() *scriptedInput {
	return &scriptedInput{frames: make(map[int64][2]components.InputFrame)}
}

func (s *scriptedInput) Sample(tick int64, playerIndex int) components.InputFrame {
	return s.frames[tick][playerIndex]
}

// hold marks actions as held for one player on ticks [from, from+n).
func (s *scriptedInput) hold(from int64, n int, playerIndex int, actions ...cfg.ActionID) {
	for t := from; t < from+int64(n); t++ {
		frame := s.frames[t]
		for _, a := range actions {
			frame[playerIndex][a] = true
		}
		s.frames[t] = frame
	}
}

type harness struct {
	t   *testing.T
	sim *Simulation
	rec *recorder
	in  *scriptedInput
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	rec := newRecorder()
	in := newScriptedInput()
	sim := NewSimulation(donburi.NewWorld(), stage.Default(),
		WithInput(in),
		WithAudio(rec),
		WithAnnouncer(rec),
		WithScoreboard(rec),
		WithLogger(zaptest.NewLogger(t)),
	)
	return &harness{t: t, sim: sim, rec: rec, in: in}
}

// press holds actions for one tick and runs that tick.
func (h *harness) press(playerIndex int, actions ...cfg.ActionID) {
	h.in.hold(h.sim.CurrentTick()+1, 1, playerIndex, actions...)
	h.sim.Tick()
}

func (h *harness) ticks(n int) {
	for i := 0; i < n; i++ {
		h.sim.Tick()
	}
}

// tickUntil runs ticks until cond holds, failing after limit ticks.
func (h *harness) tickUntil(limit int, cond func() bool) {
	h.t.Helper()
	for i := 0; i < limit; i++ {
		if cond() {
			return
		}
		h.sim.Tick()
	}
	require.True(h.t, cond(), "condition not met after %d ticks", limit)
}

func (h *harness) state() cfg.MatchStateID {
	return h.sim.Match().State
}

// startRound starts a match and runs the intro.
func (h *harness) startRound() {
	h.t.Helper()
	h.sim.StartMatch()
	h.tickUntil(ticksFor(cfg.Match.GreetDuration)+2, func() bool {
		return h.state() == cfg.MatchStateRoundActive
	})
}

// place puts both fighters face to face at the given x positions.
func (h *harness) place(x1, x2 float64) {
	p1, p2 := h.sim.Fighter(cfg.Player1), h.sim.Fighter(cfg.Player2)
	p1.Position.X, p1.Position.Y, p1.FacingRight = x1, 0, x1 < x2
	p2.Position.X, p2.Position.Y, p2.FacingRight = x2, 0, x2 < x1
}

func (h *harness) countHits() *int {
	n := 0
	components.HitLanded.Subscribe(h.sim.World(), func(_ donburi.World, _ components.HitLandedEvent) {
		n++
	})
	return &n
}

func ticksFor(seconds float64) int {
	return int(math.Ceil(seconds * float64(cfg.Sim.TickRate)))
}

// restoreMatchConfig undoes changes to tunables made by a test.
func restoreMatchConfig(t *testing.T) {
	t.Helper()
	match, combo, exec, walk := cfg.Match, cfg.Combo, cfg.Execution, cfg.Walk
	t.Cleanup(func() {
		cfg.Match, cfg.Combo, cfg.Execution, cfg.Walk = match, combo, exec, walk
	})
}
