package core

import (
	"github.com/automoto/kumite/archetypes"
	"github.com/automoto/kumite/components"
	cfg "github.com/automoto/kumite/config"
	"github.com/automoto/kumite/shared/stage"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

// Simulation advances both fighters and the match one fixed tick at a time.
// It owns no goroutines; callers drive it from their own loop.
type Simulation struct {
	world    donburi.World
	stage    *stage.Stage
	fighters [2]*donburi.Entry
	match    *donburi.Entry
	clock    *donburi.Entry

	input      InputSource
	audio      Audio
	announcer  Announcer
	scoreboard Scoreboard
	logger     *zap.Logger
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithInput sets the per-tick input source.
func WithInput(in InputSource) Option {
	return func(s *Simulation) { s.input = in }
}

// WithAudio sets the sound collaborator.
func WithAudio(a Audio) Option {
	return func(s *Simulation) { s.audio = a }
}

// WithAnnouncer sets the speech bubble collaborator.
func WithAnnouncer(a Announcer) Option {
	return func(s *Simulation) { s.announcer = a }
}

// WithScoreboard sets the score/health/timer collaborator.
func WithScoreboard(sb Scoreboard) Option {
	return func(s *Simulation) { s.scoreboard = sb }
}

// WithLogger sets the logger. A nil logger is replaced by a no-op one.
func WithLogger(l *zap.Logger) Option {
	return func(s *Simulation) { s.logger = l }
}

// NewSimulation creates both fighters, the match and the clock in w.
// A nil stage uses stage.Default.
func NewSimulation(w donburi.World, st *stage.Stage, opts ...Option) *Simulation {
	if st == nil {
		st = stage.Default()
	}

	s := &Simulation{
		world: w,
		stage: st,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}

	for i := range s.fighters {
		entry := archetypes.Fighter.Spawn(w)
		start := math.Vec2{X: st.Starts[i].X}
		components.Fighter.SetValue(entry, components.FighterData{
			PlayerIndex:      i,
			Position:         start,
			StartPosition:    start,
			FacingRight:      st.Starts[i].FacingRight,
			StartFacingRight: st.Starts[i].FacingRight,
			PlaybackRate:     1,
		})
		components.PlayerInput.Get(entry).PlayerIndex = i
		s.fighters[i] = entry
	}

	s.match = archetypes.Match.Spawn(w)
	components.Match.Get(s.match).Reset()

	s.clock = archetypes.Clock.Spawn(w)
	components.Clock.SetValue(s.clock, components.ClockData{Rate: cfg.Sim.TickRate})

	components.HitLanded.Subscribe(w, s.onHitLanded)

	s.logger.Debug("simulation created",
		zap.String("stage", st.Name),
		zap.Float64("p1X", st.Starts[cfg.Player1].X),
		zap.Float64("p2X", st.Starts[cfg.Player2].X),
		zap.Int("tickRate", cfg.Sim.TickRate),
	)
	return s
}

// Tick advances the simulation by one fixed step: clock, input sampling,
// combo resolution and walking, move execution, hit processing, then the
// match. Fighter 1 always runs before fighter 2.
func (s *Simulation) Tick() {
	clock := components.Clock.Get(s.clock)
	clock.Tick++
	now, dt := clock.Now(), clock.Delta()

	s.sampleInput(clock.Tick)

	inputEnabled := false
	if m := s.Match(); m != nil {
		inputEnabled = m.InputEnabled
	}
	for i := range s.fighters {
		s.updateFighterInput(i, now, dt, inputEnabled)
	}

	for i := range s.fighters {
		s.advanceExecution(i, now, dt)
	}

	components.HitLanded.ProcessEvents(s.world)

	s.advanceMatch(now, dt)
}

func (s *Simulation) sampleInput(tick int64) {
	for i := range s.fighters {
		entry := s.FighterEntry(i)
		if entry == nil {
			continue
		}
		var next components.InputFrame
		if s.input != nil {
			next = s.input.Sample(tick, i)
		}
		components.PlayerInput.Get(entry).Push(next)
	}
}

// World returns the world the simulation lives in.
func (s *Simulation) World() donburi.World {
	return s.world
}

// Stage returns the stage layout in use.
func (s *Simulation) Stage() *stage.Stage {
	return s.stage
}

// FighterEntry returns the entry of a fighter, or nil if it is absent.
func (s *Simulation) FighterEntry(playerIndex int) *donburi.Entry {
	if playerIndex < 0 || playerIndex >= len(s.fighters) {
		return nil
	}
	entry := s.fighters[playerIndex]
	if entry == nil || !entry.Valid() {
		return nil
	}
	return entry
}

// Fighter returns a fighter's data, or nil if it is absent.
func (s *Simulation) Fighter(playerIndex int) *components.FighterData {
	entry := s.FighterEntry(playerIndex)
	if entry == nil {
		return nil
	}
	return components.Fighter.Get(entry)
}

// Match returns the match data, or nil if the match entity was removed.
func (s *Simulation) Match() *components.MatchData {
	if s.match == nil || !s.match.Valid() {
		return nil
	}
	return components.Match.Get(s.match)
}

// Now returns simulation seconds.
func (s *Simulation) Now() float64 {
	return components.Clock.Get(s.clock).Now()
}

// CurrentTick returns the number of ticks run so far.
func (s *Simulation) CurrentTick() int64 {
	return components.Clock.Get(s.clock).Tick
}

func opponentOf(playerIndex int) int {
	return 1 - playerIndex
}
