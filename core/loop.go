package core

import (
	"context"
	"time"

	cfg "github.com/automoto/kumite/config"
	"go.uber.org/zap"
)

// GameLoop ticks a Simulation in real time for headless runs.
type GameLoop struct {
	sim      *Simulation
	tickRate int
	logger   *zap.Logger
	stopChan chan struct{}
}

// NewGameLoop creates a loop running sim at tickRate ticks per second.
func NewGameLoop(sim *Simulation, tickRate int, logger *zap.Logger) *GameLoop {
	if logger == nil {
		logger = zap.NewNop()
	}
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		sim:      sim,
		tickRate: tickRate,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Run ticks until the context is done, Stop is called or the match is over.
func (g *GameLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	g.logger.Info("game loop started", zap.Int("tickRate", g.tickRate))

	for {
		select {
		case <-ctx.Done():
			g.logger.Info("game loop stopped", zap.Error(ctx.Err()))
			return ctx.Err()
		case <-g.stopChan:
			g.logger.Info("game loop stopped")
			return nil
		case <-ticker.C:
			g.sim.Tick()
			if g.sim.MatchOver() {
				g.logger.Info("game loop finished", zap.Int64("ticks", g.sim.CurrentTick()))
				return nil
			}
		}
	}
}

// Stop ends Run. It must be called at most once.
func (g *GameLoop) Stop() {
	close(g.stopChan)
}

// RunTicks advances the simulation as fast as possible, up to limit ticks
// or until the match is over. It returns the number of ticks run.
func (s *Simulation) RunTicks(limit int) int {
	for n := 0; n < limit; n++ {
		s.Tick()
		if s.MatchOver() {
			return n + 1
		}
	}
	return limit
}

// MatchOver reports whether the match has finished.
func (s *Simulation) MatchOver() bool {
	m := s.Match()
	return m != nil && m.State == cfg.MatchStateMatchOver
}
