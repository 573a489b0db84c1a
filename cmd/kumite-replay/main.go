package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/kumite/assets"
	"github.com/automoto/kumite/config"
	"github.com/automoto/kumite/core"
	"github.com/automoto/kumite/shared/replay"
	"github.com/automoto/kumite/shared/stage"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

func main() {
	assetDir := flag.String("assets", "", "Asset directory (bundled assets if empty)")
	scriptPath := flag.String("script", "replays/exchange.yaml", "Replay script inside the asset directory")
	overrides := flag.String("overrides", "", "YAML tuning overrides")
	realtime := flag.Bool("realtime", false, "Tick at the configured rate instead of as fast as possible")
	maxTicks := flag.Int("max-ticks", 60*600, "Upper bound on ticks when the script has no duration")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if *overrides != "" {
		if err := config.LoadOverrides(*overrides); err != nil {
			logger.Fatal("invalid overrides", zap.String("path", *overrides), zap.Error(err))
		}
	}

	fsys := assets.Open(*assetDir)
	script, err := replay.Load(fsys, *scriptPath)
	if err != nil {
		logger.Fatal("load script", zap.Error(err))
	}

	st := stage.Default()
	if script.Stage != "" {
		if st, err = stage.Load(fsys, script.Stage); err != nil {
			logger.Fatal("load stage", zap.Error(err))
		}
	}

	sim := core.NewSimulation(donburi.NewWorld(), st,
		core.WithInput(script),
		core.WithAnnouncer(&logAnnouncer{logger: logger}),
		core.WithScoreboard(&logScoreboard{logger: logger}),
		core.WithLogger(logger),
	)
	sim.StartMatch()

	limit := script.Ticks()
	if limit <= 0 {
		limit = *maxTicks
	}

	if *realtime {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		ctx, cancel := context.WithTimeout(ctx, time.Duration(limit)*time.Second/time.Duration(config.Sim.TickRate))
		defer cancel()
		if err := core.NewGameLoop(sim, config.Sim.TickRate, logger).Run(ctx); err != nil && ctx.Err() == nil {
			logger.Fatal("game loop", zap.Error(err))
		}
	} else {
		sim.RunTicks(limit)
	}

	m := sim.Match()
	logger.Info("replay finished",
		zap.String("script", script.Name),
		zap.Int64("ticks", sim.CurrentTick()),
		zap.Stringer("state", m.State),
		zap.Int("p1Points", m.Scores[config.Player1].Points),
		zap.Int("p2Points", m.Scores[config.Player2].Points),
		zap.Int("p1Health", m.Scores[config.Player1].Health),
		zap.Int("p2Health", m.Scores[config.Player2].Health),
		zap.Int("winner", m.WinnerIndex),
	)
}

// logAnnouncer writes the sensei's lines to the log.
type logAnnouncer struct {
	logger *zap.Logger
}

func (a *logAnnouncer) ShowMessage(text string) {
	a.logger.Info("sensei", zap.String("message", text))
}

func (a *logAnnouncer) HideMessage() {}

// logScoreboard logs score and health changes. The clock is too chatty to log.
type logScoreboard struct {
	logger *zap.Logger
}

func (s *logScoreboard) SetScore(playerIndex, value int) {
	s.logger.Info("score", zap.Int("player", playerIndex+1), zap.Int("points", value))
}

func (s *logScoreboard) SetHealthLevel(playerIndex, units int) {
	s.logger.Info("health", zap.Int("player", playerIndex+1), zap.Int("units", units))
}

func (s *logScoreboard) SetTimer(float64) {}
