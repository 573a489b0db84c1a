package scenes

import (
	"image/color"
	"io/fs"

	cfg "github.com/automoto/kumite/config"
	"github.com/automoto/kumite/core"
	"github.com/automoto/kumite/shared/stage"
	"github.com/automoto/kumite/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// LayerDefault is the only render layer
const LayerDefault ecs.LayerID = iota

// DojoOptions configures a DojoScene
type DojoOptions struct {
	Assets        fs.FS
	StagePath     string
	OverridesPath string // watched tuning file, empty to disable
	Input         *systems.KeyboardInput
	Settings      *systems.Settings
	Logger        *zap.Logger
}

// DojoScene is a single two-player match in the dojo.
type DojoScene struct {
	ecs      *ecs.ECS
	sim      *core.Simulation
	opts     DojoOptions
	watcher  *cfg.Watcher
	logger   *zap.Logger
	finished bool
}

// NewDojoScene loads the stage and starts the first match.
func NewDojoScene(opts DojoOptions) *DojoScene {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Input == nil {
		opts.Input = systems.NewKeyboardInput()
	}
	ds := &DojoScene{opts: opts, logger: opts.Logger}

	if opts.OverridesPath != "" {
		w, err := cfg.NewWatcher(opts.OverridesPath)
		if err != nil {
			ds.logger.Warn("overrides hot reload disabled", zap.String("path", opts.OverridesPath), zap.Error(err))
		} else {
			ds.watcher = w
		}
	}

	ds.configure()
	return ds
}

func (ds *DojoScene) loadStage() *stage.Stage {
	if ds.opts.Assets == nil || ds.opts.StagePath == "" {
		return stage.Default()
	}
	st, err := stage.Load(ds.opts.Assets, ds.opts.StagePath)
	if err != nil {
		ds.logger.Warn("using default stage", zap.String("path", ds.opts.StagePath), zap.Error(err))
		return stage.Default()
	}
	return st
}

func (ds *DojoScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())
	st := ds.loadStage()
	systems.SetStageBounds(st.MinX, st.MaxX)

	hud := systems.NewHUD(ecs.World)
	sfx := systems.NewSFX(ecs)
	ds.sim = core.NewSimulation(ecs.World, st,
		core.WithInput(ds.opts.Input),
		core.WithAudio(sfx),
		core.WithAnnouncer(&sensei{hud: hud, sfx: sfx}),
		core.WithScoreboard(hud),
		core.WithLogger(ds.logger),
	)
	for i := 0; i < 2; i++ {
		if entry := ds.sim.FighterEntry(i); entry != nil {
			systems.AttachAnimations(entry)
		}
	}

	// Audio runs first so sounds queued last frame play without delay
	ecs.AddSystem(systems.UpdateAudio)
	ecs.AddSystem(ds.updateSimulation)
	ecs.AddSystem(systems.UpdateAnimations)
	ecs.AddSystem(systems.UpdateHUD)

	ecs.AddRenderer(LayerDefault, systems.DrawStage)
	ecs.AddRenderer(LayerDefault, systems.DrawFighters)
	ecs.AddRenderer(LayerDefault, systems.DrawHitboxes)
	ecs.AddRenderer(LayerDefault, systems.DrawHUD)
	ecs.AddRenderer(LayerDefault, systems.DrawDebug)

	ds.ecs = ecs
	ds.sim.StartMatch()
}

func (ds *DojoScene) updateSimulation(_ *ecs.ECS) {
	ds.sim.Tick()
	if over := ds.sim.MatchOver(); over && !ds.finished {
		m := ds.sim.Match()
		ds.logger.Info("press enter for a rematch",
			zap.Int("winner", m.WinnerIndex),
			zap.Int("p1Points", m.Scores[cfg.Player1].Points),
			zap.Int("p2Points", m.Scores[cfg.Player2].Points),
		)
	}
	ds.finished = ds.sim.MatchOver()
}

func (ds *DojoScene) Update() {
	keys := systems.ReadShellKeys()
	if ds.opts.Settings != nil {
		ds.opts.Settings.HandleShellKeys(keys, ds.opts.Input)
	} else if keys.ToggleDebug {
		cfg.Debug.ShowHitboxes = !cfg.Debug.ShowHitboxes
	}

	ds.reloadOverrides()

	if keys.Restart && ds.sim.MatchOver() {
		ds.sim.RestartMatch()
	}
	ds.ecs.Update()
}

// reloadOverrides applies the tuning file after it changes on disk. A bad
// edit is logged and the previous values stay in effect.
func (ds *DojoScene) reloadOverrides() {
	if ds.watcher == nil {
		return
	}
	changed, err := ds.watcher.Poll()
	if err != nil {
		ds.logger.Warn("overrides watcher", zap.Error(err))
	}
	if !changed {
		return
	}
	if err := cfg.LoadOverrides(ds.opts.OverridesPath); err != nil {
		ds.logger.Warn("overrides rejected", zap.String("path", ds.opts.OverridesPath), zap.Error(err))
		return
	}
	ds.logger.Info("overrides reloaded", zap.String("path", ds.opts.OverridesPath))
}

func (ds *DojoScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.RGBA{R: 60, G: 40, B: 30, A: 255})
	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}

// Close releases the overrides watcher.
func (ds *DojoScene) Close() {
	if ds.watcher != nil {
		_ = ds.watcher.Close()
	}
}

// sensei speaks through the HUD bubble and calls the start of each match.
type sensei struct {
	hud *systems.HUD
	sfx *systems.SFX
}

func (s *sensei) ShowMessage(text string) {
	s.hud.ShowMessage(text)
	if text == cfg.MessageBegin {
		s.sfx.PlayBegin()
	}
}

func (s *sensei) HideMessage() {
	s.hud.HideMessage()
}
