package main

import (
	"flag"
	"log"

	"github.com/automoto/kumite/assets"
	"github.com/automoto/kumite/config"
	"github.com/automoto/kumite/fonts"
	"github.com/automoto/kumite/scenes"
	"github.com/automoto/kumite/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	assetDir := flag.String("assets", "assets", "Directory with audio and stages (bundled stages are used as fallback)")
	stagePath := flag.String("stage", assets.DefaultStage, "TMX stage inside the asset directory")
	overrides := flag.String("overrides", "", "YAML tuning overrides")
	watch := flag.Bool("watch", true, "Reload the overrides file when it changes")
	fontPath := flag.String("font", "", "TTF font for the HUD (built-in bitmap font if empty)")
	debug := flag.Bool("debug", false, "Show hitboxes and match state")
	quiet := flag.Bool("quiet", false, "Only log warnings and errors")
	flag.Parse()

	logger, err := newLogger(*quiet)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if *overrides != "" {
		if err := config.LoadOverrides(*overrides); err != nil {
			logger.Fatal("invalid overrides", zap.String("path", *overrides), zap.Error(err))
		}
	}
	config.Debug.ShowHitboxes = *debug

	if *fontPath != "" {
		if err := fonts.LoadFile(*fontPath); err != nil {
			logger.Warn("using built-in font", zap.Error(err))
			fonts.UseFallback()
		}
	} else {
		fonts.UseFallback()
	}

	fsys := assets.Open(*assetDir)
	systems.InitAudio(fsys, logger)
	systems.PreloadAllSFX()

	input := systems.NewKeyboardInput()
	settings := systems.OpenSettings(logger)
	settings.Apply(input)

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Kumite")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.Sim.TickRate)

	watched := ""
	if *watch {
		watched = *overrides
	}

	scene := scenes.NewDojoScene(scenes.DojoOptions{
		Assets:        fsys,
		StagePath:     *stagePath,
		OverridesPath: watched,
		Input:         input,
		Settings:      settings,
		Logger:        logger,
	})
	defer scene.Close()

	if err := ebiten.RunGame(&Game{scene: scene}); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}

func newLogger(quiet bool) (*zap.Logger, error) {
	if quiet {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
