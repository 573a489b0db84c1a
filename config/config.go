package config

import "image/color"

// SimConfig contains the fixed-step simulation settings
type SimConfig struct {
	TickRate int `yaml:"tickRate"` // ticks per second
}

// MatchConfig contains match flow timings and scoring values
type MatchConfig struct {
	// Timing (seconds)
	RoundDuration  float64 `yaml:"roundDuration"`
	GreetDuration  float64 `yaml:"greetDuration"`
	HurtDuration   float64 `yaml:"hurtDuration"`
	AnnounceHold   float64 `yaml:"announceHold"`   // "FULL POINT" / "HALF POINT" on screen
	ScoreHold      float64 `yaml:"scoreHold"`      // score value on screen
	TimeUpHold     float64 `yaml:"timeUpHold"`     // "TIME" before "MATCH OVER"
	MatchOverPause float64 `yaml:"matchOverPause"` // "MATCH OVER" before the result

	// Scoring
	FullPointValue  int `yaml:"fullPointValue"`
	HalfPointValue  int `yaml:"halfPointValue"`
	MaxHealth       int `yaml:"maxHealth"` // health units, two per display circle
	FullPointDamage int `yaml:"fullPointDamage"`
	HalfPointDamage int `yaml:"halfPointDamage"`
}

// ComboConfig contains the input combo settings
type ComboConfig struct {
	Window float64 `yaml:"window"` // seconds a directional press stays valid
}

// WalkConfig contains continuous walking settings
type WalkConfig struct {
	StepDistance float64 `yaml:"stepDistance"` // world units per logical step
	StepDuration float64 `yaml:"stepDuration"` // seconds of held input per step
}

// ExecutionConfig contains move execution settings
type ExecutionConfig struct {
	CompleteAt float64 `yaml:"completeAt"` // progress fraction that ends a move
	Timeout    float64 `yaml:"timeout"`    // hard limit in seconds
}

// StageConfig contains fallback stage layout used when no TMX stage is loaded
type StageConfig struct {
	StartLeft  float64 `yaml:"startLeft"`
	StartRight float64 `yaml:"startRight"`
	MinX       float64 `yaml:"minX"`
	MaxX       float64 `yaml:"maxX"`
}

// UIConfig contains HUD layout and colors
type UIConfig struct {
	PixelsPerUnit float64
	FloorY        float64 // screen y of the dojo floor

	HealthCircleRadius  float32
	HealthCircleSpacing float32
	HealthFullColor     color.RGBA
	HealthHalfColor     color.RGBA
	HealthEmptyColor    color.RGBA

	BubbleColor     color.RGBA
	BubbleTextColor color.RGBA
	BubblePopTime   float32 // seconds for the speech bubble to pop in
	HealthTweenTime float32 // seconds for a circle to drain

	FighterColors [2]color.RGBA
	HurtColor     color.RGBA
	HitboxColor   color.RGBA
	HurtboxColor  color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHitboxes bool
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Sim SimConfig
var Match MatchConfig
var Combo ComboConfig
var Walk WalkConfig
var Execution ExecutionConfig
var Stage StageConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkGrey     = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	Tatami       = color.RGBA{R: 196, G: 170, B: 110, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Player indices
const (
	Player1 = 0
	Player2 = 1
)

// Direction constants for fighter facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Sim = SimConfig{
		TickRate: 60,
	}

	Match = MatchConfig{
		RoundDuration:  60.0,
		GreetDuration:  2.0,
		HurtDuration:   0.5,
		AnnounceHold:   1.2,
		ScoreHold:      1.0,
		TimeUpHold:     1.5,
		MatchOverPause: 2.0,

		FullPointValue:  1000,
		HalfPointValue:  500,
		MaxHealth:       8,
		FullPointDamage: 2,
		HalfPointDamage: 1,
	}

	Combo = ComboConfig{
		Window: 0.2,
	}

	Walk = WalkConfig{
		StepDistance: 0.25,
		StepDuration: 0.1,
	}

	Execution = ExecutionConfig{
		CompleteAt: 0.95,
		Timeout:    5.0,
	}

	Stage = StageConfig{
		StartLeft:  -3.0,
		StartRight: 3.0,
		MinX:       -8.0,
		MaxX:       8.0,
	}

	UI = UIConfig{
		PixelsPerUnit: 32,
		FloorY:        300,

		HealthCircleRadius:  7,
		HealthCircleSpacing: 18,
		HealthFullColor:     color.RGBA{R: 220, G: 30, B: 30, A: 255},
		HealthHalfColor:     color.RGBA{R: 240, G: 140, B: 140, A: 255},
		HealthEmptyColor:    DarkGrey,

		BubbleColor:     White,
		BubbleTextColor: Black,
		BubblePopTime:   0.15,
		HealthTweenTime: 0.4,

		FighterColors: [2]color.RGBA{White, LightRed},
		HurtColor:     BrightOrange,
		HitboxColor:   color.RGBA{R: 255, G: 0, B: 0, A: 120},
		HurtboxColor:  color.RGBA{R: 0, G: 200, B: 255, A: 90},
	}
}

// TickDuration returns the length of one simulation tick in seconds.
func TickDuration() float64 {
	if Sim.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(Sim.TickRate)
}
