package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HUDData is the on-screen state pushed by the simulation (singleton).
// The simulation never reads it back.
type HUDData struct {
	Message        string
	MessageVisible bool
	BubbleScale    float32
	BubbleTween    *gween.Tween

	Points       [2]int
	Health       [2]int     // target health units
	HealthShown  [2]float32 // animated value drawn as circles
	HealthTweens [2]*gween.Tween

	SecondsRemaining float64
}

var HUD = donburi.NewComponentType[HUDData]()
