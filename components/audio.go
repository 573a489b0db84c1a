package components

import (
	cfg "github.com/automoto/kumite/config"
	"github.com/yohamta/donburi"
)

// AudioData stores queued sound effects (singleton component)
type AudioData struct {
	SFXVolume  float64 // 0.0 - 1.0
	Muted      bool
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
