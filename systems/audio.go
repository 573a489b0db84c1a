package systems

import (
	"io/fs"
	"sync"

	"github.com/automoto/kumite/assets"
	"github.com/automoto/kumite/components"
	cfg "github.com/automoto/kumite/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Global audio state - created once and shared across restarts
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	audioLogger        = zap.NewNop()
	audioInitOnce      sync.Once
)

// InitAudio creates the audio context and loader reading from fsys. Only the
// first call has any effect.
func InitAudio(fsys fs.FS, logger *zap.Logger) {
	audioInitOnce.Do(func() {
		if logger != nil {
			audioLogger = logger
		}
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, fsys)
	})
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first
// play. Missing files are logged and skipped.
func PreloadAllSFX() {
	if globalAudioLoader == nil {
		return
	}
	for id, path := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.PreloadSFX(path); err != nil {
			audioLogger.Warn("sound effect unavailable",
				zap.Int("sound", int(id)),
				zap.String("path", path),
				zap.Error(err),
			)
		}
	}
}

// UpdateAudio plays the sound effects queued this frame
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if globalAudioLoader == nil || globalMuted || globalSFXVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	if sound == cfg.SoundNone {
		return
	}
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// SetMuted silences or restores sound effects
func SetMuted(muted bool) {
	globalMuted = muted
}

// IsMuted reports whether sound effects are silenced
func IsMuted() bool {
	return globalMuted
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume:  globalSFXVolume,
			Muted:      globalMuted,
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

// SFX is the simulation's sound collaborator. It only queues; UpdateAudio
// plays the queue on the next frame.
type SFX struct {
	ecs *ecs.ECS
}

// NewSFX creates a sound collaborator queuing into e.
func NewSFX(e *ecs.ECS) *SFX {
	return &SFX{ecs: e}
}

// PlayAttackSound queues the swing sound of a move. Moves without a sound
// (jumps) are silent.
func (s *SFX) PlayAttackSound(move cfg.MoveID) {
	if id, ok := cfg.Sound.AttackSounds[move]; ok {
		PlaySFX(s.ecs, id)
	}
}

// PlayHurtSound queues the reaction to being hit by move.
func (s *SFX) PlayHurtSound(move cfg.MoveID) {
	id, ok := cfg.Sound.HurtSounds[move]
	if !ok {
		id = cfg.SoundHurtLight
	}
	PlaySFX(s.ecs, id)
}

// PlayBegin queues the referee's call that opens a match.
func (s *SFX) PlayBegin() {
	PlaySFX(s.ecs, cfg.SoundBegin)
}
