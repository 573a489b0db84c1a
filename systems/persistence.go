package systems

import (
	"encoding/json"

	cfg "github.com/automoto/kumite/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume      float64 `json:"sfxVolume"`
	Muted          bool    `json:"muted"`
	Fullscreen     bool    `json:"fullscreen"`
	SwappedSchemes bool    `json:"swappedSchemes"`
}

// Settings loads and saves player settings through gdata. A Settings that
// failed to open keeps working in memory only.
type Settings struct {
	manager *gdata.Manager
	logger  *zap.Logger
	Current SavedSettings
}

// OpenSettings initializes the gdata manager for settings storage.
func OpenSettings(logger *zap.Logger) *Settings {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Settings{
		logger: logger,
		Current: SavedSettings{
			SFXVolume: cfg.Audio.DefaultSFXVol,
		},
	}

	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		logger.Warn("could not initialize persistence", zap.Error(err))
		return s
	}
	s.manager = m
	s.load()
	return s
}

func (s *Settings) load() {
	data, err := s.manager.LoadItem(settingsKey)
	if err != nil {
		s.logger.Warn("could not load settings", zap.Error(err))
		return
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return
	}

	var saved SavedSettings
	if err := json.Unmarshal(data, &saved); err != nil {
		s.logger.Warn("could not parse saved settings", zap.Error(err))
		return
	}
	s.Current = saved
}

// Save writes the current settings to disk.
func (s *Settings) Save() {
	if s.manager == nil {
		return
	}
	data, err := json.Marshal(s.Current)
	if err != nil {
		s.logger.Warn("could not serialize settings", zap.Error(err))
		return
	}
	if err := s.manager.SaveItem(settingsKey, data); err != nil {
		s.logger.Warn("could not save settings", zap.Error(err))
	}
}

// Apply pushes the current settings into audio, window and input.
func (s *Settings) Apply(input *KeyboardInput) {
	SetSFXVolume(s.Current.SFXVolume)
	SetMuted(s.Current.Muted)
	ebiten.SetFullscreen(s.Current.Fullscreen)
	if input != nil {
		input.Schemes = [2]cfg.ControlSchemeID{cfg.ControlSchemeWASD, cfg.ControlSchemeArrows}
		if s.Current.SwappedSchemes {
			input.SwapSchemes()
		}
	}
}

// StepVolume moves the SFX volume one step up or down the configured scale.
func (s *Settings) StepVolume(delta int) {
	steps := cfg.Settings.VolumeSteps
	if len(steps) == 0 {
		return
	}
	idx := 0
	for i, v := range steps {
		if v <= s.Current.SFXVolume+1e-9 {
			idx = i
		}
	}
	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(steps) {
		idx = len(steps) - 1
	}
	s.Current.SFXVolume = steps[idx]
}

// HandleShellKeys applies the settings keys pressed this frame and saves
// when anything changed.
func (s *Settings) HandleShellKeys(keys ShellKeys, input *KeyboardInput) {
	changed := false
	if keys.ToggleMute {
		s.Current.Muted = !s.Current.Muted
		changed = true
	}
	if keys.VolumeDown {
		s.StepVolume(-1)
		changed = true
	}
	if keys.VolumeUp {
		s.StepVolume(1)
		changed = true
	}
	if keys.SwapSchemes {
		s.Current.SwappedSchemes = !s.Current.SwappedSchemes
		changed = true
	}
	if keys.ToggleScreen {
		s.Current.Fullscreen = !s.Current.Fullscreen
		changed = true
	}
	if keys.ToggleDebug {
		cfg.Debug.ShowHitboxes = !cfg.Debug.ShowHitboxes
	}
	if !changed {
		return
	}
	s.Apply(input)
	s.Save()
	s.logger.Debug("settings changed",
		zap.Float64("sfxVolume", s.Current.SFXVolume),
		zap.Bool("muted", s.Current.Muted),
		zap.Bool("swappedSchemes", s.Current.SwappedSchemes),
	)
}
