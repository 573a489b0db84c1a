package config

// SettingsConfig contains player-facing settings defaults
type SettingsConfig struct {
	VolumeSteps []float64
	AppName     string // gdata application directory
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		VolumeSteps: []float64{0, 0.25, 0.5, 0.75, 1.0},
		AppName:     "kumite",
	}
}
