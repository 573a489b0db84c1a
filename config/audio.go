package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Attack sounds
	SoundStrongKick
	SoundLightAttack
	SoundGroinPunch
	// Hurt sounds
	SoundHurtStrong
	SoundHurtLight
	SoundHurtGroin
	// Announcer
	SoundBegin
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
	AttackSounds      map[MoveID]SoundID
	HurtSounds        map[MoveID]SoundID
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundStrongKick:  "audio/sfx/tune4.wav",
			SoundLightAttack: "audio/sfx/tune5.wav",
			SoundGroinPunch:  "audio/sfx/tune7.wav",
			SoundHurtStrong:  "audio/sfx/tune3.wav",
			SoundHurtLight:   "audio/sfx/tune6.wav",
			SoundHurtGroin:   "audio/sfx/tune8.wav",
			SoundBegin:       "audio/sfx/begin.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundHurtStrong: 1.2,
		},
		AttackSounds: map[MoveID]SoundID{
			MoveFlyingKick: SoundStrongKick,
			MoveHighKick:   SoundStrongKick,
			MoveLowKick:    SoundStrongKick,
			MoveRoundHouse: SoundStrongKick,
			MoveCrouchKick: SoundLightAttack,
			MoveHighPunch:  SoundLightAttack,
			MoveAnkleKick:  SoundLightAttack,
			MoveGroinPunch: SoundGroinPunch,
		},
		HurtSounds: map[MoveID]SoundID{
			MoveFlyingKick: SoundHurtStrong,
			MoveHighKick:   SoundHurtStrong,
			MoveLowKick:    SoundHurtStrong,
			MoveRoundHouse: SoundHurtStrong,
			MoveCrouchKick: SoundHurtLight,
			MoveHighPunch:  SoundHurtLight,
			MoveAnkleKick:  SoundHurtLight,
			MoveGroinPunch: SoundHurtGroin,
		},
	}
}
