package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidOverride is returned when an overrides document holds an
// out-of-range value.
var ErrInvalidOverride = errors.New("invalid override")

// Overrides is the tunable subset of the configuration
type Overrides struct {
	Sim       SimConfig       `yaml:"sim"`
	Match     MatchConfig     `yaml:"match"`
	Combo     ComboConfig     `yaml:"combo"`
	Walk      WalkConfig      `yaml:"walk"`
	Execution ExecutionConfig `yaml:"execution"`
	Stage     StageConfig     `yaml:"stage"`
}

// CurrentOverrides snapshots the live tunable values.
func CurrentOverrides() Overrides {
	return Overrides{
		Sim:       Sim,
		Match:     Match,
		Combo:     Combo,
		Walk:      Walk,
		Execution: Execution,
		Stage:     Stage,
	}
}

// ApplyOverrides decodes a YAML document on top of the current values.
// Fields missing from the document keep their value. Nothing is changed
// when decoding or validation fails.
func ApplyOverrides(data []byte) error {
	o := CurrentOverrides()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode overrides: %w", err)
	}

	if err := o.Validate(); err != nil {
		return err
	}

	Sim = o.Sim
	Match = o.Match
	Combo = o.Combo
	Walk = o.Walk
	Execution = o.Execution
	Stage = o.Stage
	return nil
}

// LoadOverrides reads and applies an overrides file.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read overrides %s: %w", path, err)
	}
	if err := ApplyOverrides(data); err != nil {
		return fmt.Errorf("apply overrides %s: %w", path, err)
	}
	return nil
}

// Validate checks the values that would break the simulation.
func (o Overrides) Validate() error {
	switch {
	case o.Sim.TickRate <= 0:
		return fmt.Errorf("%w: sim.tickRate must be positive", ErrInvalidOverride)
	case o.Combo.Window <= 0:
		return fmt.Errorf("%w: combo.window must be positive", ErrInvalidOverride)
	case o.Walk.StepDuration <= 0:
		return fmt.Errorf("%w: walk.stepDuration must be positive", ErrInvalidOverride)
	case o.Execution.CompleteAt <= 0 || o.Execution.CompleteAt > 1:
		return fmt.Errorf("%w: execution.completeAt must be in (0, 1]", ErrInvalidOverride)
	case o.Execution.Timeout <= 0:
		return fmt.Errorf("%w: execution.timeout must be positive", ErrInvalidOverride)
	case o.Match.RoundDuration <= 0:
		return fmt.Errorf("%w: match.roundDuration must be positive", ErrInvalidOverride)
	case o.Match.MaxHealth <= 0:
		return fmt.Errorf("%w: match.maxHealth must be positive", ErrInvalidOverride)
	case o.Stage.MinX >= o.Stage.MaxX:
		return fmt.Errorf("%w: stage.minX must be below stage.maxX", ErrInvalidOverride)
	}

	// A negative damage would heal the defender.
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"match.greetDuration", o.Match.GreetDuration},
		{"match.hurtDuration", o.Match.HurtDuration},
		{"match.announceHold", o.Match.AnnounceHold},
		{"match.scoreHold", o.Match.ScoreHold},
		{"match.timeUpHold", o.Match.TimeUpHold},
		{"match.matchOverPause", o.Match.MatchOverPause},
		{"match.fullPointValue", float64(o.Match.FullPointValue)},
		{"match.halfPointValue", float64(o.Match.HalfPointValue)},
		{"match.fullPointDamage", float64(o.Match.FullPointDamage)},
		{"match.halfPointDamage", float64(o.Match.HalfPointDamage)},
		{"walk.stepDistance", o.Walk.StepDistance},
	} {
		if f.value < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidOverride, f.name)
		}
	}
	return nil
}
