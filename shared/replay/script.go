// Package replay drives a simulation from a recorded YAML key script.
package replay

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"

	"github.com/automoto/kumite/components"
	cfg "github.com/automoto/kumite/config"
	"gopkg.in/yaml.v3"
)

// Press holds one or more keys for a player starting at a point in time.
type Press struct {
	At     float64  `yaml:"at"`     // seconds after the first tick
	Player int      `yaml:"player"` // 1 or 2
	Keys   []string `yaml:"keys"`   // action names, see config.ParseAction
	Hold   float64  `yaml:"hold"`   // seconds, at least one tick
}

// Script is a list of presses plus how long to run.
type Script struct {
	Name     string  `yaml:"name"`
	Stage    string  `yaml:"stage"`    // optional TMX path
	Duration float64 `yaml:"duration"` // seconds; 0 runs until the match is over
	Presses  []Press `yaml:"presses"`

	spans []span
	rate  int
}

type span struct {
	from, to int64 // held for from <= tick < to
	player   int
	action   cfg.ActionID
}

// Parse decodes and compiles a script for the current tick rate.
func Parse(data []byte) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("replay: decode: %w", err)
	}
	if err := s.Compile(cfg.Sim.TickRate); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads a script from fsys.
func Load(fsys fs.FS, path string) (*Script, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("replay: load %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("replay: %s: %w", path, err)
	}
	return s, nil
}

// Compile converts presses into tick spans.
func (s *Script) Compile(tickRate int) error {
	if tickRate <= 0 {
		return fmt.Errorf("replay: tick rate must be positive")
	}
	s.rate = tickRate
	s.spans = s.spans[:0]

	for i, p := range s.Presses {
		if p.Player != 1 && p.Player != 2 {
			return fmt.Errorf("replay: press %d: player must be 1 or 2, got %d", i, p.Player)
		}
		if p.At < 0 {
			return fmt.Errorf("replay: press %d: negative time", i)
		}
		from := s.toTick(p.At) + 1
		hold := s.toTick(p.Hold)
		if hold < 1 {
			hold = 1
		}
		for _, key := range p.Keys {
			action, err := cfg.ParseAction(key)
			if err != nil {
				return fmt.Errorf("replay: press %d: %w", i, err)
			}
			s.spans = append(s.spans, span{
				from:   from,
				to:     from + hold,
				player: p.Player - 1,
				action: action,
			})
		}
	}
	return nil
}

// Ticks returns how many ticks the script wants to run, or 0 for
// "until the match is over".
func (s *Script) Ticks() int {
	return int(s.toTick(s.Duration))
}

// Sample implements the simulation's input source.
func (s *Script) Sample(tick int64, playerIndex int) components.InputFrame {
	var frame components.InputFrame
	for _, sp := range s.spans {
		if sp.player == playerIndex && tick >= sp.from && tick < sp.to {
			frame[sp.action] = true
		}
	}
	return frame
}

func (s *Script) toTick(seconds float64) int64 {
	return int64(math.Round(seconds * float64(s.rate)))
}
