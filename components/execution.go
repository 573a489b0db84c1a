package components

import (
	cfg "github.com/automoto/kumite/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ExecutionState is the phase of a fighter's move executor
type ExecutionState int

const (
	ExecutionIdle ExecutionState = iota
	ExecutionRunning
)

// ExecutionData tracks the move currently being performed by a fighter.
type ExecutionData struct {
	State         ExecutionState
	Move          cfg.MoveID
	Elapsed       float64 // seconds of unfrozen playback
	Duration      float64
	StartPosition math.Vec2
	Direction     float64 // facing sign captured at start
	HitRecorded   bool    // at most one hit per execution
	Timeout       Timer   // hard completion limit
}

var Execution = donburi.NewComponentType[ExecutionData]()

// Progress returns the normalized playback position in [0, 1].
func (e *ExecutionData) Progress() float64 {
	if e.Duration <= 0 {
		return 1
	}
	p := e.Elapsed / e.Duration
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Reset returns the executor to idle and cancels its pending timeout.
func (e *ExecutionData) Reset() {
	e.State = ExecutionIdle
	e.Move = cfg.MoveNone
	e.Elapsed = 0
	e.Duration = 0
	e.HitRecorded = false
	e.Timeout.Cancel()
}
