package components

import (
	cfg "github.com/automoto/kumite/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this tick
	JustReleased bool // Released this tick
}

// InputFrame is the held state of every action for one tick
type InputFrame [cfg.ActionCount]bool

// PlayerInputData stores per-player input state.
// JustPressed/JustReleased are computed on-demand by comparing ticks.
type PlayerInputData struct {
	PlayerIndex   int
	CurrentInput  InputFrame
	PreviousInput InputFrame
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()

// Push shifts the current frame into the previous slot and stores next.
func (p *PlayerInputData) Push(next InputFrame) {
	p.PreviousInput = p.CurrentInput
	p.CurrentInput = next
}

// Action returns the full ActionState for an action ID.
func (p *PlayerInputData) Action(id cfg.ActionID) ActionState {
	curr := p.CurrentInput[id]
	prev := p.PreviousInput[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
