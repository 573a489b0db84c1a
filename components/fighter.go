package components

import (
	cfg "github.com/automoto/kumite/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// FighterData is one karateka. Positions are world units with the floor at
// y=0 and y growing upwards.
type FighterData struct {
	PlayerIndex      int
	Position         math.Vec2
	StartPosition    math.Vec2
	FacingRight      bool
	StartFacingRight bool
	CurrentMove      cfg.MoveID // move being executed, MoveNone when idle
	Executing        bool
	Frozen           bool       // animation playback held during hit freeze
	Pose             cfg.MoveID // non-attacking pose: greet, walk, hurt
	PlaybackRate     float64    // animation speed, 0 while frozen
}

var Fighter = donburi.NewComponentType[FighterData]()

// Direction returns +1 when facing right and -1 otherwise.
func (f *FighterData) Direction() float64 {
	if f.FacingRight {
		return cfg.DirectionRight
	}
	return cfg.DirectionLeft
}

// ResetToStart puts the fighter back on its start mark.
func (f *FighterData) ResetToStart() {
	f.Position = f.StartPosition
	f.FacingRight = f.StartFacingRight
	f.CurrentMove = cfg.MoveNone
	f.Executing = false
	f.Frozen = false
	f.Pose = cfg.MoveNone
	f.PlaybackRate = 1
}

// DisplayMove returns the move or pose a renderer should show.
func (f *FighterData) DisplayMove() cfg.MoveID {
	if f.Executing {
		return f.CurrentMove
	}
	if f.Pose != cfg.MoveNone {
		return f.Pose
	}
	return cfg.MoveWait
}
