package components

import (
	"github.com/automoto/kumite/assets/animations"
	cfg "github.com/automoto/kumite/config"
	"github.com/yohamta/donburi"
)

// AnimationData holds the pose animations of a drawn fighter. Only the
// client attaches it; the simulation never reads it.
type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentMove      cfg.MoveID
	Animations       map[cfg.MoveID]*animations.Animation
}

// SetAnimation switches to the animation of a move or pose, restarting it
// when it changes.
func (a *AnimationData) SetAnimation(move cfg.MoveID) {
	if a.CurrentMove == move && (a.CurrentAnimation != nil || a.Animations[move] == nil) {
		return
	}

	anim, ok := a.Animations[move]
	if ok {
		if a.CurrentAnimation != anim {
			a.CurrentAnimation = anim
			a.CurrentMove = move
			a.CurrentAnimation.Restart()
		}
	} else {
		// No animation for this move, clear current
		a.CurrentAnimation = nil
		a.CurrentMove = move
	}
}

// Frame returns the current pose frame, or 0 without an animation.
func (a *AnimationData) Frame() int {
	if a.CurrentAnimation == nil {
		return 0
	}
	return a.CurrentAnimation.Frame()
}

var Animation = donburi.NewComponentType[AnimationData]()
