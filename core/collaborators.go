package core

import (
	"github.com/automoto/kumite/components"
	cfg "github.com/automoto/kumite/config"
)

// Audio plays fire-and-forget sound effects.
type Audio interface {
	PlayAttackSound(move cfg.MoveID)
	PlayHurtSound(move cfg.MoveID)
}

// Announcer shows the sensei's speech bubble.
type Announcer interface {
	ShowMessage(text string)
	HideMessage()
}

// Scoreboard receives score, health and timer updates.
type Scoreboard interface {
	SetScore(playerIndex, value int)
	SetHealthLevel(playerIndex, units int)
	SetTimer(secondsRemaining float64)
}

// InputSource is queried once per tick per player for held actions.
type InputSource interface {
	Sample(tick int64, playerIndex int) components.InputFrame
}
