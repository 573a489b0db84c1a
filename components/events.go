package components

import (
	cfg "github.com/automoto/kumite/config"
	"github.com/yohamta/donburi/features/events"
)

// HitLandedEvent is published when an attack connects.
type HitLandedEvent struct {
	AttackerIndex int
	DefenderIndex int
	Move          cfg.MoveID
	Tick          int64
}

var HitLanded = events.NewEventType[HitLandedEvent]()
