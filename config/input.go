package config

import (
	"fmt"
	"strings"
)

// ActionID represents a logical fighter input
type ActionID int

const (
	ActionLeft ActionID = iota
	ActionRight
	ActionUp
	ActionDown
	ActionFire1 // punch button
	ActionFire2 // kick button
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{"left", "right", "up", "down", "fire1", "fire2"}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction maps a case-insensitive action name to its ActionID.
func ParseAction(name string) (ActionID, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range actionNames {
		if n == name {
			return ActionID(i), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// ControlSchemeID selects a keyboard layout for a player
type ControlSchemeID int

const (
	ControlSchemeWASD ControlSchemeID = iota
	ControlSchemeArrows
	ControlSchemeCount
)
