// Package stage parses dojo stage files shared by the game client and the
// headless replay tool. It has no dependencies on ebitengine.
package stage

// Start is a fighter's start mark.
type Start struct {
	X           float64
	FacingRight bool
}

// Stage holds the layout the simulation needs from a stage file.
type Stage struct {
	Name   string
	Starts [2]Start // indexed by player
	MinX   float64  // walking bounds
	MaxX   float64
}
