package config

// MatchStateID is the current phase of a match
type MatchStateID int

const (
	MatchStateIntro MatchStateID = iota
	MatchStateRoundActive
	MatchStateHitFreeze
	MatchStateRoundEnding
	MatchStateMatchEnding
	MatchStateMatchOver
)

var matchStateNames = map[MatchStateID]string{
	MatchStateIntro:       "Intro",
	MatchStateRoundActive: "RoundActive",
	MatchStateHitFreeze:   "HitFreeze",
	MatchStateRoundEnding: "RoundEnding",
	MatchStateMatchEnding: "MatchEnding",
	MatchStateMatchOver:   "MatchOver",
}

func (s MatchStateID) String() string {
	if name, ok := matchStateNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Announcer lines
const (
	MessageBegin     = "BEGIN"
	MessageFullPoint = "FULL\nPOINT"
	MessageHalfPoint = "HALF\nPOINT"
	MessageTime      = "TIME"
	MessageMatchOver = "MATCH\nOVER"
	MessageYouWin    = "YOU\nWIN"
	MessageYouLose   = "YOU\nLOSE"
	MessageDraw      = "DRAW"
)

// Winner values stored on the match
const (
	WinnerNone = -2
	WinnerDraw = -1
)
