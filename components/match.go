package components

import (
	cfg "github.com/automoto/kumite/config"
	"github.com/yohamta/donburi"
)

// PlayerScore tracks one side of the match
type PlayerScore struct {
	PlayerIndex int
	Points      int
	Health      int // 0..MaxHealth, two units per display circle
}

// MatchData stores the current match state and scores.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	State        cfg.MatchStateID
	Beat         int   // step inside the current state's scripted sequence
	Wait         Timer // pending timed suspension of the sequence
	Scores       [2]PlayerScore
	RoundTimer   float64 // seconds remaining
	RoundActive  bool
	MatchActive  bool
	InputEnabled bool
	TimedOut     bool
	WinnerIndex  int // PlayerIndex of winner, cfg.WinnerDraw or cfg.WinnerNone
	LastHit      HitLandedEvent
}

var Match = donburi.NewComponentType[MatchData]()

// Reset restores initial match values.
func (m *MatchData) Reset() {
	*m = MatchData{
		State:       cfg.MatchStateIntro,
		RoundTimer:  cfg.Match.RoundDuration,
		WinnerIndex: cfg.WinnerNone,
	}
	for i := range m.Scores {
		m.Scores[i] = PlayerScore{
			PlayerIndex: i,
			Health:      cfg.Match.MaxHealth,
		}
	}
}

// Score returns the score entry for a player, or nil for an unknown index.
func (m *MatchData) Score(playerIndex int) *PlayerScore {
	if playerIndex < 0 || playerIndex >= len(m.Scores) {
		return nil
	}
	return &m.Scores[playerIndex]
}

// KnockedOut reports whether either side has no health left.
func (m *MatchData) KnockedOut() bool {
	for _, s := range m.Scores {
		if s.Health <= 0 {
			return true
		}
	}
	return false
}

// CountDown takes dt off the round timer and reports whether time is up.
// The timer is clamped at zero once it is within timerEpsilon of it.
func (m *MatchData) CountDown(dt float64) bool {
	m.RoundTimer -= dt
	if m.RoundTimer <= timerEpsilon {
		m.RoundTimer = 0
		return true
	}
	return false
}

// GetLeader returns the player index with the most health, or
// cfg.WinnerDraw on a tie.
func (m *MatchData) GetLeader() int {
	a, b := m.Scores[cfg.Player1].Health, m.Scores[cfg.Player2].Health
	switch {
	case a > b:
		return cfg.Player1
	case b > a:
		return cfg.Player2
	default:
		return cfg.WinnerDraw
	}
}
