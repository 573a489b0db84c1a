package core

import (
	"strconv"

	"github.com/automoto/kumite/components"
	cfg "github.com/automoto/kumite/config"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// StartMatch resets scores, health and the round timer, cancels every
// pending wait and enters the intro.
func (s *Simulation) StartMatch() {
	m := s.Match()
	if m == nil {
		return
	}
	s.cancelTimers()
	m.Reset()
	m.MatchActive = true
	s.logger.Info("match started",
		zap.Float64("roundDuration", m.RoundTimer),
		zap.Int("maxHealth", cfg.Match.MaxHealth),
	)

	for i := range m.Scores {
		s.setScore(i, m.Scores[i].Points)
		s.setHealth(i, m.Scores[i].Health)
	}
	s.setTimer(m.RoundTimer)

	s.enterIntro(m, s.Now())
}

// RestartMatch abandons the current match, including any pending waits,
// and starts over from the intro.
func (s *Simulation) RestartMatch() {
	s.logger.Info("match restarted")
	s.StartMatch()
}

// OnFighterHit applies one hit: the attacker scores the move's point value,
// the defender loses the matching health units and the hit freeze starts.
// Hits are only counted while the round is active, so the numbers being
// announced cannot change under the announcement. Absent fighters have
// their side skipped, and unknown moves score as a half point.
func (s *Simulation) OnFighterHit(attackerIndex int, move cfg.MoveID) {
	m := s.Match()
	if m == nil || !m.MatchActive || m.State != cfg.MatchStateRoundActive {
		return
	}
	defenderIndex := opponentOf(attackerIndex)
	points := pointClass(move)
	value, damage := pointValue(points)

	if score := m.Score(attackerIndex); score != nil && s.Fighter(attackerIndex) != nil {
		score.Points += value
		s.setScore(attackerIndex, score.Points)
	}
	if score := m.Score(defenderIndex); score != nil && s.Fighter(defenderIndex) != nil {
		score.Health -= damage
		if score.Health < 0 {
			score.Health = 0
		}
		s.setHealth(defenderIndex, score.Health)
	}

	m.LastHit = components.HitLandedEvent{
		AttackerIndex: attackerIndex,
		DefenderIndex: defenderIndex,
		Move:          move,
		Tick:          s.CurrentTick(),
	}
	s.logger.Info("point scored",
		zap.Int("attacker", attackerIndex),
		zap.Stringer("move", move),
		zap.Stringer("points", points),
		zap.Int("value", value),
	)

	s.enterHitFreeze(m, s.Now())
}

// onHitLanded receives hits in publish order. Only the first hit of a
// RoundActive tick counts; the freeze it starts discards the rest.
func (s *Simulation) onHitLanded(_ donburi.World, e components.HitLandedEvent) {
	m := s.Match()
	if m == nil || m.State != cfg.MatchStateRoundActive {
		s.logger.Debug("hit discarded",
			zap.Int("attacker", e.AttackerIndex),
			zap.Stringer("move", e.Move),
		)
		return
	}
	s.OnFighterHit(e.AttackerIndex, e.Move)
}

func (s *Simulation) advanceMatch(now, dt float64) {
	m := s.Match()
	if m == nil {
		return
	}

	switch m.State {
	case cfg.MatchStateIntro:
		if !m.Wait.Fired(now) {
			return
		}
		s.hideMessage()
		s.eachFighter(func(f *components.FighterData) {
			f.Pose = cfg.MoveNone
		})
		m.InputEnabled = true
		m.RoundActive = true
		s.setState(m, cfg.MatchStateRoundActive)

	case cfg.MatchStateRoundActive:
		if m.CountDown(dt) {
			m.TimedOut = true
			s.setTimer(0)
			s.enterMatchEnding(m, now)
			return
		}
		s.setTimer(m.RoundTimer)

	case cfg.MatchStateHitFreeze:
		s.advanceHitFreeze(m, now)

	case cfg.MatchStateRoundEnding:
		s.resetFighters()
		m.InputEnabled = true
		m.RoundActive = true
		s.setState(m, cfg.MatchStateRoundActive)

	case cfg.MatchStateMatchEnding:
		s.advanceMatchEnding(m, now)

	case cfg.MatchStateMatchOver:
	}
}

func (s *Simulation) enterIntro(m *components.MatchData, now float64) {
	s.resetFighters()
	s.eachFighter(func(f *components.FighterData) {
		f.Pose = cfg.MoveGreet
	})
	m.InputEnabled = false
	m.RoundActive = false
	m.Beat = 0
	s.setState(m, cfg.MatchStateIntro)
	s.showMessage(cfg.MessageBegin)
	m.Wait.Arm(now, cfg.Match.GreetDuration)
}

// enterHitFreeze holds both fighters, knocks the defender out of its move
// and starts the point announcement.
func (s *Simulation) enterHitFreeze(m *components.MatchData, now float64) {
	m.InputEnabled = false
	m.RoundActive = false
	m.Beat = 0
	s.setState(m, cfg.MatchStateHitFreeze)

	hit := m.LastHit
	s.Interrupt(hit.DefenderIndex)
	if defender := s.Fighter(hit.DefenderIndex); defender != nil {
		defender.Pose = cfg.MoveHurt
		if hit.Move == cfg.MoveGroinPunch {
			defender.Pose = cfg.MoveHurtGroin
		}
	}
	s.eachFighter(func(f *components.FighterData) {
		f.Frozen = true
		f.PlaybackRate = 0
	})

	if s.audio != nil {
		s.audio.PlayHurtSound(hit.Move)
	}
	m.Wait.Arm(now, cfg.Match.HurtDuration)
}

func (s *Simulation) advanceHitFreeze(m *components.MatchData, now float64) {
	if !m.Wait.Fired(now) {
		return
	}

	points := pointClass(m.LastHit.Move)
	switch m.Beat {
	case 0:
		msg := cfg.MessageHalfPoint
		if points == cfg.PointFull {
			msg = cfg.MessageFullPoint
		}
		s.showMessage(msg)
		m.Beat = 1
		m.Wait.Arm(now, cfg.Match.AnnounceHold)
	case 1:
		value, _ := pointValue(points)
		s.showMessage(strconv.Itoa(value))
		m.Beat = 2
		m.Wait.Arm(now, cfg.Match.ScoreHold)
	default:
		s.hideMessage()
		if m.KnockedOut() {
			s.enterMatchEnding(m, now)
			return
		}
		s.setState(m, cfg.MatchStateRoundEnding)
	}
}

func (s *Simulation) enterMatchEnding(m *components.MatchData, now float64) {
	m.InputEnabled = false
	m.RoundActive = false
	m.Beat = 0
	s.setState(m, cfg.MatchStateMatchEnding)

	for i := range s.fighters {
		s.Interrupt(i)
	}
	s.eachFighter(func(f *components.FighterData) {
		f.Frozen = true
		f.Pose = cfg.MoveNone
	})

	if m.TimedOut {
		s.showMessage(cfg.MessageTime)
		m.Wait.Arm(now, cfg.Match.TimeUpHold)
		return
	}
	m.Wait.Arm(now, 0)
}

func (s *Simulation) advanceMatchEnding(m *components.MatchData, now float64) {
	if !m.Wait.Fired(now) {
		return
	}

	if m.Beat == 0 {
		s.showMessage(cfg.MessageMatchOver)
		m.Beat = 1
		m.Wait.Arm(now, cfg.Match.MatchOverPause)
		return
	}

	m.WinnerIndex = m.GetLeader()
	switch m.WinnerIndex {
	case cfg.Player1:
		s.showMessage(cfg.MessageYouWin)
	case cfg.Player2:
		s.showMessage(cfg.MessageYouLose)
	default:
		s.showMessage(cfg.MessageDraw)
	}
	m.MatchActive = false
	s.eachFighter(func(f *components.FighterData) {
		f.Frozen = false
		f.PlaybackRate = 1
	})
	s.setState(m, cfg.MatchStateMatchOver)
	s.logger.Info("match over",
		zap.Int("winner", m.WinnerIndex),
		zap.Int("p1Health", m.Scores[cfg.Player1].Health),
		zap.Int("p2Health", m.Scores[cfg.Player2].Health),
		zap.Int("p1Points", m.Scores[cfg.Player1].Points),
		zap.Int("p2Points", m.Scores[cfg.Player2].Points),
		zap.Bool("timedOut", m.TimedOut),
	)
}

// resetFighters cancels running moves and puts both fighters on their marks.
func (s *Simulation) resetFighters() {
	for i := range s.fighters {
		s.Interrupt(i)
		entry := s.FighterEntry(i)
		if entry == nil {
			continue
		}
		components.Fighter.Get(entry).ResetToStart()
		components.Combo.Get(entry).Clear()
		components.Walk.Get(entry).Stop()
	}
}

// cancelTimers abandons every pending wait owned by this match.
func (s *Simulation) cancelTimers() {
	if m := s.Match(); m != nil {
		m.Wait.Cancel()
	}
	for i := range s.fighters {
		if entry := s.FighterEntry(i); entry != nil {
			components.Execution.Get(entry).Timeout.Cancel()
		}
	}
}

func (s *Simulation) setState(m *components.MatchData, next cfg.MatchStateID) {
	if m.State != next {
		s.logger.Info("match state",
			zap.Stringer("from", m.State),
			zap.Stringer("to", next),
			zap.Int64("tick", s.CurrentTick()),
		)
	}
	m.State = next
}

func (s *Simulation) eachFighter(fn func(f *components.FighterData)) {
	for i := range s.fighters {
		if f := s.Fighter(i); f != nil {
			fn(f)
		}
	}
}

func (s *Simulation) showMessage(text string) {
	if s.announcer != nil {
		s.announcer.ShowMessage(text)
	}
}

func (s *Simulation) hideMessage() {
	if s.announcer != nil {
		s.announcer.HideMessage()
	}
}

func (s *Simulation) setScore(playerIndex, value int) {
	if s.scoreboard != nil {
		s.scoreboard.SetScore(playerIndex, value)
	}
}

func (s *Simulation) setHealth(playerIndex, units int) {
	if s.scoreboard != nil {
		s.scoreboard.SetHealthLevel(playerIndex, units)
	}
}

func (s *Simulation) setTimer(seconds float64) {
	if s.scoreboard != nil {
		s.scoreboard.SetTimer(seconds)
	}
}

// pointClass returns the scoring tier of a move. Anything that is not a
// known attack scores as a half point.
func pointClass(move cfg.MoveID) cfg.PointClass {
	d := cfg.Describe(move)
	if !move.Known() || d.Points == cfg.PointNone {
		return cfg.PointHalf
	}
	return d.Points
}

// pointValue returns the score gained and health lost for a tier.
func pointValue(p cfg.PointClass) (value, damage int) {
	if p == cfg.PointFull {
		return cfg.Match.FullPointValue, cfg.Match.FullPointDamage
	}
	return cfg.Match.HalfPointValue, cfg.Match.HalfPointDamage
}
