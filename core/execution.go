package core

import (
	"github.com/automoto/kumite/components"
	cfg "github.com/automoto/kumite/config"
	"github.com/automoto/kumite/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

// ExecuteMove starts a move on a fighter from outside the combo resolver.
// It returns false when the fighter is absent, frozen, already executing,
// or the move cannot be executed.
func (s *Simulation) ExecuteMove(playerIndex int, move cfg.MoveID) bool {
	return s.startMove(playerIndex, move)
}

func (s *Simulation) startMove(playerIndex int, move cfg.MoveID) bool {
	entry := s.FighterEntry(playerIndex)
	if entry == nil || !move.Known() {
		return false
	}
	d := cfg.Describe(move)
	if !d.Executable {
		return false
	}

	f := components.Fighter.Get(entry)
	ex := components.Execution.Get(entry)
	if f.Executing || f.Frozen || ex.State == components.ExecutionRunning {
		return false
	}

	now := s.Now()
	*ex = components.ExecutionData{
		State:         components.ExecutionRunning,
		Move:          move,
		Duration:      d.Duration(),
		StartPosition: f.Position,
		Direction:     f.Direction(),
	}
	ex.Timeout.Arm(now, cfg.Execution.Timeout)

	f.Executing = true
	f.CurrentMove = move
	f.Pose = cfg.MoveNone
	f.PlaybackRate = d.PlaybackRate

	components.Combo.Get(entry).Clear()
	components.Walk.Get(entry).Stop()

	if s.audio != nil {
		s.audio.PlayAttackSound(move)
	}
	s.logger.Debug("move started",
		zap.Int("player", playerIndex),
		zap.Stringer("move", move),
		zap.Float64("duration", ex.Duration),
	)
	return true
}

// advanceExecution moves a running move forward by one tick. The hit check
// runs only inside the active window and only until the first hit.
func (s *Simulation) advanceExecution(playerIndex int, now, dt float64) {
	entry := s.FighterEntry(playerIndex)
	if entry == nil {
		return
	}
	f := components.Fighter.Get(entry)
	ex := components.Execution.Get(entry)
	if ex.State != components.ExecutionRunning {
		return
	}

	if f.Frozen {
		// Playback is held, so the hard limit is pushed back too.
		ex.Timeout.Deadline += dt
		return
	}

	ex.Elapsed += dt
	d := cfg.Describe(ex.Move)
	progress := gamemath.Clamp01(ex.Progress())

	if !ex.HitRecorded {
		dx, dy := gamemath.ArcOffset(d.Trajectory, progress, ex.Direction)
		f.Position = math.Vec2{X: ex.StartPosition.X + dx, Y: ex.StartPosition.Y + dy}
	}

	if d.Attack && !ex.HitRecorded && d.Active.Contains(progress) {
		defender := s.Fighter(opponentOf(playerIndex))
		if defender != nil && ResolveHit(f.Position, ex.Move, f.FacingRight, defender) {
			ex.HitRecorded = true
			f.Position = trajectoryEnd(ex, d)
			s.logger.Debug("hit landed",
				zap.Int("attacker", playerIndex),
				zap.Stringer("move", ex.Move),
				zap.Float64("progress", progress),
			)
			components.HitLanded.Publish(s.world, components.HitLandedEvent{
				AttackerIndex: playerIndex,
				DefenderIndex: opponentOf(playerIndex),
				Move:          ex.Move,
				Tick:          s.CurrentTick(),
			})
		}
	}

	timedOut := ex.Timeout.Fired(now)
	if progress >= cfg.Execution.CompleteAt || timedOut {
		if timedOut {
			s.logger.Debug("move timed out", zap.Int("player", playerIndex), zap.Stringer("move", ex.Move))
		}
		s.completeMove(f, ex, d)
	}
}

// completeMove lands the fighter exactly on the trajectory end and returns
// the executor to idle.
func (s *Simulation) completeMove(f *components.FighterData, ex *components.ExecutionData, d cfg.MoveDescriptor) {
	f.Position = trajectoryEnd(ex, d)
	ex.Reset()
	f.Executing = false
	f.CurrentMove = cfg.MoveNone
	f.PlaybackRate = 1
}

// Interrupt cancels a fighter's running move immediately, leaving it where
// it stands. Interrupting an idle or absent fighter does nothing.
func (s *Simulation) Interrupt(playerIndex int) {
	entry := s.FighterEntry(playerIndex)
	if entry == nil {
		return
	}
	f := components.Fighter.Get(entry)
	ex := components.Execution.Get(entry)
	if ex.State != components.ExecutionRunning && !f.Executing {
		return
	}

	s.logger.Debug("move interrupted", zap.Int("player", playerIndex), zap.Stringer("move", ex.Move))
	ex.Reset()
	f.Executing = false
	f.CurrentMove = cfg.MoveNone
	f.PlaybackRate = 1
}

func trajectoryEnd(ex *components.ExecutionData, d cfg.MoveDescriptor) math.Vec2 {
	dx, dy := gamemath.ArcEnd(d.Trajectory, ex.Direction)
	return math.Vec2{X: ex.StartPosition.X + dx, Y: ex.StartPosition.Y + dy}
}
