package core

import (
	"github.com/automoto/kumite/components"
	cfg "github.com/automoto/kumite/config"
	"go.uber.org/zap"
)

// comboResult is the outcome of one resolver frame.
type comboResult struct {
	Move       cfg.MoveID
	TurnAround bool
}

func (r comboResult) resolved() bool {
	return r.Move != cfg.MoveNone || r.TurnAround
}

// resolveCombo runs one frame of the combo resolver. Presses are strictly
// sequential: a direction first, then a fire button inside the window.
// Up then forward resolves to a jump without fire, and an unanswered up or
// down falls back to its default move once the window has passed. The
// buffer is cleared whenever something resolves.
func resolveCombo(c *components.ComboData, in *components.PlayerInputData, facingRight bool, now, window float64) comboResult {
	fwdAction, backAction := cfg.ActionRight, cfg.ActionLeft
	if !facingRight {
		fwdAction, backAction = backAction, fwdAction
	}

	if in.Action(cfg.ActionUp).JustPressed {
		c.Up.Mark(now)
	}
	if in.Action(cfg.ActionDown).JustPressed {
		c.Down.Mark(now)
	}

	if in.Action(backAction).JustPressed {
		if c.Back.Valid(now, window) && !c.DoubleTap.Valid(now, window) {
			c.Clear()
			c.DoubleTap.Mark(now)
			return comboResult{TurnAround: true}
		}
		c.Back.Mark(now)
	}

	if in.Action(fwdAction).JustPressed {
		if c.Up.Valid(now, window) {
			c.Clear()
			return comboResult{Move: cfg.MoveJump}
		}
		c.Forward.Mark(now)
	}

	up := c.Up.Valid(now, window)
	down := c.Down.Valid(now, window)
	fwd := c.Forward.Valid(now, window)
	back := c.Back.Valid(now, window)

	if in.Action(cfg.ActionFire1).JustPressed {
		move := cfg.MoveHighPunch
		if !up && down && fwd {
			move = cfg.MoveGroinPunch
		}
		c.Clear()
		return comboResult{Move: move}
	}

	if in.Action(cfg.ActionFire2).JustPressed {
		var move cfg.MoveID
		switch {
		case up && fwd:
			move = cfg.MoveFlyingKick
		case up:
			move = cfg.MoveHighKick
		case down:
			move = cfg.MoveCrouchKick
		case fwd:
			move = cfg.MoveLowKick
		case back:
			move = cfg.MoveRoundHouse
		default:
			move = cfg.MoveLowKick
		}
		c.Clear()
		return comboResult{Move: move}
	}

	// An up still paired with a live forward waits for it to expire.
	if c.Up.Expired(now, window) && !fwd {
		c.Clear()
		return comboResult{Move: cfg.MoveMiniJump}
	}
	if c.Down.Expired(now, window) {
		c.Clear()
		return comboResult{Move: cfg.MoveAnkleKick}
	}

	if c.Forward.Expired(now, window) {
		c.Forward.Clear()
	}
	if c.Back.Expired(now, window) {
		c.Back.Clear()
	}
	if c.DoubleTap.Expired(now, window) {
		c.DoubleTap.Clear()
	}
	return comboResult{}
}

// updateFighterInput runs the combo resolver and walking for one fighter.
func (s *Simulation) updateFighterInput(playerIndex int, now, dt float64, inputEnabled bool) {
	entry := s.FighterEntry(playerIndex)
	if entry == nil {
		return
	}
	f := components.Fighter.Get(entry)
	combo := components.Combo.Get(entry)
	walk := components.Walk.Get(entry)

	if !inputEnabled || f.Frozen {
		combo.Clear()
		stopWalking(f, walk)
		return
	}
	if f.Executing {
		stopWalking(f, walk)
		return
	}

	in := components.PlayerInput.Get(entry)
	res := resolveCombo(combo, in, f.FacingRight, now, cfg.Combo.Window)
	switch {
	case res.TurnAround:
		f.FacingRight = !f.FacingRight
		s.logger.Debug("turn around",
			zap.Int("player", playerIndex),
			zap.Bool("facingRight", f.FacingRight),
		)
		return
	case res.resolved():
		s.logger.Debug("combo resolved",
			zap.Int("player", playerIndex),
			zap.Stringer("move", res.Move),
		)
		s.startMove(playerIndex, res.Move)
		return
	}

	s.updateWalk(f, walk, in, dt)
}
