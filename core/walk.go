package core

import (
	"github.com/automoto/kumite/components"
	cfg "github.com/automoto/kumite/config"
	"github.com/automoto/kumite/shared/gamemath"
)

// stepEpsilon absorbs float error when accumulating tick durations.
const stepEpsilon = 1e-9

// updateWalk moves the fighter one fixed step per StepDuration of held
// left/right input. Steps come from held time rather than frame count, so
// the distance covered is independent of rendering speed.
func (s *Simulation) updateWalk(f *components.FighterData, w *components.WalkData, in *components.PlayerInputData, dt float64) {
	dir := 0.0
	if in.Action(cfg.ActionLeft).Pressed {
		dir--
	}
	if in.Action(cfg.ActionRight).Pressed {
		dir++
	}
	if dir == 0 {
		stopWalking(f, w)
		return
	}

	if dir != w.Direction {
		w.Stop()
		w.Direction = dir
	}
	f.Pose = cfg.MoveWalk

	if cfg.Walk.StepDuration <= 0 {
		return
	}
	w.ActiveTime += dt
	steps := int(w.ActiveTime/cfg.Walk.StepDuration + stepEpsilon)
	for ; w.Steps < steps; w.Steps++ {
		f.Position.X = gamemath.Clamp(f.Position.X+dir*cfg.Walk.StepDistance, s.stage.MinX, s.stage.MaxX)
	}
}

func stopWalking(f *components.FighterData, w *components.WalkData) {
	w.Stop()
	if f.Pose == cfg.MoveWalk {
		f.Pose = cfg.MoveNone
	}
}
