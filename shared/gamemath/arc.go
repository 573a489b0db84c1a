package gamemath

import (
	"math"

	cfg "github.com/automoto/kumite/config"
)

// ArcOffset returns the displacement from the start position at progress
// (0..1) along a trajectory. dir is the facing sign.
func ArcOffset(t cfg.Trajectory, progress, dir float64) (dx, dy float64) {
	progress = Clamp01(progress)
	switch t.Kind {
	case cfg.TrajectoryHorizontalArc:
		return dir * t.Distance * progress, t.Height * math.Sin(progress*math.Pi)
	case cfg.TrajectoryVerticalArc:
		return 0, t.Height * math.Sin(progress*math.Pi)
	default:
		return 0, 0
	}
}

// ArcEnd returns the exact final displacement of a trajectory. The vertical
// component of both arcs lands back on the floor.
func ArcEnd(t cfg.Trajectory, dir float64) (dx, dy float64) {
	if t.Kind == cfg.TrajectoryHorizontalArc {
		return dir * t.Distance, 0
	}
	return 0, 0
}
