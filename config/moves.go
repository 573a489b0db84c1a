package config

// MoveID identifies a fighter move or pose
type MoveID int

const (
	MoveNone MoveID = iota
	MoveHighPunch
	MoveGroinPunch
	MoveHighKick
	MoveLowKick
	MoveCrouchKick
	MoveRoundHouse
	MoveFlyingKick
	MoveAnkleKick
	MoveJump
	MoveMiniJump
	MoveGreet
	MoveWalk
	MoveWait
	MoveHurt
	MoveHurtGroin
	MoveCount // Must be last - used for array sizing
)

// TrajectoryKind selects how a move displaces the fighter
type TrajectoryKind int

const (
	TrajectoryNone TrajectoryKind = iota
	TrajectoryHorizontalArc
	TrajectoryVerticalArc
)

// PointClass is the scoring tier of an attack
type PointClass int

const (
	PointNone PointClass = iota
	PointHalf
	PointFull
)

func (p PointClass) String() string {
	switch p {
	case PointFull:
		return "full"
	case PointHalf:
		return "half"
	default:
		return "none"
	}
}

// Trajectory describes the displacement applied over a move
type Trajectory struct {
	Kind     TrajectoryKind
	Distance float64 // horizontal, signed by facing
	Height   float64 // peak of the sine arc
}

// ActiveWindow is the fraction of the move during which its hitbox is live
type ActiveWindow struct {
	Start float64
	End   float64
}

// Contains reports whether progress lies inside the window (inclusive).
func (w ActiveWindow) Contains(progress float64) bool {
	return progress >= w.Start && progress <= w.End
}

// MoveDescriptor is the static data for one move
type MoveDescriptor struct {
	Name         string
	PlaybackRate float64 // animation speed multiplier
	BaseDuration float64 // seconds at PlaybackRate 1
	Trajectory   Trajectory
	Active       ActiveWindow
	Points       PointClass
	Attack       bool // has a hitbox
	Executable   bool // can be started by the move executor
}

// Duration returns the effective length of the move in seconds.
func (d MoveDescriptor) Duration() float64 {
	rate := d.PlaybackRate
	if rate <= 0 {
		rate = 1
	}
	return d.BaseDuration / rate
}

// BaselineMove is used for identifiers outside the move table
var BaselineMove = MoveDescriptor{
	Name:         "Unknown",
	PlaybackRate: 1.0,
	BaseDuration: 0.5,
	Active:       ActiveWindow{Start: 0.3, End: 0.6},
	Points:       PointHalf,
}

// Moves is indexed by MoveID
var Moves [MoveCount]MoveDescriptor

func init() {
	attack := func(name string, rate, base float64, active ActiveWindow, points PointClass) MoveDescriptor {
		return MoveDescriptor{
			Name:         name,
			PlaybackRate: rate,
			BaseDuration: base,
			Active:       active,
			Points:       points,
			Attack:       true,
			Executable:   true,
		}
	}

	Moves = [MoveCount]MoveDescriptor{
		MoveNone: {Name: "None", PlaybackRate: 1.0},

		MoveHighPunch:  attack("HighPunch", 1.0, 0.5, ActiveWindow{0.3, 0.6}, PointFull),
		MoveGroinPunch: attack("GroinPunch", 1.0, 0.45, ActiveWindow{0.3, 0.6}, PointFull),
		MoveHighKick:   attack("HighKick", 1.0, 0.6, ActiveWindow{0.35, 0.65}, PointFull),
		MoveLowKick:    attack("LowKick", 1.0, 0.55, ActiveWindow{0.35, 0.65}, PointFull),
		MoveCrouchKick: attack("CrouchKick", 1.0, 0.5, ActiveWindow{0.3, 0.6}, PointHalf),
		MoveRoundHouse: attack("RoundHouse", 0.5, 0.45, ActiveWindow{0.4, 0.7}, PointFull),
		MoveFlyingKick: attack("FlyingKick", 0.6, 0.6, ActiveWindow{0.3, 0.8}, PointFull),
		MoveAnkleKick:  attack("AnkleKick", 0.5, 0.4, ActiveWindow{0.3, 0.6}, PointHalf),

		MoveJump: {
			Name:         "Jump",
			PlaybackRate: 1.0,
			BaseDuration: 0.8,
			Trajectory:   Trajectory{Kind: TrajectoryHorizontalArc, Distance: 6.0, Height: 1.5},
			Executable:   true,
		},
		MoveMiniJump: {
			Name:         "MiniJump",
			PlaybackRate: 0.35,
			BaseDuration: 0.25,
			Trajectory:   Trajectory{Kind: TrajectoryVerticalArc, Height: 0.8},
			Executable:   true,
		},

		MoveGreet:     {Name: "Greet", PlaybackRate: 0.05},
		MoveWalk:      {Name: "Walking", PlaybackRate: 0.05},
		MoveWait:      {Name: "Wait", PlaybackRate: 0.05},
		MoveHurt:      {Name: "Hurt", PlaybackRate: 0.1},
		MoveHurtGroin: {Name: "HurtGroin", PlaybackRate: 0.1},
	}

	fk := Moves[MoveFlyingKick]
	fk.Trajectory = Trajectory{Kind: TrajectoryHorizontalArc, Distance: 12.0, Height: 1.0}
	Moves[MoveFlyingKick] = fk
}

// Describe returns the descriptor for a move, falling back to BaselineMove
// for identifiers outside the table.
func Describe(id MoveID) MoveDescriptor {
	if id < 0 || id >= MoveCount {
		return BaselineMove
	}
	return Moves[id]
}

// Known reports whether id is inside the move table.
func (id MoveID) Known() bool {
	return id >= 0 && id < MoveCount
}

func (id MoveID) String() string {
	return Describe(id).Name
}
