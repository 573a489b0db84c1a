package config

// ZoneID identifies a hurtbox region of a fighter's body
type ZoneID int

const (
	ZoneHead ZoneID = iota
	ZoneTorso
	ZoneFeet
	ZoneShin
	ZoneLeftFoot
	ZoneRightFoot
	ZoneCount
)

var zoneNames = [ZoneCount]string{"Head", "Torso", "Feet", "Shin", "LeftFoot", "RightFoot"}

func (z ZoneID) String() string {
	if z < 0 || z >= ZoneCount {
		return "Unknown"
	}
	return zoneNames[z]
}

// Rect is an offset/size pair relative to a fighter's feet position.
// Offset is the rectangle center; x is mirrored by facing.
type Rect struct {
	OffsetX, OffsetY float64
	Width, Height    float64
}

// AttackHitbox is the rectangle and target zones of one attack
type AttackHitbox struct {
	Box     Rect
	Targets []ZoneID // hit if any target zone intersects
}

// Hurtbox geometry, indexed by ZoneID
var Zones [ZoneCount]Rect

// Attack geometry, indexed by MoveID. Non-attacks use DefaultHitbox.
var Hitboxes [MoveCount]AttackHitbox

// DefaultHitbox is used for moves without their own entry
var DefaultHitbox = AttackHitbox{
	Box:     Rect{OffsetX: 1.0, OffsetY: 1.0, Width: 0.8, Height: 0.5},
	Targets: []ZoneID{ZoneTorso},
}

func init() {
	Zones = [ZoneCount]Rect{
		ZoneHead:      {OffsetX: 0, OffsetY: 1.8, Width: 1.0, Height: 0.7},
		ZoneTorso:     {OffsetX: 0, OffsetY: 1.1, Width: 0.8, Height: 0.9},
		ZoneFeet:      {OffsetX: 0, OffsetY: 0.3, Width: 1.0, Height: 0.6},
		ZoneShin:      {OffsetX: 0, OffsetY: 0.5, Width: 1.2, Height: 0.5},
		ZoneLeftFoot:  {OffsetX: -0.3, OffsetY: 0.15, Width: 0.5, Height: 0.4},
		ZoneRightFoot: {OffsetX: 0.3, OffsetY: 0.15, Width: 0.5, Height: 0.4},
	}

	head := []ZoneID{ZoneHead}
	torso := []ZoneID{ZoneTorso}

	Hitboxes[MoveHighPunch] = AttackHitbox{Box: Rect{1.2, 1.7, 0.8, 0.5}, Targets: head}
	Hitboxes[MoveHighKick] = AttackHitbox{Box: Rect{1.4, 1.8, 1.0, 0.5}, Targets: head}
	Hitboxes[MoveRoundHouse] = AttackHitbox{Box: Rect{1.5, 1.6, 1.2, 0.6}, Targets: head}
	Hitboxes[MoveFlyingKick] = AttackHitbox{Box: Rect{1.8, 1.5, 1.5, 0.7}, Targets: head}
	Hitboxes[MoveLowKick] = AttackHitbox{Box: Rect{1.3, 1.0, 1.0, 0.6}, Targets: torso}
	Hitboxes[MoveGroinPunch] = AttackHitbox{Box: Rect{1.0, 1.0, 0.7, 0.5}, Targets: torso}
	Hitboxes[MoveAnkleKick] = AttackHitbox{Box: Rect{1.2, 0.3, 1.0, 0.4}, Targets: []ZoneID{ZoneShin}}
	// Crouch kick sweeps both feet.
	Hitboxes[MoveCrouchKick] = AttackHitbox{Box: Rect{1.4, 0.4, 1.2, 0.5}, Targets: []ZoneID{ZoneLeftFoot, ZoneRightFoot}}
}

// HitboxOf returns the attack geometry for a move.
func HitboxOf(id MoveID) AttackHitbox {
	if !id.Known() || len(Hitboxes[id].Targets) == 0 {
		return DefaultHitbox
	}
	return Hitboxes[id]
}
