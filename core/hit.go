package core

import (
	"github.com/automoto/kumite/components"
	cfg "github.com/automoto/kumite/config"
	"github.com/automoto/kumite/shared/gamemath"
	"github.com/automoto/kumite/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

// ResolveHit reports whether an attack performed at attackerPos connects
// with the defender. The attack rectangle is tested against each of the
// move's target zones and any intersection is a hit. It has no side effects;
// callers enforce one hit per execution.
func ResolveHit(attackerPos math.Vec2, move cfg.MoveID, attackerFacingRight bool, defender *components.FighterData) bool {
	if defender == nil {
		return false
	}
	hitbox := HitboxFor(attackerPos, move, attackerFacingRight)
	for _, zone := range cfg.HitboxOf(move).Targets {
		if gamemath.Overlaps(hitbox, HurtboxFor(defender, zone)) {
			return true
		}
	}
	return false
}

// HitboxFor returns the attack rectangle of a move performed at pos.
func HitboxFor(pos math.Vec2, move cfg.MoveID, facingRight bool) *resolv.Object {
	return gamemath.Box(pos.X, pos.Y, facingSign(facingRight), cfg.HitboxOf(move).Box, tags.ResolvHitbox, move.String())
}

// HurtboxFor returns a fighter's rectangle for one body zone.
func HurtboxFor(f *components.FighterData, zone cfg.ZoneID) *resolv.Object {
	if zone < 0 || zone >= cfg.ZoneCount {
		return nil
	}
	return gamemath.Box(f.Position.X, f.Position.Y, f.Direction(), cfg.Zones[zone], tags.ResolvHurtbox, zone.String())
}

// HitCheck evaluates a move from one fighter against the other as they
// stand now.
func (s *Simulation) HitCheck(attackerIndex int, move cfg.MoveID) bool {
	attacker := s.Fighter(attackerIndex)
	if attacker == nil {
		return false
	}
	return ResolveHit(attacker.Position, move, attacker.FacingRight, s.Fighter(opponentOf(attackerIndex)))
}

func facingSign(facingRight bool) float64 {
	if facingRight {
		return cfg.DirectionRight
	}
	return cfg.DirectionLeft
}
