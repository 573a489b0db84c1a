package tags

import "github.com/yohamta/donburi"

var (
	Fighter = donburi.NewTag().SetName("Fighter")
	Match   = donburi.NewTag().SetName("Match")
	Clock   = donburi.NewTag().SetName("Clock")
)

// Resolv tags for hit geometry
const (
	ResolvHitbox  = "hitbox"
	ResolvHurtbox = "hurtbox"
)
