package systems

import (
	"image/color"

	"github.com/automoto/kumite/assets/animations"
	"github.com/automoto/kumite/components"
	cfg "github.com/automoto/kumite/config"
	"github.com/automoto/kumite/core"
	"github.com/automoto/kumite/shared/gamemath"
	"github.com/automoto/kumite/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Stage bounds drawn on the floor, set by the scene
var stageMinX, stageMaxX = cfg.Stage.MinX, cfg.Stage.MaxX

// SetStageBounds sets the walk limits drawn on the tatami.
func SetStageBounds(minX, maxX float64) {
	stageMinX, stageMaxX = minX, maxX
}

func view() gamemath.View {
	return gamemath.View{
		PixelsPerUnit: cfg.UI.PixelsPerUnit,
		CenterX:       float64(cfg.C.Width) / 2,
		FloorY:        cfg.UI.FloorY,
	}
}

// fighterAnimations returns fresh pose animations for one fighter.
func fighterAnimations() map[cfg.MoveID]*animations.Animation {
	greet := animations.NewAnimation(0, 3, 1, 10)
	greet.FreezeOnComplete = true
	hurt := animations.NewAnimation(0, 1, 1, 6)
	hurt.FreezeOnComplete = true

	return map[cfg.MoveID]*animations.Animation{
		cfg.MoveWalk:      animations.NewAnimation(0, 3, 1, 6),
		cfg.MoveWait:      animations.NewAnimation(0, 1, 1, 30),
		cfg.MoveGreet:     greet,
		cfg.MoveHurt:      hurt,
		cfg.MoveHurtGroin: animations.NewAnimation(0, 1, 1, 6),
	}
}

// AttachAnimations gives a fighter entry its pose animations.
func AttachAnimations(entry *donburi.Entry) {
	if !entry.HasComponent(components.Animation) {
		entry.AddComponent(components.Animation)
	}
	components.Animation.SetValue(entry, components.AnimationData{
		CurrentMove: cfg.MoveNone,
		Animations:  fighterAnimations(),
	})
}

// UpdateAnimations steps every fighter's pose animation at its playback rate.
func UpdateAnimations(ecs *ecs.ECS) {
	tags.Fighter.Each(ecs.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Animation) {
			return
		}
		f := components.Fighter.Get(entry)
		anim := components.Animation.Get(entry)
		anim.SetAnimation(f.DisplayMove())
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update(f.PlaybackRate)
		}
	})
}

// DrawStage draws the dojo floor, the walk bounds and the sensei.
func DrawStage(ecs *ecs.ECS, screen *ebiten.Image) {
	v := view()
	width := float32(cfg.C.Width)
	floorY := float32(v.FloorY)

	vector.FillRect(screen, 0, floorY, width, float32(cfg.C.Height)-floorY, cfg.Tatami, false)

	left, _ := v.ToScreen(stageMinX, 0)
	right, _ := v.ToScreen(stageMaxX, 0)
	vector.FillRect(screen, float32(left), floorY, 2, 6, cfg.DarkGrey, false)
	vector.FillRect(screen, float32(right)-2, floorY, 2, 6, cfg.DarkGrey, false)

	// Sensei stands behind the fighters under the speech bubble.
	cx := width / 2
	vector.FillRect(screen, cx-8, 110, 16, 34, cfg.DarkGrey, false)
	vector.FillCircle(screen, cx, 102, 8, cfg.DarkGrey, true)
}

// DrawFighters draws both karateka from their body zones and current pose.
func DrawFighters(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Fighter.Each(ecs.World, func(entry *donburi.Entry) {
		f := components.Fighter.Get(entry)
		frame := 0
		if entry.HasComponent(components.Animation) {
			frame = components.Animation.Get(entry).Frame()
		}
		drawFighter(screen, entry, f, frame)
	})
}

func drawFighter(screen *ebiten.Image, entry *donburi.Entry, f *components.FighterData, frame int) {
	v := view()
	c := cfg.UI.FighterColors[f.PlayerIndex%len(cfg.UI.FighterColors)]
	move := f.DisplayMove()
	if move == cfg.MoveHurt || move == cfg.MoveHurtGroin {
		c = cfg.UI.HurtColor
	}

	dir := f.Direction()
	x, y := f.Position.X, f.Position.Y
	lean := 0.0
	switch move {
	case cfg.MoveGreet:
		lean = 0.1 * float64(frame)
	case cfg.MoveHurt, cfg.MoveHurtGroin:
		lean = -0.2 * float64(frame+1)
	}

	// Legs
	legSpread := 0.25
	if move == cfg.MoveWalk && frame%2 == 1 {
		legSpread = 0.1
	}
	fillWorldRect(screen, v, x-legSpread-0.1, y, 0.2, 0.7, c)
	fillWorldRect(screen, v, x+legSpread-0.1, y, 0.2, 0.7, c)

	// Torso and head from the hurtbox zones so the picture matches the hits
	torso := cfg.Zones[cfg.ZoneTorso]
	fillWorldRect(screen, v, x+dir*lean-torso.Width/2, y+torso.OffsetY-torso.Height/2, torso.Width, torso.Height, c)
	head := cfg.Zones[cfg.ZoneHead]
	hx, hy := v.ToScreen(x+dir*lean*2, y+head.OffsetY)
	vector.FillCircle(screen, float32(hx), float32(hy), float32(head.Height/2*v.PixelsPerUnit), c, true)

	// Belt
	fillWorldRect(screen, v, x+dir*lean-torso.Width/2, y+0.7, torso.Width, 0.08, cfg.Black)

	if f.Executing {
		drawAttackLimb(screen, v, entry, f, c)
	}
}

// drawAttackLimb extends an arm or leg towards the move's hitbox while the
// move is inside its active window.
func drawAttackLimb(screen *ebiten.Image, v gamemath.View, entry *donburi.Entry, f *components.FighterData, c color.RGBA) {
	d := cfg.Describe(f.CurrentMove)
	if !d.Attack {
		return
	}
	ex := components.Execution.Get(entry)
	progress := ex.Progress()
	if progress < d.Active.Start*0.5 {
		return
	}

	box := core.HitboxFor(f.Position, f.CurrentMove, f.FacingRight)
	reach := gamemath.Clamp01(progress / d.Active.Start)
	tipX := box.X + box.W/2
	tipY := box.Y + box.H/2
	baseX := f.Position.X
	x0, x1 := baseX, baseX+(tipX-baseX)*reach
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	fillWorldRect(screen, v, x0, tipY-0.08, x1-x0, 0.16, c)
}

func fillWorldRect(screen *ebiten.Image, v gamemath.View, x, y, w, h float64, c color.Color) {
	sx, sy, sw, sh := v.RectToScreen(x, y, w, h)
	vector.FillRect(screen, float32(sx), float32(sy), float32(sw), float32(sh), c, false)
}

func strokeWorldObject(screen *ebiten.Image, v gamemath.View, obj *resolv.Object, c color.Color) {
	if obj == nil {
		return
	}
	sx, sy, sw, sh := v.RectToScreen(obj.X, obj.Y, obj.W, obj.H)
	x, y, w, h := float32(sx), float32(sy), float32(sw), float32(sh)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
