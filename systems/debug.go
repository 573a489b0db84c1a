package systems

import (
	"fmt"

	"github.com/automoto/kumite/components"
	cfg "github.com/automoto/kumite/config"
	"github.com/automoto/kumite/core"
	"github.com/automoto/kumite/fonts"
	"github.com/automoto/kumite/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawHitboxes outlines every hurtbox zone and fills live attack hitboxes.
func DrawHitboxes(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHitboxes {
		return
	}
	v := view()

	tags.Fighter.Each(ecs.World, func(entry *donburi.Entry) {
		f := components.Fighter.Get(entry)
		for zone := cfg.ZoneID(0); zone < cfg.ZoneCount; zone++ {
			strokeWorldObject(screen, v, core.HurtboxFor(f, zone), cfg.UI.HurtboxColor)
		}

		if !f.Executing {
			return
		}
		d := cfg.Describe(f.CurrentMove)
		ex := components.Execution.Get(entry)
		if !d.Attack || !d.Active.Contains(ex.Progress()) {
			return
		}
		box := core.HitboxFor(f.Position, f.CurrentMove, f.FacingRight)
		sx, sy, sw, sh := v.RectToScreen(box.X, box.Y, box.W, box.H)
		vector.FillRect(screen, float32(sx), float32(sy), float32(sw), float32(sh), cfg.UI.HitboxColor, false)
	})
}

// DrawDebug prints the match state and each fighter's move in a corner.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHitboxes {
		return
	}
	face := fonts.Small.Get()
	y := cfg.C.Height - 8

	if entry, ok := components.Match.First(ecs.World); ok {
		m := components.Match.Get(entry)
		text.Draw(screen, fmt.Sprintf("%s beat=%d", m.State, m.Beat), face, 8, y, cfg.Yellow)
		y -= 14
	}
	tags.Fighter.Each(ecs.World, func(entry *donburi.Entry) {
		f := components.Fighter.Get(entry)
		line := fmt.Sprintf("P%d x=%.2f y=%.2f %s", f.PlayerIndex+1, f.Position.X, f.Position.Y, f.DisplayMove())
		text.Draw(screen, line, face, 8, y, cfg.Yellow)
		y -= 14
	})
}
