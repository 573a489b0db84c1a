package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/kumite/components"
	cfg "github.com/automoto/kumite/config"
	"github.com/automoto/kumite/fonts"
	"github.com/automoto/kumite/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const healthCircleCount = 4

// HUD is the on-screen announcer and scoreboard. The simulation pushes into
// it; UpdateHUD animates and DrawHUD renders what was pushed.
type HUD struct {
	world donburi.World
	entry *donburi.Entry
}

// NewHUD creates the HUD entity in w.
func NewHUD(w donburi.World) *HUD {
	entry := w.Entry(w.Create(components.HUD))
	data := components.HUD.Get(entry)
	for i := range data.Health {
		data.Health[i] = cfg.Match.MaxHealth
		data.HealthShown[i] = float32(cfg.Match.MaxHealth)
	}
	data.SecondsRemaining = cfg.Match.RoundDuration
	return &HUD{world: w, entry: entry}
}

func (h *HUD) data() *components.HUDData {
	return components.HUD.Get(h.entry)
}

// ShowMessage pops the speech bubble with text.
func (h *HUD) ShowMessage(text string) {
	d := h.data()
	d.Message = text
	d.MessageVisible = true
	d.BubbleScale = 0
	d.BubbleTween = gween.New(0, 1, cfg.UI.BubblePopTime, ease.OutBack)
}

// HideMessage removes the speech bubble.
func (h *HUD) HideMessage() {
	d := h.data()
	d.MessageVisible = false
	d.BubbleTween = nil
}

// SetScore shows a player's points.
func (h *HUD) SetScore(playerIndex, value int) {
	if playerIndex < 0 || playerIndex >= 2 {
		return
	}
	h.data().Points[playerIndex] = value
}

// SetHealthLevel drains or refills a player's circles towards units.
func (h *HUD) SetHealthLevel(playerIndex, units int) {
	if playerIndex < 0 || playerIndex >= 2 {
		return
	}
	d := h.data()
	d.Health[playerIndex] = units
	d.HealthTweens[playerIndex] = gween.New(d.HealthShown[playerIndex], float32(units), cfg.UI.HealthTweenTime, ease.OutQuad)
}

// SetTimer shows the seconds left in the round.
func (h *HUD) SetTimer(seconds float64) {
	h.data().SecondsRemaining = seconds
}

// UpdateHUD advances the bubble and health tweens by one frame.
func UpdateHUD(ecs *ecs.ECS) {
	entry, ok := components.HUD.First(ecs.World)
	if !ok {
		return
	}
	d := components.HUD.Get(entry)
	dt := float32(1.0 / float64(ebiten.TPS()))

	if d.BubbleTween != nil {
		scale, done := d.BubbleTween.Update(dt)
		d.BubbleScale = scale
		if done {
			d.BubbleTween = nil
		}
	}

	for i, tw := range d.HealthTweens {
		if tw == nil {
			continue
		}
		shown, done := tw.Update(dt)
		d.HealthShown[i] = shown
		if done {
			d.HealthShown[i] = float32(d.Health[i])
			d.HealthTweens[i] = nil
		}
	}
}

// DrawHUD renders health circles, points, the round clock and the bubble.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.HUD.First(ecs.World)
	if !ok {
		return
	}
	d := components.HUD.Get(entry)
	width := float32(cfg.C.Width)

	drawHealthCircles(screen, d.HealthShown[cfg.Player1], 16, false)
	drawHealthCircles(screen, d.HealthShown[cfg.Player2], width-16, true)

	smallFace := fonts.Small.Get()
	text.Draw(screen, fmt.Sprintf("%d", d.Points[cfg.Player1]), smallFace, 16, 44, cfg.UI.FighterColors[cfg.Player1])
	p2 := fmt.Sprintf("%d", d.Points[cfg.Player2])
	p2Width := text.BoundString(smallFace, p2).Dx() //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, p2, smallFace, int(width)-16-p2Width, 44, cfg.UI.FighterColors[cfg.Player2])

	drawClock(screen, d.SecondsRemaining)

	if d.MessageVisible {
		drawBubble(screen, d.Message, d.BubbleScale)
	}
}

// drawHealthCircles draws the circles from x outwards; mirrored circles grow
// to the left.
func drawHealthCircles(screen *ebiten.Image, shown float32, x float32, mirrored bool) {
	r := cfg.UI.HealthCircleRadius
	spacing := cfg.UI.HealthCircleSpacing
	y := float32(20)

	for i, fill := range gamemath.HealthCircles(float64(shown), healthCircleCount) {
		cx := x + r + float32(i)*spacing
		if mirrored {
			cx = x - r - float32(i)*spacing
		}
		var c color.RGBA
		switch fill {
		case gamemath.CircleFull:
			c = cfg.UI.HealthFullColor
		case gamemath.CircleHalf:
			c = cfg.UI.HealthHalfColor
		default:
			c = cfg.UI.HealthEmptyColor
		}
		vector.FillCircle(screen, cx, y, r, c, true)
	}
}

func drawClock(screen *ebiten.Image, seconds float64) {
	width := float32(cfg.C.Width)
	fontFace := fonts.Bold.Get()

	clock := fmt.Sprintf("%02d", gamemath.FormatClock(seconds))
	boxWidth, boxHeight := float32(44), float32(26)
	boxX := width/2 - boxWidth/2

	vector.FillRect(screen, boxX, 6, boxWidth, boxHeight, cfg.BlackOverlay, false)

	bounds := text.BoundString(fontFace, clock) //nolint:staticcheck // TODO: migrate to text/v2
	textX := int(width/2) - bounds.Dx()/2
	text.Draw(screen, clock, fontFace, textX, 26, cfg.White)
}

// drawBubble draws the sensei's speech bubble, scaled around its center by
// the pop-in tween.
func drawBubble(screen *ebiten.Image, message string, scale float32) {
	if scale <= 0 {
		return
	}
	fontFace := fonts.Bold.Get()
	bounds := text.BoundString(fontFace, message) //nolint:staticcheck // TODO: migrate to text/v2

	padding := float32(10)
	boxWidth := float32(bounds.Dx()) + padding*2
	boxHeight := float32(bounds.Dy()) + padding*2
	cx := float32(cfg.C.Width) / 2
	cy := float32(80)

	w, h := boxWidth*scale, boxHeight*scale
	vector.FillRect(screen, cx-w/2, cy-h/2, w, h, cfg.UI.BubbleColor, false)
	// Tail pointing down at the sensei
	vector.FillRect(screen, cx-4*scale, cy+h/2, 8*scale, 8*scale, cfg.UI.BubbleColor, false)

	if scale < 0.9 {
		return
	}
	textX := int(cx - float32(bounds.Dx())/2 - float32(bounds.Min.X))
	textY := int(cy - float32(bounds.Dy())/2 - float32(bounds.Min.Y))
	text.Draw(screen, message, fontFace, textX, textY, cfg.UI.BubbleTextColor)
}
