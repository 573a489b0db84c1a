package gamemath

import "math"

// View maps world units (floor at y=0, y up) to screen pixels (y down).
type View struct {
	PixelsPerUnit float64
	CenterX       float64 // screen x of world x=0
	FloorY        float64 // screen y of world y=0
}

// ToScreen converts a world point to screen pixels.
func (v View) ToScreen(x, y float64) (sx, sy float64) {
	return v.CenterX + x*v.PixelsPerUnit, v.FloorY - y*v.PixelsPerUnit
}

// RectToScreen converts a world rectangle given by its bottom-left corner to
// a screen rectangle given by its top-left corner.
func (v View) RectToScreen(x, y, w, h float64) (sx, sy, sw, sh float64) {
	sx, sy = v.ToScreen(x, y+h)
	return sx, sy, w * v.PixelsPerUnit, h * v.PixelsPerUnit
}

// CircleFill is how much of a health circle is lit.
type CircleFill int

const (
	CircleEmpty CircleFill = iota
	CircleHalf
	CircleFull
)

// HealthCircles splits health units into display circles holding two units
// each. Fractional values from a draining animation round up to the next
// half circle so a hit never shows more damage than it did.
func HealthCircles(units float64, circles int) []CircleFill {
	out := make([]CircleFill, circles)
	halves := int(math.Ceil(units - 1e-6))
	for i := range out {
		switch {
		case halves >= 2:
			out[i] = CircleFull
			halves -= 2
		case halves == 1:
			out[i] = CircleHalf
			halves = 0
		}
	}
	return out
}

// FormatClock renders seconds remaining as whole seconds, rounding up so the
// display only reads 0 once time is up.
func FormatClock(seconds float64) int {
	if seconds <= 0 {
		return 0
	}
	return int(math.Ceil(seconds - 1e-9))
}
