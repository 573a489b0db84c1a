package gamemath

import (
	cfg "github.com/automoto/kumite/config"
	"github.com/solarlune/resolv"
)

// Box builds an axis-aligned rectangle centered at (x+dir*r.OffsetX, y+r.OffsetY).
// The resulting object is never added to a space.
func Box(x, y, dir float64, r cfg.Rect, tags ...string) *resolv.Object {
	cx := x + dir*r.OffsetX
	cy := y + r.OffsetY
	obj := resolv.NewObject(cx-r.Width/2, cy-r.Height/2, r.Width, r.Height, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, r.Width, r.Height))
	return obj
}

// Overlaps reports whether two rectangles intersect. Touching edges count.
//
// The test projects both shapes onto each other's separating axes. The
// line-crossing ConvexPolygon.Intersection is not used: it misses a box
// that lies wholly inside another, and its corner bias of one unit is
// sized for pixels rather than world units.
func Overlaps(a, b *resolv.Object) bool {
	pa, pb := polygon(a), polygon(b)
	if pa == nil || pb == nil {
		return false
	}
	for _, axis := range append(pa.SATAxes(), pb.SATAxes()...) {
		if pa.Project(axis).Overlap(pb.Project(axis)) < 0 {
			return false
		}
	}
	return true
}

// polygon returns the object's shape, building a rectangle from its bounds
// when none was set.
func polygon(obj *resolv.Object) *resolv.ConvexPolygon {
	if obj == nil {
		return nil
	}
	if p, ok := obj.Shape.(*resolv.ConvexPolygon); ok {
		return p
	}
	return resolv.NewRectangle(obj.X, obj.Y, obj.W, obj.H)
}
