package components

import "github.com/yohamta/donburi"

// Stamp is an optional timestamp in simulation seconds.
type Stamp struct {
	At  float64
	Set bool
}

// Mark records t.
func (s *Stamp) Mark(t float64) {
	s.At = t
	s.Set = true
}

// Clear forgets the timestamp.
func (s *Stamp) Clear() {
	*s = Stamp{}
}

// Valid reports whether the stamp is set and younger than window. Ages
// within timerEpsilon of window count as reached, so a window lasts the
// same number of ticks whichever tick the stamp was taken on.
func (s Stamp) Valid(now, window float64) bool {
	return s.Set && now-s.At < window-timerEpsilon
}

// Expired reports whether the stamp is set and has reached window.
func (s Stamp) Expired(now, window float64) bool {
	return s.Set && now-s.At >= window-timerEpsilon
}

// ComboData is the directional press buffer of one player. Forward and back
// are relative to the fighter's facing at press time.
type ComboData struct {
	Up        Stamp
	Down      Stamp
	Forward   Stamp
	Back      Stamp
	DoubleTap Stamp // last back double-tap (turn around)
}

var Combo = donburi.NewComponentType[ComboData]()

// Clear empties the buffer.
func (c *ComboData) Clear() {
	*c = ComboData{}
}

// Empty reports whether no entry is set.
func (c *ComboData) Empty() bool {
	return !c.Up.Set && !c.Down.Set && !c.Forward.Set && !c.Back.Set && !c.DoubleTap.Set
}

// WalkData drives continuous stepping while left or right is held.
type WalkData struct {
	ActiveTime float64 // seconds the current walk has been held
	Steps      int     // steps already applied for ActiveTime
	Direction  float64 // -1, 0 or +1 in world space
}

var Walk = donburi.NewComponentType[WalkData]()

// Stop ends the current walk.
func (w *WalkData) Stop() {
	*w = WalkData{}
}
