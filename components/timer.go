package components

// timerEpsilon absorbs float error from deriving time from tick counts.
const timerEpsilon = 1e-9

// Timer is a cancellable one-shot deadline in simulation seconds. It is a
// plain value so it lives inside the component that owns the wait.
type Timer struct {
	Deadline float64
	Armed    bool
}

// Arm schedules the timer to fire d seconds after now.
func (t *Timer) Arm(now, d float64) {
	t.Deadline = now + d
	t.Armed = true
}

// Cancel disarms the timer. A cancelled timer never fires.
func (t *Timer) Cancel() {
	t.Armed = false
}

// Fired reports true once when now has reached the deadline, disarming the
// timer.
func (t *Timer) Fired(now float64) bool {
	if !t.Armed || now+timerEpsilon < t.Deadline {
		return false
	}
	t.Armed = false
	return true
}

// Remaining returns the seconds left, or 0 when disarmed.
func (t *Timer) Remaining(now float64) float64 {
	if !t.Armed || now >= t.Deadline {
		return 0
	}
	return t.Deadline - now
}
