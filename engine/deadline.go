package engine

import "time"

// Deadline is a cancellable one-shot timer owned by a single loop
// It never fires on its own; the owner polls Fire with the current time
type Deadline struct {
	at    time.Time
	armed bool
}

// Arm schedules the deadline, replacing any previous one
func (d *Deadline) Arm(at time.Time) {
	d.at = at
	d.armed = true
}

// Cancel disarms the deadline; safe when not armed
func (d *Deadline) Cancel() {
	d.at = time.Time{}
	d.armed = false
}

// Armed reports whether the deadline is pending
func (d *Deadline) Armed() bool {
	return d.armed
}

// At returns the scheduled instant and whether it is armed
func (d *Deadline) At() (time.Time, bool) {
	return d.at, d.armed
}

// Fire disarms and returns true once now has reached the deadline
func (d *Deadline) Fire(now time.Time) bool {
	if !d.armed || now.Before(d.at) {
		return false
	}
	d.Cancel()
	return true
}

// Remaining is the time left until the deadline, zero when due or disarmed
func (d *Deadline) Remaining(now time.Time) time.Duration {
	if !d.armed {
		return 0
	}
	if left := d.at.Sub(now); left > 0 {
		return left
	}
	return 0
}
