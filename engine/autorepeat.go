package engine

import "time"

// RepeatPhase is where the auto-repeat controller is in its restart cycle
type RepeatPhase uint8

const (
	RepeatIdle     RepeatPhase = iota // no restart pending
	RepeatCooldown                    // waiting after a completed race
	RepeatSettle                      // reset done, waiting to start
)

// String returns the phase name
func (p RepeatPhase) String() string {
	switch p {
	case RepeatIdle:
		return "idle"
	case RepeatCooldown:
		return "cooldown"
	case RepeatSettle:
		return "settle"
	default:
		return "unknown"
	}
}

// RepeatAction tells the owner what to do after polling
type RepeatAction uint8

const (
	RepeatNone RepeatAction = iota
	RepeatReset
	RepeatStart
)

// AutoRepeat restarts completed races: cooldown, reset, settle, start
// Every pending step is a cancellable Deadline so disabling mid-cycle suppresses the restart
type AutoRepeat struct {
	enabled  bool
	phase    RepeatPhase
	timer    Deadline
	cooldown time.Duration
	settle   time.Duration
}

// NewAutoRepeat creates a disabled controller
func NewAutoRepeat(cooldown, settle time.Duration) *AutoRepeat {
	return &AutoRepeat{
		cooldown: cooldown,
		settle:   settle,
	}
}

// Enabled reports the toggle state
func (a *AutoRepeat) Enabled() bool {
	return a.enabled
}

// Phase returns the current restart phase
func (a *AutoRepeat) Phase() RepeatPhase {
	return a.phase
}

// Enable turns the toggle on; returns true when the caller should start a race immediately
func (a *AutoRepeat) Enable(running bool) bool {
	if a.enabled {
		return false
	}
	a.enabled = true
	return !running
}

// Disable turns the toggle off and cancels any pending restart
// An in-progress race is not affected
func (a *AutoRepeat) Disable() {
	a.enabled = false
	a.phase = RepeatIdle
	a.timer.Cancel()
}

// RaceEnded arms the cooldown when the race ended with every lane finished
func (a *AutoRepeat) RaceEnded(now time.Time, allFinished bool) bool {
	if !a.enabled || !allFinished || a.phase != RepeatIdle {
		return false
	}
	a.phase = RepeatCooldown
	a.timer.Arm(now.Add(a.cooldown))
	return true
}

// Poll advances the cycle when its deadline is due
func (a *AutoRepeat) Poll(now time.Time) RepeatAction {
	if !a.timer.Fire(now) {
		return RepeatNone
	}

	switch a.phase {
	case RepeatCooldown:
		a.phase = RepeatSettle
		a.timer.Arm(now.Add(a.settle))
		return RepeatReset
	case RepeatSettle:
		a.phase = RepeatIdle
		return RepeatStart
	default:
		return RepeatNone
	}
}

// Deadline returns the pending restart step instant
func (a *AutoRepeat) Deadline() (time.Time, bool) {
	return a.timer.At()
}

// Remaining is the time left in the current phase
func (a *AutoRepeat) Remaining(now time.Time) time.Duration {
	return a.timer.Remaining(now)
}
