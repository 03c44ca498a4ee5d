package engine

import (
	"time"

	"github.com/lixenwraith/finality-race/parameter"
)

// Progress maps elapsed time onto [0,100] for a lane of the given duration
// Non-positive durations are rejected at seed load and report complete here
func Progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return parameter.ProgressMax
	}
	if elapsed <= 0 {
		return parameter.ProgressMin
	}
	p := float64(elapsed) / float64(duration) * parameter.ProgressMax
	if p > parameter.ProgressMax {
		return parameter.ProgressMax
	}
	return p
}
