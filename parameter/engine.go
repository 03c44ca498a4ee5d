package parameter

import "time"

// Animation Loop Timing
const (
	// FrameUpdateInterval is the animation frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MinFPS and MaxFPS bound the configurable frame rate
	MinFPS = 10
	MaxFPS = 240

	// CommandQueueSize is the buffered capacity of the animator command channel
	CommandQueueSize = 64
)

// Race Timing
const (
	// RaceGracePeriod is added to the slowest lane's finality before the race ends
	RaceGracePeriod = 500 * time.Millisecond

	// RepeatCooldown is the pause after a completed race before auto-repeat resets it
	RepeatCooldown = 2000 * time.Millisecond

	// RepeatSettle is the delay between the auto-repeat reset and the next start
	RepeatSettle = 100 * time.Millisecond
)

// Progress bounds in percent
const (
	ProgressMin = 0.0
	ProgressMax = 100.0
)

// MedalPlaces is the number of leading ranks that receive a medal
const MedalPlaces = 3
