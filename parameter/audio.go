package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Finish Chime
const (
	ChimeDuration = 180 * time.Millisecond
	ChimeAttack   = 5 * time.Millisecond
	ChimeRelease  = 120 * time.Millisecond

	// ChimeBaseFreq is the pitch for last place; each better rank steps up a semitone ratio
	ChimeBaseFreq = 440.0
	ChimeStep     = 1.122462 // whole tone

	// ChimeVolume is the linear gain applied to every chime
	ChimeVolume = 0.3
)

// Winner Fanfare
const (
	FanfareNoteDuration = 90 * time.Millisecond
	FanfareFinalRelease = 300 * time.Millisecond
)

// FanfareNotes is the arpeggio played when the race completes (C5 E5 G5 C6)
var FanfareNotes = []float64{523.25, 659.25, 783.99, 1046.50}
