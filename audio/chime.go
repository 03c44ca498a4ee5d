package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/finality-race/parameter"
)

// ChimeFrequency maps a finishing rank to a pitch: last place sounds ChimeBaseFreq,
// every better place one step higher
func ChimeFrequency(rank, lanes int) float64 {
	if lanes < 1 {
		lanes = 1
	}
	if rank < 1 {
		rank = lanes
	}
	if rank > lanes {
		rank = lanes
	}
	steps := lanes - rank
	return parameter.ChimeBaseFreq * math.Pow(parameter.ChimeStep, float64(steps))
}

// Chime is the short tone played as a lane crosses the finish line
func Chime(rate beep.SampleRate, rank, lanes int) beep.Streamer {
	osc := NewSine(ChimeFrequency(rank, lanes), parameter.ChimeDuration, rate)
	shaped := NewEnvelope(osc, parameter.ChimeDuration, parameter.ChimeAttack, parameter.ChimeRelease, rate)
	return newVolume(shaped, parameter.ChimeVolume)
}

// Fanfare is the rising arpeggio played once every lane has finished
func Fanfare(rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(parameter.FanfareNotes))
	for i, freq := range parameter.FanfareNotes {
		d := parameter.FanfareNoteDuration
		release := parameter.ChimeAttack
		if i == len(parameter.FanfareNotes)-1 {
			d += parameter.FanfareFinalRelease
			release = parameter.FanfareFinalRelease
		}
		notes = append(notes, NewEnvelope(NewSine(freq, d, rate), d, parameter.ChimeAttack, release, rate))
	}
	return newVolume(beep.Seq(notes...), parameter.ChimeVolume)
}
