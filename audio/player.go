// Package audio plays finish chimes; every method is a no-op until Initialize succeeds
package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/finality-race/engine"
	"github.com/lixenwraith/finality-race/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Player turns race milestones into sound; it implements engine.Listener
type Player struct {
	mu          sync.Mutex
	initialized bool
	muted       atomic.Bool
	played      atomic.Int64
	log         *zap.Logger

	// Replaced in tests to capture streamers instead of opening a device
	sink func(beep.Streamer)
}

// NewPlayer creates an uninitialized player
func NewPlayer(log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	return &Player{
		log:  log.Named("audio"),
		sink: func(s beep.Streamer) { speaker.Play(s) },
	}
}

// Initialize opens the speaker
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	p.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the device
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// ToggleMute flips the mute flag and returns the new state
func (p *Player) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Muted reports whether chimes are suppressed
func (p *Player) Muted() bool {
	return p.muted.Load()
}

// Enabled reports whether sounds will actually play
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized && !p.muted.Load()
}

// Played returns the number of sounds sent to the device
func (p *Player) Played() int64 {
	return p.played.Load()
}

// LaneFinished implements engine.Listener
func (p *Player) LaneFinished(ev engine.LaneFinish) {
	p.play(Chime(sampleRate, ev.Rank, ev.Lanes))
}

// RaceEnded implements engine.Listener
func (p *Player) RaceEnded(res engine.RaceResult) {
	if !res.Complete {
		return
	}
	p.play(Fanfare(sampleRate))
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted.Load() {
		return
	}
	p.sink(s)
	p.played.Add(1)
}
