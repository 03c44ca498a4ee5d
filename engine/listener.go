package engine

import (
	"time"

	"github.com/lixenwraith/finality-race/chain"
)

// LaneFinish describes a lane crossing the finish line
type LaneFinish struct {
	RunID      string
	Generation uint64
	Chain      chain.Chain
	Rank       int // final display rank; lanes finishing in one frame are ranked together
	Lanes      int
	Elapsed    time.Duration
}

// RaceResult describes the end-of-race signal
type RaceResult struct {
	RunID      string
	Generation uint64
	Complete   bool
	Standings  []Standing
}

// Listener receives race milestones on the animator goroutine; implementations must not block
type Listener interface {
	LaneFinished(LaneFinish)
	RaceEnded(RaceResult)
}
