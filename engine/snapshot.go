package engine

import (
	"time"

	"github.com/lixenwraith/finality-race/chain"
)

// LaneView is one lane as the renderer sees it
type LaneView struct {
	Chain    chain.Chain
	Progress float64
	Finished bool
	Rank     int // 0 until finished
}

// Snapshot is an immutable copy of animator state published after every step
type Snapshot struct {
	Generation uint64
	RunID      string
	Frame      uint64
	Time       time.Time

	Running     bool
	Started     bool
	Complete    bool // every lane finished and the race ended
	AutoRepeat  bool
	RepeatPhase RepeatPhase
	RepeatIn    time.Duration

	Lanes         []LaneView // roster order
	FinishedOrder []string
	Standings     []Standing
}

// Lane returns the view for name
func (s *Snapshot) Lane(name string) (LaneView, bool) {
	for _, l := range s.Lanes {
		if l.Chain.Name == name {
			return l, true
		}
	}
	return LaneView{}, false
}

// Winner returns the rank-1 lane once any lane has finished
func (s *Snapshot) Winner() (chain.Chain, bool) {
	if len(s.Standings) == 0 {
		return chain.Chain{}, false
	}
	return s.Standings[0].Chain, true
}

// CanStart mirrors the Start Once control: disabled while running or auto-repeating
func (s *Snapshot) CanStart() bool {
	return !s.Running && !s.AutoRepeat
}

// CanReset mirrors the Reset control
func (s *Snapshot) CanReset() bool {
	return !s.Running && !s.AutoRepeat
}

func buildSnapshot(r *Race, a *AutoRepeat, frame uint64, now time.Time) *Snapshot {
	finished := r.FinishedOrder()
	standings := Standings(r.Roster(), finished)

	ranks := make(map[string]int, len(standings))
	for _, s := range standings {
		ranks[s.Chain.Name] = s.Rank
	}

	lanes := make([]LaneView, 0, r.Roster().Len())
	for _, c := range r.Roster().All() {
		lanes = append(lanes, LaneView{
			Chain:    c,
			Progress: r.Progress(c.Name),
			Finished: r.IsFinished(c.Name),
			Rank:     ranks[c.Name],
		})
	}

	return &Snapshot{
		Generation:    r.Generation(),
		RunID:         r.RunID(),
		Frame:         frame,
		Time:          now,
		Running:       r.Running(),
		Started:       r.Started(),
		Complete:      r.Started() && r.AllFinished() && !r.Running(),
		AutoRepeat:    a.Enabled(),
		RepeatPhase:   a.Phase(),
		RepeatIn:      a.Remaining(now),
		Lanes:         lanes,
		FinishedOrder: finished,
		Standings:     standings,
	}
}
