package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/finality-race/chain"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// twoLaneRoster is A: 100ms, B: 200ms
func twoLaneRoster(t *testing.T) *chain.Roster {
	t.Helper()
	r, err := chain.NewRoster([]chain.Chain{
		{Name: "A", FinalityMs: 100, Color: "#00D4AA"},
		{Name: "B", FinalityMs: 200, Color: "#F3BA2F"},
	})
	if err != nil {
		t.Fatalf("NewRoster: %v", err)
	}
	return r
}

func at(ms int) time.Time {
	return epoch.Add(time.Duration(ms) * time.Millisecond)
}

type recordingListener struct {
	finishes []LaneFinish
	results  []RaceResult
}

func (l *recordingListener) LaneFinished(ev LaneFinish) { l.finishes = append(l.finishes, ev) }
func (l *recordingListener) RaceEnded(res RaceResult)   { l.results = append(l.results, res) }
