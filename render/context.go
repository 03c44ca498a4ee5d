package render

import (
	"github.com/lixenwraith/finality-race/engine"
	"github.com/lixenwraith/finality-race/parameter"
)

// HUD carries process-level indicators that are not part of race state
type HUD struct {
	Audio       bool // device opened
	Muted       bool
	MetricsAddr string
}

// Context is everything a renderer may read for one frame
type Context struct {
	Snapshot *engine.Snapshot
	HUD      HUD
	Width    int
	Height   int
}

// Layout rows
const (
	TitleRow    = 0
	SubtitleRow = 1
	ControlsRow = 3
	LanesTop    = 5
)

// LaneRow returns the header row of lane i
func LaneRow(i int) int {
	return LanesTop + i*parameter.LaneHeight
}

// SummaryRow is the first row below the last lane
func (ctx Context) SummaryRow() int {
	return LaneRow(len(ctx.Snapshot.Lanes)) + 1
}

// StatusRow is the bottom line of the screen
func (ctx Context) StatusRow() int {
	return ctx.Height - 1
}
