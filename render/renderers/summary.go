package renderers

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/finality-race/engine"
	"github.com/lixenwraith/finality-race/parameter"
	"github.com/lixenwraith/finality-race/render"
)

// SummaryRenderer draws the results panel below the lanes, the auto-repeat countdown and the footer
type SummaryRenderer struct{}

// NewSummaryRenderer creates a summary renderer
func NewSummaryRenderer() *SummaryRenderer {
	return &SummaryRenderer{}
}

// Render implements SystemRenderer
func (r *SummaryRenderer) Render(ctx render.Context, c *render.Canvas) {
	snap := ctx.Snapshot
	y := ctx.SummaryRow()

	if snap.Complete {
		if winner, ok := snap.Winner(); ok {
			c.TextCenter(y, fmt.Sprintf("%s %s Wins!", parameter.MedalFirst, winner.Name), render.StyleAccent)
			c.TextCenter(y+1, render.Truncate(Comparison(snap), ctx.Width), render.StyleDefault)
		}
	}

	if snap.RepeatPhase == engine.RepeatCooldown {
		c.TextCenter(y+2, fmt.Sprintf("Next race in %.1fs", snap.RepeatIn.Seconds()), render.StyleDim)
	}

	if footer := y + 4; footer < ctx.StatusRow() {
		c.TextCenter(footer, render.Truncate(parameter.FooterText, ctx.Width), render.StyleDim)
	}
}

// Comparison describes the winner's finality against the slowest finishers
func Comparison(snap *engine.Snapshot) string {
	n := len(snap.Standings)
	if n == 0 {
		return ""
	}
	winner := snap.Standings[0].Chain
	line := fmt.Sprintf("%dms finality.", winner.FinalityMs)

	var parts []string
	for i := n - 1; i > 0 && len(parts) < parameter.SummaryCompareCount; i-- {
		other := snap.Standings[i].Chain
		if other.FinalityMs <= winner.FinalityMs {
			break
		}
		ratio := float64(other.FinalityMs) / float64(winner.FinalityMs)
		parts = append(parts, fmt.Sprintf("%.3g× faster than %s", ratio, other.Name))
	}
	if len(parts) == 0 {
		return line
	}
	return line + " That's " + strings.Join(parts, " and ") + "."
}
