package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/finality-race/engine"
	"github.com/lixenwraith/finality-race/parameter"
	"github.com/lixenwraith/finality-race/render"
)

// LanesRenderer draws one lane per chain: name, medal, label, track and finish badge
type LanesRenderer struct {
	palettes map[string]render.Palette
}

// NewLanesRenderer creates a lane renderer
func NewLanesRenderer() *LanesRenderer {
	return &LanesRenderer{palettes: make(map[string]render.Palette)}
}

// Render implements SystemRenderer
func (r *LanesRenderer) Render(ctx render.Context, c *render.Canvas) {
	for i, lane := range ctx.Snapshot.Lanes {
		y := render.LaneRow(i)
		if y+1 >= ctx.Height {
			return
		}
		pal := r.palette(lane)
		r.drawHeader(ctx, c, y, lane, pal)
		r.drawTrack(ctx, c, y+1, lane, pal)
	}
}

func (r *LanesRenderer) palette(lane engine.LaneView) render.Palette {
	p, ok := r.palettes[lane.Chain.Name]
	if !ok {
		p = render.NewPalette(lane.Chain)
		r.palettes[lane.Chain.Name] = p
	}
	return p
}

func (r *LanesRenderer) drawHeader(ctx render.Context, c *render.Canvas, y int, lane engine.LaneView, pal render.Palette) {
	name := lane.Chain.Name
	if medal := Medal(lane.Rank); medal != "" {
		name += " " + medal
	}
	name = render.Truncate(name, parameter.NameColumnWidth)
	c.Text(parameter.LeftMargin, y, name, render.StyleDefault.Foreground(pal.Fg).Bold(true))

	if lane.Chain.Label != "" {
		c.TextRight(ctx.Width-parameter.RightMargin, y, lane.Chain.Label, render.StyleDim)
	}
}

func (r *LanesRenderer) drawTrack(ctx render.Context, c *render.Canvas, y int, lane engine.LaneView, pal render.Palette) {
	start := parameter.LeftMargin
	width := ctx.Width - parameter.LeftMargin - parameter.RightMargin - parameter.BadgeColumnWidth - 1
	badgeX := start

	if width >= parameter.MinTrackWidth {
		drawBar(c, start, y, width, lane, pal)
		c.SetCell(start+width, y, parameter.FinishLine, render.StyleFinish)
		badgeX = start + width + 2
	}

	if lane.Finished {
		c.Text(badgeX, y, FinishBadge(lane), render.StyleDefault.Foreground(pal.Fg).Bold(true))
	} else if lane.Progress > 0 {
		c.Text(badgeX, y, fmt.Sprintf("%3.0f%%", lane.Progress), render.StyleDim)
	}
}

// drawBar fills the track proportionally to progress with the lane gradient
func drawBar(c *render.Canvas, x, y, width int, lane engine.LaneView, pal render.Palette) {
	cells := float64(width) * lane.Progress / parameter.ProgressMax
	full := int(cells)
	if full > width {
		full = width
	}

	for i := 0; i < width; i++ {
		c.SetCell(x+i, y, parameter.TrackEmpty, render.StyleTrack)
	}
	for i := 0; i < full; i++ {
		c.SetCell(x+i, y, parameter.TrackFull, barStyle(pal, i, width))
	}
	if full >= width {
		return
	}

	switch {
	case !lane.Finished && lane.Progress > 0:
		c.SetCell(x+full, y, parameter.TxMarker, render.StyleDefault.Foreground(pal.Fg).Bold(true))
	case cells-float64(full) >= 0.5:
		c.SetCell(x+full, y, parameter.TrackHalf, barStyle(pal, full, width))
	}
}

func barStyle(pal render.Palette, i, width int) tcell.Style {
	t := 0.0
	if width > 1 {
		t = float64(i) / float64(width-1)
	}
	return render.StyleDefault.Foreground(pal.Gradient(t))
}

var medals = [parameter.MedalPlaces]string{parameter.MedalFirst, parameter.MedalSecond, parameter.MedalThird}

// Medal returns the medal for podium ranks and "" otherwise
func Medal(rank int) string {
	if rank < 1 || rank > parameter.MedalPlaces {
		return ""
	}
	return medals[rank-1]
}

// FinishBadge formats "#rank • Nms" for a finished lane
func FinishBadge(lane engine.LaneView) string {
	return fmt.Sprintf("#%d%s%dms", lane.Rank, parameter.BadgeSep, lane.Chain.FinalityMs)
}
