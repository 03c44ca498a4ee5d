package renderers

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/finality-race/parameter"
	"github.com/lixenwraith/finality-race/render"
)

// HeaderRenderer draws the title, live badge and subtitle
type HeaderRenderer struct{}

// NewHeaderRenderer creates a header renderer
func NewHeaderRenderer() *HeaderRenderer {
	return &HeaderRenderer{}
}

// Render implements SystemRenderer
func (h *HeaderRenderer) Render(ctx render.Context, c *render.Canvas) {
	titleW := runewidth.StringWidth(parameter.TitleText)
	badgeW := runewidth.StringWidth(parameter.LiveBadge)

	x := (ctx.Width - titleW - 1 - badgeW) / 2
	if x < 0 {
		x = 0
	}
	x = c.Text(x, render.TitleRow, parameter.TitleText, render.StyleDefault.Bold(true))
	c.Text(x+1, render.TitleRow, parameter.LiveBadge, render.StyleActive)

	c.TextCenter(render.SubtitleRow, render.Truncate(parameter.SubtitleText, ctx.Width), render.StyleDim)
}
