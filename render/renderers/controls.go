package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/finality-race/parameter"
	"github.com/lixenwraith/finality-race/render"
)

// ControlsRenderer draws the control bar; Start and Reset render disabled while they would be ignored
type ControlsRenderer struct{}

// NewControlsRenderer creates a control bar renderer
func NewControlsRenderer() *ControlsRenderer {
	return &ControlsRenderer{}
}

// Render implements SystemRenderer
func (r *ControlsRenderer) Render(ctx render.Context, c *render.Canvas) {
	snap := ctx.Snapshot
	y := render.ControlsRow
	x := parameter.LeftMargin

	if snap.AutoRepeat {
		x = button(c, x, y, parameter.ControlAutoOn, render.StyleActive)
	} else {
		x = button(c, x, y, parameter.ControlAutoOff, render.StyleButton)
	}

	startText := parameter.ControlStartIdle
	if snap.Running {
		startText = parameter.ControlStartBusy
	}
	x = button(c, x, y, startText, enabledStyle(snap.CanStart()))
	button(c, x, y, parameter.ControlReset, enabledStyle(snap.CanReset()))

	c.TextRight(ctx.Width-parameter.RightMargin, y, parameter.ControlQuit, render.StyleDim)
}

func enabledStyle(enabled bool) tcell.Style {
	if enabled {
		return render.StyleButton
	}
	return render.StyleDisabled
}

// button draws a padded label and returns the x of the next button
func button(c *render.Canvas, x, y int, label string, style tcell.Style) int {
	x = c.Text(x, y, " "+label+" ", style)
	return x + parameter.ControlGap
}
