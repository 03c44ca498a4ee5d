package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/finality-race/engine"
	"github.com/lixenwraith/finality-race/parameter"
	"github.com/lixenwraith/finality-race/render"
)

var (
	rgbAudioMuted   = tcell.NewRGBColor(200, 50, 50)
	rgbAudioUnmuted = tcell.NewRGBColor(50, 200, 80)
	rgbStatusBg     = tcell.NewRGBColor(30, 34, 58)
)

// StatusBarRenderer draws the status bar at the bottom
type StatusBarRenderer struct{}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{}
}

// Render implements SystemRenderer
func (s *StatusBarRenderer) Render(ctx render.Context, c *render.Canvas) {
	snap := ctx.Snapshot
	y := ctx.StatusRow()
	if y <= render.ControlsRow {
		return
	}

	barStyle := render.StyleDefault.Background(rgbStatusBg)
	c.Fill(0, y, ctx.Width, ' ', barStyle)

	x := 0
	// Audio indicator only when a device is open
	if ctx.HUD.Audio {
		bg := rgbAudioUnmuted
		if ctx.HUD.Muted {
			bg = rgbAudioMuted
		}
		x = c.Text(x, y, parameter.AudioStr, barStyle.Foreground(tcell.ColorBlack).Background(bg))
	}

	x = c.Text(x, y, " "+StateText(snap)+" ", render.StyleActive)

	if snap.RunID != "" {
		x = c.Text(x+1, y, "run "+shortID(snap.RunID), barStyle.Foreground(render.RgbDim))
	}
	c.Text(x+1, y, fmt.Sprintf("gen %d", snap.Generation), barStyle.Foreground(render.RgbDim))

	right := fmt.Sprintf("%d/%d finished  frame %d", len(snap.FinishedOrder), len(snap.Lanes), snap.Frame)
	if ctx.HUD.MetricsAddr != "" {
		right = "metrics " + ctx.HUD.MetricsAddr + "  " + right
	}
	c.TextRight(ctx.Width-1, y, right, barStyle.Foreground(render.RgbDim))
}

// StateText is the race state label shown in the status bar
func StateText(snap *engine.Snapshot) string {
	switch {
	case snap.Running:
		return parameter.StateRunning
	case snap.RepeatPhase == engine.RepeatCooldown:
		return fmt.Sprintf("%s %.1fs", parameter.StateCooldown, snap.RepeatIn.Seconds())
	case snap.Complete:
		return parameter.StateComplete
	}
	return parameter.StateIdle
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
