package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/finality-race/chain"
	"github.com/lixenwraith/finality-race/engine"
)

type recordingRenderer struct {
	name string
	log  *[]string
}

func (r *recordingRenderer) Render(ctx Context, c *Canvas) { *r.log = append(*r.log, r.name) }

func TestOrchestratorOrder(t *testing.T) {
	screen := NewMockScreen(80, 24)
	o := NewOrchestrator(screen)

	var log []string
	o.Register(&recordingRenderer{name: "ui", log: &log}, PriorityUI)
	o.Register(&recordingRenderer{name: "lanes", log: &log}, PriorityLanes)
	o.Register(&recordingRenderer{name: "header", log: &log}, PriorityHeader)
	o.Register(&recordingRenderer{name: "lanes2", log: &log}, PriorityLanes)

	o.RenderFrame(Context{Snapshot: &engine.Snapshot{}})

	assert.Equal(t, []string{"header", "lanes", "lanes2", "ui"}, log)
	assert.Equal(t, 1, screen.Shows)
}

func TestOrchestratorResize(t *testing.T) {
	screen := NewMockScreen(80, 24)
	o := NewOrchestrator(screen)

	screen.Width, screen.Height = 120, 40
	o.Resize()

	w, h := o.Size()
	assert.Equal(t, 120, w)
	assert.Equal(t, 40, h)
	assert.Equal(t, 1, screen.Syncs)
}

func TestCanvasText(t *testing.T) {
	screen := NewMockScreen(10, 2)
	c := NewCanvas(screen, 10, 2)

	next := c.Text(0, 0, "ab", StyleDefault)
	assert.Equal(t, 2, next)

	// Wide rune occupies two columns
	next = c.Text(0, 1, "🏆x", StyleDefault)
	assert.Equal(t, 3, next)
	assert.Equal(t, '🏆', screen.Cells[[2]int{0, 1}].Rune)
	assert.Equal(t, 'x', screen.Cells[[2]int{2, 1}].Rune)

	// Clipped at the right edge
	next = c.Text(8, 0, "hello", StyleDefault)
	assert.Equal(t, 10, next)
	assert.Equal(t, "ab      he", screen.Row(0))

	// Out of bounds writes are dropped
	c.SetCell(-1, 0, 'z', StyleDefault)
	c.SetCell(0, 5, 'z', StyleDefault)
	assert.Zero(t, screen.Count('z'))
}

func TestCanvasAlign(t *testing.T) {
	screen := NewMockScreen(10, 1)
	c := NewCanvas(screen, 10, 1)

	c.TextCenter(0, "ab", StyleDefault)
	assert.Equal(t, "    ab", screen.Row(0))

	screen.Clear()
	c.TextRight(10, 0, "ab", StyleDefault)
	assert.Equal(t, "        ab", screen.Row(0))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
}

func TestPaletteGradient(t *testing.T) {
	pal := NewPalette(chain.Chain{Name: "A", FinalityMs: 1, Color: "#FF0000", Glow: "#0000FF"})

	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), pal.Fg)
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), pal.Gradient(0))
	assert.Equal(t, tcell.NewRGBColor(0, 0, 255), pal.Gradient(1))
	assert.Equal(t, pal.Gradient(1), pal.Gradient(7), "clamped above 1")
	assert.NotEqual(t, pal.Gradient(0), pal.Gradient(0.5))
}

func TestPaletteWithoutGlow(t *testing.T) {
	pal := NewPalette(chain.Chain{Name: "A", FinalityMs: 1, Color: "#00D4AA"})
	assert.Equal(t, pal.Gradient(0), pal.Gradient(1))
}

func TestLayout(t *testing.T) {
	ctx := Context{
		Snapshot: &engine.Snapshot{Lanes: make([]engine.LaneView, 7)},
		Height:   40,
	}
	assert.Equal(t, LanesTop, LaneRow(0))
	assert.Equal(t, LanesTop+3, LaneRow(1))
	assert.Equal(t, LaneRow(7)+1, ctx.SummaryRow())
	assert.Equal(t, 39, ctx.StatusRow())
	require.Less(t, ctx.SummaryRow(), ctx.StatusRow())
}
