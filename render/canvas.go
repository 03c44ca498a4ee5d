package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Canvas is a bounds-checked drawing surface over a tcell screen
type Canvas struct {
	screen tcell.Screen
	width  int
	height int
}

// NewCanvas wraps screen with the given dimensions
func NewCanvas(screen tcell.Screen, width, height int) *Canvas {
	return &Canvas{screen: screen, width: width, height: height}
}

// Width returns the drawable width
func (c *Canvas) Width() int { return c.width }

// Height returns the drawable height
func (c *Canvas) Height() int { return c.height }

// SetCell draws one rune; out-of-bounds writes are dropped
func (c *Canvas) SetCell(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.screen.SetContent(x, y, r, nil, style)
}

// Fill draws r across w cells
func (c *Canvas) Fill(x, y, w int, r rune, style tcell.Style) {
	for i := 0; i < w; i++ {
		c.SetCell(x+i, y, r, style)
	}
}

// Text draws s starting at x and returns the column after it; wide runes take two columns
func (c *Canvas) Text(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > c.width {
			break
		}
		c.SetCell(x, y, r, style)
		x += w
	}
	return x
}

// TextRight draws s so that it ends just before column end
func (c *Canvas) TextRight(end, y int, s string, style tcell.Style) int {
	return c.Text(end-runewidth.StringWidth(s), y, s, style)
}

// TextCenter draws s centered on row y
func (c *Canvas) TextCenter(y int, s string, style tcell.Style) int {
	x := (c.width - runewidth.StringWidth(s)) / 2
	if x < 0 {
		x = 0
	}
	return c.Text(x, y, s, style)
}

// Truncate shortens s to fit w columns
func Truncate(s string, w int) string {
	return runewidth.Truncate(s, w, "…")
}
