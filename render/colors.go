package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/finality-race/chain"
)

// RGB palette
var (
	RgbBackground = tcell.NewRGBColor(10, 14, 39)    // Page background
	RgbTrack      = tcell.NewRGBColor(22, 27, 52)    // Empty track
	RgbFinishLine = tcell.NewRGBColor(120, 124, 140) // Finish line
	RgbText       = tcell.NewRGBColor(230, 230, 235) // Primary text
	RgbDim        = tcell.NewRGBColor(120, 124, 140) // Labels, disabled controls
	RgbAccent     = tcell.NewRGBColor(0, 212, 170)   // Brand teal
	RgbAccentDark = tcell.NewRGBColor(10, 14, 39)    // Text on accent
	RgbButton     = tcell.NewRGBColor(40, 44, 68)    // Enabled button
)

// Base styles
var (
	StyleDefault  = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	StyleDim      = StyleDefault.Foreground(RgbDim)
	StyleAccent   = StyleDefault.Foreground(RgbAccent).Bold(true)
	StyleTrack    = StyleDefault.Foreground(RgbTrack)
	StyleFinish   = StyleDefault.Foreground(RgbFinishLine)
	StyleButton   = StyleDefault.Background(RgbButton).Bold(true)
	StyleDisabled = StyleDefault.Background(RgbButton).Foreground(RgbDim).Dim(true)
	StyleActive   = StyleDefault.Background(RgbAccent).Foreground(RgbAccentDark).Bold(true)
)

// Palette is a lane's colors: solid name color plus a bar gradient from Color to Glow
type Palette struct {
	Fg   tcell.Color
	from colorful.Color
	to   colorful.Color
}

// NewPalette builds a palette; colors were validated at seed load, so parse errors fall back to the accent
func NewPalette(c chain.Chain) Palette {
	from, err := colorful.Hex(c.Color)
	if err != nil {
		from = toColorful(RgbAccent)
	}
	to := from
	if c.Glow != "" {
		if g, err := colorful.Hex(c.Glow); err == nil {
			to = g
		}
	}
	return Palette{Fg: toTcell(from), from: from, to: to}
}

// Gradient returns the bar color at position t in [0,1]
func (p Palette) Gradient(t float64) tcell.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return toTcell(p.from.BlendLab(p.to, t).Clamped())
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
