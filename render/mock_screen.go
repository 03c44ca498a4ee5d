package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// MockCell is one recorded SetContent call
type MockCell struct {
	Rune  rune
	Style tcell.Style
}

// MockScreen is a minimal tcell.Screen that records drawn cells, for tests
type MockScreen struct {
	tcell.Screen
	Width, Height int
	Cells         map[[2]int]MockCell
	Shows         int
	Syncs         int
}

// NewMockScreen creates a recording screen of the given size
func NewMockScreen(w, h int) *MockScreen {
	return &MockScreen{Width: w, Height: h, Cells: make(map[[2]int]MockCell)}
}

func (m *MockScreen) Size() (int, int)            { return m.Width, m.Height }
func (m *MockScreen) Init() error                 { return nil }
func (m *MockScreen) Fini()                       {}
func (m *MockScreen) Show()                       { m.Shows++ }
func (m *MockScreen) Sync()                       { m.Syncs++ }
func (m *MockScreen) SetStyle(style tcell.Style)  {}
func (m *MockScreen) Clear()                      { clear(m.Cells) }
func (m *MockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.Cells[[2]int{x, y}] = MockCell{Rune: mainc, Style: style}
}

// Row returns the text drawn on row y, skipping cells covered by wide runes
func (m *MockScreen) Row(y int) string {
	var sb strings.Builder
	for x := 0; x < m.Width; x++ {
		if c, ok := m.Cells[[2]int{x, y}]; ok {
			sb.WriteRune(c.Rune)
		} else {
			sb.WriteRune(' ')
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

// Text returns every row joined by newlines
func (m *MockScreen) Text() string {
	rows := make([]string, m.Height)
	for y := range rows {
		rows[y] = m.Row(y)
	}
	return strings.Join(rows, "\n")
}

// Count returns how many cells hold r
func (m *MockScreen) Count(r rune) int {
	n := 0
	for _, c := range m.Cells {
		if c.Rune == r {
			n++
		}
	}
	return n
}
