package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Enter, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyEnter:  IntentStart,
			tcell.KeyCtrlL:  IntentRedraw,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'Q': IntentQuit,
			'a': IntentToggleAutoRepeat,
			'A': IntentToggleAutoRepeat,
			's': IntentStart,
			'S': IntentStart,
			' ': IntentStart,
			'r': IntentReset,
			'R': IntentReset,
			'm': IntentToggleMute,
			'M': IntentToggleMute,
		},
	}
}

// Translate converts a terminal event to an intent
func (kt *KeyTable) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			return Intent{Type: kt.Runes[ev.Rune()]}
		}
		return Intent{Type: kt.SpecialKeys[ev.Key()]}

	case *tcell.EventResize:
		w, h := ev.Size()
		return Intent{Type: IntentResize, Width: w, Height: h}
	}
	return Intent{Type: IntentNone}
}
