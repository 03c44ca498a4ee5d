package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C
	IntentToggleMute // m
	IntentResize     // Terminal resize event
	IntentRedraw     // Ctrl+L

	// Race controls
	IntentToggleAutoRepeat // a
	IntentStart            // s, Enter
	IntentReset            // r
)

// Intent is the result of translating one terminal event
type Intent struct {
	Type          IntentType
	Width, Height int // populated for IntentResize
}
