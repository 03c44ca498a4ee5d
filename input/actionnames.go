package input

// actionRegistry maps canonical action names to intents, used when logging which binding fired
var actionRegistry = map[string]IntentType{
	"quit":               IntentQuit,
	"toggle_mute":        IntentToggleMute,
	"redraw":             IntentRedraw,
	"toggle_auto_repeat": IntentToggleAutoRepeat,
	"start":              IntentStart,
	"reset":              IntentReset,
}

// ActionName returns the canonical name of an intent, or "none"
func ActionName(t IntentType) string {
	for name, it := range actionRegistry {
		if it == t {
			return name
		}
	}
	return "none"
}
