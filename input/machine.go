package input

import "github.com/lixenwraith/finality-race/engine"

// Command maps a race-control intent to the animator command it submits
func Command(t IntentType) (engine.Command, bool) {
	switch t {
	case IntentStart:
		return engine.CmdStart, true
	case IntentReset:
		return engine.CmdReset, true
	case IntentToggleAutoRepeat:
		return engine.CmdToggleAutoRepeat, true
	default:
		return engine.CmdNone, false
	}
}
