package engine

// Command is a user control routed into the animator loop
type Command uint8

const (
	CmdNone Command = iota
	CmdStart
	CmdReset
	CmdToggleAutoRepeat
)

// String returns the command name
func (c Command) String() string {
	switch c {
	case CmdStart:
		return "start"
	case CmdReset:
		return "reset"
	case CmdToggleAutoRepeat:
		return "toggle-auto-repeat"
	default:
		return "none"
	}
}
