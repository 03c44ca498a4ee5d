package parameter

// Layout & Margins
const (
	// LeftMargin and RightMargin pad the race track inside the screen
	LeftMargin  = 2
	RightMargin = 2

	// TopMargin leaves room for the title and control bar
	TopMargin = 1

	// LaneHeight is rows per lane: header (name, medal, label) and track
	LaneHeight = 3

	// NameColumnWidth is the fixed width reserved for chain names
	NameColumnWidth = 26

	// MinTrackWidth below which bars are not drawn
	MinTrackWidth = 10

	// BadgeColumnWidth is reserved right of the finish line for "#rank • Nms"
	BadgeColumnWidth = 14

	// ControlGap separates buttons in the control bar
	ControlGap = 2

	// SummaryCompareCount is how many of the slowest chains the winner is compared against
	SummaryCompareCount = 2
)

// Text
const (
	TitleText    = "Blockchain Finality Race"
	SubtitleText = "Watch transactions reach instant finality. First to finish = fastest settlement."
	LiveBadge    = " ⚡ LIVE DEMO "

	ControlAutoOff   = "[a] Enable Auto-Repeat"
	ControlAutoOn    = "[a] 🔄 Auto-Repeat ON"
	ControlStartIdle = "[s] Start Once"
	ControlStartBusy = "[s] Racing..."
	ControlReset     = "[r] Reset"
	ControlQuit      = "[q] Quit"

	FooterText = "Finality is when a transaction becomes irreversible and permanently settled on the chain."

	StateIdle     = "IDLE"
	StateRunning  = "RACING"
	StateComplete = "FINISHED"
	StateCooldown = "NEXT RACE IN"

	// AudioStr marks the status line when chimes are enabled
	AudioStr = "♫ "
)

// Glyphs
const (
	TrackFull   = '█'
	TrackHalf   = '▌'
	TrackEmpty  = '░'
	FinishLine  = '┃'
	TxMarker    = '▶'
	BadgeSep    = " • "
	MedalFirst  = "🏆"
	MedalSecond = "🥈"
	MedalThird  = "🥉"
)
