package renderers

import "github.com/lixenwraith/finality-race/render"

// RegisterAll installs the standard pipeline on o
func RegisterAll(o *render.Orchestrator) {
	o.Register(NewHeaderRenderer(), render.PriorityHeader)
	o.Register(NewControlsRenderer(), render.PriorityControls)
	o.Register(NewLanesRenderer(), render.PriorityLanes)
	o.Register(NewSummaryRenderer(), render.PrioritySummary)
	o.Register(NewStatusBarRenderer(), render.PriorityUI)
}
