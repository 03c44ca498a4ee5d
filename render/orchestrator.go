package render

import "github.com/gdamore/tcell/v2"

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	screen    tcell.Screen
	canvas    *Canvas
	renderers []rendererEntry
	regCount  int
}

// NewOrchestrator creates an orchestrator sized to the screen
func NewOrchestrator(screen tcell.Screen) *Orchestrator {
	w, h := screen.Size()
	return &Orchestrator{
		screen:    screen,
		canvas:    NewCanvas(screen, w, h),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize re-reads screen dimensions and forces a full redraw
func (o *Orchestrator) Resize() {
	w, h := o.screen.Size()
	o.canvas = NewCanvas(o.screen, w, h)
	o.screen.Sync()
}

// Size returns the current canvas dimensions
func (o *Orchestrator) Size() (int, int) {
	return o.canvas.Width(), o.canvas.Height()
}

// RenderFrame executes the pipeline: clear, render all, show
func (o *Orchestrator) RenderFrame(ctx Context) {
	ctx.Width, ctx.Height = o.canvas.Width(), o.canvas.Height()

	o.screen.SetStyle(StyleDefault)
	o.screen.Clear()

	for _, entry := range o.renderers {
		entry.renderer.Render(ctx, o.canvas)
	}

	o.screen.Show()
}
