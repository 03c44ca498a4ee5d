package render

// SystemRenderer draws one layer of the frame
type SystemRenderer interface {
	Render(ctx Context, c *Canvas)
}
