package canvas

// Widget is a self-contained drawable. Canvas.Draw asks it for its size
// within the container, resolves a position, and hands it a window of
// exactly that size to draw into.
//
// Size may fail when the widget cannot fit or is misconfigured; the
// error is routed through the canvas error chain like any draw failure.
type Widget interface {
	Name() string
	Size(container Vec2) (Vec2, error)
	Draw(c *Canvas) error
}
