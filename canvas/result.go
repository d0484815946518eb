package canvas

import "github.com/charmbracelet/log"

// Result is the outcome of a draw call: the canvas it drew on, the
// shape it touched, and the first error hit in the chain. Every canvas
// operation is mirrored on Result, so draws chain fluently; once a
// result carries an error, further calls pass it through without
// touching the canvas or re-firing the error callback.
type Result struct {
	canvas *Canvas
	shape  Shape
	err    error
}

// Err returns the first error of the chain, if any.
func (r *Result) Err() error {
	return r.err
}

// Shape returns the profile of the last drawn object.
func (r *Result) Shape() Shape {
	return r.shape
}

// Canvas returns the canvas drawn on.
func (r *Result) Canvas() *Canvas {
	return r.canvas
}

// Discard drops the result, for canvases whose errors are already
// handled by WhenError.
func (r *Result) Discard() {}

// Log reports the chain's error at error level, if any, and discards
// the result.
func (r *Result) Log() {
	r.LogWith(log.ErrorLevel)
}

// LogWith reports the chain's error at the given level, if any, and
// discards the result.
func (r *Result) LogWith(level log.Level) {
	if r.err != nil {
		log.Log(level, "draw failed", "err", r.err)
	}
}

// profile decorations

// Colored colors the profile of the last drawn object with the given
// foreground and background, where NoColor leaves the existing value.
func (r *Result) Colored(fg, bg Color) *Result {
	if r.err != nil {
		return r
	}
	return r.shape.color(r.canvas, fg, bg)
}

// Foreground colors the profile's foreground.
func (r *Result) Foreground(fg Color) *Result {
	return r.Colored(fg, NoColor)
}

// Background colors the profile's background.
func (r *Result) Background(bg Color) *Result {
	return r.Colored(NoColor, bg)
}

// Filled fills the profile with ch.
func (r *Result) Filled(ch rune) *Result {
	if r.err != nil {
		return r
	}
	return r.shape.fill(r.canvas, ch)
}

// FillInside fills the inside of the last drawn object with ch,
// keeping the outline. The returned profile is the same as before the
// call.
func (r *Result) FillInside(ch rune) *Result {
	if r.err != nil {
		return r
	}
	return r.shape.Grow(Splat(-1)).fill(r.canvas, ch).GrowProfile(Splat(1))
}

// GrowProfile inflates the stored profile without changing the canvas,
// so later decorations cover a different area.
func (r *Result) GrowProfile(by Vec2) *Result {
	if r.err != nil {
		return r
	}
	return &Result{canvas: r.canvas, shape: r.shape.Grow(by)}
}

// ExpandProfile resizes the stored profile to the given extents without
// changing the canvas. A value of 0 keeps the current extent on that
// axis.
func (r *Result) ExpandProfile(x, y int, from GrowFrom) *Result {
	if r.err != nil {
		return r
	}
	return &Result{canvas: r.canvas, shape: r.shape.ExpandTo(x, y, from)}
}

// Inside shrinks the stored profile by one on every side, selecting the
// interior of an outlined shape.
func (r *Result) Inside() *Result {
	return r.GrowProfile(Splat(-1))
}

// Drawer draws into a window covering part of a profile. For a grid the
// window is one cell and cell is its grid coordinate; otherwise cell is
// always (0, 0).
type Drawer func(c *Canvas, cell Vec2) error

// DrawInside runs the drawer on the inside of the last drawn object.
// For a grid, the drawer runs once per cell with a window of exactly
// the cell interior. The returned profile is the same as before the
// call.
func (r *Result) DrawInside(drawer Drawer) *Result {
	if r.err != nil {
		return r
	}
	return r.shape.Grow(Splat(-1)).draw(r.canvas, drawer).GrowProfile(Splat(1))
}

// shape dispatch

func (s Shape) color(c *Canvas, fg, bg Color) *Result {
	switch s.Kind {
	case SingleShape:
		return c.Highlight(s.Pos, fg, bg)
	case RectShape:
		return c.HighlightBox(s.Pos, s.Size, fg, bg)
	default:
		if err := CheckBounds(s.Pos, s.FullSize(), c.size, "grid"); err != nil {
			return c.fail(err)
		}
		for cell := range s.cells() {
			if res := c.HighlightBox(s.cellPos(cell), s.CellSize, fg, bg); res.err != nil {
				return res
			}
		}
		return &Result{canvas: c, shape: s}
	}
}

func (s Shape) fill(c *Canvas, ch rune) *Result {
	switch s.Kind {
	case SingleShape:
		return c.Set(s.Pos, ch)
	case RectShape:
		return c.FillBox(s.Pos, s.Size, ch)
	default:
		if err := CheckBounds(s.Pos, s.FullSize(), c.size, "grid"); err != nil {
			return c.fail(err)
		}
		for cell := range s.cells() {
			if res := c.FillBox(s.cellPos(cell), s.CellSize, ch); res.err != nil {
				return res
			}
		}
		return &Result{canvas: c, shape: s}
	}
}

func (s Shape) draw(c *Canvas, drawer Drawer) *Result {
	switch s.Kind {
	case SingleShape, RectShape:
		size := s.FullSize()
		win, err := c.WindowAbsolute(s.Pos, size)
		if err != nil {
			return &Result{canvas: c, err: err}
		}
		if err := drawer(win, Zero); err != nil {
			return &Result{canvas: c, err: err}
		}
		return &Result{canvas: c, shape: s}
	default:
		for cell := range s.cells() {
			win, err := c.WindowAbsolute(s.cellPos(cell), s.CellSize)
			if err != nil {
				return &Result{canvas: c, err: err}
			}
			if err := drawer(win, cell); err != nil {
				return &Result{canvas: c, err: err}
			}
		}
		return &Result{canvas: c, shape: s}
	}
}

// cellPos returns the top-left corner of a grid cell.
func (s Shape) cellPos(cell Vec2) Vec2 {
	return s.Pos.Add(cell.Mul(s.CellSize.Add(s.Spacing))).Add(s.Spacing)
}

// cells iterates grid coordinates column-major, x varying slowest.
func (s Shape) cells() func(yield func(Vec2) bool) {
	return func(yield func(Vec2) bool) {
		for x := 0; x < s.Dims.X; x++ {
			for y := 0; y < s.Dims.Y; y++ {
				if !yield(Vec2{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// chained canvas operations

// Set writes ch at pos, skipped if the chain already failed.
func (r *Result) Set(pos Vec2, ch rune) *Result {
	if r.err != nil {
		return r
	}
	return r.canvas.Set(pos, ch)
}

// Highlight colors pos, skipped if the chain already failed.
func (r *Result) Highlight(pos Vec2, fg, bg Color) *Result {
	if r.err != nil {
		return r
	}
	return r.canvas.Highlight(pos, fg, bg)
}

// Fill fills the whole canvas, skipped if the chain already failed.
func (r *Result) Fill(ch rune) *Result {
	if r.err != nil {
		return r
	}
	return r.canvas.Fill(ch)
}

// FillBox fills a box, skipped if the chain already failed.
func (r *Result) FillBox(pos, size Vec2, ch rune) *Result {
	if r.err != nil {
		return r
	}
	return r.canvas.FillBox(pos, size, ch)
}

// HighlightBox colors a box, skipped if the chain already failed.
func (r *Result) HighlightBox(pos, size Vec2, fg, bg Color) *Result {
	if r.err != nil {
		return r
	}
	return r.canvas.HighlightBox(pos, size, fg, bg)
}

// Text writes justified text, skipped if the chain already failed.
func (r *Result) Text(j Just, s string) *Result {
	if r.err != nil {
		return r
	}
	return r.canvas.Text(j, s)
}

// TextAbsolute writes text at pos, skipped if the chain already failed.
func (r *Result) TextAbsolute(pos Vec2, s string) *Result {
	if r.err != nil {
		return r
	}
	return r.canvas.TextAbsolute(pos, s)
}

// Rect draws a justified box outline, skipped if the chain already
// failed.
func (r *Result) Rect(j Just, size Vec2, chars Chars) *Result {
	if r.err != nil {
		return r
	}
	return r.canvas.Rect(j, size, chars)
}

// RectAbsolute draws a box outline at pos, skipped if the chain already
// failed.
func (r *Result) RectAbsolute(pos, size Vec2, chars Chars) *Result {
	if r.err != nil {
		return r
	}
	return r.canvas.RectAbsolute(pos, size, chars)
}

// Grid draws a justified grid, skipped if the chain already failed.
func (r *Result) Grid(j Just, cellSize, dims Vec2, chars Chars) *Result {
	if r.err != nil {
		return r
	}
	return r.canvas.Grid(j, cellSize, dims, chars)
}

// GridAbsolute draws a grid at pos, skipped if the chain already failed.
func (r *Result) GridAbsolute(pos, cellSize, dims Vec2, chars Chars) *Result {
	if r.err != nil {
		return r
	}
	return r.canvas.GridAbsolute(pos, cellSize, dims, chars)
}

// Draw renders a widget, skipped if the chain already failed.
func (r *Result) Draw(j Just, w Widget) *Result {
	if r.err != nil {
		return r
	}
	return r.canvas.Draw(j, w)
}

// Get reads a cell, or returns the chain's error.
func (r *Result) Get(pos Vec2) (Cell, error) {
	if r.err != nil {
		return Cell{}, r.err
	}
	return r.canvas.Get(pos)
}
