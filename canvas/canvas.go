package canvas

import (
	"strings"
	"unicode/utf8"
)

// maxCells caps the backing allocation of a single canvas.
const maxCells = 1 << 24

// Cell is the read-out of one grid position. Cells are produced by Get;
// the backing store keeps three parallel grids instead.
type Cell struct {
	Text       rune
	Foreground Color
	Background Color
}

// buffer is the backing store shared by a canvas and all its windows.
type buffer struct {
	dims Vec2
	text []rune
	fg   []Color
	bg   []Color
}

// Canvas is a view onto a character+color grid. A canvas created by New
// owns the whole grid; Window returns a bounds-limited view translating
// every coordinate by its offset; WhenError wraps a view with a
// recovery callback. All three are the same node type, so draw
// operations compose uniformly.
//
// A window borrows its backing canvas: the caller must not interleave
// mutation through two views of the same buffer.
type Canvas struct {
	buf    *buffer
	offset Vec2
	size   Vec2
	parent *Canvas
	// onError marks a catcher node; invoked at most once per thrown
	// error, receiving the wrapped canvas.
	onError func(*Canvas, error) error
}

// New creates a canvas filled with spaces and no colors.
func New(size Vec2) (*Canvas, error) {
	return Filled(size, ' ', NoColor, NoColor)
}

// Filled creates a canvas with every cell set to the given character
// and colors.
func Filled(size Vec2, ch rune, fg, bg Color) (*Canvas, error) {
	if size.X < 0 {
		return nil, &NegativeValueError{Value: size.X, Name: "width"}
	}
	if size.Y < 0 {
		return nil, &NegativeValueError{Value: size.Y, Name: "height"}
	}
	area := size.X * size.Y
	if area > maxCells {
		return nil, &TooLargeError{Field: "area", Value: area}
	}

	buf := &buffer{
		dims: size,
		text: make([]rune, area),
		fg:   make([]Color, area),
		bg:   make([]Color, area),
	}
	for i := range buf.text {
		buf.text[i] = ch
		buf.fg[i] = fg
		buf.bg[i] = bg
	}
	return &Canvas{buf: buf, size: size}, nil
}

// MustNew is New panicking on error, for fixed-size construction.
func MustNew(size Vec2) *Canvas {
	c, err := New(size)
	if err != nil {
		panic("canvas: " + err.Error())
	}
	return c
}

// Size returns the view dimensions.
func (c *Canvas) Size() Vec2 {
	return c.size
}

// WhenError attaches a recovery callback invoked once, synchronously,
// when an error is first thrown on this canvas or any window derived
// from it. The callback receives the wrapped canvas and may draw a
// fallback; the catcher itself keeps accepting chained calls. A
// callback that fails is an unrecoverable invariant violation and
// panics rather than recursing.
func (c *Canvas) WhenError(callback func(*Canvas, error) error) *Canvas {
	return &Canvas{buf: c.buf, offset: c.offset, size: c.size, parent: c, onError: callback}
}

// throw routes an error to the innermost catcher, if any.
func (c *Canvas) throw(err error) {
	for n := c; n != nil; n = n.parent {
		if n.onError != nil {
			if cbErr := n.onError(n.parent, err); cbErr != nil {
				panic("canvas: recovery callback failed: " + cbErr.Error())
			}
			return
		}
	}
}

// fail throws err and returns it wrapped as a chainable result.
func (c *Canvas) fail(err error) *Result {
	c.throw(err)
	return &Result{canvas: c, err: err}
}

// put writes a rune at a view-relative position, bounds-checked against
// the backing store.
func (c *Canvas) put(pos Vec2, ch rune) error {
	abs := pos.Add(c.offset)
	if uint(abs.X) >= uint(c.buf.dims.X) || uint(abs.Y) >= uint(c.buf.dims.Y) {
		return &OutOfBoundsError{X: abs.X, Y: abs.Y}
	}
	c.buf.text[abs.Y*c.buf.dims.X+abs.X] = ch
	return nil
}

// paint writes colors at a view-relative position; invalid colors leave
// the existing value.
func (c *Canvas) paint(pos Vec2, fg, bg Color) error {
	abs := pos.Add(c.offset)
	if uint(abs.X) >= uint(c.buf.dims.X) || uint(abs.Y) >= uint(c.buf.dims.Y) {
		return &OutOfBoundsError{X: abs.X, Y: abs.Y}
	}
	i := abs.Y*c.buf.dims.X + abs.X
	if fg.Valid() {
		c.buf.fg[i] = fg
	}
	if bg.Valid() {
		c.buf.bg[i] = bg
	}
	return nil
}

// Set writes ch at pos.
func (c *Canvas) Set(pos Vec2, ch rune) *Result {
	if err := c.put(pos, ch); err != nil {
		return c.fail(err)
	}
	return &Result{canvas: c, shape: single(pos)}
}

// Highlight colors pos with the given foreground and background, where
// NoColor leaves the existing value.
func (c *Canvas) Highlight(pos Vec2, fg, bg Color) *Result {
	if err := c.paint(pos, fg, bg); err != nil {
		return c.fail(err)
	}
	return &Result{canvas: c, shape: single(pos)}
}

// Get returns the cell at pos.
func (c *Canvas) Get(pos Vec2) (Cell, error) {
	abs := pos.Add(c.offset)
	if uint(abs.X) >= uint(c.buf.dims.X) || uint(abs.Y) >= uint(c.buf.dims.Y) {
		return Cell{}, &OutOfBoundsError{X: abs.X, Y: abs.Y}
	}
	i := abs.Y*c.buf.dims.X + abs.X
	return Cell{Text: c.buf.text[i], Foreground: c.buf.fg[i], Background: c.buf.bg[i]}, nil
}

// WindowAbsolute creates a window of the given size at pos. The window
// must fit inside this view at creation time.
func (c *Canvas) WindowAbsolute(pos, size Vec2) (*Canvas, error) {
	if pos.X < 0 || pos.Y < 0 {
		err := &OutOfBoundsError{X: pos.X, Y: pos.Y}
		c.throw(err)
		return nil, err
	}
	if size.X < 0 || size.Y < 0 {
		err := &NegativeValueError{Value: min(size.X, size.Y), Name: "window size"}
		c.throw(err)
		return nil, err
	}
	if err := CheckBounds(pos, size, c.size, "window"); err != nil {
		c.throw(err)
		return nil, err
	}
	return &Canvas{buf: c.buf, offset: c.offset.Add(pos), size: size, parent: c}, nil
}

// Window creates a window of the given size at a position determined by
// the justification.
func (c *Canvas) Window(j Just, size Vec2) (*Canvas, error) {
	pos, err := j.Resolve(c.size, size)
	if err != nil {
		c.throw(err)
		return nil, err
	}
	return c.WindowAbsolute(pos, size)
}

// Fill sets every cell of the view to ch.
func (c *Canvas) Fill(ch rune) *Result {
	for y := 0; y < c.size.Y; y++ {
		for x := 0; x < c.size.X; x++ {
			if err := c.put(Vec2{X: x, Y: y}, ch); err != nil {
				return c.fail(err)
			}
		}
	}
	return &Result{canvas: c, shape: rect(Zero, c.size)}
}

// FillBox sets a box of cells starting at pos extending for size.
func (c *Canvas) FillBox(pos, size Vec2, ch rune) *Result {
	if err := CheckBounds(pos, size, c.size, "fill"); err != nil {
		return c.fail(err)
	}
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			if err := c.put(pos.Add(Vec2{X: x, Y: y}), ch); err != nil {
				return c.fail(err)
			}
		}
	}
	return &Result{canvas: c, shape: rect(pos, size)}
}

// HighlightBox colors a box of cells starting at pos extending for size.
func (c *Canvas) HighlightBox(pos, size Vec2, fg, bg Color) *Result {
	if err := CheckBounds(pos, size, c.size, "highlight"); err != nil {
		return c.fail(err)
	}
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			if err := c.paint(pos.Add(Vec2{X: x, Y: y}), fg, bg); err != nil {
				return c.fail(err)
			}
		}
	}
	return &Result{canvas: c, shape: rect(pos, size)}
}

// Text writes a string at a justification-resolved position, one cell
// per rune.
func (c *Canvas) Text(j Just, s string) *Result {
	size := Vec2{X: utf8.RuneCountInString(s), Y: 1}
	pos, err := j.Resolve(c.size, size)
	if err != nil {
		return c.fail(err)
	}
	return c.TextAbsolute(pos, s)
}

// TextAbsolute writes a string at pos, one cell per rune. Each
// character is bounds-checked; the error reports the position of the
// first offending character.
func (c *Canvas) TextAbsolute(pos Vec2, s string) *Result {
	col := 0
	for _, ch := range s {
		p := pos.AddX(col)
		if err := c.put(p, ch); err != nil {
			return c.fail(&TextOverflowError{Starting: pos, Text: s, Ending: p, Container: c.size})
		}
		col++
	}
	return &Result{canvas: c, shape: rect(pos, Vec2{X: col, Y: 1})}
}

// Rect draws a box outline at a justification-resolved position.
func (c *Canvas) Rect(j Just, size Vec2, chars Chars) *Result {
	pos, err := j.Resolve(c.size, size)
	if err != nil {
		return c.fail(err)
	}
	return c.RectAbsolute(pos, size, chars)
}

// RectAbsolute draws a box outline at pos extending for size.
func (c *Canvas) RectAbsolute(pos, size Vec2, chars Chars) *Result {
	if err := CheckBounds(pos, size, c.size, "rect"); err != nil {
		return c.fail(err)
	}

	right := size.X - 1
	bottom := size.Y - 1

	for x := 1; x < right; x++ {
		if err := c.put(pos.Add(Vec2{X: x}), chars.Horizontal()); err != nil {
			return c.fail(err)
		}
		if err := c.put(pos.Add(Vec2{X: x, Y: bottom}), chars.Horizontal()); err != nil {
			return c.fail(err)
		}
	}
	for y := 1; y < bottom; y++ {
		if err := c.put(pos.Add(Vec2{Y: y}), chars.Vertical()); err != nil {
			return c.fail(err)
		}
		if err := c.put(pos.Add(Vec2{X: right, Y: y}), chars.Vertical()); err != nil {
			return c.fail(err)
		}
	}

	// corners, masked up-down-left-right
	corners := [4]struct {
		at   Vec2
		mask uint8
	}{
		{Vec2{}, 0b0101},
		{Vec2{X: right}, 0b0110},
		{Vec2{Y: bottom}, 0b1001},
		{Vec2{X: right, Y: bottom}, 0b1010},
	}
	for _, corner := range corners {
		if err := c.put(pos.Add(corner.at), chars[corner.mask]); err != nil {
			return c.fail(err)
		}
	}

	return &Result{canvas: c, shape: rect(pos, size)}
}

func fullGridSize(cellSize, dims Vec2) Vec2 {
	return cellSize.AddScalar(1).Mul(dims).AddScalar(1)
}

// Grid draws an NxM bordered grid at a justification-resolved position.
func (c *Canvas) Grid(j Just, cellSize, dims Vec2, chars Chars) *Result {
	pos, err := j.Resolve(c.size, fullGridSize(cellSize, dims))
	if err != nil {
		return c.fail(err)
	}
	return c.GridAbsolute(pos, cellSize, dims, chars)
}

// GridAbsolute draws an NxM grid of cells of cellSize at pos, with
// one-cell separator lines between and around the cells.
//
// The returned profile spans from just inside the outer border to the
// opposite inside border, with per-cell size cellSize+2 and spacing -1:
// adjacent cells share their one-cell border, so the uniform per-cell
// color and fill math needs no special case for bordered grids.
func (c *Canvas) GridAbsolute(pos, cellSize, dims Vec2, chars Chars) *Result {
	full := fullGridSize(cellSize, dims)
	if err := CheckBounds(pos, full, c.size, "grid"); err != nil {
		return c.fail(err)
	}

	right := full.X - 1
	bottom := full.Y - 1

	if res := c.RectAbsolute(pos, full, chars); res.err != nil {
		return res
	}

	// internal row boundaries
	for row := 1; row < dims.Y; row++ {
		y := row * (cellSize.Y + 1)
		if err := c.put(pos.Add(Vec2{Y: y}), chars[0b1101]); err != nil {
			return c.fail(err)
		}
		if err := c.put(pos.Add(Vec2{X: right, Y: y}), chars[0b1110]); err != nil {
			return c.fail(err)
		}
		for x := 1; x < right; x++ {
			if err := c.put(pos.Add(Vec2{X: x, Y: y}), chars.Horizontal()); err != nil {
				return c.fail(err)
			}
		}
	}

	// internal column boundaries
	for col := 1; col < dims.X; col++ {
		x := col * (cellSize.X + 1)
		if err := c.put(pos.Add(Vec2{X: x}), chars[0b0111]); err != nil {
			return c.fail(err)
		}
		if err := c.put(pos.Add(Vec2{X: x, Y: bottom}), chars[0b1011]); err != nil {
			return c.fail(err)
		}
		for y := 1; y < bottom; y++ {
			if err := c.put(pos.Add(Vec2{X: x, Y: y}), chars.Vertical()); err != nil {
				return c.fail(err)
			}
		}
	}

	// 4-way junctions at every internal intersection
	for col := 0; col < dims.X-1; col++ {
		for row := 0; row < dims.Y-1; row++ {
			at := Vec2{X: col + 1, Y: row + 1}.Mul(cellSize.AddScalar(1))
			if err := c.put(pos.Add(at), chars[0b1111]); err != nil {
				return c.fail(err)
			}
		}
	}

	return &Result{canvas: c, shape: grid(pos.AddScalar(1), dims, cellSize.AddScalar(2), Splat(-1))}
}

// Draw renders a widget at a justification-resolved position. The
// window handed to the widget is exactly the size it reported.
//
// Errors from the widget itself are returned without firing the error
// callback; canvas operations inside the widget throw on their own.
func (c *Canvas) Draw(j Just, w Widget) *Result {
	size, err := w.Size(c.size)
	if err != nil {
		return &Result{canvas: c, err: err}
	}
	pos, err := j.Resolve(c.size, size)
	if err != nil {
		return &Result{canvas: c, err: err}
	}
	if err := CheckBounds(pos, size, c.size, w.Name()); err != nil {
		return c.fail(err)
	}
	win, err := c.WindowAbsolute(pos, size)
	if err != nil {
		return &Result{canvas: c, err: err}
	}
	if err := w.Draw(win); err != nil {
		return &Result{canvas: c, err: err}
	}
	return &Result{canvas: c, shape: rect(pos, size)}
}

// String renders the view's characters without color, one line per row.
func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow((c.size.X + 1) * c.size.Y)
	for y := 0; y < c.size.Y; y++ {
		for x := 0; x < c.size.X; x++ {
			cell, err := c.Get(Vec2{X: x, Y: y})
			if err != nil {
				b.WriteRune('?')
				continue
			}
			b.WriteRune(cell.Text)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
