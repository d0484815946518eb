package terminal

import (
	"bufio"
	"io"

	"github.com/lixenwraith/canvas/canvas"
)

// Renderer writes canvas frames to a terminal as ANSI output. Within a
// frame, color sequences are emitted only when a cell's colors differ
// from the previous cell's, so runs of uniform style cost one sequence.
type Renderer struct {
	w    *bufio.Writer
	mode ColorMode

	fg    canvas.Color
	bg    canvas.Color
	dirty bool
}

// NewRenderer creates a renderer targeting w.
func NewRenderer(w io.Writer, mode ColorMode) *Renderer {
	return &Renderer{w: bufio.NewWriterSize(w, 1<<16), mode: mode}
}

// Init enters the alternate screen, hides the cursor, and disables
// auto-wrap. Pair with Close.
func (r *Renderer) Init() error {
	r.w.Write(csiAltScreenEnter)
	r.w.Write(csiCursorHide)
	r.w.Write(csiAutoWrapOff)
	r.w.Write(csiClear)
	return r.w.Flush()
}

// Close restores the terminal state set up by Init.
func (r *Renderer) Close() error {
	r.w.Write(csiReset)
	r.w.Write(csiAutoWrapOn)
	r.w.Write(csiCursorShow)
	r.w.Write(csiAltScreenExit)
	return r.w.Flush()
}

// Frame writes one full canvas to the terminal, top-left at the
// origin.
func (r *Renderer) Frame(c *canvas.Canvas) error {
	size := c.Size()
	r.w.Write(csiHome)
	r.resetStyle()

	for y := 0; y < size.Y; y++ {
		writeCursorPos(r.w, 0, y)
		for x := 0; x < size.X; x++ {
			cell, err := c.Get(canvas.Vec2{X: x, Y: y})
			if err != nil {
				return err
			}
			r.style(cell.Foreground, cell.Background)
			r.w.WriteRune(cell.Text)
		}
		// reset per row so a crash mid-frame leaves sane attributes
		r.resetStyle()
	}
	return r.w.Flush()
}

// Print writes the canvas inline, one terminal line per row, without
// cursor addressing. Suited to one-shot output on a scrolling
// terminal; no Init needed.
func (r *Renderer) Print(c *canvas.Canvas) error {
	size := c.Size()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			cell, err := c.Get(canvas.Vec2{X: x, Y: y})
			if err != nil {
				return err
			}
			r.style(cell.Foreground, cell.Background)
			r.w.WriteRune(cell.Text)
		}
		r.resetStyle()
		r.w.WriteByte('\n')
	}
	return r.w.Flush()
}

func (r *Renderer) resetStyle() {
	if r.dirty {
		r.w.Write(csiReset)
	}
	r.fg = canvas.NoColor
	r.bg = canvas.NoColor
	r.dirty = false
}

func (r *Renderer) style(fg, bg canvas.Color) {
	if r.mode == ColorModeMono {
		return
	}
	if fg != r.fg {
		r.writeColor(fg, csiFgRGB, csiFg256, csiDefaultFg)
		r.fg = fg
	}
	if bg != r.bg {
		r.writeColor(bg, csiBgRGB, csiBg256, csiDefaultBg)
		r.bg = bg
	}
}

func (r *Renderer) writeColor(c canvas.Color, rgbPrefix, palPrefix, def []byte) {
	if !c.Valid() {
		r.w.Write(def)
		return
	}
	r.dirty = true
	cr, cg, cb := c.RGB()
	if r.mode == ColorModeTrueColor {
		r.w.Write(rgbPrefix)
		writeInt(r.w, int(cr))
		r.w.WriteByte(';')
		writeInt(r.w, int(cg))
		r.w.WriteByte(';')
		writeInt(r.w, int(cb))
	} else {
		r.w.Write(palPrefix)
		writeInt(r.w, int(RGBTo256(cr, cg, cb)))
	}
	r.w.WriteByte('m')
}
