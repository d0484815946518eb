// Package widgets provides drawable objects too involved to live on
// Canvas itself, such as buttons, titles, and selection lists. Draw one
// with Canvas.Draw.
//
// The plain constructors take explicit colors; Themed and Selectable
// pull colors from a themes.Theme, the latter varying them with the
// current selection.
package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/canvas/canvas"
)

// highlightedText is a one-row label padded by one highlighted cell on
// each side. Several widgets reduce to it.
type highlightedText struct {
	text string
	fg   canvas.Color
	bg   canvas.Color
}

// HighlightedText is a one-row label with a one-cell highlight pad on
// each side.
//
//	·······
//	·-foo-· (highlight represented by -)
//	·······
func HighlightedText(text string, fg, bg canvas.Color) canvas.Widget {
	return highlightedText{text: text, fg: fg, bg: bg}
}

// Title is a page or section title, styled as HighlightedText.
func Title(text string, fg, bg canvas.Color) canvas.Widget {
	return highlightedText{text: text, fg: fg, bg: bg}
}

// Toggle is a toggleable button, the label followed by a check or
// cross mark.
//
//	·········
//	·-foo-✕-· (highlight represented by -)
//	·········
func Toggle(text string, activated bool, fg, bg canvas.Color) canvas.Widget {
	mark := "✕"
	if activated {
		mark = "✓"
	}
	return highlightedText{text: text + " " + mark, fg: fg, bg: bg}
}

func (w highlightedText) Name() string { return "highlighted_text" }

func (w highlightedText) Size(_ canvas.Vec2) (canvas.Vec2, error) {
	return canvas.Vec2{X: runewidth.StringWidth(w.text) + 2, Y: 1}, nil
}

func (w highlightedText) Draw(c *canvas.Canvas) error {
	return c.Text(canvas.Centered, w.text).
		GrowProfile(canvas.Vec2{X: 1}).
		Colored(w.fg, w.bg).
		Err()
}

// truncate fits s into max cells, marking the cut with an ellipsis.
// When fromEnd is set the start of the string is cut instead, keeping
// the tail visible. A max of 0 means unbounded.
func truncate(s string, max int, fromEnd bool) string {
	if max <= 0 || runewidth.StringWidth(s) <= max {
		return s
	}
	if fromEnd {
		cut := runewidth.StringWidth(s) - max + 1
		return "…" + runewidth.TruncateLeft(s, cut, "")
	}
	return runewidth.Truncate(s, max, "…")
}

// titledTextBounds sizes a TitledText: the widest row plus a one-cell
// pad on each side, capped at maxWidth when set.
func titledTextBounds(title string, lines []string, maxWidth int) canvas.Vec2 {
	width := runewidth.StringWidth(title)
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}
	width += 2
	if maxWidth > 0 && width > maxWidth {
		width = maxWidth
	}
	return canvas.Vec2{X: width, Y: len(lines) + 1}
}

// rowStyle resolves the colors and truncation direction of one text
// row of a TitledText.
type rowStyle func(row int) (fg, bg canvas.Color, fromEnd bool)

// TitledText is a title with rows of text underneath. The width
// adjusts to the widest row, or MaxWidth if it is hit.
//
//	···············
//	··---Theme---··
//	··   Latte   ··
//	··  Frappe   ··
//	·· Macchiato ··
//	··   Mocha   ··
//	···············
type TitledText struct {
	title    string
	lines    []string
	maxWidth int

	titleFg canvas.Color
	titleBg canvas.Color
	rows    rowStyle
}

// MaxWidth caps the widget's width, truncating rows that exceed it.
func (t *TitledText) MaxWidth(w int) *TitledText {
	t.maxWidth = w
	return t
}

func (t *TitledText) Name() string { return "titled_text" }

func (t *TitledText) Size(_ canvas.Vec2) (canvas.Vec2, error) {
	return titledTextBounds(t.title, t.lines, t.maxWidth), nil
}

func (t *TitledText) Draw(c *canvas.Canvas) error {
	width := c.Size().X
	// keep a one-cell pad when truncating
	maxw := 0
	if t.maxWidth > 0 {
		maxw = t.maxWidth - 2
	}

	if err := c.Fill(' ').Err(); err != nil {
		return err
	}

	title := truncate(t.title, maxw, false)
	err := c.Text(canvas.CenteredOnRow(0), title).
		ExpandProfile(width, 0, canvas.GrowCenterPreferRight).
		Colored(t.titleFg, t.titleBg).
		Err()
	if err != nil {
		return err
	}

	for i, line := range t.lines {
		fg, bg, fromEnd := t.rows(i)
		text := truncate(line, maxw, fromEnd)
		err := c.Text(canvas.CenteredOnRow(i+1), text).
			ExpandProfile(width, 0, canvas.GrowCenter).
			Colored(fg, bg).
			Err()
		if err != nil {
			return err
		}
	}
	return nil
}

// RollingSelection is a value picker with arrows on each side.
//
//	···········
//	· ← foo → ·
//	···········
type RollingSelection struct {
	text  string
	width int
	fg    canvas.Color
	bg    canvas.Color

	atStart         bool
	atEnd           bool
	truncateFromEnd bool
}

// NewRollingSelection creates a rolling selection showing text. A
// width of 0 sizes to the text; otherwise the widget is capped at
// width cells.
func NewRollingSelection(text string, width int, fg, bg canvas.Color) *RollingSelection {
	return &RollingSelection{text: text, width: width, fg: fg, bg: bg}
}

// AtStart hides the left arrow, marking the first value.
func (r *RollingSelection) AtStart(v bool) *RollingSelection {
	r.atStart = v
	return r
}

// AtEnd hides the right arrow, marking the last value.
func (r *RollingSelection) AtEnd(v bool) *RollingSelection {
	r.atEnd = v
	return r
}

// TruncateFromEnd keeps the tail of an overlong value visible instead
// of the head, which suits a value being edited.
func (r *RollingSelection) TruncateFromEnd(v bool) *RollingSelection {
	r.truncateFromEnd = v
	return r
}

func (r *RollingSelection) Name() string { return "rolling_selection" }

func (r *RollingSelection) Size(_ canvas.Vec2) (canvas.Vec2, error) {
	w := runewidth.StringWidth(r.text) + 6
	if r.width > 0 && w > r.width {
		w = r.width
	}
	return canvas.Vec2{X: w, Y: 1}, nil
}

func (r *RollingSelection) Draw(c *canvas.Canvas) error {
	size := c.Size()
	if err := c.Fill(' ').Colored(r.fg, r.bg).Err(); err != nil {
		return err
	}
	if !r.atStart {
		if err := c.Set(canvas.Vec2{X: 1}, '←').Err(); err != nil {
			return err
		}
	}
	if !r.atEnd {
		if err := c.Set(canvas.Vec2{X: size.X - 2}, '→').Err(); err != nil {
			return err
		}
	}
	text := truncate(r.text, size.X-6, r.truncateFromEnd)
	return c.Text(canvas.Centered, text).Err()
}
