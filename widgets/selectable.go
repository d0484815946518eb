package widgets

import (
	"github.com/lixenwraith/canvas/canvas"
	"github.com/lixenwraith/canvas/themes"
)

// Selection is the state of one selectable widget.
type Selection uint8

const (
	Deselected Selection = iota
	Selected
	Activated
)

// Selectable builds widgets whose colors follow the current selection.
// Each widget is created with a selector value; the one equal to
// Selection draws hovered, or activated when Activated is set.
type Selectable[V comparable] struct {
	Theme     themes.Theme
	Selection V
	Activated bool
}

// NewSelectable wraps a theme with the current selection state.
func NewSelectable[V comparable](theme themes.Theme, selection V, activated bool) *Selectable[V] {
	return &Selectable[V]{Theme: theme, Selection: selection, Activated: activated}
}

// State returns the selection state of the widget keyed by v.
func (s *Selectable[V]) State(v V) Selection {
	if v != s.Selection {
		return Deselected
	}
	if s.Activated {
		return Activated
	}
	return Selected
}

// IsActivated reports whether the widget keyed by v is activated.
func (s *Selectable[V]) IsActivated(v V) bool {
	return s.State(v) == Activated
}

func pick(state Selection, base, hover, activated canvas.Color) canvas.Color {
	switch state {
	case Selected:
		return hover
	case Activated:
		return activated
	default:
		return base
	}
}

func (s *Selectable[V]) buttonFg(v V) canvas.Color {
	t := s.Theme
	return pick(s.State(v), t.ButtonFg(), t.ButtonFgHover(), t.ButtonFgActivated())
}

func (s *Selectable[V]) buttonBg(v V) canvas.Color {
	t := s.Theme
	return pick(s.State(v), t.ButtonBg(), t.ButtonBgHover(), t.ButtonBgActivated())
}

func (s *Selectable[V]) titledTextTextFg(v V) canvas.Color {
	t := s.Theme
	return pick(s.State(v), t.TitledTextTextFg(), t.TitledTextTextFgHover(), t.TitledTextTextFgActivated())
}

func (s *Selectable[V]) titledTextTextBg(v V) canvas.Color {
	t := s.Theme
	return pick(s.State(v), t.TitledTextTextBg(), t.TitledTextTextBgHover(), t.TitledTextTextBgActivated())
}

func (s *Selectable[V]) rollingSelectionFg(v V) canvas.Color {
	t := s.Theme
	return pick(s.State(v), t.RollingSelectionFg(), t.RollingSelectionFgHover(), t.RollingSelectionFgActivated())
}

func (s *Selectable[V]) rollingSelectionBg(v V) canvas.Color {
	t := s.Theme
	return pick(s.State(v), t.RollingSelectionBg(), t.RollingSelectionBgHover(), t.RollingSelectionBgActivated())
}

// Title is a page or section title; titles do not react to selection.
func (s *Selectable[V]) Title(text string) canvas.Widget {
	return Title(text, s.Theme.TitleFg(), s.Theme.TitleBg())
}

// Button is a selectable button keyed by v.
func (s *Selectable[V]) Button(v V, text string) canvas.Widget {
	return HighlightedText(text, s.buttonFg(v), s.buttonBg(v))
}

// Toggle is a selectable toggleable button keyed by v.
func (s *Selectable[V]) Toggle(v V, text string, activated bool) canvas.Widget {
	return Toggle(text, activated, s.buttonFg(v), s.buttonBg(v))
}

// TitledText is a title with selectable rows of text underneath. Each
// row is keyed by the selector at the same index; rows past the end of
// selections never select.
func (s *Selectable[V]) TitledText(selections []V, title string, lines []string) *TitledText {
	return &TitledText{
		title:   title,
		lines:   lines,
		titleFg: s.Theme.TitledTextTitleFg(),
		titleBg: s.Theme.TitledTextTitleBg(),
		rows: func(row int) (canvas.Color, canvas.Color, bool) {
			if row >= len(selections) {
				return s.Theme.TitledTextTextFg(), s.Theme.TitledTextTextBg(), false
			}
			v := selections[row]
			return s.titledTextTextFg(v), s.titledTextTextBg(v), s.IsActivated(v)
		},
	}
}

// RollingSelection is a value picker keyed by v. An activated picker
// truncates its value from the end, keeping the edited tail visible.
func (s *Selectable[V]) RollingSelection(v V, text string, width int) *RollingSelection {
	return NewRollingSelection(text, width, s.rollingSelectionFg(v), s.rollingSelectionBg(v)).
		TruncateFromEnd(s.IsActivated(v))
}

// HighlightedRollingSelection is RollingSelection drawn on an accent
// background regardless of selection.
func (s *Selectable[V]) HighlightedRollingSelection(v V, text string, width int, accent canvas.Color) *RollingSelection {
	return NewRollingSelection(text, width, s.Theme.HighlightFg(), accent).
		TruncateFromEnd(s.IsActivated(v))
}
