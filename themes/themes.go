// Package themes provides color themes for widgets, along with a few
// well-known palettes.
package themes

import (
	"github.com/lixenwraith/canvas/canvas"
)

// Theme is a widget color palette. The named fields are the raw
// palette; the methods derive the per-widget colors from it, honoring
// the optional Accent.
//
// Background layers from above to below: Surface2, Surface1, Surface,
// Base, Mantle, Crust.
type Theme struct {
	Base   canvas.Color
	Mantle canvas.Color
	Crust  canvas.Color

	Surface  canvas.Color
	Surface1 canvas.Color
	Surface2 canvas.Color

	Text        canvas.Color
	Subtext     canvas.Color
	SpecialText canvas.Color

	Success canvas.Color
	Warning canvas.Color
	Error   canvas.Color
	Link    canvas.Color

	// Highlights are the theme's accent colors, candidates for
	// Highlighted.
	Highlights []canvas.Color

	// Accent, when valid, replaces the surface backgrounds of titles
	// and selections. Set through Highlighted.
	Accent canvas.Color
}

// Highlighted returns a copy of the theme accented with the given
// color, usually one of Highlights.
func (t Theme) Highlighted(accent canvas.Color) Theme {
	t.Accent = accent
	return t
}

// HighlightFg contrasts against the theme's highlight colors.
func (t Theme) HighlightFg() canvas.Color { return t.Base }

// HighlightFgHover is HighlightFg for a hovered selection.
func (t Theme) HighlightFgHover() canvas.Color { return t.Mantle }

// HighlightFgActivated is HighlightFg for an activated selection.
func (t Theme) HighlightFgActivated() canvas.Color { return t.Mantle }

// TextBg is the generic background for text boxes.
func (t Theme) TextBg() canvas.Color { return t.Surface }

// HoverFg is the text color of hovered content.
func (t Theme) HoverFg() canvas.Color { return t.SpecialText }

// HoverBg is the background of hovered content.
func (t Theme) HoverBg() canvas.Color { return t.Surface1 }

func (t Theme) TitleFg() canvas.Color {
	if t.Accent.Valid() {
		return t.HighlightFg()
	}
	return t.Text
}

func (t Theme) TitleBg() canvas.Color {
	if t.Accent.Valid() {
		return t.Accent
	}
	return t.Surface
}

func (t Theme) ButtonFg() canvas.Color { return t.Subtext }
func (t Theme) ButtonBg() canvas.Color { return t.Surface }

func (t Theme) TitledTextTitleFg() canvas.Color {
	if t.Accent.Valid() {
		return t.HighlightFg()
	}
	return t.Text
}

func (t Theme) TitledTextTitleBg() canvas.Color {
	if t.Accent.Valid() {
		return t.Accent
	}
	return t.Surface2
}

func (t Theme) TitledTextTextFg() canvas.Color { return t.Text }
func (t Theme) TitledTextTextBg() canvas.Color { return t.TextBg() }

func (t Theme) RollingSelectionFg() canvas.Color {
	if t.Accent.Valid() {
		return t.HighlightFg()
	}
	return t.ButtonFg()
}

func (t Theme) RollingSelectionBg() canvas.Color {
	if t.Accent.Valid() {
		return t.Accent
	}
	return t.ButtonBg()
}

// Hovered and activated variants, keyed by widget.

func (t Theme) ButtonFgHover() canvas.Color { return t.ButtonFg() }
func (t Theme) ButtonFgActivated() canvas.Color {
	return t.Text
}
func (t Theme) ButtonBgHover() canvas.Color     { return t.HoverBg() }
func (t Theme) ButtonBgActivated() canvas.Color { return t.ButtonBgHover() }

func (t Theme) TitledTextTextFgHover() canvas.Color { return t.Text }
func (t Theme) TitledTextTextFgActivated() canvas.Color {
	if t.Accent.Valid() {
		return t.Accent
	}
	return t.HoverFg()
}
func (t Theme) TitledTextTextBgHover() canvas.Color     { return t.HoverBg() }
func (t Theme) TitledTextTextBgActivated() canvas.Color { return t.TitledTextTextBgHover() }

func (t Theme) RollingSelectionFgHover() canvas.Color {
	if t.Accent.Valid() {
		return t.HighlightFgHover()
	}
	return t.HoverFg()
}
func (t Theme) RollingSelectionFgActivated() canvas.Color {
	if t.Accent.Valid() {
		return t.HighlightFgActivated()
	}
	return t.ButtonFgHover()
}
func (t Theme) RollingSelectionBgHover() canvas.Color {
	if t.Accent.Valid() {
		return t.Accent
	}
	return t.ButtonBg()
}
func (t Theme) RollingSelectionBgActivated() canvas.Color {
	if t.Accent.Valid() {
		return t.Accent
	}
	return t.HoverBg()
}
