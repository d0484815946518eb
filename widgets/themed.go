package widgets

import (
	"github.com/lixenwraith/canvas/canvas"
	"github.com/lixenwraith/canvas/themes"
)

// Themed builds widgets in the same style as the plain constructors,
// with colors taken from the theme.
type Themed struct {
	Theme themes.Theme
}

// NewThemed wraps a theme for widget construction.
func NewThemed(theme themes.Theme) Themed {
	return Themed{Theme: theme}
}

// Title is a page or section title.
func (t Themed) Title(text string) canvas.Widget {
	return Title(text, t.Theme.TitleFg(), t.Theme.TitleBg())
}

// Button is a simple button.
func (t Themed) Button(text string) canvas.Widget {
	return HighlightedText(text, t.Theme.ButtonFg(), t.Theme.ButtonBg())
}

// Toggle is a toggleable button.
func (t Themed) Toggle(text string, activated bool) canvas.Widget {
	return Toggle(text, activated, t.Theme.ButtonFg(), t.Theme.ButtonBg())
}

// TitledText is a title with rows of text underneath.
func (t Themed) TitledText(title string, lines []string) *TitledText {
	theme := t.Theme
	return &TitledText{
		title:   title,
		lines:   lines,
		titleFg: theme.TitledTextTitleFg(),
		titleBg: theme.TitledTextTitleBg(),
		rows: func(int) (canvas.Color, canvas.Color, bool) {
			return theme.TitledTextTextFg(), theme.TitledTextTextBg(), false
		},
	}
}

// RollingSelection is a value picker with arrows on each side.
func (t Themed) RollingSelection(text string, width int) *RollingSelection {
	return NewRollingSelection(text, width, t.Theme.RollingSelectionFg(), t.Theme.RollingSelectionBg())
}
