package themes

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/canvas/canvas"
)

func toColorful(c canvas.Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func fromColorful(c colorful.Color) canvas.Color {
	r, g, b := c.Clamped().RGB255()
	return canvas.RGB(r, g, b)
}

// Blend mixes a toward b by t in Lab space, which keeps perceived
// lightness even where plain RGB interpolation would drift muddy.
func Blend(a, b canvas.Color, t float64) canvas.Color {
	return fromColorful(toColorful(a).BlendLab(toColorful(b), t).Clamped())
}

// Derive builds a full theme from just a background and a text color.
// Surfaces step from the background toward the text; the below-base
// layers step toward black. Status colors take the text's lightness so
// they read at the same weight as normal text.
func Derive(base, text canvas.Color) Theme {
	black := canvas.Black
	_, _, lightness := toColorful(text).Hsl()

	status := func(hue float64) canvas.Color {
		return fromColorful(colorful.Hsl(hue, 0.6, lightness).Clamped())
	}

	highlights := make([]canvas.Color, 0, 12)
	for hue := 0.0; hue < 360; hue += 30 {
		highlights = append(highlights, fromColorful(colorful.Hsl(hue, 0.5, lightness).Clamped()))
	}

	return Theme{
		Base:     base,
		Mantle:   Blend(base, black, 0.15),
		Crust:    Blend(base, black, 0.30),
		Surface:  Blend(base, text, 0.12),
		Surface1: Blend(base, text, 0.24),
		Surface2: Blend(base, text, 0.36),

		Text:        text,
		Subtext:     Blend(text, base, 0.25),
		SpecialText: canvas.White,

		Success: status(120),
		Warning: status(45),
		Error:   status(0),
		Link:    status(210),

		Highlights: highlights,
	}
}
