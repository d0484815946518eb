package themes

import "github.com/lixenwraith/canvas/canvas"

func rgb(r, g, b uint8) canvas.Color { return canvas.RGB(r, g, b) }

// OneDark is the One Dark theme from Atom.
// https://github.com/joshdick/onedark.vim/blob/main/colors/onedark.vim
func OneDark() Theme {
	return Theme{
		Base:     rgb(40, 44, 52),
		Mantle:   rgb(30, 33, 39),
		Crust:    rgb(22, 24, 28),
		Surface:  rgb(50, 56, 66),
		Surface1: rgb(64, 71, 84),
		Surface2: rgb(81, 90, 107),

		Text:        rgb(171, 178, 191),
		Subtext:     rgb(92, 99, 112),
		SpecialText: canvas.White,

		Success: rgb(152, 195, 121),
		Warning: rgb(229, 192, 123),
		Error:   rgb(224, 108, 117),
		Link:    rgb(86, 182, 194),

		Highlights: []canvas.Color{
			rgb(224, 108, 117), // light red
			rgb(190, 80, 70),   // dark red
			rgb(152, 195, 121), // green
			rgb(229, 192, 123), // light yellow
			rgb(209, 154, 102), // dark yellow
			rgb(97, 175, 239),  // blue
			rgb(198, 120, 221), // magenta
			rgb(86, 182, 194),  // cyan
		},
	}
}

// catppuccin assembles a Catppuccin flavor from its named colors.
// https://github.com/catppuccin/catppuccin
type catppuccin struct {
	rosewater, flamingo, pink, mauve             canvas.Color
	red, maroon, peach, yellow, green            canvas.Color
	teal, sky, sapphire, blue, lavender          canvas.Color
	text, subtext0, surface2, surface1, surface0 canvas.Color
	base, mantle, crust                          canvas.Color
}

func (c catppuccin) theme() Theme {
	return Theme{
		Base:     c.base,
		Mantle:   c.mantle,
		Crust:    c.crust,
		Surface:  c.surface0,
		Surface1: c.surface1,
		Surface2: c.surface2,

		Text:        c.text,
		Subtext:     c.subtext0,
		SpecialText: canvas.White,

		Success: c.green,
		Warning: c.yellow,
		Error:   c.red,
		Link:    c.blue,

		Highlights: []canvas.Color{
			c.rosewater, c.flamingo, c.pink, c.mauve, c.red, c.maroon,
			c.peach, c.yellow, c.green, c.teal, c.sky, c.sapphire,
			c.blue, c.lavender,
		},
	}
}

// Latte is the Catppuccin Latte (light) flavor.
func Latte() Theme {
	return catppuccin{
		rosewater: rgb(220, 138, 120),
		flamingo:  rgb(221, 120, 120),
		pink:      rgb(234, 118, 203),
		mauve:     rgb(136, 57, 239),
		red:       rgb(210, 15, 57),
		maroon:    rgb(230, 69, 83),
		peach:     rgb(254, 100, 11),
		yellow:    rgb(223, 142, 29),
		green:     rgb(64, 160, 43),
		teal:      rgb(23, 146, 153),
		sky:       rgb(4, 165, 229),
		sapphire:  rgb(32, 159, 181),
		blue:      rgb(30, 102, 245),
		lavender:  rgb(114, 135, 253),
		text:      rgb(76, 79, 105),
		subtext0:  rgb(108, 111, 133),
		surface2:  rgb(172, 176, 190),
		surface1:  rgb(188, 192, 204),
		surface0:  rgb(204, 208, 218),
		base:      rgb(239, 241, 245),
		mantle:    rgb(230, 233, 239),
		crust:     rgb(220, 224, 232),
	}.theme()
}

// Frappe is the Catppuccin Frappe flavor.
func Frappe() Theme {
	return catppuccin{
		rosewater: rgb(242, 213, 207),
		flamingo:  rgb(238, 190, 190),
		pink:      rgb(244, 184, 228),
		mauve:     rgb(202, 158, 230),
		red:       rgb(231, 130, 132),
		maroon:    rgb(234, 153, 156),
		peach:     rgb(239, 159, 118),
		yellow:    rgb(229, 200, 144),
		green:     rgb(166, 209, 137),
		teal:      rgb(129, 200, 190),
		sky:       rgb(153, 209, 219),
		sapphire:  rgb(133, 193, 220),
		blue:      rgb(140, 170, 238),
		lavender:  rgb(186, 187, 241),
		text:      rgb(198, 208, 245),
		subtext0:  rgb(165, 173, 206),
		surface2:  rgb(98, 104, 128),
		surface1:  rgb(81, 87, 109),
		surface0:  rgb(65, 69, 89),
		base:      rgb(48, 52, 70),
		mantle:    rgb(41, 44, 60),
		crust:     rgb(35, 38, 52),
	}.theme()
}

func mocha() catppuccin {
	return catppuccin{
		rosewater: rgb(245, 224, 220),
		flamingo:  rgb(242, 205, 205),
		pink:      rgb(245, 194, 231),
		mauve:     rgb(203, 166, 247),
		red:       rgb(243, 139, 168),
		maroon:    rgb(235, 160, 172),
		peach:     rgb(250, 179, 135),
		yellow:    rgb(249, 226, 175),
		green:     rgb(166, 227, 161),
		teal:      rgb(148, 226, 213),
		sky:       rgb(137, 220, 235),
		sapphire:  rgb(116, 199, 236),
		blue:      rgb(137, 180, 250),
		lavender:  rgb(180, 190, 254),
		text:      rgb(205, 214, 244),
		subtext0:  rgb(166, 173, 200),
		surface2:  rgb(88, 91, 112),
		surface1:  rgb(69, 71, 90),
		surface0:  rgb(49, 50, 68),
		base:      rgb(30, 30, 46),
		mantle:    rgb(24, 24, 37),
		crust:     rgb(17, 17, 27),
	}
}

// Mocha is the Catppuccin Mocha (dark) flavor.
func Mocha() Theme {
	return mocha().theme()
}

// Macchiato is the Catppuccin Macchiato flavor. It currently shares
// Mocha's palette.
func Macchiato() Theme {
	return mocha().theme()
}

// ByName looks up a built-in theme by its lowercase name.
func ByName(name string) (Theme, bool) {
	switch name {
	case "latte":
		return Latte(), true
	case "frappe":
		return Frappe(), true
	case "macchiato":
		return Macchiato(), true
	case "mocha":
		return Mocha(), true
	case "onedark":
		return OneDark(), true
	}
	return Theme{}, false
}

// Names lists the built-in theme names accepted by ByName.
func Names() []string {
	return []string{"latte", "frappe", "macchiato", "mocha", "onedark"}
}
