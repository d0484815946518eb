package canvas

import "fmt"

// Color is a 24-bit RGB color with an explicit validity bit. The zero
// value NoColor means "leave the cell's color as is"; every constructor
// returns a valid color, so black is distinguishable from unset.
type Color uint32

// NoColor is the absent color.
const NoColor Color = 0

const colorValid Color = 1 << 24

// RGB returns the color with the given components.
func RGB(r, g, b uint8) Color {
	return colorValid | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// Grayscale returns the gray with all components set to v.
func Grayscale(v uint8) Color {
	return RGB(v, v, v)
}

// Hex returns the color for a 0xRRGGBB value.
func Hex(v uint32) Color {
	return colorValid | Color(v&0xffffff)
}

// White and Black are fully valid colors, not to be confused with NoColor.
var (
	White = Grayscale(255)
	Black = Grayscale(0)
)

// Valid reports whether the color is set.
func (c Color) Valid() bool {
	return c&colorValid != 0
}

// RGB returns the color components. Zero for NoColor.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the color as a 0xRRGGBB value.
func (c Color) Hex() uint32 {
	return uint32(c) & 0xffffff
}

func (c Color) String() string {
	if !c.Valid() {
		return "none"
	}
	return fmt.Sprintf("#%06x", c.Hex())
}
