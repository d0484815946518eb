package canvas

// Chars is a box-drawing character set indexed by a 4-bit junction mask
// in up, down, left, right bit order. For example 0b1100 is a vertical
// line (│) because up and down are present but not left and right.
type Chars [16]rune

// Horizontal returns the plain horizontal line character.
func (c Chars) Horizontal() rune { return c[0b0011] }

// Vertical returns the plain vertical line character.
func (c Chars) Vertical() rune { return c[0b1100] }

// Light is the light box-drawing set as defined by Unicode.
var Light = Chars{
	0b0000: ' ',
	0b0001: '╶',
	0b0010: '╴',
	0b0011: '─',
	0b0100: '╷',
	0b0101: '┌',
	0b0110: '┐',
	0b0111: '┬',
	0b1000: '╵',
	0b1001: '└',
	0b1010: '┘',
	0b1011: '┴',
	0b1100: '│',
	0b1101: '├',
	0b1110: '┤',
	0b1111: '┼',
}

// Heavy is the heavy box-drawing set as defined by Unicode.
var Heavy = Chars{
	0b0000: ' ',
	0b0001: '╺',
	0b0010: '╸',
	0b0011: '━',
	0b0100: '╻',
	0b0101: '┏',
	0b0110: '┓',
	0b0111: '┳',
	0b1000: '╹',
	0b1001: '┗',
	0b1010: '┛',
	0b1011: '┻',
	0b1100: '┃',
	0b1101: '┣',
	0b1110: '┫',
	0b1111: '╋',
}
