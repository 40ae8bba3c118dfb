package core

// Color is a cell's foreground. The zero value keeps the terminal default.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// brightOffset is the distance between a base color and its bright twin.
const brightOffset = ColorBrightRed - ColorRed

// Bright returns the bright variant of a base color. Other colors are
// returned unchanged.
func (c Color) Bright() Color {
	if c >= ColorRed && c <= ColorWhite {
		return c + brightOffset
	}
	return c
}

// Dim returns the base variant of a bright color. Other colors are
// returned unchanged.
func (c Color) Dim() Color {
	if c >= ColorBrightRed && c <= ColorBrightWhite {
		return c - brightOffset
	}
	return c
}
