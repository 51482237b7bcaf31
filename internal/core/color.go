package core

// Color is a logical foreground or background colour for a screen cell.
// The platform maps it to a terminal colour; ColorDefault leaves the
// terminal's own colour in place.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorDarkGray
	ColorNavy
	ColorMaroon
	ColorTeal
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
)

// Style is the colour pair of a cell.
type Style struct {
	Fg   Color
	Bg   Color
	Bold bool
}

// Plain is the default style.
var Plain = Style{}

// Fg returns a style with only the foreground set.
func Fg(c Color) Style {
	return Style{Fg: c}
}
