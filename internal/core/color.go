package core

// Color is a foreground color hint for a screen cell or scene element.
// The value is any color spec the terminal renderer understands: an ANSI
// code ("1", "208") or a hex triplet ("#FF6B6B").
type Color string

// Predefined colors for game elements.
const (
	ColorDefault Color = ""
	ColorRed     Color = "1"
	ColorGreen   Color = "2"
	ColorYellow  Color = "3"
	ColorPink    Color = "213"
	ColorWhite   Color = "7"
	ColorGray    Color = "245"
)
