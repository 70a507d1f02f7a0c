package core

// Color represents a foreground color for a screen cell.
// The TUI maps each value to an ANSI color code.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorGray
	ColorBrightWhite
)
