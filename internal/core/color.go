package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to a terminal style.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorRed
	ColorGreen
	ColorYellow

	// Dot and gate palette.
	ColorCoral
	ColorTeal
	ColorSky
	ColorSalmon
)
