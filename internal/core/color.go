package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for arena elements.
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
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Semantic aliases used by the arena renderer.
const (
	ColorWall    = ColorBrightWhite
	ColorRay     = ColorYellow
	ColorHit     = ColorOrange
	ColorEmitter = ColorBrightRed
	ColorHUD     = ColorCyan
)
