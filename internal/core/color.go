package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI color codes by the platform layer.
type Color uint8

// Predefined colors for game elements.
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

// BrightPalette lists the colors used for randomized cosmetic effects
// (threat trails, city colors, the level-up flash). Dark colors are excluded
// so entities stay visible on a black terminal background.
var BrightPalette = []Color{
	ColorBrightRed,
	ColorBrightGreen,
	ColorBrightYellow,
	ColorBrightBlue,
	ColorBrightMagenta,
	ColorBrightCyan,
	ColorBrightWhite,
	ColorOrange,
}
