package core

// Color is a logical foreground color for a screen cell or particle.
// The terminal platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the field renderer and the particle system.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorGray
	ColorDarkGray
	ColorTan
	ColorLightBrown
	ColorBrown
	ColorGold
	ColorOrange
	ColorSky
)

// DustColors are the particle colors used when no override is given.
var DustColors = []Color{ColorTan, ColorLightBrown, ColorDarkGray}
