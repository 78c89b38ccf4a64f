package core

// Color is a foreground color for a screen cell, mapped to ANSI 256-color
// codes by the platform layer.
type Color uint8

// Colors used by the game's sprites and chrome.
const (
	ColorDefault Color = iota
	ColorSky
	ColorGreen
	ColorDarkGreen
	ColorYellow
	ColorOrange
	ColorBrown
	ColorWhite
	ColorGray
	ColorRed
)
