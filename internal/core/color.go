package core

import "strconv"

// Color is a palette entry shared by every render surface.
// Values map onto the ANSI 256-color table so terminal backends can
// use them directly.
type Color uint8

// Palette used by the games. ColorDefault leaves the surface color alone.
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
	ColorTeal
	ColorPurple
	ColorNavy
)

var ansiCodes = [...]int{
	ColorDefault:       -1,
	ColorRed:           1,
	ColorGreen:         2,
	ColorYellow:        3,
	ColorBlue:          4,
	ColorMagenta:       5,
	ColorCyan:          6,
	ColorWhite:         7,
	ColorBrightRed:     9,
	ColorBrightGreen:   10,
	ColorBrightYellow:  11,
	ColorBrightBlue:    12,
	ColorBrightMagenta: 13,
	ColorBrightCyan:    14,
	ColorBrightWhite:   15,
	ColorOrange:        208,
	ColorGray:          245,
	ColorTeal:          37,
	ColorPurple:        98,
	ColorNavy:          234,
}

// ANSI returns the 256-color index, or -1 for ColorDefault.
func (c Color) ANSI() int {
	if int(c) >= len(ansiCodes) {
		return -1
	}
	return ansiCodes[c]
}

// String returns the ANSI index as a string, which is the form lipgloss
// expects. ColorDefault yields an empty string.
func (c Color) String() string {
	code := c.ANSI()
	if code < 0 {
		return ""
	}
	return strconv.Itoa(code)
}
