package core

// Color represents a foreground color for a screen cell.
// Values 1..7 line up with the classic terminal palette so piece color tags
// can be used directly.
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
)

// PaletteSize is the number of distinct block colors (Red..White).
const PaletteSize = 7
