package game

// Color is one entry of the fixed drawing palette. It serializes to its name.
type Color string

const (
	Red     Color = "Red"
	Orange  Color = "Orange"
	Yellow  Color = "Yellow"
	Lime    Color = "Lime"
	Green   Color = "Green"
	Blue    Color = "Blue"
	Cyan    Color = "Cyan"
	Magenta Color = "Magenta"
	Purple  Color = "Purple"
	Black   Color = "Black"
	Gray    Color = "Gray"
	White   Color = "White"
)

// DefaultColor is the color of an untouched canvas cell.
const DefaultColor = White

// Palette lists every drawable color in display order.
var Palette = []Color{
	Red, Orange, Yellow, Lime, Green, Blue,
	Cyan, Magenta, Purple, Black, Gray, White,
}

// Valid reports whether c is part of the palette.
func (c Color) Valid() bool {
	for _, p := range Palette {
		if p == c {
			return true
		}
	}
	return false
}
