package model

// Color is the color of a stone. An empty intersection is represented by
// absence from the board map, never by a Color value.
type Color int

const (
	Black Color = 1
	White Color = 2
)

// Opponent returns the other color
func (c Color) Opponent() Color {
	return 3 - c
}

// Valid returns true for Black or White
func (c Color) Valid() bool {
	return c == Black || c == White
}

// String returns the color name
func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "none"
	}
}
