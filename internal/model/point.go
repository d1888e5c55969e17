package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Point identifies an intersection on the board
type Point struct {
	Col int // 0-indexed from the left
	Row int // 0-indexed from the top
}

// Neighbors returns the orthogonally adjacent in-bounds points for a board of
// the given size, in west, east, north, south order. The order is stable so
// traversals are reproducible in tests.
func (p Point) Neighbors(size int) []Point {
	deltas := [4]Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	neighbors := make([]Point, 0, 4)
	for _, d := range deltas {
		n := Point{Col: p.Col + d.Col, Row: p.Row + d.Row}
		if n.Col >= 0 && n.Col < size && n.Row >= 0 && n.Row < size {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// String returns the point as "col,row"
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.Col, p.Row)
}

// MarshalText implements encoding.TextMarshaler so maps keyed by Point
// serialize to JSON (required by the Redis storage backend)
func (p Point) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *Point) UnmarshalText(text []byte) error {
	parts := strings.Split(string(text), ",")
	if len(parts) != 2 {
		return fmt.Errorf("invalid point %q", text)
	}
	col, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("invalid point %q: %w", text, err)
	}
	row, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("invalid point %q: %w", text, err)
	}
	p.Col = col
	p.Row = row
	return nil
}
