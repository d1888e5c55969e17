package model

// Board holds the stones currently on the grid. Only occupied intersections
// are present as keys; an absent key is an empty intersection. The board is
// owned by its game and mutated only by Place and Remove.
type Board struct {
	Size   int
	Stones map[Point]Color
}

// NewBoard creates an empty board of the given size
func NewBoard(size int) *Board {
	return &Board{
		Size:   size,
		Stones: make(map[Point]Color),
	}
}

// ValidBoardSize returns true for the supported grid sizes
func ValidBoardSize(size int) bool {
	return size == 9 || size == 13 || size == 19
}

// InBounds returns true if the point is on the board
func (b *Board) InBounds(p Point) bool {
	return p.Col >= 0 && p.Col < b.Size && p.Row >= 0 && p.Row < b.Size
}

// Get returns the color at the given point and whether a stone is present
func (b *Board) Get(p Point) (Color, bool) {
	c, ok := b.Stones[p]
	return c, ok
}

// Occupied returns true if a stone is present at the given point
func (b *Board) Occupied(p Point) bool {
	_, ok := b.Stones[p]
	return ok
}

// Place puts a stone on the board
func (b *Board) Place(p Point, c Color) {
	b.Stones[p] = c
}

// Remove deletes a stone from the board
func (b *Board) Remove(p Point) {
	delete(b.Stones, p)
}

// EmptyPoints returns all empty intersections in column-major scan order
func (b *Board) EmptyPoints() []Point {
	empty := make([]Point, 0, b.Size*b.Size-len(b.Stones))
	for col := 0; col < b.Size; col++ {
		for row := 0; row < b.Size; row++ {
			p := Point{Col: col, Row: row}
			if !b.Occupied(p) {
				empty = append(empty, p)
			}
		}
	}
	return empty
}

// StarPoints returns the hoshi coordinates for the given board size
func StarPoints(size int) []Point {
	switch size {
	case 19:
		return []Point{
			{3, 3}, {3, 9}, {3, 15},
			{9, 3}, {9, 9}, {9, 15},
			{15, 3}, {15, 9}, {15, 15},
		}
	case 13:
		return []Point{{3, 3}, {3, 9}, {9, 3}, {9, 9}, {6, 6}}
	case 9:
		return []Point{{4, 4}}
	default:
		return nil
	}
}
