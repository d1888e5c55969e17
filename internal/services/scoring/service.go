package scoring

import (
	"github.com/mkondo/goban/internal/model"
)

// Komi is the fixed compensation added to White's score for moving second
const Komi = 7.5

// Service computes territory and final scores. It is pure: scoring the same
// board and tallies twice yields the same result, and the board is never
// mutated.
type Service struct{}

// New creates a new scoring Service
func New() *Service {
	return &Service{}
}

// Territory holds the number of empty points enclosed by each color
type Territory struct {
	Black int
	White int
}

// CountTerritory partitions the empty points into maximal 4-connected regions
// and credits each region bordered by exactly one color to that color.
// Regions bordered by both colors, or by none, count for neither side.
func (s *Service) CountTerritory(board *model.Board) Territory {
	var t Territory
	visited := make(map[model.Point]bool)

	for col := 0; col < board.Size; col++ {
		for row := 0; row < board.Size; row++ {
			start := model.Point{Col: col, Row: row}
			if visited[start] || board.Occupied(start) {
				continue
			}

			region, borders := s.floodRegion(board, start, visited)

			if len(borders) != 1 {
				continue
			}
			if borders[model.Black] {
				t.Black += len(region)
			} else {
				t.White += len(region)
			}
		}
	}

	return t
}

// floodRegion collects the empty region containing start and the set of
// stone colors found on its border, marking the region visited.
func (s *Service) floodRegion(board *model.Board, start model.Point, visited map[model.Point]bool) ([]model.Point, map[model.Color]bool) {
	var region []model.Point
	borders := make(map[model.Color]bool)

	queue := []model.Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if visited[p] {
			continue
		}
		visited[p] = true
		region = append(region, p)

		for _, n := range p.Neighbors(board.Size) {
			if c, ok := board.Get(n); ok {
				borders[c] = true
			} else if !visited[n] {
				queue = append(queue, n)
			}
		}
	}

	return region, borders
}

// Score computes the running score for a board and capture tallies. Each
// color's score is its own territory plus the number of opponent stones it
// has captured; White also receives komi.
func (s *Service) Score(board *model.Board, captures model.Captures) model.Score {
	t := s.CountTerritory(board)

	return model.Score{
		Black: float64(t.Black) + float64(captures.White),
		White: float64(t.White) + float64(captures.Black) + Komi,
	}
}

func (s *Service) Winner(score model.Score) model.Color {
	return Winner(score)
}

// Winner returns the leading color, or 0 on a tie
func Winner(score model.Score) model.Color {
	switch {
	case score.Black > score.White:
		return model.Black
	case score.White > score.Black:
		return model.White
	default:
		return 0
	}
}

// Interface for dependency injection
type ServiceInterface interface {
	CountTerritory(board *model.Board) Territory
	Score(board *model.Board, captures model.Captures) model.Score
	Winner(score model.Score) model.Color
}

var _ ServiceInterface = (*Service)(nil)
