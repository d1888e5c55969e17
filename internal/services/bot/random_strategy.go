package bot

import (
	"github.com/mkondo/goban/internal/dependencies/random"
	"github.com/mkondo/goban/internal/model"
	"github.com/mkondo/goban/internal/services/rules"
)

// RandomStrategy samples uniformly from the untried empty points, keeping the
// first whose resulting group would have a liberty. The probe ignores any
// captures the move would make, so a point that is only playable because it
// captures is skipped. When every empty point has been tried and rejected the
// strategy reports no move, which the caller turns into a pass. The loop is
// bounded by the number of empty points, so it always terminates.
type RandomStrategy struct {
	random random.Random
	rules  *rules.Service
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random, rulesService *rules.Service) *RandomStrategy {
	return &RandomStrategy{
		random: rnd,
		rules:  rulesService,
	}
}

var _ Strategy = (*RandomStrategy)(nil)

// ChooseMove picks a random placement with at least one liberty
func (s *RandomStrategy) ChooseMove(game *model.Game) (model.Point, bool) {
	color, ok := game.PlayerColor(model.ComputerPlayerID)
	if !ok {
		return model.Point{}, false
	}

	untried := game.Board.EmptyPoints()
	for len(untried) > 0 {
		i := s.random.Intn(len(untried))
		p := untried[i]

		if s.rules.HasLiberties(game.Board, p, color) {
			return p, true
		}

		// Discard and redraw from the shrinking set
		untried[i] = untried[len(untried)-1]
		untried = untried[:len(untried)-1]
	}

	return model.Point{}, false
}
