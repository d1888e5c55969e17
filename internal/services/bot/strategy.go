package bot

import "github.com/mkondo/goban/internal/model"

// Strategy decides the computer opponent's next placement.
// ok is false when the strategy has no legal placement and must pass.
type Strategy interface {
	ChooseMove(game *model.Game) (p model.Point, ok bool)
}
