package rules

import (
	"log/slog"

	"github.com/mkondo/goban/internal/model"
)

// PointSet is a set of board points
type PointSet map[model.Point]struct{}

// Contains reports set membership
func (s PointSet) Contains(p model.Point) bool {
	_, ok := s[p]
	return ok
}

// Service implements the rules of Go: group and liberty analysis, capture
// resolution and move legality. It holds no game state; callers pass the
// board they own.
type Service struct {
	logger *slog.Logger
}

// New creates a new rules Service
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// Analyze returns the maximal connected group of color stones containing
// start, together with its liberties (empty points adjacent to the group).
// The start point is assumed to hold a stone of the given color; it does not
// have to be present on the board, which lets callers probe a hypothetical
// placement without mutating anything.
func (s *Service) Analyze(board *model.Board, start model.Point, color model.Color) (group, liberties PointSet) {
	group = make(PointSet)
	liberties = make(PointSet)

	queue := []model.Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if group.Contains(p) {
			continue
		}
		group[p] = struct{}{}

		for _, n := range p.Neighbors(board.Size) {
			if group.Contains(n) {
				continue
			}
			switch c, ok := board.Get(n); {
			case ok && c == color:
				queue = append(queue, n)
			case !ok:
				liberties[n] = struct{}{}
			}
		}
	}

	return group, liberties
}

// HasLiberties reports whether a stone of the given color placed at p would
// leave its group with at least one liberty, ignoring any captures the
// placement would make. This is the probe the computer opponent uses.
func (s *Service) HasLiberties(board *model.Board, p model.Point, color model.Color) bool {
	_, liberties := s.Analyze(board, p, color)
	return len(liberties) > 0
}

// ResolveCaptures removes every opposing group adjacent to the placed stone
// that has been left without liberties, crediting the tallies by removed
// color. All qualifying groups are removed; a single move can capture several
// disjoint groups at once. Returns the number of stones removed.
func (s *Service) ResolveCaptures(board *model.Board, placed model.Point, player model.Color, captures *model.Captures) int {
	removed := 0
	for _, n := range placed.Neighbors(board.Size) {
		c, ok := board.Get(n)
		if !ok || c == player {
			continue
		}
		group, liberties := s.Analyze(board, n, c)
		if len(liberties) > 0 {
			continue
		}
		for p := range group {
			board.Remove(p)
		}
		switch c {
		case model.Black:
			captures.Black += len(group)
		case model.White:
			captures.White += len(group)
		}
		removed += len(group)
	}

	if removed > 0 {
		s.logger.Debug("stones captured",
			slog.Int("count", removed),
			slog.String("by", player.String()),
			slog.String("placed", placed.String()),
		)
	}

	return removed
}

// AttemptMove plays a stone for player at p. Out-of-bounds or occupied points
// are rejected without touching the board. Otherwise the stone is placed
// provisionally, opposing captures are resolved, and the placed stone's own
// group is re-checked: if it has no liberties even after captures the
// placement is removed and the move rejected as suicide. Captures already
// applied by the resolver are retained on a suicide rejection; only the
// provisional stone is rolled back.
func (s *Service) AttemptMove(board *model.Board, p model.Point, player model.Color, captures *model.Captures) error {
	if !board.InBounds(p) {
		return model.ErrPointOutOfBounds
	}
	if board.Occupied(p) {
		return model.ErrPointOccupied
	}

	board.Place(p, player)
	s.ResolveCaptures(board, p, player, captures)

	_, liberties := s.Analyze(board, p, player)
	if len(liberties) == 0 {
		board.Remove(p)
		return model.ErrSuicideMove
	}

	return nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Analyze(board *model.Board, start model.Point, color model.Color) (group, liberties PointSet)
	HasLiberties(board *model.Board, p model.Point, color model.Color) bool
	ResolveCaptures(board *model.Board, placed model.Point, player model.Color, captures *model.Captures) int
	AttemptMove(board *model.Board, p model.Point, player model.Color, captures *model.Captures) error
}

var _ ServiceInterface = (*Service)(nil)
