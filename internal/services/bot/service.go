package bot

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mkondo/goban/internal/model"
	"github.com/mkondo/goban/internal/services/game"
)

// Safety limit for the reply loop; a game never needs this many bot turns
// in a row
const maxBotIterations = 8

// ActionType classifies what the computer did on its turn
type ActionType string

const (
	ActionMove ActionType = "move"
	ActionPass ActionType = "pass"
)

// Action records a single computer turn
type Action struct {
	Type  ActionType
	Point model.Point // set for ActionMove
}

// Service plays the computer's turns in vs-computer games. Call it after
// every human action; it does nothing when it is not the computer's move.
type Service struct {
	games    game.ControllerInterface
	strategy Strategy
	logger   *slog.Logger
}

// New creates a new bot Service
func New(games game.ControllerInterface, strategy Strategy, logger *slog.Logger) *Service {
	return &Service{
		games:    games,
		strategy: strategy,
		logger:   logger,
	}
}

// PlayComputerTurns advances the game while it is the computer's move,
// returning the actions taken. In practice the loop runs at most once per
// human action, since each computer move hands the turn back.
func (s *Service) PlayComputerTurns(ctx context.Context, gameID model.GameID) ([]Action, error) {
	var actions []Action

	for i := 0; i < maxBotIterations; i++ {
		g, err := s.games.GetGame(ctx, gameID)
		if err != nil {
			return actions, err
		}

		if !s.computerToMove(g) {
			return actions, nil
		}

		p, ok := s.strategy.ChooseMove(g)
		if !ok {
			if _, err := s.games.Pass(ctx, gameID, model.ComputerPlayerID); err != nil {
				return actions, err
			}
			s.logger.Info("computer passed", slog.String("game_id", string(gameID)))
			actions = append(actions, Action{Type: ActionPass})
			continue
		}

		if _, err := s.games.Move(ctx, gameID, model.ComputerPlayerID, p); err != nil {
			// The liberty probe ignores captures, so an accepted probe can
			// never come back as suicide; anything else is a real failure
			if errors.Is(err, model.ErrSuicideMove) {
				s.logger.Warn("computer move rejected",
					slog.String("game_id", string(gameID)),
					slog.String("point", p.String()),
				)
				continue
			}
			return actions, err
		}

		s.logger.Info("computer moved",
			slog.String("game_id", string(gameID)),
			slog.String("point", p.String()),
		)
		actions = append(actions, Action{Type: ActionMove, Point: p})
	}

	return actions, nil
}

func (s *Service) computerToMove(g *model.Game) bool {
	if !g.VsComputer || g.State != model.GameStatePlaying {
		return false
	}
	color, ok := g.PlayerColor(model.ComputerPlayerID)
	return ok && g.Turn == color
}

// Interface for dependency injection
type ServiceInterface interface {
	PlayComputerTurns(ctx context.Context, gameID model.GameID) ([]Action, error)
}

var _ ServiceInterface = (*Service)(nil)
