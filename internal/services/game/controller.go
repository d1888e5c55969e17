package game

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mkondo/goban/internal/dependencies/clock"
	"github.com/mkondo/goban/internal/dependencies/random"
	"github.com/mkondo/goban/internal/model"
	"github.com/mkondo/goban/internal/services/rules"
	"github.com/mkondo/goban/internal/services/scoring"
	"github.com/mkondo/goban/internal/storage"
)

const gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Controller manages game sessions: seating, turn order, move application
// and game-end detection. The rules engine itself is stateless; the
// controller owns the mutable board through the stored game.
type Controller struct {
	storage storage.Storage
	rules   *rules.Service
	scoring *scoring.Service
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new game Controller
func NewController(
	storage storage.Storage,
	rulesService *rules.Service,
	scoringService *scoring.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		rules:   rulesService,
		scoring: scoringService,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// CreateGame starts a new game session. The creator plays Black. A game
// against the computer begins immediately; otherwise the game waits for a
// second player to join.
func (c *Controller) CreateGame(ctx context.Context, creator model.PlayerID, size int, vsComputer bool) (*model.Game, error) {
	if !model.ValidBoardSize(size) {
		return nil, model.ErrInvalidBoardSize
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:          model.GameID(c.random.String(12, gameIDAlphabet)),
		State:       model.GameStateWaiting,
		Size:        size,
		Board:       model.NewBoard(size),
		BlackPlayer: creator,
		VsComputer:  vsComputer,
		Turn:        model.Black,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if vsComputer {
		game.WhitePlayer = model.ComputerPlayerID
		game.State = model.GameStatePlaying
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.String("black", string(creator)),
		slog.Int("size", size),
		slog.Bool("vs_computer", vsComputer),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, id)
}

// ListOpenGames returns games still waiting for an opponent
func (c *Controller) ListOpenGames(ctx context.Context) ([]*model.Game, error) {
	return c.storage.ListOpenGames(ctx)
}

// JoinGame seats the player as White and starts the game
func (c *Controller) JoinGame(ctx context.Context, id model.GameID, playerID model.PlayerID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if game.State != model.GameStateWaiting {
		return nil, model.ErrGameFull
	}
	if game.BlackPlayer == playerID {
		return nil, model.ErrGameFull
	}

	game.WhitePlayer = playerID
	game.State = model.GameStatePlaying
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game joined",
		slog.String("game_id", string(id)),
		slog.String("white", string(playerID)),
	)

	return game, nil
}

// Move plays a stone for the given player. A legal move resets the
// consecutive-pass count and passes the turn. A suicide rejection still
// persists the board, because any opponent captures made while resolving the
// move are retained even though the stone itself comes back off.
func (c *Controller) Move(ctx context.Context, id model.GameID, playerID model.PlayerID, p model.Point) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	color, err := c.playableSeat(game, playerID)
	if err != nil {
		return nil, err
	}

	moveErr := c.rules.AttemptMove(game.Board, p, color, &game.Captures)
	switch {
	case moveErr == nil:
		game.Passes = 0
		game.Turn = color.Opponent()
	case errors.Is(moveErr, model.ErrSuicideMove):
		// Captures applied before the rejection stay on the tallies and
		// off the board; persist them before surfacing the error
		game.UpdatedAt = c.clock.Now()
		if err := c.storage.SaveGame(ctx, game); err != nil {
			return nil, err
		}
		return nil, moveErr
	default:
		return nil, moveErr
	}

	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("move played",
		slog.String("game_id", string(id)),
		slog.String("player", string(playerID)),
		slog.String("point", p.String()),
		slog.String("color", color.String()),
	)

	return game, nil
}

// Pass records a turn without a placement. Two consecutive passes finish the
// game; the final score is whatever the board shows at the second pass.
func (c *Controller) Pass(ctx context.Context, id model.GameID, playerID model.PlayerID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	color, err := c.playableSeat(game, playerID)
	if err != nil {
		return nil, err
	}

	game.Passes++
	game.Turn = color.Opponent()
	game.UpdatedAt = c.clock.Now()

	if game.Passes >= 2 {
		game.State = model.GameStateFinished
		score := c.scoring.Score(game.Board, game.Captures)
		c.logger.Info("game finished",
			slog.String("game_id", string(id)),
			slog.Float64("black_score", score.Black),
			slog.Float64("white_score", score.White),
		)
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

// Resign ends the game immediately in favor of the opponent
func (c *Controller) Resign(ctx context.Context, id model.GameID, playerID model.PlayerID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if game.Over() {
		return game, nil
	}
	if _, ok := game.PlayerColor(playerID); !ok {
		return nil, model.ErrNotInGame
	}

	game.State = model.GameStateAbandoned
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game resigned",
		slog.String("game_id", string(id)),
		slog.String("player", string(playerID)),
	)

	return game, nil
}

// Score computes the running score for a game, callable at any time
// including mid-game for a live display
func (c *Controller) Score(ctx context.Context, id model.GameID) (model.Score, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return model.Score{}, err
	}

	return c.scoring.Score(game.Board, game.Captures), nil
}

// playableSeat validates that the game accepts a move from this player right
// now and returns the color they play
func (c *Controller) playableSeat(game *model.Game, playerID model.PlayerID) (model.Color, error) {
	switch game.State {
	case model.GameStateWaiting:
		return 0, model.ErrGameNotStarted
	case model.GameStateFinished, model.GameStateAbandoned:
		return 0, model.ErrGameOver
	}

	color, ok := game.PlayerColor(playerID)
	if !ok {
		return 0, model.ErrNotInGame
	}
	if game.Turn != color {
		return 0, model.ErrNotPlayerTurn
	}

	return color, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, creator model.PlayerID, size int, vsComputer bool) (*model.Game, error)
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	ListOpenGames(ctx context.Context) ([]*model.Game, error)
	JoinGame(ctx context.Context, id model.GameID, playerID model.PlayerID) (*model.Game, error)
	Move(ctx context.Context, id model.GameID, playerID model.PlayerID, p model.Point) (*model.Game, error)
	Pass(ctx context.Context, id model.GameID, playerID model.PlayerID) (*model.Game, error)
	Resign(ctx context.Context, id model.GameID, playerID model.PlayerID) (*model.Game, error)
	Score(ctx context.Context, id model.GameID) (model.Score, error)
}

var _ ControllerInterface = (*Controller)(nil)
