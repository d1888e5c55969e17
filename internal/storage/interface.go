package storage

import (
	"context"

	"github.com/mkondo/goban/internal/model"
)

// Storage defines the interface for data persistence.
//
// Implementations return the model sentinel errors (model.ErrPlayerNotFound,
// model.ErrGameNotFound) for missing entities so callers can test with
// errors.Is without knowing the backend.
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Registered player operations
	SaveRegisteredPlayer(ctx context.Context, rp *model.RegisteredPlayer) error
	GetRegisteredPlayer(ctx context.Context, playerID model.PlayerID) (*model.RegisteredPlayer, error)
	GetRegisteredPlayerByUsername(ctx context.Context, username string) (*model.RegisteredPlayer, error)

	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error

	// ListOpenGames returns games still waiting for a second player.
	ListOpenGames(ctx context.Context) ([]*model.Game, error)
}
