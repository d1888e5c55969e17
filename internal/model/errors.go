package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Game errors
	ErrGameNotFound     = errors.New("game not found")
	ErrInvalidBoardSize = errors.New("board size must be 9, 13 or 19")
	ErrGameFull         = errors.New("game already has two players")
	ErrNotInGame        = errors.New("player is not in this game")
	ErrNotPlayerTurn    = errors.New("not this player's turn")
	ErrGameNotStarted   = errors.New("game is waiting for an opponent")
	ErrGameOver         = errors.New("game is over")

	// Move errors
	ErrPointOutOfBounds = errors.New("point is outside the board")
	ErrPointOccupied    = errors.New("point is already occupied")
	ErrSuicideMove      = errors.New("move would leave its own group without liberties")
)
