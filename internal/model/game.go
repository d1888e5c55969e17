package model

import "time"

// GameID uniquely identifies a game
type GameID string

// ComputerPlayerID is the fixed seat holder for the built-in opponent
const ComputerPlayerID PlayerID = "computer"

// GameState represents the current phase of a game
type GameState string

const (
	GameStateWaiting   GameState = "waiting"   // Waiting for an opponent to join
	GameStatePlaying   GameState = "playing"   // Moves being played
	GameStateFinished  GameState = "finished"  // Ended by two consecutive passes
	GameStateAbandoned GameState = "abandoned" // Ended by resignation or cancellation
)

// Captures tallies stones removed from the board, by captured color.
// Both counters only ever increase.
type Captures struct {
	Black int `json:"black"` // black stones captured by White
	White int `json:"white"` // white stones captured by Black
}

// Score is the full-board score at a moment in time. Black's score includes
// the captured-White tally and vice versa; White additionally receives komi.
type Score struct {
	Black float64 `json:"black"`
	White float64 `json:"white"`
}

// Game is a single session of Go between two players (or one player and the
// computer). The board is owned exclusively by the game; engine operations
// receive it by pointer and never copy it.
type Game struct {
	ID    GameID
	State GameState
	Size  int
	Board *Board

	// Seats; the creator always plays Black
	BlackPlayer PlayerID
	WhitePlayer PlayerID
	VsComputer  bool

	Turn     Color
	Passes   int // consecutive passes; two end the game
	Captures Captures

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PlayerColor returns the seat held by the given player
func (g *Game) PlayerColor(id PlayerID) (Color, bool) {
	switch id {
	case g.BlackPlayer:
		return Black, true
	case g.WhitePlayer:
		return White, true
	default:
		return 0, false
	}
}

// Over returns true once no further moves can be played
func (g *Game) Over() bool {
	return g.State == GameStateFinished || g.State == GameStateAbandoned
}
