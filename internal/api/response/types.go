package response

import (
	"strings"
	"time"

	"github.com/mkondo/goban/internal/model"
	"github.com/mkondo/goban/internal/services/auth"
	"github.com/mkondo/goban/internal/services/bot"
	"github.com/mkondo/goban/internal/services/scoring"
)

// Player represents a player in API responses
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          string(p.ID),
		DisplayName: p.DisplayName,
		IsGuest:     p.IsGuest,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Player:       PlayerFromModel(&s.Player),
		SessionToken: s.Token,
	}
}

// Captures tallies removed stones by captured color
type Captures struct {
	Black int `json:"black"`
	White int `json:"white"`
}

// Score is a full-board score
type Score struct {
	Black  float64 `json:"black"`
	White  float64 `json:"white"`
	Winner string  `json:"winner"`
}

// ScoreFromModel converts a model.Score, deriving the winner
func ScoreFromModel(s model.Score) Score {
	return Score{
		Black:  s.Black,
		White:  s.White,
		Winner: scoring.Winner(s).String(),
	}
}

// Board represents the grid as one string per row.
// '.' is an empty intersection, 'X' a black stone, 'O' a white stone.
type Board struct {
	Size int      `json:"size"`
	Rows []string `json:"rows"`
}

// BoardFromModel converts model.Board to a response Board
func BoardFromModel(b *model.Board) Board {
	rows := make([]string, b.Size)
	var sb strings.Builder
	for row := 0; row < b.Size; row++ {
		sb.Reset()
		for col := 0; col < b.Size; col++ {
			c, ok := b.Get(model.Point{Col: col, Row: row})
			switch {
			case !ok:
				sb.WriteByte('.')
			case c == model.Black:
				sb.WriteByte('X')
			default:
				sb.WriteByte('O')
			}
		}
		rows[row] = sb.String()
	}
	return Board{Size: b.Size, Rows: rows}
}

// GameState represents a game in API responses
type GameState struct {
	ID          string    `json:"id"`
	State       string    `json:"state"`
	Size        int       `json:"size"`
	Board       Board     `json:"board"`
	BlackPlayer string    `json:"black_player"`
	WhitePlayer string    `json:"white_player,omitempty"`
	VsComputer  bool      `json:"vs_computer"`
	Turn        string    `json:"turn"`
	Passes      int       `json:"passes"`
	Captures    Captures  `json:"captures"`
	Score       *Score    `json:"score,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GameStateFromModel converts model.Game to a response GameState.
// score may be nil; it is attached only for finished games.
func GameStateFromModel(g *model.Game, score *model.Score) GameState {
	resp := GameState{
		ID:          string(g.ID),
		State:       string(g.State),
		Size:        g.Size,
		Board:       BoardFromModel(g.Board),
		BlackPlayer: string(g.BlackPlayer),
		WhitePlayer: string(g.WhitePlayer),
		VsComputer:  g.VsComputer,
		Turn:        g.Turn.String(),
		Passes:      g.Passes,
		Captures:    Captures{Black: g.Captures.Black, White: g.Captures.White},
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
	if score != nil {
		sc := ScoreFromModel(*score)
		resp.Score = &sc
	}
	return resp
}

// GameSummary is the compact listing for open games
type GameSummary struct {
	ID          string    `json:"id"`
	Size        int       `json:"size"`
	BlackPlayer string    `json:"black_player"`
	CreatedAt   time.Time `json:"created_at"`
}

// GameList is the response for listing open games
type GameList struct {
	Games []GameSummary `json:"games"`
}

// GameListFromModel converts a slice of open games
func GameListFromModel(games []*model.Game) GameList {
	summaries := make([]GameSummary, len(games))
	for i, g := range games {
		summaries[i] = GameSummary{
			ID:          string(g.ID),
			Size:        g.Size,
			BlackPlayer: string(g.BlackPlayer),
			CreatedAt:   g.CreatedAt,
		}
	}
	return GameList{Games: summaries}
}

// ComputerAction describes one turn taken by the computer opponent
type ComputerAction struct {
	Type string `json:"type"` // "move" or "pass"
	Col  int    `json:"col,omitempty"`
	Row  int    `json:"row,omitempty"`
}

// MoveResponse is the response after a move or pass. When playing against
// the computer it includes the computer's replies.
type MoveResponse struct {
	Game            GameState        `json:"game"`
	ComputerActions []ComputerAction `json:"computer_actions,omitempty"`
}

// ComputerActionsFromModel converts bot actions for the response
func ComputerActionsFromModel(actions []bot.Action) []ComputerAction {
	if len(actions) == 0 {
		return nil
	}
	resp := make([]ComputerAction, len(actions))
	for i, a := range actions {
		resp[i] = ComputerAction{Type: string(a.Type)}
		if a.Type == bot.ActionMove {
			resp[i].Col = a.Point.Col
			resp[i].Row = a.Point.Row
		}
	}
	return resp
}
