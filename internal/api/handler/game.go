package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mkondo/goban/internal/api/middleware"
	"github.com/mkondo/goban/internal/api/request"
	"github.com/mkondo/goban/internal/api/response"
	"github.com/mkondo/goban/internal/model"
	"github.com/mkondo/goban/internal/services/bot"
	"github.com/mkondo/goban/internal/services/game"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController *game.Controller
	botService     *bot.Service
	scoringService scoringService
}

// scoringService is the slice of the scoring service the handler needs
type scoringService interface {
	Score(board *model.Board, captures model.Captures) model.Score
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController *game.Controller, botService *bot.Service, scoring scoringService) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		botService:     botService,
		scoringService: scoring,
	}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	g, err := h.gameController.CreateGame(r.Context(), player.ID, req.Size, req.VsComputer)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, h.gameState(g))
}

// ListOpen handles GET /api/v1/games/open
func (h *GameHandler) ListOpen(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameController.ListOpenGames(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameListFromModel(games))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, h.gameState(g))
}

// Join handles POST /api/v1/games/{id}/join
func (h *GameHandler) Join(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	id := model.GameID(mux.Vars(r)["id"])

	g, err := h.gameController.JoinGame(r.Context(), id, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, h.gameState(g))
}

// Move handles POST /api/v1/games/{id}/moves
func (h *GameHandler) Move(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	id := model.GameID(mux.Vars(r)["id"])

	var req request.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	p := model.Point{Col: req.Col, Row: req.Row}
	g, err := h.gameController.Move(r.Context(), id, player.ID, p)
	if err != nil {
		WriteError(w, err)
		return
	}

	g, actions, err := h.playComputerTurns(r.Context(), g)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.MoveResponse{
		Game:            h.gameState(g),
		ComputerActions: response.ComputerActionsFromModel(actions),
	}
	response.JSON(w, http.StatusOK, resp)
}

// Pass handles POST /api/v1/games/{id}/pass
func (h *GameHandler) Pass(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	id := model.GameID(mux.Vars(r)["id"])

	g, err := h.gameController.Pass(r.Context(), id, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	g, actions, err := h.playComputerTurns(r.Context(), g)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.MoveResponse{
		Game:            h.gameState(g),
		ComputerActions: response.ComputerActionsFromModel(actions),
	}
	response.JSON(w, http.StatusOK, resp)
}

// Resign handles POST /api/v1/games/{id}/resign
func (h *GameHandler) Resign(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	id := model.GameID(mux.Vars(r)["id"])

	g, err := h.gameController.Resign(r.Context(), id, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, h.gameState(g))
}

// Score handles GET /api/v1/games/{id}/score
func (h *GameHandler) Score(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	score, err := h.gameController.Score(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ScoreFromModel(score))
}

// playComputerTurns lets the computer respond after a human action and
// returns the refreshed game
func (h *GameHandler) playComputerTurns(ctx context.Context, g *model.Game) (*model.Game, []bot.Action, error) {
	if h.botService == nil || !g.VsComputer {
		return g, nil, nil
	}

	actions, err := h.botService.PlayComputerTurns(ctx, g.ID)
	if err != nil {
		return nil, nil, err
	}
	if len(actions) == 0 {
		return g, nil, nil
	}

	refreshed, err := h.gameController.GetGame(ctx, g.ID)
	if err != nil {
		return nil, nil, err
	}
	return refreshed, actions, nil
}

// gameState builds the response view, attaching the score once the game
// has finished
func (h *GameHandler) gameState(g *model.Game) response.GameState {
	var score *model.Score
	if g.State == model.GameStateFinished {
		sc := h.scoringService.Score(g.Board, g.Captures)
		score = &sc
	}
	return response.GameStateFromModel(g, score)
}
