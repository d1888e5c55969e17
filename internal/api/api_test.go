package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkondo/goban/internal/api"
	"github.com/mkondo/goban/internal/api/response"
	"github.com/mkondo/goban/internal/factory"
	"github.com/mkondo/goban/internal/services/auth"
	"github.com/mkondo/goban/internal/storage/memory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	storage *memory.Storage
	auth    *auth.Service
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use production factory with real random/clock
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		AuthService:    app.AuthService,
		GameController: app.GameController,
		ScoringService: app.ScoringService,
		BotService:     app.BotService,
	})

	return &testServer{
		handler: router,
		storage: app.Storage.(*memory.Storage),
		auth:    app.AuthService,
	}
}

func (ts *testServer) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestCreateGuestPlayer(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]string{"display_name": "Alice"}
	rr := ts.request(http.MethodPost, "/api/v1/players/guest", body, "")

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp response.AuthResponse
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)

	assert.Equal(t, "Alice", resp.Player.DisplayName)
	assert.True(t, resp.Player.IsGuest)
	assert.NotEmpty(t, resp.SessionToken)
}

func TestCreateGuestPlayerWithoutBody(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/players/guest", nil, "")
	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp response.AuthResponse
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "Guest", resp.Player.DisplayName)
}

func TestRegisterAndLogin(t *testing.T) {
	ts := newTestServer(t)

	// Register
	registerBody := map[string]string{
		"username":     "alice",
		"password":     "secret123",
		"display_name": "Alice",
	}
	rr := ts.request(http.MethodPost, "/api/v1/players/register", registerBody, "")
	assert.Equal(t, http.StatusCreated, rr.Code)

	var registerResp response.AuthResponse
	err := json.Unmarshal(rr.Body.Bytes(), &registerResp)
	require.NoError(t, err)
	assert.False(t, registerResp.Player.IsGuest)

	// Login
	loginBody := map[string]string{
		"username": "alice",
		"password": "secret123",
	}
	rr = ts.request(http.MethodPost, "/api/v1/players/login", loginBody, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var loginResp response.AuthResponse
	err = json.Unmarshal(rr.Body.Bytes(), &loginResp)
	require.NoError(t, err)
	assert.Equal(t, registerResp.Player.ID, loginResp.Player.ID)
}

func TestGetMe(t *testing.T) {
	ts := newTestServer(t)

	// Create guest first
	body := map[string]string{"display_name": "Bob"}
	rr := ts.request(http.MethodPost, "/api/v1/players/guest", body, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	var authResp response.AuthResponse
	err := json.Unmarshal(rr.Body.Bytes(), &authResp)
	require.NoError(t, err)

	// Get me
	rr = ts.request(http.MethodGet, "/api/v1/players/me", nil, authResp.SessionToken)
	assert.Equal(t, http.StatusOK, rr.Code)

	var meResp response.Player
	err = json.Unmarshal(rr.Body.Bytes(), &meResp)
	require.NoError(t, err)
	assert.Equal(t, "Bob", meResp.DisplayName)
}

func TestUnauthorizedWithoutToken(t *testing.T) {
	ts := newTestServer(t)

	// Try to get /me without token
	rr := ts.request(http.MethodGet, "/api/v1/players/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// Try to create game without token
	rr = ts.request(http.MethodPost, "/api/v1/games", map[string]int{"size": 9}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestCreateGame(t *testing.T) {
	ts := newTestServer(t)

	token := createGuestPlayer(t, ts, "Alice")

	body := map[string]any{"size": 9}
	rr := ts.request(http.MethodPost, "/api/v1/games", body, token)
	assert.Equal(t, http.StatusCreated, rr.Code)

	var gameResp response.GameState
	err := json.Unmarshal(rr.Body.Bytes(), &gameResp)
	require.NoError(t, err)

	assert.Equal(t, "waiting", gameResp.State)
	assert.Equal(t, 9, gameResp.Size)
	assert.NotEmpty(t, gameResp.BlackPlayer)
	assert.Empty(t, gameResp.WhitePlayer)
	assert.Len(t, gameResp.Board.Rows, 9)
	assert.Equal(t, ".........", gameResp.Board.Rows[0])
}

func TestCreateGameInvalidSize(t *testing.T) {
	ts := newTestServer(t)

	token := createGuestPlayer(t, ts, "Alice")

	body := map[string]any{"size": 10}
	rr := ts.request(http.MethodPost, "/api/v1/games", body, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_BOARD_SIZE")
}

func TestListOpenGames(t *testing.T) {
	ts := newTestServer(t)

	token1 := createGuestPlayer(t, ts, "Alice")
	token2 := createGuestPlayer(t, ts, "Bob")

	gameID := createGame(t, ts, token1, 9)

	rr := ts.request(http.MethodGet, "/api/v1/games/open", nil, token2)
	assert.Equal(t, http.StatusOK, rr.Code)

	var listResp response.GameList
	err := json.Unmarshal(rr.Body.Bytes(), &listResp)
	require.NoError(t, err)
	require.Len(t, listResp.Games, 1)
	assert.Equal(t, gameID, listResp.Games[0].ID)

	// Joining removes the game from the open list
	rr = ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/join", nil, token2)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/games/open", nil, token2)
	require.Equal(t, http.StatusOK, rr.Code)
	err = json.Unmarshal(rr.Body.Bytes(), &listResp)
	require.NoError(t, err)
	assert.Empty(t, listResp.Games)
}

func TestJoinOwnGameFails(t *testing.T) {
	ts := newTestServer(t)

	token := createGuestPlayer(t, ts, "Alice")
	gameID := createGame(t, ts, token, 9)

	rr := ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/join", nil, token)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "GAME_FULL")
}

func TestFullGameFlowWithCapture(t *testing.T) {
	ts := newTestServer(t)

	blackToken := createGuestPlayer(t, ts, "Alice")
	whiteToken := createGuestPlayer(t, ts, "Bob")

	gameID := createGame(t, ts, blackToken, 9)

	rr := ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/join", nil, whiteToken)
	require.Equal(t, http.StatusOK, rr.Code)

	var joinResp response.GameState
	err := json.Unmarshal(rr.Body.Bytes(), &joinResp)
	require.NoError(t, err)
	assert.Equal(t, "playing", joinResp.State)
	assert.Equal(t, "black", joinResp.Turn)

	// Black surrounds the corner; White plays into it and is captured
	playMove(t, ts, gameID, blackToken, 1, 0)
	playMove(t, ts, gameID, whiteToken, 0, 0)
	moveResp := playMove(t, ts, gameID, blackToken, 0, 1)

	assert.Equal(t, 1, moveResp.Game.Captures.White)
	assert.Equal(t, ".X.......", moveResp.Game.Board.Rows[0])
	assert.Equal(t, "X........", moveResp.Game.Board.Rows[1])
	assert.Equal(t, "white", moveResp.Game.Turn)

	// White replaying the captured point is now suicide
	body := map[string]int{"col": 0, "row": 0}
	rr = ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/moves", body, whiteToken)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "SUICIDE_MOVE")

	// Moving out of turn is forbidden
	rr = ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/moves", map[string]int{"col": 5, "row": 5}, blackToken)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "NOT_YOUR_TURN")

	// Playing on an occupied point conflicts
	rr = ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/moves", map[string]int{"col": 1, "row": 0}, whiteToken)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "POINT_OCCUPIED")

	// Two consecutive passes end the game
	rr = ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/pass", nil, whiteToken)
	require.Equal(t, http.StatusOK, rr.Code)
	rr = ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/pass", nil, blackToken)
	require.Equal(t, http.StatusOK, rr.Code)

	var passResp response.MoveResponse
	err = json.Unmarshal(rr.Body.Bytes(), &passResp)
	require.NoError(t, err)
	assert.Equal(t, "finished", passResp.Game.State)

	require.NotNil(t, passResp.Game.Score)
	assert.Equal(t, 80.0, passResp.Game.Score.Black)
	assert.Equal(t, 7.5, passResp.Game.Score.White)
	assert.Equal(t, "black", passResp.Game.Score.Winner)

	// Moves after the game ends conflict
	rr = ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/moves", map[string]int{"col": 5, "row": 5}, whiteToken)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "GAME_OVER")
}

func TestScoreEndpoint(t *testing.T) {
	ts := newTestServer(t)

	blackToken := createGuestPlayer(t, ts, "Alice")
	whiteToken := createGuestPlayer(t, ts, "Bob")

	gameID := createGame(t, ts, blackToken, 9)
	rr := ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/join", nil, whiteToken)
	require.Equal(t, http.StatusOK, rr.Code)

	playMove(t, ts, gameID, blackToken, 1, 1)

	rr = ts.request(http.MethodGet, "/api/v1/games/"+gameID+"/score", nil, whiteToken)
	assert.Equal(t, http.StatusOK, rr.Code)

	var scoreResp response.Score
	err := json.Unmarshal(rr.Body.Bytes(), &scoreResp)
	require.NoError(t, err)
	assert.Equal(t, 80.0, scoreResp.Black)
	assert.Equal(t, 7.5, scoreResp.White)
	assert.Equal(t, "black", scoreResp.Winner)
}

func TestResignGame(t *testing.T) {
	ts := newTestServer(t)

	blackToken := createGuestPlayer(t, ts, "Alice")
	whiteToken := createGuestPlayer(t, ts, "Bob")

	gameID := createGame(t, ts, blackToken, 9)
	rr := ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/join", nil, whiteToken)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/resign", nil, whiteToken)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resignResp response.GameState
	err := json.Unmarshal(rr.Body.Bytes(), &resignResp)
	require.NoError(t, err)
	assert.Equal(t, "abandoned", resignResp.State)
}

func TestVsComputerGame(t *testing.T) {
	ts := newTestServer(t)

	token := createGuestPlayer(t, ts, "Alice")

	body := map[string]any{"size": 9, "vs_computer": true}
	rr := ts.request(http.MethodPost, "/api/v1/games", body, token)
	require.Equal(t, http.StatusCreated, rr.Code)

	var gameResp response.GameState
	err := json.Unmarshal(rr.Body.Bytes(), &gameResp)
	require.NoError(t, err)

	// The computer takes the white seat immediately
	assert.Equal(t, "playing", gameResp.State)
	assert.True(t, gameResp.VsComputer)
	assert.Equal(t, "computer", gameResp.WhitePlayer)

	// After a human move the computer replies and hands the turn back
	moveResp := playMove(t, ts, gameResp.ID, token, 4, 4)
	require.NotEmpty(t, moveResp.ComputerActions)
	assert.Equal(t, "move", moveResp.ComputerActions[0].Type)
	assert.Equal(t, "black", moveResp.Game.Turn)
}

// Helper functions

func createGuestPlayer(t *testing.T, ts *testServer, displayName string) string {
	t.Helper()

	body := map[string]string{"display_name": displayName}
	rr := ts.request(http.MethodPost, "/api/v1/players/guest", body, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.AuthResponse
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)

	return resp.SessionToken
}

func createGame(t *testing.T, ts *testServer, token string, size int) string {
	t.Helper()

	body := map[string]any{"size": size}
	rr := ts.request(http.MethodPost, "/api/v1/games", body, token)
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.GameState
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)

	return resp.ID
}

func playMove(t *testing.T, ts *testServer, gameID, token string, col, row int) response.MoveResponse {
	t.Helper()

	body := map[string]int{"col": col, "row": row}
	rr := ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/moves", body, token)
	require.Equal(t, http.StatusOK, rr.Code, "move (%d,%d) failed: %s", col, row, rr.Body.String())

	var resp response.MoveResponse
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)
	return resp
}
