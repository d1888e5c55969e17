package bot_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mkondo/goban/internal/dependencies/mocks"
	"github.com/mkondo/goban/internal/model"
	"github.com/mkondo/goban/internal/services/bot"
	"github.com/mkondo/goban/internal/services/game"
	"github.com/mkondo/goban/internal/services/rules"
	"github.com/mkondo/goban/internal/services/scoring"
	"github.com/mkondo/goban/internal/storage/memory"
	"github.com/mkondo/goban/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	random  *mocks.MockRandom
	games   *game.Controller
	service *bot.Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	logger := testutil.NopLogger()
	s.storage = memory.New()
	s.random = mocks.NewMockRandom()

	rulesService := rules.New(logger)
	s.games = game.NewController(
		s.storage,
		rulesService,
		scoring.New(),
		mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)),
		s.random,
		logger,
	)
	s.service = bot.New(s.games, bot.NewRandomStrategy(s.random, rulesService), logger)
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestRepliesAfterHumanMove() {
	s.random.QueueString("GAME00000001")
	g, err := s.games.CreateGame(s.ctx, "player-1", 9, true)
	s.Require().NoError(err)

	_, err = s.games.Move(s.ctx, g.ID, "player-1", model.Point{Col: 4, Row: 4})
	s.Require().NoError(err)

	actions, err := s.service.PlayComputerTurns(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Require().Len(actions, 1)
	s.Equal(bot.ActionMove, actions[0].Type)

	updated, err := s.games.GetGame(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Equal(model.Black, updated.Turn)
	s.Len(updated.Board.Stones, 2)
	s.True(updated.Board.Occupied(actions[0].Point))
}

func (s *ServiceSuite) TestDoesNothingWhenNotComputerTurn() {
	s.random.QueueString("GAME00000002")
	g, err := s.games.CreateGame(s.ctx, "player-1", 9, true)
	s.Require().NoError(err)

	actions, err := s.service.PlayComputerTurns(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Empty(actions)
}

func (s *ServiceSuite) TestDoesNothingInHumanGame() {
	s.random.QueueString("GAME00000003")
	g, err := s.games.CreateGame(s.ctx, "player-1", 9, false)
	s.Require().NoError(err)
	_, err = s.games.JoinGame(s.ctx, g.ID, "player-2")
	s.Require().NoError(err)

	actions, err := s.service.PlayComputerTurns(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Empty(actions)
}

func (s *ServiceSuite) TestPassesWhenBoardOffersNothing() {
	// Crafted position: the only empty point is suicide for white, so the
	// computer is forced to pass
	board := model.NewBoard(9)
	for col := 0; col < 9; col++ {
		for row := 0; row < 9; row++ {
			if col == 0 && row == 0 {
				continue
			}
			board.Place(model.Point{Col: col, Row: row}, model.Black)
		}
	}
	g := &model.Game{
		ID:          "forced-pass",
		State:       model.GameStatePlaying,
		Size:        9,
		Board:       board,
		BlackPlayer: "player-1",
		WhitePlayer: model.ComputerPlayerID,
		VsComputer:  true,
		Turn:        model.White,
	}
	s.Require().NoError(s.storage.SaveGame(s.ctx, g))

	actions, err := s.service.PlayComputerTurns(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Require().Len(actions, 1)
	s.Equal(bot.ActionPass, actions[0].Type)

	updated, err := s.games.GetGame(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Equal(1, updated.Passes)
	s.Equal(model.Black, updated.Turn)
}
