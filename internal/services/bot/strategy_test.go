package bot

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mkondo/goban/internal/dependencies/mocks"
	"github.com/mkondo/goban/internal/model"
	"github.com/mkondo/goban/internal/services/rules"
	"github.com/mkondo/goban/internal/testutil"
)

type RandomStrategySuite struct {
	suite.Suite
	random   *mocks.MockRandom
	strategy *RandomStrategy
}

func TestRandomStrategySuite(t *testing.T) {
	suite.Run(t, new(RandomStrategySuite))
}

func (s *RandomStrategySuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.strategy = NewRandomStrategy(s.random, rules.New(testutil.NopLogger()))
}

func (s *RandomStrategySuite) newComputerGame(size int) *model.Game {
	return &model.Game{
		ID:          "game-1",
		State:       model.GameStatePlaying,
		Size:        size,
		Board:       model.NewBoard(size),
		BlackPlayer: "player-1",
		WhitePlayer: model.ComputerPlayerID,
		VsComputer:  true,
		Turn:        model.White,
	}
}

func (s *RandomStrategySuite) TestChoosesSampledEmptyPoint() {
	g := s.newComputerGame(9)
	s.random.QueueIntn(0)

	p, ok := s.strategy.ChooseMove(g)

	s.True(ok)
	// Empty points are enumerated column-major, so index 0 is the origin
	s.Equal(model.Point{Col: 0, Row: 0}, p)
}

func (s *RandomStrategySuite) TestSkipsPointWithoutLiberties() {
	g := s.newComputerGame(9)
	// Black seals the corner: (0,0) is dead for white
	g.Board.Place(model.Point{Col: 1, Row: 0}, model.Black)
	g.Board.Place(model.Point{Col: 0, Row: 1}, model.Black)

	// First draw lands on (0,0); it is discarded and the redraw (index 0
	// again after the swap-remove) lands on the former last point
	s.random.QueueIntn(0, 0)

	p, ok := s.strategy.ChooseMove(g)

	s.True(ok)
	s.NotEqual(model.Point{Col: 0, Row: 0}, p)
	s.Equal(model.Point{Col: 8, Row: 8}, p)
}

func (s *RandomStrategySuite) TestPassesWhenNoLegalPlacement() {
	g := s.newComputerGame(9)
	// Everything black except the origin, which is then suicide for white
	for col := 0; col < 9; col++ {
		for row := 0; row < 9; row++ {
			if col == 0 && row == 0 {
				continue
			}
			g.Board.Place(model.Point{Col: col, Row: row}, model.Black)
		}
	}

	_, ok := s.strategy.ChooseMove(g)
	s.False(ok)
}

func (s *RandomStrategySuite) TestNoMoveWithoutComputerSeat() {
	g := s.newComputerGame(9)
	g.WhitePlayer = "player-2"
	g.VsComputer = false

	_, ok := s.strategy.ChooseMove(g)
	s.False(ok)
}
