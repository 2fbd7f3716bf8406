package usecase

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/service"
	"github.com/rocketscienceinc/tictactoe-ai/testing/suite"
)

var errSomeError = errors.New("some error")

type mockBotService struct {
	mock.Mock
}

func (that *mockBotService) SelectMove(board *entity.Board, level int) (entity.Move, error) {
	args := that.Called(board, level)
	return args.Get(0).(entity.Move), args.Error(1)
}

func TestGameManager_NewGame(t *testing.T) {
	_, st := suite.New(t)

	// Given: a manager with a game in progress
	bot := &mockBotService{}
	bot.On("SelectMove", mock.AnythingOfType("*entity.Board"), 1).
		Return(entity.Move{Row: 1, Col: 1}, nil).
		Once()

	manager := NewGameManager(st.Logger, bot, 1)
	first := manager.CurrentGame()
	_, err := manager.MakeTurn(0, 0)
	require.NoError(t, err)

	// When: starting a new game
	second := manager.NewGame()

	// Then: the board is empty again under a fresh ID
	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Same(t, second, manager.CurrentGame())
	assert.True(t, second.Board.IsEmpty())
	assert.Equal(t, entity.PlayerOne, second.Turn)
	bot.AssertExpectations(t)
}

func TestGameManager_MakeTurn(t *testing.T) {
	_, st := suite.New(t)

	t.Run("Bot replies to the human move", func(t *testing.T) {
		// Given: a bot that answers in the center
		bot := &mockBotService{}
		bot.On("SelectMove", mock.AnythingOfType("*entity.Board"), 1).
			Return(entity.Move{Row: 1, Col: 1}, nil).
			Once()
		manager := NewGameManager(st.Logger, bot, 1)

		// When: the human plays a corner
		game, err := manager.MakeTurn(0, 0)

		// Then: both marks are on the board and it is the human's turn again
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerOne, game.Board.Cell(0, 0))
		assert.Equal(t, entity.PlayerTwo, game.Board.Cell(1, 1))
		assert.Equal(t, entity.PlayerOne, game.Turn)
		assert.Equal(t, &entity.Move{Row: 1, Col: 1}, game.LastMove)
		bot.AssertExpectations(t)
	})

	t.Run("Bot is not asked after a winning human move", func(t *testing.T) {
		// Given: the human can complete the top row
		bot := &mockBotService{}
		manager := NewGameManager(st.Logger, bot, 1)
		manager.CurrentGame().Board = st.Board(
			"XX.",
			"OO.",
			"...",
		)

		// When: the human completes it
		game, err := manager.MakeTurn(0, 2)

		// Then: the game is over and the bot was never consulted
		require.NoError(t, err)
		assert.True(t, game.IsFinished())
		assert.Equal(t, entity.PlayerOne, game.Winner)
		bot.AssertNotCalled(t, "SelectMove", mock.Anything, mock.Anything)
	})

	t.Run("Bot winning move finishes the game", func(t *testing.T) {
		// Given: the bot will complete the top row
		bot := &mockBotService{}
		bot.On("SelectMove", mock.AnythingOfType("*entity.Board"), 1).
			Return(entity.Move{Row: 0, Col: 2}, nil).
			Once()
		manager := NewGameManager(st.Logger, bot, 1)
		manager.CurrentGame().Board = st.Board(
			"OO.",
			"X..",
			"X..",
		)

		// When: the human plays elsewhere
		game, err := manager.MakeTurn(2, 2)

		// Then: the bot wins
		require.NoError(t, err)
		assert.True(t, game.IsFinished())
		assert.Equal(t, entity.PlayerTwo, game.Winner)
		assert.Equal(t, entity.Line{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, game.Result.Line)
		bot.AssertExpectations(t)
	})

	t.Run("Error on occupied cell", func(t *testing.T) {
		bot := &mockBotService{}
		manager := NewGameManager(st.Logger, bot, 1)
		manager.CurrentGame().Board = st.Board(
			"X..",
			".O.",
			"...",
		)

		_, err := manager.MakeTurn(1, 1)

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		bot.AssertNotCalled(t, "SelectMove", mock.Anything, mock.Anything)
	})

	t.Run("Error after the game is finished", func(t *testing.T) {
		bot := &mockBotService{}
		manager := NewGameManager(st.Logger, bot, 1)
		manager.CurrentGame().Board = st.Board(
			"XX.",
			"OO.",
			"...",
		)
		_, err := manager.MakeTurn(0, 2)
		require.NoError(t, err)

		_, err = manager.MakeTurn(2, 2)

		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Bot error is returned and the human move is undone", func(t *testing.T) {
		// Given: a bot that fails once, then answers in the center
		bot := &mockBotService{}
		bot.On("SelectMove", mock.AnythingOfType("*entity.Board"), 1).
			Return(entity.Move{}, errSomeError).
			Once()
		bot.On("SelectMove", mock.AnythingOfType("*entity.Board"), 1).
			Return(entity.Move{Row: 1, Col: 1}, nil).
			Once()
		manager := NewGameManager(st.Logger, bot, 1)
		game := manager.CurrentGame()

		// When: the human plays a corner
		_, err := manager.MakeTurn(0, 0)

		// Then: the error surfaces and the board is as before
		require.ErrorIs(t, err, errSomeError)
		assert.Same(t, game, manager.CurrentGame())
		assert.True(t, game.Board.IsEmpty())
		assert.Equal(t, entity.PlayerOne, game.Turn)
		assert.Nil(t, game.LastMove)

		// And: the human can retry the same move
		game, err = manager.MakeTurn(0, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, game.Board.Marked())
		bot.AssertExpectations(t)
	})

	t.Run("Bot move on an occupied cell is rejected", func(t *testing.T) {
		bot := &mockBotService{}
		bot.On("SelectMove", mock.AnythingOfType("*entity.Board"), 1).
			Return(entity.Move{Row: 0, Col: 0}, nil).
			Once()
		manager := NewGameManager(st.Logger, bot, 1)

		game, err := manager.MakeTurn(0, 0)

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, 0, game.Board.Marked())
		assert.Equal(t, entity.PlayerOne, game.Turn)
		bot.AssertExpectations(t)
	})
}

func TestGameManager_SetLevel(t *testing.T) {
	_, st := suite.New(t)

	t.Run("Level is passed to the bot", func(t *testing.T) {
		bot := &mockBotService{}
		bot.On("SelectMove", mock.AnythingOfType("*entity.Board"), 0).
			Return(entity.Move{Row: 2, Col: 2}, nil).
			Once()
		manager := NewGameManager(st.Logger, bot, 1)

		manager.SetLevel(0)
		_, err := manager.MakeTurn(0, 0)

		require.NoError(t, err)
		assert.Equal(t, 0, manager.Level())
		bot.AssertExpectations(t)
	})

	t.Run("Negative level is accepted and searches", func(t *testing.T) {
		// Given: a real bot set to a negative level
		manager := NewGameManager(st.Logger, service.NewBotService(st.Logger), 1)
		manager.SetLevel(-2)

		// When: the human opens in a corner
		game, err := manager.MakeTurn(0, 0)

		// Then: the bot answers with the searched reply, the center
		require.NoError(t, err)
		assert.Equal(t, -2, manager.Level())
		assert.Equal(t, entity.PlayerTwo, game.Board.Cell(1, 1))
	})
}

func TestGameManager_SearchingBotNeverLoses(t *testing.T) {
	_, st := suite.New(t)

	bot := service.NewBotService(st.Logger)
	manager := NewGameManager(st.Logger, bot, 1)

	for seed := range int64(30) {
		// Given: a human playing random legal moves
		rnd := rand.New(rand.NewSource(seed)) //nolint: gosec // it's ok
		game := manager.NewGame()

		// When: the game is played to the end
		for !game.IsFinished() {
			cells := game.Board.EmptyCells()
			move := cells[rnd.Intn(len(cells))]

			var err error
			game, err = manager.MakeTurn(move.Row, move.Col)
			require.NoError(t, err)
		}

		// Then: the human never wins
		assert.NotEqual(t, entity.PlayerOne, game.Winner, "seed %d:\n%s", seed, game.Board)
	}
}
