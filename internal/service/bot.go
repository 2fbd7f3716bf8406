package service

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

// LevelRandom makes the bot pick uniformly among empty cells.
// Any other level runs the full search.
const LevelRandom = 0

type BotService interface {
	SelectMove(board *entity.Board, level int) (entity.Move, error)
	ChooseRandom(board *entity.Board) (entity.Move, error)
}

type BotOption func(*botService)

// WithRandom replaces the source used by ChooseRandom. intn must return a value in [0, n).
func WithRandom(intn func(n int) int) BotOption {
	return func(that *botService) {
		that.intn = intn
	}
}

type botService struct {
	logger *slog.Logger
	intn   func(n int) int
}

func NewBotService(logger *slog.Logger, opts ...BotOption) BotService {
	bot := &botService{
		logger: logger.With("component", "bot"),
		intn:   rand.Intn, //nolint: gosec // it's ok
	}

	for _, opt := range opts {
		opt(bot)
	}

	return bot
}

// SelectMove picks the bot's (PlayerTwo's) next move.
func (that *botService) SelectMove(board *entity.Board, level int) (entity.Move, error) {
	log := that.logger.With("method", "SelectMove", "level", level)

	if board.TerminalState().IsOver() {
		return entity.Move{}, apperror.ErrGameFinished
	}

	if level == LevelRandom {
		move, err := that.ChooseRandom(board)
		if err != nil {
			return entity.Move{}, fmt.Errorf("failed to choose random move: %w", err)
		}

		log.Debug("bot move", "move", move.String(), "eval", "random")

		return move, nil
	}

	result := Minimax(board, false)
	if result.Move == nil {
		return entity.Move{}, apperror.ErrNoMove
	}

	log.Debug("bot move", "move", result.Move.String(), "eval", result.Score)

	return *result.Move, nil
}

func (that *botService) ChooseRandom(board *entity.Board) (entity.Move, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return entity.Move{}, apperror.ErrNoEmptyCells
	}

	return availableCells[that.intn(len(availableCells))], nil
}
