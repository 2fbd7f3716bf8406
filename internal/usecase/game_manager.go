package usecase

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/pkg"
)

const (
	humanMark = entity.PlayerOne
	botMark   = entity.PlayerTwo
)

type botService interface {
	SelectMove(board *entity.Board, level int) (entity.Move, error)
}

// GameManager runs one match at a time between the human and the bot.
// It is not safe for concurrent use.
type GameManager struct {
	logger *slog.Logger
	bot    botService

	level int
	game  *entity.Game
}

func NewGameManager(logger *slog.Logger, bot botService, level int) *GameManager {
	manager := &GameManager{
		logger: logger.With("component", "game_manager"),
		bot:    bot,
		level:  level,
	}
	manager.NewGame()

	return manager
}

// NewGame drops the current match and starts an empty one.
func (that *GameManager) NewGame() *entity.Game {
	that.game = entity.NewGame(pkg.GenerateGameID())

	that.logger.Info("game started", "gameID", that.game.ID, "level", that.level)

	return that.game
}

func (that *GameManager) CurrentGame() *entity.Game {
	return that.game
}

func (that *GameManager) Level() int {
	return that.level
}

// SetLevel switches the bot: 0 plays random moves, any other level searches.
func (that *GameManager) SetLevel(level int) {
	that.level = level
	that.logger.Info("bot level changed", "gameID", that.game.ID, "level", level)
}

// MakeTurn plays the human move and, if the game goes on, the bot's reply.
// On error the game is left as it was before the call.
func (that *GameManager) MakeTurn(row, col int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", that.game.ID)

	before := that.game.Clone()

	if err := that.game.MakeTurn(humanMark, row, col); err != nil {
		return that.game, fmt.Errorf("failed to make turn: %w", err)
	}

	if that.game.IsFinished() {
		that.logFinished(log)
		return that.game, nil
	}

	move, err := that.bot.SelectMove(that.game.Board, that.level)
	if err != nil {
		*that.game = *before
		return that.game, fmt.Errorf("bot failed to select move: %w", err)
	}

	if err = that.game.MakeTurn(botMark, move.Row, move.Col); err != nil {
		*that.game = *before
		return that.game, fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Debug("turns played", "human", entity.Move{Row: row, Col: col}.String(), "bot", move.String())

	if that.game.IsFinished() {
		that.logFinished(log)
	}

	return that.game, nil
}

func (that *GameManager) logFinished(log *slog.Logger) {
	if that.game.IsDraw() {
		log.Info("game finished", "result", "draw")
		return
	}

	log.Info("game finished", "result", "win", "winner", that.game.Winner.String())
}
