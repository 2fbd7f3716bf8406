package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Game is a single match between the human (PlayerOne) and the bot (PlayerTwo).
type Game struct {
	ID       string
	Board    *Board
	Turn     Cell
	Winner   Cell
	Status   string
	Result   Terminal
	LastMove *Move
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  NewBoard(),
		Turn:   PlayerOne,
		Status: StatusOngoing,
	}
}

func (that *Game) MakeTurn(player Cell, row, col int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != player {
		return fmt.Errorf("%w: %s to move", apperror.ErrNotYourTurn, that.Turn)
	}

	if err := that.Board.Mark(row, col, player); err != nil {
		return fmt.Errorf("failed to mark cell: %w", err)
	}

	that.LastMove = &Move{Row: row, Col: col}
	that.updateGameState()

	if that.IsOngoing() {
		that.Turn = player.Opponent()
	}

	return nil
}

// updateGameState derives status and result from the board.
// The turn of an ongoing game is left to MakeTurn.
func (that *Game) updateGameState() {
	result := that.Board.TerminalState()

	switch result.Outcome {
	case OutcomeWin, OutcomeDraw:
		that.Result = result
		that.Winner = result.Winner
		that.Status = StatusFinished
		that.Turn = Empty
	// game continue
	default:
		that.Status = StatusOngoing
	}
}

// Clone returns a deep copy of the game.
func (that *Game) Clone() *Game {
	clone := *that
	clone.Board = that.Board.Clone()

	if that.LastMove != nil {
		move := *that.LastMove
		clone.LastMove = &move
	}

	return &clone
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Result.Outcome == OutcomeDraw
}
