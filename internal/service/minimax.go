package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

// Scores are from PlayerOne's (the maximizing side's) point of view.
const (
	ScorePlayerOneWins = 1
	ScoreDraw          = 0
	ScorePlayerTwoWins = -1

	worstForMax = -99
	worstForMin = 99
)

// Evaluation is the result of a search. Move is nil on terminal boards.
type Evaluation struct {
	Score int
	Move  *entity.Move
}

// Minimax runs an exhaustive search from board. The maximizing side plays
// PlayerOne, the minimizing side PlayerTwo. Candidates are tried in row-major
// order and only a strictly better score replaces the current best, so ties
// keep the first move found.
func Minimax(board *entity.Board, maximizing bool) Evaluation {
	terminal := board.TerminalState()

	switch {
	case terminal.Outcome == entity.OutcomeWin && terminal.Winner == entity.PlayerOne:
		return Evaluation{Score: ScorePlayerOneWins}
	case terminal.Outcome == entity.OutcomeWin && terminal.Winner == entity.PlayerTwo:
		return Evaluation{Score: ScorePlayerTwoWins}
	case board.IsFull():
		return Evaluation{Score: ScoreDraw}
	}

	player, best := entity.PlayerTwo, worstForMin
	if maximizing {
		player, best = entity.PlayerOne, worstForMax
	}

	var bestMove *entity.Move
	for _, move := range board.EmptyCells() {
		next := board.Clone()
		// EmptyCells only yields empty squares.
		if err := next.Mark(move.Row, move.Col, player); err != nil {
			panic(fmt.Errorf("failed to explore %s: %w", move, err))
		}

		result := Minimax(next, !maximizing)

		if (maximizing && result.Score > best) || (!maximizing && result.Score < best) {
			best = result.Score
			bestMove = &move
		}
	}

	return Evaluation{Score: best, Move: bestMove}
}
