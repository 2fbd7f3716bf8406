package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

const helpText = `commands:
  <row> <col>  place your mark (X), rows and columns are 0-2
  board        show the board
  level [n]    show or set the bot level (0 = random, other = minimax)
  r, reset     start a new game
  q, quit      leave`

func writeLine(out io.Writer, format string, args ...any) error {
	if _, err := fmt.Fprintf(out, format+"\n", args...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func writeWelcome(out io.Writer, game *entity.Game, level int) error {
	if err := writeLine(out, "tic-tac-toe: you are X, the bot (level %d) is O. type help for commands", level); err != nil {
		return err
	}

	return writeGame(out, game, false)
}

// writeGame prints the board followed by the bot's last move and the game status.
func writeGame(out io.Writer, game *entity.Game, showLastMove bool) error {
	if err := writeLine(out, "%s", renderBoard(game.Board)); err != nil {
		return err
	}

	if showLastMove && game.LastMove != nil && game.Board.Cell(game.LastMove.Row, game.LastMove.Col) == entity.PlayerTwo {
		if err := writeLine(out, "bot played %s", game.LastMove); err != nil {
			return err
		}
	}

	if !game.IsFinished() {
		return writeLine(out, "your move")
	}

	if game.IsDraw() {
		return writeLine(out, "draw. type r to play again")
	}

	who := "you win!"
	if game.Winner == entity.PlayerTwo {
		who = "bot wins."
	}

	return writeLine(out, "%s winning line %s. type r to play again", who, renderLine(game.Result.Line))
}

func renderBoard(board *entity.Board) string {
	var sb strings.Builder

	sb.WriteString("   0 1 2")
	for row := range entity.Size {
		fmt.Fprintf(&sb, "\n%d ", row)
		for col := range entity.Size {
			sb.WriteByte(' ')
			sb.WriteString(board.Cell(row, col).String())
		}
	}

	return sb.String()
}

func renderLine(line entity.Line) string {
	parts := make([]string, 0, len(line))
	for _, move := range line {
		parts = append(parts, move.String())
	}

	return strings.Join(parts, " ")
}
