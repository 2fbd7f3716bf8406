package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
)

func (that *Server) handleMove(_ context.Context, args []string, out io.Writer) error {
	log := that.logger.With("method", "handleMove")

	row, rowErr := strconv.Atoi(args[0])
	col, colErr := strconv.Atoi(args[1])
	if rowErr != nil || colErr != nil {
		return writeLine(out, "expected \"<row> <col>\", got %q %q", args[0], args[1])
	}

	game, err := that.uGame.MakeTurn(row, col)
	switch {
	case errors.Is(err, apperror.ErrGameFinished):
		return writeLine(out, "the game is over, type r to play again")
	case errors.Is(err, apperror.ErrInvalidMove):
		return writeLine(out, "illegal move %d %d: %s", row, col, describe(err))
	case err != nil:
		log.Error("failed to make turn", "error", err)
		return writeLine(out, "something went wrong: %s", err)
	}

	return writeGame(out, game, true)
}

func (that *Server) handleReset(_ context.Context, _ []string, out io.Writer) error {
	game := that.uGame.NewGame()

	if err := writeLine(out, "new game"); err != nil {
		return err
	}

	return writeGame(out, game, false)
}

func (that *Server) handleQuit(_ context.Context, _ []string, out io.Writer) error {
	if err := writeLine(out, "bye"); err != nil {
		return err
	}

	return errQuit
}

func (that *Server) handleBoard(_ context.Context, _ []string, out io.Writer) error {
	return writeGame(out, that.uGame.CurrentGame(), false)
}

func (that *Server) handleLevel(_ context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return writeLine(out, "bot level is %d", that.uGame.Level())
	}

	level, err := strconv.Atoi(args[0])
	if err != nil {
		return writeLine(out, "level must be a number, got %q", args[0])
	}

	that.uGame.SetLevel(level)

	return writeLine(out, "bot level is %d", level)
}

func (that *Server) handleHelp(_ context.Context, _ []string, out io.Writer) error {
	return writeLine(out, "%s", helpText)
}

// describe returns the most specific sentinel message of err.
func describe(err error) string {
	for _, known := range []error{
		apperror.ErrCellOccupied,
		apperror.ErrOutOfBounds,
		apperror.ErrNotYourTurn,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	return fmt.Sprint(err)
}
