package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

const maxWaitDuration = 30 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// Board parses rows with entity.ParseBoard and fails the test on error.
func (that *Suite) Board(rows ...string) *entity.Board {
	that.Helper()

	board, err := entity.ParseBoard(rows...)
	if err != nil {
		that.Fatalf("could not parse board: %v", err)
	}

	return board
}
