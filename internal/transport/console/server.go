package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

// maxLineLength bounds a single input line. Longer lines are dropped.
const maxLineLength = 1024

var (
	errQuit        = errors.New("quit requested")
	errLineTooLong = errors.New("input line too long")
)

type uGame interface {
	NewGame() *entity.Game
	CurrentGame() *entity.Game
	MakeTurn(row, col int) (*entity.Game, error)

	Level() int
	SetLevel(level int)
}

type handler func(ctx context.Context, args []string, out io.Writer) error

type Server struct {
	logger *slog.Logger
	uGame  uGame
	prompt string

	handlers map[string]handler
}

func New(logger *slog.Logger, uGame uGame, prompt string) *Server {
	server := &Server{
		logger: logger.With("component", "console"),
		uGame:  uGame,
		prompt: prompt,

		handlers: make(map[string]handler),
	}

	server.handlers["r"] = server.handleReset
	server.handlers["reset"] = server.handleReset
	server.handlers["q"] = server.handleQuit
	server.handlers["quit"] = server.handleQuit
	server.handlers["board"] = server.handleBoard
	server.handlers["level"] = server.handleLevel
	server.handlers["help"] = server.handleHelp

	return server
}

// Start - runs the read/eval loop until quit, end of input or ctx is done.
func (that *Server) Start(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Start")

	done := make(chan struct{})
	defer close(done)

	lines := make(chan inputLine)
	readErr := make(chan error, 1)
	go readLines(in, lines, readErr, done)

	if err := writeWelcome(out, that.uGame.CurrentGame(), that.uGame.Level()); err != nil {
		return err
	}

	for {
		if err := that.writePrompt(out); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			log.Info("context canceled, leaving console")
			return nil
		case err := <-readErr:
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			log.Info("input closed")
			return nil
		case line := <-lines:
			if line.tooLong {
				if err := writeLine(out, "line longer than %d characters ignored", maxLineLength); err != nil {
					return err
				}

				continue
			}

			err := that.handleLine(ctx, line.text, out)
			if errors.Is(err, errQuit) {
				return nil
			}

			if err != nil {
				return err
			}
		}
	}
}

func (that *Server) handleLine(ctx context.Context, line string, out io.Writer) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	if handle, ok := that.handlers[strings.ToLower(fields[0])]; ok {
		return handle(ctx, fields[1:], out)
	}

	if len(fields) == 2 {
		return that.handleMove(ctx, fields, out)
	}

	return writeLine(out, "unknown command %q, type help", fields[0])
}

func (that *Server) writePrompt(out io.Writer) error {
	if _, err := io.WriteString(out, that.prompt); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}

	return nil
}

type inputLine struct {
	text    string
	tooLong bool
}

func readLines(in io.Reader, lines chan<- inputLine, readErr chan<- error, done <-chan struct{}) {
	reader := bufio.NewReaderSize(in, maxLineLength)

	send := func(line inputLine) bool {
		select {
		case lines <- line:
			return true
		case <-done:
			return false
		}
	}

	for {
		text, err := readLine(reader)
		if errors.Is(err, errLineTooLong) {
			if !send(inputLine{tooLong: true}) {
				return
			}

			continue
		}

		if (err == nil || text != "") && !send(inputLine{text: text}) {
			return
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				err = nil
			}

			readErr <- err

			return
		}
	}
}

// readLine returns the next line without its terminator.
// A line that does not fit the reader's buffer is drained and reported as errLineTooLong.
func readLine(reader *bufio.Reader) (string, error) {
	chunk, err := reader.ReadSlice('\n')
	if !errors.Is(err, bufio.ErrBufferFull) {
		return strings.TrimRight(string(chunk), "\r\n"), err
	}

	for errors.Is(err, bufio.ErrBufferFull) {
		_, err = reader.ReadSlice('\n')
	}

	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}

	return "", errLineTooLong
}
