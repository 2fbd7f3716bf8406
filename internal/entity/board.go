package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
)

// Size is the side length of the board.
const Size = 3

// Cell is the content of a single square.
type Cell uint8

const (
	Empty Cell = iota
	PlayerOne
	PlayerTwo
)

func (c Cell) String() string {
	switch c {
	case PlayerOne:
		return "X"
	case PlayerTwo:
		return "O"
	default:
		return "."
	}
}

// Opponent returns the other player, Empty stays Empty.
func (c Cell) Opponent() Cell {
	switch c {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return Empty
	}
}

// Move is a (row, column) coordinate, both in [0, Size).
type Move struct {
	Row int
	Col int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}

func (m Move) inBounds() bool {
	return m.Row >= 0 && m.Row < Size && m.Col >= 0 && m.Col < Size
}

// Line is three coordinates forming a row, column or diagonal.
type Line [Size]Move

// Outcome classifies a board position.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeDraw:
		return "draw"
	default:
		return "none"
	}
}

// Terminal is the result of TerminalState. Winner and Line are only set for OutcomeWin.
type Terminal struct {
	Outcome Outcome
	Winner  Cell
	Line    Line
}

func (t Terminal) IsOver() bool {
	return t.Outcome != OutcomeNone
}

// WinLines is ordered the way TerminalState reports them:
// columns left to right, rows top to bottom, descending then ascending diagonal.
var WinLines = [...]Line{
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{2, 0}, {1, 1}, {0, 2}},
}

var ErrInvalidLayout = errors.New("invalid board layout")

// Board is the 3x3 grid plus a cached count of marked squares.
// The zero value is an empty board. Boards are comparable.
type Board struct {
	squares [Size][Size]Cell
	marked  int
}

func NewBoard() *Board {
	return &Board{}
}

// ParseBoard builds a board from Size rows of Size characters: X, O or '.'.
func ParseBoard(rows ...string) (*Board, error) {
	if len(rows) != Size {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidLayout, Size, len(rows))
	}

	board := NewBoard()
	for row, line := range rows {
		if len(line) != Size {
			return nil, fmt.Errorf("%w: row %d has %d cells", ErrInvalidLayout, row, len(line))
		}

		for col, char := range strings.ToUpper(line) {
			var player Cell
			switch char {
			case 'X':
				player = PlayerOne
			case 'O':
				player = PlayerTwo
			case '.':
				continue
			default:
				return nil, fmt.Errorf("%w: unexpected %q at %s", ErrInvalidLayout, char, Move{row, col})
			}

			if err := board.Mark(row, col, player); err != nil {
				return nil, err
			}
		}
	}

	return board, nil
}

// Mark places player on an empty square. The board is untouched on error.
func (that *Board) Mark(row, col int, player Cell) error {
	move := Move{Row: row, Col: col}

	if !move.inBounds() {
		return fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, move)
	}

	if player != PlayerOne && player != PlayerTwo {
		return fmt.Errorf("%w: %d", apperror.ErrUnknownPlayer, player)
	}

	if that.squares[row][col] != Empty {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, move)
	}

	that.squares[row][col] = player
	that.marked++

	return nil
}

func (that *Board) IsEmptyCell(row, col int) bool {
	if !(Move{Row: row, Col: col}).inBounds() {
		return false
	}

	return that.squares[row][col] == Empty
}

// Cell returns the content of a square, Empty when out of bounds.
func (that *Board) Cell(row, col int) Cell {
	if !(Move{Row: row, Col: col}).inBounds() {
		return Empty
	}

	return that.squares[row][col]
}

// EmptyCells lists empty squares in row-major order.
func (that *Board) EmptyCells() []Move {
	cells := make([]Move, 0, Size*Size-that.marked)
	for row := range Size {
		for col := range Size {
			if that.squares[row][col] == Empty {
				cells = append(cells, Move{Row: row, Col: col})
			}
		}
	}

	return cells
}

func (that *Board) Marked() int {
	return that.marked
}

func (that *Board) IsFull() bool {
	return that.marked == Size*Size
}

func (that *Board) IsEmpty() bool {
	return that.marked == 0
}

// TerminalState reports the first completed line in WinLines order,
// a draw when the board is full, OutcomeNone otherwise.
func (that *Board) TerminalState() Terminal {
	for _, line := range WinLines {
		a := that.squares[line[0].Row][line[0].Col]
		b := that.squares[line[1].Row][line[1].Col]
		c := that.squares[line[2].Row][line[2].Col]

		if a != Empty && a == b && b == c {
			return Terminal{Outcome: OutcomeWin, Winner: a, Line: line}
		}
	}

	if that.IsFull() {
		return Terminal{Outcome: OutcomeDraw}
	}

	return Terminal{Outcome: OutcomeNone}
}

func (that *Board) Clone() *Board {
	clone := *that
	return &clone
}

func (that *Board) String() string {
	var sb strings.Builder
	for row := range Size {
		if row > 0 {
			sb.WriteByte('\n')
		}

		for col := range Size {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(that.squares[row][col].String())
		}
	}

	return sb.String()
}
