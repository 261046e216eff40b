package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	BoardSize = 9
	rowSize   = 3

	rowSeparator = "---+---+---"
)

var (
	ErrInvalidCell = errors.New("invalid cell index")
	ErrInvalidMark = errors.New("invalid player mark")

	WinCombos = [8][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

// Result classifies a board after a move.
type Result uint8

const (
	InProgress Result = iota
	Win
	Draw
)

func (r Result) String() string {
	switch r {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}

type Outcome struct {
	Result Result
	Winner Mark
}

func (that Outcome) IsFinished() bool {
	return that.Result != InProgress
}

// Board is a 3x3 grid stored row-major: index = row*3 + column.
type Board [BoardSize]Mark

func NewBoard() *Board {
	return &Board{}
}

// Occupied - reports whether the cell holds a mark. cell must be in [0, 8].
func (that *Board) Occupied(cell int) bool {
	return that[cell] != EmptyCell
}

func (that *Board) Place(cell int, mark Mark) error {
	if cell < 0 || cell >= len(that) {
		return fmt.Errorf("%w: cell %d", ErrInvalidCell, cell)
	}

	if !mark.IsPlayer() {
		return fmt.Errorf("%w: %d", ErrInvalidMark, mark)
	}

	if that.Occupied(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that[cell] = mark

	return nil
}

func (that *Board) HasLine(mark Mark) bool {
	if !mark.IsPlayer() {
		return false
	}

	for _, combo := range WinCombos {
		if that[combo[0]] == mark && that[combo[1]] == mark && that[combo[2]] == mark {
			return true
		}
	}

	return false
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// Evaluate - checks the board from the point of view of the mark that just moved.
// A win takes precedence over a full board.
func (that *Board) Evaluate(mark Mark) Outcome {
	switch {
	case that.HasLine(mark):
		return Outcome{Result: Win, Winner: mark}
	case that.IsFull():
		return Outcome{Result: Draw}
	default:
		return Outcome{Result: InProgress}
	}
}

func (that *Board) Marks() int {
	count := 0
	for _, cell := range that {
		if cell != EmptyCell {
			count++
		}
	}

	return count
}

func (that *Board) Render() string {
	var sb strings.Builder

	sb.WriteString("\n")
	for row := 0; row < rowSize; row++ {
		i := row * rowSize
		fmt.Fprintf(&sb, " %s | %s | %s \n", that[i], that[i+1], that[i+2])

		if row < rowSize-1 {
			sb.WriteString(rowSeparator + "\n")
		}
	}
	sb.WriteString("\n")

	return sb.String()
}
