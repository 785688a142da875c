package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
)

const BoardSize = 3

type Outcome string

const (
	OutcomeNone Outcome = ""
	OutcomeWin  Outcome = "win"
	OutcomeDraw Outcome = "draw"
)

// WinLines lists every line in scan order: rows, columns, main diagonal, anti-diagonal.
var WinLines = [8][3]Coordinate{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Result is the terminal state of a board.
type Result struct {
	Outcome Outcome      `json:"outcome,omitempty"`
	Winner  Mark         `json:"winner,omitempty"`
	Line    []Coordinate `json:"line,omitempty"`
}

func (that Result) IsTerminal() bool {
	return that.Outcome == OutcomeWin || that.Outcome == OutcomeDraw
}

// Board is a row-major 3x3 grid. It is a value type: copying a Board copies its cells.
type Board [BoardSize][BoardSize]Mark

func (that Board) At(c Coordinate) Mark {
	return that[c.Row][c.Col]
}

// ApplyMove returns a copy of the board with m placed at c.
func (that Board) ApplyMove(c Coordinate, m Mark) (Board, error) {
	if !c.Valid() {
		return that, fmt.Errorf("%w: cell %s is out of range", apperror.ErrInvalidMove, c)
	}

	if !m.IsPlayer() {
		return that, fmt.Errorf("%w: mark %d is not a player mark", apperror.ErrInvalidMove, m)
	}

	if that[c.Row][c.Col] != NoMark {
		return that, fmt.Errorf("%w: cell %s is already occupied", apperror.ErrInvalidMove, c)
	}

	next := that
	next[c.Row][c.Col] = m

	return next, nil
}

// Evaluate reports the first complete line in WinLines order, a draw on a full board, or no result.
func (that Board) Evaluate() Result {
	for _, line := range WinLines {
		a, b, c := that.At(line[0]), that.At(line[1]), that.At(line[2])
		if a != NoMark && a == b && b == c {
			return Result{
				Outcome: OutcomeWin,
				Winner:  a,
				Line:    []Coordinate{line[0], line[1], line[2]},
			}
		}
	}

	// the game will continue until all the squares are full
	if that.IsFull() {
		return Result{Outcome: OutcomeDraw}
	}

	return Result{Outcome: OutcomeNone}
}

func (that Board) EmptyCells() []Coordinate {
	cells := make([]Coordinate, 0, BoardSize*BoardSize)
	for row := range BoardSize {
		for col := range BoardSize {
			if that[row][col] == NoMark {
				cells = append(cells, Coordinate{Row: row, Col: col})
			}
		}
	}

	return cells
}

func (that Board) IsFull() bool {
	return that.Count(NoMark) == 0
}

func (that Board) Count(m Mark) int {
	count := 0
	for row := range BoardSize {
		for col := range BoardSize {
			if that[row][col] == m {
				count++
			}
		}
	}

	return count
}

// Occupied returns the number of marks on the board.
func (that Board) Occupied() int {
	return BoardSize*BoardSize - that.Count(NoMark)
}

// NextMark returns the mark to move under strict alternation starting with X.
func (that Board) NextMark() Mark {
	if that.Count(MarkX) > that.Count(MarkO) {
		return MarkO
	}

	return MarkX
}

// FindWinningMove tries every empty cell one ply deep and returns the first one that wins for m.
func FindWinningMove(board Board, m Mark) (Coordinate, bool) {
	for _, cell := range board.EmptyCells() {
		next, err := board.ApplyMove(cell, m)
		if err != nil {
			continue
		}

		if result := next.Evaluate(); result.Outcome == OutcomeWin && result.Winner == m {
			return cell, true
		}
	}

	return Coordinate{}, false
}
