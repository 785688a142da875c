package entity

import "github.com/rocketscienceinc/tictactoe-arena/internal/tictactoe"

// MoveRecord is one played move together with the board it was played on.
type MoveRecord struct {
	Board tictactoe.Board      `json:"board"`
	Cell  tictactoe.Coordinate `json:"cell"`
	Mark  tictactoe.Mark       `json:"mark"`
}

// MoveHistory is append-only. Readers get copies.
type MoveHistory []MoveRecord

func (that MoveHistory) Append(record MoveRecord) MoveHistory {
	return append(that, record)
}

// Snapshot returns a copy safe to hand to a reader while the owner keeps appending.
func (that MoveHistory) Snapshot() MoveHistory {
	return append(MoveHistory(nil), that...)
}

// CellsOf returns the coordinates played by mark, oldest first.
func (that MoveHistory) CellsOf(mark tictactoe.Mark) []tictactoe.Coordinate {
	var cells []tictactoe.Coordinate
	for _, record := range that {
		if record.Mark == mark {
			cells = append(cells, record.Cell)
		}
	}

	return cells
}
