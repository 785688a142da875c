package tictactoe

import (
	"errors"
	"fmt"
)

// Mark is a player's token. The zero value marks an empty cell.
type Mark uint8

const (
	NoMark Mark = iota
	MarkX
	MarkO
)

var ErrUnknownMark = errors.New("unknown mark")

// Opponent returns the other player's mark. NoMark has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return NoMark
	}
}

// IsPlayer reports whether the mark belongs to one of the two players.
func (that Mark) IsPlayer() bool {
	return that == MarkX || that == MarkO
}

func (that Mark) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return ""
	}
}

func (that Mark) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Mark) UnmarshalText(text []byte) error {
	switch string(text) {
	case "X":
		*that = MarkX
	case "O":
		*that = MarkO
	case "":
		*that = NoMark
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMark, text)
	}

	return nil
}
