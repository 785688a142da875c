package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
)

// Difficulty names a bot tier. Only equality is meaningful.
type Difficulty string

const (
	EasyDifficulty     Difficulty = "easy"
	MediumDifficulty   Difficulty = "medium"
	HardDifficulty     Difficulty = "hard"
	AdaptiveDifficulty Difficulty = "adaptive"
)

func ParseDifficulty(value string) (Difficulty, error) {
	switch d := Difficulty(value); d {
	case EasyDifficulty, MediumDifficulty, HardDifficulty, AdaptiveDifficulty:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, value)
	}
}
