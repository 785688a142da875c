package entity

import (
	"time"

	"github.com/rocketscienceinc/tictactoe-arena/internal/tictactoe"
)

// Outcome is a finished round seen from one player.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
	OutcomeDraw Outcome = "draw"
)

type GameResult struct {
	GameID     string     `json:"game_id"`
	Round      int        `json:"round"`
	PlayerID   string     `json:"player_id"`
	GameType   string     `json:"game_type"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Outcome    Outcome    `json:"outcome"`
	FinishedAt time.Time  `json:"finished_at"`
}

type Stats struct {
	PlayerID string `json:"player_id"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Draws    int    `json:"draws"`
}

func (that Stats) Played() int {
	return that.Wins + that.Losses + that.Draws
}

// OutcomeFor reports how the finished round ended for mark. ok is false while the round is running.
func (that *Game) OutcomeFor(mark tictactoe.Mark) (Outcome, bool) {
	switch {
	case that.Result.Outcome == tictactoe.OutcomeDraw:
		return OutcomeDraw, true
	case that.Result.Outcome != tictactoe.OutcomeWin:
		return "", false
	case that.Result.Winner == mark:
		return OutcomeWin, true
	default:
		return OutcomeLoss, true
	}
}

// Results returns one record per human player of a finished round.
func (that *Game) Results(finishedAt time.Time) []GameResult {
	var results []GameResult

	for _, player := range that.Players {
		if player.IsBot() {
			continue
		}

		outcome, ok := that.OutcomeFor(player.Mark)
		if !ok {
			continue
		}

		results = append(results, GameResult{
			GameID:     that.ID,
			Round:      that.Round,
			PlayerID:   player.ID,
			GameType:   that.Type,
			Difficulty: that.Difficulty,
			Outcome:    outcome,
			FinishedAt: finishedAt,
		})
	}

	return results
}
