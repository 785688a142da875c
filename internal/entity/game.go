package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/tictactoe"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"
)

const (
	PrivateType = "private"
	WithBotType = "bot"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

type Game struct {
	ID         string           `json:"id"`
	Board      tictactoe.Board  `json:"board"`
	Turn       tictactoe.Mark   `json:"player_turn"`
	Result     tictactoe.Result `json:"result"`
	Status     string           `json:"status"`
	Round      int              `json:"round"`
	Type       string           `json:"type,omitempty"`
	Difficulty Difficulty       `json:"difficulty,omitempty"`
	History    MoveHistory      `json:"history,omitempty"`
	Players    []*Player        `json:"players,omitempty"`
}

func NewGame(id, gameType string, difficulty Difficulty) *Game {
	return &Game{
		ID:         id,
		Turn:       tictactoe.MarkX,
		Status:     StatusWaiting,
		Round:      1,
		Type:       gameType,
		Difficulty: difficulty,
	}
}

func ParseGameType(value string) (string, error) {
	switch value {
	case PrivateType, WithBotType:
		return value, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownGameType, value)
	}
}

// MakeTurn places mark at cell for the player whose turn it is and advances the game.
// A rejected turn leaves the game unchanged.
func (that *Game) MakeTurn(mark tictactoe.Mark, cell tictactoe.Coordinate) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	board, err := that.Board.ApplyMove(cell, mark)
	if err != nil {
		return fmt.Errorf("failed to apply move: %w", err)
	}

	if that.TracksHistory() {
		that.History = that.History.Append(MoveRecord{Board: that.Board, Cell: cell, Mark: mark})
	}

	that.Board = board
	that.Turn = mark.Opponent()
	that.UpdateGameState()

	return nil
}

func (that *Game) UpdateGameState() {
	that.Result = that.Board.Evaluate()

	if that.Result.IsTerminal() {
		that.Status = StatusFinished
		that.Turn = tictactoe.NoMark
		return
	}

	that.Status = StatusOngoing
}

// Restart starts a new round with the same seats. Only adaptive bot games keep their move history.
func (that *Game) Restart() {
	that.Board = tictactoe.Board{}
	that.Result = tictactoe.Result{}
	that.Turn = tictactoe.MarkX
	that.Round++

	if !that.TracksHistory() {
		that.History = nil
	}

	if len(that.Players) == 2 {
		that.Status = StatusOngoing
	} else {
		that.Status = StatusWaiting
	}
}

// AddPlayer seats a player with the given mark.
func (that *Game) AddPlayer(player *Player, mark tictactoe.Mark) error {
	if len(that.Players) >= 2 {
		return fmt.Errorf("%w: game id %s", apperror.ErrGameIsFull, that.ID)
	}

	player.GameID = that.ID
	player.Mark = mark
	that.Players = append(that.Players, player)

	if len(that.Players) == 2 {
		that.Status = StatusOngoing
	}

	return nil
}

// TracksHistory reports whether moves are recorded for the adaptive tier.
func (that *Game) TracksHistory() bool {
	return that.IsWithBot() && that.Difficulty == AdaptiveDifficulty
}

// MovesPlayed is the number of moves made in the current round.
func (that *Game) MovesPlayed() int {
	return that.Board.Occupied()
}

func (that *Game) BotPlayer() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}

	return nil
}

func (that *Game) IsBotTurn() bool {
	bot := that.BotPlayer()
	return bot != nil && that.IsOngoing() && that.Turn == bot.Mark
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) IsPrivate() bool {
	return that.Type == PrivateType
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}
