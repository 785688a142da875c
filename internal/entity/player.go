package entity

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-arena/internal/tictactoe"
)

const botIDPrefix = "bot:"

type Player struct {
	ID     string         `json:"id"`
	Mark   tictactoe.Mark `json:"mark,omitempty"`
	GameID string         `json:"game_id,omitempty"`
}

func NewBotPlayer(gameID string, mark tictactoe.Mark) *Player {
	return &Player{
		ID:     botIDPrefix + gameID,
		Mark:   mark,
		GameID: gameID,
	}
}

func (that *Player) IsBot() bool {
	return strings.HasPrefix(that.ID, botIDPrefix)
}

// LeaveGame detaches the player from its game.
func (that *Player) LeaveGame() {
	that.GameID = ""
	that.Mark = tictactoe.NoMark
}
