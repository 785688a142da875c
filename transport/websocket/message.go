package websocket

import (
	"encoding/json"
	"errors"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/tictactoe"
)

const (
	actionConnect     = "connect"
	actionGameNew     = "game:new"
	actionGameJoin    = "game:join"
	actionGameTurn    = "game:turn"
	actionGameRestart = "game:restart"
	actionGameLeave   = "game:leave"
	actionGameUpdate  = "game:update"
	actionPing        = "ping"
	actionError       = "error"
)

const internalErrorMessage = "internal server error"

var (
	errPlayerRequired = errors.New("player is required")
	errGameRequired   = errors.New("game is required")
	errCellRequired   = errors.New("cell is required")
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	Player *entity.Player        `json:"player,omitempty"`
	Game   *entity.Game          `json:"game,omitempty"`
	Cell   *tictactoe.Coordinate `json:"cell,omitempty"`
	Error  string                `json:"error,omitempty"`
}

// publicErrors are reported to the client as is. Anything else is logged and hidden.
var publicErrors = []error{
	errPlayerRequired,
	errGameRequired,
	errCellRequired,
	apperror.ErrInvalidMove,
	apperror.ErrUnknownDifficulty,
	apperror.ErrUnknownGameType,
	apperror.ErrGameFinished,
	apperror.ErrGameIsNotStarted,
	apperror.ErrGameIsFull,
	apperror.ErrNotYourTurn,
	apperror.ErrNotInGame,
	apperror.ErrAlreadyInGame,
	apperror.ErrInvalidRoomCode,
	apperror.ErrGameNotFound,
	apperror.ErrPlayerNotFound,
}

func errorMessage(err error) string {
	for _, public := range publicErrors {
		if errors.Is(err, public) {
			return public.Error()
		}
	}

	return internalErrorMessage
}

func encode(action string, payload Payload) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return json.Marshal(Message{Action: action, Payload: body})
}

// gameView is the game as clients see it. Move history stays on the server.
func gameView(game *entity.Game) *entity.Game {
	if game == nil {
		return nil
	}

	view := *game
	view.History = nil

	return &view
}
