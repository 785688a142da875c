package apperror

import "errors"

var (
	ErrInvalidMove       = errors.New("invalid move")
	ErrNoLegalMove       = errors.New("no legal move")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrUnknownGameType   = errors.New("unknown game type")

	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrGameIsFull       = errors.New("game already has two players")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrNotInGame        = errors.New("player is not in a game")
	ErrAlreadyInGame    = errors.New("player is already in another game")
	ErrInvalidRoomCode  = errors.New("invalid room code")

	ErrGameNotFound   = errors.New("game not found")
	ErrPlayerNotFound = errors.New("player not found")
)
