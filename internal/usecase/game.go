package usecase

import (
	"context"
	"time"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/tictactoe"
)

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type resultRepo interface {
	Save(ctx context.Context, result *entity.GameResult) error
	Stats(ctx context.Context, playerID string) (entity.Stats, error)
	ListByPlayer(ctx context.Context, playerID string, limit int) ([]entity.GameResult, error)
}

// notifier pushes game state that changed outside of a player's request.
type notifier interface {
	GameUpdated(ctx context.Context, game *entity.Game)
}

type botPlayer interface {
	MakeTurn(game *entity.Game) (tictactoe.Coordinate, error)
}

type botScheduler interface {
	Schedule(gameID string, delay time.Duration, fn func())
	Cancel(gameID string) bool
}
