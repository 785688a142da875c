package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

type ResultRepository interface {
	Save(ctx context.Context, result *entity.GameResult) error
	Stats(ctx context.Context, playerID string) (entity.Stats, error)
	ListByPlayer(ctx context.Context, playerID string, limit int) ([]entity.GameResult, error)
}

type resultRepository struct {
	conn *sql.DB
}

func NewResultRepository(conn *sql.DB) ResultRepository {
	return &resultRepository{
		conn: conn,
	}
}

func (that *resultRepository) Save(ctx context.Context, result *entity.GameResult) error {
	query := `INSERT INTO results (game_id, round, player_id, game_type, difficulty, outcome, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query,
		result.GameID,
		result.Round,
		result.PlayerID,
		result.GameType,
		string(result.Difficulty),
		string(result.Outcome),
		result.FinishedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("can't save result: %w", err)
	}

	return nil
}

func (that *resultRepository) Stats(ctx context.Context, playerID string) (entity.Stats, error) {
	query := `SELECT
			COALESCE(SUM(outcome = 'win'), 0),
			COALESCE(SUM(outcome = 'loss'), 0),
			COALESCE(SUM(outcome = 'draw'), 0)
		FROM results WHERE player_id = ?`

	stats := entity.Stats{PlayerID: playerID}

	err := that.conn.QueryRowContext(ctx, query, playerID).Scan(&stats.Wins, &stats.Losses, &stats.Draws)
	if err != nil {
		return entity.Stats{}, fmt.Errorf("can't count results: %w", err)
	}

	return stats, nil
}

// ListByPlayer returns the player's latest results, newest first.
func (that *resultRepository) ListByPlayer(ctx context.Context, playerID string, limit int) ([]entity.GameResult, error) {
	query := `SELECT game_id, round, player_id, game_type, difficulty, outcome, finished_at
		FROM results WHERE player_id = ? ORDER BY id DESC LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("can't list results: %w", err)
	}
	defer rows.Close()

	var results []entity.GameResult
	for rows.Next() {
		var (
			result     entity.GameResult
			difficulty string
			outcome    string
			finishedAt string
		)

		if err = rows.Scan(&result.GameID, &result.Round, &result.PlayerID, &result.GameType, &difficulty, &outcome, &finishedAt); err != nil {
			return nil, fmt.Errorf("can't scan result: %w", err)
		}

		result.Difficulty = entity.Difficulty(difficulty)
		result.Outcome = entity.Outcome(outcome)

		if result.FinishedAt, err = time.Parse(time.RFC3339Nano, finishedAt); err != nil {
			return nil, fmt.Errorf("can't parse finished_at: %w", err)
		}

		results = append(results, result)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read results: %w", err)
	}

	return results, nil
}
