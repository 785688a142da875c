package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-arena/internal/tictactoe"
)

const (
	roomCodeAttempts = 10
	botTurnTimeout   = 5 * time.Second
	maxResultsLimit  = 50
)

var ErrNoFreeRoomCode = errors.New("no free room code")

type GameManager struct {
	logger     *slog.Logger
	playerRepo playerRepo
	gameRepo   gameRepo
	resultRepo resultRepo

	bot       botPlayer
	scheduler botScheduler
	notifier  notifier
	botDelay  time.Duration

	locks gameLocks
	now   func() time.Time
}

func NewGameManager(
	logger *slog.Logger,
	playerRepo playerRepo,
	gameRepo gameRepo,
	resultRepo resultRepo,
	bot botPlayer,
	scheduler botScheduler,
	notifier notifier,
	botDelay time.Duration,
) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		playerRepo: playerRepo,
		gameRepo:   gameRepo,
		resultRepo: resultRepo,

		bot:       bot,
		scheduler: scheduler,
		notifier:  notifier,
		botDelay:  botDelay,

		locks: gameLocks{locks: make(map[string]*refLock)},
		now:   time.Now,
	}
}

func (that *GameManager) GetOrCreatePlayer(ctx context.Context, id string) (*entity.Player, error) {
	if id == "" {
		player, err := that.createPlayer(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create new player: %w", err)
		}

		return player, nil
	}

	player, err := that.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

// CreateGame opens a private room or a game against the bot. The creator plays X.
// A player whose game is still running gets that game back.
func (that *GameManager) CreateGame(ctx context.Context, playerID, gameType string, difficulty entity.Difficulty) (*entity.Game, error) {
	log := that.logger.With("method", "CreateGame", "playerID", playerID)

	gameType, err := entity.ParseGameType(gameType)
	if err != nil {
		return nil, err
	}

	if gameType == entity.WithBotType {
		if difficulty, err = entity.ParseDifficulty(string(difficulty)); err != nil {
			return nil, err
		}
	} else {
		difficulty = ""
	}

	unlockPlayer := that.locks.lock(playerLockKey(playerID))
	defer unlockPlayer()

	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	current, err := that.currentGame(ctx, player)
	if err != nil {
		return nil, err
	}

	if current != nil {
		log.Info("player is already in game", "gameID", current.ID)
		return current, nil
	}

	gameID, err := that.newGameID(ctx)
	if err != nil {
		return nil, err
	}

	game := entity.NewGame(gameID, gameType, difficulty)
	if err = game.AddPlayer(player, tictactoe.MarkX); err != nil {
		return nil, fmt.Errorf("failed to seat creator: %w", err)
	}

	if game.IsWithBot() {
		if err = game.AddPlayer(entity.NewBotPlayer(gameID, tictactoe.MarkO), tictactoe.MarkO); err != nil {
			return nil, fmt.Errorf("failed to seat bot: %w", err)
		}
	}

	if err = that.updatePlayer(ctx, player); err != nil {
		return nil, err
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	log.Info("game created", "gameID", game.ID, "type", game.Type, "difficulty", game.Difficulty)

	return game, nil
}

// JoinGame seats the player as O in a waiting private room.
func (that *GameManager) JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error) {
	log := that.logger.With("method", "JoinGame", "playerID", playerID)

	gameID = strings.ToUpper(strings.TrimSpace(gameID))
	if !pkg.IsRoomCode(gameID) {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidRoomCode, gameID)
	}

	unlockPlayer := that.locks.lock(playerLockKey(playerID))
	defer unlockPlayer()

	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if player.GameID == gameID {
		return that.getGameByID(ctx, gameID)
	}

	current, err := that.currentGame(ctx, player)
	if err != nil {
		return nil, err
	}

	if current != nil {
		return nil, fmt.Errorf("%w: %s", apperror.ErrAlreadyInGame, current.ID)
	}

	unlock := that.locks.lock(gameID)
	defer unlock()

	game, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err = game.AddPlayer(player, tictactoe.MarkO); err != nil {
		return nil, fmt.Errorf("failed to join game: %w", err)
	}

	if err = that.updatePlayer(ctx, player); err != nil {
		return nil, err
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	log.Info("player joined game", "gameID", game.ID)

	return game, nil
}

// MakeTurn applies the player's move. In bot games the reply is scheduled after the think delay.
func (that *GameManager) MakeTurn(ctx context.Context, playerID string, cell tictactoe.Coordinate) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "playerID", playerID)

	player, err := that.getSeatedPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	unlock := that.locks.lock(player.GameID)
	defer unlock()

	game, err := that.getGameByID(ctx, player.GameID)
	if err != nil {
		return nil, err
	}

	if err = game.MakeTurn(player.Mark, cell); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	log.Debug("turn made", "gameID", game.ID, "cell", cell.String())

	if game.IsFinished() {
		that.recordResults(ctx, game)
		return game, nil
	}

	if game.IsBotTurn() {
		that.scheduleBotTurn(game)
	}

	return game, nil
}

// RestartGame starts the next round of the player's game. A pending bot move is dropped.
func (that *GameManager) RestartGame(ctx context.Context, playerID string) (*entity.Game, error) {
	log := that.logger.With("method", "RestartGame", "playerID", playerID)

	player, err := that.getSeatedPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	unlock := that.locks.lock(player.GameID)
	defer unlock()

	game, err := that.getGameByID(ctx, player.GameID)
	if err != nil {
		return nil, err
	}

	if that.scheduler.Cancel(game.ID) {
		log.Debug("pending bot move cancelled", "gameID", game.ID)
	}

	game.Restart()

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	log.Info("game restarted", "gameID", game.ID, "round", game.Round)

	return game, nil
}

// LeaveGame ends the player's game for everyone in it.
func (that *GameManager) LeaveGame(ctx context.Context, playerID string) (*entity.Game, error) {
	log := that.logger.With("method", "LeaveGame", "playerID", playerID)

	player, err := that.getSeatedPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	unlock := that.locks.lock(player.GameID)
	defer unlock()

	game, err := that.getGameByID(ctx, player.GameID)
	if errors.Is(err, apperror.ErrGameNotFound) {
		player.LeaveGame()
		if err = that.updatePlayer(ctx, player); err != nil {
			return nil, err
		}

		return nil, apperror.ErrNotInGame
	}

	if err != nil {
		return nil, err
	}

	that.scheduler.Cancel(game.ID)
	that.deleteGame(ctx, game)

	log.Info("player left game", "gameID", game.ID)

	return game, nil
}

func (that *GameManager) GetGameByPlayerID(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.getSeatedPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	return that.getGameByID(ctx, player.GameID)
}

func (that *GameManager) GetGameByID(ctx context.Context, gameID string) (*entity.Game, error) {
	return that.getGameByID(ctx, strings.ToUpper(strings.TrimSpace(gameID)))
}

func (that *GameManager) PlayerStats(ctx context.Context, playerID string) (entity.Stats, error) {
	if _, err := that.getPlayerByID(ctx, playerID); err != nil {
		return entity.Stats{}, err
	}

	stats, err := that.resultRepo.Stats(ctx, playerID)
	if err != nil {
		return entity.Stats{}, fmt.Errorf("failed to get stats: %w", err)
	}

	return stats, nil
}

// PlayerResults returns up to limit of the player's latest finished rounds, newest first.
func (that *GameManager) PlayerResults(ctx context.Context, playerID string, limit int) ([]entity.GameResult, error) {
	if _, err := that.getPlayerByID(ctx, playerID); err != nil {
		return nil, err
	}

	if limit <= 0 || limit > maxResultsLimit {
		limit = maxResultsLimit
	}

	results, err := that.resultRepo.ListByPlayer(ctx, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	return results, nil
}

func (that *GameManager) scheduleBotTurn(game *entity.Game) {
	gameID, round, movesPlayed := game.ID, game.Round, game.MovesPlayed()

	that.scheduler.Schedule(gameID, that.botDelay, func() {
		that.playBotTurn(gameID, round, movesPlayed)
	})
}

// playBotTurn makes the scheduled bot move unless the game moved on since it was scheduled.
func (that *GameManager) playBotTurn(gameID string, round, movesPlayed int) {
	log := that.logger.With("method", "playBotTurn", "gameID", gameID)

	ctx, cancel := context.WithTimeout(context.Background(), botTurnTimeout)
	defer cancel()

	unlock := that.locks.lock(gameID)
	defer unlock()

	game, err := that.getGameByID(ctx, gameID)
	if err != nil {
		log.Warn("game is gone, dropping bot move", "error", err)
		return
	}

	if game.Round != round || game.MovesPlayed() != movesPlayed || !game.IsBotTurn() {
		log.Debug("discarding stale bot move", "round", game.Round, "movesPlayed", game.MovesPlayed())
		return
	}

	cell, err := that.bot.MakeTurn(game)
	if err != nil {
		log.Error("bot failed to move", "error", err)
		return
	}

	if err = that.updateGame(ctx, game); err != nil {
		log.Error("failed to save bot move", "error", err)
		return
	}

	log.Debug("bot moved", "cell", cell.String())

	if game.IsFinished() {
		that.recordResults(ctx, game)
	}

	that.notifier.GameUpdated(ctx, game)
}

func (that *GameManager) recordResults(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "recordResults", "gameID", game.ID)

	for _, result := range game.Results(that.now().UTC()) {
		if err := that.resultRepo.Save(ctx, &result); err != nil {
			log.Error("failed to save result", "playerID", result.PlayerID, "error", err)
		}
	}
}

// currentGame returns the player's unfinished game. A finished or vanished game is released.
func (that *GameManager) currentGame(ctx context.Context, player *entity.Player) (*entity.Game, error) {
	if player.GameID == "" {
		return nil, nil //nolint: nilnil // no current game
	}

	game, err := that.gameRepo.GetByID(ctx, player.GameID)
	if errors.Is(err, apperror.ErrGameNotFound) {
		player.LeaveGame()
		return nil, nil //nolint: nilnil // no current game
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if !game.IsFinished() {
		return game, nil
	}

	that.scheduler.Cancel(game.ID)
	that.deleteGame(ctx, game)
	player.LeaveGame()

	return nil, nil //nolint: nilnil // no current game
}

func (that *GameManager) newGameID(ctx context.Context) (string, error) {
	for range roomCodeAttempts {
		gameID, err := pkg.GenerateGameID()
		if err != nil {
			return "", err
		}

		_, err = that.gameRepo.GetByID(ctx, gameID)
		if errors.Is(err, apperror.ErrGameNotFound) {
			return gameID, nil
		}

		if err != nil {
			return "", fmt.Errorf("failed to check room code: %w", err)
		}
	}

	return "", ErrNoFreeRoomCode
}

func (that *GameManager) getSeatedPlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if player.GameID == "" {
		return nil, apperror.ErrNotInGame
	}

	return player, nil
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	existingGame, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return existingGame, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *GameManager) deleteGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "deleteGame", "gameID", game.ID)

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
	}

	for _, player := range game.Players {
		if player.IsBot() {
			continue
		}

		player.LeaveGame()

		if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
			log.Error("failed to update player", "error", err)
		}
	}

	log.Info("game deleted")
}

func (that *GameManager) createPlayer(ctx context.Context) (*entity.Player, error) {
	player := &entity.Player{
		ID: pkg.GenerateNewSessionID(),
	}

	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return player, nil
}

func (that *GameManager) getPlayerByID(ctx context.Context, id string) (*entity.Player, error) {
	player, err := that.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}

func (that *GameManager) updatePlayer(ctx context.Context, player *entity.Player) error {
	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}

	return nil
}

// gameLocks serialises every change to one game and every seating of one player.
// An entry lives only while somebody holds or waits for it.
type gameLocks struct {
	mu    sync.Mutex
	locks map[string]*refLock
}

type refLock struct {
	sync.Mutex
	refs int
}

func playerLockKey(playerID string) string {
	return "player:" + playerID
}

func (that *gameLocks) lock(key string) func() {
	that.mu.Lock()
	entry, ok := that.locks[key]
	if !ok {
		entry = &refLock{}
		that.locks[key] = entry
	}
	entry.refs++
	that.mu.Unlock()

	entry.Lock()

	return func() {
		entry.Unlock()

		that.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(that.locks, key)
		}
		that.mu.Unlock()
	}
}

func (that *gameLocks) size() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.locks)
}
