package service

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/tictactoe"
)

var ErrBotNotFound = errors.New("bot player not found")

// minAdaptiveSamples is how many human moves the adaptive tier needs before it counters a zone preference.
const minAdaptiveSamples = 2

// Random is the source of every random choice a bot makes.
type Random interface {
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int {
	return rand.IntN(n) //nolint: gosec // move choice, not a secret
}

type BotService interface {
	SelectMove(board tictactoe.Board, bot tictactoe.Mark, difficulty entity.Difficulty, history entity.MoveHistory) (tictactoe.Coordinate, error)
	MakeTurn(game *entity.Game) (tictactoe.Coordinate, error)
}

type botService struct {
	random Random
}

// NewBotService returns a bot drawing from random. A nil random uses the package-level math/rand/v2 source.
func NewBotService(random Random) BotService {
	if random == nil {
		random = globalRandom{}
	}

	return &botService{
		random: random,
	}
}

// MakeTurn selects and applies the bot player's move in game.
func (that *botService) MakeTurn(game *entity.Game) (tictactoe.Coordinate, error) {
	botPlayer := game.BotPlayer()
	if botPlayer == nil {
		return tictactoe.Coordinate{}, ErrBotNotFound
	}

	cell, err := that.SelectMove(game.Board, botPlayer.Mark, game.Difficulty, game.History.Snapshot())
	if err != nil {
		return tictactoe.Coordinate{}, fmt.Errorf("bot failed to select move: %w", err)
	}

	if err = game.MakeTurn(botPlayer.Mark, cell); err != nil {
		return tictactoe.Coordinate{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return cell, nil
}

// SelectMove picks the cell the bot playing mark takes on board at the given difficulty.
// history is read only by the adaptive tier.
func (that *botService) SelectMove(
	board tictactoe.Board,
	bot tictactoe.Mark,
	difficulty entity.Difficulty,
	history entity.MoveHistory,
) (tictactoe.Coordinate, error) {
	if !bot.IsPlayer() {
		return tictactoe.Coordinate{}, fmt.Errorf("%w: bot mark %q", apperror.ErrInvalidMove, bot)
	}

	available := board.EmptyCells()
	if len(available) == 0 {
		return tictactoe.Coordinate{}, apperror.ErrNoLegalMove
	}

	switch difficulty {
	case entity.EasyDifficulty:
		return that.pick(available), nil
	case entity.MediumDifficulty:
		return that.mediumMove(board, bot, available), nil
	case entity.HardDifficulty:
		return that.hardMove(board, bot, available), nil
	case entity.AdaptiveDifficulty:
		return that.adaptiveMove(board, bot, available, history), nil
	default:
		return tictactoe.Coordinate{}, fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, difficulty)
	}
}

// mediumMove flips a separate coin for the win and for the block, and only when that move exists.
func (that *botService) mediumMove(board tictactoe.Board, bot tictactoe.Mark, available []tictactoe.Coordinate) tictactoe.Coordinate {
	if win, ok := tictactoe.FindWinningMove(board, bot); ok && that.flip() {
		return win
	}

	if block, ok := tictactoe.FindWinningMove(board, bot.Opponent()); ok && that.flip() {
		return block
	}

	return that.pick(available)
}

func (that *botService) hardMove(board tictactoe.Board, bot tictactoe.Mark, available []tictactoe.Coordinate) tictactoe.Coordinate {
	if cell, ok := winOrBlock(board, bot); ok {
		return cell
	}

	return that.positionalMove(board, available)
}

func (that *botService) adaptiveMove(
	board tictactoe.Board,
	bot tictactoe.Mark,
	available []tictactoe.Coordinate,
	history entity.MoveHistory,
) tictactoe.Coordinate {
	if cell, ok := winOrBlock(board, bot); ok {
		return cell
	}

	humanCells := history.CellsOf(bot.Opponent())
	if len(humanCells) >= minAdaptiveSamples {
		if cell, ok := that.counterMove(board, preferredZone(humanCells)); ok {
			return cell
		}
	}

	return that.positionalMove(board, available)
}

// counterMove answers the human's favourite zone. It reports false when the zone has no samples
// or none of the answering cells is free.
func (that *botService) counterMove(board tictactoe.Board, preference zoneCount) (tictactoe.Coordinate, bool) {
	if preference.count == 0 {
		return tictactoe.Coordinate{}, false
	}

	centerFree := board.At(tictactoe.Center) == tictactoe.NoMark

	switch preference.zone {
	case tictactoe.ZoneCorner:
		if centerFree {
			return tictactoe.Center, true
		}
		return that.pickFree(board, tictactoe.Edges)
	case tictactoe.ZoneEdge:
		if centerFree {
			return tictactoe.Center, true
		}
		return that.pickFree(board, tictactoe.Corners)
	case tictactoe.ZoneCenter:
		return that.pickFree(board, tictactoe.Corners)
	default:
		return tictactoe.Coordinate{}, false
	}
}

// positionalMove is the hard tier after win and block: center, then a free corner, then anything.
func (that *botService) positionalMove(board tictactoe.Board, available []tictactoe.Coordinate) tictactoe.Coordinate {
	if board.At(tictactoe.Center) == tictactoe.NoMark {
		return tictactoe.Center
	}

	if corner, ok := that.pickFree(board, tictactoe.Corners); ok {
		return corner
	}

	return that.pick(available)
}

func (that *botService) pickFree(board tictactoe.Board, cells []tictactoe.Coordinate) (tictactoe.Coordinate, bool) {
	free := make([]tictactoe.Coordinate, 0, len(cells))
	for _, cell := range cells {
		if board.At(cell) == tictactoe.NoMark {
			free = append(free, cell)
		}
	}

	if len(free) == 0 {
		return tictactoe.Coordinate{}, false
	}

	return that.pick(free), true
}

func (that *botService) pick(cells []tictactoe.Coordinate) tictactoe.Coordinate {
	return cells[that.random.IntN(len(cells))]
}

func (that *botService) flip() bool {
	return that.random.IntN(2) == 0
}

func winOrBlock(board tictactoe.Board, bot tictactoe.Mark) (tictactoe.Coordinate, bool) {
	if win, ok := tictactoe.FindWinningMove(board, bot); ok {
		return win, true
	}

	return tictactoe.FindWinningMove(board, bot.Opponent())
}

type zoneCount struct {
	zone  tictactoe.Zone
	count int
}

// preferredZone returns the most played zone. Ties go to corner, then edge, then center.
func preferredZone(cells []tictactoe.Coordinate) zoneCount {
	counts := map[tictactoe.Zone]int{}
	for _, cell := range cells {
		counts[cell.Zone()]++
	}

	best := zoneCount{zone: tictactoe.ZoneCorner, count: counts[tictactoe.ZoneCorner]}
	for _, zone := range []tictactoe.Zone{tictactoe.ZoneEdge, tictactoe.ZoneCenter} {
		if counts[zone] > best.count {
			best = zoneCount{zone: zone, count: counts[zone]}
		}
	}

	return best
}
