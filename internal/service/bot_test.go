package service

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/tictactoe"
)

const (
	x = tictactoe.MarkX
	o = tictactoe.MarkO
	e = tictactoe.NoMark
)

// scriptedRandom replays values in order and returns 0 once they run out.
type scriptedRandom struct {
	values []int
}

func (that *scriptedRandom) IntN(n int) int {
	if len(that.values) == 0 {
		return 0
	}

	value := that.values[0]
	that.values = that.values[1:]

	return value % n
}

func cell(row, col int) tictactoe.Coordinate {
	return tictactoe.Coordinate{Row: row, Col: col}
}

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(42, 1024))
}

func humanMoves(cells ...tictactoe.Coordinate) entity.MoveHistory {
	var (
		history entity.MoveHistory
		board   tictactoe.Board
	)

	for _, c := range cells {
		history = history.Append(entity.MoveRecord{Board: board, Cell: c, Mark: x})
		board[c.Row][c.Col] = x
	}

	return history
}

// forEachBoard calls fn for every assignment of X, O or empty to the nine cells.
func forEachBoard(fn func(board tictactoe.Board)) {
	marks := []tictactoe.Mark{e, x, o}

	var (
		board tictactoe.Board
		fill  func(i int)
	)

	fill = func(i int) {
		if i == tictactoe.BoardSize*tictactoe.BoardSize {
			fn(board)
			return
		}

		for _, m := range marks {
			board[i/tictactoe.BoardSize][i%tictactoe.BoardSize] = m
			fill(i + 1)
		}
	}

	fill(0)
}

func TestBotService_SelectMove_Errors(t *testing.T) {
	bot := NewBotService(seeded())

	t.Run("Returns ErrNoLegalMove on a full board", func(t *testing.T) {
		// Given: a drawn board with no empty cell
		board := tictactoe.Board{
			{x, o, x},
			{x, o, o},
			{o, x, x},
		}

		for _, difficulty := range []entity.Difficulty{
			entity.EasyDifficulty, entity.MediumDifficulty, entity.HardDifficulty, entity.AdaptiveDifficulty,
		} {
			// When: any tier is asked for a move
			_, err := bot.SelectMove(board, o, difficulty, nil)

			// Then: ErrNoLegalMove is returned
			require.ErrorIs(t, err, apperror.ErrNoLegalMove, difficulty)
		}
	})

	t.Run("Returns ErrUnknownDifficulty for an unknown tier", func(t *testing.T) {
		_, err := bot.SelectMove(tictactoe.Board{}, o, "nightmare", nil)

		require.ErrorIs(t, err, apperror.ErrUnknownDifficulty)
	})

	t.Run("Returns ErrInvalidMove when the bot has no mark", func(t *testing.T) {
		_, err := bot.SelectMove(tictactoe.Board{}, e, entity.EasyDifficulty, nil)

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
	})
}

func TestBotService_Easy(t *testing.T) {
	t.Run("Always picks an empty cell for every board with 1 to 8 marks", func(t *testing.T) {
		bot := NewBotService(seeded())
		checked := 0

		forEachBoard(func(board tictactoe.Board) {
			occupied := board.Occupied()
			if occupied == 0 || occupied == 9 {
				return
			}

			move, err := bot.SelectMove(board, board.NextMark(), entity.EasyDifficulty, nil)
			require.NoError(t, err)
			require.Contains(t, board.EmptyCells(), move, "board %v", board)
			checked++
		})

		// Then: every partially filled board was visited
		assert.Equal(t, 19683-1-512, checked)
	})

	t.Run("Ignores an available win", func(t *testing.T) {
		// Given: O can complete row 1 at (1,2), and the random source points at the first empty cell
		board := tictactoe.Board{
			{x, x, e},
			{o, o, e},
			{x, e, e},
		}
		bot := NewBotService(&scriptedRandom{values: []int{0}})

		// When: the easy tier moves
		move, err := bot.SelectMove(board, o, entity.EasyDifficulty, nil)

		// Then: it plays the first empty cell instead of the win
		require.NoError(t, err)
		assert.Equal(t, cell(0, 2), move)
	})
}

func TestBotService_Medium(t *testing.T) {
	// O wins at (1,2), X threatens (0,2), and (2,1) and (2,2) are neither.
	board := tictactoe.Board{
		{x, x, e},
		{o, o, e},
		{x, e, e},
	}
	win, block := cell(1, 2), cell(0, 2)

	t.Run("Follows independent coin flips", func(t *testing.T) {
		testCases := []struct {
			name     string
			values   []int
			expected tictactoe.Coordinate
		}{
			{name: "win coin lands", values: []int{0}, expected: win},
			{name: "win coin misses, block coin lands", values: []int{1, 0}, expected: block},
			{name: "both coins miss, random fallback", values: []int{1, 1, 3}, expected: cell(2, 2)},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				bot := NewBotService(&scriptedRandom{values: tc.values})

				move, err := bot.SelectMove(board, o, entity.MediumDifficulty, nil)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, move)
			})
		}
	})

	t.Run("Does not flip for a move that does not exist", func(t *testing.T) {
		// Given: a board with no win and no block
		quiet := tictactoe.Board{
			{x, e, e},
			{e, e, e},
			{e, e, e},
		}
		random := &scriptedRandom{values: []int{4}}
		bot := NewBotService(random)

		// When: the medium tier moves
		move, err := bot.SelectMove(quiet, o, entity.MediumDifficulty, nil)

		// Then: the single draw goes straight to the uniform pick
		require.NoError(t, err)
		assert.Equal(t, quiet.EmptyCells()[4], move)
		assert.Empty(t, random.values)
	})

	t.Run("Win rate matches two independent coins over 1000 runs", func(t *testing.T) {
		// Given: a seeded random source
		bot := NewBotService(seeded())

		const runs = 1000
		counts := map[tictactoe.Coordinate]int{}

		// When: the medium tier moves 1000 times on the same board
		for range runs {
			move, err := bot.SelectMove(board, o, entity.MediumDifficulty, nil)
			require.NoError(t, err)
			counts[move]++
		}

		// Then: P(win) = 1/2 + 1/2*1/2*1/4 = 0.5625 and P(block) = 1/4 + 1/4*1/4 = 0.3125
		assert.InDelta(t, 0.5625, float64(counts[win])/runs, 0.06)
		assert.InDelta(t, 0.3125, float64(counts[block])/runs, 0.06)

		// And: the random fallback reaches the other cells
		assert.Positive(t, counts[cell(2, 1)]+counts[cell(2, 2)])
	})
}

func TestBotService_Hard(t *testing.T) {
	t.Run("Takes the center when it is free", func(t *testing.T) {
		board := tictactoe.Board{
			{x, e, e},
			{e, e, e},
			{e, e, e},
		}
		bot := NewBotService(seeded())

		move, err := bot.SelectMove(board, o, entity.HardDifficulty, nil)

		require.NoError(t, err)
		assert.Equal(t, tictactoe.Center, move)
	})

	t.Run("Takes a random free corner when the center is taken", func(t *testing.T) {
		// Given: X holds the center and (0,0), and O already blocked the diagonal
		board := tictactoe.Board{
			{x, e, e},
			{e, x, e},
			{e, e, o},
		}
		bot := NewBotService(&scriptedRandom{values: []int{1}})

		// When: hard picks from the free corners (0,2) and (2,0)
		move, err := bot.SelectMove(board, o, entity.HardDifficulty, nil)

		// Then: the second free corner is chosen
		require.NoError(t, err)
		assert.Equal(t, cell(2, 0), move)
	})
}

func TestBotService_WinAndBlockAreAlwaysTaken(t *testing.T) {
	history := humanMoves(cell(0, 0), cell(2, 2), cell(0, 2))

	for _, difficulty := range []entity.Difficulty{entity.HardDifficulty, entity.AdaptiveDifficulty} {
		t.Run(string(difficulty), func(t *testing.T) {
			bot := NewBotService(seeded())

			forEachBoard(func(board tictactoe.Board) {
				if board.Evaluate().IsTerminal() {
					return
				}

				for _, mark := range []tictactoe.Mark{x, o} {
					move, err := bot.SelectMove(board, mark, difficulty, history)
					require.NoError(t, err)

					if _, ok := tictactoe.FindWinningMove(board, mark); ok {
						next, err := board.ApplyMove(move, mark)
						require.NoError(t, err)
						require.Equal(t, mark, next.Evaluate().Winner, "board %v must be won by %s", board, mark)
						continue
					}

					if block, ok := tictactoe.FindWinningMove(board, mark.Opponent()); ok {
						require.Equal(t, block, move, "board %v must be blocked by %s", board, mark)
					}
				}
			})
		})
	}
}

func TestBotService_Adaptive(t *testing.T) {
	t.Run("Counters two corner moves with the center", func(t *testing.T) {
		// Given: the human played (0,0) and (2,2) and the board is otherwise empty
		history := humanMoves(cell(0, 0), cell(2, 2))
		bot := NewBotService(seeded())

		// When: the adaptive tier moves
		move, err := bot.SelectMove(tictactoe.Board{}, o, entity.AdaptiveDifficulty, history)

		// Then: it takes the center
		require.NoError(t, err)
		assert.Equal(t, tictactoe.Center, move)
	})

	t.Run("Counters edge preference with a corner when the center is taken", func(t *testing.T) {
		// Given: the human favours edges and O holds the center
		board := tictactoe.Board{
			{e, x, e},
			{x, o, e},
			{e, e, e},
		}
		history := humanMoves(cell(0, 1), cell(1, 0))
		bot := NewBotService(&scriptedRandom{values: []int{3}})

		// When: the adaptive tier moves
		move, err := bot.SelectMove(board, o, entity.AdaptiveDifficulty, history)

		// Then: it picks among the corners
		require.NoError(t, err)
		assert.Equal(t, cell(2, 2), move)
	})

	t.Run("Counters center preference with a corner", func(t *testing.T) {
		board := tictactoe.Board{
			{e, e, e},
			{e, x, e},
			{e, e, e},
		}
		// Center played in two rounds in a row.
		history := humanMoves(cell(1, 1))
		history = history.Append(entity.MoveRecord{Board: tictactoe.Board{}, Cell: cell(1, 1), Mark: x})
		bot := NewBotService(&scriptedRandom{values: []int{2}})

		move, err := bot.SelectMove(board, o, entity.AdaptiveDifficulty, history)

		require.NoError(t, err)
		assert.Equal(t, cell(2, 0), move)
	})

	t.Run("Zone ties prefer corner over edge and center", func(t *testing.T) {
		// Given: one human move in every zone and X on the center
		board := tictactoe.Board{
			{e, e, e},
			{e, x, e},
			{e, e, e},
		}
		history := humanMoves(cell(0, 0), cell(0, 1), cell(1, 1))
		bot := NewBotService(&scriptedRandom{values: []int{0}})

		// When: the adaptive tier moves
		move, err := bot.SelectMove(board, o, entity.AdaptiveDifficulty, history)

		// Then: corner preference with a taken center answers with an edge, not the hard tier's corner
		require.NoError(t, err)
		assert.Equal(t, tictactoe.ZoneEdge, move.Zone())
		assert.Equal(t, cell(0, 1), move)
	})

	t.Run("Falls back to hard with fewer than two human moves", func(t *testing.T) {
		board := tictactoe.Board{
			{e, e, e},
			{e, x, e},
			{e, e, e},
		}
		history := humanMoves(cell(0, 1))
		bot := NewBotService(&scriptedRandom{values: []int{0}})

		move, err := bot.SelectMove(board, o, entity.AdaptiveDifficulty, history)

		require.NoError(t, err)
		assert.Equal(t, cell(0, 0), move)
	})

	t.Run("Ignores the bot's own moves in history", func(t *testing.T) {
		// Given: only O moves are recorded
		history := entity.MoveHistory{
			{Cell: cell(0, 1), Mark: o},
			{Cell: cell(1, 0), Mark: o},
		}
		board := tictactoe.Board{
			{e, e, e},
			{e, x, e},
			{e, e, e},
		}
		bot := NewBotService(&scriptedRandom{values: []int{0}})

		// When: the adaptive tier moves as O
		move, err := bot.SelectMove(board, o, entity.AdaptiveDifficulty, history)

		// Then: with no human samples it plays like hard
		require.NoError(t, err)
		assert.Equal(t, cell(0, 0), move)
	})
}

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("Applies the selected move to the game", func(t *testing.T) {
		// Given: a hard bot game where X opened in a corner
		game := entity.NewGame("g1", entity.WithBotType, entity.HardDifficulty)
		require.NoError(t, game.AddPlayer(&entity.Player{ID: "p1"}, x))
		require.NoError(t, game.AddPlayer(entity.NewBotPlayer("g1", o), o))
		require.NoError(t, game.MakeTurn(x, cell(0, 0)))

		bot := NewBotService(seeded())

		// When: the bot takes its turn
		move, err := bot.MakeTurn(game)

		// Then: it took the center and handed the turn back
		require.NoError(t, err)
		assert.Equal(t, tictactoe.Center, move)
		assert.Equal(t, o, game.Board.At(tictactoe.Center))
		assert.Equal(t, x, game.Turn)
	})

	t.Run("Returns ErrBotNotFound without a bot seat", func(t *testing.T) {
		game := entity.NewGame("g2", entity.PrivateType, "")

		_, err := NewBotService(seeded()).MakeTurn(game)

		require.ErrorIs(t, err, ErrBotNotFound)
	})
}
