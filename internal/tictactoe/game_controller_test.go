package tictactoe

import (
	"fmt"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type move struct {
	row, col int
}

func playMoves(t *testing.T, game *GameController, moves ...move) MoveResult {
	t.Helper()

	var result MoveResult
	for _, m := range moves {
		var err error
		result, err = game.SubmitMove(m.row, m.col)
		require.NoError(t, err, "move (%d, %d)", m.row, m.col)
	}

	return result
}

func TestNewGameController(t *testing.T) {
	t.Run("Starts with an empty board and the chosen mover", func(t *testing.T) {
		// When: a new 4x4 game is created with O moving first
		game := NewGameController(4, entity.PlayerO)

		// Then: nothing has been played yet
		assert.Equal(t, 4, game.Size())
		assert.Equal(t, entity.PlayerO, game.CurrentMover())
		assert.Equal(t, 0, game.MoveCount())
		assert.Equal(t, 1, game.RoundNumber())
		assert.Equal(t, entity.Ongoing(), game.Outcome())

		for _, row := range game.Cells() {
			for _, cell := range row {
				assert.Equal(t, entity.Empty, cell)
			}
		}
	})

	t.Run("Panics when the first mover is not a player", func(t *testing.T) {
		assert.Panics(t, func() {
			NewGameController(3, entity.Empty)
		})
	})
}

func TestGameController_SubmitMove(t *testing.T) {
	t.Run("Places the mark and passes the turn", func(t *testing.T) {
		// Given: a new game with X moving first
		game := NewGameController(3, entity.PlayerX)

		// When: X plays the centre
		result, err := game.SubmitMove(1, 1)
		require.NoError(t, err)

		// Then: the result describes the move and it's O's turn
		assert.Equal(t, MoveResult{Row: 1, Col: 1, Mark: entity.PlayerX, Outcome: entity.Ongoing()}, result)
		assert.Equal(t, entity.PlayerO, game.CurrentMover())
		assert.Equal(t, 1, game.MoveCount())
		assert.Equal(t, entity.PlayerX, game.Cells()[1][1])
	})

	t.Run("Alternates movers while the game is ongoing", func(t *testing.T) {
		// Given: a new game with O moving first
		game := NewGameController(3, entity.PlayerO)

		// When / Then: every accepted move hands the turn to the other mark
		for i, m := range []move{{0, 0}, {1, 1}, {2, 2}, {0, 1}} {
			mover := game.CurrentMover()

			result, err := game.SubmitMove(m.row, m.col)
			require.NoError(t, err)
			require.False(t, result.Outcome.IsTerminal(), "move %d", i)

			assert.Equal(t, mover, result.Mark)
			assert.Equal(t, mover.Opponent(), game.CurrentMover())
		}
	})

	t.Run("Error on out of bounds coordinates", func(t *testing.T) {
		for _, m := range []move{{3, 0}, {0, 3}, {-1, 0}, {0, -1}, {7, 7}} {
			// Given: a game with one move played
			game := NewGameController(3, entity.PlayerX)
			playMoves(t, game, move{0, 0})
			before := game.Cells()

			// When: a move outside the board is submitted
			_, err := game.SubmitMove(m.row, m.col)

			// Then: ErrOutOfBounds is returned and nothing changes
			require.ErrorIs(t, err, apperror.ErrOutOfBounds)
			assert.Equal(t, before, game.Cells())
			assert.Equal(t, 1, game.MoveCount())
			assert.Equal(t, entity.PlayerO, game.CurrentMover())
		}
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: X holds (0, 0)
		game := NewGameController(3, entity.PlayerX)
		playMoves(t, game, move{0, 0})
		before := game.Cells()

		// When: O tries the same cell
		_, err := game.SubmitMove(0, 0)

		// Then: ErrCellOccupied is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, game.Cells())
		assert.Equal(t, 1, game.MoveCount())
		assert.Equal(t, entity.PlayerO, game.CurrentMover())
	})

	t.Run("Top row win for the first mover", func(t *testing.T) {
		// Given: a 3x3 game with X first
		game := NewGameController(3, entity.PlayerX)

		// When: X completes the top row on the fifth move
		result := playMoves(t, game, move{0, 0}, move{1, 0}, move{0, 1}, move{1, 1}, move{0, 2})

		// Then: X wins and the game stops with X still as mover
		assert.Equal(t, entity.Win(entity.PlayerX), result.Outcome)
		assert.Equal(t, entity.Win(entity.PlayerX), game.Outcome())
		assert.Equal(t, 5, game.MoveCount())
		assert.Equal(t, entity.PlayerX, game.CurrentMover())
	})

	t.Run("Draw when the board fills without a line", func(t *testing.T) {
		// Given: a 3x3 game with X first
		game := NewGameController(3, entity.PlayerX)

		// When: the board is filled into
		//   X O X
		//   X O X
		//   O X O
		moves := []move{{0, 0}, {0, 1}, {0, 2}, {1, 1}, {1, 0}, {2, 0}, {1, 2}, {2, 2}, {2, 1}}
		for i, m := range moves {
			result, err := game.SubmitMove(m.row, m.col)
			require.NoError(t, err)

			if i < len(moves)-1 {
				require.Equal(t, entity.Ongoing(), result.Outcome, "move %d", i+1)
			}
		}

		// Then: the game is a draw on move 9
		assert.Equal(t, entity.Draw(), game.Outcome())
		assert.Equal(t, 9, game.MoveCount())
	})

	t.Run("Error on move after win", func(t *testing.T) {
		// Given: X has won
		game := NewGameController(3, entity.PlayerX)
		playMoves(t, game, move{0, 0}, move{1, 0}, move{0, 1}, move{1, 1}, move{0, 2})
		before := game.Cells()

		// When: another move is submitted
		_, err := game.SubmitMove(2, 2)

		// Then: ErrGameAlreadyOver is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrGameAlreadyOver)
		assert.Equal(t, before, game.Cells())
		assert.Equal(t, 5, game.MoveCount())
	})

	t.Run("Error on move after draw, even out of bounds", func(t *testing.T) {
		// Given: a drawn game
		game := NewGameController(3, entity.PlayerX)
		playMoves(t, game, move{0, 0}, move{0, 1}, move{0, 2}, move{1, 1}, move{1, 0}, move{2, 0}, move{1, 2}, move{2, 2}, move{2, 1})
		require.True(t, game.Outcome().IsDraw())

		// When: a move is submitted
		_, err := game.SubmitMove(5, 5)

		// Then: the finished state wins over the coordinate check
		require.ErrorIs(t, err, apperror.ErrGameAlreadyOver)
	})
}

func TestGameController_RoundNumber(t *testing.T) {
	// Given: a new game
	game := NewGameController(3, entity.PlayerX)

	// Then: both moves of a round share its number
	expected := []int{1, 1, 2, 2, 3, 3, 4, 4}
	moves := []move{{0, 0}, {1, 1}, {2, 2}, {0, 1}, {2, 1}, {1, 0}, {1, 2}, {0, 2}}

	for i, m := range moves {
		assert.Equal(t, expected[i], game.RoundNumber(), "before move %d", i+1)
		playMoves(t, game, m)
	}
}

func TestGameController_Lines(t *testing.T) {
	for size := 3; size <= 6; size++ {
		t.Run(fmt.Sprintf("Row win on %dx%d", size, size), func(t *testing.T) {
			// Given: X fills row 1 while O plays on the last row
			game := NewGameController(size, entity.PlayerX)

			var result MoveResult
			for col := 0; col < size; col++ {
				result = playMoves(t, game, move{1, col})
				if col < size-1 {
					require.False(t, result.Outcome.IsTerminal())
					playMoves(t, game, move{size - 1, col})
				}
			}

			// Then: the last cell of the row wins
			assert.Equal(t, entity.Win(entity.PlayerX), result.Outcome)
		})

		t.Run(fmt.Sprintf("Column win on %dx%d", size, size), func(t *testing.T) {
			// Given: X fills column 0 while O plays in column 1
			game := NewGameController(size, entity.PlayerX)

			var result MoveResult
			for row := 0; row < size; row++ {
				result = playMoves(t, game, move{row, 0})
				if row < size-1 {
					require.False(t, result.Outcome.IsTerminal())
					playMoves(t, game, move{row, 1})
				}
			}

			// Then: X wins on the column
			assert.Equal(t, entity.Win(entity.PlayerX), result.Outcome)
		})

		t.Run(fmt.Sprintf("Main diagonal win on %dx%d", size, size), func(t *testing.T) {
			// Given: O moves first and fills the main diagonal while X plays beside it
			game := NewGameController(size, entity.PlayerO)

			var result MoveResult
			for i := 0; i < size; i++ {
				result = playMoves(t, game, move{i, i})
				if i < size-1 {
					require.False(t, result.Outcome.IsTerminal())
					playMoves(t, game, move{i, i + 1})
				}
			}

			// Then: O wins on the diagonal
			assert.Equal(t, entity.Win(entity.PlayerO), result.Outcome)
		})

		t.Run(fmt.Sprintf("Anti-diagonal win on %dx%d", size, size), func(t *testing.T) {
			// Given: X fills the anti-diagonal while O plays down column 0
			game := NewGameController(size, entity.PlayerX)

			var result MoveResult
			for i := 0; i < size; i++ {
				result = playMoves(t, game, move{i, size - 1 - i})
				if i < size-1 {
					require.False(t, result.Outcome.IsTerminal())
					playMoves(t, game, move{i, 0})
				}
			}

			// Then: X wins on the anti-diagonal
			assert.Equal(t, entity.Win(entity.PlayerX), result.Outcome)
		})
	}
}

func TestGameController_evaluate(t *testing.T) {
	t.Run("Off-diagonal move never checks the diagonals", func(t *testing.T) {
		// Given: a board whose main diagonal is already all X
		game := NewGameController(3, entity.PlayerX)
		for _, m := range []move{{0, 0}, {1, 1}, {2, 2}, {0, 1}} {
			require.NoError(t, game.board.Set(m.row, m.col, entity.PlayerX))
		}
		game.moveCount = 4

		// When: the move at (0, 1) is evaluated
		outcome := game.evaluate(entity.PlayerX, 0, 1)

		// Then: only its row and column count, neither is complete
		assert.Equal(t, entity.Ongoing(), outcome)
	})

	t.Run("Draw order with consecutive moves by the same mark", func(t *testing.T) {
		// Given: an empty 3x3 board
		game := NewGameController(3, entity.PlayerX)

		// When: cells are filled in this order, evaluating after each
		placed := []struct {
			move
			mark entity.Mark
		}{
			{move{0, 0}, entity.PlayerX},
			{move{0, 1}, entity.PlayerO},
			{move{0, 2}, entity.PlayerX},
			{move{1, 0}, entity.PlayerX},
			{move{1, 1}, entity.PlayerO},
			{move{1, 2}, entity.PlayerX},
			{move{2, 1}, entity.PlayerX},
			{move{2, 0}, entity.PlayerO},
			{move{2, 2}, entity.PlayerO},
		}

		var outcome entity.Outcome
		for i, p := range placed {
			require.NoError(t, game.board.Set(p.row, p.col, p.mark))
			game.moveCount++

			outcome = game.evaluate(p.mark, p.row, p.col)
			if i < len(placed)-1 {
				require.Equal(t, entity.Ongoing(), outcome, "move %d", i+1)
			}
		}

		// Then: the ninth move ends in a draw
		assert.Equal(t, entity.Draw(), outcome)
		assert.Equal(t, game.board.Filled(), game.moveCount)
	})
}
