package tictactoe

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	playerX entity.PlayerID = 'X'
	playerO entity.PlayerID = 'O'
)

// boardOf builds a board from rows of glyphs, '_' being empty.
func boardOf(t *testing.T, rows ...string) *entity.Board {
	t.Helper()

	board, err := entity.NewBoard(len(rows))
	require.NoError(t, err)

	for row, line := range rows {
		for col, glyph := range []rune(line) {
			if glyph != entity.EmptyGlyph {
				require.NoError(t, board.Place(row, col, entity.PlayerID(glyph)))
			}
		}
	}

	return board
}

func TestHasWon_EmptyBoard(t *testing.T) {
	for size := 1; size <= 6; size++ {
		board, err := entity.NewBoard(size)
		require.NoError(t, err)

		assert.False(t, HasWon(board, playerX), "size %d", size)
		assert.False(t, HasWon(board, playerO), "size %d", size)
	}
}

func TestHasWon_SingleLine(t *testing.T) {
	type line struct {
		name string
		cell func(i, n int) (int, int)
	}

	lines := []line{
		{"first row", func(i, _ int) (int, int) { return 0, i }},
		{"last row", func(i, n int) (int, int) { return n - 1, i }},
		{"first column", func(i, _ int) (int, int) { return i, 0 }},
		{"last column", func(i, n int) (int, int) { return i, n - 1 }},
		{"main diagonal", func(i, _ int) (int, int) { return i, i }},
		{"anti diagonal", func(i, n int) (int, int) { return i, n - 1 - i }},
	}

	for size := 2; size <= 6; size++ {
		for _, l := range lines {
			t.Run(fmt.Sprintf("%s on %dx%d", l.name, size, size), func(t *testing.T) {
				// Given: a board where X owns exactly one line and nothing else
				board, err := entity.NewBoard(size)
				require.NoError(t, err)

				for i := 0; i < size; i++ {
					row, col := l.cell(i, size)
					require.NoError(t, board.Place(row, col, playerX))
				}

				// Then: X has won and O has not
				assert.True(t, HasWon(board, playerX))
				assert.False(t, HasWon(board, playerO))
			})
		}
	}
}

func TestHasWon_WithoutRowWin(t *testing.T) {
	t.Run("Column win with no full row", func(t *testing.T) {
		board := boardOf(t,
			"XO_",
			"XO_",
			"X__",
		)

		assert.False(t, wonByRow(board, playerX))
		assert.True(t, wonByColumn(board, playerX))
		assert.True(t, HasWon(board, playerX))
	})

	t.Run("Diagonal win with no full row or column", func(t *testing.T) {
		board := boardOf(t,
			"XO_",
			"OX_",
			"__X",
		)

		assert.False(t, wonByRow(board, playerX))
		assert.False(t, wonByColumn(board, playerX))
		assert.True(t, wonByDiagonal(board, playerX))
		assert.True(t, HasWon(board, playerX))
	})

	t.Run("Anti diagonal win", func(t *testing.T) {
		board := boardOf(t,
			"__O",
			"XO_",
			"OX_",
		)

		assert.True(t, HasWon(board, playerO))
		assert.False(t, HasWon(board, playerX))
	})
}

func TestHasWon_Incomplete(t *testing.T) {
	t.Run("Broken lines", func(t *testing.T) {
		board := boardOf(t,
			"XXO",
			"OOX",
			"XXO",
		)

		assert.False(t, HasWon(board, playerX))
		assert.False(t, HasWon(board, playerO))
	})

	t.Run("Line of someone else's marks", func(t *testing.T) {
		board := boardOf(t,
			"OOO",
			"___",
			"___",
		)

		assert.False(t, HasWon(board, playerX))
		assert.True(t, HasWon(board, playerO))
	})
}
