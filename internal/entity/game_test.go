package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

func newRegistry(t *testing.T, players ...PlayerID) *Registry {
	t.Helper()

	registry := NewRegistry()
	for _, player := range players {
		require.NoError(t, registry.Register(player))
	}

	return registry
}

func TestNewGame(t *testing.T) {
	t.Run("Creates an ongoing game", func(t *testing.T) {
		// When: a game for X and O on a 3x3 board is created
		game, err := NewGame("123", newRegistry(t, 'X', 'O'), 3)
		require.NoError(t, err)

		// Then: X moves first on an empty board
		assert.Equal(t, "123", game.ID)
		assert.Equal(t, []PlayerID{'X', 'O'}, game.Players)
		assert.Equal(t, PlayerID('X'), game.CurrentPlayer())
		assert.Equal(t, 3, game.Board.Size())
		assert.True(t, game.IsOngoing())
		assert.False(t, game.IsFinished())
		assert.Zero(t, game.Moves)
	})

	t.Run("Error on board smaller than player count", func(t *testing.T) {
		// When: three players get a 2x2 board
		game, err := NewGame("123", newRegistry(t, 'X', 'O', 'Z'), 2)

		// Then: ErrBoardTooSmall is returned
		require.ErrorIs(t, err, apperror.ErrBoardTooSmall)
		assert.Nil(t, game)
	})

	t.Run("Error on a single player", func(t *testing.T) {
		// When: only one player is registered
		game, err := NewGame("123", newRegistry(t, 'X'), 3)

		// Then: ErrNotEnoughPlayers is returned
		require.ErrorIs(t, err, apperror.ErrNotEnoughPlayers)
		assert.Nil(t, game)
	})
}

func TestGame_AdvanceTurn(t *testing.T) {
	// Given: a game with three players
	game, err := NewGame("123", newRegistry(t, 'A', 'B', 'C'), 3)
	require.NoError(t, err)

	// When: turns advance past the last player
	var order []PlayerID
	for i := 0; i < 7; i++ {
		order = append(order, game.CurrentPlayer())
		game.AdvanceTurn()
	}

	// Then: the order cycles in registration order
	assert.Equal(t, []PlayerID{'A', 'B', 'C', 'A', 'B', 'C', 'A'}, order)
}

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsDraw returns true for a finished game without a winner", func(t *testing.T) {
		game := &Game{Status: StatusFinished, Winner: NoPlayer}

		assert.True(t, game.IsDraw())
	})

	t.Run("IsDraw returns false when someone won", func(t *testing.T) {
		game := &Game{Status: StatusFinished, Winner: 'X'}

		assert.False(t, game.IsDraw())
	})

	t.Run("IsDraw returns false for an ongoing game", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}

		assert.False(t, game.IsDraw())
	})
}
