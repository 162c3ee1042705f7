package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// MakeTurn - places the current player's mark and moves the game on: finished with a winner,
// finished on a full board, or the next player's turn.
func MakeTurn(game *entity.Game, row, col int) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	player := game.CurrentPlayer()

	if err := game.Board.Place(row, col, player); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	game.Moves++
	updateGameStatus(game, player)

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(game *entity.Game, player entity.PlayerID) {
	switch {
	case HasWon(game.Board, player):
		game.Winner = player
		game.Status = entity.StatusFinished
	case game.Board.IsFull():
		game.Winner = entity.NoPlayer
		game.Status = entity.StatusFinished
	default:
		game.AdvanceTurn()
	}
}
