package tictactoe

import "github.com/rocketscienceinc/tictactoe-cli/internal/entity"

// HasWon - reports whether the player owns a whole row, a whole column or one of the two
// diagonals. Each line kind is checked on its own.
func HasWon(board *entity.Board, player entity.PlayerID) bool {
	return wonByRow(board, player) || wonByColumn(board, player) || wonByDiagonal(board, player)
}

func wonByRow(board *entity.Board, player entity.PlayerID) bool {
	for row := 0; row < board.Size(); row++ {
		if ownsLine(board, player, row, 0, 0, 1) {
			return true
		}
	}
	return false
}

func wonByColumn(board *entity.Board, player entity.PlayerID) bool {
	for col := 0; col < board.Size(); col++ {
		if ownsLine(board, player, 0, col, 1, 0) {
			return true
		}
	}
	return false
}

func wonByDiagonal(board *entity.Board, player entity.PlayerID) bool {
	return ownsLine(board, player, 0, 0, 1, 1) ||
		ownsLine(board, player, 0, board.Size()-1, 1, -1)
}

// ownsLine walks board.Size() cells from (row, col) in direction (dRow, dCol).
func ownsLine(board *entity.Board, player entity.PlayerID, row, col, dRow, dCol int) bool {
	mark := entity.Occupied(player)

	for i := 0; i < board.Size(); i++ {
		if board.At(row, col) != mark {
			return false
		}
		row += dRow
		col += dCol
	}

	return true
}
