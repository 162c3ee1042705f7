package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Game is one match: the board, the players in turn order and whose move it is.
type Game struct {
	ID      string
	Board   *Board
	Players []PlayerID
	Turn    int
	Moves   int
	Winner  PlayerID
	Status  string
}

// NewGame - creates an ongoing game for the registered players on a size x size board.
func NewGame(id string, registry *Registry, size int) (*Game, error) {
	if registry.Len() < MinPlayers {
		return nil, fmt.Errorf("%w: %d of %d", apperror.ErrNotEnoughPlayers, registry.Len(), MinPlayers)
	}

	if size < registry.Len() {
		return nil, fmt.Errorf("%w: size %d for %d players", apperror.ErrBoardTooSmall, size, registry.Len())
	}

	board, err := NewBoard(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return &Game{
		ID:      id,
		Board:   board,
		Players: registry.Players(),
		Status:  StatusOngoing,
	}, nil
}

// CurrentPlayer - the player who moves next.
func (that *Game) CurrentPlayer() PlayerID {
	return that.Players[that.Turn]
}

// AdvanceTurn - passes the move to the next player, wrapping around after the last one.
func (that *Game) AdvanceTurn() {
	that.Turn = (that.Turn + 1) % len(that.Players)
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// IsDraw - the game ended on a full board without a winner.
func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == NoPlayer
}
