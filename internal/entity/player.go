package entity

import (
	"fmt"
	"slices"
	"unicode"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// MinPlayers - the smallest number of players a game can be started with.
const MinPlayers = 2

// NoPlayer - the zero PlayerID, used as the winner of a drawn game.
const NoPlayer PlayerID = 0

// PlayerID is the single character a player marks cells with.
type PlayerID rune

func (that PlayerID) String() string {
	return string(that)
}

// Registry holds the registered players in registration order.
type Registry struct {
	players []PlayerID
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Validate - checks whether the candidate could be registered without registering it.
func (that *Registry) Validate(candidate PlayerID) error {
	r := rune(candidate)
	if candidate == NoPlayer || r == EmptyGlyph || unicode.IsSpace(r) || !unicode.IsPrint(r) {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidPlayerID, r)
	}

	if that.Contains(candidate) {
		return apperror.ErrDuplicatePlayer
	}

	return nil
}

// Register - adds the candidate to the registry.
func (that *Registry) Register(candidate PlayerID) error {
	if err := that.Validate(candidate); err != nil {
		return err
	}

	that.players = append(that.players, candidate)

	return nil
}

func (that *Registry) Contains(candidate PlayerID) bool {
	return slices.Contains(that.players, candidate)
}

// Players - returns a copy of the registered players in registration order.
func (that *Registry) Players() []PlayerID {
	return slices.Clone(that.players)
}

func (that *Registry) Len() int {
	return len(that.players)
}
