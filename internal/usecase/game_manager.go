package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

type prompter interface {
	AskNumber(ctx context.Context, question string, validate func(int) error) (int, error)
	AskPlayerID(ctx context.Context, question string, validate func(entity.PlayerID) error) (entity.PlayerID, error)
}

type printer interface {
	PrintTurn(player entity.PlayerID)
	PrintBoard(board *entity.Board)
	PrintWinner(player entity.PlayerID)
	PrintDraw()
	PrintError(err error)
}

type GameManager struct {
	logger *slog.Logger

	prompter     prompter
	printer      printer
	maxBoardSize int
}

func NewGameManager(logger *slog.Logger, prompter prompter, printer printer, maxBoardSize int) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		prompter:     prompter,
		printer:      printer,
		maxBoardSize: maxBoardSize,
	}
}

// Run - sets a game up and plays it to the end.
func (that *GameManager) Run(ctx context.Context) (*entity.Game, error) {
	game, err := that.Setup(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to set up game: %w", err)
	}

	if err = that.Play(ctx, game); err != nil {
		return game, fmt.Errorf("failed to play game: %w", err)
	}

	return game, nil
}

// Setup - asks for the players and the board size and creates the game.
func (that *GameManager) Setup(ctx context.Context) (*entity.Game, error) {
	amount, err := that.prompter.AskNumber(ctx, "How many players? ", that.validatePlayersAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to get players amount: %w", err)
	}

	registry := entity.NewRegistry()
	for i := 0; i < amount; i++ {
		player, err := that.prompter.AskPlayerID(ctx, fmt.Sprintf("Enter the name of player %d: ", i+1), registry.Validate)
		if err != nil {
			return nil, fmt.Errorf("failed to get name of player %d: %w", i+1, err)
		}

		if err = registry.Register(player); err != nil {
			return nil, fmt.Errorf("failed to register player %d: %w", i+1, err)
		}
	}

	size, err := that.prompter.AskNumber(ctx, "Enter the size of the board: ", that.validateBoardSize(amount))
	if err != nil {
		return nil, fmt.Errorf("failed to get board size: %w", err)
	}

	game, err := entity.NewGame(uuid.NewString(), registry, size)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "game_id", game.ID, "players", amount, "size", size)

	return game, nil
}

// validatePlayersAmount - every player needs a row of their own, so the board size cap
// also caps the number of players.
func (that *GameManager) validatePlayersAmount(amount int) error {
	if amount < entity.MinPlayers {
		return apperror.Reject(apperror.ErrNotEnoughPlayers, "there must be at least %d players", entity.MinPlayers)
	}

	if that.maxBoardSize > 0 && amount > that.maxBoardSize {
		return apperror.Reject(apperror.ErrTooManyPlayers, "there can be at most %d players", that.maxBoardSize)
	}

	return nil
}

func (that *GameManager) validateBoardSize(players int) func(int) error {
	return func(size int) error {
		if size < players {
			return apperror.Reject(apperror.ErrBoardTooSmall, "the board must be big enough for %d players", players)
		}

		if that.maxBoardSize > 0 && size > that.maxBoardSize {
			return apperror.Reject(apperror.ErrBoardTooLarge, "the board can be at most %d cells wide", that.maxBoardSize)
		}

		return nil
	}
}

// Play - runs turns round-robin until someone wins or the board is full.
func (that *GameManager) Play(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("method", "Play", "game_id", game.ID)

	for game.IsOngoing() {
		player := game.CurrentPlayer()
		that.printer.PrintTurn(player)

		if err := that.playTurn(ctx, game); err != nil {
			return err
		}

		log.Debug("turn made", "player", player.String(), "moves", game.Moves)
		that.printer.PrintBoard(game.Board)
	}

	if game.IsDraw() {
		log.Info("game finished in a draw", "moves", game.Moves)
		that.printer.PrintDraw()

		return nil
	}

	log.Info("game finished", "winner", game.Winner.String(), "moves", game.Moves)
	that.printer.PrintWinner(game.Winner)

	return nil
}

// playTurn - asks for a position until the current player's mark lands on an empty cell.
func (that *GameManager) playTurn(ctx context.Context, game *entity.Game) error {
	for {
		row, err := that.askPosition(ctx, "row", game.Board.Size())
		if err != nil {
			return err
		}

		col, err := that.askPosition(ctx, "column", game.Board.Size())
		if err != nil {
			return err
		}

		err = tictactoe.MakeTurn(game, row, col)
		if errors.Is(err, apperror.ErrCellOccupied) {
			that.printer.PrintError(apperror.ErrCellOccupied)
			continue
		}

		if err != nil {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		return nil
	}
}

// askPosition - asks for a one-based coordinate and returns it zero-based.
func (that *GameManager) askPosition(ctx context.Context, positionOf string, size int) (int, error) {
	position, err := that.prompter.AskNumber(ctx, fmt.Sprintf("Enter the %s position: ", positionOf), func(position int) error {
		if position < 1 || position > size {
			return apperror.Reject(apperror.ErrInvalidCell, "the position must be between 1 and %d", size)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get %s position: %w", positionOf, err)
	}

	return position - 1, nil
}
