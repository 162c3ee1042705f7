package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// EmptyGlyph - how an empty cell is rendered.
const EmptyGlyph = '_'

// Cell is either EmptyCell or occupied by exactly one player.
type Cell PlayerID

const EmptyCell Cell = 0

func Occupied(player PlayerID) Cell {
	return Cell(player)
}

func (that Cell) IsEmpty() bool {
	return that == EmptyCell
}

// Owner - returns the occupying player, or NoPlayer for an empty cell.
func (that Cell) Owner() PlayerID {
	return PlayerID(that)
}

func (that Cell) Glyph() rune {
	if that.IsEmpty() {
		return EmptyGlyph
	}
	return rune(that)
}

// Board is a square grid of cells. Occupied cells never go back to empty.
type Board struct {
	size  int
	cells [][]Cell
}

func NewBoard(size int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, size)
	}

	cells := make([][]Cell, size)
	for row := range cells {
		cells[row] = make([]Cell, size)
	}

	return &Board{size: size, cells: cells}, nil
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) inBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < that.size && col < that.size
}

// Place - marks an empty cell with the player's identifier. Row and column are zero-based.
func (that *Board) Place(row, col int, player PlayerID) error {
	if !that.inBounds(row, col) {
		return fmt.Errorf("%w: row %d, column %d", apperror.ErrInvalidCell, row, col)
	}

	if player == NoPlayer {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidPlayerID, rune(player))
	}

	if !that.cells[row][col].IsEmpty() {
		return apperror.ErrCellOccupied
	}

	that.cells[row][col] = Occupied(player)

	return nil
}

// At - returns the cell at the given position; positions outside the board read as empty.
func (that *Board) At(row, col int) Cell {
	if !that.inBounds(row, col) {
		return EmptyCell
	}
	return that.cells[row][col]
}

func (that *Board) IsFull() bool {
	for _, row := range that.cells {
		for _, cell := range row {
			if cell.IsEmpty() {
				return false
			}
		}
	}

	return true
}

// Rows - renders every row as a line of glyphs.
func (that *Board) Rows() []string {
	rows := make([]string, 0, that.size)

	for _, row := range that.cells {
		var line strings.Builder
		for _, cell := range row {
			line.WriteRune(cell.Glyph())
		}
		rows = append(rows, line.String())
	}

	return rows
}

func (that *Board) String() string {
	return strings.Join(that.Rows(), "\n")
}
