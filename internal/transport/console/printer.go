package console

import (
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Printer writes everything the players see except the questions themselves.
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (that *Printer) PrintTurn(player entity.PlayerID) {
	fmt.Fprintf(that.out, "\nPlayer %s's turn!\n", player)
}

func (that *Printer) PrintBoard(board *entity.Board) {
	for _, row := range board.Rows() {
		fmt.Fprintln(that.out, row)
	}
}

func (that *Printer) PrintWinner(player entity.PlayerID) {
	fmt.Fprintf(that.out, "%s won!\n", player)
}

func (that *Printer) PrintDraw() {
	fmt.Fprintln(that.out, "The board is full, nobody won!")
}

// PrintError - reports a rejected answer or move.
func (that *Printer) PrintError(err error) {
	fmt.Fprintf(that.out, "Invalid input: %v\n", err)
}

func (that *Printer) printMessage(msg string) {
	fmt.Fprintln(that.out, msg)
}

func (that *Printer) printQuestion(question string) {
	fmt.Fprint(that.out, question)
}
