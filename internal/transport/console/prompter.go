package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	numberHint = "Please enter a whole number!"
	playerHint = "Please enter a single character!"
)

// Prompter asks questions until the answer parses and passes validation.
// Answers are whitespace-separated tokens, so several of them may share one line.
type Prompter struct {
	printer *Printer

	tokens <-chan string
	done   chan struct{}
	err    error
}

func NewPrompter(in io.Reader, printer *Printer) *Prompter {
	tokens := make(chan string)

	that := &Prompter{
		printer: printer,
		tokens:  tokens,
		done:    make(chan struct{}),
	}

	go that.scan(in, tokens)

	return that
}

// scan - feeds tokens from the input until it ends or the prompter is closed.
func (that *Prompter) scan(in io.Reader, tokens chan<- string) {
	defer close(tokens)

	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	for scanner.Scan() {
		select {
		case tokens <- scanner.Text():
		case <-that.done:
			return
		}
	}

	// published to readers by close(tokens)
	that.err = scanner.Err()
}

// Close - stops handing out tokens. A read already blocked on the input is not interrupted.
func (that *Prompter) Close() {
	close(that.done)
}

func (that *Prompter) next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case token, ok := <-that.tokens:
		if !ok {
			if that.err != nil {
				return "", fmt.Errorf("failed to read input: %w", that.err)
			}
			return "", apperror.ErrInputClosed
		}
		return token, nil
	}
}

// AskNumber - asks for a whole number accepted by validate.
func (that *Prompter) AskNumber(ctx context.Context, question string, validate func(int) error) (int, error) {
	return ask(ctx, that, question, parseNumber, numberHint, validate)
}

// AskPlayerID - asks for a single character accepted by validate.
func (that *Prompter) AskPlayerID(ctx context.Context, question string, validate func(entity.PlayerID) error) (entity.PlayerID, error) {
	return ask(ctx, that, question, parsePlayerID, playerHint, validate)
}

func ask[T any](
	ctx context.Context,
	that *Prompter,
	question string,
	parse func(string) (T, bool),
	hint string,
	validate func(T) error,
) (T, error) {
	var zero T

	for {
		that.printer.printQuestion(question)

		token, err := that.next(ctx)
		if err != nil {
			return zero, err
		}

		value, ok := parse(token)
		if !ok {
			that.printer.printMessage(hint)
			continue
		}

		if err = validate(value); err != nil {
			that.printer.PrintError(err)
			continue
		}

		return value, nil
	}
}

func parseNumber(token string) (int, bool) {
	value, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}
	return value, true
}

func parsePlayerID(token string) (entity.PlayerID, bool) {
	if utf8.RuneCountInString(token) != 1 {
		return entity.NoPlayer, false
	}

	r, _ := utf8.DecodeRuneInString(token)
	if r == utf8.RuneError {
		return entity.NoPlayer, false
	}

	return entity.PlayerID(r), true
}
