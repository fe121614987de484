package player

import (
	"bufio"
	"context"
	"ctchen222/Streak-Tac-Toe/internal/bot"
	"ctchen222/Streak-Tac-Toe/internal/game"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	// Human is the player name for an interactive player.
	Human = "human"

	// MaxBoardSize is the largest board a human can address: one digit
	// each for row and column.
	MaxBoardSize = 10
)

var (
	ErrUnknownPlayer = errors.New("unknown player")
	ErrNoInput       = errors.New("no more input")
	ErrBoardTooLarge = errors.New("board too large for typed coordinates")
)

// Names lists every player name the factory accepts.
var Names = append([]string{Human}, bot.Strategies...)

// IsPlayer reports whether name is a known player. The check is case-insensitive.
func IsPlayer(name string) bool {
	return strings.EqualFold(name, Human) || bot.IsStrategy(name)
}

// Factory creates players by name. Every human player it creates shares
// the same input scanner, so two humans can play over one terminal.
type Factory struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewFactory returns a factory whose human players read from in and write
// prompts to out.
func NewFactory(in io.Reader, out io.Writer) *Factory {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Factory{in: scanner, out: out}
}

// New creates the player called name.
func (f *Factory) New(name string) (game.Player, error) {
	if strings.EqualFold(name, Human) {
		return &HumanPlayer{in: f.in, out: f.out}, nil
	}
	b, err := bot.NewBot(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, name)
	}
	return b, nil
}

// HumanPlayer asks for coordinates until a legal cell is typed. A move is
// typed as a single number: tens digit for the row, ones digit for the column.
type HumanPlayer struct {
	in  *bufio.Scanner
	out io.Writer
}

// NextMove implements game.Player.
func (h *HumanPlayer) NextMove(ctx context.Context, board [][]game.PlayerMark, mark game.PlayerMark) (int, int, error) {
	size := len(board)
	if size > MaxBoardSize {
		return -1, -1, fmt.Errorf("%w: size %d, at most %d", ErrBoardTooLarge, size, MaxBoardSize)
	}

	fmt.Fprintf(h.out, "Player %s, type coordinates: \n", mark)
	for {
		if err := ctx.Err(); err != nil {
			return -1, -1, err
		}
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return -1, -1, fmt.Errorf("reading coordinates: %w", err)
			}
			return -1, -1, ErrNoInput
		}

		row, col, ok := parseCoordinates(h.in.Text())
		switch {
		case !ok || row >= size || col >= size:
			fmt.Fprintln(h.out, "Invalid mark position, please choose a different position.\nInvalid coordinates, type again: ")
		case board[row][col] != game.None:
			fmt.Fprintln(h.out, "Mark position is already occupied.\nInvalid coordinates, type again: ")
		default:
			return row, col, nil
		}
	}
}

func parseCoordinates(token string) (row, col int, ok bool) {
	v, err := strconv.Atoi(token)
	if err != nil || v < 0 {
		return -1, -1, false
	}
	return v / 10, v % 10, true
}
