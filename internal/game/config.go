package game

import "fmt"

const (
	DefaultBoardSize = 4
	DefaultWinStreak = 3

	// MinWinStreak is the shortest streak a configuration accepts.
	MinWinStreak = 2
)

// Config fixes the board size and the streak needed to win for one game.
type Config struct {
	Size      int
	WinStreak int
}

// NewConfig validates size and normalises winStreak. A streak outside
// [MinWinStreak, size] falls back to the full board side.
func NewConfig(size, winStreak int) (Config, error) {
	if size <= 0 {
		return Config{}, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	if winStreak < MinWinStreak || winStreak > size {
		winStreak = size
	}

	return Config{Size: size, WinStreak: winStreak}, nil
}

// DefaultConfig is a 4x4 board won by three in a row.
func DefaultConfig() Config {
	return Config{Size: DefaultBoardSize, WinStreak: DefaultWinStreak}
}

// Cells is the number of cells on the board.
func (c Config) Cells() int {
	return c.Size * c.Size
}
