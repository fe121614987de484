package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSize = errors.New("board size must be positive")
	ErrOutOfBounds = errors.New("position is out of bounds")
)

// Board is a square grid of player marks. A cell goes from None to a
// player mark exactly once.
type Board struct {
	size  int
	cells [][]PlayerMark
}

// NewBoard allocates a size x size board with every cell empty.
func NewBoard(size int) (*Board, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	cells := make([][]PlayerMark, size)
	for r := range cells {
		cells[r] = make([]PlayerMark, size)
	}

	return &Board{size: size, cells: cells}, nil
}

// Size returns the side length of the board.
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

// Place puts mark on (row, col). It reports false, leaving the board
// untouched, when the position is off the board or already taken.
func (b *Board) Place(mark PlayerMark, row, col int) bool {
	if mark == None || !b.InBounds(row, col) {
		return false
	}
	if b.cells[row][col] != None {
		return false
	}

	b.cells[row][col] = mark
	return true
}

// MarkAt returns the mark at (row, col).
func (b *Board) MarkAt(row, col int) (PlayerMark, error) {
	if !b.InBounds(row, col) {
		return None, fmt.Errorf("%w: (%d, %d) on a %dx%d board", ErrOutOfBounds, row, col, b.size, b.size)
	}
	return b.cells[row][col], nil
}

// Snapshot copies the grid into a fresh slice of slices.
func (b *Board) Snapshot() [][]PlayerMark {
	board := make([][]PlayerMark, b.size)
	for r := range b.cells {
		board[r] = make([]PlayerMark, b.size)
		copy(board[r], b.cells[r])
	}
	return board
}
