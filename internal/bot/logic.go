package bot

import (
	"ctchen222/Streak-Tac-Toe/internal/game"
)

// CalculateNextMove determines the bot's next move for the given strategy.
// intN draws random numbers in [0, n) for the whatever strategy.
// It returns (-1, -1) when the board has no empty cell.
func CalculateNextMove(board [][]game.PlayerMark, botMark game.PlayerMark, strategy string, intN func(int) int) (row, col int) {
	switch strategy {
	case Clever:
		return cleverMove(board)
	case Whatever:
		return whateverMove(board, intN)
	case Genius:
		return geniusMove(board, botMark)
	default:
		return -1, -1
	}
}

// cleverMove takes the first empty cell in row-major order.
func cleverMove(board [][]game.PlayerMark) (row, col int) {
	for r, rowData := range board {
		for c, cell := range rowData {
			if cell == game.None {
				return r, c
			}
		}
	}
	return -1, -1
}

// whateverMove picks a random row and column until it lands on an empty cell.
func whateverMove(board [][]game.PlayerMark, intN func(int) int) (row, col int) {
	if !hasEmptyCell(board) {
		return -1, -1
	}

	size := len(board)
	for {
		row, col = intN(size), intN(size)
		if board[row][col] == game.None {
			return row, col
		}
	}
}

// geniusMove applies its rules in a fixed order; later rules only run
// when the earlier ones do not fire:
//  1. own mark in the top-left corner: play like clever.
//  2. corner empty and the opponent has exactly one mark: take the corner.
//  3. block after the opponent's second mark (see blockMove).
//  4. the last empty cell in row-major order.
func geniusMove(board [][]game.PlayerMark, botMark game.PlayerMark) (row, col int) {
	if board[0][0] == botMark {
		return cleverMove(board)
	}

	if board[0][0] == game.None && countOpponentMarks(board, botMark) == 1 {
		return 0, 0
	}

	if r, c, ok := blockMove(board, botMark); ok {
		return r, c
	}

	return lastEmptyCell(board)
}

// blockMove scans row-major up to the bot's first own mark. Once two
// opponent marks have been passed, the next scanned cell is the target.
// An occupied target means no block.
func blockMove(board [][]game.PlayerMark, botMark game.PlayerMark) (row, col int, found bool) {
	seen := 0
	for r, rowData := range board {
		for c, cell := range rowData {
			if cell == botMark {
				return -1, -1, false
			}
			if seen == 2 {
				if cell != game.None {
					return -1, -1, false
				}
				return r, c, true
			}
			if cell != game.None {
				seen++
			}
		}
	}
	return -1, -1, false
}

func lastEmptyCell(board [][]game.PlayerMark) (row, col int) {
	for r := len(board) - 1; r >= 0; r-- {
		for c := len(board[r]) - 1; c >= 0; c-- {
			if board[r][c] == game.None {
				return r, c
			}
		}
	}
	return -1, -1
}

func countOpponentMarks(board [][]game.PlayerMark, botMark game.PlayerMark) int {
	count := 0
	for _, rowData := range board {
		for _, cell := range rowData {
			if cell != game.None && cell != botMark {
				count++
			}
		}
	}
	return count
}

func hasEmptyCell(board [][]game.PlayerMark) bool {
	_, col := cleverMove(board)
	return col != -1
}
