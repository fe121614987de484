package game

// direction is one forward step along a line of the board.
type direction struct {
	dRow, dCol int
}

// Every run is reached from its first cell, so only the four forward
// directions need to be walked.
var directions = [...]direction{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal down-right
	{1, -1}, // diagonal down-left
}

// CheckStreak returns mark when it holds at least winStreak consecutive
// cells along a row, column or diagonal, and None otherwise.
func CheckStreak(b *Board, mark PlayerMark, winStreak int) PlayerMark {
	if mark == None {
		return None
	}

	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if b.cells[row][col] != mark {
				continue
			}
			for _, d := range directions {
				if b.runLength(row, col, d, winStreak) >= winStreak {
					return mark
				}
			}
		}
	}

	return None
}

// Winner returns the first of X and O holding a winning streak, or None.
func Winner(b *Board, winStreak int) PlayerMark {
	for _, mark := range [...]PlayerMark{PlayerX, PlayerO} {
		if CheckStreak(b, mark, winStreak) == mark {
			return mark
		}
	}
	return None
}

// runLength counts the cells matching (row, col) when stepping along d,
// the origin included. Counting stops once limit is reached.
func (b *Board) runLength(row, col int, d direction, limit int) int {
	mark := b.cells[row][col]
	n := 1
	for n < limit {
		row, col = row+d.dRow, col+d.dCol
		if !b.InBounds(row, col) || b.cells[row][col] != mark {
			break
		}
		n++
	}
	return n
}
