package game

import (
	"testing"
)

// boardFrom builds a board from rows such as "X.O"; '.' is an empty cell.
func boardFrom(t *testing.T, rows ...string) *Board {
	t.Helper()

	board, err := NewBoard(len(rows))
	if err != nil {
		t.Fatalf("NewBoard(%d): %v", len(rows), err)
	}
	for r, row := range rows {
		if len(row) != len(rows) {
			t.Fatalf("row %d has %d cells, want %d", r, len(row), len(rows))
		}
		for c, ch := range row {
			if ch == '.' {
				continue
			}
			if !board.Place(PlayerMark(string(ch)), r, c) {
				t.Fatalf("could not place %c at (%d, %d)", ch, r, c)
			}
		}
	}
	return board
}

func TestCheckStreak(t *testing.T) {
	tests := []struct {
		name      string
		rows      []string
		mark      PlayerMark
		winStreak int
		want      PlayerMark
	}{
		{
			name:      "Empty board",
			rows:      []string{"...", "...", "..."},
			mark:      PlayerX,
			winStreak: 3,
			want:      None,
		},
		{
			name:      "Horizontal run of exactly the streak",
			rows:      []string{".....", ".XXX.", ".....", ".....", "....."},
			mark:      PlayerX,
			winStreak: 3,
			want:      PlayerX,
		},
		{
			name:      "Horizontal run one short",
			rows:      []string{".....", ".XX..", ".....", ".....", "....."},
			mark:      PlayerX,
			winStreak: 3,
			want:      None,
		},
		{
			name:      "Vertical run",
			rows:      []string{".....", "...X.", "...X.", "...X.", "....."},
			mark:      PlayerX,
			winStreak: 3,
			want:      PlayerX,
		},
		{
			name:      "Vertical run one short",
			rows:      []string{".....", "...X.", "...X.", ".....", "....."},
			mark:      PlayerX,
			winStreak: 3,
			want:      None,
		},
		{
			name:      "Diagonal down-right",
			rows:      []string{"O....", ".O...", "..O..", ".....", "....."},
			mark:      PlayerO,
			winStreak: 3,
			want:      PlayerO,
		},
		{
			name:      "Diagonal down-left",
			rows:      []string{".....", "....O", "...O.", "..O..", "....."},
			mark:      PlayerO,
			winStreak: 3,
			want:      PlayerO,
		},
		{
			name:      "Anti-diagonal ending on the left edge",
			rows:      []string{"..X", ".X.", "X.."},
			mark:      PlayerX,
			winStreak: 3,
			want:      PlayerX,
		},
		{
			name:      "Longer run than the streak still wins",
			rows:      []string{"XXXX", "....", "....", "...."},
			mark:      PlayerX,
			winStreak: 3,
			want:      PlayerX,
		},
		{
			name:      "Run belongs to the other mark",
			rows:      []string{"XXX", "OO.", "..."},
			mark:      PlayerO,
			winStreak: 3,
			want:      None,
		},
		{
			name:      "Interrupted row does not count",
			rows:      []string{"XXOXX", ".....", ".....", ".....", "....."},
			mark:      PlayerX,
			winStreak: 3,
			want:      None,
		},
		{
			name:      "Run does not wrap around the edge",
			rows:      []string{"...XX", "X....", ".....", ".....", "....."},
			mark:      PlayerX,
			winStreak: 3,
			want:      None,
		},
		{
			name:      "Streak equal to the board side",
			rows:      []string{"OOOO", "XXX.", "....", "...."},
			mark:      PlayerO,
			winStreak: 4,
			want:      PlayerO,
		},
		{
			name:      "Full-side streak one short",
			rows:      []string{"XXX.", "....", "....", "...."},
			mark:      PlayerX,
			winStreak: 4,
			want:      None,
		},
		{
			name:      "Streak of two",
			rows:      []string{"...", ".X.", "X.."},
			mark:      PlayerX,
			winStreak: 2,
			want:      PlayerX,
		},
		{
			name:      "Single cell board",
			rows:      []string{"X"},
			mark:      PlayerX,
			winStreak: 1,
			want:      PlayerX,
		},
		{
			name:      "None is never a winner",
			rows:      []string{"...", "...", "..."},
			mark:      None,
			winStreak: 3,
			want:      None,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := boardFrom(t, tt.rows...)
			if got := CheckStreak(board, tt.mark, tt.winStreak); got != tt.want {
				t.Errorf("CheckStreak() got = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCheckStreak_DirectionsAreSymmetric(t *testing.T) {
	const size, streak = 6, 4

	for _, d := range directions {
		board, _ := NewBoard(size)
		row, col := 1, 1
		if d.dCol < 0 {
			col = size - 2
		}
		for i := 0; i < streak; i++ {
			board.Place(PlayerX, row+i*d.dRow, col+i*d.dCol)
		}

		if got := CheckStreak(board, PlayerX, streak); got != PlayerX {
			t.Errorf("direction %+v: CheckStreak() got = %q, want %q", d, got, PlayerX)
		}
		if got := CheckStreak(board, PlayerX, streak+1); got != None {
			t.Errorf("direction %+v: CheckStreak() with a longer streak got = %q, want none", d, got)
		}
	}
}

func TestWinner(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want PlayerMark
	}{
		{name: "No winner", rows: []string{"XO.", "OX.", "..."}, want: None},
		{name: "X wins", rows: []string{"XO.", "OX.", "..X"}, want: PlayerX},
		{name: "O wins", rows: []string{"XO.", "XO.", ".OX"}, want: PlayerO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Winner(boardFrom(t, tt.rows...), 3); got != tt.want {
				t.Errorf("Winner() got = %q, want %q", got, tt.want)
			}
		})
	}
}
