package render

import (
	"context"
	"ctchen222/Streak-Tac-Toe/internal/game"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

const emptyCell = "_"

// Console prints the board to a writer after every placement.
type Console struct {
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Render(_ context.Context, p game.Placement) {
	fmt.Fprintf(c.out, "\n[%s played (%d, %d)]\n", p.Mark, p.Row, p.Col)
	RenderBoard(c.out, p.Board)
}

// RenderBoard writes board as a grid, one row per line.
func RenderBoard(out io.Writer, board [][]game.PlayerMark) {
	w := tabwriter.NewWriter(out, 2, 8, 1, ' ', 0)
	for _, row := range board {
		cells := make([]string, len(row))
		for i, mark := range row {
			if mark == game.None {
				cells[i] = emptyCell
			} else {
				cells[i] = string(mark)
			}
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	w.Flush()
}

// Void discards every placement.
type Void struct{}

func (Void) Render(context.Context, game.Placement) {}
