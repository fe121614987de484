package game

//go:generate mockgen -source=player.go -destination=mock_player_test.go -package=game

import "context"

// Player supplies the moves for one side. It receives a copy of the board
// and must answer with an empty, in-range cell; an interactive player keeps
// asking until it has one.
type Player interface {
	NextMove(ctx context.Context, board [][]PlayerMark, mark PlayerMark) (row, col int, err error)
}

// Renderer observes every placement. It must not hold the game up
// indefinitely and has no way to change the board.
type Renderer interface {
	Render(ctx context.Context, placement Placement)
}

// Placement describes a mark that has just been applied.
type Placement struct {
	GameID string
	Turn   int
	Mark   PlayerMark
	Row    int
	Col    int
	Board  [][]PlayerMark
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(ctx context.Context, placement Placement)

// Render calls f(ctx, placement).
func (f RendererFunc) Render(ctx context.Context, placement Placement) {
	f(ctx, placement)
}
