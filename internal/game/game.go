package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("game")

var (
	ErrGameFinished = errors.New("game already finished")
	ErrIllegalMove  = errors.New("player chose an illegal move")
)

// Status is the state of a game.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDraw       Status = "draw"
)

// Outcome is the final result of a game. Winner is None for a draw.
type Outcome struct {
	Status Status
	Winner PlayerMark
	Moves  int
}

// Game drives alternating turns between two players on a single board.
// X always moves first.
type Game struct {
	ID string

	config   Config
	board    *Board
	occupied int
	playerX  Player
	playerO  Player
	renderer Renderer

	// turn is the mark due to move next. A failed turn leaves it
	// unchanged, so a later Run resumes with the same player.
	turn   PlayerMark
	status Status
	winner PlayerMark
}

// NewGame creates a game with a fresh board. cfg goes through NewConfig, so
// a hand-built Config gets the same winStreak fallback. renderer must not
// be nil.
func NewGame(playerX, playerO Player, cfg Config, renderer Renderer) (*Game, error) {
	cfg, err := NewConfig(cfg.Size, cfg.WinStreak)
	if err != nil {
		return nil, err
	}

	board, err := NewBoard(cfg.Size)
	if err != nil {
		return nil, err
	}

	return &Game{
		ID:       uuid.New().String(),
		config:   cfg,
		board:    board,
		playerX:  playerX,
		playerO:  playerO,
		renderer: renderer,
		turn:     PlayerX,
		status:   StatusInProgress,
		winner:   None,
	}, nil
}

// BoardSize returns the side length of the board.
func (g *Game) BoardSize() int {
	return g.board.Size()
}

// WinStreak returns the streak length needed to win.
func (g *Game) WinStreak() int {
	return g.config.WinStreak
}

// Board returns a copy of the current board.
func (g *Game) Board() [][]PlayerMark {
	return g.board.Snapshot()
}

// Run plays the game to the end. The win check runs after every single
// placement and before the draw check, so a win on the last free cell is a
// win and a filled board ends the game at once.
func (g *Game) Run(ctx context.Context) (Outcome, error) {
	ctx, span := tracer.Start(ctx, "game.Run", trace.WithAttributes(
		attribute.String("game.id", g.ID),
		attribute.Int("game.size", g.config.Size),
		attribute.Int("game.win_streak", g.config.WinStreak),
	))
	defer span.End()

	if g.status != StatusInProgress {
		return g.outcome(), ErrGameFinished
	}

	for {
		mark := g.turn
		if g.isFull() {
			g.status = StatusDraw
			break
		}

		if err := g.playTurn(ctx, mark); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "turn failed")
			return Outcome{}, err
		}

		if CheckStreak(g.board, mark, g.config.WinStreak) == mark {
			g.status = StatusWon
			g.winner = mark
			break
		}

		if g.isFull() {
			g.status = StatusDraw
			break
		}

		g.turn = mark.Opponent()
	}

	outcome := g.outcome()
	span.SetAttributes(
		attribute.String("game.status", string(outcome.Status)),
		attribute.String("game.winner", string(outcome.Winner)),
		attribute.Int("game.moves", outcome.Moves),
	)
	slog.DebugContext(ctx, "game finished", "game.id", g.ID, "status", outcome.Status, "winner", outcome.Winner, "moves", outcome.Moves)

	return outcome, nil
}

// playTurn asks the player holding mark for a move and applies it.
func (g *Game) playTurn(ctx context.Context, mark PlayerMark) error {
	row, col, err := g.playerFor(mark).NextMove(ctx, g.board.Snapshot(), mark)
	if err != nil {
		return fmt.Errorf("player %s: %w", mark, err)
	}

	if !g.board.Place(mark, row, col) {
		return fmt.Errorf("%w: player %s chose (%d, %d)", ErrIllegalMove, mark, row, col)
	}
	g.occupied++

	slog.DebugContext(ctx, "mark placed", "game.id", g.ID, "mark", mark, "row", row, "col", col)

	g.renderer.Render(ctx, Placement{
		GameID: g.ID,
		Turn:   g.occupied,
		Mark:   mark,
		Row:    row,
		Col:    col,
		Board:  g.board.Snapshot(),
	})

	return nil
}

func (g *Game) playerFor(mark PlayerMark) Player {
	if mark == PlayerX {
		return g.playerX
	}
	return g.playerO
}

func (g *Game) isFull() bool {
	return g.occupied == g.config.Cells()
}

func (g *Game) outcome() Outcome {
	return Outcome{
		Status: g.status,
		Winner: g.winner,
		Moves:  g.occupied,
	}
}
