package tournament

import (
	"context"
	"ctchen222/Streak-Tac-Toe/internal/game"
	"ctchen222/Streak-Tac-Toe/internal/models"
	"ctchen222/Streak-Tac-Toe/internal/repository"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "ctchen222/Streak-Tac-Toe/tournament"

var tracer = otel.Tracer("tournament")

var ErrInvalidRounds = errors.New("a tournament needs at least one round")

// Entrant is one of the two sides of a tournament.
type Entrant struct {
	Name   string
	Player game.Player
}

// Tournament plays a fixed number of games between two entrants. The
// entrants swap marks every round, starting with the first entrant as X.
type Tournament struct {
	ID string

	rounds   int
	config   game.Config
	renderer game.Renderer
	entrants [2]Entrant
	results  repository.ResultRepository
	meter    metric.Meter
}

// Option configures a Tournament.
type Option func(*Tournament)

// WithResultRepository stores the final tally in repo.
func WithResultRepository(repo repository.ResultRepository) Option {
	return func(t *Tournament) {
		t.results = repo
	}
}

// WithMeterProvider records metrics through mp instead of the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(t *Tournament) {
		t.meter = mp.Meter(instrumentationName)
	}
}

func New(rounds int, cfg game.Config, renderer game.Renderer, first, second Entrant, opts ...Option) (*Tournament, error) {
	if rounds < 1 {
		return nil, ErrInvalidRounds
	}
	cfg, err := game.NewConfig(cfg.Size, cfg.WinStreak)
	if err != nil {
		return nil, err
	}

	t := &Tournament{
		ID:       uuid.New().String(),
		rounds:   rounds,
		config:   cfg,
		renderer: renderer,
		entrants: [2]Entrant{first, second},
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.meter == nil {
		t.meter = otel.Meter(instrumentationName)
	}
	return t, nil
}

type instruments struct {
	games metric.Int64Counter
	moves metric.Int64Histogram
}

func (t *Tournament) instruments() (instruments, error) {
	games, err := t.meter.Int64Counter("tournament.games",
		metric.WithDescription("Finished tournament games by outcome."))
	if err != nil {
		return instruments{}, fmt.Errorf("failed to create games counter: %w", err)
	}
	moves, err := t.meter.Int64Histogram("tournament.game.moves",
		metric.WithDescription("Marks placed per finished game."))
	if err != nil {
		return instruments{}, fmt.Errorf("failed to create moves histogram: %w", err)
	}
	return instruments{games: games, moves: moves}, nil
}

// Play runs every round in order and returns the tally. A game error stops
// the tournament.
func (t *Tournament) Play(ctx context.Context) (*models.TournamentResult, error) {
	ctx, span := tracer.Start(ctx, "tournament.Play", trace.WithAttributes(
		attribute.String("tournament.id", t.ID),
		attribute.Int("tournament.rounds", t.rounds),
	))
	defer span.End()

	inst, err := t.instruments()
	if err != nil {
		return nil, err
	}

	result := &models.TournamentResult{
		ID:        t.ID,
		PlayerOne: t.entrants[0].Name,
		PlayerTwo: t.entrants[1].Name,
		BoardSize: t.config.Size,
		WinStreak: t.config.WinStreak,
		Rounds:    t.rounds,
	}
	wins := [2]int{}

	for round := 0; round < t.rounds; round++ {
		x, o := round%2, (round+1)%2

		g, err := game.NewGame(t.entrants[x].Player, t.entrants[o].Player, t.config, t.renderer)
		if err != nil {
			return nil, err
		}
		outcome, err := g.Run(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "game failed")
			return nil, fmt.Errorf("round %d: %w", round+1, err)
		}

		label := "draw"
		switch outcome.Winner {
		case game.PlayerX:
			wins[x]++
			label = "x"
		case game.PlayerO:
			wins[o]++
			label = "o"
		default:
			result.Ties++
		}
		inst.games.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", label)))
		inst.moves.Record(ctx, int64(outcome.Moves))

		slog.DebugContext(ctx, "round finished", "tournament.id", t.ID, "round", round+1, "game.id", g.ID, "outcome", label)
	}

	result.PlayerOneWins, result.PlayerTwoWins = wins[0], wins[1]
	slog.InfoContext(ctx, "tournament finished", "tournament.id", t.ID,
		"player_one", result.PlayerOne, "player_one_wins", result.PlayerOneWins,
		"player_two", result.PlayerTwo, "player_two_wins", result.PlayerTwoWins,
		"ties", result.Ties)

	if t.results != nil {
		if err := t.results.Save(ctx, result); err != nil {
			span.RecordError(err)
			return result, fmt.Errorf("failed to record tournament: %w", err)
		}
	}
	return result, nil
}

// WriteResults prints the final tally block.
func WriteResults(w io.Writer, r *models.TournamentResult) error {
	_, err := fmt.Fprintf(w, "######### Results #########\n"+
		"Player 1, %s won: %d rounds\n"+
		"Player 2, %s won: %d rounds\n"+
		"Ties: %d\n",
		r.PlayerOne, r.PlayerOneWins,
		r.PlayerTwo, r.PlayerTwoWins,
		r.Ties)
	return err
}
