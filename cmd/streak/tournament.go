package main

import (
	"context"
	"ctchen222/Streak-Tac-Toe/internal/player"
	"ctchen222/Streak-Tac-Toe/internal/tournament"
	"flag"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/subcommands"
)

type tournamentCmd struct {
	*app
	record bool
}

func (*tournamentCmd) Name() string { return "tournament" }
func (*tournamentCmd) Synopsis() string {
	return "Play a series of games between two players and report the tally"
}
func (*tournamentCmd) Usage() string {
	return `tournament [-record] <rounds> <size> <win-streak> <renderer> <player1> <player2>
`
}

func (c *tournamentCmd) SetFlags(flags *flag.FlagSet) {
	flags.BoolVar(&c.record, "record", false, "store the final tally in the results database")
}

func (c *tournamentCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 6 {
		fmt.Fprint(c.out, c.Usage())
		return subcommands.ExitUsageError
	}
	rounds, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(c.out, "rounds must be a number, got %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}
	args, ok := parseMatchArgs(c.out, rounds, f.Args()[1:])
	if !ok {
		return subcommands.ExitUsageError
	}
	cfg, err := args.gameConfig()
	if err != nil {
		fmt.Fprintln(c.out, err)
		return subcommands.ExitUsageError
	}

	teardown, err := c.setup(ctx)
	if err != nil {
		fmt.Fprintln(c.errOut, err)
		return subcommands.ExitFailure
	}
	defer teardown()

	renderer, closeRenderer, err := c.newRenderer(ctx, args.Renderer)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create renderer", "renderer", args.Renderer, "error", err)
		return subcommands.ExitFailure
	}
	defer closeRenderer()

	players := player.NewFactory(c.in, c.out)
	var entrants [2]tournament.Entrant
	for i, name := range args.Players {
		p, err := players.New(name)
		if err != nil {
			slog.ErrorContext(ctx, "failed to create player", "player", name, "error", err)
			return subcommands.ExitFailure
		}
		entrants[i] = tournament.Entrant{Name: name, Player: p}
	}

	var opts []tournament.Option
	if c.record {
		repo, conn, err := c.openResults(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "failed to open results database", "path", c.cfg.SQLitePath, "error", err)
			return subcommands.ExitFailure
		}
		defer conn.Close()
		opts = append(opts, tournament.WithResultRepository(repo))
	}

	t, err := tournament.New(args.Rounds, cfg, renderer, entrants[0], entrants[1], opts...)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return subcommands.ExitUsageError
	}

	result, err := t.Play(ctx)
	if result != nil {
		if werr := tournament.WriteResults(c.out, result); werr != nil {
			slog.ErrorContext(ctx, "failed to write results", "error", werr)
		}
	}
	if err != nil {
		slog.ErrorContext(ctx, "tournament failed", "tournament.id", t.ID, "error", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
