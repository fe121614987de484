package main

import (
	"context"
	"ctchen222/Streak-Tac-Toe/internal/game"
	"ctchen222/Streak-Tac-Toe/internal/player"
	"flag"
	"fmt"
	"log/slog"

	"github.com/google/subcommands"
)

type playCmd struct {
	*app
}

func (*playCmd) Name() string     { return "play" }
func (*playCmd) Synopsis() string { return "Play a single game" }
func (*playCmd) Usage() string {
	return `play <size> <win-streak> <renderer> <playerX> <playerO>
`
}

func (*playCmd) SetFlags(*flag.FlagSet) {}

func (c *playCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 5 {
		fmt.Fprint(c.out, c.Usage())
		return subcommands.ExitUsageError
	}
	args, ok := parseMatchArgs(c.out, 1, f.Args())
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
	x, err := players.New(args.Players[0])
	if err != nil {
		slog.ErrorContext(ctx, "failed to create player", "player", args.Players[0], "error", err)
		return subcommands.ExitFailure
	}
	o, err := players.New(args.Players[1])
	if err != nil {
		slog.ErrorContext(ctx, "failed to create player", "player", args.Players[1], "error", err)
		return subcommands.ExitFailure
	}

	g, err := game.NewGame(x, o, cfg, renderer)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return subcommands.ExitUsageError
	}
	outcome, err := g.Run(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "game failed", "game.id", g.ID, "error", err)
		return subcommands.ExitFailure
	}

	if outcome.Status == game.StatusWon {
		fmt.Fprintf(c.out, "Player %s won!\n", outcome.Winner)
	} else {
		fmt.Fprintln(c.out, "Draw.")
	}
	return subcommands.ExitSuccess
}
