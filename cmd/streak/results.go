package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"
)

type resultsCmd struct {
	*app
	limit int
}

func (*resultsCmd) Name() string     { return "results" }
func (*resultsCmd) Synopsis() string { return "List recorded tournament results, newest first" }
func (*resultsCmd) Usage() string {
	return `results [-limit N]
`
}

func (c *resultsCmd) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.limit, "limit", 10, "maximum number of results to list")
}

func (c *resultsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.limit < 1 {
		fmt.Fprintf(c.out, "limit must be at least 1, got %d\n", c.limit)
		return subcommands.ExitUsageError
	}

	teardown, err := c.setup(ctx)
	if err != nil {
		fmt.Fprintln(c.errOut, err)
		return subcommands.ExitFailure
	}
	defer teardown()

	repo, conn, err := c.openResults(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to open results database", "path", c.cfg.SQLitePath, "error", err)
		return subcommands.ExitFailure
	}
	defer conn.Close()

	results, err := repo.List(ctx, c.limit)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list results", "error", err)
		return subcommands.ExitFailure
	}
	if len(results) == 0 {
		fmt.Fprintln(c.out, "No recorded tournaments.")
		return subcommands.ExitSuccess
	}

	w := tabwriter.NewWriter(c.out, 4, 8, 2, ' ', 0)
	fmt.Fprintln(w, "PLAYED\tPLAYER 1\tPLAYER 2\tSIZE\tSTREAK\tROUNDS\tP1 WINS\tP2 WINS\tTIES")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
			r.CreatedAt.Format(time.DateTime), r.PlayerOne, r.PlayerTwo,
			r.BoardSize, r.WinStreak, r.Rounds,
			r.PlayerOneWins, r.PlayerTwoWins, r.Ties)
	}
	w.Flush()
	return subcommands.ExitSuccess
}
