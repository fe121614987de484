package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"
)

// newCommander registers every subcommand on a commander whose top-level
// flags live in fs. Nothing is loaded here, so help works with a broken
// config file.
func newCommander(a *app, fs *flag.FlagSet) *subcommands.Commander {
	fs.StringVar(&a.configPath, "config", "./config.yml", "path to the yaml config file")

	cdr := subcommands.NewCommander(fs, "streak")
	cdr.Register(cdr.HelpCommand(), "")
	cdr.Register(cdr.FlagsCommand(), "")
	cdr.Register(cdr.CommandsCommand(), "")

	cdr.Register(&tournamentCmd{app: a}, "")
	cdr.Register(&playCmd{app: a}, "")
	cdr.Register(&resultsCmd{app: a}, "")
	return cdr
}

func main() {
	a := &app{in: os.Stdin, out: os.Stdout, errOut: os.Stderr}
	cdr := newCommander(a, flag.CommandLine)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	status := cdr.Execute(ctx)
	stop()
	os.Exit(int(status))
}
