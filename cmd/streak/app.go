package main

import (
	"context"
	"ctchen222/Streak-Tac-Toe/internal/config"
	"ctchen222/Streak-Tac-Toe/internal/db"
	"ctchen222/Streak-Tac-Toe/internal/game"
	"ctchen222/Streak-Tac-Toe/internal/logger"
	"ctchen222/Streak-Tac-Toe/internal/player"
	"ctchen222/Streak-Tac-Toe/internal/render"
	"ctchen222/Streak-Tac-Toe/internal/repository"
	"ctchen222/Streak-Tac-Toe/internal/telemetry"
	"ctchen222/Streak-Tac-Toe/internal/validator"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
)

const (
	unknownRendererMessage = "Choose a renderer, and start again. \nPlease choose one of the following [%s]\n"
	unknownPlayerMessage   = "Choose a player, and start again.\nThe players: [%s]\n"
)

// app holds what every subcommand shares.
type app struct {
	configPath string
	cfg        *config.Config
	in         io.Reader
	out        io.Writer
	errOut     io.Writer
}

// setup loads the config unless one is already set, then starts telemetry
// and the default logger. The returned teardown is never nil.
func (a *app) setup(ctx context.Context) (func(), error) {
	noop := func() {}
	if a.cfg == nil {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return noop, err
		}
		a.cfg = cfg
	}

	shutdown, err := telemetry.InitOtel(ctx, a.cfg.Telemetry)
	if err != nil {
		return noop, fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	logger.Init(a.cfg.SlogLevel(), a.cfg.Telemetry.Enabled)

	return func() {
		if err := shutdown(context.Background()); err != nil {
			slog.Error("error shutting down telemetry", "error", err)
		}
	}, nil
}

// matchArgs are the positional arguments common to play and tournament.
type matchArgs struct {
	Rounds    int `validate:"min=1"`
	Size      int `validate:"min=1"`
	WinStreak int
	Renderer  string
	Players   [2]string
}

// parseMatchArgs reads "<size> <win-streak> <renderer> <player1> <player2>".
// It writes the reason to out and returns false when they are unusable.
func parseMatchArgs(out io.Writer, rounds int, args []string) (matchArgs, bool) {
	m := matchArgs{Rounds: rounds, Renderer: args[2], Players: [2]string{args[3], args[4]}}

	if !render.IsRenderer(m.Renderer) {
		fmt.Fprintf(out, unknownRendererMessage, strings.Join(render.Names, ", "))
		return m, false
	}
	for _, name := range m.Players {
		if !player.IsPlayer(name) {
			fmt.Fprintf(out, unknownPlayerMessage, strings.Join(player.Names, ", "))
			return m, false
		}
	}

	var err error
	if m.Size, err = strconv.Atoi(args[0]); err != nil {
		fmt.Fprintf(out, "board size must be a number, got %q\n", args[0])
		return m, false
	}
	if m.WinStreak, err = strconv.Atoi(args[1]); err != nil {
		fmt.Fprintf(out, "win streak must be a number, got %q\n", args[1])
		return m, false
	}
	if err := validator.GetValidator().Struct(m); err != nil {
		fmt.Fprintln(out, validator.Describe(err))
		return m, false
	}
	if m.hasHuman() && m.Size > player.MaxBoardSize {
		fmt.Fprintf(out, "Size must be at most %d when a human plays, got %d\n", player.MaxBoardSize, m.Size)
		return m, false
	}
	return m, true
}

// newRenderer builds the named renderer. The returned close func releases
// whatever the renderer holds and is never nil.
func (a *app) newRenderer(ctx context.Context, name string) (game.Renderer, func(), error) {
	opts := render.Options{
		Out:            a.out,
		Channel:        a.cfg.Redis.Channel,
		PublishTimeout: a.cfg.Redis.PublishTimeout,
	}
	closer := func() {}

	if strings.EqualFold(name, render.RedisName) {
		rdb, err := db.NewRedisClient(ctx, a.cfg.Redis.Addr)
		if err != nil {
			return nil, closer, err
		}
		opts.Publisher = rdb
		closer = func() { rdb.Close() }
	}

	r, err := render.New(name, opts)
	if err != nil {
		closer()
		return nil, func() {}, err
	}
	return r, closer, nil
}

// openResults connects to the result store and makes sure its schema exists.
func (a *app) openResults(ctx context.Context) (repository.ResultRepository, *sqlx.DB, error) {
	conn, err := db.Connect(ctx, a.cfg.SQLitePath)
	if err != nil {
		return nil, nil, err
	}
	if err := db.InitializeDB(ctx, conn); err != nil {
		conn.Close()
		return nil, nil, err
	}
	return repository.NewResultRepository(conn), conn, nil
}

func (m matchArgs) hasHuman() bool {
	for _, name := range m.Players {
		if strings.EqualFold(name, player.Human) {
			return true
		}
	}
	return false
}

func (m matchArgs) gameConfig() (game.Config, error) {
	return game.NewConfig(m.Size, m.WinStreak)
}
