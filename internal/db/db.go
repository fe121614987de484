package db

import (
	"context"
	"fmt"
	"log/slog"

	_ "github.com/glebarez/go-sqlite"
	"github.com/jmoiron/sqlx"
)

// Connect opens the SQLite database at dbPath. ":memory:" is accepted for
// throwaway databases.
func Connect(ctx context.Context, dbPath string) (*sqlx.DB, error) {
	pool, err := sqlx.ConnectContext(ctx, "sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	// SQLite serialises writers; one connection keeps ":memory:" databases shared.
	pool.SetMaxOpenConns(1)

	slog.DebugContext(ctx, "connected to database", "path", dbPath)
	return pool, nil
}

// InitializeDB creates the schema if it does not exist yet.
func InitializeDB(ctx context.Context, conn *sqlx.DB) error {
	resultSchema := `
	CREATE TABLE IF NOT EXISTS tournament_results (
		id TEXT PRIMARY KEY,
		player_one TEXT NOT NULL,
		player_two TEXT NOT NULL,
		board_size INTEGER NOT NULL,
		win_streak INTEGER NOT NULL,
		rounds INTEGER NOT NULL,
		player_one_wins INTEGER NOT NULL,
		player_two_wins INTEGER NOT NULL,
		ties INTEGER NOT NULL,
		created_at DATETIME NOT NULL
	);`

	if _, err := conn.ExecContext(ctx, resultSchema); err != nil {
		return fmt.Errorf("failed to create tournament_results table: %w", err)
	}

	slog.DebugContext(ctx, "database schema verified")
	return nil
}
