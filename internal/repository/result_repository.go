package repository

//go:generate mockgen -source=result_repository.go -destination=mocks/mock_result_repository.go -package=mocks

import (
	"context"
	"ctchen222/Streak-Tac-Toe/internal/models"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("repository.result")

var ErrResultNotFound = errors.New("tournament result not found")

// ResultRepository defines the interface for tournament result storage.
type ResultRepository interface {
	Save(ctx context.Context, result *models.TournamentResult) error
	FindByID(ctx context.Context, id string) (*models.TournamentResult, error)
	List(ctx context.Context, limit int) ([]models.TournamentResult, error)
}

type sqliteResultRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewResultRepository creates a new SQLite-based ResultRepository.
func NewResultRepository(db *sqlx.DB) ResultRepository {
	return &sqliteResultRepository{db: db, now: time.Now}
}

// Save inserts result. A missing ID or creation time is filled in.
func (r *sqliteResultRepository) Save(ctx context.Context, result *models.TournamentResult) error {
	ctx, span := tracer.Start(ctx, "ResultRepository.Save")
	defer span.End()

	if result.ID == "" {
		result.ID = uuid.New().String()
	}
	if result.CreatedAt.IsZero() {
		result.CreatedAt = r.now().UTC().Truncate(time.Second)
	}
	span.SetAttributes(attribute.String("result.id", result.ID))

	query := `INSERT INTO tournament_results
		(id, player_one, player_two, board_size, win_streak, rounds, player_one_wins, player_two_wins, ties, created_at)
		VALUES (:id, :player_one, :player_two, :board_size, :win_streak, :rounds, :player_one_wins, :player_two_wins, :ties, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, result); err != nil {
		return fmt.Errorf("failed to save tournament result: %w", err)
	}
	return nil
}

// FindByID retrieves one result. It returns ErrResultNotFound for an unknown id.
func (r *sqliteResultRepository) FindByID(ctx context.Context, id string) (*models.TournamentResult, error) {
	ctx, span := tracer.Start(ctx, "ResultRepository.FindByID", trace.WithAttributes(attribute.String("result.id", id)))
	defer span.End()

	var result models.TournamentResult
	query := `SELECT * FROM tournament_results WHERE id = ?`
	if err := r.db.GetContext(ctx, &result, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrResultNotFound, id)
		}
		return nil, fmt.Errorf("failed to get tournament result: %w", err)
	}
	return &result, nil
}

// List returns up to limit results, newest first.
func (r *sqliteResultRepository) List(ctx context.Context, limit int) ([]models.TournamentResult, error) {
	ctx, span := tracer.Start(ctx, "ResultRepository.List", trace.WithAttributes(attribute.Int("limit", limit)))
	defer span.End()

	results := []models.TournamentResult{}
	query := `SELECT * FROM tournament_results ORDER BY created_at DESC, rowid DESC LIMIT ?`
	if err := r.db.SelectContext(ctx, &results, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list tournament results: %w", err)
	}
	return results, nil
}
