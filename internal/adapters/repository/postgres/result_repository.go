package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/scrandle/api/internal/core/domain"
	"github.com/scrandle/api/internal/core/ports"
)

type resultRepository struct {
	db *sql.DB
}

func NewResultRepository(db *sql.DB) ports.ResultRepository {
	return &resultRepository{
		db: db,
	}
}

func (r *resultRepository) Create(ctx context.Context, result *domain.DailyUserResult) error {
	query := `
		INSERT INTO daily_user_results (date, session_id, score, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query, result.Date, result.SessionID, result.Score, result.CreatedAt).Scan(&result.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrResultExists
		}
		return fmt.Errorf("failed to insert result: %w", err)
	}
	return nil
}

func (r *resultRepository) GetBySessionAndDate(ctx context.Context, sessionID, date string) (*domain.DailyUserResult, error) {
	query := `
		SELECT id, date, session_id, score, created_at
		FROM daily_user_results
		WHERE session_id = $1 AND date = $2
	`
	var result domain.DailyUserResult
	err := r.db.QueryRowContext(ctx, query, sessionID, date).Scan(
		&result.ID, &result.Date, &result.SessionID, &result.Score, &result.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}
	return &result, nil
}

func (r *resultRepository) AverageForDate(ctx context.Context, date string) (float64, int, error) {
	query := `
		SELECT COALESCE(AVG(score), 0), COUNT(*)
		FROM daily_user_results
		WHERE date = $1
	`
	var avg float64
	var total int
	if err := r.db.QueryRowContext(ctx, query, date).Scan(&avg, &total); err != nil {
		return 0, 0, fmt.Errorf("failed to average results: %w", err)
	}
	return avg, total, nil
}
