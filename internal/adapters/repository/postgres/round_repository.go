package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/scrandle/api/internal/core/domain"
	"github.com/scrandle/api/internal/core/ports"
)

type roundRepository struct {
	db *sql.DB
}

func NewRoundRepository(db *sql.DB) ports.RoundRepository {
	return &roundRepository{
		db: db,
	}
}

// CreateAll inserts the whole day's rounds in one transaction so a failed
// insert leaves no half-populated day behind. The unique index on
// (date, round_number) turns a concurrent double-trigger into a
// domain.ErrRoundsExist instead of duplicate rows.
func (r *roundRepository) CreateAll(ctx context.Context, rounds []domain.DailyRound) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO daily_scrandles (date, scran_a_id, scran_b_id, round_number, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare round statement: %w", err)
	}
	defer stmt.Close()

	for i := range rounds {
		round := &rounds[i]
		err := stmt.QueryRowContext(ctx, round.Date, round.ScranAID, round.ScranBID, round.RoundNumber, round.CreatedAt).Scan(&round.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrRoundsExist
			}
			return fmt.Errorf("failed to insert round %d: %w", round.RoundNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrRoundsExist
		}
		return fmt.Errorf("failed to commit rounds: %w", err)
	}
	return nil
}

func (r *roundRepository) GetByDate(ctx context.Context, date string) ([]domain.DailyRound, error) {
	query := `
		SELECT id, date, scran_a_id, scran_b_id, round_number, created_at
		FROM daily_scrandles
		WHERE date = $1
		ORDER BY round_number ASC
	`
	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get rounds: %w", err)
	}
	defer rows.Close()

	var rounds []domain.DailyRound
	for rows.Next() {
		var round domain.DailyRound
		if err := rows.Scan(&round.ID, &round.Date, &round.ScranAID, &round.ScranBID, &round.RoundNumber, &round.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan round: %w", err)
		}
		rounds = append(rounds, round)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rounds: %w", err)
	}
	return rounds, nil
}

func (r *roundRepository) GetByID(ctx context.Context, id int64) (*domain.DailyRound, error) {
	query := `
		SELECT id, date, scran_a_id, scran_b_id, round_number, created_at
		FROM daily_scrandles
		WHERE id = $1
	`
	var round domain.DailyRound
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&round.ID, &round.Date, &round.ScranAID, &round.ScranBID, &round.RoundNumber, &round.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrRoundNotFound
		}
		return nil, fmt.Errorf("failed to get round: %w", err)
	}
	return &round, nil
}
