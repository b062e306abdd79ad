package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/scrandle/api/internal/core/domain"
	"github.com/scrandle/api/internal/core/ports"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

// Record inserts the vote and bumps the chosen scran's like counter in the
// same transaction. The counter update is a single atomic increment, not a
// read-modify-write, so concurrent votes on the same scran cannot lose
// updates. The unique index on (session_id, daily_scrandle_id) rejects a
// session's second vote on a round as domain.ErrDuplicateVote.
func (r *voteRepository) Record(ctx context.Context, vote *domain.ScrandleVote) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insert := `
		INSERT INTO scrandle_votes (daily_scrandle_id, session_id, chosen_scran_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, insert, vote.DailyScrandleID, vote.SessionID, vote.ChosenScranID, vote.CreatedAt).Scan(&vote.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateVote
		}
		return fmt.Errorf("failed to insert vote: %w", err)
	}

	increment := `UPDATE scrans SET number_of_likes = number_of_likes + 1 WHERE id = $1`
	if _, err := tx.ExecContext(ctx, increment, vote.ChosenScranID); err != nil {
		return fmt.Errorf("failed to increment likes: %w", err)
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateVote
		}
		return fmt.Errorf("failed to commit vote: %w", err)
	}
	return nil
}

func (r *voteRepository) ListBySession(ctx context.Context, sessionID string, roundIDs []int64) ([]domain.ScrandleVote, error) {
	query := `
		SELECT id, daily_scrandle_id, session_id, chosen_scran_id, created_at
		FROM scrandle_votes
		WHERE session_id = $1 AND daily_scrandle_id = ANY($2)
	`
	rows, err := r.db.QueryContext(ctx, query, sessionID, pq.Array(roundIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	defer rows.Close()

	var votes []domain.ScrandleVote
	for rows.Next() {
		var vote domain.ScrandleVote
		if err := rows.Scan(&vote.ID, &vote.DailyScrandleID, &vote.SessionID, &vote.ChosenScranID, &vote.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, vote)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating votes: %w", err)
	}
	return votes, nil
}
