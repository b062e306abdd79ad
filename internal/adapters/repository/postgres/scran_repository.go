package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/scrandle/api/internal/core/domain"
	"github.com/scrandle/api/internal/core/ports"
)

type scranRepository struct {
	db *sql.DB
}

func NewScranRepository(db *sql.DB) ports.ScranRepository {
	return &scranRepository{
		db: db,
	}
}

const scranColumns = `id, image_url, name, description, price, number_of_likes, number_of_dislikes, approved, telegram_id, created_at`

// sortColumns maps the API's sort field names onto real columns. Anything
// outside this map falls back to id, which also keeps user input out of
// the SQL string.
var sortColumns = map[string]string{
	"id":               "id",
	"name":             "name",
	"price":            "price",
	"numberOfLikes":    "number_of_likes",
	"numberOfDislikes": "number_of_dislikes",
	"approved":         "approved",
}

func (r *scranRepository) GetByID(ctx context.Context, id int64) (*domain.Scran, error) {
	query := `SELECT ` + scranColumns + ` FROM scrans WHERE id = $1`

	scran, err := scanScran(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrScranNotFound
		}
		return nil, fmt.Errorf("failed to get scran: %w", err)
	}
	return scran, nil
}

func (r *scranRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]domain.Scran, error) {
	query := `SELECT ` + scranColumns + ` FROM scrans WHERE id = ANY($1)`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to get scrans: %w", err)
	}
	defer rows.Close()

	out := make(map[int64]domain.Scran, len(ids))
	for rows.Next() {
		scran, err := scanScran(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scran: %w", err)
		}
		out[scran.ID] = *scran
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating scrans: %w", err)
	}
	return out, nil
}

func (r *scranRepository) ListEligible(ctx context.Context, minVotes int) ([]domain.Scran, error) {
	query := `
		SELECT ` + scranColumns + `
		FROM scrans
		WHERE approved = TRUE AND number_of_likes + number_of_dislikes > $1
	`
	rows, err := r.db.QueryContext(ctx, query, minVotes)
	if err != nil {
		return nil, fmt.Errorf("failed to list eligible scrans: %w", err)
	}
	defer rows.Close()

	return collectScrans(rows)
}

func (r *scranRepository) List(ctx context.Context, input ports.ListScransInput) ([]domain.Scran, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scrans`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count scrans: %w", err)
	}

	column, ok := sortColumns[input.Sort]
	if !ok {
		column = "id"
	}
	direction := "DESC"
	if input.Order == "asc" {
		direction = "ASC"
	}

	query := fmt.Sprintf(`SELECT %s FROM scrans ORDER BY %s %s LIMIT $1 OFFSET $2`,
		scranColumns, column, direction)

	rows, err := r.db.QueryContext(ctx, query, input.Limit, (input.Page-1)*input.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list scrans: %w", err)
	}
	defer rows.Close()

	scrans, err := collectScrans(rows)
	if err != nil {
		return nil, 0, err
	}
	return scrans, total, nil
}

func (r *scranRepository) SetApproved(ctx context.Context, id int64, approved bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE scrans SET approved = $1 WHERE id = $2`, approved, id)
	if err != nil {
		return fmt.Errorf("failed to update scran approval: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrScranNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScran(row rowScanner) (*domain.Scran, error) {
	var scran domain.Scran
	var description, telegramID sql.NullString
	err := row.Scan(
		&scran.ID, &scran.ImageURL, &scran.Name, &description, &scran.Price,
		&scran.NumberOfLikes, &scran.NumberOfDislikes, &scran.Approved,
		&telegramID, &scran.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	scran.Description = description.String
	scran.TelegramID = telegramID.String
	return &scran, nil
}

func collectScrans(rows *sql.Rows) ([]domain.Scran, error) {
	var scrans []domain.Scran
	for rows.Next() {
		scran, err := scanScran(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scran: %w", err)
		}
		scrans = append(scrans, *scran)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating scrans: %w", err)
	}
	return scrans, nil
}
