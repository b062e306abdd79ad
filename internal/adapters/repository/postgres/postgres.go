package postgres

import (
	"errors"

	"github.com/lib/pq"
)

// uniqueViolation is the postgres error code raised when an insert hits a
// unique index. The unique indexes on daily_scrandles, scrandle_votes and
// daily_user_results are the concurrency guards for round generation,
// duplicate votes and duplicate results.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
