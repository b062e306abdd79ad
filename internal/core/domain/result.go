package domain

import "time"

// DailyUserResult is a session's final score for one date. The first
// submission wins; later submissions return the stored value unchanged.
type DailyUserResult struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	SessionID string    `json:"-"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}
