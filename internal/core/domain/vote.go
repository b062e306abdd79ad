package domain

import "time"

// ScrandleVote records a single session's choice on a round. At most one
// vote exists per (session, round); the unique index in storage is the
// guard, not application locking.
type ScrandleVote struct {
	ID              int64     `json:"id"`
	DailyScrandleID int64     `json:"dailyRoundId"`
	SessionID       string    `json:"-"`
	ChosenScranID   int64     `json:"chosenItemId"`
	CreatedAt       time.Time `json:"created_at"`
}
