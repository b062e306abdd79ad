package domain

import "time"

// DailyRound is one head-to-head pairing for a calendar date. Rounds are
// created once per date, numbered 1..10, and never change afterwards.
type DailyRound struct {
	ID          int64     `json:"id"`
	Date        string    `json:"date"` // YYYY-MM-DD
	ScranAID    int64     `json:"itemAId"`
	ScranBID    int64     `json:"itemBId"`
	RoundNumber int       `json:"roundNumber"`
	CreatedAt   time.Time `json:"created_at"`
}
