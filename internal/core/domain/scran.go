package domain

import (
	"math"
	"time"
)

// Scran is a food entry users vote on. Like/dislike counters only ever
// grow on the voting path; moderation may reset them separately.
type Scran struct {
	ID               int64     `json:"id"`
	ImageURL         string    `json:"imageUrl"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	Price            float64   `json:"price"`
	NumberOfLikes    int       `json:"numberOfLikes"`
	NumberOfDislikes int       `json:"numberOfDislikes"`
	Approved         bool      `json:"approved"`
	TelegramID       string    `json:"telegramId,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// LikesPercentage is the share of likes among all votes, as a whole
// percentage rounded half away from zero. A scran with no votes reports
// 50: the neutral midpoint, not zero, so an unvoted scran neither wins
// nor loses a pairing outright.
func (s Scran) LikesPercentage() int {
	total := s.NumberOfLikes + s.NumberOfDislikes
	if total == 0 {
		return 50
	}
	return int(math.Round(float64(s.NumberOfLikes) / float64(total) * 100))
}

// MajorityPreferred returns the id of the scran the crowd prefers.
// Equal percentages go to a: a fixed convention so the "correct" answer
// for a round is stable no matter when it is computed.
func MajorityPreferred(a, b Scran) int64 {
	if a.LikesPercentage() >= b.LikesPercentage() {
		return a.ID
	}
	return b.ID
}
