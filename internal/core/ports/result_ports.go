package ports

import (
	"context"

	"github.com/scrandle/api/internal/core/domain"
)

type ResultRepository interface {
	// Create returns domain.ErrResultExists when the session already has a
	// result for the date.
	Create(ctx context.Context, result *domain.DailyUserResult) error
	// GetBySessionAndDate returns (nil, nil) when no result exists.
	GetBySessionAndDate(ctx context.Context, sessionID, date string) (*domain.DailyUserResult, error)
	AverageForDate(ctx context.Context, date string) (avg float64, total int, err error)
}

type SubmitResultOutcome struct {
	Score         int
	AlreadyPlayed bool
}

type ScoredScran struct {
	domain.Scran
	LikesPercentage int `json:"likesPercentage"`
}

type RoundResult struct {
	Round         int         `json:"round"`
	ItemA         ScoredScran `json:"itemA"`
	ItemB         ScoredScran `json:"itemB"`
	UserChoice    *int64      `json:"userChoice"`
	CorrectChoice int64       `json:"correctChoice"`
	IsCorrect     bool        `json:"isCorrect"`
}

type SessionResults struct {
	Date        string        `json:"date"`
	Score       int           `json:"score"`
	TotalRounds int           `json:"totalRounds"`
	Percentage  int           `json:"percentage"`
	Results     []RoundResult `json:"results"`
}

type DailyAverage struct {
	Date         string   `json:"date"`
	TotalUsers   int      `json:"totalUsers"`
	AverageScore *float64 `json:"averageScore"`
}

type ResultService interface {
	Submit(ctx context.Context, sessionID, date string, score int) (*SubmitResultOutcome, error)
	Compute(ctx context.Context, sessionID, date string) (*SessionResults, error)
	// Average distinguishes "no data yet" (AverageScore nil) from an
	// average of zero.
	Average(ctx context.Context, date string) (*DailyAverage, error)
}
