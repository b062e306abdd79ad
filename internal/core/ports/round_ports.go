package ports

import (
	"context"

	"github.com/scrandle/api/internal/core/domain"
)

type RoundRepository interface {
	// CreateAll persists a full day's rounds in one transaction and fills
	// in the generated ids. It returns domain.ErrRoundsExist when another
	// writer already created rounds for the same date.
	CreateAll(ctx context.Context, rounds []domain.DailyRound) error
	GetByDate(ctx context.Context, date string) ([]domain.DailyRound, error)
	GetByID(ctx context.Context, id int64) (*domain.DailyRound, error)
}

type GenerateRoundsResult struct {
	Created bool
	Rounds  []domain.DailyRound
}

type DailyRoundView struct {
	RoundNumber int          `json:"roundNumber"`
	RoundID     int64        `json:"roundId"`
	ItemA       domain.Scran `json:"itemA"`
	ItemB       domain.Scran `json:"itemB"`
}

type DailyBoard struct {
	Date        string           `json:"date"`
	TotalRounds int              `json:"totalRounds"`
	Rounds      []DailyRoundView `json:"rounds"`
}

type RoundService interface {
	// GenerateDaily creates the date's ten rounds, or returns the existing
	// set with Created=false. Safe to call more than once per date.
	GenerateDaily(ctx context.Context, date string) (*GenerateRoundsResult, error)
	GetDaily(ctx context.Context, date string) (*DailyBoard, error)
}
