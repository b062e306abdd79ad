package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/scrandle/api/internal/core/domain"
	"github.com/scrandle/api/internal/core/ports"
)

const (
	roundsPerDay = 10
	scransPerDay = 2 * roundsPerDay

	// a scran needs more than this many total votes before its percentage
	// is trusted enough to appear in a daily game
	minVotesForEligibility = 2
)

type roundService struct {
	scranRepo ports.ScranRepository
	roundRepo ports.RoundRepository
	shuffle   func(n int, swap func(i, j int))
}

// NewRoundService builds the daily round generator. A nil shuffle selects
// the default random source; tests inject a deterministic one.
func NewRoundService(scranRepo ports.ScranRepository, roundRepo ports.RoundRepository, shuffle func(n int, swap func(i, j int))) ports.RoundService {
	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	return &roundService{
		scranRepo: scranRepo,
		roundRepo: roundRepo,
		shuffle:   shuffle,
	}
}

func (s *roundService) GenerateDaily(ctx context.Context, date string) (*ports.GenerateRoundsResult, error) {
	existing, err := s.roundRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return &ports.GenerateRoundsResult{Created: false, Rounds: existing}, nil
	}

	eligible, err := s.scranRepo.ListEligible(ctx, minVotesForEligibility)
	if err != nil {
		return nil, err
	}
	if len(eligible) < scransPerDay {
		return nil, domain.ErrInsufficientCandidates
	}

	s.shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})

	now := time.Now().UTC()
	rounds := make([]domain.DailyRound, 0, roundsPerDay)
	for number := 1; number <= roundsPerDay; number++ {
		rounds = append(rounds, domain.DailyRound{
			Date:        date,
			ScranAID:    eligible[(number-1)*2].ID,
			ScranBID:    eligible[(number-1)*2+1].ID,
			RoundNumber: number,
			CreatedAt:   now,
		})
	}

	if err := s.roundRepo.CreateAll(ctx, rounds); err != nil {
		if errors.Is(err, domain.ErrRoundsExist) {
			// a concurrent trigger won the insert race; its rounds are the
			// day's rounds
			existing, err := s.roundRepo.GetByDate(ctx, date)
			if err != nil {
				return nil, err
			}
			return &ports.GenerateRoundsResult{Created: false, Rounds: existing}, nil
		}
		return nil, err
	}

	return &ports.GenerateRoundsResult{Created: true, Rounds: rounds}, nil
}

func (s *roundService) GetDaily(ctx context.Context, date string) (*ports.DailyBoard, error) {
	rounds, err := s.roundRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if len(rounds) == 0 {
		return nil, domain.ErrRoundNotFound
	}

	ids := make([]int64, 0, len(rounds)*2)
	for _, round := range rounds {
		ids = append(ids, round.ScranAID, round.ScranBID)
	}
	scrans, err := s.scranRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	board := &ports.DailyBoard{Date: date, TotalRounds: len(rounds)}
	for _, round := range rounds {
		a, okA := scrans[round.ScranAID]
		b, okB := scrans[round.ScranBID]
		if !okA || !okB {
			return nil, fmt.Errorf("round %d references missing scrans: %w", round.RoundNumber, domain.ErrInternal)
		}
		board.Rounds = append(board.Rounds, ports.DailyRoundView{
			RoundNumber: round.RoundNumber,
			RoundID:     round.ID,
			ItemA:       a,
			ItemB:       b,
		})
	}
	return board, nil
}
