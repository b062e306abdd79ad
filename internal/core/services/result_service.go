package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/scrandle/api/internal/core/domain"
	"github.com/scrandle/api/internal/core/ports"
)

const maxScore = 10

type resultService struct {
	scranRepo  ports.ScranRepository
	roundRepo  ports.RoundRepository
	voteRepo   ports.VoteRepository
	resultRepo ports.ResultRepository
}

func NewResultService(scranRepo ports.ScranRepository, roundRepo ports.RoundRepository, voteRepo ports.VoteRepository, resultRepo ports.ResultRepository) ports.ResultService {
	return &resultService{
		scranRepo:  scranRepo,
		roundRepo:  roundRepo,
		voteRepo:   voteRepo,
		resultRepo: resultRepo,
	}
}

// Submit stores a session's score for the date. A second submission, no
// matter the score, returns the stored value: clients replaying with a
// better number must not overwrite.
func (s *resultService) Submit(ctx context.Context, sessionID, date string, score int) (*ports.SubmitResultOutcome, error) {
	if score < 0 || score > maxScore {
		return nil, domain.ErrInvalidScore
	}

	existing, err := s.resultRepo.GetBySessionAndDate(ctx, sessionID, date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &ports.SubmitResultOutcome{Score: existing.Score, AlreadyPlayed: true}, nil
	}

	result := &domain.DailyUserResult{
		Date:      date,
		SessionID: sessionID,
		Score:     score,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.resultRepo.Create(ctx, result); err != nil {
		if errors.Is(err, domain.ErrResultExists) {
			// lost a race against a concurrent submission from the same
			// session; the stored row wins
			stored, err := s.resultRepo.GetBySessionAndDate(ctx, sessionID, date)
			if err != nil {
				return nil, err
			}
			if stored != nil {
				return &ports.SubmitResultOutcome{Score: stored.Score, AlreadyPlayed: true}, nil
			}
		}
		return nil, err
	}

	return &ports.SubmitResultOutcome{Score: score}, nil
}

// Compute joins the session's votes against the date's rounds. A round the
// session never voted on still appears, with a nil choice counted as
// incorrect.
func (s *resultService) Compute(ctx context.Context, sessionID, date string) (*ports.SessionResults, error) {
	rounds, err := s.roundRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if len(rounds) == 0 {
		return nil, domain.ErrRoundNotFound
	}

	roundIDs := make([]int64, 0, len(rounds))
	scranIDs := make([]int64, 0, len(rounds)*2)
	for _, round := range rounds {
		roundIDs = append(roundIDs, round.ID)
		scranIDs = append(scranIDs, round.ScranAID, round.ScranBID)
	}

	votes, err := s.voteRepo.ListBySession(ctx, sessionID, roundIDs)
	if err != nil {
		return nil, err
	}
	votesByRound := make(map[int64]domain.ScrandleVote, len(votes))
	for _, vote := range votes {
		votesByRound[vote.DailyScrandleID] = vote
	}

	scrans, err := s.scranRepo.GetByIDs(ctx, scranIDs)
	if err != nil {
		return nil, err
	}

	out := &ports.SessionResults{Date: date, TotalRounds: len(rounds)}
	for _, round := range rounds {
		a, okA := scrans[round.ScranAID]
		b, okB := scrans[round.ScranBID]
		if !okA || !okB {
			return nil, domain.ErrScranNotFound
		}

		correct := domain.MajorityPreferred(a, b)
		entry := ports.RoundResult{
			Round:         round.RoundNumber,
			ItemA:         ports.ScoredScran{Scran: a, LikesPercentage: a.LikesPercentage()},
			ItemB:         ports.ScoredScran{Scran: b, LikesPercentage: b.LikesPercentage()},
			CorrectChoice: correct,
		}
		if vote, ok := votesByRound[round.ID]; ok {
			chosen := vote.ChosenScranID
			entry.UserChoice = &chosen
			entry.IsCorrect = chosen == correct
		}
		if entry.IsCorrect {
			out.Score++
		}
		out.Results = append(out.Results, entry)
	}

	out.Percentage = int(math.Round(float64(out.Score) / float64(out.TotalRounds) * 100))
	return out, nil
}

func (s *resultService) Average(ctx context.Context, date string) (*ports.DailyAverage, error) {
	avg, total, err := s.resultRepo.AverageForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	out := &ports.DailyAverage{Date: date, TotalUsers: total}
	if total > 0 {
		rounded := math.Round(avg*10) / 10
		out.AverageScore = &rounded
	}
	return out, nil
}
