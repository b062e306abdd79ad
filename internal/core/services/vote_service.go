package services

import (
	"context"
	"time"

	"github.com/scrandle/api/internal/core/domain"
	"github.com/scrandle/api/internal/core/ports"
)

type voteService struct {
	scranRepo ports.ScranRepository
	roundRepo ports.RoundRepository
	voteRepo  ports.VoteRepository
}

func NewVoteService(scranRepo ports.ScranRepository, roundRepo ports.RoundRepository, voteRepo ports.VoteRepository) ports.VoteService {
	return &voteService{
		scranRepo: scranRepo,
		roundRepo: roundRepo,
		voteRepo:  voteRepo,
	}
}

// Record validates the round, persists the vote together with the chosen
// scran's like increment, then judges correctness against the counters
// the vote just moved. Only the chosen scran's likes change; the rejected
// scran's dislikes accrue through a separate channel.
func (s *voteService) Record(ctx context.Context, input ports.RecordVoteInput) (*ports.VoteOutcome, error) {
	round, err := s.roundRepo.GetByID(ctx, input.DailyRoundID)
	if err != nil {
		return nil, err
	}
	if input.ChosenScranID != round.ScranAID && input.ChosenScranID != round.ScranBID {
		return nil, domain.ErrInvalidRound
	}

	vote := &domain.ScrandleVote{
		DailyScrandleID: round.ID,
		SessionID:       input.SessionID,
		ChosenScranID:   input.ChosenScranID,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.voteRepo.Record(ctx, vote); err != nil {
		return nil, err
	}

	return s.judgePair(ctx, round.RoundNumber, input.ChosenScranID, round.ScranAID, round.ScranBID)
}

func (s *voteService) Judge(ctx context.Context, input ports.JudgeVoteInput) (*ports.VoteOutcome, error) {
	return s.judgePair(ctx, input.RoundNumber, input.ChosenScranID, input.ScranAID, input.ScranBID)
}

func (s *voteService) judgePair(ctx context.Context, roundNumber int, chosenID, aID, bID int64) (*ports.VoteOutcome, error) {
	scrans, err := s.scranRepo.GetByIDs(ctx, []int64{aID, bID})
	if err != nil {
		return nil, err
	}
	a, okA := scrans[aID]
	b, okB := scrans[bID]
	if !okA || !okB {
		return nil, domain.ErrScranNotFound
	}

	correct := domain.MajorityPreferred(a, b)
	return &ports.VoteOutcome{
		RoundNumber:   roundNumber,
		IsCorrect:     chosenID == correct,
		ChosenScranID: chosenID,
		CorrectID:     correct,
		PercentageA:   a.LikesPercentage(),
		PercentageB:   b.LikesPercentage(),
	}, nil
}
