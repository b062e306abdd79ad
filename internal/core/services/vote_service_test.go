package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrandle/api/internal/core/domain"
	"github.com/scrandle/api/internal/core/ports"
)

func setupVoteService(scrans ...domain.Scran) (ports.VoteService, *fakeScranRepo, *fakeRoundRepo, *fakeVoteRepo) {
	scranRepo := newFakeScranRepo(scrans...)
	roundRepo := &fakeRoundRepo{}
	voteRepo := &fakeVoteRepo{scranRepo: scranRepo}
	return NewVoteService(scranRepo, roundRepo, voteRepo), scranRepo, roundRepo, voteRepo
}

func TestRecordVote(t *testing.T) {
	svc, scranRepo, roundRepo, _ := setupVoteService(
		domain.Scran{ID: 1, NumberOfLikes: 5, NumberOfDislikes: 5}, // 50%
		domain.Scran{ID: 2, NumberOfLikes: 6, NumberOfDislikes: 4}, // 60%
	)
	require.NoError(t, roundRepo.CreateAll(context.Background(), []domain.DailyRound{
		{Date: "2026-08-30", ScranAID: 1, ScranBID: 2, RoundNumber: 1},
	}))

	outcome, err := svc.Record(context.Background(), ports.RecordVoteInput{
		SessionID:     "session-a",
		DailyRoundID:  1,
		ChosenScranID: 1,
	})
	require.NoError(t, err)

	// the pick was the 50% scran against the 60% one
	assert.False(t, outcome.IsCorrect)
	assert.Equal(t, int64(2), outcome.CorrectID)
	assert.Equal(t, int64(1), outcome.ChosenScranID)

	// percentages reflect the counters after this vote: 6/11 and 6/10
	assert.Equal(t, 55, outcome.PercentageA)
	assert.Equal(t, 60, outcome.PercentageB)

	chosen, err := scranRepo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 6, chosen.NumberOfLikes)
	other, err := scranRepo.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 4, other.NumberOfDislikes, "rejected scran's dislikes stay untouched")
}

func TestRecordVoteDuplicate(t *testing.T) {
	svc, scranRepo, roundRepo, _ := setupVoteService(
		domain.Scran{ID: 1, NumberOfLikes: 3},
		domain.Scran{ID: 2, NumberOfLikes: 3},
	)
	require.NoError(t, roundRepo.CreateAll(context.Background(), []domain.DailyRound{
		{Date: "2026-08-30", ScranAID: 1, ScranBID: 2, RoundNumber: 1},
	}))

	input := ports.RecordVoteInput{SessionID: "session-a", DailyRoundID: 1, ChosenScranID: 1}

	_, err := svc.Record(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.Record(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrDuplicateVote)

	// exactly one increment despite the retry
	chosen, err := scranRepo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 4, chosen.NumberOfLikes)

	// a different session may still vote on the same round
	_, err = svc.Record(context.Background(), ports.RecordVoteInput{
		SessionID: "session-b", DailyRoundID: 1, ChosenScranID: 2,
	})
	assert.NoError(t, err)
}

func TestRecordVoteValidation(t *testing.T) {
	svc, _, roundRepo, _ := setupVoteService(
		domain.Scran{ID: 1},
		domain.Scran{ID: 2},
		domain.Scran{ID: 3},
	)
	require.NoError(t, roundRepo.CreateAll(context.Background(), []domain.DailyRound{
		{Date: "2026-08-30", ScranAID: 1, ScranBID: 2, RoundNumber: 1},
	}))

	_, err := svc.Record(context.Background(), ports.RecordVoteInput{
		SessionID: "session-a", DailyRoundID: 99, ChosenScranID: 1,
	})
	assert.ErrorIs(t, err, domain.ErrRoundNotFound)

	// scran 3 exists but is not part of round 1
	_, err = svc.Record(context.Background(), ports.RecordVoteInput{
		SessionID: "session-a", DailyRoundID: 1, ChosenScranID: 3,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRound)
}

func TestJudgeVote(t *testing.T) {
	svc, _, _, voteRepo := setupVoteService(
		domain.Scran{ID: 1, NumberOfLikes: 7, NumberOfDislikes: 3},  // 70%
		domain.Scran{ID: 2, NumberOfLikes: 7, NumberOfDislikes: 13}, // 35%
	)

	outcome, err := svc.Judge(context.Background(), ports.JudgeVoteInput{
		RoundNumber:   4,
		ChosenScranID: 1,
		ScranAID:      1,
		ScranBID:      2,
	})
	require.NoError(t, err)
	assert.True(t, outcome.IsCorrect)
	assert.Equal(t, 4, outcome.RoundNumber)
	assert.Equal(t, 70, outcome.PercentageA)
	assert.Equal(t, 35, outcome.PercentageB)
	assert.Empty(t, voteRepo.votes, "judging writes nothing")

	_, err = svc.Judge(context.Background(), ports.JudgeVoteInput{
		RoundNumber:   1,
		ChosenScranID: 1,
		ScranAID:      1,
		ScranBID:      42,
	})
	assert.ErrorIs(t, err, domain.ErrScranNotFound)
}

func TestJudgeVoteTieFavorsA(t *testing.T) {
	svc, _, _, _ := setupVoteService(
		domain.Scran{ID: 1, NumberOfLikes: 5, NumberOfDislikes: 5},
		domain.Scran{ID: 2, NumberOfLikes: 2, NumberOfDislikes: 2},
	)

	outcome, err := svc.Judge(context.Background(), ports.JudgeVoteInput{
		RoundNumber:   1,
		ChosenScranID: 2,
		ScranAID:      1,
		ScranBID:      2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), outcome.CorrectID)
	assert.False(t, outcome.IsCorrect)
}
