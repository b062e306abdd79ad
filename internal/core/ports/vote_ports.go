package ports

import (
	"context"

	"github.com/scrandle/api/internal/core/domain"
)

type VoteRepository interface {
	// Record persists the vote and increments the chosen scran's like
	// counter in the same transaction. Returns domain.ErrDuplicateVote
	// when the session already voted on the round.
	Record(ctx context.Context, vote *domain.ScrandleVote) error
	ListBySession(ctx context.Context, sessionID string, roundIDs []int64) ([]domain.ScrandleVote, error)
}

type RecordVoteInput struct {
	SessionID     string
	DailyRoundID  int64
	ChosenScranID int64
}

type JudgeVoteInput struct {
	RoundNumber   int
	ChosenScranID int64
	ScranAID      int64
	ScranBID      int64
}

type VoteOutcome struct {
	RoundNumber   int   `json:"roundNumber"`
	IsCorrect     bool  `json:"isCorrect"`
	ChosenScranID int64 `json:"chosenItemId"`
	CorrectID     int64 `json:"correctItemId"`
	PercentageA   int   `json:"percentageA"`
	PercentageB   int   `json:"percentageB"`
}

type VoteService interface {
	// Record stores a session's choice for a round and reports the outcome
	// judged against the counters as they stand after the vote.
	Record(ctx context.Context, input RecordVoteInput) (*VoteOutcome, error)
	// Judge computes the outcome of a choice without recording anything.
	Judge(ctx context.Context, input JudgeVoteInput) (*VoteOutcome, error)
}
