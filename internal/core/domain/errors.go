package domain

import "errors"

var (
	ErrRoundNotFound          = errors.New("round not found")
	ErrScranNotFound          = errors.New("scran not found")
	ErrRoundsExist            = errors.New("rounds already exist for this date")
	ErrInvalidRound           = errors.New("chosen scran is not part of this round")
	ErrDuplicateVote          = errors.New("session has already voted on this round")
	ErrInvalidScore           = errors.New("score must be between 0 and 10")
	ErrResultExists           = errors.New("result already recorded for this session and date")
	ErrInsufficientCandidates = errors.New("not enough eligible scrans for a daily game")
	ErrInternal               = errors.New("internal server error")
)
