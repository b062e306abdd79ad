package services

import (
	"context"
	"sort"

	"github.com/scrandle/api/internal/core/domain"
	"github.com/scrandle/api/internal/core/ports"
)

// In-memory repositories backing the service tests. They enforce the same
// uniqueness rules the postgres layer enforces with unique indexes.

type fakeScranRepo struct {
	scrans map[int64]*domain.Scran
}

func newFakeScranRepo(scrans ...domain.Scran) *fakeScranRepo {
	repo := &fakeScranRepo{scrans: make(map[int64]*domain.Scran)}
	for i := range scrans {
		s := scrans[i]
		repo.scrans[s.ID] = &s
	}
	return repo
}

func (r *fakeScranRepo) GetByID(_ context.Context, id int64) (*domain.Scran, error) {
	s, ok := r.scrans[id]
	if !ok {
		return nil, domain.ErrScranNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeScranRepo) GetByIDs(_ context.Context, ids []int64) (map[int64]domain.Scran, error) {
	out := make(map[int64]domain.Scran, len(ids))
	for _, id := range ids {
		if s, ok := r.scrans[id]; ok {
			out[id] = *s
		}
	}
	return out, nil
}

func (r *fakeScranRepo) ListEligible(_ context.Context, minVotes int) ([]domain.Scran, error) {
	var out []domain.Scran
	for _, s := range r.scrans {
		if s.Approved && s.NumberOfLikes+s.NumberOfDislikes > minVotes {
			out = append(out, *s)
		}
	}
	// stable order so tests with an identity shuffle can predict pairings
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeScranRepo) List(_ context.Context, _ ports.ListScransInput) ([]domain.Scran, int, error) {
	var out []domain.Scran
	for _, s := range r.scrans {
		out = append(out, *s)
	}
	return out, len(out), nil
}

func (r *fakeScranRepo) SetApproved(_ context.Context, id int64, approved bool) error {
	s, ok := r.scrans[id]
	if !ok {
		return domain.ErrScranNotFound
	}
	s.Approved = approved
	return nil
}

type fakeRoundRepo struct {
	nextID int64
	rounds []domain.DailyRound

	createAllErr error // forced error for the conflict path
}

func (r *fakeRoundRepo) CreateAll(_ context.Context, rounds []domain.DailyRound) error {
	if r.createAllErr != nil {
		return r.createAllErr
	}
	for _, round := range rounds {
		for _, existing := range r.rounds {
			if existing.Date == round.Date && existing.RoundNumber == round.RoundNumber {
				return domain.ErrRoundsExist
			}
		}
	}
	for i := range rounds {
		r.nextID++
		rounds[i].ID = r.nextID
		r.rounds = append(r.rounds, rounds[i])
	}
	return nil
}

func (r *fakeRoundRepo) GetByDate(_ context.Context, date string) ([]domain.DailyRound, error) {
	var out []domain.DailyRound
	for _, round := range r.rounds {
		if round.Date == date {
			out = append(out, round)
		}
	}
	return out, nil
}

func (r *fakeRoundRepo) GetByID(_ context.Context, id int64) (*domain.DailyRound, error) {
	for _, round := range r.rounds {
		if round.ID == id {
			copied := round
			return &copied, nil
		}
	}
	return nil, domain.ErrRoundNotFound
}

type fakeVoteRepo struct {
	scranRepo *fakeScranRepo
	nextID    int64
	votes     []domain.ScrandleVote
}

func (r *fakeVoteRepo) Record(_ context.Context, vote *domain.ScrandleVote) error {
	for _, existing := range r.votes {
		if existing.SessionID == vote.SessionID && existing.DailyScrandleID == vote.DailyScrandleID {
			return domain.ErrDuplicateVote
		}
	}
	r.nextID++
	vote.ID = r.nextID
	r.votes = append(r.votes, *vote)
	if s, ok := r.scranRepo.scrans[vote.ChosenScranID]; ok {
		s.NumberOfLikes++
	}
	return nil
}

func (r *fakeVoteRepo) ListBySession(_ context.Context, sessionID string, roundIDs []int64) ([]domain.ScrandleVote, error) {
	wanted := make(map[int64]bool, len(roundIDs))
	for _, id := range roundIDs {
		wanted[id] = true
	}
	var out []domain.ScrandleVote
	for _, vote := range r.votes {
		if vote.SessionID == sessionID && wanted[vote.DailyScrandleID] {
			out = append(out, vote)
		}
	}
	return out, nil
}

type fakeResultRepo struct {
	nextID  int64
	results []domain.DailyUserResult
}

func (r *fakeResultRepo) Create(_ context.Context, result *domain.DailyUserResult) error {
	for _, existing := range r.results {
		if existing.SessionID == result.SessionID && existing.Date == result.Date {
			return domain.ErrResultExists
		}
	}
	r.nextID++
	result.ID = r.nextID
	r.results = append(r.results, *result)
	return nil
}

func (r *fakeResultRepo) GetBySessionAndDate(_ context.Context, sessionID, date string) (*domain.DailyUserResult, error) {
	for _, result := range r.results {
		if result.SessionID == sessionID && result.Date == date {
			copied := result
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeResultRepo) AverageForDate(_ context.Context, date string) (float64, int, error) {
	var sum, count int
	for _, result := range r.results {
		if result.Date == date {
			sum += result.Score
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

// identityShuffle keeps the eligible set in its original order so tests
// can predict the pairings.
func identityShuffle(int, func(i, j int)) {}
