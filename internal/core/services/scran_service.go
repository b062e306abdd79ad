package services

import (
	"context"

	"github.com/scrandle/api/internal/core/ports"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

type scranService struct {
	repo ports.ScranRepository
}

func NewScranService(repo ports.ScranRepository) ports.ScranService {
	return &scranService{repo: repo}
}

func (s *scranService) List(ctx context.Context, input ports.ListScransInput) (*ports.ScranPage, error) {
	if input.Page < 1 {
		input.Page = 1
	}
	if input.Limit < 1 || input.Limit > maxPageLimit {
		input.Limit = defaultPageLimit
	}
	if input.Order != "asc" {
		input.Order = "desc"
	}

	items, total, err := s.repo.List(ctx, input)
	if err != nil {
		return nil, err
	}
	return &ports.ScranPage{
		Items: items,
		Total: total,
		Page:  input.Page,
		Limit: input.Limit,
	}, nil
}

func (s *scranService) Approve(ctx context.Context, id int64) error {
	return s.repo.SetApproved(ctx, id, true)
}

// Ban pulls a scran out of rotation without deleting it, so its counters
// and history survive an unban.
func (s *scranService) Ban(ctx context.Context, id int64) error {
	return s.repo.SetApproved(ctx, id, false)
}
