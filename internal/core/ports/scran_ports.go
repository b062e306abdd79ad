package ports

import (
	"context"

	"github.com/scrandle/api/internal/core/domain"
)

type ScranRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Scran, error)
	GetByIDs(ctx context.Context, ids []int64) (map[int64]domain.Scran, error)
	// ListEligible returns approved scrans whose total vote count exceeds
	// minVotes.
	ListEligible(ctx context.Context, minVotes int) ([]domain.Scran, error)
	List(ctx context.Context, input ListScransInput) ([]domain.Scran, int, error)
	SetApproved(ctx context.Context, id int64, approved bool) error
}

type ListScransInput struct {
	Page  int
	Limit int
	Sort  string
	Order string
}

type ScranPage struct {
	Items []domain.Scran `json:"items"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

type ScranService interface {
	List(ctx context.Context, input ListScransInput) (*ScranPage, error)
	Approve(ctx context.Context, id int64) error
	Ban(ctx context.Context, id int64) error
}
