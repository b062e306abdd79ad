package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrandle/api/internal/core/domain"
	"github.com/scrandle/api/internal/core/ports"
)

func TestScranListNormalizesPaging(t *testing.T) {
	repo := newFakeScranRepo(domain.Scran{ID: 1}, domain.Scran{ID: 2})
	svc := NewScranService(repo)

	page, err := svc.List(context.Background(), ports.ListScransInput{Page: 0, Limit: -5, Order: "sideways"})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.Limit)
	assert.Equal(t, 2, page.Total)
}

func TestApproveAndBan(t *testing.T) {
	repo := newFakeScranRepo(domain.Scran{ID: 1, Approved: false})
	svc := NewScranService(repo)

	require.NoError(t, svc.Approve(context.Background(), 1))
	s, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, s.Approved)

	require.NoError(t, svc.Ban(context.Background(), 1))
	s, err = repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, s.Approved)

	assert.ErrorIs(t, svc.Approve(context.Background(), 42), domain.ErrScranNotFound)
	assert.ErrorIs(t, svc.Ban(context.Background(), 42), domain.ErrScranNotFound)
}
