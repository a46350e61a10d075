package mocks

import (
	"context"

	"github.com/dukamart/storefront/internal/model"
	"github.com/dukamart/storefront/internal/repository"
	"github.com/stretchr/testify/mock"
)

type ReviewRepository struct {
	mock.Mock
}

func (m *ReviewRepository) Upsert(ctx context.Context, review *model.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *ReviewRepository) ListByProductID(ctx context.Context, productID int64, limit, offset int) ([]model.Review, error) {
	args := m.Called(ctx, productID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Review), args.Error(1)
}

func (m *ReviewRepository) Summary(ctx context.Context, productID int64) (repository.ReviewSummary, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(repository.ReviewSummary), args.Error(1)
}
