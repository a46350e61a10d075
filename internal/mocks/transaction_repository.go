package mocks

import (
	"context"

	"github.com/dukamart/storefront/internal/model"
	"github.com/stretchr/testify/mock"
)

type TransactionRepository struct {
	mock.Mock
}

func (m *TransactionRepository) Create(ctx context.Context, tx *model.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *TransactionRepository) GetByID(ctx context.Context, id int64) (*model.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *TransactionRepository) GetByProviderRef(ctx context.Context, method model.PaymentMethod, ref string) (*model.Transaction, error) {
	args := m.Called(ctx, method, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *TransactionRepository) Finalize(ctx context.Context, method model.PaymentMethod, ref string,
	status model.TransactionStatus, description string, secondaryRef *string) error {
	args := m.Called(ctx, method, ref, status, description, secondaryRef)
	return args.Error(0)
}

func (m *TransactionRepository) ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]model.Transaction, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transaction), args.Error(1)
}
