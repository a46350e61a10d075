package mocks

import (
	"context"

	"github.com/dukamart/storefront/internal/model"
	"github.com/dukamart/storefront/internal/service"
	"github.com/stretchr/testify/mock"
)

type OrderService struct {
	mock.Mock
}

func (m *OrderService) CreateFromCart(ctx context.Context, userID int64) (*model.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *OrderService) Get(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	args := m.Called(ctx, userID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *OrderService) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]model.Order, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *OrderService) MarkPaid(ctx context.Context, cmd service.MarkOrderPaidCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}
