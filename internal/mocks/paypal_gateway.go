package mocks

import (
	"context"

	"github.com/dukamart/storefront/pkg/paypal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type PaypalGateway struct {
	mock.Mock
}

func (m *PaypalGateway) Authenticate(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *PaypalGateway) CreateOrder(ctx context.Context, amount decimal.Decimal, token string) (paypal.Order, error) {
	args := m.Called(ctx, amount, token)
	return args.Get(0).(paypal.Order), args.Error(1)
}

func (m *PaypalGateway) CaptureOrder(ctx context.Context, orderID string, token string) (paypal.Order, error) {
	args := m.Called(ctx, orderID, token)
	return args.Get(0).(paypal.Order), args.Error(1)
}
