package mocks

import (
	"context"

	"github.com/dukamart/storefront/pkg/airtel"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type AirtelGateway struct {
	mock.Mock
}

func (m *AirtelGateway) Authenticate(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *AirtelGateway) BuildPushRequest(phone string, amount decimal.Decimal, reference string) airtel.PushRequest {
	args := m.Called(phone, amount, reference)
	return args.Get(0).(airtel.PushRequest)
}

func (m *AirtelGateway) SendPush(ctx context.Context, request airtel.PushRequest, token string) (airtel.PushResponse, error) {
	args := m.Called(ctx, request, token)
	return args.Get(0).(airtel.PushResponse), args.Error(1)
}
