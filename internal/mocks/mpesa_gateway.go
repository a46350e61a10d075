package mocks

import (
	"context"

	"github.com/dukamart/storefront/pkg/mpesa"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MpesaGateway struct {
	mock.Mock
}

func (m *MpesaGateway) Authenticate(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MpesaGateway) BuildSTKPushRequest(phone string, amount decimal.Decimal, reference string) mpesa.STKPushRequest {
	args := m.Called(phone, amount, reference)
	return args.Get(0).(mpesa.STKPushRequest)
}

func (m *MpesaGateway) SendSTKPush(ctx context.Context, request mpesa.STKPushRequest, token string) (mpesa.STKPushResponse, error) {
	args := m.Called(ctx, request, token)
	return args.Get(0).(mpesa.STKPushResponse), args.Error(1)
}
