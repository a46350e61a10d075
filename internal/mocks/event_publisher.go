package mocks

import (
	"context"

	"github.com/dukamart/storefront/internal/service"
	"github.com/stretchr/testify/mock"
)

type EventPublisher struct {
	mock.Mock
}

func (m *EventPublisher) PublishPaymentSettled(ctx context.Context, event service.PaymentSettledEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
