package mocks

import (
	"context"

	"github.com/dukamart/storefront/pkg/mq"
	"github.com/stretchr/testify/mock"
)

type Consumer struct {
	mock.Mock
}

func (m *Consumer) Consume(ctx context.Context, prefetch int, queue string, handler mq.Handle) error {
	args := m.Called(ctx, prefetch, queue, handler)
	return args.Error(0)
}
