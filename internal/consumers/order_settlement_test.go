package consumers

import (
	"context"
	"errors"
	"testing"

	"github.com/dukamart/storefront/internal/constants"
	"github.com/dukamart/storefront/internal/mocks"
	"github.com/dukamart/storefront/internal/service"
	"github.com/dukamart/storefront/pkg/mq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestOrderSettlement_Handle(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	event := []byte(`{"transaction_id": 42, "order_id": 12, "user_id": 7, "method": "mpesa"}`)

	t.Run("marks order paid", func(t *testing.T) {
		orders := &mocks.OrderService{}
		settlement := NewOrderSettlement(&mocks.Consumer{}, orders, logger)

		orders.On("MarkPaid", ctx, service.MarkOrderPaidCommand{OrderID: 12, TransactionID: 42}).
			Return(nil)

		err := settlement.handle(ctx, event)

		assert.NoError(t, err)
		orders.AssertExpectations(t)
	})

	t.Run("internal errors requeue", func(t *testing.T) {
		orders := &mocks.OrderService{}
		settlement := NewOrderSettlement(&mocks.Consumer{}, orders, logger)

		orders.On("MarkPaid", ctx, mock.Anything).
			Return(service.NewServiceError(constants.ErrCodeInternalError, errors.New("db down")))

		err := settlement.handle(ctx, event)

		var temp mq.TempError
		assert.ErrorAs(t, err, &temp)
	})

	t.Run("permanent errors do not requeue", func(t *testing.T) {
		orders := &mocks.OrderService{}
		settlement := NewOrderSettlement(&mocks.Consumer{}, orders, logger)

		orders.On("MarkPaid", ctx, mock.Anything).
			Return(service.NewServiceError(constants.ErrCodePaymentFailed, errors.New("not settled")))

		err := settlement.handle(ctx, event)

		assert.Error(t, err)

		var temp mq.TempError
		assert.False(t, errors.As(err, &temp))
	})

	t.Run("undecodable event is dropped", func(t *testing.T) {
		orders := &mocks.OrderService{}
		settlement := NewOrderSettlement(&mocks.Consumer{}, orders, logger)

		err := settlement.handle(ctx, []byte(`not json`))

		assert.Error(t, err)
		orders.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything)
	})
}
