package consumers

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dukamart/storefront/internal/constants"
	"github.com/dukamart/storefront/internal/publishers"
	"github.com/dukamart/storefront/internal/service"
	"github.com/dukamart/storefront/pkg/mq"
	"go.uber.org/zap"
)

const prefetchCount = 10

// OrderSettlement consumes payment settled events and marks the matching
// orders paid.
type OrderSettlement struct {
	consumer mq.Consumer
	orders   service.OrderService
	logger   *zap.Logger
}

func NewOrderSettlement(consumer mq.Consumer, orders service.OrderService, logger *zap.Logger) *OrderSettlement {
	return &OrderSettlement{consumer: consumer, orders: orders, logger: logger}
}

func (o *OrderSettlement) Run(ctx context.Context) error {
	return o.consumer.Consume(ctx, prefetchCount, publishers.QueuePaymentsSettled, o.handle)
}

func (o *OrderSettlement) handle(ctx context.Context, body []byte) error {
	var event service.PaymentSettledEvent
	if err := json.Unmarshal(body, &event); err != nil {
		o.logger.Error("Dropping undecodable settlement event", zap.Error(err))
		return err
	}

	cmd := service.MarkOrderPaidCommand{
		OrderID:       event.OrderID,
		TransactionID: event.TransactionID,
	}

	err := o.orders.MarkPaid(ctx, cmd)
	if err == nil {
		return nil
	}

	var svcErr service.Error
	if errors.As(err, &svcErr) && svcErr.Code == constants.ErrCodeInternalError {
		// Database hiccups are worth a redelivery; everything else is not
		// going to get better on retry.
		o.logger.Warn("Settlement handling failed, requeueing",
			zap.Error(err),
			zap.Int64("orderID", event.OrderID))
		return mq.Temporary(err)
	}

	o.logger.Error("Settlement event rejected",
		zap.Error(err),
		zap.Int64("orderID", event.OrderID),
		zap.Int64("transactionID", event.TransactionID))

	return err
}
