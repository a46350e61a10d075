package publishers

import (
	"context"
	"encoding/json"

	"github.com/dukamart/storefront/internal/service"
	"github.com/dukamart/storefront/pkg/mq"
	"go.uber.org/zap"
)

const QueuePaymentsSettled = "payments.settled"

// PaymentEvents publishes settlement events to the default exchange, routed
// straight to the worker queue.
type PaymentEvents struct {
	publisher mq.Publisher
	logger    *zap.Logger
}

func NewPaymentEvents(publisher mq.Publisher, logger *zap.Logger) *PaymentEvents {
	return &PaymentEvents{publisher: publisher, logger: logger}
}

func (p *PaymentEvents) PublishPaymentSettled(ctx context.Context, event service.PaymentSettledEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := p.publisher.Publish(ctx, "", QueuePaymentsSettled, body); err != nil {
		return err
	}

	p.logger.Info("Payment settled event published",
		zap.Int64("transactionID", event.TransactionID),
		zap.Int64("orderID", event.OrderID))

	return nil
}
