package service

import (
	"context"
	"errors"

	"github.com/dukamart/storefront/internal/constants"
	"github.com/dukamart/storefront/internal/model"
	"github.com/dukamart/storefront/internal/repository"
	"github.com/dukamart/storefront/pkg/airtel"
	"github.com/dukamart/storefront/pkg/mpesa"
	"go.uber.org/zap"
)

// EventPublisher emits domain events for downstream workers.
type EventPublisher interface {
	PublishPaymentSettled(ctx context.Context, event PaymentSettledEvent) error
}

// ReconciliationService resolves provider callbacks against stored
// transactions. Callbacks are at-least-once, so every path here must be safe
// to replay.
type ReconciliationService interface {
	ReconcileMpesa(ctx context.Context, payload []byte) error
	ReconcileAirtel(ctx context.Context, payload []byte) error
}

type reconciliation struct {
	txRepo repository.TransactionRepository
	events EventPublisher
	logger *zap.Logger
}

func NewReconciliationService(txRepo repository.TransactionRepository,
	events EventPublisher, logger *zap.Logger) ReconciliationService {
	return &reconciliation{txRepo: txRepo, events: events, logger: logger}
}

func (r *reconciliation) ReconcileMpesa(ctx context.Context, payload []byte) error {
	result, err := mpesa.ParseCallback(payload)
	if err != nil {
		r.logger.Error("Failed to parse M-Pesa callback", zap.Error(err))
		return NewServiceError(constants.ErrCodeMalformedCallback, err)
	}

	cmd := ReconcileCommand{
		Method:        model.PaymentMethodMpesa,
		CorrelationID: result.CorrelationID,
		Success:       result.Success,
		Description:   result.Description,
	}

	// The receipt number only exists on success and becomes the secondary
	// provider reference on the stored transaction.
	if result.ReceiptNumber != "" {
		cmd.SecondaryID = &result.ReceiptNumber
	}

	return r.reconcile(ctx, cmd)
}

func (r *reconciliation) ReconcileAirtel(ctx context.Context, payload []byte) error {
	result, err := airtel.ParseCallback(payload)
	if err != nil {
		r.logger.Error("Failed to parse Airtel callback", zap.Error(err))
		return NewServiceError(constants.ErrCodeMalformedCallback, err)
	}

	return r.reconcile(ctx, ReconcileCommand{
		Method:        model.PaymentMethodAirtel,
		CorrelationID: result.CorrelationID,
		Success:       result.Success,
		Description:   result.Description,
	})
}

func (r *reconciliation) reconcile(ctx context.Context, cmd ReconcileCommand) error {
	tx, err := r.txRepo.GetByProviderRef(ctx, cmd.Method, cmd.CorrelationID)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			r.logger.Warn("Callback for unknown transaction",
				zap.String("method", string(cmd.Method)),
				zap.String("correlationID", cmd.CorrelationID))
			return NewServiceError(constants.ErrCodeTransactionNotFound, err)
		}

		return NewServiceError(constants.ErrCodeInternalError, err)
	}

	if tx.Status.Terminal() {
		r.logger.Info("Duplicate callback for settled transaction, ignoring",
			zap.Int64("transactionID", tx.ID),
			zap.String("status", string(tx.Status)))
		return nil
	}

	status := model.TransactionStatusFailed
	if cmd.Success {
		status = model.TransactionStatusSuccess
	}

	err = r.txRepo.Finalize(ctx, cmd.Method, cmd.CorrelationID, status, cmd.Description, cmd.SecondaryID)
	if err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			// Lost the race against a concurrent callback; the row is already
			// terminal.
			r.logger.Info("Transaction settled concurrently, ignoring",
				zap.Int64("transactionID", tx.ID))
			return nil
		}

		r.logger.Error("Failed to finalize transaction",
			zap.Error(err),
			zap.Int64("transactionID", tx.ID))
		return NewServiceError(constants.ErrCodeInternalError, err)
	}

	r.logger.Info("Transaction reconciled",
		zap.Int64("transactionID", tx.ID),
		zap.String("method", string(cmd.Method)),
		zap.String("status", string(status)),
		zap.String("description", cmd.Description))

	if status == model.TransactionStatusSuccess && tx.OrderID != nil {
		event := PaymentSettledEvent{
			TransactionID: tx.ID,
			OrderID:       *tx.OrderID,
			UserID:        tx.UserID,
			Method:        string(cmd.Method),
		}

		if err := r.events.PublishPaymentSettled(ctx, event); err != nil {
			r.logger.Error("Failed to publish payment settled event",
				zap.Error(err),
				zap.Int64("transactionID", tx.ID))
		}
	}

	return nil
}
