package service_test

import (
	"context"
	"testing"

	"github.com/dukamart/storefront/internal/constants"
	"github.com/dukamart/storefront/internal/mocks"
	"github.com/dukamart/storefront/internal/model"
	"github.com/dukamart/storefront/internal/repository"
	"github.com/dukamart/storefront/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func mpesaCallback(resultCode int) []byte {
	if resultCode == 0 {
		return []byte(`{
			"Body": {
				"stkCallback": {
					"MerchantRequestID": "29115-34620561-1",
					"CheckoutRequestID": "ws_CO_1",
					"ResultCode": 0,
					"ResultDesc": "The service request is processed successfully.",
					"CallbackMetadata": {
						"Item": [{"Name": "MpesaReceiptNumber", "Value": "NLJ7RT61SV"}]
					}
				}
			}
		}`)
	}

	return []byte(`{
		"Body": {
			"stkCallback": {
				"MerchantRequestID": "29115-34620561-1",
				"CheckoutRequestID": "ws_CO_1",
				"ResultCode": 1032,
				"ResultDesc": "Request cancelled by user."
			}
		}
	}`)
}

func TestReconciliation_ReconcileMpesa(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	orderID := int64(12)

	pending := func() *model.Transaction {
		return &model.Transaction{
			ID:            42,
			UserID:        7,
			OrderID:       &orderID,
			PaymentMethod: model.PaymentMethodMpesa,
			Status:        model.TransactionStatusPending,
			ProviderRef:   "ws_CO_1",
		}
	}

	t.Run("success callback finalizes and publishes event", func(t *testing.T) {
		txRepo := &mocks.TransactionRepository{}
		events := &mocks.EventPublisher{}
		svc := service.NewReconciliationService(txRepo, events, logger)

		txRepo.On("GetByProviderRef", ctx, model.PaymentMethodMpesa, "ws_CO_1").
			Return(pending(), nil)
		txRepo.On("Finalize", ctx, model.PaymentMethodMpesa, "ws_CO_1",
			model.TransactionStatusSuccess, "The service request is processed successfully.",
			mock.MatchedBy(func(ref *string) bool {
				return ref != nil && *ref == "NLJ7RT61SV"
			})).Return(nil)
		events.On("PublishPaymentSettled", ctx, mock.MatchedBy(func(e service.PaymentSettledEvent) bool {
			return e.TransactionID == 42 && e.OrderID == 12 && e.UserID == 7 && e.Method == "mpesa"
		})).Return(nil)

		err := svc.ReconcileMpesa(ctx, mpesaCallback(0))

		assert.NoError(t, err)
		txRepo.AssertExpectations(t)
		events.AssertExpectations(t)
	})

	t.Run("failure callback finalizes without event", func(t *testing.T) {
		txRepo := &mocks.TransactionRepository{}
		events := &mocks.EventPublisher{}
		svc := service.NewReconciliationService(txRepo, events, logger)

		txRepo.On("GetByProviderRef", ctx, model.PaymentMethodMpesa, "ws_CO_1").
			Return(pending(), nil)
		txRepo.On("Finalize", ctx, model.PaymentMethodMpesa, "ws_CO_1",
			model.TransactionStatusFailed, "Request cancelled by user.", (*string)(nil)).
			Return(nil)

		err := svc.ReconcileMpesa(ctx, mpesaCallback(1032))

		assert.NoError(t, err)
		events.AssertNotCalled(t, "PublishPaymentSettled", mock.Anything, mock.Anything)
	})

	t.Run("duplicate callback on settled transaction is a no-op", func(t *testing.T) {
		txRepo := &mocks.TransactionRepository{}
		events := &mocks.EventPublisher{}
		svc := service.NewReconciliationService(txRepo, events, logger)

		settled := pending()
		settled.Status = model.TransactionStatusSuccess

		txRepo.On("GetByProviderRef", ctx, model.PaymentMethodMpesa, "ws_CO_1").
			Return(settled, nil)

		err := svc.ReconcileMpesa(ctx, mpesaCallback(0))

		assert.NoError(t, err)
		txRepo.AssertNotCalled(t, "Finalize", mock.Anything, mock.Anything, mock.Anything,
			mock.Anything, mock.Anything, mock.Anything)
		events.AssertNotCalled(t, "PublishPaymentSettled", mock.Anything, mock.Anything)
	})

	t.Run("failure callback cannot reopen a settled transaction", func(t *testing.T) {
		txRepo := &mocks.TransactionRepository{}
		events := &mocks.EventPublisher{}
		svc := service.NewReconciliationService(txRepo, events, logger)

		settled := pending()
		settled.Status = model.TransactionStatusSuccess

		txRepo.On("GetByProviderRef", ctx, model.PaymentMethodMpesa, "ws_CO_1").
			Return(settled, nil)

		err := svc.ReconcileMpesa(ctx, mpesaCallback(1032))

		assert.NoError(t, err)
		txRepo.AssertNotCalled(t, "Finalize", mock.Anything, mock.Anything, mock.Anything,
			mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("lost finalize race is a no-op", func(t *testing.T) {
		txRepo := &mocks.TransactionRepository{}
		events := &mocks.EventPublisher{}
		svc := service.NewReconciliationService(txRepo, events, logger)

		txRepo.On("GetByProviderRef", ctx, model.PaymentMethodMpesa, "ws_CO_1").
			Return(pending(), nil)
		txRepo.On("Finalize", ctx, model.PaymentMethodMpesa, "ws_CO_1",
			model.TransactionStatusSuccess, mock.Anything, mock.Anything).
			Return(repository.ErrNoRowsAffected)

		err := svc.ReconcileMpesa(ctx, mpesaCallback(0))

		assert.NoError(t, err)
		events.AssertNotCalled(t, "PublishPaymentSettled", mock.Anything, mock.Anything)
	})

	t.Run("unknown correlation id", func(t *testing.T) {
		txRepo := &mocks.TransactionRepository{}
		events := &mocks.EventPublisher{}
		svc := service.NewReconciliationService(txRepo, events, logger)

		txRepo.On("GetByProviderRef", ctx, model.PaymentMethodMpesa, "ws_CO_1").
			Return(nil, repository.ErrTransactionNotFound)

		err := svc.ReconcileMpesa(ctx, mpesaCallback(0))

		assertServiceError(t, err, constants.ErrCodeTransactionNotFound)
	})

	t.Run("malformed payload", func(t *testing.T) {
		txRepo := &mocks.TransactionRepository{}
		events := &mocks.EventPublisher{}
		svc := service.NewReconciliationService(txRepo, events, logger)

		err := svc.ReconcileMpesa(ctx, []byte(`{"Body":{}}`))

		assertServiceError(t, err, constants.ErrCodeMalformedCallback)
		txRepo.AssertNotCalled(t, "GetByProviderRef", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestReconciliation_ReconcileAirtel(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("success callback without order publishes nothing", func(t *testing.T) {
		txRepo := &mocks.TransactionRepository{}
		events := &mocks.EventPublisher{}
		svc := service.NewReconciliationService(txRepo, events, logger)

		pending := &model.Transaction{
			ID:            42,
			UserID:        7,
			PaymentMethod: model.PaymentMethodAirtel,
			Status:        model.TransactionStatusPending,
			ProviderRef:   "AIRTEL-TX-1",
		}

		payload := []byte(`{
			"data": {"id": "AIRTEL-TX-1"},
			"status": {"code": "200", "message": "Success"}
		}`)

		txRepo.On("GetByProviderRef", ctx, model.PaymentMethodAirtel, "AIRTEL-TX-1").
			Return(pending, nil)
		txRepo.On("Finalize", ctx, model.PaymentMethodAirtel, "AIRTEL-TX-1",
			model.TransactionStatusSuccess, "Success", (*string)(nil)).
			Return(nil)

		err := svc.ReconcileAirtel(ctx, payload)

		assert.NoError(t, err)
		events.AssertNotCalled(t, "PublishPaymentSettled", mock.Anything, mock.Anything)
		txRepo.AssertExpectations(t)
	})

	t.Run("failure callback marks transaction failed", func(t *testing.T) {
		txRepo := &mocks.TransactionRepository{}
		events := &mocks.EventPublisher{}
		svc := service.NewReconciliationService(txRepo, events, logger)

		pending := &model.Transaction{
			ID:            43,
			UserID:        7,
			PaymentMethod: model.PaymentMethodAirtel,
			Status:        model.TransactionStatusPending,
			ProviderRef:   "AIRTEL-TX-2",
		}

		payload := []byte(`{
			"data": {"id": "AIRTEL-TX-2"},
			"status": {"code": "403", "message": "Insufficient balance"}
		}`)

		txRepo.On("GetByProviderRef", ctx, model.PaymentMethodAirtel, "AIRTEL-TX-2").
			Return(pending, nil)
		txRepo.On("Finalize", ctx, model.PaymentMethodAirtel, "AIRTEL-TX-2",
			model.TransactionStatusFailed, "Insufficient balance", (*string)(nil)).
			Return(nil)

		err := svc.ReconcileAirtel(ctx, payload)

		assert.NoError(t, err)
		txRepo.AssertExpectations(t)
	})
}
