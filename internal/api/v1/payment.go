package v1

import (
	"time"

	"github.com/dukamart/storefront/internal/api/contract"
	"github.com/dukamart/storefront/internal/api/middleware"
	"github.com/dukamart/storefront/internal/constants"
	"github.com/dukamart/storefront/internal/model"
	"github.com/dukamart/storefront/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func (h *Handler) InitiatePayment(c *fiber.Ctx) error {
	start := time.Now()

	var handlerRequest InitiatePaymentRequest
	validationStart := time.Now()

	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	h.metrics.RecordValidationDuration("initiate_payment", time.Since(validationStart))

	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	amount, err := decimal.NewFromString(handlerRequest.Amount)
	if err != nil {
		responseError.Code = constants.ErrCodeValidationFailed
		responseError.Message = "amount is invalid"
		c.Status(fiber.StatusUnprocessableEntity)
		return c.JSON(responseError)
	}

	cmd := service.InitiatePaymentCommand{
		Method:  model.PaymentMethod(handlerRequest.Method),
		Phone:   handlerRequest.Phone,
		Amount:  amount,
		UserID:  middleware.UserID(c),
		OrderID: handlerRequest.OrderID,
	}

	result, err := h.payments.Initiate(c.UserContext(), cmd)
	if err != nil {
		h.metrics.RecordPaymentInitiationError(handlerRequest.Method)
		return err
	}

	h.metrics.RecordPaymentInitiated(handlerRequest.Method)

	h.logger.Info("Payment initiation accepted",
		zap.Int64("transaction_id", result.TransactionID),
		zap.String("method", handlerRequest.Method),
		zap.Duration("duration", time.Since(start)),
	)

	return c.Status(fiber.StatusAccepted).JSON(contract.Response{
		Successful: true,
		Code:       "success",
		Message:    constants.MsgPaymentInitiated,
		Result: InitiatePaymentView{
			TransactionID: result.TransactionID,
			ProviderRef:   result.ProviderRef,
			Acceptance:    result.Acceptance,
		},
	})
}

func (h *Handler) CreatePaypalOrder(c *fiber.Ctx) error {
	var handlerRequest CreatePaypalOrderRequest

	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	amount, err := decimal.NewFromString(handlerRequest.Amount)
	if err != nil {
		responseError.Code = constants.ErrCodeValidationFailed
		responseError.Message = "amount is invalid"
		c.Status(fiber.StatusUnprocessableEntity)
		return c.JSON(responseError)
	}

	cmd := service.CreatePaypalOrderCommand{Amount: amount, UserID: middleware.UserID(c)}

	order, err := h.payments.CreatePaypalOrder(c.UserContext(), cmd)
	if err != nil {
		h.metrics.RecordPaymentInitiationError(string(model.PaymentMethodPaypal))
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(contract.Response{
		Successful: true,
		Code:       "success",
		Result:     order,
	})
}

func (h *Handler) CapturePaypal(c *fiber.Ctx) error {
	var handlerRequest CapturePaypalRequest

	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	cmd := service.CapturePaypalCommand{
		ProviderOrderID: handlerRequest.ProviderOrderID,
		UserID:          middleware.UserID(c),
		OrderID:         handlerRequest.OrderID,
	}

	tx, err := h.payments.CapturePaypal(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	h.metrics.RecordTransactionSettled(string(tx.PaymentMethod), string(tx.Status))

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "success",
		Message:    constants.MsgPaymentCaptured,
		Result:     newTransactionView(tx),
	})
}

func (h *Handler) GetTransaction(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return service.NewServiceError(constants.ErrCodeTransactionNotFound, err)
	}

	tx, err := h.payments.GetTransaction(c.UserContext(), middleware.UserID(c), int64(id))
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Successful: true, Code: "success", Result: newTransactionView(tx)})
}

func (h *Handler) ListTransactions(c *fiber.Ctx) error {
	txs, err := h.payments.ListTransactions(c.UserContext(), middleware.UserID(c),
		c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Successful: true, Code: "success", Result: newTransactionViews(txs)})
}
