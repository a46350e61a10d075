package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/dukamart/storefront/internal/config"
	"github.com/dukamart/storefront/internal/constants"
	"github.com/dukamart/storefront/internal/model"
	"github.com/dukamart/storefront/internal/repository"
	"github.com/dukamart/storefront/pkg/airtel"
	"github.com/dukamart/storefront/pkg/mpesa"
	"github.com/dukamart/storefront/pkg/paypal"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const mobileMoneyCurrency = "KES"
const paypalCurrency = "USD"

var (
	ErrInvalidAmount = errors.New("INVALID_AMOUNT")
	ErrMissingPhone  = errors.New("MISSING_PHONE")
	ErrInvalidMethod = errors.New("INVALID_PAYMENT_METHOD")
	ErrEmptyCapture  = errors.New("CAPTURE_WITHOUT_PURCHASE_UNITS")
)

type PaymentService interface {
	Initiate(ctx context.Context, cmd InitiatePaymentCommand) (InitiatePaymentResponse, error)
	CreatePaypalOrder(ctx context.Context, cmd CreatePaypalOrderCommand) (paypal.Order, error)
	CapturePaypal(ctx context.Context, cmd CapturePaypalCommand) (*model.Transaction, error)
	GetTransaction(ctx context.Context, userID, transactionID int64) (*model.Transaction, error)
	ListTransactions(ctx context.Context, userID int64, limit, offset int) ([]model.Transaction, error)
}

type payment struct {
	txRepo   repository.TransactionRepository
	userRepo repository.UserRepository
	mpesa    mpesa.Gateway
	airtel   airtel.Gateway
	paypal   paypal.Gateway
	events   EventPublisher
	cfg      *config.Config
	logger   *zap.Logger
}

func NewPaymentService(txRepo repository.TransactionRepository, userRepo repository.UserRepository,
	mpesaGw mpesa.Gateway, airtelGw airtel.Gateway, paypalGw paypal.Gateway,
	events EventPublisher, cfg *config.Config, logger *zap.Logger) PaymentService {
	return &payment{
		txRepo:   txRepo,
		userRepo: userRepo,
		mpesa:    mpesaGw,
		airtel:   airtelGw,
		paypal:   paypalGw,
		events:   events,
		cfg:      cfg,
		logger:   logger,
	}
}

func (p *payment) Initiate(ctx context.Context, cmd InitiatePaymentCommand) (InitiatePaymentResponse, error) {
	if err := p.validate(ctx, cmd); err != nil {
		return InitiatePaymentResponse{}, err
	}

	switch cmd.Method {
	case model.PaymentMethodMpesa:
		return p.initiateMpesa(ctx, cmd)
	case model.PaymentMethodAirtel:
		return p.initiateAirtel(ctx, cmd)
	default:
		return InitiatePaymentResponse{}, NewServiceError(constants.ErrCodeInvalidPaymentMethod, ErrInvalidMethod)
	}
}

func (p *payment) validate(ctx context.Context, cmd InitiatePaymentCommand) error {
	if !cmd.Amount.IsPositive() {
		return NewServiceError(constants.ErrCodeValidationFailed, ErrInvalidAmount)
	}

	if cmd.Method.MobileMoney() && cmd.Phone == "" {
		return NewServiceError(constants.ErrCodeValidationFailed, ErrMissingPhone)
	}

	if _, err := p.userRepo.GetByID(ctx, cmd.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return NewServiceError(constants.ErrCodeUserNotFound, err)
		}

		return NewServiceError(constants.ErrCodeInternalError, err)
	}

	return nil
}

func (p *payment) initiateMpesa(ctx context.Context, cmd InitiatePaymentCommand) (InitiatePaymentResponse, error) {
	providerCtx, cancel := context.WithTimeout(ctx, p.cfg.Mpesa.Timeout)
	defer cancel()

	token, err := p.mpesa.Authenticate(providerCtx)
	if err != nil {
		p.logger.Error("M-Pesa authentication failed", zap.Error(err))
		return InitiatePaymentResponse{}, NewServiceError(constants.ErrCodePaymentFailed, err)
	}

	reference := merchantReference()
	request := p.mpesa.BuildSTKPushRequest(cmd.Phone, cmd.Amount, reference)

	response, err := p.mpesa.SendSTKPush(providerCtx, request, token)
	if err != nil {
		p.logger.Error("M-Pesa STK push failed",
			zap.Error(err),
			zap.String("phone", cmd.Phone),
			zap.Int64("userID", cmd.UserID))
		return InitiatePaymentResponse{}, NewServiceError(constants.ErrCodePaymentFailed, err)
	}

	providerRef := response.CheckoutRequestID
	if providerRef == "" {
		providerRef = reference
	}

	var secondaryRef *string
	if response.MerchantRequestID != "" {
		secondaryRef = &response.MerchantRequestID
	}

	tx, err := p.createPending(ctx, cmd, model.PaymentMethodMpesa, providerRef, secondaryRef)
	if err != nil {
		return InitiatePaymentResponse{}, err
	}

	p.logger.Info("M-Pesa payment initiated",
		zap.Int64("transactionID", tx.ID),
		zap.String("checkoutRequestID", providerRef),
		zap.Int64("userID", cmd.UserID))

	return InitiatePaymentResponse{TransactionID: tx.ID, ProviderRef: providerRef, Acceptance: response}, nil
}

func (p *payment) initiateAirtel(ctx context.Context, cmd InitiatePaymentCommand) (InitiatePaymentResponse, error) {
	providerCtx, cancel := context.WithTimeout(ctx, p.cfg.Airtel.Timeout)
	defer cancel()

	token, err := p.airtel.Authenticate(providerCtx)
	if err != nil {
		p.logger.Error("Airtel authentication failed", zap.Error(err))
		return InitiatePaymentResponse{}, NewServiceError(constants.ErrCodePaymentFailed, err)
	}

	reference := merchantReference()
	request := p.airtel.BuildPushRequest(cmd.Phone, cmd.Amount, reference)

	response, err := p.airtel.SendPush(providerCtx, request, token)
	if err != nil {
		p.logger.Error("Airtel payment push failed",
			zap.Error(err),
			zap.String("phone", cmd.Phone),
			zap.Int64("userID", cmd.UserID))
		return InitiatePaymentResponse{}, NewServiceError(constants.ErrCodePaymentFailed, err)
	}

	providerRef := response.Data.ID
	if providerRef == "" {
		providerRef = reference
	}

	tx, err := p.createPending(ctx, cmd, model.PaymentMethodAirtel, providerRef, nil)
	if err != nil {
		return InitiatePaymentResponse{}, err
	}

	p.logger.Info("Airtel payment initiated",
		zap.Int64("transactionID", tx.ID),
		zap.String("airtelPaymentID", providerRef),
		zap.Int64("userID", cmd.UserID))

	return InitiatePaymentResponse{TransactionID: tx.ID, ProviderRef: providerRef, Acceptance: response}, nil
}

func (p *payment) createPending(ctx context.Context, cmd InitiatePaymentCommand,
	method model.PaymentMethod, providerRef string, secondaryRef *string) (*model.Transaction, error) {

	phone := cmd.Phone
	tx := &model.Transaction{
		UserID:               cmd.UserID,
		OrderID:              cmd.OrderID,
		Amount:               cmd.Amount,
		Currency:             mobileMoneyCurrency,
		PhoneNumber:          &phone,
		PaymentMethod:        method,
		Status:               model.TransactionStatusPending,
		ProviderRef:          providerRef,
		ProviderSecondaryRef: secondaryRef,
		CreatedAt:            time.Now(),
		UpdatedAt:            time.Now(),
	}

	if err := p.txRepo.Create(ctx, tx); err != nil {
		p.logger.Error("Critical: provider accepted initiation but transaction insert failed",
			zap.Error(err),
			zap.String("providerRef", providerRef),
			zap.String("method", string(method)),
			zap.Int64("userID", cmd.UserID))
		return nil, NewServiceError(constants.ErrCodeInternalError, err)
	}

	return tx, nil
}

func (p *payment) CreatePaypalOrder(ctx context.Context, cmd CreatePaypalOrderCommand) (paypal.Order, error) {
	if !cmd.Amount.IsPositive() {
		return paypal.Order{}, NewServiceError(constants.ErrCodeValidationFailed, ErrInvalidAmount)
	}

	providerCtx, cancel := context.WithTimeout(ctx, p.cfg.Paypal.Timeout)
	defer cancel()

	token, err := p.paypal.Authenticate(providerCtx)
	if err != nil {
		p.logger.Error("PayPal authentication failed", zap.Error(err))
		return paypal.Order{}, NewServiceError(constants.ErrCodePaymentFailed, err)
	}

	order, err := p.paypal.CreateOrder(providerCtx, cmd.Amount, token)
	if err != nil {
		p.logger.Error("PayPal order creation failed", zap.Error(err), zap.Int64("userID", cmd.UserID))
		return paypal.Order{}, NewServiceError(constants.ErrCodePaymentFailed, err)
	}

	p.logger.Info("PayPal order created",
		zap.String("orderID", order.ID),
		zap.Int64("userID", cmd.UserID))

	return order, nil
}

// CapturePaypal is the synchronous counterpart of a mobile-money callback:
// the capture response is final, so the transaction is written directly in
// its terminal state.
func (p *payment) CapturePaypal(ctx context.Context, cmd CapturePaypalCommand) (*model.Transaction, error) {
	if _, err := p.userRepo.GetByID(ctx, cmd.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, NewServiceError(constants.ErrCodeUserNotFound, err)
		}

		return nil, NewServiceError(constants.ErrCodeInternalError, err)
	}

	providerCtx, cancel := context.WithTimeout(ctx, p.cfg.Paypal.Timeout)
	defer cancel()

	token, err := p.paypal.Authenticate(providerCtx)
	if err != nil {
		p.logger.Error("PayPal authentication failed", zap.Error(err))
		return nil, NewServiceError(constants.ErrCodePaymentFailed, err)
	}

	order, err := p.paypal.CaptureOrder(providerCtx, cmd.ProviderOrderID, token)
	if err != nil {
		p.logger.Error("PayPal capture failed",
			zap.Error(err),
			zap.String("orderID", cmd.ProviderOrderID))
		return nil, NewServiceError(constants.ErrCodePaymentFailed, err)
	}

	if len(order.PurchaseUnits) == 0 {
		return nil, NewServiceError(constants.ErrCodePaymentFailed, ErrEmptyCapture)
	}

	amount, err := decimal.NewFromString(order.PurchaseUnits[0].Amount.Value)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodePaymentFailed, fmt.Errorf("bad capture amount: %w", err))
	}

	currency := order.PurchaseUnits[0].Amount.CurrencyCode
	if currency == "" {
		currency = paypalCurrency
	}

	status := model.TransactionStatusFailed
	if order.Completed() {
		status = model.TransactionStatusSuccess
	}

	description := order.Status
	var secondaryRef *string
	if order.Payer.PayerID != "" {
		secondaryRef = &order.Payer.PayerID
	}

	tx := &model.Transaction{
		UserID:               cmd.UserID,
		OrderID:              cmd.OrderID,
		Amount:               amount,
		Currency:             currency,
		PaymentMethod:        model.PaymentMethodPaypal,
		Status:               status,
		ProviderRef:          order.ID,
		ProviderSecondaryRef: secondaryRef,
		ResultDescription:    &description,
		CreatedAt:            time.Now(),
		UpdatedAt:            time.Now(),
	}

	if err := p.txRepo.Create(ctx, tx); err != nil {
		if errors.Is(err, repository.ErrTransactionDuplicate) {
			p.logger.Info("PayPal capture replayed, returning recorded transaction",
				zap.String("orderID", order.ID))
			return p.txRepo.GetByProviderRef(ctx, model.PaymentMethodPaypal, order.ID)
		}

		p.logger.Error("Critical: PayPal capture completed but transaction insert failed",
			zap.Error(err),
			zap.String("orderID", order.ID),
			zap.Int64("userID", cmd.UserID))
		return nil, NewServiceError(constants.ErrCodeInternalError, err)
	}

	p.logger.Info("PayPal payment captured",
		zap.Int64("transactionID", tx.ID),
		zap.String("orderID", order.ID),
		zap.String("status", string(status)))

	if status == model.TransactionStatusSuccess && cmd.OrderID != nil {
		event := PaymentSettledEvent{
			TransactionID: tx.ID,
			OrderID:       *cmd.OrderID,
			UserID:        cmd.UserID,
			Method:        string(model.PaymentMethodPaypal),
		}

		if err := p.events.PublishPaymentSettled(ctx, event); err != nil {
			p.logger.Error("Failed to publish payment settled event",
				zap.Error(err),
				zap.Int64("transactionID", tx.ID))
		}
	}

	return tx, nil
}

func (p *payment) GetTransaction(ctx context.Context, userID, transactionID int64) (*model.Transaction, error) {
	tx, err := p.txRepo.GetByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return nil, NewServiceError(constants.ErrCodeTransactionNotFound, err)
		}

		return nil, NewServiceError(constants.ErrCodeInternalError, err)
	}

	if tx.UserID != userID {
		return nil, NewServiceError(constants.ErrCodeTransactionNotFound, repository.ErrTransactionNotFound)
	}

	return tx, nil
}

func (p *payment) ListTransactions(ctx context.Context, userID int64, limit, offset int) ([]model.Transaction, error) {
	limit, offset = clampPage(limit, offset)

	txs, err := p.txRepo.ListByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeInternalError, err)
	}

	return txs, nil
}

// merchantReference builds a caller-supplied reference for providers that
// need one: unix millis plus a random suffix, unique in practice though not
// guaranteed.
func merchantReference() string {
	return fmt.Sprintf("%d-%d", time.Now().UnixMilli(), rand.Intn(1000))
}
