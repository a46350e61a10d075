package service

import (
	"context"
	"errors"
	"time"

	"github.com/dukamart/storefront/internal/constants"
	"github.com/dukamart/storefront/internal/model"
	"github.com/dukamart/storefront/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrTransactionNotSettled = errors.New("TRANSACTION_NOT_SETTLED")

type OrderService interface {
	CreateFromCart(ctx context.Context, userID int64) (*model.Order, error)
	Get(ctx context.Context, userID, orderID int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]model.Order, error)
	MarkPaid(ctx context.Context, cmd MarkOrderPaidCommand) error
}

type order struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	txRepo    repository.TransactionRepository
	txManager repository.TxManager
	logger    *zap.Logger
}

func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository,
	txRepo repository.TransactionRepository, txManager repository.TxManager, logger *zap.Logger) OrderService {
	return &order{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		txRepo:    txRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// CreateFromCart snapshots the cart into a pending order and empties the cart,
// both inside one database transaction.
func (o *order) CreateFromCart(ctx context.Context, userID int64) (*model.Order, error) {
	var created *model.Order

	err := o.txManager.WithTx(ctx, func(txCtx context.Context) error {
		items, err := o.cartRepo.ListByUserID(txCtx, userID)
		if err != nil {
			return NewServiceError(constants.ErrCodeInternalError, err)
		}

		if len(items) == 0 {
			return NewServiceError(constants.ErrCodeCartEmpty, errors.New("CART_EMPTY"))
		}

		total := decimal.Zero
		orderItems := make([]model.OrderItem, 0, len(items))

		for _, item := range items {
			orderItems = append(orderItems, model.OrderItem{
				ProductID: item.ProductID,
				Name:      item.Product.Name,
				Price:     item.Product.Price,
				Quantity:  item.Quantity,
			})

			total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}

		ord := &model.Order{
			OrderNumber: uuid.NewString(),
			UserID:      userID,
			Total:       total,
			Status:      model.OrderStatusPending,
			Items:       orderItems,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		if err := o.orderRepo.Create(txCtx, ord); err != nil {
			return NewServiceError(constants.ErrCodeInternalError, err)
		}

		if err := o.cartRepo.Clear(txCtx, userID); err != nil {
			return NewServiceError(constants.ErrCodeInternalError, err)
		}

		created = ord
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.logger.Info("Order created",
		zap.Int64("orderID", created.ID),
		zap.String("orderNumber", created.OrderNumber),
		zap.Int64("userID", userID))

	return created, nil
}

func (o *order) Get(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	ord, err := o.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, NewServiceError(constants.ErrCodeOrderNotFound, err)
		}

		return nil, NewServiceError(constants.ErrCodeInternalError, err)
	}

	if ord.UserID != userID {
		return nil, NewServiceError(constants.ErrCodeOrderNotFound, repository.ErrOrderNotFound)
	}

	return ord, nil
}

func (o *order) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]model.Order, error) {
	limit, offset = clampPage(limit, offset)

	orders, err := o.orderRepo.ListByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeInternalError, err)
	}

	return orders, nil
}

// MarkPaid is driven by settlement events. It re-reads the transaction before
// touching the order so a stray event cannot mark an order paid without a
// successful payment behind it.
func (o *order) MarkPaid(ctx context.Context, cmd MarkOrderPaidCommand) error {
	tx, err := o.txRepo.GetByID(ctx, cmd.TransactionID)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return NewServiceError(constants.ErrCodeTransactionNotFound, err)
		}

		return NewServiceError(constants.ErrCodeInternalError, err)
	}

	if tx.Status != model.TransactionStatusSuccess {
		return NewServiceError(constants.ErrCodePaymentFailed, ErrTransactionNotSettled)
	}

	err = o.orderRepo.MarkPaid(ctx, cmd.OrderID, time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			o.logger.Info("Order already paid or not pending, ignoring settlement",
				zap.Int64("orderID", cmd.OrderID))
			return nil
		}

		return NewServiceError(constants.ErrCodeInternalError, err)
	}

	o.logger.Info("Order marked paid",
		zap.Int64("orderID", cmd.OrderID),
		zap.Int64("transactionID", cmd.TransactionID))

	return nil
}
