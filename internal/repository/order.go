package repository

import (
	"context"
	"errors"
	"time"

	"github.com/dukamart/storefront/internal/model"
	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("ORDER_NOT_FOUND")

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]model.Order, error)
	MarkPaid(ctx context.Context, id int64, paidAt time.Time) error
}

type order struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &order{db: db}
}

func (o *order) Create(ctx context.Context, ord *model.Order) error {
	return GetTx(ctx, o.db).Create(ord).Error
}

func (o *order) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	var ord model.Order

	err := GetTx(ctx, o.db).Preload("Items").Where("id = ?", id).First(&ord).Error
	if err == nil {
		return &ord, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}

	return nil, err
}

func (o *order) ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]model.Order, error) {
	var orders []model.Order

	err := GetTx(ctx, o.db).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}

// MarkPaid transitions a pending order to paid. Guarded on status so a
// replayed settlement event cannot rewrite the paid timestamp.
func (o *order) MarkPaid(ctx context.Context, id int64, paidAt time.Time) error {
	result := GetTx(ctx, o.db).Model(&model.Order{}).
		Where("id = ? AND status = ?", id, model.OrderStatusPending).
		Updates(map[string]any{
			"status":     model.OrderStatusPaid,
			"paid_at":    paidAt,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}
