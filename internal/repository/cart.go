package repository

import (
	"context"
	"errors"
	"time"

	"github.com/dukamart/storefront/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrCartItemNotFound = errors.New("CART_ITEM_NOT_FOUND")

type CartRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error)
	Add(ctx context.Context, item *model.CartItem) error
	UpdateQuantity(ctx context.Context, userID, productID int64, quantity int) error
	Remove(ctx context.Context, userID, productID int64) error
	Clear(ctx context.Context, userID int64) error
}

type cart struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cart{db: db}
}

func (c *cart) ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error) {
	var items []model.CartItem

	err := GetTx(ctx, c.db).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}

// Add inserts a cart line or bumps the quantity when the product is already
// in the cart, relying on the (user_id, product_id) unique index.
func (c *cart) Add(ctx context.Context, item *model.CartItem) error {
	return GetTx(ctx, c.db).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity":   gorm.Expr("quantity + ?", item.Quantity),
			"updated_at": time.Now(),
		}),
	}).Create(item).Error
}

func (c *cart) UpdateQuantity(ctx context.Context, userID, productID int64, quantity int) error {
	result := GetTx(ctx, c.db).Model(&model.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Updates(map[string]any{"quantity": quantity, "updated_at": time.Now()})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}

	return nil
}

func (c *cart) Remove(ctx context.Context, userID, productID int64) error {
	result := GetTx(ctx, c.db).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.CartItem{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}

	return nil
}

func (c *cart) Clear(ctx context.Context, userID int64) error {
	return GetTx(ctx, c.db).Where("user_id = ?", userID).Delete(&model.CartItem{}).Error
}
