package service

import (
	"context"
	"errors"
	"time"

	"github.com/dukamart/storefront/internal/constants"
	"github.com/dukamart/storefront/internal/model"
	"github.com/dukamart/storefront/internal/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrInvalidQuantity = errors.New("INVALID_QUANTITY")

type CartService interface {
	View(ctx context.Context, userID int64) (CartView, error)
	Add(ctx context.Context, cmd AddCartItemCommand) (CartView, error)
	UpdateQuantity(ctx context.Context, cmd UpdateCartItemCommand) (CartView, error)
	Remove(ctx context.Context, userID, productID int64) (CartView, error)
	Clear(ctx context.Context, userID int64) error
}

type cart struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *zap.Logger
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository,
	logger *zap.Logger) CartService {
	return &cart{cartRepo: cartRepo, productRepo: productRepo, logger: logger}
}

func (c *cart) View(ctx context.Context, userID int64) (CartView, error) {
	items, err := c.cartRepo.ListByUserID(ctx, userID)
	if err != nil {
		return CartView{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	return buildCartView(items), nil
}

func (c *cart) Add(ctx context.Context, cmd AddCartItemCommand) (CartView, error) {
	if cmd.Quantity <= 0 {
		return CartView{}, NewServiceError(constants.ErrCodeValidationFailed, ErrInvalidQuantity)
	}

	if _, err := c.productRepo.GetByID(ctx, cmd.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return CartView{}, NewServiceError(constants.ErrCodeProductNotFound, err)
		}

		return CartView{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	item := &model.CartItem{
		UserID:    cmd.UserID,
		ProductID: cmd.ProductID,
		Quantity:  cmd.Quantity,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := c.cartRepo.Add(ctx, item); err != nil {
		return CartView{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	return c.View(ctx, cmd.UserID)
}

func (c *cart) UpdateQuantity(ctx context.Context, cmd UpdateCartItemCommand) (CartView, error) {
	if cmd.Quantity <= 0 {
		// A zero quantity removes the line rather than leaving an empty row.
		return c.Remove(ctx, cmd.UserID, cmd.ProductID)
	}

	err := c.cartRepo.UpdateQuantity(ctx, cmd.UserID, cmd.ProductID, cmd.Quantity)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return CartView{}, NewServiceError(constants.ErrCodeCartItemNotFound, err)
		}

		return CartView{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	return c.View(ctx, cmd.UserID)
}

func (c *cart) Remove(ctx context.Context, userID, productID int64) (CartView, error) {
	err := c.cartRepo.Remove(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return CartView{}, NewServiceError(constants.ErrCodeCartItemNotFound, err)
		}

		return CartView{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	return c.View(ctx, userID)
}

func (c *cart) Clear(ctx context.Context, userID int64) error {
	if err := c.cartRepo.Clear(ctx, userID); err != nil {
		return NewServiceError(constants.ErrCodeInternalError, err)
	}

	return nil
}

func buildCartView(items []model.CartItem) CartView {
	view := CartView{Items: make([]CartLine, 0, len(items)), Total: decimal.Zero}

	for _, item := range items {
		line := CartLine{
			ProductID: item.ProductID,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			Image:     item.Product.Image,
			Quantity:  item.Quantity,
		}

		view.Items = append(view.Items, line)
		view.Total = view.Total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return view
}
