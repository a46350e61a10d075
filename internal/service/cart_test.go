package service_test

import (
	"context"
	"testing"

	"github.com/dukamart/storefront/internal/constants"
	"github.com/dukamart/storefront/internal/mocks"
	"github.com/dukamart/storefront/internal/model"
	"github.com/dukamart/storefront/internal/repository"
	"github.com/dukamart/storefront/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newCartService(t *testing.T) (service.CartService, *mocks.CartRepository, *mocks.ProductRepository) {
	t.Helper()

	cartRepo := &mocks.CartRepository{}
	productRepo := &mocks.ProductRepository{}
	svc := service.NewCartService(cartRepo, productRepo, zap.NewNop())

	return svc, cartRepo, productRepo
}

func TestCart_View(t *testing.T) {
	ctx := context.Background()

	t.Run("totals line prices", func(t *testing.T) {
		svc, cartRepo, _ := newCartService(t)

		items := []model.CartItem{
			{ProductID: 1, Quantity: 3, Product: model.Product{ID: 1, Name: "Phone", Price: decimal.NewFromInt(100)}},
			{ProductID: 2, Quantity: 1, Product: model.Product{ID: 2, Name: "Case", Price: decimal.RequireFromString("9.99")}},
		}

		cartRepo.On("ListByUserID", ctx, int64(7)).Return(items, nil)

		view, err := svc.View(ctx, 7)

		assert.NoError(t, err)
		assert.Len(t, view.Items, 2)
		assert.True(t, view.Total.Equal(decimal.RequireFromString("309.99")))
	})
}

func TestCart_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown product", func(t *testing.T) {
		svc, _, productRepo := newCartService(t)

		productRepo.On("GetByID", ctx, int64(99)).Return(nil, repository.ErrProductNotFound)

		_, err := svc.Add(ctx, service.AddCartItemCommand{UserID: 7, ProductID: 99, Quantity: 1})

		assertServiceError(t, err, constants.ErrCodeProductNotFound)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		svc, cartRepo, _ := newCartService(t)

		_, err := svc.Add(ctx, service.AddCartItemCommand{UserID: 7, ProductID: 1, Quantity: 0})

		assertServiceError(t, err, constants.ErrCodeValidationFailed)
		cartRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})
}

func TestCart_UpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("zero quantity removes the line", func(t *testing.T) {
		svc, cartRepo, _ := newCartService(t)

		cartRepo.On("Remove", ctx, int64(7), int64(1)).Return(nil)
		cartRepo.On("ListByUserID", ctx, int64(7)).Return([]model.CartItem{}, nil)

		view, err := svc.UpdateQuantity(ctx, service.UpdateCartItemCommand{UserID: 7, ProductID: 1, Quantity: 0})

		assert.NoError(t, err)
		assert.Empty(t, view.Items)
		cartRepo.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing line", func(t *testing.T) {
		svc, cartRepo, _ := newCartService(t)

		cartRepo.On("UpdateQuantity", ctx, int64(7), int64(1), 2).Return(repository.ErrCartItemNotFound)

		_, err := svc.UpdateQuantity(ctx, service.UpdateCartItemCommand{UserID: 7, ProductID: 1, Quantity: 2})

		assertServiceError(t, err, constants.ErrCodeCartItemNotFound)
	})
}
