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

func newProductService(t *testing.T) (service.ProductService, *mocks.ProductRepository) {
	t.Helper()

	repo := &mocks.ProductRepository{}
	svc := service.NewProductService(repo, zap.NewNop())

	return svc, repo
}

func TestProduct_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("persists and returns the product", func(t *testing.T) {
		svc, repo := newProductService(t)

		repo.On("Create", ctx, mock.MatchedBy(func(p *model.Product) bool {
			return p.Name == "Phone" && p.Category == "electronics" &&
				p.Price.Equal(decimal.RequireFromString("199.99"))
		})).Return(nil).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Product).ID = 5
		})

		prod, err := svc.Create(ctx, service.SaveProductCommand{
			Name:     "Phone",
			Category: "electronics",
			Price:    decimal.RequireFromString("199.99"),
			Stock:    10,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(5), prod.ID)
		repo.AssertExpectations(t)
	})
}

func TestProduct_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown product", func(t *testing.T) {
		svc, repo := newProductService(t)

		repo.On("Update", ctx, mock.Anything).Return(repository.ErrProductNotFound)

		_, err := svc.Update(ctx, service.SaveProductCommand{ID: 99, Name: "Phone"})

		assertServiceError(t, err, constants.ErrCodeProductNotFound)
	})

	t.Run("returns the refreshed product", func(t *testing.T) {
		svc, repo := newProductService(t)

		repo.On("Update", ctx, mock.Anything).Return(nil)
		repo.On("GetByID", ctx, int64(5)).
			Return(&model.Product{ID: 5, Name: "Phone v2"}, nil)

		prod, err := svc.Update(ctx, service.SaveProductCommand{ID: 5, Name: "Phone v2"})

		assert.NoError(t, err)
		assert.Equal(t, "Phone v2", prod.Name)
	})
}

func TestProduct_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown product", func(t *testing.T) {
		svc, repo := newProductService(t)

		repo.On("Delete", ctx, int64(99)).Return(repository.ErrProductNotFound)

		err := svc.Delete(ctx, 99)

		assertServiceError(t, err, constants.ErrCodeProductNotFound)
	})
}

func TestProduct_List(t *testing.T) {
	ctx := context.Background()

	t.Run("clamps page parameters", func(t *testing.T) {
		svc, repo := newProductService(t)

		repo.On("List", ctx, "electronics", "", 100, 0).
			Return([]model.Product{{ID: 1}}, nil)

		products, err := svc.List(ctx, "electronics", "", 500, -3)

		assert.NoError(t, err)
		assert.Len(t, products, 1)
		repo.AssertExpectations(t)
	})

	t.Run("defaults the page size", func(t *testing.T) {
		svc, repo := newProductService(t)

		repo.On("Search", ctx, "phone", 20, 0).
			Return([]model.Product{}, nil)

		_, err := svc.Search(ctx, "phone", 0, 0)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}
