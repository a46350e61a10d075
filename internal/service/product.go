package service

import (
	"context"
	"errors"
	"time"

	"github.com/dukamart/storefront/internal/constants"
	"github.com/dukamart/storefront/internal/model"
	"github.com/dukamart/storefront/internal/repository"
	"go.uber.org/zap"
)

const defaultPageSize = 20
const maxPageSize = 100

type ProductService interface {
	Create(ctx context.Context, cmd SaveProductCommand) (*model.Product, error)
	Update(ctx context.Context, cmd SaveProductCommand) (*model.Product, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context, category, subcategory string, limit, offset int) ([]model.Product, error)
	Search(ctx context.Context, query string, limit, offset int) ([]model.Product, error)
}

type product struct {
	repo   repository.ProductRepository
	logger *zap.Logger
}

func NewProductService(repo repository.ProductRepository, logger *zap.Logger) ProductService {
	return &product{repo: repo, logger: logger}
}

func (p *product) Create(ctx context.Context, cmd SaveProductCommand) (*model.Product, error) {
	prod := &model.Product{
		Name:        cmd.Name,
		Description: cmd.Description,
		Category:    cmd.Category,
		Subcategory: cmd.Subcategory,
		Price:       cmd.Price,
		Image:       cmd.Image,
		Stock:       cmd.Stock,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := p.repo.Create(ctx, prod); err != nil {
		return nil, NewServiceError(constants.ErrCodeInternalError, err)
	}

	p.logger.Info("Product created", zap.Int64("productID", prod.ID), zap.String("name", prod.Name))

	return prod, nil
}

func (p *product) Update(ctx context.Context, cmd SaveProductCommand) (*model.Product, error) {
	prod := &model.Product{
		ID:          cmd.ID,
		Name:        cmd.Name,
		Description: cmd.Description,
		Category:    cmd.Category,
		Subcategory: cmd.Subcategory,
		Price:       cmd.Price,
		Image:       cmd.Image,
		Stock:       cmd.Stock,
		UpdatedAt:   time.Now(),
	}

	if err := p.repo.Update(ctx, prod); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, NewServiceError(constants.ErrCodeProductNotFound, err)
		}

		return nil, NewServiceError(constants.ErrCodeInternalError, err)
	}

	return p.Get(ctx, cmd.ID)
}

func (p *product) Delete(ctx context.Context, id int64) error {
	if err := p.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return NewServiceError(constants.ErrCodeProductNotFound, err)
		}

		return NewServiceError(constants.ErrCodeInternalError, err)
	}

	p.logger.Info("Product deleted", zap.Int64("productID", id))

	return nil
}

func (p *product) Get(ctx context.Context, id int64) (*model.Product, error) {
	prod, err := p.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, NewServiceError(constants.ErrCodeProductNotFound, err)
		}

		return nil, NewServiceError(constants.ErrCodeInternalError, err)
	}

	return prod, nil
}

func (p *product) List(ctx context.Context, category, subcategory string, limit, offset int) ([]model.Product, error) {
	limit, offset = clampPage(limit, offset)

	products, err := p.repo.List(ctx, category, subcategory, limit, offset)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeInternalError, err)
	}

	return products, nil
}

func (p *product) Search(ctx context.Context, query string, limit, offset int) ([]model.Product, error) {
	limit, offset = clampPage(limit, offset)

	products, err := p.repo.Search(ctx, query, limit, offset)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeInternalError, err)
	}

	return products, nil
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
