package repository

import (
	"context"
	"errors"

	"github.com/dukamart/storefront/internal/model"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("PRODUCT_NOT_FOUND")

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context, category, subcategory string, limit, offset int) ([]model.Product, error)
	Search(ctx context.Context, query string, limit, offset int) ([]model.Product, error)
	UpdateRating(ctx context.Context, id int64, rating float64) error
}

type product struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &product{db: db}
}

func (p *product) Create(ctx context.Context, prod *model.Product) error {
	return GetTx(ctx, p.db).Create(prod).Error
}

func (p *product) Update(ctx context.Context, prod *model.Product) error {
	result := GetTx(ctx, p.db).Model(prod).Where("id = ?", prod.ID).Updates(prod)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

func (p *product) Delete(ctx context.Context, id int64) error {
	result := GetTx(ctx, p.db).Where("id = ?", id).Delete(&model.Product{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

func (p *product) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	var prod model.Product

	err := GetTx(ctx, p.db).Where("id = ?", id).First(&prod).Error
	if err == nil {
		return &prod, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}

	return nil, err
}

// UpdateRating writes the recomputed average. An unchanged value reports zero
// affected rows on MySQL, so presence is not checked here.
func (p *product) UpdateRating(ctx context.Context, id int64, rating float64) error {
	return GetTx(ctx, p.db).Model(&model.Product{}).
		Where("id = ?", id).
		Update("rating", rating).Error
}

func (p *product) List(ctx context.Context, category, subcategory string, limit, offset int) ([]model.Product, error) {
	query := GetTx(ctx, p.db).Model(&model.Product{})

	if category != "" {
		query = query.Where("category = ?", category)
	}
	if subcategory != "" {
		query = query.Where("subcategory = ?", subcategory)
	}

	var products []model.Product
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&products).Error
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (p *product) Search(ctx context.Context, q string, limit, offset int) ([]model.Product, error) {
	var products []model.Product

	pattern := "%" + q + "%"
	err := GetTx(ctx, p.db).
		Where("name LIKE ? OR description LIKE ? OR category LIKE ? OR subcategory LIKE ?",
			pattern, pattern, pattern, pattern).
		Order("rating DESC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	return products, nil
}
