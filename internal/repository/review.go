package repository

import (
	"context"
	"time"

	"github.com/dukamart/storefront/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReviewSummary aggregates all reviews of one product.
type ReviewSummary struct {
	AverageRating float64 `gorm:"column:average_rating"`
	ReviewCount   int64   `gorm:"column:review_count"`
}

type ReviewRepository interface {
	Upsert(ctx context.Context, review *model.Review) error
	ListByProductID(ctx context.Context, productID int64, limit, offset int) ([]model.Review, error)
	Summary(ctx context.Context, productID int64) (ReviewSummary, error)
}

type review struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &review{db: db}
}

// Upsert inserts a review or replaces the user's earlier one, relying on the
// (product_id, user_id) unique index.
func (r *review) Upsert(ctx context.Context, rev *model.Review) error {
	return GetTx(ctx, r.db).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "product_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"rating":     rev.Rating,
			"comment":    rev.Comment,
			"updated_at": time.Now(),
		}),
	}).Create(rev).Error
}

func (r *review) ListByProductID(ctx context.Context, productID int64, limit, offset int) ([]model.Review, error) {
	var reviews []model.Review

	err := GetTx(ctx, r.db).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}

	return reviews, nil
}

func (r *review) Summary(ctx context.Context, productID int64) (ReviewSummary, error) {
	var summary ReviewSummary

	err := GetTx(ctx, r.db).Model(&model.Review{}).
		Select("COALESCE(AVG(rating), 0) AS average_rating, COUNT(*) AS review_count").
		Where("product_id = ?", productID).
		Scan(&summary).Error
	if err != nil {
		return ReviewSummary{}, err
	}

	return summary, nil
}
