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

var ErrInvalidRating = errors.New("INVALID_RATING")

type ReviewService interface {
	Submit(ctx context.Context, cmd SubmitReviewCommand) (*model.Review, error)
	ListByProduct(ctx context.Context, productID int64, limit, offset int) (ReviewListView, error)
}

type review struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	logger      *zap.Logger
}

func NewReviewService(reviewRepo repository.ReviewRepository,
	productRepo repository.ProductRepository, logger *zap.Logger) ReviewService {
	return &review{reviewRepo: reviewRepo, productRepo: productRepo, logger: logger}
}

// Submit stores the user's review, replacing any earlier one for the same
// product, and refreshes the product's average rating.
func (r *review) Submit(ctx context.Context, cmd SubmitReviewCommand) (*model.Review, error) {
	if cmd.Rating < 1 || cmd.Rating > 5 {
		return nil, NewServiceError(constants.ErrCodeValidationFailed, ErrInvalidRating)
	}

	if _, err := r.productRepo.GetByID(ctx, cmd.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, NewServiceError(constants.ErrCodeProductNotFound, err)
		}

		return nil, NewServiceError(constants.ErrCodeInternalError, err)
	}

	rev := &model.Review{
		ProductID: cmd.ProductID,
		UserID:    cmd.UserID,
		Rating:    cmd.Rating,
		Comment:   cmd.Comment,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := r.reviewRepo.Upsert(ctx, rev); err != nil {
		return nil, NewServiceError(constants.ErrCodeInternalError, err)
	}

	r.refreshProductRating(ctx, cmd.ProductID)

	r.logger.Info("Review submitted",
		zap.Int64("productID", cmd.ProductID),
		zap.Int64("userID", cmd.UserID),
		zap.Int("rating", cmd.Rating))

	return rev, nil
}

func (r *review) ListByProduct(ctx context.Context, productID int64, limit, offset int) (ReviewListView, error) {
	limit, offset = clampPage(limit, offset)

	reviews, err := r.reviewRepo.ListByProductID(ctx, productID, limit, offset)
	if err != nil {
		return ReviewListView{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	summary, err := r.reviewRepo.Summary(ctx, productID)
	if err != nil {
		return ReviewListView{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	return ReviewListView{
		Items:         reviews,
		AverageRating: summary.AverageRating,
		ReviewCount:   summary.ReviewCount,
	}, nil
}

// The review itself is already stored, so a failed rating refresh only logs.
func (r *review) refreshProductRating(ctx context.Context, productID int64) {
	summary, err := r.reviewRepo.Summary(ctx, productID)
	if err != nil {
		r.logger.Error("Failed to summarize reviews",
			zap.Error(err), zap.Int64("productID", productID))
		return
	}

	if err := r.productRepo.UpdateRating(ctx, productID, summary.AverageRating); err != nil {
		r.logger.Error("Failed to refresh product rating",
			zap.Error(err), zap.Int64("productID", productID))
	}
}
