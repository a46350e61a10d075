package service_test

import (
	"context"
	"testing"

	"github.com/dukamart/storefront/internal/constants"
	"github.com/dukamart/storefront/internal/mocks"
	"github.com/dukamart/storefront/internal/model"
	"github.com/dukamart/storefront/internal/repository"
	"github.com/dukamart/storefront/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newReviewService(t *testing.T) (service.ReviewService, *mocks.ReviewRepository, *mocks.ProductRepository) {
	t.Helper()

	reviewRepo := &mocks.ReviewRepository{}
	productRepo := &mocks.ProductRepository{}
	svc := service.NewReviewService(reviewRepo, productRepo, zap.NewNop())

	return svc, reviewRepo, productRepo
}

func TestReview_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the review and refreshes the product rating", func(t *testing.T) {
		svc, reviewRepo, productRepo := newReviewService(t)

		productRepo.On("GetByID", ctx, int64(5)).
			Return(&model.Product{ID: 5, Name: "Phone"}, nil)
		reviewRepo.On("Upsert", ctx, mock.MatchedBy(func(r *model.Review) bool {
			return r.ProductID == 5 && r.UserID == 7 && r.Rating == 4 && r.Comment == "Solid"
		})).Return(nil)
		reviewRepo.On("Summary", ctx, int64(5)).
			Return(repository.ReviewSummary{AverageRating: 4.5, ReviewCount: 2}, nil)
		productRepo.On("UpdateRating", ctx, int64(5), 4.5).Return(nil)

		review, err := svc.Submit(ctx, service.SubmitReviewCommand{
			UserID: 7, ProductID: 5, Rating: 4, Comment: "Solid",
		})

		assert.NoError(t, err)
		assert.Equal(t, 4, review.Rating)
		reviewRepo.AssertExpectations(t)
		productRepo.AssertExpectations(t)
	})

	t.Run("rejects out of range rating", func(t *testing.T) {
		svc, reviewRepo, _ := newReviewService(t)

		_, err := svc.Submit(ctx, service.SubmitReviewCommand{UserID: 7, ProductID: 5, Rating: 6})

		assertServiceError(t, err, constants.ErrCodeValidationFailed)
		reviewRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("unknown product", func(t *testing.T) {
		svc, reviewRepo, productRepo := newReviewService(t)

		productRepo.On("GetByID", ctx, int64(99)).Return(nil, repository.ErrProductNotFound)

		_, err := svc.Submit(ctx, service.SubmitReviewCommand{UserID: 7, ProductID: 99, Rating: 3})

		assertServiceError(t, err, constants.ErrCodeProductNotFound)
		reviewRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("failed rating refresh does not fail the submission", func(t *testing.T) {
		svc, reviewRepo, productRepo := newReviewService(t)

		productRepo.On("GetByID", ctx, int64(5)).
			Return(&model.Product{ID: 5}, nil)
		reviewRepo.On("Upsert", ctx, mock.Anything).Return(nil)
		reviewRepo.On("Summary", ctx, int64(5)).
			Return(repository.ReviewSummary{}, assert.AnError)

		review, err := svc.Submit(ctx, service.SubmitReviewCommand{
			UserID: 7, ProductID: 5, Rating: 5,
		})

		assert.NoError(t, err)
		assert.NotNil(t, review)
		productRepo.AssertNotCalled(t, "UpdateRating", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestReview_ListByProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("returns reviews with the aggregate summary", func(t *testing.T) {
		svc, reviewRepo, _ := newReviewService(t)

		reviews := []model.Review{
			{ID: 1, ProductID: 5, UserID: 7, Rating: 4},
			{ID: 2, ProductID: 5, UserID: 8, Rating: 5},
		}

		reviewRepo.On("ListByProductID", ctx, int64(5), 20, 0).Return(reviews, nil)
		reviewRepo.On("Summary", ctx, int64(5)).
			Return(repository.ReviewSummary{AverageRating: 4.5, ReviewCount: 2}, nil)

		view, err := svc.ListByProduct(ctx, 5, 0, 0)

		assert.NoError(t, err)
		assert.Len(t, view.Items, 2)
		assert.Equal(t, 4.5, view.AverageRating)
		assert.Equal(t, int64(2), view.ReviewCount)
	})
}
