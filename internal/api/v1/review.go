package v1

import (
	"github.com/dukamart/storefront/internal/api/contract"
	"github.com/dukamart/storefront/internal/api/middleware"
	"github.com/dukamart/storefront/internal/constants"
	"github.com/dukamart/storefront/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (h *Handler) ListProductReviews(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("id")
	if err != nil {
		return service.NewServiceError(constants.ErrCodeProductNotFound, err)
	}

	view, err := h.reviews.ListByProduct(c.UserContext(), int64(productID),
		c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Successful: true, Code: "success", Result: view})
}

func (h *Handler) SubmitReview(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("id")
	if err != nil {
		return service.NewServiceError(constants.ErrCodeProductNotFound, err)
	}

	var handlerRequest SubmitReviewRequest

	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	cmd := service.SubmitReviewCommand{
		UserID:    middleware.UserID(c),
		ProductID: int64(productID),
		Rating:    handlerRequest.Rating,
		Comment:   handlerRequest.Comment,
	}

	review, err := h.reviews.Submit(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(contract.Response{
		Successful: true,
		Code:       "success",
		Message:    constants.MsgReviewSubmitted,
		Result:     review,
	})
}
