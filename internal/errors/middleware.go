package errors

import (
	"errors"

	"github.com/dukamart/storefront/internal/constants"
	"github.com/dukamart/storefront/internal/service"
	"github.com/gofiber/fiber/v2"
)

func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			return handleServiceError(c, serviceErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{
				"code":    constants.ErrCodeInternalError,
				"message": fiberErr.Message,
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal server error",
			"message": "Could not process the request",
		})
	}
}

func handleServiceError(c *fiber.Ctx, err service.Error) error {
	statusMap := map[string]int{
		constants.ErrCodeValidationFailed:     fiber.StatusUnprocessableEntity,
		constants.ErrCodeInvalidRequestBody:   fiber.StatusBadRequest,
		constants.ErrCodeInvalidPaymentMethod: fiber.StatusBadRequest,
		constants.ErrCodeUserNotFound:         fiber.StatusNotFound,
		constants.ErrCodeUserExisted:          fiber.StatusConflict,
		constants.ErrCodeInvalidCredentials:   fiber.StatusUnauthorized,
		constants.ErrCodeUnauthorized:         fiber.StatusUnauthorized,
		constants.ErrCodeProductNotFound:      fiber.StatusNotFound,
		constants.ErrCodeCartItemNotFound:     fiber.StatusNotFound,
		constants.ErrCodeCartEmpty:            fiber.StatusConflict,
		constants.ErrCodeOrderNotFound:        fiber.StatusNotFound,
		constants.ErrCodeTransactionNotFound:  fiber.StatusNotFound,
		constants.ErrCodePaymentFailed:        fiber.StatusBadGateway,
		constants.ErrCodeMalformedCallback:    fiber.StatusInternalServerError,
		constants.ErrCodeInternalError:        fiber.StatusInternalServerError,
	}

	status, ok := statusMap[err.Code]
	if !ok {
		status = fiber.StatusInternalServerError
	}

	return c.Status(status).JSON(fiber.Map{
		"code":    err.Code,
		"message": constants.GetErrorMessage(err.Code),
	})
}
