package v1

import (
	"github.com/dukamart/storefront/internal/api/contract"
	"github.com/dukamart/storefront/internal/api/middleware"
	"github.com/dukamart/storefront/internal/constants"
	"github.com/dukamart/storefront/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (h *Handler) GetCart(c *fiber.Ctx) error {
	view, err := h.carts.View(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Successful: true, Code: "success", Result: view})
}

func (h *Handler) AddCartItem(c *fiber.Ctx) error {
	var handlerRequest AddCartItemRequest

	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	cmd := service.AddCartItemCommand{
		UserID:    middleware.UserID(c),
		ProductID: handlerRequest.ProductID,
		Quantity:  handlerRequest.Quantity,
	}

	view, err := h.carts.Add(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Successful: true, Code: "success", Result: view})
}

func (h *Handler) UpdateCartItem(c *fiber.Ctx) error {
	var handlerRequest UpdateCartItemRequest

	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	cmd := service.UpdateCartItemCommand{
		UserID:    middleware.UserID(c),
		ProductID: handlerRequest.ProductID,
		Quantity:  handlerRequest.Quantity,
	}

	view, err := h.carts.UpdateQuantity(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Successful: true, Code: "success", Result: view})
}

func (h *Handler) RemoveCartItem(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil {
		return service.NewServiceError(constants.ErrCodeCartItemNotFound, err)
	}

	view, err := h.carts.Remove(c.UserContext(), middleware.UserID(c), int64(productID))
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Successful: true, Code: "success", Result: view})
}

func (h *Handler) ClearCart(c *fiber.Ctx) error {
	if err := h.carts.Clear(c.UserContext(), middleware.UserID(c)); err != nil {
		return err
	}

	return c.JSON(contract.Response{Successful: true, Code: "success"})
}
