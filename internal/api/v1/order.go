package v1

import (
	"github.com/dukamart/storefront/internal/api/contract"
	"github.com/dukamart/storefront/internal/api/middleware"
	"github.com/dukamart/storefront/internal/constants"
	"github.com/dukamart/storefront/internal/service"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) CreateOrder(c *fiber.Ctx) error {
	order, err := h.orders.CreateFromCart(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return err
	}

	h.metrics.OrdersCreated.Inc()

	return c.Status(fiber.StatusCreated).JSON(contract.Response{
		Successful: true,
		Code:       "success",
		Message:    constants.MsgOrderCreated,
		Result:     order,
	})
}

func (h *Handler) ListOrders(c *fiber.Ctx) error {
	orders, err := h.orders.ListByUser(c.UserContext(), middleware.UserID(c),
		c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Successful: true, Code: "success", Result: orders})
}

func (h *Handler) GetOrder(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return service.NewServiceError(constants.ErrCodeOrderNotFound, err)
	}

	order, err := h.orders.Get(c.UserContext(), middleware.UserID(c), int64(id))
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Successful: true, Code: "success", Result: order})
}
