package v1

import (
	"github.com/dukamart/storefront/internal/api/contract"
	"github.com/dukamart/storefront/internal/constants"
	"github.com/dukamart/storefront/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func (h *Handler) ListProducts(c *fiber.Ctx) error {
	products, err := h.products.List(c.UserContext(),
		c.Query("category"), c.Query("subcategory"),
		c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Successful: true, Code: "success", Result: products})
}

func (h *Handler) SearchProducts(c *fiber.Ctx) error {
	products, err := h.products.Search(c.UserContext(),
		c.Query("q"), c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Successful: true, Code: "success", Result: products})
}

func (h *Handler) GetProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return service.NewServiceError(constants.ErrCodeProductNotFound, err)
	}

	product, err := h.products.Get(c.UserContext(), int64(id))
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Successful: true, Code: "success", Result: product})
}

func (h *Handler) CreateProduct(c *fiber.Ctx) error {
	cmd, responseError := h.parseProductRequest(c)
	if responseError != nil {
		return c.JSON(*responseError)
	}

	product, err := h.products.Create(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(contract.Response{
		Successful: true,
		Code:       "success",
		Message:    constants.MsgProductCreated,
		Result:     product,
	})
}

func (h *Handler) UpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return service.NewServiceError(constants.ErrCodeProductNotFound, err)
	}

	cmd, responseError := h.parseProductRequest(c)
	if responseError != nil {
		return c.JSON(*responseError)
	}
	cmd.ID = int64(id)

	product, err := h.products.Update(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "success",
		Message:    constants.MsgProductUpdated,
		Result:     product,
	})
}

func (h *Handler) DeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return service.NewServiceError(constants.ErrCodeProductNotFound, err)
	}

	if err := h.products.Delete(c.UserContext(), int64(id)); err != nil {
		return err
	}

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "success",
		Message:    constants.MsgProductDeleted,
	})
}

func (h *Handler) parseProductRequest(c *fiber.Ctx) (service.SaveProductCommand, *contract.Response) {
	var handlerRequest SaveProductRequest

	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return service.SaveProductCommand{}, &responseError
	}

	price, err := decimal.NewFromString(handlerRequest.Price)
	if err != nil {
		responseError.Code = constants.ErrCodeValidationFailed
		responseError.Message = "price is invalid"
		c.Status(fiber.StatusUnprocessableEntity)
		return service.SaveProductCommand{}, &responseError
	}

	return service.SaveProductCommand{
		Name:        handlerRequest.Name,
		Description: handlerRequest.Description,
		Category:    handlerRequest.Category,
		Subcategory: handlerRequest.Subcategory,
		Price:       price,
		Image:       handlerRequest.Image,
		Stock:       handlerRequest.Stock,
	}, nil
}
