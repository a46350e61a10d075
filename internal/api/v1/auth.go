package v1

import (
	"time"

	"github.com/dukamart/storefront/internal/api/contract"
	"github.com/dukamart/storefront/internal/api/middleware"
	"github.com/dukamart/storefront/internal/constants"
	"github.com/dukamart/storefront/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (h *Handler) Signup(c *fiber.Ctx) error {
	var handlerRequest SignupRequest

	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	cmd := service.SignupCommand{
		Name:     handlerRequest.Name,
		Email:    handlerRequest.Email,
		Password: handlerRequest.Password,
	}

	result, err := h.users.Signup(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, result.Token)

	return c.Status(fiber.StatusCreated).JSON(contract.Response{
		Successful: true,
		Code:       "success",
		Message:    constants.MsgUserCreated,
		Result:     newUserView(result.User),
	})
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var handlerRequest LoginRequest

	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	cmd := service.LoginCommand{Email: handlerRequest.Email, Password: handlerRequest.Password}

	result, err := h.users.Login(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, result.Token)

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "success",
		Message:    constants.MsgLoginSuccessful,
		Result:     newUserView(result.User),
	})
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.JWT.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "success",
		Message:    constants.MsgLogoutSuccessful,
	})
}

func (h *Handler) Me(c *fiber.Ctx) error {
	usr, err := h.users.GetUser(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "success",
		Result:     newUserView(usr),
	})
}

func (h *Handler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.JWT.CookieName,
		Value:    token,
		Expires:  time.Now().Add(h.cfg.JWT.TTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
