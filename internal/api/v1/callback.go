package v1

import (
	"github.com/dukamart/storefront/internal/api/contract"
	"github.com/dukamart/storefront/internal/constants"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Callback endpoints answer the provider, not a browser. Anything but a 2xx
// makes the provider retry, which is exactly what we want on transient
// failures and exactly what we do not want on duplicates.

func (h *Handler) MpesaCallback(c *fiber.Ctx) error {
	err := h.reconciler.ReconcileMpesa(c.UserContext(), c.Body())
	if err != nil {
		h.metrics.RecordCallback("mpesa", "rejected")
		h.logger.Error("M-Pesa callback rejected", zap.Error(err))
		return err
	}

	h.metrics.RecordCallback("mpesa", "accepted")

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "success",
		Message:    constants.MsgCallbackAccepted,
	})
}

func (h *Handler) AirtelCallback(c *fiber.Ctx) error {
	err := h.reconciler.ReconcileAirtel(c.UserContext(), c.Body())
	if err != nil {
		h.metrics.RecordCallback("airtel", "rejected")
		h.logger.Error("Airtel callback rejected", zap.Error(err))
		return err
	}

	h.metrics.RecordCallback("airtel", "accepted")

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "success",
		Message:    constants.MsgCallbackAccepted,
	})
}
