package v1

import (
	"github.com/dukamart/storefront/internal/api/validator"
	"github.com/dukamart/storefront/internal/config"
	"github.com/dukamart/storefront/internal/metrics"
	"github.com/dukamart/storefront/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	logger     *zap.Logger
	users      service.UserService
	products   service.ProductService
	carts      service.CartService
	orders     service.OrderService
	reviews    service.ReviewService
	payments   service.PaymentService
	reconciler service.ReconciliationService
	XValidator validator.IXValidator
	metrics    *metrics.Metrics
	cfg        *config.Config
}

func NewHandler(logger *zap.Logger, users service.UserService, products service.ProductService,
	carts service.CartService, orders service.OrderService, reviews service.ReviewService,
	payments service.PaymentService, reconciler service.ReconciliationService,
	XValidator validator.IXValidator, metrics *metrics.Metrics, cfg *config.Config) *Handler {
	return &Handler{
		logger:     logger,
		users:      users,
		products:   products,
		carts:      carts,
		orders:     orders,
		reviews:    reviews,
		payments:   payments,
		reconciler: reconciler,
		XValidator: XValidator,
		metrics:    metrics,
		cfg:        cfg,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}
