package main

import (
	"context"

	"github.com/dukamart/storefront/internal/api"
	v1 "github.com/dukamart/storefront/internal/api/v1"
	apivalidator "github.com/dukamart/storefront/internal/api/validator"
	"github.com/dukamart/storefront/internal/auth"
	"github.com/dukamart/storefront/internal/config"
	"github.com/dukamart/storefront/internal/database"
	"github.com/dukamart/storefront/internal/errors"
	"github.com/dukamart/storefront/internal/metrics"
	"github.com/dukamart/storefront/internal/publishers"
	"github.com/dukamart/storefront/internal/repository"
	"github.com/dukamart/storefront/internal/service"
	"github.com/dukamart/storefront/pkg/airtel"
	"github.com/dukamart/storefront/pkg/credentials"
	"github.com/dukamart/storefront/pkg/httpclient"
	"github.com/dukamart/storefront/pkg/mpesa"
	"github.com/dukamart/storefront/pkg/mq"
	"github.com/dukamart/storefront/pkg/paypal"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			database.NewConnection,
			NewMQConnection,
			NewEventPublisher,

			credentials.NewCache,
			NewMpesaGateway,
			NewAirtelGateway,
			NewPaypalGateway,

			repository.NewTransactionRepository,
			repository.NewUserRepository,
			repository.NewProductRepository,
			repository.NewCartRepository,
			repository.NewOrderRepository,
			repository.NewReviewRepository,
			repository.NewTransactionManager,

			service.NewPaymentService,
			service.NewReconciliationService,
			service.NewUserService,
			service.NewProductService,
			service.NewCartService,
			service.NewOrderService,
			service.NewReviewService,

			NewTokenManager,
			metrics.NewMetrics,
			validator.New,
			apivalidator.NewXValidator,
			v1.NewHandler,
			NewFiberApp,
		),
		fx.Invoke(startServer),
	).Run()
}

func startServer(app *fiber.App, handler *v1.Handler, tokens *auth.TokenManager,
	cfg *config.Config, rabbit *mq.RabbitMQ, logger *zap.Logger, lc fx.Lifecycle,
) {
	api.SetupRoutes(app, handler, tokens, cfg)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{publishers.QueuePaymentsSettled}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}

			go app.Listen(cfg.API.Port)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := app.ShutdownWithContext(ctx); err != nil {
				return err
			}
			return rabbit.Close()
		},
	})
}

func NewFiberApp(m *metrics.Metrics, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: errors.ErrorHandler()})
	app.Use(metrics.HealthCheckMiddleware())
	app.Use(metrics.HTTPMetricsMiddleware(m, logger))
	return app
}

func NewTokenManager(cfg *config.Config) *auth.TokenManager {
	return auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewEventPublisher(rabbit *mq.RabbitMQ, logger *zap.Logger) (service.EventPublisher, error) {
	publisher, err := rabbit.CreatePublisher()
	if err != nil {
		return nil, err
	}

	return publishers.NewPaymentEvents(publisher, logger), nil
}

func NewMpesaGateway(cfg *config.Config, tokens credentials.Cache) mpesa.Gateway {
	client := httpclient.NewHTTPClient(cfg.Mpesa.Timeout)
	return mpesa.NewGateway(cfg.Mpesa, client, tokens)
}

func NewAirtelGateway(cfg *config.Config, tokens credentials.Cache) airtel.Gateway {
	client := httpclient.NewHTTPClient(cfg.Airtel.Timeout)
	return airtel.NewGateway(cfg.Airtel, client, tokens)
}

func NewPaypalGateway(cfg *config.Config, tokens credentials.Cache) paypal.Gateway {
	client := httpclient.NewHTTPClient(cfg.Paypal.Timeout)
	return paypal.NewGateway(cfg.Paypal, client, tokens)
}
