package main

import (
	"context"

	"github.com/dukamart/storefront/internal/config"
	"github.com/dukamart/storefront/internal/consumers"
	"github.com/dukamart/storefront/internal/database"
	"github.com/dukamart/storefront/internal/publishers"
	"github.com/dukamart/storefront/internal/repository"
	"github.com/dukamart/storefront/internal/service"
	"github.com/dukamart/storefront/pkg/mq"
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
			NewMQConsumer,

			repository.NewOrderRepository,
			repository.NewCartRepository,
			repository.NewTransactionRepository,
			repository.NewTransactionManager,
			service.NewOrderService,

			consumers.NewOrderSettlement,
		),
		fx.Invoke(runSettlementConsumer),
	).Run()
}

func runSettlementConsumer(settlement *consumers.OrderSettlement, logger *zap.Logger,
	rabbit *mq.RabbitMQ, lc fx.Lifecycle,
) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{publishers.QueuePaymentsSettled}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}

			go func() {
				if err := settlement.Run(appCtx); err != nil {
					logger.Error("consumer exited", zap.Error(err))
				}
			}()

			logger.Info("order settlement consumer started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping order settlement consumer")
			cancel()
			return rabbit.Close()
		},
	})
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewMQConsumer(rabbitMQ *mq.RabbitMQ) (mq.Consumer, error) {
	return rabbitMQ.CreateConsumer()
}
