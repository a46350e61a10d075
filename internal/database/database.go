package database

import (
	"context"

	"github.com/dukamart/storefront/internal/config"
	"github.com/dukamart/storefront/pkg/mysql"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewConnection(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	return mysql.NewConnection(context.Background(), cfg.Database, logger)
}
