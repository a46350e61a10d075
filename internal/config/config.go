package config

import (
	"fmt"
	"time"

	"github.com/dukamart/storefront/pkg/airtel"
	"github.com/dukamart/storefront/pkg/mpesa"
	"github.com/dukamart/storefront/pkg/mq"
	"github.com/dukamart/storefront/pkg/mysql"
	"github.com/dukamart/storefront/pkg/paypal"
	"github.com/spf13/viper"
)

type Config struct {
	API      API           `mapstructure:"api"`
	Database mysql.Config  `mapstructure:"database"`
	RabbitMQ mq.Config     `mapstructure:"rabbitmq"`
	JWT      JWT           `mapstructure:"jwt"`
	Mpesa    mpesa.Config  `mapstructure:"mpesa"`
	Airtel   airtel.Config `mapstructure:"airtel"`
	Paypal   paypal.Config `mapstructure:"paypal"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type JWT struct {
	Secret     string        `mapstructure:"secret"`
	TTL        time.Duration `mapstructure:"ttl"`
	CookieName string        `mapstructure:"cookie_name"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
