package infra

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	"bitbucket.org/novatechnologies/mercadobitcoin/client/mercado"
	"bitbucket.org/novatechnologies/mercadobitcoin/infra/logger"
)

type ExchangeConfig struct {
	BaseURL        string        `envconfig:"MB_BASE_URL" default:"https://www.mercadobitcoin.net/api/"`
	Timeout        time.Duration `envconfig:"MB_TIMEOUT" default:"10s"`
	DaySummaryPath string        `envconfig:"MB_DAY_SUMMARY_PATH" default:"trades"`
}

type HttpConfig struct {
	Port            int           `envconfig:"HTTP_PORT" default:"8080"`
	ShutdownTimeout time.Duration `envconfig:"HTTP_SHUTDOWN_TIMEOUT" default:"5s"`
}

type Config struct {
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	ExchangeConfig ExchangeConfig
	HttpConfig     HttpConfig
}

// ClientConfig maps the exchange settings onto the client configuration.
func (c ExchangeConfig) ClientConfig() mercado.Config {
	timeout := c.Timeout
	return mercado.Config{
		BaseURL: c.BaseURL,
		Timeout: &timeout,
		Paths:   mercado.Paths{DaySummary: c.DaySummaryPath},
	}
}

// LoadConfig reads the optional dotenv file at configPath and then the
// process environment, which wins over the file.
func LoadConfig(configPath string) (Config, error) {
	var cfg Config
	if configPath != "" {
		err := godotenv.Load(configPath)
		if err != nil && !os.IsNotExist(errors.Cause(err)) {
			return cfg, errors.Wrapf(err, "failed to load %s", configPath)
		}
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, errors.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// SetConfig is LoadConfig for process startup: it panics on error and
// applies the log level.
func SetConfig(configPath string) Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		logger.DefaultLogger.WithError(err).Error("failed to load configuration")
		panic(err)
	}
	logger.SetLevel(cfg.LogLevel)
	logger.DefaultLogger.WithField("config", cfg).Debug("CONFIG")
	return cfg
}

func GetContext() context.Context {
	return context.Background()
}
