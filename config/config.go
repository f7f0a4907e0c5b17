package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Error("Error can't get the environment variables by file")
	}
	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
	}
	if err := Config.Validate(); err != nil {
		return nil, err
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Kafka
	Midtrans
	Push
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT"`
	SSLMODE  string `env:"DB_SSLMODE"`
}

type APP struct {
	PORT        string `env:"APP_PORT" envDefault:"8080"`
	OrderPrefix string `env:"ORDER_PREFIX" envDefault:"PAM"`
}

type Midtrans struct {
	ServerKey  string `env:"MIDTRANS_SERVER_KEY"`
	ClientKey  string `env:"MIDTRANS_CLIENT_KEY"`
	Production bool   `env:"MIDTRANS_PRODUCTION" envDefault:"false"`
}

type Push struct {
	APIURL    string `env:"PUSH_API_URL"`
	ServerKey string `env:"PUSH_SERVER_KEY"`
}

type Kafka struct {
	Brokers       string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	PublishTopics string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"payments.status.changed,payments.dlq"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}

// Validate enforces the secrets the service cannot run without. A missing
// value is a startup failure, never a runtime one.
func (c *Config) Validate() error {
	if c.Midtrans.ServerKey == "" || c.Midtrans.ClientKey == "" {
		return fmt.Errorf("MIDTRANS_SERVER_KEY and MIDTRANS_CLIENT_KEY are required")
	}
	if c.Push.APIURL == "" || c.Push.ServerKey == "" {
		return fmt.Errorf("PUSH_API_URL and PUSH_SERVER_KEY are required")
	}
	return nil
}
