package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	if IsLocal() {
		if err := godotenv.Load(".env"); err != nil {
			logrus.Warn("No .env file loaded, using process environment")
		}
	}

	if err := env.Parse(&Config); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}
	return &Config, nil
}

// IsLocal reports whether the process runs in the local development profile.
func IsLocal() bool {
	return os.Getenv("GO_ENV") == "local"
}

type Config struct {
	APP
	DB
	Kafka
	Stripe
	Redis
	Analytics
	Tips
}

type APP struct {
	PORT     string `env:"APP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

type DB struct {
	HOST     string `env:"DB_HOST" envDefault:"localhost"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT" envDefault:"5432"`
	SSLMODE  string `env:"DB_SSLMODE" envDefault:"disable"`
}

type Kafka struct {
	Brokers                string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	AnalyticsConsumerGroup string `env:"KAFKA_ANALYTICS_GROUP_ID" envDefault:"analytics-worker"`
	TipsTopic              string `env:"KAFKA_TIPS_TOPIC" envDefault:"tips.received"`
	DLQTopic               string `env:"KAFKA_DLQ_TOPIC" envDefault:"tips.dlq"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type Stripe struct {
	SecretKey        string        `env:"STRIPE_SECRET_KEY"`
	WebhookSecret    string        `env:"STRIPE_WEBHOOK_SECRET"`
	WebhookTolerance time.Duration `env:"STRIPE_WEBHOOK_TOLERANCE" envDefault:"5m"`
	SuccessURL       string        `env:"STRIPE_SUCCESS_URL" envDefault:"http://localhost:3000/tips/success?session_id={CHECKOUT_SESSION_ID}"`
	CancelURL        string        `env:"STRIPE_CANCEL_URL" envDefault:"http://localhost:3000/tips/cancel"`
}

type Redis struct {
	Addr       string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password   string        `env:"REDIS_PASSWORD"`
	DB         int           `env:"REDIS_DB" envDefault:"0"`
	ProfileTTL time.Duration `env:"REDIS_PROFILE_TTL" envDefault:"5m"`
}

const (
	AnalyticsSinkDatabase = "database"
	AnalyticsSinkKafka    = "kafka"
)

type Analytics struct {
	Sink           string        `env:"ANALYTICS_SINK" envDefault:"database"`
	PublishTimeout time.Duration `env:"ANALYTICS_PUBLISH_TIMEOUT" envDefault:"2s"`
}

type Tips struct {
	MinAmount  int64  `env:"TIPS_MIN_AMOUNT" envDefault:"100"`
	MaxAmount  int64  `env:"TIPS_MAX_AMOUNT" envDefault:"1000000"`
	Currencies string `env:"TIPS_CURRENCIES" envDefault:"usd,eur,gbp,aud"`
}

// AllowedCurrencies returns the configured currency allow list, lowercased.
func (t Tips) AllowedCurrencies() []string {
	var out []string
	for _, c := range strings.Split(t.Currencies, ",") {
		c = strings.ToLower(strings.TrimSpace(c))
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

func (k Kafka) BrokerList() []string {
	return strings.Split(k.Brokers, ",")
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
