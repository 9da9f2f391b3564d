package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Westerntf/driplypay-v2-sub002/config"
	"github.com/Westerntf/driplypay-v2-sub002/internal/analytics"
	"github.com/Westerntf/driplypay-v2-sub002/internal/cache"
	"github.com/Westerntf/driplypay-v2-sub002/internal/checkout"
	"github.com/Westerntf/driplypay-v2-sub002/internal/handler"
	"github.com/Westerntf/driplypay-v2-sub002/internal/metrics"
	"github.com/Westerntf/driplypay-v2-sub002/internal/processor"
	"github.com/Westerntf/driplypay-v2-sub002/internal/publisher"
	"github.com/Westerntf/driplypay-v2-sub002/internal/repository/posgrest"
	"github.com/Westerntf/driplypay-v2-sub002/internal/settlement"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config    *config.Config
	Router    *gin.Engine
	db        *gorm.DB
	redis     *redis.Client
	publisher *publisher.KafkaPublisher
}

// Initialize wires the HTTP API: webhook settlement, checkout and the
// creator read endpoints.
func (a *App) Initialize(cfg *config.Config) error {
	a.config = cfg
	if cfg.Stripe.WebhookSecret == "" {
		return errors.New("STRIPE_WEBHOOK_SECRET is required")
	}

	db, err := cfg.DB.GormConnect()
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.db = db

	verifier := processor.NewWebhookVerifier(cfg.Stripe.WebhookSecret, cfg.Stripe.WebhookTolerance)

	analyticsSink, err := a.analyticsSink()
	if err != nil {
		return err
	}

	reconciler := settlement.New(
		verifier,
		posgrest.NewSettlementStore(db),
		analyticsSink,
		posgrest.NewUnreconciledRepo(db),
	)

	a.redis = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	profileRepo := posgrest.NewProfileRepo(db)
	cachedProfiles := cache.NewProfiles(a.redis, profileRepo, cfg.Redis.ProfileTTL)

	checkoutService := checkout.NewService(
		processor.NewCheckoutClient(cfg.Stripe),
		cachedProfiles,
		checkout.Limits{
			MinAmount:  cfg.Tips.MinAmount,
			MaxAmount:  cfg.Tips.MaxAmount,
			Currencies: cfg.Tips.AllowedCurrencies(),
		},
	)

	metrics.RegisterMetrics(prometheus.DefaultRegisterer)

	a.Router = gin.New()
	a.Router.Use(gin.Logger(), gin.Recovery())
	a.RegisterRoutes(
		handler.NewWebhookHandler(reconciler),
		handler.NewCheckoutHandler(checkoutService),
		handler.NewCreatorHandler(profileRepo),
	)
	return nil
}

func (a *App) analyticsSink() (settlement.AnalyticsStore, error) {
	switch a.config.Analytics.Sink {
	case config.AnalyticsSinkDatabase, "":
		return posgrest.NewAnalyticsRepo(a.db), nil
	case config.AnalyticsSinkKafka:
		a.publisher = publisher.NewKafkaPublisher(
			a.config.Kafka.BrokerList(),
			[]string{a.config.Kafka.TipsTopic},
			a.config.Kafka.GetRetryConfig(),
		)
		return analytics.NewKafkaSink(a.publisher, a.config.Kafka.TipsTopic, a.config.Analytics.PublishTimeout), nil
	default:
		return nil, fmt.Errorf("unknown analytics sink %q", a.config.Analytics.Sink)
	}
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", a.config.APP.PORT),
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return serveUntilDone(ctx, srv)
}

func (a *App) Close() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			logrus.Errorf("Error closing publisher: %v", err)
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			logrus.Errorf("Error closing redis client: %v", err)
		}
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}

func serveUntilDone(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
