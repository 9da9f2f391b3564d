package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Westerntf/driplypay-v2-sub002/config"
	"github.com/Westerntf/driplypay-v2-sub002/internal/analytics"
	"github.com/Westerntf/driplypay-v2-sub002/internal/metrics"
	"github.com/Westerntf/driplypay-v2-sub002/internal/publisher"
	"github.com/Westerntf/driplypay-v2-sub002/internal/repository/posgrest"
	"github.com/Westerntf/driplypay-v2-sub002/internal/subscriber"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Worker projects the tip stream into analytics rows and exposes its
// own metrics endpoint.
type Worker struct {
	config    *config.Config
	Router    *gin.Engine
	db        *gorm.DB
	projector *analytics.Projector
	consumer  *subscriber.KafkaConsumer
	dlq       *publisher.KafkaPublisher
}

func (w *Worker) Initialize(cfg *config.Config) error {
	w.config = cfg

	db, err := cfg.DB.GormConnect()
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	w.db = db

	retryConfig := cfg.Kafka.GetRetryConfig()
	brokers := cfg.Kafka.BrokerList()

	w.projector = analytics.NewProjector(posgrest.NewAnalyticsRepo(db), cfg.Kafka.TipsTopic)
	w.dlq = publisher.NewKafkaPublisher(brokers, []string{cfg.Kafka.DLQTopic}, retryConfig)
	w.consumer = subscriber.NewMultiTopicConsumer(
		brokers,
		[]string{cfg.Kafka.TipsTopic},
		cfg.Kafka.AnalyticsConsumerGroup,
		w.dlq,
		cfg.Kafka.DLQTopic,
		retryConfig,
	)

	metrics.RegisterMetrics(prometheus.DefaultRegisterer)

	w.Router = gin.New()
	w.Router.Use(gin.Recovery())
	registerMetricsRoute(w.Router)
	return nil
}

// Run consumes until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", w.config.APP.PORT),
		Handler:           w.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := serveUntilDone(ctx, srv); err != nil {
			logrus.Errorf("Metrics server stopped: %v", err)
		}
	}()

	logrus.Infof("Analytics worker consuming %s as group %s", w.config.Kafka.TipsTopic, w.config.Kafka.AnalyticsConsumerGroup)
	w.consumer.Listen(ctx, func(ctx context.Context, topic string, value []byte) error {
		logrus.Debugf("Received message topic=%s value=%s", topic, string(value))
		return w.projector.HandleEvents(ctx, topic, value)
	})
	return nil
}

func (w *Worker) Close() {
	if w.consumer != nil {
		if err := w.consumer.Close(); err != nil {
			logrus.Errorf("Error closing consumer: %v", err)
		}
	}
	if w.dlq != nil {
		if err := w.dlq.Close(); err != nil {
			logrus.Errorf("Error closing DLQ publisher: %v", err)
		}
	}
	if w.db != nil {
		if sqlDB, err := w.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
