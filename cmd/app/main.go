package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/shuklarituparn/order-service/internal/application/handler"
	"github.com/shuklarituparn/order-service/internal/application/service"
	"github.com/shuklarituparn/order-service/internal/cache"
	"github.com/shuklarituparn/order-service/internal/config"
	"github.com/shuklarituparn/order-service/internal/database"
	"github.com/shuklarituparn/order-service/internal/httpapi"
	"github.com/shuklarituparn/order-service/internal/kafka"
	"github.com/shuklarituparn/order-service/internal/observability"
	"github.com/shuklarituparn/order-service/internal/pkg/breaker"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.Connect(ctx, cfg.DSN())
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	repo := database.New(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Fatal("failed to ensure schema", zap.Error(err))
	}

	orderCache := cache.New()
	orderCache.Warm(ctx, repo, cfg.WarmLimit)
	logger.Info("cache warmed", zap.Int("orders", orderCache.Len()))

	metrics := observability.NewPrometheus(prometheus.NewRegistry())
	svc := service.NewService(orderCache, repo, logger, metrics)

	if cfg.KafkaEnabled() {
		if err := kafka.EnsureTopic(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.Workers, 1, logger); err != nil {
			logger.Fatal("failed to ensure kafka topic", zap.Error(err))
		}
		reader := kafkago.NewReader(kafkago.ReaderConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
			GroupID: cfg.Kafka.Group,
		})
		defer reader.Close()

		h := handler.NewHandler(svc, breaker.New(cfg.Breaker), cfg.Retry, metrics, logger)
		consumer := kafka.NewConsumer(h, reader, logger, cfg.Kafka.Workers)
		go consumer.Start(ctx)
	}

	srv := httpapi.New(svc, logger, metrics, metrics.Handler())
	logger.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
	if err := srv.ListenAndServe(ctx, cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("http server failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
