package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/shuklarituparn/order-service/internal/config"
	"github.com/shuklarituparn/order-service/internal/domain"
	"github.com/shuklarituparn/order-service/internal/observability"
	"github.com/shuklarituparn/order-service/internal/pkg/retry"
)

//go:generate mockgen -source internal/application/handler/handler.go -destination=internal/application/handler/handler_mock_test.go -package=handler

var (
	ErrCircuitOpen = errors.New("circuit breaker open")
	ErrStore       = errors.New("store failed")
)

type Service interface {
	Create(ctx context.Context, order *domain.Order) error
}

type circuit interface {
	Allow() error
	Success()
	Failure()
}

// Handler processes one Kafka message per call. Returning nil tells the
// consumer to commit the offset. Bad JSON, validation failures and
// duplicates are terminal: the message can never become processable, so
// it is committed and skipped. Only storage failures are retried.
type Handler struct {
	service     Service
	breaker     circuit
	logger      *zap.Logger
	metrics     observability.Metrics
	retryPolicy config.Retry
}

func NewHandler(service Service, brk circuit, retryPolicy config.Retry, metrics observability.Metrics, logger *zap.Logger) *Handler {
	return &Handler{
		service:     service,
		breaker:     brk,
		logger:      logger,
		metrics:     metrics,
		retryPolicy: retryPolicy,
	}
}

func (h *Handler) Handle(ctx context.Context, message kafkago.Message) error {
	if err := h.breaker.Allow(); err != nil {
		h.logger.Warn("circuit breaker is open",
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		return fmt.Errorf("%w: %v", ErrCircuitOpen, err)
	}

	start := time.Now()

	var order domain.Order
	if err := json.Unmarshal(message.Value, &order); err != nil {
		h.logger.Error("bad json format, skipping message",
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		h.observe(start, false)
		return nil
	}

	var terminal error
	err := retry.Do(ctx, h.retryPolicy, func() error {
		createErr := h.service.Create(ctx, &order)
		var vErr *domain.ValidationError
		if errors.As(createErr, &vErr) || errors.Is(createErr, domain.ErrDuplicate) {
			// Terminal: retrying cannot change the outcome.
			terminal = createErr
			return nil
		}
		return createErr
	})
	if err != nil {
		h.logger.Error("create failed after retries",
			zap.String("order_uid", order.OrderUID),
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		h.breaker.Failure()
		h.observe(start, false)
		return fmt.Errorf("%w: %v", ErrStore, err)
	}

	h.breaker.Success()

	if terminal != nil {
		h.logger.Warn("order rejected, skipping message",
			zap.String("order_uid", order.OrderUID),
			zap.Error(terminal),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		h.observe(start, false)
		return nil
	}

	h.observe(start, true)
	h.logger.Info("message processed",
		zap.String("order_uid", order.OrderUID),
		zap.Int("partition", message.Partition),
		zap.Int64("offset", message.Offset),
		zap.Int("value_bytes", len(message.Value)),
	)
	return nil
}

func (h *Handler) observe(start time.Time, ok bool) {
	h.metrics.ObserveKafka(float64(time.Since(start).Microseconds())/1000.0, ok)
}
