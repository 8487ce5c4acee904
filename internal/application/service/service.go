package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/shuklarituparn/order-service/internal/domain"
	"github.com/shuklarituparn/order-service/internal/observability"
)

//go:generate mockgen -source internal/application/service/service.go -destination=internal/application/service/service_mock_test.go -package=service

type Cache interface {
	Get(string) (*domain.Order, bool)
	Set(*domain.Order)
	Contains(string) bool
}

type Storage interface {
	Insert(context.Context, *domain.Order) error
	GetByUID(context.Context, string) (*domain.Order, error)
}

// Service orchestrates the two-tier order store. The database is the
// source of truth; the cache is an accelerator that is only populated
// after a successful durable write.
type Service struct {
	cache   Cache
	storage Storage
	logger  *zap.Logger
	metrics observability.Metrics
}

func NewService(cache Cache, storage Storage, logger *zap.Logger, metrics observability.Metrics) *Service {
	return &Service{
		cache:   cache,
		storage: storage,
		logger:  logger,
		metrics: metrics,
	}
}

func (s *Service) Create(ctx context.Context, order *domain.Order) error {
	_, err := s.CreateWithStats(ctx, order)
	return err
}

// CreateWithStats runs the create path: validate, reject known
// duplicates from the cache, write to the database, then publish to the
// cache. Two concurrent creates for a fresh uid can both pass the cache
// check; the insert's uniqueness constraint picks the winner and the
// loser returns domain.ErrDuplicate without touching the cache.
func (s *Service) CreateWithStats(ctx context.Context, order *domain.Order) (CreateStats, error) {
	var st CreateStats

	if err := domain.Validate(order); err != nil {
		s.metrics.IncOrderStatus(observability.StatusInvalid)
		s.logger.Warn("invalid order rejected",
			zap.String("order_uid", order.OrderUID),
			zap.Error(err),
		)
		return st, err
	}

	if s.cache.Contains(order.OrderUID) {
		s.metrics.IncOrderStatus(observability.StatusDuplicate)
		s.logger.Warn("duplicate order rejected by cache",
			zap.String("order_uid", order.OrderUID),
		)
		return st, domain.ErrDuplicate
	}

	t0 := time.Now()
	err := s.storage.Insert(ctx, order)
	st.DBWriteMs = convertToMs(t0)
	if errors.Is(err, domain.ErrDuplicate) {
		s.metrics.IncOrderStatus(observability.StatusDuplicate)
		s.logger.Warn("duplicate order rejected by database",
			zap.String("order_uid", order.OrderUID),
		)
		return st, domain.ErrDuplicate
	}
	if err != nil {
		s.metrics.IncOrderStatus(observability.StatusDBError)
		s.logger.Error("failed to save order",
			zap.String("order_uid", order.OrderUID),
			zap.Error(err),
		)
		return st, fmt.Errorf("save order: %w", err)
	}

	// Cache strictly after the durable write. A crash right here leaves
	// the database correct and the cache merely cold.
	s.cache.Set(order)

	s.metrics.IncOrderCreated()
	s.metrics.IncOrderStatus(observability.StatusCreated)
	s.logger.Info("order created",
		zap.String("order_uid", order.OrderUID),
		zap.Float64("db_write_ms", st.DBWriteMs),
	)
	return st, nil
}

func (s *Service) GetByUID(ctx context.Context, uid string) (*domain.Order, error) {
	o, _, err := s.GetByUIDWithStats(ctx, uid)
	return o, err
}

// GetByUIDWithStats serves reads cache-first with a database fallback.
// Absence is domain.ErrNotFound, distinct from storage failures.
func (s *Service) GetByUIDWithStats(ctx context.Context, uid string) (*domain.Order, LookupStats, error) {
	var st LookupStats

	tCache := time.Now()
	if order, ok := s.cache.Get(uid); ok {
		st.Source = SourceCache
		st.CacheMs = convertToMs(tCache)
		s.metrics.IncCacheHit()

		s.logger.Info("order fetched from cache",
			zap.String("order_uid", uid),
			zap.Float64("cache_ms", st.CacheMs),
		)
		return order, st, nil
	}

	s.metrics.IncCacheMiss()
	st.CacheMs = convertToMs(tCache)

	tDB := time.Now()
	s.metrics.IncDBRequest()
	order, err := s.storage.GetByUID(ctx, uid)
	st.DBMs = convertToMs(tDB)
	if errors.Is(err, domain.ErrNotFound) {
		s.metrics.IncOrderStatus(observability.StatusNotFound)
		s.logger.Info("order not found",
			zap.String("order_uid", uid),
		)
		return nil, st, domain.ErrNotFound
	}
	if err != nil {
		s.metrics.IncOrderStatus(observability.StatusDBError)
		s.logger.Error("failed to fetch order",
			zap.String("order_uid", uid),
			zap.Error(err),
		)
		return nil, st, fmt.Errorf("fetch order: %w", err)
	}

	st.Source = SourceDB
	s.cache.Set(order)

	s.logger.Info("order fetched from db",
		zap.String("order_uid", uid),
		zap.Float64("cache_ms", st.CacheMs),
		zap.Float64("db_ms", st.DBMs),
	)
	return order, st, nil
}
