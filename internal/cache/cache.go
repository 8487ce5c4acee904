package cache

import (
	"context"
	"sync"

	"github.com/shuklarituparn/order-service/internal/domain"
)

//go:generate mockgen -source internal/cache/cache.go -destination=internal/cache/cache_mock_test.go -package=cache

type repo interface {
	GetByUID(ctx context.Context, uid string) (*domain.Order, error)
	RecentOrderIDs(ctx context.Context, limit int) ([]string, error)
}

// Cache is the in-memory fast path for previously-seen orders, keyed by
// order_uid. Orders are permanent, so the map grows without bound and
// nothing is ever evicted. An entry appears here only after the order has
// been durably persisted; a cold cache is always safe.
type Cache struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
}

func New() *Cache {
	return &Cache{
		orders: make(map[string]domain.Order),
	}
}

// Warm preloads up to limit recent orders from the repository. Errors are
// ignored: a partially warmed (or empty) cache costs only extra DB reads.
func (c *Cache) Warm(ctx context.Context, repo repo, limit int) {
	if ids, err := repo.RecentOrderIDs(ctx, limit); err == nil {
		for _, id := range ids {
			if o, err := repo.GetByUID(ctx, id); err == nil {
				c.Set(o)
			}
		}
	}
}

func (c *Cache) Get(uid string) (*domain.Order, bool) {
	c.mu.RLock()
	order, ok := c.orders[uid]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return &order, true
}

func (c *Cache) Set(order *domain.Order) {
	c.mu.Lock()
	c.orders[order.OrderUID] = *order
	c.mu.Unlock()
}

func (c *Cache) Contains(uid string) bool {
	c.mu.RLock()
	_, ok := c.orders[uid]
	c.mu.RUnlock()
	return ok
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.orders)
}
