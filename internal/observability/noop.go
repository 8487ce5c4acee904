package observability

// Noop discards every observation. Used in tests.
type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) IncOrderCreated() {}

func (Noop) IncDBRequest() {}

func (Noop) IncOrderStatus(string) {}

func (Noop) IncCacheHit() {}

func (Noop) IncCacheMiss() {}

func (Noop) ObserveHTTP(string, string, int, float64) {}

func (Noop) ObserveKafka(float64, bool) {}
