package observability

// Order outcome labels. The names are a contract with the dashboards.
const (
	StatusCreated   = "created"
	StatusInvalid   = "invalid"
	StatusDuplicate = "duplicate"
	StatusDBError   = "db_error"
	StatusNotFound  = "not_found"
)

type Metrics interface {
	IncOrderCreated()
	IncDBRequest()
	IncOrderStatus(status string)
	IncCacheHit()
	IncCacheMiss()
	ObserveHTTP(method, route string, status int, durMs float64)
	ObserveKafka(processMs float64, ok bool)
}
