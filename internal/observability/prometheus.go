package observability

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus implements Metrics over an explicitly constructed registry.
// Nothing is registered globally: each instance owns its counters, so
// tests can assert on them in isolation.
type Prometheus struct {
	registry *prometheus.Registry

	orders      prometheus.Counter
	dbRequests  prometheus.Counter
	orderStatus *prometheus.CounterVec
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
	httpDur     *prometheus.HistogramVec
	kafkaDur    *prometheus.HistogramVec
}

func NewPrometheus(reg *prometheus.Registry) *Prometheus {
	f := promauto.With(reg)
	return &Prometheus{
		registry: reg,
		orders: f.NewCounter(prometheus.CounterOpts{
			Name: "orders_total",
			Help: "Total number of orders",
		}),
		dbRequests: f.NewCounter(prometheus.CounterOpts{
			Name: "db_requests_total",
			Help: "Total number of requests to the database",
		}),
		orderStatus: f.NewCounterVec(prometheus.CounterOpts{
			Name: "order_status",
			Help: "Status of orders",
		}, []string{"status"}),
		cacheHits: f.NewCounter(prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Order lookups served from the in-memory cache",
		}),
		cacheMisses: f.NewCounter(prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Order lookups that fell through to the database",
		}),
		httpDur: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_ms",
			Help:    "HTTP request duration in milliseconds",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}, []string{"method", "route", "status"}),
		kafkaDur: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "kafka_process_duration_ms",
			Help:    "Kafka message processing duration in milliseconds",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}, []string{"outcome"}),
	}
}

// Handler serves the text exposition for GET /metrics.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

func (p *Prometheus) IncOrderCreated() { p.orders.Inc() }
func (p *Prometheus) IncDBRequest()    { p.dbRequests.Inc() }

func (p *Prometheus) IncOrderStatus(status string) {
	p.orderStatus.WithLabelValues(status).Inc()
}

func (p *Prometheus) IncCacheHit()  { p.cacheHits.Inc() }
func (p *Prometheus) IncCacheMiss() { p.cacheMisses.Inc() }

func (p *Prometheus) ObserveHTTP(method, route string, status int, durMs float64) {
	p.httpDur.WithLabelValues(method, route, strconv.Itoa(status)).Observe(durMs)
}

func (p *Prometheus) ObserveKafka(processMs float64, ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	p.kafkaDur.WithLabelValues(outcome).Observe(processMs)
}
