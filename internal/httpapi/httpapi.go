package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shuklarituparn/order-service/internal/application/service"
	"github.com/shuklarituparn/order-service/internal/domain"
	"github.com/shuklarituparn/order-service/internal/observability"
)

//go:generate mockgen -source internal/httpapi/httpapi.go -destination=internal/httpapi/httpapi_mock_test.go -package=httpapi

type OrderService interface {
	CreateWithStats(ctx context.Context, order *domain.Order) (service.CreateStats, error)
	GetByUIDWithStats(ctx context.Context, uid string) (*domain.Order, service.LookupStats, error)
}

type Server struct {
	service OrderService
	router  chi.Router
	logger  *zap.Logger
	metrics observability.Metrics
}

// New wires the HTTP surface. metricsHandler serves GET /metrics and is
// injected so the server stays decoupled from the metrics runtime.
func New(service OrderService, logger *zap.Logger, metrics observability.Metrics, metricsHandler http.Handler) *Server {
	s := &Server{
		service: service,
		router:  chi.NewRouter(),
		logger:  logger,
		metrics: metrics,
	}
	s.routes(metricsHandler)
	return s
}

func (s *Server) routes(metricsHandler http.Handler) {
	s.router.Use(ServerTimingApp(s.metrics))
	s.router.Post("/order", s.createOrder)
	s.router.Get("/order/{id}", s.getOrder)
	s.router.Get("/health", s.health)
	s.router.Method(http.MethodGet, "/metrics", metricsHandler)
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	ct := r.Header.Get("Content-Type")
	if ct != "" && !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var order domain.Order
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&order); err != nil {
		s.logger.Error("failed to decode order body", zap.Error(err))
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	st, err := s.service.CreateWithStats(r.Context(), &order)

	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		http.Error(w, vErr.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrDuplicate):
		http.Error(w, "order already exists", http.StatusConflict)
		return
	case err != nil:
		// Storage detail stays on this side of the boundary.
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}

	observability.AppendServerTiming(w, "db_write", st.DBWriteMs, "")
	writeJSON(w, http.StatusCreated,
		fmt.Sprintf("order with id %s created successfully", order.OrderUID))
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "id")
	if uid == "" {
		http.Error(w, "order id required", http.StatusBadRequest)
		return
	}

	order, st, err := s.service.GetByUIDWithStats(r.Context(), uid)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "order not found", http.StatusNotFound)
		return
	case err != nil:
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}

	observability.AppendServerTiming(w, "cache", st.CacheMs, "")
	observability.AppendServerTiming(w, "db", st.DBMs, "")
	w.Header().Set("X-Source", string(st.Source))
	observability.SetIfPos(w, "X-Cache-Time", st.CacheMs)
	observability.SetIfPos(w, "X-DB-Time", st.DBMs)

	writeJSON(w, http.StatusOK, order)
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	return srv.ListenAndServe()
}

func (s *Server) Handler() http.Handler { return s.router }
