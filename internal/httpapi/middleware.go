package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/shuklarituparn/order-service/internal/observability"
)

// ServerTimingApp measures total request processing time, writes
// app;dur=... to Server-Timing and feeds Metrics.ObserveHTTP.
func ServerTimingApp(m observability.Metrics) func(http.Handler) http.Handler {
	if m == nil {
		m = observability.Noop{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			dur := float64(time.Since(start).Microseconds()) / 1000.0
			observability.AppendServerTiming(w, "app", dur, "")
			m.ObserveHTTP(r.Method, r.URL.Path, ww.Status(), dur)
		})
	}
}
