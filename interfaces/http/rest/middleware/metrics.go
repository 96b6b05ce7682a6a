package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"todo-backend/pkg/observability"
)

// Metrics records a request count datum per response. The recorder is a
// no-op unless metrics are explicitly enabled.
func Metrics(metrics *observability.Metrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			metrics.RecordRequest(r.Context(), r.Method, r.URL.Path, ww.Status())
		})
	}
}
