package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/timension/internal/api/shared"
	"github.com/phrazzld/timension/internal/platform/logger"
)

// NewTraceMiddleware returns middleware that adds a trace ID to the request
// context. An incoming X-Trace-ID header is reused when well formed. The
// request logger derived from base is tagged with the ID, and the ID is
// echoed in the response header.
// Apply it early in the chain so later handlers see the trace ID.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logger.WithLogger(r.Context(), base)
			ctx = shared.SetTraceID(ctx, r.Header.Get(shared.TraceIDHeader))
			w.Header().Set(shared.TraceIDHeader, shared.GetTraceID(ctx))

			logger.FromContext(ctx).Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
