package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Logger attaches a request-scoped logger to the context and logs each
// completed request with its status and duration.
func Logger(logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			reqLogger := logger.With().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("remote_ip", req.RemoteAddr).
				Logger()

			ctx := reqLogger.WithContext(req.Context())
			req = req.WithContext(ctx)

			ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, req)

			reqLogger.Info().
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Msg("request completed")
		})
	}
}
