package restapi

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"taxipulse.nyc/internal/logging"
)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.wroteHeader = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}

// NewRequestLoggingMiddleware creates middleware that logs HTTP requests and
// recovers panics from downstream handlers.
func NewRequestLoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Add logger to context for downstream handlers
			ctx := logging.WithLogger(r.Context(), logger)
			r = r.WithContext(ctx)

			// Wrap response writer to capture status code
			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK, // Default status
			}

			defer func() {
				if rec := recover(); rec != nil {
					logging.LogError(logger, "panic recovered while serving request",
						fmt.Errorf("%v", rec),
						slog.String("path", r.URL.Path))

					if !wrapped.wroteHeader {
						wrapped.Header().Set("Connection", "close")
						http.Error(wrapped, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					}
				}

				duration := time.Since(start)

				logging.LogHTTPRequest(logger,
					r.Method,
					r.URL.Path, // Path without query parameters
					wrapped.statusCode,
					float64(duration.Nanoseconds())/1e6, // Convert to milliseconds
					slog.String("user_agent", r.Header.Get("User-Agent")),
					slog.String("component", "http_server"))
			}()

			next.ServeHTTP(wrapped, r)
		})
	}
}
