package restapi

import (
	"net/http"
	"strconv"
	"time"
)

// instrument records request count, duration, and in-flight gauge for one
// route pattern. Labeling by the registered pattern rather than the raw path
// keeps the metric cardinality bounded.
func (api *RestAPI) instrument(pattern string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.Metrics == nil {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		api.Metrics.HTTPRequestsInFlight.Inc()
		defer api.Metrics.HTTPRequestsInFlight.Dec()

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		api.Metrics.HTTPRequests.WithLabelValues(pattern, strconv.Itoa(wrapped.statusCode)).Inc()
		api.Metrics.HTTPRequestDuration.WithLabelValues(pattern).Observe(time.Since(start).Seconds())
	})
}

// observeQuery records the server-side evaluation time of one chart query.
func (api *RestAPI) observeQuery(chart string, start time.Time) {
	if api.Metrics != nil {
		api.Metrics.QueryDuration.WithLabelValues(chart).Observe(time.Since(start).Seconds())
	}
}
