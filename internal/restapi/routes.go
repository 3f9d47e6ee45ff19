package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// SetRoutes registers the dashboard API on the router. Every /api route is
// rate limited per API key and requires a valid key; the operational routes
// are open.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	keyed := func(pattern string, handler handlerFunc) {
		router.Handler(http.MethodGet, pattern,
			api.instrument(pattern, api.rateLimiter(validateAPIKey(api, handler))))
	}

	keyed("/api/dashboard/summary.json", api.summaryHandler)
	keyed("/api/dashboard/time-series.json", api.timeSeriesHandler)
	keyed("/api/dashboard/heatmap.json", api.heatmapHandler)
	keyed("/api/dashboard/weather-impact.json", api.weatherImpactHandler)
	keyed("/api/dashboard/scatter.json", api.scatterHandler)
	keyed("/api/dashboard/boroughs.json", api.boroughsHandler)
	keyed("/api/dashboard/payments.json", api.paymentsHandler)
	keyed("/api/dashboard/choropleth.json", api.choroplethHandler)
	keyed("/api/dashboard/snapshot.json", api.dashboardSnapshotHandler)
	keyed("/api/dashboard/filters.json", api.filtersHandler)
	keyed("/api/dashboard/aggregates/:name", api.aggregatesHandler)
	keyed("/api/dashboard/zones.json", api.zonesHandler)
	keyed("/api/dashboard/zones.geojson", api.zonesGeoJSONHandler)
	keyed("/api/dashboard/dataset.json", api.datasetInfoHandler)
	keyed("/api/dashboard/export.xlsx", api.exportHandler)
	keyed("/api/dashboard/current-time.json", api.currentTimeHandler)

	router.Handler(http.MethodGet, "/healthz", api.instrument("/healthz", http.HandlerFunc(api.healthzHandler)))
	router.Handler(http.MethodGet, "/readyz", api.instrument("/readyz", http.HandlerFunc(api.readyzHandler)))
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())
}
