package restapi

import (
	"encoding/json"
	"net/http"
)

func writeHealthJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort health response
}

func (api *RestAPI) healthzHandler(w http.ResponseWriter, _ *http.Request) {
	writeHealthJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// readyzHandler reports ready only once the dataset is loaded and non-empty,
// so load balancers hold traffic during the initial fetch and build.
func (api *RestAPI) readyzHandler(w http.ResponseWriter, _ *http.Request) {
	if api.TripManager == nil || !api.TripManager.Ready() {
		writeHealthJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
		return
	}
	writeHealthJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
