package restapi

import (
	"net/http"

	"taxipulse.nyc/internal/models"
)

// zonesHandler lists the loaded zone IDs; the zone records travel in the
// references block.
func (api *RestAPI) zonesHandler(w http.ResponseWriter, r *http.Request) {
	zones := api.TripManager.ZonesList()

	ids := make([]int, 0, len(zones))
	for _, zone := range zones {
		ids = append(ids, zone.ID)
	}

	api.sendResponse(w, r, models.NewListResponse(ids, models.NewZoneReferences(zones)))
}

// zonesGeoJSONHandler serves the raw zone FeatureCollection for the
// choropleth base map. No envelope; the bytes are the upstream document.
func (api *RestAPI) zonesGeoJSONHandler(w http.ResponseWriter, r *http.Request) {
	data := api.TripManager.ZoneGeoJSON()
	if len(data) == 0 {
		api.sendNotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	if _, err := w.Write(data); err != nil {
		api.Logger.Error("failed to write zone GeoJSON response", "error", err)
	}
}
