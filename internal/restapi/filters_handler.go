package restapi

import (
	"net/http"

	"taxipulse.nyc/internal/models"
)

// filtersHandler describes the filter controls: bounds, options, defaults.
func (api *RestAPI) filtersHandler(w http.ResponseWriter, r *http.Request) {
	options := api.TripManager.Dataset().FilterOptions()
	api.sendResponse(w, r, models.NewEntryResponse(options, models.NewEmptyReferences()))
}
