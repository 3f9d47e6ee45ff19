package restapi

import (
	"net/http"

	"taxipulse.nyc/internal/models"
)

func (api *RestAPI) datasetInfoHandler(w http.ResponseWriter, r *http.Request) {
	info := api.TripManager.Info()
	api.sendResponse(w, r, models.NewEntryResponse(info, models.NewEmptyReferences()))
}
