package restapi

import (
	"net/http"
	"time"

	"taxipulse.nyc/internal/models"
)

func (api *RestAPI) boroughsHandler(w http.ResponseWriter, r *http.Request) {
	defer api.observeQuery("boroughs", time.Now())

	frame, ok := api.filteredFrame(w, r)
	if !ok {
		return
	}

	stats, err := frame.BoroughFareStats()
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewListResponse(stats, models.NewEmptyReferences()))
}
