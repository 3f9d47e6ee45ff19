package restapi

import (
	"net/http"
	"time"

	"taxipulse.nyc/internal/models"
)

func (api *RestAPI) timeSeriesHandler(w http.ResponseWriter, r *http.Request) {
	defer api.observeQuery("time-series", time.Now())

	frame, ok := api.filteredFrame(w, r)
	if !ok {
		return
	}

	points, err := frame.DailyTrips()
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewListResponse(points, models.NewEmptyReferences()))
}
