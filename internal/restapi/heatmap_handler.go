package restapi

import (
	"net/http"
	"time"

	"taxipulse.nyc/internal/models"
)

func (api *RestAPI) heatmapHandler(w http.ResponseWriter, r *http.Request) {
	defer api.observeQuery("heatmap", time.Now())

	frame, ok := api.filteredFrame(w, r)
	if !ok {
		return
	}

	cells, err := frame.HourDayMatrix()
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewListResponse(cells, models.NewEmptyReferences()))
}
