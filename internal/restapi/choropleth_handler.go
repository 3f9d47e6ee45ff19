package restapi

import (
	"net/http"
	"time"

	"taxipulse.nyc/internal/models"
)

func (api *RestAPI) choroplethHandler(w http.ResponseWriter, r *http.Request) {
	defer api.observeQuery("choropleth", time.Now())

	frame, ok := api.filteredFrame(w, r)
	if !ok {
		return
	}

	totals, err := frame.BoroughTotals()
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewListResponse(totals, models.NewEmptyReferences()))
}
