package restapi

import (
	"net/http"
	"time"

	"taxipulse.nyc/internal/models"
)

func (api *RestAPI) summaryHandler(w http.ResponseWriter, r *http.Request) {
	defer api.observeQuery("summary", time.Now())

	frame, ok := api.filteredFrame(w, r)
	if !ok {
		return
	}

	response := models.NewEntryResponse(frame.Summary(), models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
