package restapi

import (
	"net/http"

	"taxipulse.nyc/internal/models"
)

func (api *RestAPI) currentTimeHandler(w http.ResponseWriter, r *http.Request) {
	timeData := models.NewCurrentTimeData(models.Now())
	response := models.NewOKResponse(timeData)

	api.sendResponse(w, r, response)
}
