package restapi

import (
	"net/http"
	"time"

	"taxipulse.nyc/internal/models"
)

func (api *RestAPI) weatherImpactHandler(w http.ResponseWriter, r *http.Request) {
	defer api.observeQuery("weather-impact", time.Now())

	frame, ok := api.filteredFrame(w, r)
	if !ok {
		return
	}

	impact, err := frame.WeatherImpact()
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewListResponse(impact, models.NewEmptyReferences()))
}
