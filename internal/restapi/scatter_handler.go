package restapi

import (
	"net/http"
	"time"

	"taxipulse.nyc/internal/models"
	"taxipulse.nyc/internal/utils"
)

// defaultScatterLimit caps the distance-fare sample so one chart cannot haul
// the whole month across the wire.
const defaultScatterLimit = 5000

func (api *RestAPI) scatterHandler(w http.ResponseWriter, r *http.Request) {
	defer api.observeQuery("scatter", time.Now())

	filter, fieldErrors := api.parseFilter(r)

	limit, fieldErrors := utils.ParseIntParam(r.URL.Query(), "limit", defaultScatterLimit, fieldErrors)
	if limit < 0 {
		fieldErrors["limit"] = append(fieldErrors["limit"], "limit must be non-negative")
	}

	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	frame := api.TripManager.Dataset().ApplyFilter(filter)

	points, limitExceeded, err := frame.DistanceFareSample(limit)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewListResponseWithRange(points, models.NewEmptyReferences(), limitExceeded))
}
