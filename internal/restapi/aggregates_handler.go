package restapi

import (
	"net/http"

	"taxipulse.nyc/internal/models"
	"taxipulse.nyc/internal/utils"
)

// aggregatesHandler serves one of the startup pre-aggregated tables by name.
func (api *RestAPI) aggregatesHandler(w http.ResponseWriter, r *http.Request) {
	name := utils.ExtractIDFromParams(r, "name")

	if err := utils.ValidateID(name); err != nil {
		fieldErrors := map[string][]string{
			"name": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	table, ok := api.TripManager.Aggregations().Table(name)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	api.sendResponse(w, r, models.NewListResponse(table, models.NewEmptyReferences()))
}
