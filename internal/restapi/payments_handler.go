package restapi

import (
	"net/http"
	"time"

	"taxipulse.nyc/internal/models"
)

func (api *RestAPI) paymentsHandler(w http.ResponseWriter, r *http.Request) {
	defer api.observeQuery("payments", time.Now())

	frame, ok := api.filteredFrame(w, r)
	if !ok {
		return
	}

	breakdown, err := frame.PaymentBreakdown()
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewListResponse(breakdown, models.NewEmptyReferences()))
}
