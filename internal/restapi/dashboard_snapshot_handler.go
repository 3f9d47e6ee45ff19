package restapi

import (
	"net/http"
	"time"

	"taxipulse.nyc/internal/models"
)

// dashboardSnapshotHandler evaluates the filter once and fans the resulting
// frame out to every chart, so a control change repaints the whole dashboard
// from a single consistent response.
func (api *RestAPI) dashboardSnapshotHandler(w http.ResponseWriter, r *http.Request) {
	defer api.observeQuery("snapshot", time.Now())

	frame, ok := api.filteredFrame(w, r)
	if !ok {
		return
	}

	snapshot := models.DashboardSnapshot{Summary: frame.Summary()}

	var err error
	if snapshot.TimeSeries, err = frame.DailyTrips(); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	if snapshot.Heatmap, err = frame.HourDayMatrix(); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	if snapshot.WeatherImpact, err = frame.WeatherImpact(); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	if snapshot.Scatter, snapshot.ScatterLimitExceeded, err = frame.DistanceFareSample(defaultScatterLimit); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	if snapshot.Boroughs, err = frame.BoroughFareStats(); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	if snapshot.Choropleth, err = frame.BoroughTotals(); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	if snapshot.Payments, err = frame.PaymentBreakdown(); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(snapshot, models.NewEmptyReferences()))
}
