package restapi

import (
	"fmt"
	"net/http"
	"time"

	"taxipulse.nyc/internal/export"
)

// exportHandler streams the filtered view as an XLSX workbook: the KPI
// summary plus the five aggregate tables recomputed over the filtered frame.
func (api *RestAPI) exportHandler(w http.ResponseWriter, r *http.Request) {
	defer api.observeQuery("export", time.Now())

	frame, ok := api.filteredFrame(w, r)
	if !ok {
		return
	}

	aggregations, err := frame.Aggregations()
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	config := api.DataConfig
	filename := fmt.Sprintf("taxi_dashboard_%d_%02d.xlsx", config.Year, config.Month)

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := export.WriteWorkbook(w, frame.Summary(), aggregations); err != nil {
		// Headers are out; all that is left is logging.
		api.Logger.Error("failed to write export workbook", "error", err)
	}
}
