package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"
)

//go:embed debug_index.html
var templateFS embed.FS

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html")
	tmpl, err := template.ParseFS(templateFS, "debug_index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err = tmpl.Execute(w, dataStruct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// tripDumpLimit keeps the trips dump readable; a sampled month holds
// tens of thousands of rows.
const tripDumpLimit = 25

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	manager := webUI.TripManager

	switch dataType {
	case "trips":
		trips := manager.Trips()
		if len(trips) > tripDumpLimit {
			trips = trips[:tripDumpLimit]
		}
		data = trips
		title = "Trip Data - First Rows"
	case "zones":
		data = manager.ZonesList()
		title = "Trip Data - Taxi Zones"
	case "weather":
		data = manager.Weather()
		title = "Trip Data - Daily Weather"
	case "daily", "hourly", "hour_dow", "borough", "payment":
		table, ok := manager.Aggregations().Table(dataType)
		if !ok {
			http.Error(w, "aggregation table not built", http.StatusInternalServerError)
			return
		}
		data = table
		title = "Aggregations - " + dataType
	case "info":
		data = manager.Info()
		title = "Dataset Info"
	default:
		data = map[string]string{
			"error": "Please use one of the following: trips, zones, weather, daily, hourly, hour_dow, borough, payment, info.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
