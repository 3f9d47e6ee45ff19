package app

import (
	"log/slog"

	"taxipulse.nyc/internal/appconf"
	"taxipulse.nyc/internal/observability"
	"taxipulse.nyc/internal/tripdata"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware: the server configuration, the data-source configuration,
// a logger, the trip data manager, and the Prometheus metrics.
type Application struct {
	Config      appconf.Config
	DataConfig  tripdata.Config
	Logger      *slog.Logger
	TripManager *tripdata.Manager
	Metrics     *observability.Metrics
}
