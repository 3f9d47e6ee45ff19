package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"

	"taxipulse.nyc/internal/app"
	"taxipulse.nyc/internal/appconf"
	"taxipulse.nyc/internal/logging"
	"taxipulse.nyc/internal/observability"
	"taxipulse.nyc/internal/restapi"
	"taxipulse.nyc/internal/tripdata"
	"taxipulse.nyc/internal/webui"
)

func main() {
	var port int
	var env string
	var apiKeysFlag string
	var rateLimit int
	var dataConfig tripdata.Config

	flag.IntVar(&port, "port", 4000, "API server port")
	flag.StringVar(&env, "env", "development", "Environment (development|staging|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", "test", "Comma Separated API Keys (test, etc)")
	flag.IntVar(&rateLimit, "rate-limit", 100, "Requests per second allowed per API key (negative disables limiting)")
	flag.StringVar(&dataConfig.TripsURL, "trips-url", "", "URL or path of a yellow taxi parquet file (defaults to the TLC file for -year/-month)")
	flag.StringVar(&dataConfig.ZonesURL, "zones-url", tripdata.DefaultZonesURL, "URL or path of the taxi zones GeoJSON")
	flag.StringVar(&dataConfig.DataDir, "data-dir", "data", "Directory for downloaded sources and snapshots")
	flag.IntVar(&dataConfig.Year, "year", 2023, "Trip data year")
	flag.IntVar(&dataConfig.Month, "month", 1, "Trip data month (1-12)")
	flag.IntVar(&dataConfig.SampleSize, "sample-size", 50000, "Trips to keep after cleaning (0 keeps everything)")
	flag.BoolVar(&dataConfig.Verbose, "verbose", false, "Log at debug level")
	flag.Parse()

	cfg := appconf.Config{
		Port:      port,
		Env:       appconf.EnvFlagToEnvironment(env),
		RateLimit: rateLimit,
	}
	if apiKeysFlag != "" {
		cfg.ApiKeys = strings.Split(apiKeysFlag, ",")
		for i := range cfg.ApiKeys {
			cfg.ApiKeys[i] = strings.TrimSpace(cfg.ApiKeys[i])
		}
	}
	if dataConfig.TripsURL == "" {
		dataConfig.TripsURL = tripdata.DefaultTripsURL(dataConfig.Year, dataConfig.Month)
	}

	level := slog.LevelInfo
	if dataConfig.Verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewStructuredLogger(os.Stdout, level)

	metrics := observability.NewMetrics()

	tripManager, err := tripdata.InitManager(dataConfig, logger, metrics)
	if err != nil {
		logger.Error("failed to initialize trip data manager", "error", err)
		os.Exit(1)
	}

	tripManager.LogStatistics()

	application := &app.Application{
		Config:      cfg,
		DataConfig:  dataConfig,
		Logger:      logger,
		TripManager: tripManager,
		Metrics:     metrics,
	}

	router := httprouter.New()
	restAPI := restapi.NewRestAPI(application)
	restAPI.SetRoutes(router)
	webui.NewWebUI(application).SetRoutes(router)

	// Outermost first: request logging sees every request, security headers
	// cover every response, compression negotiates last.
	var handler http.Handler = router
	handler = restapi.CompressionMiddleware(handler)
	handler = restAPI.WithSecurityHeaders(handler)
	handler = restapi.NewRequestLoggingMiddleware(logger)(handler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())
	err = srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}
