package tripdata

import (
	"io"
	"log/slog"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"taxipulse.nyc/internal/logging"
	"taxipulse.nyc/internal/models"
	"taxipulse.nyc/internal/observability"
)

// NewManagerForTesting builds a fully-initialized manager around fixture
// tables, skipping the fetch and snapshot paths entirely.
func NewManagerForTesting(trips []models.Trip, zones map[int]models.Zone, weather []models.DailyWeather) (*Manager, error) {
	manager := &Manager{
		config: Config{
			TripsURL:   "testdata/trips.parquet",
			ZonesURL:   "testdata/taxi_zones.geojson",
			Year:       2023,
			Month:      1,
			SampleSize: len(trips),
		},
		logger:      logging.NewStructuredLogger(io.Discard, slog.LevelError),
		metrics:     observability.NewMetricsForTesting(),
		trips:       trips,
		zones:       zones,
		weather:     weather,
		lastUpdated: models.Now(),
	}

	geo, err := zoneFeatureData(zones)
	if err != nil {
		return nil, err
	}
	manager.zoneGeoJSON = geo

	if err := manager.buildDerived(); err != nil {
		return nil, err
	}

	return manager, nil
}

// zoneFeatureData synthesizes a FeatureCollection carrying the fixture zones
// as point features, enough for the GeoJSON endpoint to serve.
func zoneFeatureData(zones map[int]models.Zone) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, zone := range zones {
		feature := geojson.NewFeature(orb.Point{-73.97, 40.78})
		feature.Properties = geojson.Properties{
			"zone_id":   float64(zone.ID),
			"zone_name": zone.Name,
			"borough":   zone.Borough,
		}
		fc.Append(feature)
	}
	return fc.MarshalJSON()
}
