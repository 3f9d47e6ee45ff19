package tripdata

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"taxipulse.nyc/internal/analytics"
	"taxipulse.nyc/internal/logging"
	"taxipulse.nyc/internal/models"
	"taxipulse.nyc/internal/observability"
)

// Manager owns the loaded data and provides methods to access it. Its tables
// are built once by InitManager and never mutated afterwards, so handlers can
// read them concurrently without locking.
type Manager struct {
	config       Config
	logger       *slog.Logger
	metrics      *observability.Metrics
	trips        []models.Trip
	zones        map[int]models.Zone
	weather      []models.DailyWeather
	zoneGeoJSON  []byte
	dataset      *analytics.Dataset
	aggregations *analytics.Aggregations
	fromSnapshot bool
	lastUpdated  time.Time
}

// InitManager initializes the Manager with trip and zone data from the
// configured sources. A valid snapshot for the config key short-circuits the
// raw load path; otherwise the full pipeline runs and a fresh snapshot is
// written best-effort.
func InitManager(config Config, logger *slog.Logger, metrics *observability.Metrics) (*Manager, error) {
	start := time.Now()

	manager := &Manager{
		config:  config,
		logger:  logger,
		metrics: metrics,
	}

	if err := manager.load(); err != nil {
		return nil, err
	}

	if err := manager.buildDerived(); err != nil {
		return nil, err
	}

	metrics.TripsLoaded.Set(float64(len(manager.trips)))
	metrics.ZonesLoaded.Set(float64(len(manager.zones)))
	metrics.DatasetBuildDuration.Observe(time.Since(start).Seconds())

	logging.LogOperation(logger, "dataset_ready",
		slog.Int("trip_count", len(manager.trips)),
		slog.Int("zone_count", len(manager.zones)),
		slog.Bool("from_snapshot", manager.fromSnapshot),
		slog.Duration("duration", time.Since(start)),
	)

	return manager, nil
}

// load fills the manager's tables from the snapshot when possible, or from
// the raw sources otherwise.
func (manager *Manager) load() error {
	snapshotPath := manager.config.SnapshotPath()

	payload, err := readSnapshot(snapshotPath, manager.config)
	if err == nil {
		manager.metrics.SnapshotLoads.WithLabelValues("hit").Inc()
		manager.trips = payload.Trips
		manager.zones = payload.Zones
		manager.weather = payload.Weather
		manager.zoneGeoJSON = payload.ZoneGeoJSON
		manager.fromSnapshot = true
		manager.lastUpdated = models.Now()
		return nil
	}

	if !errors.Is(err, os.ErrNotExist) {
		logging.LogError(manager.logger, "snapshot unreadable, rebuilding from raw sources", err,
			slog.String("path", snapshotPath))
	}
	manager.metrics.SnapshotLoads.WithLabelValues("miss").Inc()

	return manager.rebuild(snapshotPath)
}

// rebuild runs the full fetch-clean-sample-enrich pipeline and persists the
// result.
func (manager *Manager) rebuild(snapshotPath string) error {
	tripsPath, err := manager.fetchSource("trips", manager.config.TripsURL)
	if err != nil {
		return err
	}

	records, err := readTripRecords(tripsPath)
	if err != nil {
		return err
	}

	trips := sampleTrips(cleanTripRecords(records), manager.config.SampleSize)
	if len(trips) == 0 {
		return fmt.Errorf("no usable trips in %s after cleaning", manager.config.TripsURL)
	}

	zonesPath, err := manager.fetchSource("zones", manager.config.ZonesURL)
	if err != nil {
		return err
	}

	zoneData, err := os.ReadFile(zonesPath)
	if err != nil {
		return fmt.Errorf("error reading zone data: %w", err)
	}

	zones, err := parseZones(zoneData)
	if err != nil {
		return err
	}
	enrichTripZones(trips, zones)

	weather := generateDailyWeather(distinctTripDates(trips))
	applyWeather(trips, weather)

	manager.trips = trips
	manager.zones = zones
	manager.weather = weather
	manager.zoneGeoJSON = zoneData
	manager.lastUpdated = models.Now()

	if err := writeSnapshot(snapshotPath, manager.snapshotPayload(), manager.logger); err != nil {
		logging.LogError(manager.logger, "snapshot write failed", err, slog.String("path", snapshotPath))
	} else if manager.config.Verbose {
		logging.LogOperation(manager.logger, "snapshot_written", slog.String("path", snapshotPath))
	}

	return nil
}

// fetchSource resolves a source to a local path, downloading it once when
// remote.
func (manager *Manager) fetchSource(name, source string) (string, error) {
	path, downloaded, err := ensureLocalFile(source, manager.config.rawPath(source), manager.logger)
	if err != nil {
		return "", fmt.Errorf("error fetching %s data: %w", name, err)
	}

	if !isLocalFile(source) {
		result := "cached"
		if downloaded {
			result = "downloaded"
		}
		manager.metrics.SourceFetches.WithLabelValues(name, result).Inc()
	}

	return path, nil
}

// buildDerived constructs the analytics dataset and the startup
// pre-aggregations from the loaded trips.
func (manager *Manager) buildDerived() error {
	if len(manager.trips) == 0 {
		return errors.New("no trips loaded, nothing to serve")
	}

	dataset, err := analytics.NewDataset(manager.trips)
	if err != nil {
		return fmt.Errorf("error building dataset: %w", err)
	}
	manager.dataset = dataset

	aggregations, err := analytics.BuildAggregations(dataset)
	if err != nil {
		return fmt.Errorf("error building aggregations: %w", err)
	}
	manager.aggregations = aggregations

	return nil
}

func (manager *Manager) snapshotPayload() *snapshotPayload {
	return &snapshotPayload{
		Version:     snapshotVersion,
		Year:        manager.config.Year,
		Month:       manager.config.Month,
		SampleSize:  manager.config.SampleSize,
		SavedAt:     models.Now(),
		Trips:       manager.trips,
		Zones:       manager.zones,
		Weather:     manager.weather,
		ZoneGeoJSON: manager.zoneGeoJSON,
	}
}

func (manager *Manager) Trips() []models.Trip {
	return manager.trips
}

func (manager *Manager) Zones() map[int]models.Zone {
	return manager.zones
}

// ZonesList returns the zones sorted by ID.
func (manager *Manager) ZonesList() []models.Zone {
	zones := make([]models.Zone, 0, len(manager.zones))
	for _, zone := range manager.zones {
		zones = append(zones, zone)
	}
	sort.Slice(zones, func(i, j int) bool { return zones[i].ID < zones[j].ID })
	return zones
}

func (manager *Manager) Weather() []models.DailyWeather {
	return manager.weather
}

// ZoneGeoJSON returns the raw zone FeatureCollection bytes for the choropleth.
func (manager *Manager) ZoneGeoJSON() []byte {
	return manager.zoneGeoJSON
}

func (manager *Manager) Dataset() *analytics.Dataset {
	return manager.dataset
}

func (manager *Manager) Aggregations() *analytics.Aggregations {
	return manager.aggregations
}

func (manager *Manager) FromSnapshot() bool {
	return manager.fromSnapshot
}

// Ready reports whether the manager holds a servable dataset.
func (manager *Manager) Ready() bool {
	return manager != nil && len(manager.trips) > 0 && manager.dataset != nil
}

// Info describes the loaded dataset for the dataset descriptor endpoint.
func (manager *Manager) Info() models.DatasetInfo {
	return models.DatasetInfo{
		Year:          manager.config.Year,
		Month:         manager.config.Month,
		SampleSize:    manager.config.SampleSize,
		TripCount:     len(manager.trips),
		DistinctDates: len(manager.weather),
		ZoneCount:     len(manager.zones),
		TripsSource:   manager.config.TripsURL,
		ZonesSource:   manager.config.ZonesURL,
		FromSnapshot:  manager.fromSnapshot,
		LoadedAt:      manager.lastUpdated.UnixNano() / int64(time.Millisecond),
	}
}

// LogStatistics writes one line describing the loaded dataset.
func (manager *Manager) LogStatistics() {
	logging.LogOperation(manager.logger, "dataset_statistics",
		slog.String("trips_source", manager.config.TripsURL),
		slog.Bool("local_trips", isLocalFile(manager.config.TripsURL)),
		slog.Time("last_updated", manager.lastUpdated),
		slog.Int("trip_count", len(manager.trips)),
		slog.Int("zone_count", len(manager.zones)),
		slog.Int("weather_days", len(manager.weather)),
		slog.Bool("from_snapshot", manager.fromSnapshot),
	)
}
