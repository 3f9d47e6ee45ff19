package tripdata

import (
	"fmt"
	"path/filepath"
)

// DefaultZonesURL is the NYC Open Data export of the taxi zone polygons.
const DefaultZonesURL = "https://data.cityofnewyork.us/api/geospatial/d3c5-ddgv?method=export&format=GeoJSON"

// DefaultTripsURL is the official TLC parquet file for the given month.
func DefaultTripsURL(year, month int) string {
	return fmt.Sprintf("https://d37ci6vzurychx.cloudfront.net/trip-data/yellow_tripdata_%d-%02d.parquet", year, month)
}

// Config controls where trip and zone data comes from and how much of it is
// kept. Source fields accept either an HTTP(S) URL or a local file path.
type Config struct {
	TripsURL   string
	ZonesURL   string
	DataDir    string
	Year       int
	Month      int
	SampleSize int
	Verbose    bool
}

// SnapshotPath is the processed-data cache file for this (year, month,
// sample size) key.
func (config Config) SnapshotPath() string {
	name := fmt.Sprintf("taxi_data_%d_%02d_%d.gob.gz", config.Year, config.Month, config.SampleSize)
	return filepath.Join(config.DataDir, name)
}

// rawPath is where a remote source's bytes are kept after the first download.
func (config Config) rawPath(source string) string {
	return filepath.Join(config.DataDir, "raw", cacheBasename(source))
}
