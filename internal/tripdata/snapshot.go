package tripdata

import (
	"encoding/gob"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/gzip"

	"taxipulse.nyc/internal/logging"
	"taxipulse.nyc/internal/models"
)

// snapshotVersion changes whenever the payload layout changes; older files
// are then treated as misses and rebuilt.
const snapshotVersion = 1

// snapshotPayload is the gob-encoded content of a processed-data snapshot.
// It holds everything needed to serve without re-reading the raw sources.
type snapshotPayload struct {
	Version     int
	Year        int
	Month       int
	SampleSize  int
	SavedAt     time.Time
	Trips       []models.Trip
	Zones       map[int]models.Zone
	Weather     []models.DailyWeather
	ZoneGeoJSON []byte
}

// readSnapshot loads and validates a snapshot for the given config key. Any
// failure (missing file, decode error, version or key mismatch) is returned
// for the caller to fall back to a full rebuild.
func readSnapshot(path string, config Config) (*snapshotPayload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() // nolint

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("error opening snapshot %s: %w", path, err)
	}
	defer zr.Close() // nolint

	var payload snapshotPayload
	if err := gob.NewDecoder(zr).Decode(&payload); err != nil {
		return nil, fmt.Errorf("error decoding snapshot %s: %w", path, err)
	}

	if payload.Version != snapshotVersion {
		return nil, fmt.Errorf("snapshot %s has version %d, want %d", path, payload.Version, snapshotVersion)
	}
	if payload.Year != config.Year || payload.Month != config.Month || payload.SampleSize != config.SampleSize {
		return nil, fmt.Errorf("snapshot %s keyed (%d, %d, %d), want (%d, %d, %d)",
			path, payload.Year, payload.Month, payload.SampleSize, config.Year, config.Month, config.SampleSize)
	}
	if len(payload.Trips) == 0 {
		return nil, fmt.Errorf("snapshot %s holds no trips", path)
	}

	return &payload, nil
}

// writeSnapshot persists the processed tables. Callers treat failures as
// non-fatal: the next startup just rebuilds from the raw sources. A close
// failure surfaces through the returned error so a truncated file is never
// trusted silently.
func writeSnapshot(path string, payload *snapshotPayload, logger *slog.Logger) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error creating snapshot directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating snapshot file: %w", err)
	}
	defer logging.HandleDeferredError(&err, f.Close, logger, "close snapshot file")

	zw := gzip.NewWriter(f)
	defer logging.HandleDeferredError(&err, zw.Close, logger, "flush snapshot")

	if err := gob.NewEncoder(zw).Encode(payload); err != nil {
		return fmt.Errorf("error encoding snapshot: %w", err)
	}

	return nil
}
