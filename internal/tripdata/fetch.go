package tripdata

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"taxipulse.nyc/internal/logging"
)

// isLocalFile reports whether source names a local file rather than an HTTP URL.
func isLocalFile(source string) bool {
	return !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://")
}

// cacheBasename derives the raw-cache file name for a source, ignoring any
// query string the URL carries.
func cacheBasename(source string) string {
	if u, err := url.Parse(source); err == nil && u.Path != "" {
		return path.Base(u.Path)
	}
	return path.Base(source)
}

// ensureLocalFile returns a local path holding the bytes of source. Remote
// sources are downloaded into the raw cache the first time; later runs read
// the cached copy without touching the network.
func ensureLocalFile(source, cachePath string, logger *slog.Logger) (string, bool, error) {
	if isLocalFile(source) {
		return source, false, nil
	}

	if _, err := os.Stat(cachePath); err == nil {
		return cachePath, false, nil
	}

	b, err := downloadSource(source, logger)
	if err != nil {
		return "", false, err
	}

	if err := os.MkdirAll(filepath.Dir(cachePath), 0o755); err != nil {
		return "", false, fmt.Errorf("error creating raw data directory: %w", err)
	}
	if err := os.WriteFile(cachePath, b, 0o644); err != nil {
		return "", false, fmt.Errorf("error caching %s: %w", filepath.Base(cachePath), err)
	}

	return cachePath, true, nil
}

func downloadSource(source string, logger *slog.Logger) ([]byte, error) {
	resp, err := http.Get(source)
	if err != nil {
		return nil, fmt.Errorf("error downloading %s: %w", source, err)
	}
	defer logging.SafeCloseWithLogging(resp.Body, logger, "download "+source)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error downloading %s: unexpected status %s", source, resp.Status)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", source, err)
	}

	return b, nil
}
