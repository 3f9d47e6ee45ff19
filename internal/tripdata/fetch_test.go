package tripdata

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLocalFile(t *testing.T) {
	assert.True(t, isLocalFile("testdata/trips.parquet"))
	assert.True(t, isLocalFile("/var/data/trips.parquet"))
	assert.False(t, isLocalFile("http://example.com/trips.parquet"))
	assert.False(t, isLocalFile("https://example.com/trips.parquet"))
}

func TestCacheBasename(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"https://example.com/trip-data/yellow_tripdata_2023-01.parquet", "yellow_tripdata_2023-01.parquet"},
		{"https://example.com/api/geospatial/d3c5-ddgv?method=export&format=GeoJSON", "d3c5-ddgv"},
		{"/var/data/taxi_zones.geojson", "taxi_zones.geojson"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, cacheBasename(tt.source), "source %s", tt.source)
	}
}

func TestEnsureLocalFilePassesThroughLocalPaths(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "trips.parquet")
	require.NoError(t, os.WriteFile(source, []byte("data"), 0o644))

	path, downloaded, err := ensureLocalFile(source, filepath.Join(dir, "raw", "trips.parquet"), managerTestLogger())
	require.NoError(t, err)
	assert.False(t, downloaded)
	assert.Equal(t, source, path)
}

func TestEnsureLocalFileDownloadsOnce(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte("remote bytes"))
	}))
	defer server.Close()

	cachePath := filepath.Join(t.TempDir(), "raw", "payload.bin")

	path, downloaded, err := ensureLocalFile(server.URL+"/payload.bin", cachePath, managerTestLogger())
	require.NoError(t, err)
	assert.True(t, downloaded)
	assert.Equal(t, cachePath, path)

	content, err := os.ReadFile(cachePath)
	require.NoError(t, err)
	assert.Equal(t, []byte("remote bytes"), content)

	// Second call must serve the cached copy without another request.
	path, downloaded, err = ensureLocalFile(server.URL+"/payload.bin", cachePath, managerTestLogger())
	require.NoError(t, err)
	assert.False(t, downloaded)
	assert.Equal(t, cachePath, path)
	assert.Equal(t, 1, hits)
}

func TestEnsureLocalFileSurfacesHTTPErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer server.Close()

	_, _, err := ensureLocalFile(server.URL+"/missing.bin", filepath.Join(t.TempDir(), "missing.bin"), managerTestLogger())
	assert.Error(t, err)
}
