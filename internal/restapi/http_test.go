package restapi

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxipulse.nyc/internal/app"
	"taxipulse.nyc/internal/appconf"
	"taxipulse.nyc/internal/logging"
	"taxipulse.nyc/internal/models"
	"taxipulse.nyc/internal/observability"
	"taxipulse.nyc/internal/tripdata"
)

// testZoneIDs maps the fixture boroughs onto stable zone IDs.
var testZoneIDs = map[string]int{
	"Manhattan": 4,
	"Queens":    7,
	"Brooklyn":  61,
}

func testTrip(t *testing.T, date string, hour int, borough, payment string, fare, distance, tip float64, rainy bool) models.Trip {
	t.Helper()

	day, err := time.Parse(models.DateLayout, date)
	require.NoError(t, err)

	pickup := day.Add(time.Duration(hour) * time.Hour)
	weekday := pickup.Weekday()
	zoneID := testZoneIDs[borough]

	return models.Trip{
		PickupTime:      pickup,
		DropoffTime:     pickup.Add(10 * time.Minute),
		Date:            date,
		DateKey:         day.Year()*10000 + int(day.Month())*100 + day.Day(),
		Hour:            hour,
		DayOfWeek:       weekday.String(),
		DowIndex:        int(weekday),
		Month:           int(day.Month()),
		IsWeekend:       weekday == time.Saturday || weekday == time.Sunday,
		PassengerCount:  1,
		TripDistance:    distance,
		FareAmount:      fare,
		TipAmount:       tip,
		TotalAmount:     fare + tip,
		DurationMinutes: 10,
		TipPercentage:   math.Round(tip/fare*100*100) / 100,
		PricePerMile:    math.Round(fare/distance*100) / 100,
		PaymentType:     payment,
		PULocationID:    zoneID,
		DOLocationID:    zoneID,
		PickupZone:      borough + " Center",
		PickupBorough:   borough,
		DropoffZone:     borough + " Center",
		DropoffBorough:  borough,
		Temperature:     40,
		IsRainy:         rainy,
	}
}

// testTrips covers six dates (Jan 1 and 4 rainy, Jan 1/7/8 weekend), three
// boroughs, two payment types, and one trip outside the default hour window.
func testTrips(t *testing.T) []models.Trip {
	t.Helper()

	return []models.Trip{
		testTrip(t, "2023-01-01", 7, "Manhattan", "Credit Card", 10, 2, 2, true),
		testTrip(t, "2023-01-01", 9, "Queens", "Cash", 20, 4, 0, true),
		testTrip(t, "2023-01-01", 23, "Manhattan", "Credit Card", 30, 6, 6, true),
		testTrip(t, "2023-01-02", 7, "Manhattan", "Credit Card", 12, 3, 2.4, false),
		testTrip(t, "2023-01-02", 8, "Brooklyn", "Cash", 8, 2, 0, false),
		testTrip(t, "2023-01-02", 18, "Manhattan", "Credit Card", 16, 4, 3.2, false),
		testTrip(t, "2023-01-03", 7, "Queens", "Credit Card", 14, 2, 2.8, false),
		testTrip(t, "2023-01-03", 12, "Manhattan", "Cash", 22, 5, 0, false),
		testTrip(t, "2023-01-04", 9, "Brooklyn", "Credit Card", 18, 3, 3.6, true),
		testTrip(t, "2023-01-04", 15, "Manhattan", "Credit Card", 26, 6, 5.2, true),
		testTrip(t, "2023-01-07", 10, "Queens", "Cash", 9, 1, 0, false),
		testTrip(t, "2023-01-08", 9, "Manhattan", "Credit Card", 15, 3, 3, false),
	}
}

func testZones() map[int]models.Zone {
	return map[int]models.Zone{
		4:  models.NewZone(4, "Alphabet City", "Manhattan"),
		7:  models.NewZone(7, "Astoria", "Queens"),
		61: models.NewZone(61, "Crown Heights North", "Brooklyn"),
	}
}

func testWeather() []models.DailyWeather {
	return []models.DailyWeather{
		{Date: "2023-01-01", Temperature: 35, IsRainy: true, PrecipitationInches: 0.42},
		{Date: "2023-01-02", Temperature: 38, IsRainy: false},
		{Date: "2023-01-03", Temperature: 41, IsRainy: false},
		{Date: "2023-01-04", Temperature: 33, IsRainy: true, PrecipitationInches: 0.18},
		{Date: "2023-01-07", Temperature: 45, IsRainy: false},
		{Date: "2023-01-08", Temperature: 39, IsRainy: false},
	}
}

// createTestApi creates a new RestAPI instance with a trip manager built
// around the fixture tables for use in tests.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()

	manager, err := tripdata.NewManagerForTesting(testTrips(t), testZones(), testWeather())
	require.NoError(t, err)

	app := &app.Application{
		Config: appconf.Config{
			Env:       appconf.EnvFlagToEnvironment("test"),
			ApiKeys:   []string{"TEST"},
			RateLimit: 100,
		},
		DataConfig: tripdata.Config{
			TripsURL:   "testdata/trips.parquet",
			ZonesURL:   "testdata/taxi_zones.geojson",
			Year:       2023,
			Month:      1,
			SampleSize: 12,
		},
		Logger:      logging.NewStructuredLogger(io.Discard, slog.LevelError),
		Metrics:     observability.NewMetricsForTesting(),
		TripManager: manager,
	}

	return NewRestAPI(app)
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the specified endpoint, and returns the response
// and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	resp := serveApiRaw(t, api, endpoint)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	err := json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

// serveApiRaw makes the request without decoding the body, for endpoints
// that do not return the JSON envelope. The server stays up until the test
// ends so the caller can stream the body.
func serveApiRaw(t *testing.T, api *RestAPI, endpoint string) *http.Response {
	router := httprouter.New()
	api.SetRoutes(router)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	return resp
}

// responseData unwraps the envelope's data block.
func responseData(t *testing.T, model models.ResponseModel) map[string]interface{} {
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "response data should be an object")
	return data
}

// responseEntry unwraps data.entry.
func responseEntry(t *testing.T, model models.ResponseModel) map[string]interface{} {
	data := responseData(t, model)
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok, "response entry should be an object")
	return entry
}

// responseList unwraps data.list.
func responseList(t *testing.T, model models.ResponseModel) []interface{} {
	data := responseData(t, model)
	list, ok := data["list"].([]interface{})
	require.True(t, ok, "response list should be an array")
	return list
}

func TestCompressionMiddleware(t *testing.T) {
	// Create a test handler that returns a large response
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Write a large response that would benefit from compression
		w.Header().Set("Content-Type", "application/json")
		largeResponse := strings.Repeat(`{"test": "data"}`, 1000)
		_, _ = w.Write([]byte(largeResponse))
	})

	t.Run("compresses response when gzip accepted", func(t *testing.T) {
		// Create request with gzip acceptance
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Accept-Encoding", "gzip")

		recorder := httptest.NewRecorder()

		// Apply compression middleware with default config
		handler := CompressionMiddleware(testHandler)
		handler.ServeHTTP(recorder, req)

		// Check response is compressed
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "gzip", recorder.Header().Get("Content-Encoding"))

		// Verify we can decompress the response
		reader, err := gzip.NewReader(bytes.NewReader(recorder.Body.Bytes()))
		require.NoError(t, err)
		defer func() { _ = reader.Close() }()

		decompressed, err := io.ReadAll(reader)
		require.NoError(t, err)

		// Verify content
		expected := strings.Repeat(`{"test": "data"}`, 1000)
		assert.Equal(t, expected, string(decompressed))

		// Verify compression actually happened (compressed should be smaller)
		assert.Less(t, recorder.Body.Len(), len(expected))
	})

	t.Run("does not compress when gzip not accepted", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		// No Accept-Encoding header

		recorder := httptest.NewRecorder()

		handler := CompressionMiddleware(testHandler)
		handler.ServeHTTP(recorder, req)

		// Check response is not compressed
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Empty(t, recorder.Header().Get("Content-Encoding"))

		// Content should be uncompressed
		expected := strings.Repeat(`{"test": "data"}`, 1000)
		assert.Equal(t, expected, recorder.Body.String())
	})

	t.Run("handles empty responses", func(t *testing.T) {
		emptyHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Accept-Encoding", "gzip")

		recorder := httptest.NewRecorder()

		handler := CompressionMiddleware(emptyHandler)
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Empty(t, recorder.Body.String())
	})

	t.Run("preserves content-type header", func(t *testing.T) {
		jsonHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			// Use larger content to ensure compression happens
			largeJSON := strings.Repeat(`{"message": "test data"}`, 100)
			_, _ = w.Write([]byte(largeJSON))
		})

		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Accept-Encoding", "gzip")

		recorder := httptest.NewRecorder()

		handler := CompressionMiddleware(jsonHandler)
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
		assert.Equal(t, "gzip", recorder.Header().Get("Content-Encoding"))
	})
}

func TestCompressionMiddlewareIntegration(t *testing.T) {
	api := createTestApi(t)

	t.Run("API responses are compressed when requested", func(t *testing.T) {
		router := httprouter.New()
		api.SetRoutes(router)
		server := httptest.NewServer(CompressionMiddleware(router))
		defer server.Close()

		// Create request with gzip acceptance
		client := &http.Client{}
		req, err := http.NewRequest("GET", server.URL+"/api/dashboard/heatmap.json?key=TEST", nil)
		require.NoError(t, err)
		req.Header.Set("Accept-Encoding", "gzip")

		resp, err := client.Do(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		// Check if the response was compressed - gzhttp may not compress small responses
		contentEncoding := resp.Header.Get("Content-Encoding")
		if contentEncoding == "gzip" {
			// Verify response can be decompressed
			reader, err := gzip.NewReader(resp.Body)
			require.NoError(t, err)
			defer func() { _ = reader.Close() }()

			decompressed, err := io.ReadAll(reader)
			require.NoError(t, err)

			// Should contain valid JSON
			assert.Contains(t, string(decompressed), `"code":200`)
		} else {
			// Response wasn't compressed (probably too small), verify it's valid JSON
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Contains(t, string(body), `"code":200`)
		}
	})
}

func TestCompressionConfig(t *testing.T) {
	t.Run("default config has sensible values", func(t *testing.T) {
		config := DefaultCompressionConfig()
		assert.Equal(t, 1024, config.MinSize)
		assert.Equal(t, 6, config.Level)
	})

	t.Run("custom config is applied", func(t *testing.T) {
		config := CompressionConfig{
			MinSize: 2048,
			Level:   9,
		}

		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			// Write response larger than MinSize to trigger compression
			largeResponse := strings.Repeat(`{"test": "data"}`, 500)
			_, _ = w.Write([]byte(largeResponse))
		})

		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Accept-Encoding", "gzip")

		recorder := httptest.NewRecorder()

		middleware := NewCompressionMiddleware(config)
		handler := middleware(testHandler)
		handler.ServeHTTP(recorder, req)

		// Should still work with custom config
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	})
}
