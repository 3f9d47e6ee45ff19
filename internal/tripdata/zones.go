package tripdata

import (
	"fmt"
	"strconv"

	"github.com/paulmach/orb/geojson"

	"taxipulse.nyc/internal/models"
)

// parseZones decodes the taxi-zone FeatureCollection and indexes zones by
// location ID. Features without a usable zone_id are skipped.
func parseZones(data []byte) (map[int]models.Zone, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing zone GeoJSON: %w", err)
	}

	zones := make(map[int]models.Zone, len(fc.Features))
	for _, feature := range fc.Features {
		id, ok := zoneID(feature.Properties)
		if !ok {
			continue
		}
		zones[id] = models.NewZone(
			id,
			stringProperty(feature.Properties, "zone_name"),
			stringProperty(feature.Properties, "borough"),
		)
	}

	return zones, nil
}

// zoneID extracts the numeric zone identifier, tolerating the number-vs-string
// drift across published versions of the zone file.
func zoneID(props geojson.Properties) (int, bool) {
	switch v := props["zone_id"].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case string:
		id, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return id, true
	default:
		return 0, false
	}
}

func stringProperty(props geojson.Properties, key string) string {
	if value, ok := props[key].(string); ok && value != "" {
		return value
	}
	return models.UnknownValue
}

// enrichTripZones fills pickup and dropoff zone names and boroughs. Location
// IDs with no matching zone map to Unknown.
func enrichTripZones(trips []models.Trip, zones map[int]models.Zone) {
	unknown := models.Zone{Name: models.UnknownValue, Borough: models.UnknownValue}

	for i := range trips {
		pickup, ok := zones[trips[i].PULocationID]
		if !ok {
			pickup = unknown
		}
		trips[i].PickupZone = pickup.Name
		trips[i].PickupBorough = pickup.Borough

		dropoff, ok := zones[trips[i].DOLocationID]
		if !ok {
			dropoff = unknown
		}
		trips[i].DropoffZone = dropoff.Name
		trips[i].DropoffBorough = dropoff.Borough
	}
}
