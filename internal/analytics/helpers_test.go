package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"taxipulse.nyc/internal/models"
)

func fixtureTrip(t *testing.T, date string, hour int, borough, payment string, fare, distance, tip float64, rainy bool) models.Trip {
	t.Helper()

	day, err := time.Parse(models.DateLayout, date)
	require.NoError(t, err)

	pickup := day.Add(time.Duration(hour) * time.Hour)
	weekday := pickup.Weekday()

	return models.Trip{
		PickupTime:          pickup,
		DropoffTime:         pickup.Add(10 * time.Minute),
		Date:                date,
		DateKey:             day.Year()*10000 + int(day.Month())*100 + day.Day(),
		Hour:                hour,
		DayOfWeek:           weekday.String(),
		DowIndex:            int(weekday),
		Month:               int(day.Month()),
		IsWeekend:           weekday == time.Saturday || weekday == time.Sunday,
		PassengerCount:      1,
		TripDistance:        distance,
		FareAmount:          fare,
		TipAmount:           tip,
		TotalAmount:         fare + tip,
		DurationMinutes:     10,
		TipPercentage:       math.Round(tip/fare*100*100) / 100,
		PricePerMile:        math.Round(fare/distance*100) / 100,
		PaymentType:         payment,
		PULocationID:        1,
		DOLocationID:        2,
		PickupZone:          borough + " Center",
		PickupBorough:       borough,
		DropoffZone:         borough + " Center",
		DropoffBorough:      borough,
		Temperature:         40,
		IsRainy:             rainy,
		PrecipitationInches: 0,
	}
}

// fixtureTrips covers six dates (Jan 1 and 4 rainy, Jan 1/7/8 weekend), three
// boroughs, two payment types, and one trip outside the default hour window.
func fixtureTrips(t *testing.T) []models.Trip {
	t.Helper()

	return []models.Trip{
		fixtureTrip(t, "2023-01-01", 7, "Manhattan", "Credit Card", 10, 2, 2, true),
		fixtureTrip(t, "2023-01-01", 9, "Queens", "Cash", 20, 4, 0, true),
		fixtureTrip(t, "2023-01-01", 23, "Manhattan", "Credit Card", 30, 6, 6, true),
		fixtureTrip(t, "2023-01-02", 7, "Manhattan", "Credit Card", 12, 3, 2.4, false),
		fixtureTrip(t, "2023-01-02", 8, "Brooklyn", "Cash", 8, 2, 0, false),
		fixtureTrip(t, "2023-01-02", 18, "Manhattan", "Credit Card", 16, 4, 3.2, false),
		fixtureTrip(t, "2023-01-03", 7, "Queens", "Credit Card", 14, 2, 2.8, false),
		fixtureTrip(t, "2023-01-03", 12, "Manhattan", "Cash", 22, 5, 0, false),
		fixtureTrip(t, "2023-01-04", 9, "Brooklyn", "Credit Card", 18, 3, 3.6, true),
		fixtureTrip(t, "2023-01-04", 15, "Manhattan", "Credit Card", 26, 6, 5.2, true),
		fixtureTrip(t, "2023-01-07", 10, "Queens", "Cash", 9, 1, 0, false),
		fixtureTrip(t, "2023-01-08", 9, "Manhattan", "Credit Card", 15, 3, 3, false),
	}
}

func fixtureDataset(t *testing.T) *Dataset {
	t.Helper()

	dataset, err := NewDataset(fixtureTrips(t))
	require.NoError(t, err)
	return dataset
}

// allHoursFilter widens the hour window so tests can isolate other predicates.
func allHoursFilter(dataset *Dataset) Filter {
	filter := dataset.DefaultFilter()
	filter.HourMin = 0
	filter.HourMax = 23
	return filter
}
