package tripdata

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"taxipulse.nyc/internal/models"
)

// Rows violating any of these bounds are treated as bad meter readings and
// dropped.
const (
	maxFareAmount      = 300.0
	maxTripDistance    = 100.0
	maxPassengerCount  = 8.0
	maxDurationMinutes = 480.0
)

const sampleSeed = 42

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func dateKey(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// cleanTripRecords drops implausible rows and derives the temporal and fare
// columns the dashboard aggregates over. Zone and weather enrichment happen
// in separate passes.
func cleanTripRecords(records []rawTripRecord) []models.Trip {
	trips := make([]models.Trip, 0, len(records))

	for _, record := range records {
		if record.PickupTime.IsZero() || record.DropoffTime.IsZero() {
			continue
		}

		// TLC files store naive clock times as epoch micros; reading them
		// back in UTC recovers the written clock fields on any host zone.
		pickup := record.PickupTime.UTC()
		dropoff := record.DropoffTime.UTC()

		duration := dropoff.Sub(pickup).Minutes()
		if duration <= 0 || duration > maxDurationMinutes {
			continue
		}
		if record.FareAmount <= 0 || record.FareAmount > maxFareAmount {
			continue
		}
		if record.TripDistance <= 0 || record.TripDistance > maxTripDistance {
			continue
		}
		if record.PassengerCount <= 0 || record.PassengerCount > maxPassengerCount {
			continue
		}

		weekday := pickup.Weekday()

		trips = append(trips, models.Trip{
			PickupTime:      pickup,
			DropoffTime:     dropoff,
			Date:            pickup.Format(models.DateLayout),
			DateKey:         dateKey(pickup),
			Hour:            pickup.Hour(),
			DayOfWeek:       weekday.String(),
			DowIndex:        int(weekday),
			Month:           int(pickup.Month()),
			IsWeekend:       weekday == time.Saturday || weekday == time.Sunday,
			PassengerCount:  int(record.PassengerCount),
			TripDistance:    record.TripDistance,
			FareAmount:      record.FareAmount,
			TipAmount:       record.TipAmount,
			TotalAmount:     record.TotalAmount,
			DurationMinutes: round2(duration),
			TipPercentage:   round2(record.TipAmount / record.FareAmount * 100),
			PricePerMile:    round2(record.FareAmount / record.TripDistance),
			PaymentType:     models.PaymentTypeName(record.PaymentType),
			PULocationID:    int(record.PULocationID),
			DOLocationID:    int(record.DOLocationID),
		})
	}

	return trips
}

// sampleTrips takes a deterministic uniform sample of n trips, preserving the
// original row order. Inputs at or under the target size pass through.
func sampleTrips(trips []models.Trip, n int) []models.Trip {
	if n <= 0 || len(trips) <= n {
		return trips
	}

	r := rand.New(rand.NewSource(sampleSeed))
	indices := r.Perm(len(trips))[:n]
	sort.Ints(indices)

	sampled := make([]models.Trip, 0, n)
	for _, i := range indices {
		sampled = append(sampled, trips[i])
	}
	return sampled
}
