package models

import "time"

// Trip is one cleaned, enriched taxi trip record. It carries the raw fields
// that survive cleaning plus every derived column the dashboard aggregates
// over. Trips are immutable once loaded.
type Trip struct {
	PickupTime  time.Time
	DropoffTime time.Time

	// Temporal derivations from the pickup time
	Date      string // YYYY-MM-DD
	DateKey   int    // YYYYMMDD, for ordered range filters
	Hour      int
	DayOfWeek string
	DowIndex  int // 0 = Sunday
	Month     int
	IsWeekend bool

	PassengerCount  int
	TripDistance    float64
	FareAmount      float64
	TipAmount       float64
	TotalAmount     float64
	DurationMinutes float64
	TipPercentage   float64
	PricePerMile    float64

	PaymentType string

	PULocationID   int
	DOLocationID   int
	PickupZone     string
	PickupBorough  string
	DropoffZone    string
	DropoffBorough string

	// Weather join (per pickup date)
	Temperature         float64
	IsRainy             bool
	PrecipitationInches float64
}
