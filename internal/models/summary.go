package models

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer renders comma-grouped numbers for the KPI cards.
var printer = message.NewPrinter(language.English)

// Summary holds the dashboard KPI metrics for one filtered view of the
// dataset. The Formatted fields are display-ready strings for the KPI cards.
type Summary struct {
	TotalTrips         int     `json:"totalTrips"`
	AvgFare            float64 `json:"avgFare"`
	AvgDistance        float64 `json:"avgDistance"`
	AvgDurationMinutes float64 `json:"avgDurationMinutes"`
	TotalRevenue       float64 `json:"totalRevenue"`
	StartDate          string  `json:"startDate"`
	EndDate            string  `json:"endDate"`
	PeakHour           int     `json:"peakHour"`
	BusiestBorough     string  `json:"busiestBorough"`

	FormattedTrips       string `json:"formattedTrips"`
	FormattedAvgFare     string `json:"formattedAvgFare"`
	FormattedAvgDistance string `json:"formattedAvgDistance"`
	FormattedRevenue     string `json:"formattedRevenue"`
}

// NewSummary creates a Summary and fills in its formatted KPI strings.
func NewSummary(totalTrips int, avgFare, avgDistance, avgDuration, totalRevenue float64, startDate, endDate string, peakHour int, busiestBorough string) Summary {
	return Summary{
		TotalTrips:         totalTrips,
		AvgFare:            avgFare,
		AvgDistance:        avgDistance,
		AvgDurationMinutes: avgDuration,
		TotalRevenue:       totalRevenue,
		StartDate:          startDate,
		EndDate:            endDate,
		PeakHour:           peakHour,
		BusiestBorough:     busiestBorough,

		FormattedTrips:       printer.Sprintf("%d", totalTrips),
		FormattedAvgFare:     printer.Sprintf("$%.2f", avgFare),
		FormattedAvgDistance: printer.Sprintf("%.2f mi", avgDistance),
		FormattedRevenue:     printer.Sprintf("$%.0f", totalRevenue),
	}
}
