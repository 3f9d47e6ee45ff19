package analytics

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"taxipulse.nyc/internal/models"
)

// Master dataframe column names. Flag columns (is_rainy, is_weekend) are int
// 0/1 so they can share the comparator-based filter path with the rest.
const (
	colDate           = "date"
	colDateKey        = "date_key"
	colDateHour       = "date_hour"
	colHour           = "hour"
	colMonth          = "month"
	colDowIndex       = "dow_index"
	colDayOfWeek      = "day_of_week"
	colIsWeekend      = "is_weekend"
	colIsRainy        = "is_rainy"
	colPassengerCount = "passenger_count"
	colPaymentType    = "payment_type"
	colPickupZone     = "pickup_zone"
	colPickupBorough  = "pickup_borough"
	colDropoffZone    = "dropoff_zone"
	colDropoffBorough = "dropoff_borough"
	colFareAmount     = "fare_amount"
	colTripDistance   = "trip_distance"
	colTipAmount      = "tip_amount"
	colTotalAmount    = "total_amount"
	colDuration       = "trip_duration_minutes"
	colTipPercentage  = "tip_percentage"
	colPricePerMile   = "price_per_mile"
	colTemperature    = "temperature"
	colPrecipitation  = "precipitation_inches"
)

// Dataset is the read-only master dataframe every chart filters and
// aggregates against.
type Dataset struct {
	df      dataframe.DataFrame
	minDate string
	maxDate string
}

// NewDataset builds the master dataframe from cleaned, enriched trips.
func NewDataset(trips []models.Trip) (*Dataset, error) {
	if len(trips) == 0 {
		return nil, errors.New("no trips to analyze")
	}

	n := len(trips)
	dates := make([]string, n)
	dateKeys := make([]int, n)
	dateHours := make([]string, n)
	hours := make([]int, n)
	months := make([]int, n)
	dowIndexes := make([]int, n)
	dayNames := make([]string, n)
	weekends := make([]int, n)
	rainy := make([]int, n)
	passengers := make([]int, n)
	paymentTypes := make([]string, n)
	pickupZones := make([]string, n)
	pickupBoroughs := make([]string, n)
	dropoffZones := make([]string, n)
	dropoffBoroughs := make([]string, n)
	fares := make([]float64, n)
	distances := make([]float64, n)
	tips := make([]float64, n)
	totals := make([]float64, n)
	durations := make([]float64, n)
	tipPcts := make([]float64, n)
	pricesPerMile := make([]float64, n)
	temperatures := make([]float64, n)
	precipitation := make([]float64, n)

	minDate := trips[0].Date
	maxDate := trips[0].Date

	for i, trip := range trips {
		dates[i] = trip.Date
		dateKeys[i] = trip.DateKey
		dateHours[i] = fmt.Sprintf("%s %02d:00", trip.Date, trip.Hour)
		hours[i] = trip.Hour
		months[i] = trip.Month
		dowIndexes[i] = trip.DowIndex
		dayNames[i] = trip.DayOfWeek
		weekends[i] = boolFlag(trip.IsWeekend)
		rainy[i] = boolFlag(trip.IsRainy)
		passengers[i] = trip.PassengerCount
		paymentTypes[i] = trip.PaymentType
		pickupZones[i] = trip.PickupZone
		pickupBoroughs[i] = trip.PickupBorough
		dropoffZones[i] = trip.DropoffZone
		dropoffBoroughs[i] = trip.DropoffBorough
		fares[i] = trip.FareAmount
		distances[i] = trip.TripDistance
		tips[i] = trip.TipAmount
		totals[i] = trip.TotalAmount
		durations[i] = trip.DurationMinutes
		tipPcts[i] = trip.TipPercentage
		pricesPerMile[i] = trip.PricePerMile
		temperatures[i] = trip.Temperature
		precipitation[i] = trip.PrecipitationInches

		if trip.Date < minDate {
			minDate = trip.Date
		}
		if trip.Date > maxDate {
			maxDate = trip.Date
		}
	}

	df := dataframe.New(
		series.New(dates, series.String, colDate),
		series.New(dateKeys, series.Int, colDateKey),
		series.New(dateHours, series.String, colDateHour),
		series.New(hours, series.Int, colHour),
		series.New(months, series.Int, colMonth),
		series.New(dowIndexes, series.Int, colDowIndex),
		series.New(dayNames, series.String, colDayOfWeek),
		series.New(weekends, series.Int, colIsWeekend),
		series.New(rainy, series.Int, colIsRainy),
		series.New(passengers, series.Int, colPassengerCount),
		series.New(paymentTypes, series.String, colPaymentType),
		series.New(pickupZones, series.String, colPickupZone),
		series.New(pickupBoroughs, series.String, colPickupBorough),
		series.New(dropoffZones, series.String, colDropoffZone),
		series.New(dropoffBoroughs, series.String, colDropoffBorough),
		series.New(fares, series.Float, colFareAmount),
		series.New(distances, series.Float, colTripDistance),
		series.New(tips, series.Float, colTipAmount),
		series.New(totals, series.Float, colTotalAmount),
		series.New(durations, series.Float, colDuration),
		series.New(tipPcts, series.Float, colTipPercentage),
		series.New(pricesPerMile, series.Float, colPricePerMile),
		series.New(temperatures, series.Float, colTemperature),
		series.New(precipitation, series.Float, colPrecipitation),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("error assembling dataframe: %w", df.Err)
	}

	return &Dataset{df: df, minDate: minDate, maxDate: maxDate}, nil
}

func boolFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Rows is the row count of the master frame.
func (dataset *Dataset) Rows() int {
	return dataset.df.Nrow()
}

// DateBounds returns the first and last trip dates in the dataset.
func (dataset *Dataset) DateBounds() (string, string) {
	return dataset.minDate, dataset.maxDate
}

// PaymentTypes returns the distinct payment type names, sorted.
func (dataset *Dataset) PaymentTypes() []string {
	return distinctStrings(dataset.df.Col(colPaymentType))
}

// DefaultFilter selects the full date span at the default hour window with
// every categorical filter wide open.
func (dataset *Dataset) DefaultFilter() Filter {
	return Filter{
		StartDate:   dataset.minDate,
		EndDate:     dataset.maxDate,
		HourMin:     DefaultHourMin,
		HourMax:     DefaultHourMax,
		PaymentType: FilterAll,
		Weather:     FilterAll,
		DayType:     FilterAll,
	}
}

// FilterOptions describes the selectable filter space for the UI.
func (dataset *Dataset) FilterOptions() models.FilterOptions {
	return models.FilterOptions{
		MinDate:          dataset.minDate,
		MaxDate:          dataset.maxDate,
		DefaultStartDate: dataset.minDate,
		DefaultEndDate:   dataset.maxDate,
		DefaultHourMin:   DefaultHourMin,
		DefaultHourMax:   DefaultHourMax,
		PaymentTypes:     dataset.PaymentTypes(),
		WeatherOptions:   []string{FilterAll, WeatherRainy, WeatherClear},
		DayTypeOptions:   []string{FilterAll, DayTypeWeekday, DayTypeWeekend},
	}
}

// distinctStrings returns the unique values of a string series, sorted.
func distinctStrings(s series.Series) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, value := range s.Records() {
		if _, ok := seen[value]; !ok {
			seen[value] = struct{}{}
			values = append(values, value)
		}
	}
	sort.Strings(values)
	return values
}
