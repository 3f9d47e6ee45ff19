package analytics

import (
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"taxipulse.nyc/internal/models"
)

// Categorical filter values. FilterAll disables a predicate.
const (
	FilterAll      = "all"
	WeatherRainy   = "rainy"
	WeatherClear   = "clear"
	DayTypeWeekday = "weekday"
	DayTypeWeekend = "weekend"
)

// Default hour window, matching the dashboard's initial slider position.
const (
	DefaultHourMin = 6
	DefaultHourMax = 22
)

// Filter is the five-predicate selection every chart shares. Date and hour
// bounds are inclusive. Values are assumed validated; build from
// Dataset.DefaultFilter and override fields.
type Filter struct {
	StartDate   string
	EndDate     string
	HourMin     int
	HourMax     int
	PaymentType string
	Weather     string
	DayType     string
}

// Frame is a filtered view of the master dataframe. All chart aggregations
// hang off it, so one ApplyFilter call can feed any number of panels.
type Frame struct {
	df dataframe.DataFrame
}

// ApplyFilter evaluates the predicates as a pure conjunction: the same rows
// come back no matter the order the predicates apply in.
func (dataset *Dataset) ApplyFilter(filter Filter) *Frame {
	df := dataset.df

	if filter.StartDate != "" {
		df = df.Filter(dataframe.F{Colname: colDateKey, Comparator: series.GreaterEq, Comparando: dateKeyOf(filter.StartDate)})
	}
	if filter.EndDate != "" {
		df = df.Filter(dataframe.F{Colname: colDateKey, Comparator: series.LessEq, Comparando: dateKeyOf(filter.EndDate)})
	}

	df = df.Filter(dataframe.F{Colname: colHour, Comparator: series.GreaterEq, Comparando: filter.HourMin})
	df = df.Filter(dataframe.F{Colname: colHour, Comparator: series.LessEq, Comparando: filter.HourMax})

	if filter.PaymentType != "" && filter.PaymentType != FilterAll {
		df = df.Filter(dataframe.F{Colname: colPaymentType, Comparator: series.Eq, Comparando: filter.PaymentType})
	}

	switch filter.Weather {
	case WeatherRainy:
		df = df.Filter(dataframe.F{Colname: colIsRainy, Comparator: series.Eq, Comparando: 1})
	case WeatherClear:
		df = df.Filter(dataframe.F{Colname: colIsRainy, Comparator: series.Eq, Comparando: 0})
	}

	switch filter.DayType {
	case DayTypeWeekday:
		df = df.Filter(dataframe.F{Colname: colIsWeekend, Comparator: series.Eq, Comparando: 0})
	case DayTypeWeekend:
		df = df.Filter(dataframe.F{Colname: colIsWeekend, Comparator: series.Eq, Comparando: 1})
	}

	return &Frame{df: df}
}

// Rows is the number of trips the filter matched.
func (frame *Frame) Rows() int {
	return frame.df.Nrow()
}

// dateKeyOf converts YYYY-MM-DD to the sortable integer key used by the date
// range predicate. Malformed input yields 0; callers validate dates upstream.
func dateKeyOf(date string) int {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return 0
	}
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}
