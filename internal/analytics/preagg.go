package analytics

import (
	"fmt"
	"sort"

	"github.com/go-gota/gota/dataframe"
)

// Pre-aggregated table rows. Field tags keep the column names the dashboard's
// data files have always used.

type DailyRow struct {
	Date          string  `json:"date"`
	TotalFare     float64 `json:"total_fare"`
	AvgFare       float64 `json:"avg_fare"`
	AvgDistance   float64 `json:"avg_distance"`
	AvgDuration   float64 `json:"avg_duration"`
	AvgTipPct     float64 `json:"avg_tip_pct"`
	AvgPassengers float64 `json:"avg_passengers"`
	TripCount     int     `json:"trip_count"`
}

type HourlyRow struct {
	DateHour  string  `json:"date_hour"`
	TotalFare float64 `json:"total_fare"`
	AvgFare   float64 `json:"avg_fare"`
	TripCount int     `json:"trip_count"`
}

type HourDowRow struct {
	Hour      int     `json:"hour"`
	DayOfWeek string  `json:"day_of_week"`
	TripCount int     `json:"trip_count"`
	AvgFare   float64 `json:"avg_fare"`
}

type BoroughRow struct {
	Borough         string  `json:"borough"`
	TotalFare       float64 `json:"total_fare"`
	AvgFare         float64 `json:"avg_fare"`
	AvgDistance     float64 `json:"avg_distance"`
	TripCount       int     `json:"trip_count"`
	RainyProportion float64 `json:"rainy_proportion"`
}

type PaymentRow struct {
	PaymentType string  `json:"payment_type"`
	TotalFare   float64 `json:"total_fare"`
	AvgFare     float64 `json:"avg_fare"`
	AvgTipPct   float64 `json:"avg_tip_pct"`
	TripCount   int     `json:"trip_count"`
}

// Aggregations holds the five tables precomputed from the unfiltered dataset
// at startup.
type Aggregations struct {
	Daily   []DailyRow
	Hourly  []HourlyRow
	HourDow []HourDowRow
	Borough []BoroughRow
	Payment []PaymentRow
}

// TableNames lists the aggregate tables the API serves, sorted.
func TableNames() []string {
	return []string{"borough", "daily", "hour-dow", "hourly", "payment"}
}

// Table returns the named table, or false when the name is unknown.
func (aggregations *Aggregations) Table(name string) (interface{}, bool) {
	switch name {
	case "daily":
		return aggregations.Daily, true
	case "hourly":
		return aggregations.Hourly, true
	case "hour-dow", "hour_dow":
		return aggregations.HourDow, true
	case "borough":
		return aggregations.Borough, true
	case "payment":
		return aggregations.Payment, true
	default:
		return nil, false
	}
}

// BuildAggregations computes the five pre-aggregated tables over the full
// dataset.
func BuildAggregations(dataset *Dataset) (*Aggregations, error) {
	frame := &Frame{df: dataset.df}
	return frame.Aggregations()
}

// Aggregations computes the five tables over the frame's rows. The startup
// pre-aggregations use the full dataset; the export endpoint reuses this over
// a filtered frame.
func (frame *Frame) Aggregations() (*Aggregations, error) {
	daily, err := frame.dailyTable()
	if err != nil {
		return nil, err
	}
	hourly, err := frame.hourlyTable()
	if err != nil {
		return nil, err
	}
	hourDow, err := frame.hourDowTable()
	if err != nil {
		return nil, err
	}
	borough, err := frame.boroughTable()
	if err != nil {
		return nil, err
	}
	payment, err := frame.paymentTable()
	if err != nil {
		return nil, err
	}

	return &Aggregations{
		Daily:   daily,
		Hourly:  hourly,
		HourDow: hourDow,
		Borough: borough,
		Payment: payment,
	}, nil
}

func (frame *Frame) dailyTable() ([]DailyRow, error) {
	if frame.df.Nrow() == 0 {
		return []DailyRow{}, nil
	}

	grouped := frame.df.GroupBy(colDate)
	if grouped.Err != nil {
		return nil, fmt.Errorf("error grouping daily table: %w", grouped.Err)
	}

	agg := grouped.Aggregation(
		[]dataframe.AggregationType{
			dataframe.Aggregation_SUM,
			dataframe.Aggregation_MEAN,
			dataframe.Aggregation_MEAN,
			dataframe.Aggregation_MEAN,
			dataframe.Aggregation_MEAN,
			dataframe.Aggregation_MEAN,
			dataframe.Aggregation_COUNT,
		},
		[]string{colFareAmount, colFareAmount, colTripDistance, colDuration, colTipPercentage, colPassengerCount, colFareAmount},
	)
	if agg.Err != nil {
		return nil, fmt.Errorf("error aggregating daily table: %w", agg.Err)
	}

	rows := make([]DailyRow, 0, agg.Nrow())
	for _, row := range agg.Maps() {
		rows = append(rows, DailyRow{
			Date:          mapString(row, colDate),
			TotalFare:     mapFloat(row, colFareAmount+"_SUM"),
			AvgFare:       mapFloat(row, colFareAmount+"_MEAN"),
			AvgDistance:   mapFloat(row, colTripDistance+"_MEAN"),
			AvgDuration:   mapFloat(row, colDuration+"_MEAN"),
			AvgTipPct:     mapFloat(row, colTipPercentage+"_MEAN"),
			AvgPassengers: mapFloat(row, colPassengerCount+"_MEAN"),
			TripCount:     mapInt(row, colFareAmount+"_COUNT"),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })

	return rows, nil
}

func (frame *Frame) hourlyTable() ([]HourlyRow, error) {
	if frame.df.Nrow() == 0 {
		return []HourlyRow{}, nil
	}

	grouped := frame.df.GroupBy(colDateHour)
	if grouped.Err != nil {
		return nil, fmt.Errorf("error grouping hourly table: %w", grouped.Err)
	}

	agg := grouped.Aggregation(
		[]dataframe.AggregationType{dataframe.Aggregation_SUM, dataframe.Aggregation_MEAN, dataframe.Aggregation_COUNT},
		[]string{colFareAmount, colFareAmount, colFareAmount},
	)
	if agg.Err != nil {
		return nil, fmt.Errorf("error aggregating hourly table: %w", agg.Err)
	}

	rows := make([]HourlyRow, 0, agg.Nrow())
	for _, row := range agg.Maps() {
		rows = append(rows, HourlyRow{
			DateHour:  mapString(row, colDateHour),
			TotalFare: mapFloat(row, colFareAmount+"_SUM"),
			AvgFare:   mapFloat(row, colFareAmount+"_MEAN"),
			TripCount: mapInt(row, colFareAmount+"_COUNT"),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].DateHour < rows[j].DateHour })

	return rows, nil
}

func (frame *Frame) hourDowTable() ([]HourDowRow, error) {
	if frame.df.Nrow() == 0 {
		return []HourDowRow{}, nil
	}

	grouped := frame.df.GroupBy(colHour, colDayOfWeek)
	if grouped.Err != nil {
		return nil, fmt.Errorf("error grouping hour-dow table: %w", grouped.Err)
	}

	agg := grouped.Aggregation(
		[]dataframe.AggregationType{dataframe.Aggregation_COUNT, dataframe.Aggregation_MEAN},
		[]string{colFareAmount, colFareAmount},
	)
	if agg.Err != nil {
		return nil, fmt.Errorf("error aggregating hour-dow table: %w", agg.Err)
	}

	rows := make([]HourDowRow, 0, agg.Nrow())
	for _, row := range agg.Maps() {
		rows = append(rows, HourDowRow{
			Hour:      mapInt(row, colHour),
			DayOfWeek: mapString(row, colDayOfWeek),
			TripCount: mapInt(row, colFareAmount+"_COUNT"),
			AvgFare:   mapFloat(row, colFareAmount+"_MEAN"),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Hour != rows[j].Hour {
			return rows[i].Hour < rows[j].Hour
		}
		return rows[i].DayOfWeek < rows[j].DayOfWeek
	})

	return rows, nil
}

func (frame *Frame) boroughTable() ([]BoroughRow, error) {
	if frame.df.Nrow() == 0 {
		return []BoroughRow{}, nil
	}

	grouped := frame.df.GroupBy(colPickupBorough)
	if grouped.Err != nil {
		return nil, fmt.Errorf("error grouping borough table: %w", grouped.Err)
	}

	agg := grouped.Aggregation(
		[]dataframe.AggregationType{
			dataframe.Aggregation_SUM,
			dataframe.Aggregation_MEAN,
			dataframe.Aggregation_MEAN,
			dataframe.Aggregation_COUNT,
			dataframe.Aggregation_MEAN,
		},
		[]string{colFareAmount, colFareAmount, colTripDistance, colFareAmount, colIsRainy},
	)
	if agg.Err != nil {
		return nil, fmt.Errorf("error aggregating borough table: %w", agg.Err)
	}

	rows := make([]BoroughRow, 0, agg.Nrow())
	for _, row := range agg.Maps() {
		rows = append(rows, BoroughRow{
			Borough:         mapString(row, colPickupBorough),
			TotalFare:       mapFloat(row, colFareAmount+"_SUM"),
			AvgFare:         mapFloat(row, colFareAmount+"_MEAN"),
			AvgDistance:     mapFloat(row, colTripDistance+"_MEAN"),
			TripCount:       mapInt(row, colFareAmount+"_COUNT"),
			RainyProportion: mapFloat(row, colIsRainy+"_MEAN"),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Borough < rows[j].Borough })

	return rows, nil
}

func (frame *Frame) paymentTable() ([]PaymentRow, error) {
	if frame.df.Nrow() == 0 {
		return []PaymentRow{}, nil
	}

	grouped := frame.df.GroupBy(colPaymentType)
	if grouped.Err != nil {
		return nil, fmt.Errorf("error grouping payment table: %w", grouped.Err)
	}

	agg := grouped.Aggregation(
		[]dataframe.AggregationType{
			dataframe.Aggregation_SUM,
			dataframe.Aggregation_MEAN,
			dataframe.Aggregation_MEAN,
			dataframe.Aggregation_COUNT,
		},
		[]string{colFareAmount, colFareAmount, colTipPercentage, colFareAmount},
	)
	if agg.Err != nil {
		return nil, fmt.Errorf("error aggregating payment table: %w", agg.Err)
	}

	rows := make([]PaymentRow, 0, agg.Nrow())
	for _, row := range agg.Maps() {
		rows = append(rows, PaymentRow{
			PaymentType: mapString(row, colPaymentType),
			TotalFare:   mapFloat(row, colFareAmount+"_SUM"),
			AvgFare:     mapFloat(row, colFareAmount+"_MEAN"),
			AvgTipPct:   mapFloat(row, colTipPercentage+"_MEAN"),
			TripCount:   mapInt(row, colFareAmount+"_COUNT"),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].PaymentType < rows[j].PaymentType })

	return rows, nil
}
