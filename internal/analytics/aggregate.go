package analytics

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"taxipulse.nyc/internal/models"
)

const (
	movingAverageWindow = 7
	scatterSeed         = 42
)

// DailyTrips counts trips per date and attaches a centered 7-day moving
// average. Days where the window is incomplete carry no average.
func (frame *Frame) DailyTrips() ([]models.TimeSeriesPoint, error) {
	if frame.df.Nrow() == 0 {
		return []models.TimeSeriesPoint{}, nil
	}

	grouped := frame.df.GroupBy(colDate)
	if grouped.Err != nil {
		return nil, fmt.Errorf("error grouping by date: %w", grouped.Err)
	}

	agg := grouped.Aggregation(
		[]dataframe.AggregationType{dataframe.Aggregation_COUNT},
		[]string{colFareAmount},
	)
	if agg.Err != nil {
		return nil, fmt.Errorf("error counting daily trips: %w", agg.Err)
	}

	points := make([]models.TimeSeriesPoint, 0, agg.Nrow())
	for _, row := range agg.Maps() {
		points = append(points, models.TimeSeriesPoint{
			Date:      mapString(row, colDate),
			TripCount: mapInt(row, colFareAmount+"_COUNT"),
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })

	applyCenteredMovingAverage(points, movingAverageWindow)

	return points, nil
}

// applyCenteredMovingAverage fills MovingAvg for every point whose window
// fits entirely inside the series.
func applyCenteredMovingAverage(points []models.TimeSeriesPoint, window int) {
	if len(points) < window {
		return
	}

	half := window / 2
	for i := half; i < len(points)-half; i++ {
		sum := 0
		for j := i - half; j <= i+half; j++ {
			sum += points[j].TripCount
		}
		avg := float64(sum) / float64(window)
		points[i].MovingAvg = &avg
	}
}

// HourDayMatrix counts trips and averages fares per (hour, day of week) cell.
func (frame *Frame) HourDayMatrix() ([]models.HeatmapCell, error) {
	if frame.df.Nrow() == 0 {
		return []models.HeatmapCell{}, nil
	}

	grouped := frame.df.GroupBy(colHour, colDowIndex, colDayOfWeek)
	if grouped.Err != nil {
		return nil, fmt.Errorf("error grouping by hour and day: %w", grouped.Err)
	}

	agg := grouped.Aggregation(
		[]dataframe.AggregationType{dataframe.Aggregation_COUNT, dataframe.Aggregation_MEAN},
		[]string{colFareAmount, colFareAmount},
	)
	if agg.Err != nil {
		return nil, fmt.Errorf("error aggregating heatmap cells: %w", agg.Err)
	}

	cells := make([]models.HeatmapCell, 0, agg.Nrow())
	for _, row := range agg.Maps() {
		cells = append(cells, models.HeatmapCell{
			Hour:      mapInt(row, colHour),
			DayOfWeek: mapString(row, colDayOfWeek),
			DowIndex:  mapInt(row, colDowIndex),
			TripCount: mapInt(row, colFareAmount+"_COUNT"),
			AvgFare:   mapFloat(row, colFareAmount+"_MEAN"),
		})
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Hour != cells[j].Hour {
			return cells[i].Hour < cells[j].Hour
		}
		return cells[i].DowIndex < cells[j].DowIndex
	})

	return cells, nil
}

// WeatherImpact compares rainy-day and clear-day trips.
func (frame *Frame) WeatherImpact() ([]models.WeatherImpact, error) {
	if frame.df.Nrow() == 0 {
		return []models.WeatherImpact{}, nil
	}

	grouped := frame.df.GroupBy(colIsRainy)
	if grouped.Err != nil {
		return nil, fmt.Errorf("error grouping by weather: %w", grouped.Err)
	}

	agg := grouped.Aggregation(
		[]dataframe.AggregationType{dataframe.Aggregation_COUNT, dataframe.Aggregation_MEAN, dataframe.Aggregation_MEAN},
		[]string{colFareAmount, colFareAmount, colTripDistance},
	)
	if agg.Err != nil {
		return nil, fmt.Errorf("error aggregating weather impact: %w", agg.Err)
	}

	impacts := make([]models.WeatherImpact, 0, agg.Nrow())
	for _, row := range agg.Maps() {
		weather := "Clear"
		if mapInt(row, colIsRainy) == 1 {
			weather = "Rainy"
		}
		impacts = append(impacts, models.WeatherImpact{
			Weather:     weather,
			TripCount:   mapInt(row, colFareAmount+"_COUNT"),
			AvgFare:     mapFloat(row, colFareAmount+"_MEAN"),
			AvgDistance: mapFloat(row, colTripDistance+"_MEAN"),
		})
	}
	sort.Slice(impacts, func(i, j int) bool { return impacts[i].Weather < impacts[j].Weather })

	return impacts, nil
}

// DistanceFareSample returns up to limit scatter points, downsampling
// deterministically and reporting whether the cap truncated the set.
func (frame *Frame) DistanceFareSample(limit int) ([]models.ScatterPoint, bool, error) {
	n := frame.df.Nrow()
	if n == 0 {
		return []models.ScatterPoint{}, false, nil
	}

	df := frame.df
	limitExceeded := false

	if limit > 0 && n > limit {
		limitExceeded = true
		r := rand.New(rand.NewSource(scatterSeed))
		indices := r.Perm(n)[:limit]
		sort.Ints(indices)
		df = df.Subset(indices)
		if df.Err != nil {
			return nil, false, fmt.Errorf("error sampling scatter points: %w", df.Err)
		}
	}

	points := make([]models.ScatterPoint, 0, df.Nrow())
	for _, row := range df.Maps() {
		points = append(points, models.ScatterPoint{
			TripDistance:  mapFloat(row, colTripDistance),
			FareAmount:    mapFloat(row, colFareAmount),
			PaymentType:   mapString(row, colPaymentType),
			TipPercentage: mapFloat(row, colTipPercentage),
		})
	}

	return points, limitExceeded, nil
}

// BoroughFareStats computes box-plot statistics of fares per pickup borough.
func (frame *Frame) BoroughFareStats() ([]models.BoroughFareStats, error) {
	if frame.df.Nrow() == 0 {
		return []models.BoroughFareStats{}, nil
	}

	stats := make([]models.BoroughFareStats, 0, 8)
	for _, borough := range distinctStrings(frame.df.Col(colPickupBorough)) {
		sub := frame.df.Filter(dataframe.F{Colname: colPickupBorough, Comparator: series.Eq, Comparando: borough})
		if sub.Err != nil {
			return nil, fmt.Errorf("error selecting borough %s: %w", borough, sub.Err)
		}

		fares := sub.Col(colFareAmount)
		if fares.Len() == 0 {
			continue
		}

		stats = append(stats, models.BoroughFareStats{
			Borough:   borough,
			TripCount: fares.Len(),
			Min:       fares.Min(),
			Q1:        fares.Quantile(0.25),
			Median:    fares.Quantile(0.5),
			Q3:        fares.Quantile(0.75),
			Max:       fares.Max(),
		})
	}

	return stats, nil
}

// PaymentBreakdown aggregates trip volume, fares, and tipping per payment type.
func (frame *Frame) PaymentBreakdown() ([]models.PaymentBreakdown, error) {
	if frame.df.Nrow() == 0 {
		return []models.PaymentBreakdown{}, nil
	}

	grouped := frame.df.GroupBy(colPaymentType)
	if grouped.Err != nil {
		return nil, fmt.Errorf("error grouping by payment type: %w", grouped.Err)
	}

	agg := grouped.Aggregation(
		[]dataframe.AggregationType{
			dataframe.Aggregation_COUNT,
			dataframe.Aggregation_MEAN,
			dataframe.Aggregation_MEAN,
			dataframe.Aggregation_MEAN,
		},
		[]string{colFareAmount, colFareAmount, colTipAmount, colTipPercentage},
	)
	if agg.Err != nil {
		return nil, fmt.Errorf("error aggregating payment breakdown: %w", agg.Err)
	}

	breakdown := make([]models.PaymentBreakdown, 0, agg.Nrow())
	for _, row := range agg.Maps() {
		breakdown = append(breakdown, models.PaymentBreakdown{
			PaymentType:      mapString(row, colPaymentType),
			TripCount:        mapInt(row, colFareAmount+"_COUNT"),
			AvgFare:          mapFloat(row, colFareAmount+"_MEAN"),
			AvgTip:           mapFloat(row, colTipAmount+"_MEAN"),
			AvgTipPercentage: mapFloat(row, colTipPercentage+"_MEAN"),
		})
	}
	sort.Slice(breakdown, func(i, j int) bool { return breakdown[i].PaymentType < breakdown[j].PaymentType })

	return breakdown, nil
}

// BoroughTotals aggregates trip volume, mean fare, and revenue per pickup
// borough, backing the choropleth panel.
func (frame *Frame) BoroughTotals() ([]models.BoroughVolume, error) {
	if frame.df.Nrow() == 0 {
		return []models.BoroughVolume{}, nil
	}

	grouped := frame.df.GroupBy(colPickupBorough)
	if grouped.Err != nil {
		return nil, fmt.Errorf("error grouping by borough: %w", grouped.Err)
	}

	agg := grouped.Aggregation(
		[]dataframe.AggregationType{dataframe.Aggregation_COUNT, dataframe.Aggregation_MEAN, dataframe.Aggregation_SUM},
		[]string{colFareAmount, colFareAmount, colFareAmount},
	)
	if agg.Err != nil {
		return nil, fmt.Errorf("error aggregating borough totals: %w", agg.Err)
	}

	totals := make([]models.BoroughVolume, 0, agg.Nrow())
	for _, row := range agg.Maps() {
		totals = append(totals, models.BoroughVolume{
			Borough:      mapString(row, colPickupBorough),
			TripCount:    mapInt(row, colFareAmount+"_COUNT"),
			AvgFare:      mapFloat(row, colFareAmount+"_MEAN"),
			TotalRevenue: mapFloat(row, colFareAmount+"_SUM"),
		})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Borough < totals[j].Borough })

	return totals, nil
}

// Maps() values arrive as int, float64, or string depending on the column
// type gota inferred; these helpers normalize the numeric cases.

func mapString(row map[string]interface{}, key string) string {
	if value, ok := row[key].(string); ok {
		return value
	}
	return ""
}

func mapInt(row map[string]interface{}, key string) int {
	switch value := row[key].(type) {
	case int:
		return value
	case float64:
		return int(value)
	default:
		return 0
	}
}

func mapFloat(row map[string]interface{}, key string) float64 {
	switch value := row[key].(type) {
	case float64:
		return value
	case int:
		return float64(value)
	default:
		return 0
	}
}
