package models

// TimeSeriesPoint is one day of the daily-volume chart. MovingAvg is the
// 7-day centered moving average of TripCount and is nil on the edge days
// where the window is incomplete.
type TimeSeriesPoint struct {
	Date      string   `json:"date"`
	TripCount int      `json:"tripCount"`
	MovingAvg *float64 `json:"movingAvg"`
}

// HeatmapCell is one (hour, day-of-week) bucket of the temporal heatmap.
type HeatmapCell struct {
	Hour      int     `json:"hour"`
	DayOfWeek string  `json:"dayOfWeek"`
	DowIndex  int     `json:"dowIndex"`
	TripCount int     `json:"tripCount"`
	AvgFare   float64 `json:"avgFare"`
}

// WeatherImpact compares trip metrics between rainy and clear days.
type WeatherImpact struct {
	Weather     string  `json:"weather"`
	TripCount   int     `json:"tripCount"`
	AvgFare     float64 `json:"avgFare"`
	AvgDistance float64 `json:"avgDistance"`
}

// ScatterPoint is one trip of the distance-vs-fare scatter sample.
type ScatterPoint struct {
	TripDistance  float64 `json:"tripDistance"`
	FareAmount    float64 `json:"fareAmount"`
	PaymentType   string  `json:"paymentType"`
	TipPercentage float64 `json:"tipPercentage"`
}

// BoroughFareStats carries the box-plot statistics of fare_amount for one
// pickup borough.
type BoroughFareStats struct {
	Borough   string  `json:"borough"`
	TripCount int     `json:"tripCount"`
	Min       float64 `json:"min"`
	Q1        float64 `json:"q1"`
	Median    float64 `json:"median"`
	Q3        float64 `json:"q3"`
	Max       float64 `json:"max"`
}

// PaymentBreakdown is one payment type's share of the filtered trips.
type PaymentBreakdown struct {
	PaymentType      string  `json:"paymentType"`
	TripCount        int     `json:"tripCount"`
	AvgFare          float64 `json:"avgFare"`
	AvgTip           float64 `json:"avgTip"`
	AvgTipPercentage float64 `json:"avgTipPercentage"`
}

// BoroughVolume backs the pickup-volume choropleth: per-borough totals of
// the filtered trips.
type BoroughVolume struct {
	Borough      string  `json:"borough"`
	TripCount    int     `json:"tripCount"`
	AvgFare      float64 `json:"avgFare"`
	TotalRevenue float64 `json:"totalRevenue"`
}
