package models

// DashboardSnapshot is the one-pass payload behind the linked dashboard
// refresh: every chart's data for a single filter evaluation, so one request
// repaints all panels consistently.
type DashboardSnapshot struct {
	Summary              Summary            `json:"summary"`
	TimeSeries           []TimeSeriesPoint  `json:"timeSeries"`
	Heatmap              []HeatmapCell      `json:"heatmap"`
	WeatherImpact        []WeatherImpact    `json:"weatherImpact"`
	Scatter              []ScatterPoint     `json:"scatter"`
	ScatterLimitExceeded bool               `json:"scatterLimitExceeded"`
	Boroughs             []BoroughFareStats `json:"boroughs"`
	Choropleth           []BoroughVolume    `json:"choropleth"`
	Payments             []PaymentBreakdown `json:"payments"`
}
