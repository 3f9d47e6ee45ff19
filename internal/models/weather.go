package models

// DailyWeather is the synthetic weather record joined onto every trip whose
// pickup falls on Date.
type DailyWeather struct {
	Date                string  `json:"date"`
	Temperature         float64 `json:"temperature"`
	IsRainy             bool    `json:"isRainy"`
	PrecipitationInches float64 `json:"precipitationInches"`
}
