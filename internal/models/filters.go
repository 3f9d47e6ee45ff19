package models

// FilterOptions describes the filter controls to the dashboard: value
// bounds, allowed options, and the defaults applied when a request omits a
// parameter.
type FilterOptions struct {
	MinDate          string   `json:"minDate"`
	MaxDate          string   `json:"maxDate"`
	DefaultStartDate string   `json:"defaultStartDate"`
	DefaultEndDate   string   `json:"defaultEndDate"`
	DefaultHourMin   int      `json:"defaultHourMin"`
	DefaultHourMax   int      `json:"defaultHourMax"`
	PaymentTypes     []string `json:"paymentTypes"`
	WeatherOptions   []string `json:"weatherOptions"`
	DayTypeOptions   []string `json:"dayTypeOptions"`
}
