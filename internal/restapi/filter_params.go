package restapi

import (
	"net/http"

	"taxipulse.nyc/internal/analytics"
	"taxipulse.nyc/internal/utils"
)

// parseFilter builds the analytics filter from the request's query
// parameters, starting from the dataset defaults. An empty fieldErrors map
// means the filter is usable.
func (api *RestAPI) parseFilter(r *http.Request) (analytics.Filter, map[string][]string) {
	params := r.URL.Query()
	dataset := api.TripManager.Dataset()

	filter := dataset.DefaultFilter()
	fieldErrors := make(map[string][]string)

	filter.StartDate, fieldErrors = utils.ParseDateParam(params, "startDate", filter.StartDate, fieldErrors)
	filter.EndDate, fieldErrors = utils.ParseDateParam(params, "endDate", filter.EndDate, fieldErrors)
	filter.HourMin, fieldErrors = utils.ParseIntParam(params, "hourMin", filter.HourMin, fieldErrors)
	filter.HourMax, fieldErrors = utils.ParseIntParam(params, "hourMax", filter.HourMax, fieldErrors)

	paymentOptions := append([]string{analytics.FilterAll}, dataset.PaymentTypes()...)
	filter.PaymentType, fieldErrors = utils.ParseEnumParam(params, "paymentType", paymentOptions, filter.PaymentType, fieldErrors)

	filter.Weather, fieldErrors = utils.ParseEnumParam(params, "weather",
		[]string{analytics.FilterAll, analytics.WeatherRainy, analytics.WeatherClear}, filter.Weather, fieldErrors)
	filter.DayType, fieldErrors = utils.ParseEnumParam(params, "dayType",
		[]string{analytics.FilterAll, analytics.DayTypeWeekday, analytics.DayTypeWeekend}, filter.DayType, fieldErrors)

	if err := utils.ValidateHour(filter.HourMin); err != nil {
		fieldErrors["hourMin"] = append(fieldErrors["hourMin"], err.Error())
	}
	if err := utils.ValidateHour(filter.HourMax); err != nil {
		fieldErrors["hourMax"] = append(fieldErrors["hourMax"], err.Error())
	}
	if err := utils.ValidateHourRange(filter.HourMin, filter.HourMax); err != nil {
		fieldErrors["hourMin"] = append(fieldErrors["hourMin"], err.Error())
	}
	if err := utils.ValidateDateRange(filter.StartDate, filter.EndDate); err != nil {
		fieldErrors["startDate"] = append(fieldErrors["startDate"], err.Error())
	}

	return filter, fieldErrors
}

// filteredFrame parses the request's filter and applies it, sending the 400
// validation response itself when the query is malformed. The bool reports
// whether the caller should continue.
func (api *RestAPI) filteredFrame(w http.ResponseWriter, r *http.Request) (*analytics.Frame, bool) {
	filter, fieldErrors := api.parseFilter(r)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return nil, false
	}
	return api.TripManager.Dataset().ApplyFilter(filter), true
}
