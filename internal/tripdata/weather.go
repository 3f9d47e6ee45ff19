package tripdata

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"taxipulse.nyc/internal/models"
)

const weatherSeed = 42

// generateDailyWeather synthesizes one weather row per trip date. Temperatures
// follow a yearly sine curve with gaussian noise; roughly 15% of days are
// rainy with exponentially distributed precipitation. The draw sequence is
// fixed by the seed and the sorted date order, so the same dates always get
// the same weather.
func generateDailyWeather(dates []string) []models.DailyWeather {
	sorted := make([]string, len(dates))
	copy(sorted, dates)
	sort.Strings(sorted)

	r := rand.New(rand.NewSource(weatherSeed))
	weather := make([]models.DailyWeather, 0, len(sorted))

	for _, date := range sorted {
		day, err := time.Parse(models.DateLayout, date)
		if err != nil {
			continue
		}

		base := 35 + 30*math.Sin(2*math.Pi*float64(day.YearDay())/365)
		temperature := round1(base + r.NormFloat64()*5)
		isRainy := r.Float64() < 0.15

		var precipitation float64
		if isRainy {
			precipitation = round2(r.ExpFloat64() * 0.3)
		}

		weather = append(weather, models.DailyWeather{
			Date:                date,
			Temperature:         temperature,
			IsRainy:             isRainy,
			PrecipitationInches: precipitation,
		})
	}

	return weather
}

// distinctTripDates returns the unique trip dates in ascending order.
func distinctTripDates(trips []models.Trip) []string {
	seen := make(map[string]struct{})
	var dates []string
	for _, trip := range trips {
		if _, ok := seen[trip.Date]; !ok {
			seen[trip.Date] = struct{}{}
			dates = append(dates, trip.Date)
		}
	}
	sort.Strings(dates)
	return dates
}

// applyWeather joins the per-date weather values onto each trip.
func applyWeather(trips []models.Trip, weather []models.DailyWeather) {
	byDate := make(map[string]models.DailyWeather, len(weather))
	for _, w := range weather {
		byDate[w.Date] = w
	}

	for i := range trips {
		if w, ok := byDate[trips[i].Date]; ok {
			trips[i].Temperature = w.Temperature
			trips[i].IsRainy = w.IsRainy
			trips[i].PrecipitationInches = w.PrecipitationInches
		}
	}
}
