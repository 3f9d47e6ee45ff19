package analytics

import (
	"sort"
	"strconv"

	"taxipulse.nyc/internal/models"
)

// Summary computes the KPI metrics of the filtered frame. An empty frame
// yields zero values rather than NaN so the JSON stays clean.
func (frame *Frame) Summary() models.Summary {
	if frame.df.Nrow() == 0 {
		return models.NewSummary(0, 0, 0, 0, 0, "", "", 0, models.UnknownValue)
	}

	dates := frame.df.Col(colDate).Records()
	minDate, maxDate := dates[0], dates[0]
	for _, date := range dates {
		if date < minDate {
			minDate = date
		}
		if date > maxDate {
			maxDate = date
		}
	}

	return models.NewSummary(
		frame.df.Nrow(),
		frame.df.Col(colFareAmount).Mean(),
		frame.df.Col(colTripDistance).Mean(),
		frame.df.Col(colDuration).Mean(),
		frame.df.Col(colFareAmount).Sum(),
		minDate,
		maxDate,
		frame.peakHour(),
		frame.busiestBorough(),
	)
}

// peakHour is the modal pickup hour; ties resolve to the smaller hour.
func (frame *Frame) peakHour() int {
	counts := make(map[int]int)
	for _, record := range frame.df.Col(colHour).Records() {
		hour, err := strconv.Atoi(record)
		if err != nil {
			continue
		}
		counts[hour]++
	}
	return intMode(counts)
}

// busiestBorough is the modal pickup borough; ties resolve to the
// lexicographically smaller name.
func (frame *Frame) busiestBorough() string {
	counts := make(map[string]int)
	for _, borough := range frame.df.Col(colPickupBorough).Records() {
		counts[borough]++
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	best := models.UnknownValue
	bestCount := 0
	for _, name := range names {
		if counts[name] > bestCount {
			best = name
			bestCount = counts[name]
		}
	}
	return best
}

func intMode(counts map[int]int) int {
	keys := make([]int, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Ints(keys)

	best := 0
	bestCount := 0
	for _, key := range keys {
		if counts[key] > bestCount {
			best = key
			bestCount = counts[key]
		}
	}
	return best
}
