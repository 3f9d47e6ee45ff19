package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"taxipulse.nyc/internal/analytics"
	"taxipulse.nyc/internal/models"
)

const summarySheet = "Summary"

// WriteWorkbook writes the KPI summary and the five aggregate tables as one
// XLSX workbook, one sheet per table.
func WriteWorkbook(w io.Writer, summary models.Summary, aggregations *analytics.Aggregations) error {
	f := excelize.NewFile()
	defer f.Close() // nolint:errcheck

	// Reuse the default sheet for the summary so the workbook opens on it.
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("error naming summary sheet: %w", err)
	}

	if err := writeSheet(f, summarySheet, []string{"metric", "value"}, summaryRows(summary)); err != nil {
		return err
	}

	daily := make([][]interface{}, 0, len(aggregations.Daily))
	for _, row := range aggregations.Daily {
		daily = append(daily, []interface{}{row.Date, row.TotalFare, row.AvgFare, row.AvgDistance, row.AvgDuration, row.AvgTipPct, row.AvgPassengers, row.TripCount})
	}
	if err := writeSheet(f, "Daily", []string{"date", "total_fare", "avg_fare", "avg_distance", "avg_duration", "avg_tip_pct", "avg_passengers", "trip_count"}, daily); err != nil {
		return err
	}

	hourly := make([][]interface{}, 0, len(aggregations.Hourly))
	for _, row := range aggregations.Hourly {
		hourly = append(hourly, []interface{}{row.DateHour, row.TotalFare, row.AvgFare, row.TripCount})
	}
	if err := writeSheet(f, "Hourly", []string{"date_hour", "total_fare", "avg_fare", "trip_count"}, hourly); err != nil {
		return err
	}

	hourDow := make([][]interface{}, 0, len(aggregations.HourDow))
	for _, row := range aggregations.HourDow {
		hourDow = append(hourDow, []interface{}{row.Hour, row.DayOfWeek, row.TripCount, row.AvgFare})
	}
	if err := writeSheet(f, "Hour by Day", []string{"hour", "day_of_week", "trip_count", "avg_fare"}, hourDow); err != nil {
		return err
	}

	borough := make([][]interface{}, 0, len(aggregations.Borough))
	for _, row := range aggregations.Borough {
		borough = append(borough, []interface{}{row.Borough, row.TotalFare, row.AvgFare, row.AvgDistance, row.TripCount, row.RainyProportion})
	}
	if err := writeSheet(f, "Borough", []string{"borough", "total_fare", "avg_fare", "avg_distance", "trip_count", "rainy_proportion"}, borough); err != nil {
		return err
	}

	payment := make([][]interface{}, 0, len(aggregations.Payment))
	for _, row := range aggregations.Payment {
		payment = append(payment, []interface{}{row.PaymentType, row.TotalFare, row.AvgFare, row.AvgTipPct, row.TripCount})
	}
	if err := writeSheet(f, "Payment", []string{"payment_type", "total_fare", "avg_fare", "avg_tip_pct", "trip_count"}, payment); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("error writing workbook: %w", err)
	}
	return nil
}

func summaryRows(summary models.Summary) [][]interface{} {
	dateRange := ""
	if summary.StartDate != "" {
		dateRange = fmt.Sprintf("%s to %s", summary.StartDate, summary.EndDate)
	}

	return [][]interface{}{
		{"Total Trips", summary.TotalTrips},
		{"Average Fare", summary.AvgFare},
		{"Average Distance (mi)", summary.AvgDistance},
		{"Average Duration (min)", summary.AvgDurationMinutes},
		{"Total Revenue", summary.TotalRevenue},
		{"Date Range", dateRange},
		{"Peak Hour", summary.PeakHour},
		{"Busiest Borough", summary.BusiestBorough},
	}
}

// writeSheet writes a header row followed by the data rows. The sheet is
// created unless it already exists.
func writeSheet(f *excelize.File, sheet string, header []string, rows [][]interface{}) error {
	if sheet != summarySheet {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("error creating sheet %s: %w", sheet, err)
		}
	}

	for i, name := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("error writing header on sheet %s: %w", sheet, err)
		}
	}

	for rowIdx, row := range rows {
		for colIdx, val := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return fmt.Errorf("error writing row %d on sheet %s: %w", rowIdx+1, sheet, err)
			}
		}
	}

	return nil
}
