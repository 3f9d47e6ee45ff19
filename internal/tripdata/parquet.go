package tripdata

import (
	"fmt"
	"time"

	"github.com/parquet-go/parquet-go"
)

// rawTripRecord is the subset of TLC yellow-cab parquet columns the dashboard
// consumes. Every field is optional: monthly files drift in schema, and
// implausible values get dropped during cleaning anyway. passenger_count is a
// floating-point column in recent files.
type rawTripRecord struct {
	PickupTime     time.Time `parquet:"tpep_pickup_datetime,optional"`
	DropoffTime    time.Time `parquet:"tpep_dropoff_datetime,optional"`
	PassengerCount float64   `parquet:"passenger_count,optional"`
	TripDistance   float64   `parquet:"trip_distance,optional"`
	PULocationID   int64     `parquet:"PULocationID,optional"`
	DOLocationID   int64     `parquet:"DOLocationID,optional"`
	PaymentType    int64     `parquet:"payment_type,optional"`
	FareAmount     float64   `parquet:"fare_amount,optional"`
	TipAmount      float64   `parquet:"tip_amount,optional"`
	TotalAmount    float64   `parquet:"total_amount,optional"`
}

func readTripRecords(path string) ([]rawTripRecord, error) {
	records, err := parquet.ReadFile[rawTripRecord](path)
	if err != nil {
		return nil, fmt.Errorf("error parsing trip parquet file %s: %w", path, err)
	}
	return records, nil
}
