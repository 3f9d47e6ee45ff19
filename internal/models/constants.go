package models

// Common constants used across the application
const (
	// UnknownValue is the fallback value when a zone lookup misses or a
	// payment code has no mapping
	UnknownValue = "Unknown"

	// DateLayout is the wire format for calendar dates in filters, trips,
	// and weather records
	DateLayout = "2006-01-02"
)

// PaymentTypeNames maps TLC payment codes to display names. Codes outside
// the map fall back to UnknownValue.
var PaymentTypeNames = map[int64]string{
	1: "Credit Card",
	2: "Cash",
	3: "No Charge",
	4: "Dispute",
	5: "Unknown",
}

// PaymentTypeName returns the display name for a TLC payment code.
func PaymentTypeName(code int64) string {
	if name, ok := PaymentTypeNames[code]; ok {
		return name
	}
	return UnknownValue
}
