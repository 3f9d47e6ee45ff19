package utils

import (
	"errors"
	"regexp"
	"time"
)

// Allow alphanumeric, underscore, hyphen, dot - common in table and zone IDs
var validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// ValidateID validates that an ID is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidateDate validates date strings in YYYY-MM-DD format
func ValidateDate(date string) error {
	// Empty dates are allowed (will default to the dataset bounds)
	if date == "" {
		return nil
	}

	_, err := time.Parse("2006-01-02", date)
	if err != nil {
		return errors.New("invalid date format, use YYYY-MM-DD")
	}

	return nil
}

// ValidateHour validates hour-of-day values
func ValidateHour(hour int) error {
	if hour < 0 || hour > 23 {
		return errors.New("hour must be between 0 and 23")
	}
	return nil
}

// ValidateDateRange validates that a start date does not fall after an end
// date. Empty values are allowed; malformed values are reported by
// ValidateDate and ignored here.
func ValidateDateRange(start, end string) error {
	if start == "" || end == "" {
		return nil
	}

	startTime, err := time.Parse("2006-01-02", start)
	if err != nil {
		return nil
	}
	endTime, err := time.Parse("2006-01-02", end)
	if err != nil {
		return nil
	}

	if startTime.After(endTime) {
		return errors.New("start date must not be after end date")
	}
	return nil
}

// ValidateHourRange validates that an hour window is ordered.
func ValidateHourRange(min, max int) error {
	if min > max {
		return errors.New("minimum hour must not be after maximum hour")
	}
	return nil
}
