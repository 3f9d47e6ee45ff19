package utils

import (
	"fmt"
	"net/url"
	"strconv"
)

// ParseIntParam retrieves an integer value from the provided URL query parameters.
// If the key is not present, it returns the fallback; if the value is invalid, it
// returns the fallback and updates the fieldErrors map.
// - params: URL query parameters.
// - key: The key to look for in the query parameters.
// - fallback: The value to use when the key is absent or invalid.
// - fieldErrors: A map to collect validation errors for fields.
// Returns:
// - The parsed integer value (or the fallback).
// - The updated fieldErrors map containing any validation errors.
func ParseIntParam(params url.Values, key string, fallback int, fieldErrors map[string][]string) (int, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return fallback, fieldErrors
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return fallback, fieldErrors
	}
	return n, fieldErrors
}

// ParseDateParam retrieves a YYYY-MM-DD date value from the provided URL query
// parameters. Absent keys return the fallback; malformed dates return the
// fallback and update the fieldErrors map.
func ParseDateParam(params url.Values, key, fallback string, fieldErrors map[string][]string) (string, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return fallback, fieldErrors
	}

	if err := ValidateDate(val); err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return fallback, fieldErrors
	}
	return val, fieldErrors
}

// ParseEnumParam retrieves a value from the provided URL query parameters and
// checks it against the allowed set. Absent keys return the fallback; values
// outside the set return the fallback and update the fieldErrors map.
func ParseEnumParam(params url.Values, key string, allowed []string, fallback string, fieldErrors map[string][]string) (string, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return fallback, fieldErrors
	}

	for _, candidate := range allowed {
		if val == candidate {
			return val, fieldErrors
		}
	}

	fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
	return fallback, fieldErrors
}
