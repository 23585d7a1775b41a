package solar

import (
	"fmt"
	"math"
)

// Location is an observer position captured at the input boundary.
// Accuracy and Timestamp are optional and zero when not reported.
type Location struct {
	Latitude  float64 // degrees, north positive, [-90, 90]
	Longitude float64 // degrees, east positive, [-180, 180]
	Accuracy  float64 // meters, 0 if unknown
	Timestamp int64   // epoch millis of the fix, 0 if unknown
}

// ValidationError reports a coordinate that failed boundary validation.
type ValidationError struct {
	Field  string  // "latitude" or "longitude"
	Value  float64 // the rejected value
	Reason string  // human-readable description naming the failed bound
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// ValidateCoordinates checks that latitude and longitude are finite and
// within range (boundary inclusive). All downstream solar math assumes
// coordinates have passed this check; callers validate once at the boundary.
func ValidateCoordinates(latitude, longitude float64) error {
	if math.IsNaN(latitude) || math.IsInf(latitude, 0) {
		return &ValidationError{Field: "latitude", Value: latitude, Reason: "must be a finite number"}
	}
	if math.IsNaN(longitude) || math.IsInf(longitude, 0) {
		return &ValidationError{Field: "longitude", Value: longitude, Reason: "must be a finite number"}
	}
	if latitude < -90 || latitude > 90 {
		return &ValidationError{Field: "latitude", Value: latitude, Reason: "latitude must be between -90 and 90"}
	}
	if longitude < -180 || longitude > 180 {
		return &ValidationError{Field: "longitude", Value: longitude, Reason: "longitude must be between -180 and 180"}
	}
	return nil
}

// Validate checks the location's coordinates.
func (l Location) Validate() error {
	return ValidateCoordinates(l.Latitude, l.Longitude)
}
