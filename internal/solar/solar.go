// Package solar provides closed-form solar position approximations.
package solar

import (
	"math"
	"time"
)

// DayOfYear returns the 1-based day of year for t, computed as the
// calendar-day difference from Dec 31 of the previous year so it stays
// correct across leap years (1..366).
func DayOfYear(t time.Time) int {
	return t.YearDay()
}

// Declination calculates the solar declination in degrees for a day of year.
// Uses a single-harmonic approximation without higher-order correction terms.
// Accuracy: ~0.2 degrees, sufficient for analemma display.
func Declination(dayOfYear int) float64 {
	d := float64(dayOfYear)
	inner := 0.98563*(d-173) + 1.914*math.Sin(degToRad(0.98563*(d-2)))
	return radToDeg(math.Asin(0.39795 * math.Cos(degToRad(inner))))
}

// EquationOfTime calculates the equation of time in minutes for a day of
// year: the difference between apparent and mean solar time. Positive means
// the sundial runs ahead of the clock. Range is roughly -15 to +17 minutes.
func EquationOfTime(dayOfYear int) float64 {
	b := degToRad(360 * (float64(dayOfYear) - 81) / 365)
	return 9.87*math.Sin(2*b) - 7.53*math.Cos(b) - 1.5*math.Sin(b)
}

// NoonUTC returns the instant of local solar noon (sun crossing the
// meridian) for the given longitude on the calendar date of t.
//
// Longitude alone determines the offset from 12:00 UTC; no timezone
// database is consulted. The fractional hour is split as floor-hour plus
// fractional minutes, with seconds zeroed.
func NoonUTC(longitude float64, t time.Time) time.Time {
	t = t.UTC()
	hours := 12 - longitude/15 - EquationOfTime(DayOfYear(t))/60

	h := math.Floor(hours)
	m := math.Floor((hours - h) * 60)

	return time.Date(t.Year(), t.Month(), t.Day(), int(h), int(m), 0, 0, time.UTC)
}

// ElevationAtNoon returns the sun's elevation above the horizon in degrees
// at local solar noon for the given latitude on the date of t.
func ElevationAtNoon(latitude float64, t time.Time) float64 {
	return 90 - math.Abs(latitude-Declination(DayOfYear(t)))
}

// BelowHorizonAtNoon reports whether the sun stays below the horizon even
// at solar noon (polar night at extreme latitudes).
func BelowHorizonAtNoon(latitude float64, t time.Time) bool {
	return ElevationAtNoon(latitude, t) < 0
}

// Direction is a cardinal viewing direction for the analemma.
type Direction string

const (
	DirectionNorth Direction = "N"
	DirectionSouth Direction = "S"
)

// ViewingDirection returns which way an observer faces to see the noon
// analemma. Northern-hemisphere observers look south; southern-hemisphere
// observers look north. The equator is the north-facing case.
func ViewingDirection(latitude float64) Direction {
	if latitude > 0 {
		return DirectionSouth
	}
	return DirectionNorth
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
