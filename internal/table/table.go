// Package table provides the pre-computed analemma lookup table.
//
// The table maps each day of a leap year (1..366) to the sun's equation of
// time and declination at local solar noon. It is generated offline by
// cmd/analemma-gen, shipped as an embedded JSON asset, and read-only at
// runtime.
package table

import (
	_ "embed"
	"fmt"
	"sort"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
)

//go:embed analemma_data.json
var embeddedAsset []byte

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Point is one analemma sample: the sun's offset from mean noon (X) and
// its declination (Y) on a given day of year.
type Point struct {
	Day  int       // day of year, 1..366
	X    float64   // equation of time, minutes
	Y    float64   // solar declination, degrees
	Date time.Time // the requested date, set by PointForDate; zero otherwise
}

// Metadata describes how and when the table asset was generated.
type Metadata struct {
	GeneratedYear int     `json:"generatedYear"`
	IsLeapYear    bool    `json:"isLeapYear"`
	TotalDays     int     `json:"totalDays"`
	XAxis         string  `json:"xAxis"`
	YAxis         string  `json:"yAxis"`
	XMin          float64 `json:"xMin"`
	XMax          float64 `json:"xMax"`
	YMin          float64 `json:"yMin"`
	YMax          float64 `json:"yMax"`
}

// document is the on-disk asset layout.
type document struct {
	Metadata Metadata              `json:"metadata"`
	Data     map[string][2]float64 `json:"data"`
}

// Table is the decoded, day-ordered analemma table.
type Table struct {
	meta   Metadata
	points []Point // ordered by Day, contiguous from 1
}

// NotFoundError reports a day lookup that has no table entry after
// clamping. It indicates a malformed table asset.
type NotFoundError struct {
	Day int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("analemma table has no entry for day %d", e.Day)
}

// Metadata returns the generation metadata.
func (t *Table) Metadata() Metadata {
	return t.meta
}

// Size returns the number of days in the table.
func (t *Table) Size() int {
	return len(t.points)
}

// PointForDate returns the table entry for the calendar day of date,
// stamped with the requested date. The day is clamped to the table size so
// day 366 in a context where the table is shorter cannot index out of
// bounds.
func (t *Table) PointForDate(date time.Time) (Point, error) {
	day := date.YearDay()
	if day > len(t.points) {
		day = len(t.points)
	}
	if day < 1 || day > len(t.points) {
		return Point{}, &NotFoundError{Day: day}
	}

	p := t.points[day-1]
	if p.Day != day {
		// Contiguity broken: the asset is malformed.
		return Point{}, &NotFoundError{Day: day}
	}
	p.Date = date
	return p, nil
}

// AllPoints returns every table entry in day-of-year order. The returned
// slice is a copy; callers may append to it freely.
func (t *Table) AllPoints() []Point {
	out := make([]Point, len(t.points))
	copy(out, t.points)
	return out
}

// decode parses an asset document and checks its shape.
func decode(raw []byte) (*Table, error) {
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse analemma asset: %w", err)
	}
	if len(doc.Data) == 0 {
		return nil, fmt.Errorf("analemma asset has no data entries")
	}

	points := make([]Point, 0, len(doc.Data))
	for key, pair := range doc.Data {
		day, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("analemma asset: bad day key %q", key)
		}
		points = append(points, Point{Day: day, X: pair[0], Y: pair[1]})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Day < points[j].Day })

	// Days must cover 1..N contiguously.
	for i, p := range points {
		if p.Day != i+1 {
			return nil, fmt.Errorf("analemma asset: days not contiguous at entry %d (day %d)", i, p.Day)
		}
	}

	if doc.Metadata.TotalDays != 0 && doc.Metadata.TotalDays != len(points) {
		return nil, fmt.Errorf("analemma asset: metadata says %d days, found %d",
			doc.Metadata.TotalDays, len(points))
	}

	return &Table{meta: doc.Metadata, points: points}, nil
}
