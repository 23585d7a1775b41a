package table

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/HarryPehkonen/analemma/internal/solar"
)

// Generate computes a fresh analemma table for the given year using the
// solar model formulas. The shipped asset is built from a leap year so all
// 366 day keys exist; generating from a non-leap year yields 365 entries.
func Generate(year int) *Table {
	days := 365
	if isLeap(year) {
		days = 366
	}

	points := make([]Point, days)
	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := math.Inf(1), math.Inf(-1)

	for d := 1; d <= days; d++ {
		x := round2(solar.EquationOfTime(d))
		y := round2(solar.Declination(d))
		points[d-1] = Point{Day: d, X: x, Y: y}

		xMin, xMax = math.Min(xMin, x), math.Max(xMax, x)
		yMin, yMax = math.Min(yMin, y), math.Max(yMax, y)
	}

	return &Table{
		meta: Metadata{
			GeneratedYear: year,
			IsLeapYear:    days == 366,
			TotalDays:     days,
			XAxis:         "equationOfTimeMinutes",
			YAxis:         "declinationDegrees",
			XMin:          xMin,
			XMax:          xMax,
			YMin:          yMin,
			YMax:          yMax,
		},
		points: points,
	}
}

// WriteAsset serializes the table in the asset document layout.
func (t *Table) WriteAsset(w io.Writer) error {
	doc := document{
		Metadata: t.meta,
		Data:     make(map[string][2]float64, len(t.points)),
	}
	for _, p := range t.points {
		doc.Data[fmt.Sprintf("%d", p.Day)] = [2]float64{p.X, p.Y}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	return enc.Encode(&doc)
}

func isLeap(year int) bool {
	return time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC).YearDay() == 366
}

// round2 rounds to 2 decimal places, matching the shipped asset precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
