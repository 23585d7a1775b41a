package transform

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/HarryPehkonen/analemma/internal/table"
)

var (
	testBounds  = DrawingBounds{Width: 300, Height: 200}
	testPadding = Padding{Top: 10, Right: 10, Bottom: 10, Left: 10}
)

func fullTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.NewLoader(nil).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	return tbl
}

func TestToDrawingSpace_WithinPaddedBounds(t *testing.T) {
	pts, err := ToDrawingSpace(fullTable(t).AllPoints(), testBounds, testPadding)
	if err != nil {
		t.Fatalf("ToDrawingSpace() error: %v", err)
	}
	if len(pts) != 366 {
		t.Fatalf("got %d points, want 366", len(pts))
	}

	for _, p := range pts {
		if p.SVGX < testPadding.Left-1e-9 || p.SVGX > testBounds.Width-testPadding.Right+1e-9 {
			t.Errorf("day %d: SVGX %.2f outside padded width", p.Day, p.SVGX)
		}
		if p.SVGY < testPadding.Top-1e-9 || p.SVGY > testBounds.Height-testPadding.Bottom+1e-9 {
			t.Errorf("day %d: SVGY %.2f outside padded height", p.Day, p.SVGY)
		}
		if math.IsNaN(p.SVGX) || math.IsNaN(p.SVGY) {
			t.Fatalf("day %d: NaN coordinate", p.Day)
		}
	}
}

func TestToDrawingSpace_YAxisFlipped(t *testing.T) {
	// Higher declination must land higher on screen (smaller SVGY).
	points := []table.Point{
		{Day: 1, X: 0, Y: -23},
		{Day: 2, X: 5, Y: 0},
		{Day: 3, X: 10, Y: 23},
	}

	pts, err := ToDrawingSpace(points, testBounds, testPadding)
	if err != nil {
		t.Fatalf("ToDrawingSpace() error: %v", err)
	}

	if !(pts[2].SVGY < pts[1].SVGY && pts[1].SVGY < pts[0].SVGY) {
		t.Errorf("SVGY order = %.2f, %.2f, %.2f; want descending with declination",
			pts[0].SVGY, pts[1].SVGY, pts[2].SVGY)
	}
	if pts[0].SVGX >= pts[2].SVGX {
		t.Errorf("SVGX order inverted: %.2f >= %.2f", pts[0].SVGX, pts[2].SVGX)
	}
}

func TestToDrawingSpace_JointBatchKeepsMarkerInside(t *testing.T) {
	// The critical invariant: transforming the full path plus one extra
	// "today" point in a single batch keeps the marker inside the path's
	// own drawing-space bounds, whichever day it is.
	tbl := fullTable(t)

	for _, day := range []int{1, 60, 173, 366} {
		date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day-1)
		today, err := tbl.PointForDate(date)
		if err != nil {
			t.Fatalf("day %d: PointForDate() error: %v", day, err)
		}

		batch := append(tbl.AllPoints(), today)
		pts, err := ToDrawingSpace(batch, testBounds, testPadding)
		if err != nil {
			t.Fatalf("day %d: ToDrawingSpace() error: %v", day, err)
		}

		path, marker := pts[:len(pts)-1], pts[len(pts)-1]
		pb := BoundsOf(path)

		if marker.SVGX < pb.XMin || marker.SVGX > pb.XMax ||
			marker.SVGY < pb.YMin || marker.SVGY > pb.YMax {
			t.Errorf("day %d: marker (%.2f, %.2f) outside path bounds %+v",
				day, marker.SVGX, marker.SVGY, pb)
		}
	}
}

func TestToDrawingSpace_DegenerateInput(t *testing.T) {
	tests := []struct {
		name   string
		points []table.Point
	}{
		{"empty", nil},
		{"single point", []table.Point{{Day: 1, X: 3, Y: 7}}},
		{"zero X span", []table.Point{{Day: 1, X: 3, Y: 1}, {Day: 2, X: 3, Y: 2}}},
		{"zero Y span", []table.Point{{Day: 1, X: 1, Y: 5}, {Day: 2, X: 2, Y: 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToDrawingSpace(tt.points, testBounds, testPadding)
			if !errors.Is(err, ErrDegenerateBounds) {
				t.Errorf("error = %v, want ErrDegenerateBounds", err)
			}
		})
	}
}

func TestApplyHemisphereFlip(t *testing.T) {
	points := []SVGPoint{
		{Day: 1, SVGX: 20, SVGY: 30},
		{Day: 2, SVGX: 40, SVGY: 170},
	}

	south := ApplyHemisphereFlip(points, testBounds.Height, -10)
	for i, p := range south {
		want := testBounds.Height - points[i].SVGY
		if p.SVGY != want {
			t.Errorf("south: point %d SVGY = %.2f, want %.2f", i, p.SVGY, want)
		}
		if p.SVGX != points[i].SVGX {
			t.Errorf("south: point %d SVGX changed", i)
		}
	}

	north := ApplyHemisphereFlip(points, testBounds.Height, 10)
	for i, p := range north {
		if p.SVGY != points[i].SVGY {
			t.Errorf("north: point %d SVGY = %.2f, want unchanged %.2f", i, p.SVGY, points[i].SVGY)
		}
	}

	// Equator is the "look north" case and must not flip.
	equator := ApplyHemisphereFlip(points, testBounds.Height, 0)
	for i, p := range equator {
		if p.SVGY != points[i].SVGY {
			t.Errorf("equator: point %d SVGY = %.2f, want unchanged", i, p.SVGY)
		}
	}

	// Input must never be mutated.
	if points[0].SVGY != 30 {
		t.Error("ApplyHemisphereFlip mutated its input")
	}
}

func TestBuildPathString(t *testing.T) {
	points := []SVGPoint{
		{Day: 3, SVGX: 30, SVGY: 33},
		{Day: 1, SVGX: 10, SVGY: 11},
		{Day: 2, SVGX: 20, SVGY: 22},
	}

	got := BuildPathString(points)
	want := "M 10.00 11.00 L 20.00 22.00 L 30.00 33.00 Z"
	if got != want {
		t.Errorf("BuildPathString() = %q, want %q", got, want)
	}

	if BuildPathString(nil) != "" {
		t.Error("BuildPathString(nil) should be empty")
	}
}

func TestBuildPathString_FullTable(t *testing.T) {
	pts, err := ToDrawingSpace(fullTable(t).AllPoints(), testBounds, testPadding)
	if err != nil {
		t.Fatalf("ToDrawingSpace() error: %v", err)
	}

	path := BuildPathString(pts)
	if !strings.HasPrefix(path, "M ") || !strings.HasSuffix(path, " Z") {
		t.Errorf("path string not a closed polyline: %q...", path[:20])
	}
	if n := strings.Count(path, "L "); n != 365 {
		t.Errorf("path has %d line segments, want 365", n)
	}
	if strings.Contains(path, "NaN") {
		t.Error("path string contains NaN")
	}
}
