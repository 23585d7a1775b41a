// Package transform maps analemma data points into a fixed drawing space.
//
// All logically related points must go through ToDrawingSpace in a single
// batch: the scale factors derive from the data bounds of the whole input,
// so transforming a marker separately from its reference path would scale
// the two against different bounds and silently misplace the marker.
package transform

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/HarryPehkonen/analemma/internal/table"
)

// ErrDegenerateBounds reports input whose data bounds span zero on an
// axis, which would make the scale factor non-finite.
var ErrDegenerateBounds = errors.New("degenerate data bounds")

// DrawingBounds is the size of the target drawing space.
type DrawingBounds struct {
	Width  float64
	Height float64
}

// Padding is the inset between the drawing edge and the plotted data.
type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// DataBounds is the axis-aligned extent of a point set.
type DataBounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// SVGPoint is a data point with its position in drawing space. Produced
// fresh by each ToDrawingSpace call and never cached.
type SVGPoint struct {
	Day  int     // day of year
	X    float64 // equation of time, minutes
	Y    float64 // declination, degrees
	SVGX float64 // drawing-space X
	SVGY float64 // drawing-space Y, smaller is higher on screen
}

// ToDrawingSpace scales a batch of points jointly into the drawing space.
// The Y axis is flipped so higher declination lands at smaller SVGY.
//
// Degenerate input (zero X or Y span, e.g. a single point) fails with
// ErrDegenerateBounds rather than emitting NaN coordinates.
func ToDrawingSpace(points []table.Point, bounds DrawingBounds, pad Padding) ([]SVGPoint, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no points", ErrDegenerateBounds)
	}

	db := dataBoundsOf(points)
	if db.XMax == db.XMin {
		return nil, fmt.Errorf("%w: zero X span at %.2f", ErrDegenerateBounds, db.XMin)
	}
	if db.YMax == db.YMin {
		return nil, fmt.Errorf("%w: zero Y span at %.2f", ErrDegenerateBounds, db.YMin)
	}

	scaleX := (bounds.Width - pad.Left - pad.Right) / (db.XMax - db.XMin)
	scaleY := (bounds.Height - pad.Top - pad.Bottom) / (db.YMax - db.YMin)
	if !isFinite(scaleX) || !isFinite(scaleY) {
		return nil, fmt.Errorf("%w: non-finite scale factors", ErrDegenerateBounds)
	}

	out := make([]SVGPoint, len(points))
	for i, p := range points {
		out[i] = SVGPoint{
			Day:  p.Day,
			X:    p.X,
			Y:    p.Y,
			SVGX: pad.Left + (p.X-db.XMin)*scaleX,
			SVGY: pad.Top + (db.YMax-p.Y)*scaleY,
		}
	}
	return out, nil
}

// ApplyHemisphereFlip mirrors points vertically for southern-hemisphere
// observers, who see the analemma upside down relative to the tabulated
// orientation. Latitude 0 is not flipped (the equator looks north but the
// tabulated orientation already matches).
func ApplyHemisphereFlip(points []SVGPoint, drawingHeight float64, latitude float64) []SVGPoint {
	out := make([]SVGPoint, len(points))
	copy(out, points)
	if latitude >= 0 {
		return out
	}
	for i := range out {
		out[i].SVGY = drawingHeight - out[i].SVGY
	}
	return out
}

// BuildPathString renders points as a closed SVG polyline, ordered by day
// of year. Straight segments between daily samples; no curve fitting.
func BuildPathString(points []SVGPoint) string {
	if len(points) == 0 {
		return ""
	}

	ordered := make([]SVGPoint, len(points))
	copy(ordered, points)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Day < ordered[j].Day })

	var b strings.Builder
	fmt.Fprintf(&b, "M %.2f %.2f", ordered[0].SVGX, ordered[0].SVGY)
	for _, p := range ordered[1:] {
		fmt.Fprintf(&b, " L %.2f %.2f", p.SVGX, p.SVGY)
	}
	b.WriteString(" Z")
	return b.String()
}

// BoundsOf returns the drawing-space extent of a transformed point set.
func BoundsOf(points []SVGPoint) DataBounds {
	if len(points) == 0 {
		return DataBounds{}
	}
	db := DataBounds{
		XMin: points[0].SVGX, XMax: points[0].SVGX,
		YMin: points[0].SVGY, YMax: points[0].SVGY,
	}
	for _, p := range points[1:] {
		db.XMin = math.Min(db.XMin, p.SVGX)
		db.XMax = math.Max(db.XMax, p.SVGX)
		db.YMin = math.Min(db.YMin, p.SVGY)
		db.YMax = math.Max(db.YMax, p.SVGY)
	}
	return db
}

// dataBoundsOf computes the extent of raw data points in one pass.
func dataBoundsOf(points []table.Point) DataBounds {
	db := DataBounds{
		XMin: points[0].X, XMax: points[0].X,
		YMin: points[0].Y, YMax: points[0].Y,
	}
	for _, p := range points[1:] {
		db.XMin = math.Min(db.XMin, p.X)
		db.XMax = math.Max(db.XMax, p.X)
		db.YMin = math.Min(db.YMin, p.Y)
		db.YMax = math.Max(db.YMax, p.Y)
	}
	return db
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
