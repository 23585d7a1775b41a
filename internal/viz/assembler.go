// Package viz assembles renderable analemma descriptions for a location
// and date.
package viz

import (
	"context"
	"time"

	"github.com/HarryPehkonen/analemma/internal/logging"
	"github.com/HarryPehkonen/analemma/internal/solar"
	"github.com/HarryPehkonen/analemma/internal/table"
	"github.com/HarryPehkonen/analemma/internal/transform"
)

// Path is the drawn analemma curve in drawing space.
type Path struct {
	PathString  string               `json:"path_string"`
	Coordinates []transform.SVGPoint `json:"coordinates"`
	Bounds      transform.DataBounds `json:"bounds"`
}

// DirectionInfo tells the renderer which way the observer faces.
type DirectionInfo struct {
	Direction solar.Direction `json:"direction"` // "N" or "S"
	Rotation  int             `json:"rotation"`  // 0 or 180 degrees
	Label     string          `json:"label"`     // e.g. "Looking south"
}

// Result is the complete renderable description for one (location, date)
// request. On failure, Error is set and all position fields are nil; the
// assembler never lets an error escape as anything else.
type Result struct {
	Date        time.Time           `json:"date"`
	Path        *Path               `json:"path"`
	SunPosition *transform.SVGPoint `json:"sun_position"`
	Direction   *DirectionInfo      `json:"direction"`
	IsExtreme   bool                `json:"is_extreme"`
	NoonUTC     time.Time           `json:"noon_utc"`
	Elevation   float64             `json:"elevation_at_noon"`
	Error       string              `json:"error,omitempty"`
}

// Config sizes the drawing space the assembler targets.
type Config struct {
	Bounds  transform.DrawingBounds
	Padding transform.Padding
}

// DefaultConfig matches the dimensions the shipped renderers expect.
func DefaultConfig() Config {
	return Config{
		Bounds:  transform.DrawingBounds{Width: 300, Height: 400},
		Padding: transform.Padding{Top: 20, Right: 20, Bottom: 20, Left: 20},
	}
}

// Assembler orchestrates the solar model, analemma table and coordinate
// transform into a Result. It holds no per-request state.
type Assembler struct {
	loader *table.Loader
	cfg    Config
	logger *logging.Logger
}

// NewAssembler creates an assembler over the given table loader.
// A nil logger discards output.
func NewAssembler(loader *table.Loader, cfg Config, logger *logging.Logger) *Assembler {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Assembler{loader: loader, cfg: cfg, logger: logger.With("viz")}
}

// Assemble produces the renderable description for loc on date. A nil
// location and any internal failure both yield a structured Result with
// Error set; no error ever propagates to the caller.
func (a *Assembler) Assemble(ctx context.Context, loc *solar.Location, date time.Time) Result {
	if loc == nil {
		return Result{Date: date, Error: ErrNoLocation}
	}
	if err := loc.Validate(); err != nil {
		a.logger.Error("rejected location: %v", err)
		return Result{Date: date, Error: err.Error()}
	}

	res := Result{
		Date:      date,
		IsExtreme: solar.BelowHorizonAtNoon(loc.Latitude, date),
		NoonUTC:   solar.NoonUTC(loc.Longitude, date),
		Elevation: solar.ElevationAtNoon(loc.Latitude, date),
	}

	tbl, err := a.loader.Load(ctx)
	if err != nil {
		a.logger.Error("table load: %v", err)
		return Result{Date: date, Error: err.Error()}
	}

	today, err := tbl.PointForDate(date)
	if err != nil {
		a.logger.Error("today lookup: %v", err)
		return Result{Date: date, Error: err.Error()}
	}

	// One batch for path and marker: a separate transform call would scale
	// the marker against different data bounds and drift it off the curve.
	batch := append(tbl.AllPoints(), today)
	pts, err := transform.ToDrawingSpace(batch, a.cfg.Bounds, a.cfg.Padding)
	if err != nil {
		a.logger.Error("transform: %v", err)
		return Result{Date: date, Error: err.Error()}
	}

	pathPts := transform.ApplyHemisphereFlip(pts[:len(pts)-1], a.cfg.Bounds.Height, loc.Latitude)
	marker := transform.ApplyHemisphereFlip(pts[len(pts)-1:], a.cfg.Bounds.Height, loc.Latitude)[0]

	res.Path = &Path{
		PathString:  transform.BuildPathString(pathPts),
		Coordinates: pathPts,
		Bounds:      transform.BoundsOf(pathPts),
	}
	res.SunPosition = &marker
	res.Direction = directionFor(loc.Latitude)

	a.logger.Debug("assembled day %d at (%.4f, %.4f), extreme=%v",
		today.Day, loc.Latitude, loc.Longitude, res.IsExtreme)
	return res
}

// directionFor builds the viewing-direction hint for a latitude.
func directionFor(latitude float64) *DirectionInfo {
	dir := solar.ViewingDirection(latitude)

	info := &DirectionInfo{Direction: dir, Label: "Looking north"}
	if dir == solar.DirectionSouth {
		info.Label = "Looking south"
	}
	if latitude < 0 {
		info.Rotation = 180
	}
	return info
}

// ErrNoLocation is the Error value of a Result assembled without a location.
const ErrNoLocation = "no location"
