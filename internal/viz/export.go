package viz

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/HarryPehkonen/analemma/internal/solar"
)

// WriteJSON writes the result as indented JSON to the given writer.
func (r Result) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteSummary writes a text report of the result for a location.
func WriteSummary(w io.Writer, loc *solar.Location, r Result) {
	fmt.Fprintf(w, "Analemma @ %s\n", r.Date.Format("2006-01-02"))
	fmt.Fprintln(w, strings.Repeat("─", 52))

	if r.Error != "" {
		fmt.Fprintf(w, "Error: %s\n", r.Error)
		return
	}

	fmt.Fprintf(w, "%-22s %.4f°, %.4f°\n", "Location", loc.Latitude, loc.Longitude)
	fmt.Fprintf(w, "%-22s %s\n", "Solar noon (UTC)", r.NoonUTC.Format("15:04"))
	fmt.Fprintf(w, "%-22s %.1f°\n", "Elevation at noon", r.Elevation)

	if r.SunPosition != nil {
		fmt.Fprintf(w, "%-22s day %d: EoT %+.2f min, dec %+.2f°\n",
			"Today on the curve", r.SunPosition.Day, r.SunPosition.X, r.SunPosition.Y)
	}
	if r.Direction != nil {
		fmt.Fprintf(w, "%-22s %s (rotate %d°)\n", "Viewing direction",
			r.Direction.Label, r.Direction.Rotation)
	}
	if r.IsExtreme {
		fmt.Fprintf(w, "%-22s sun below horizon at noon (polar night)\n", "Note")
	}
	if r.Path != nil {
		fmt.Fprintf(w, "%-22s %d points, bounds x[%.1f..%.1f] y[%.1f..%.1f]\n",
			"Path", len(r.Path.Coordinates),
			r.Path.Bounds.XMin, r.Path.Bounds.XMax,
			r.Path.Bounds.YMin, r.Path.Bounds.YMax)
	}
}
