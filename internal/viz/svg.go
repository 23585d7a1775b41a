package viz

import (
	"fmt"
	"io"
	"strings"
)

// SVG document styling.
const (
	svgBackground   = "#0b1020"
	svgPathColor    = "#d0c8ff"
	svgMarkerColor  = "#ffd75f"
	svgTextColor    = "#9aa4c0"
	svgExtremeColor = "#ff6b6b"
	svgMarkerRadius = 4.0
	svgCaptionSize  = 12
)

// WriteSVG renders the result as a standalone SVG document: the analemma
// path, today's sun marker, and a viewing-direction caption. An errored
// result renders as a document with only the error text so batch exports
// never produce broken files.
func WriteSVG(w io.Writer, r Result, cfg Config) error {
	width := cfg.Bounds.Width
	height := cfg.Bounds.Height

	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f" xmlns="http://www.w3.org/2000/svg">`,
		width, height, width, height)
	fmt.Fprintf(&b, `<rect width="100%%" height="100%%" fill="%s"/>`, svgBackground)

	if r.Error != "" {
		fmt.Fprintf(&b,
			`<text x="%.1f" y="%.1f" fill="%s" font-size="%d" text-anchor="middle">%s</text>`,
			width/2, height/2, svgExtremeColor, svgCaptionSize, escapeText(r.Error))
		b.WriteString(`</svg>`)
		_, err := io.WriteString(w, b.String())
		return err
	}

	if r.Path != nil {
		fmt.Fprintf(&b,
			`<path d="%s" fill="none" stroke="%s" stroke-width="1.5" stroke-linejoin="round"/>`,
			r.Path.PathString, svgPathColor)
	}

	if r.SunPosition != nil {
		fmt.Fprintf(&b,
			`<circle cx="%.2f" cy="%.2f" r="%.1f" fill="%s" stroke="%s" stroke-width="0.5"/>`,
			r.SunPosition.SVGX, r.SunPosition.SVGY, svgMarkerRadius, svgMarkerColor, svgBackground)
	}

	caption := fmt.Sprintf("%s · solar noon %s UTC",
		r.Date.Format("2006-01-02"), r.NoonUTC.Format("15:04"))
	if r.Direction != nil {
		caption = r.Direction.Label + " · " + caption
	}
	fmt.Fprintf(&b,
		`<text x="%.1f" y="%.1f" fill="%s" font-size="%d" text-anchor="middle">%s</text>`,
		width/2, height-6, svgTextColor, svgCaptionSize, escapeText(caption))

	if r.IsExtreme {
		fmt.Fprintf(&b,
			`<text x="%.1f" y="%.1f" fill="%s" font-size="%d" text-anchor="middle">sun below horizon at noon</text>`,
			width/2, float64(svgCaptionSize)+4, svgExtremeColor, svgCaptionSize)
	}

	b.WriteString(`</svg>`)
	_, err := io.WriteString(w, b.String())
	return err
}

// escapeText escapes the XML special characters that can appear in error
// messages and labels.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
