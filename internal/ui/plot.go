package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/HarryPehkonen/analemma/internal/viz"
)

const (
	glyphPath   = '·'
	glyphMarker = '◉'
)

var (
	pathStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#d0c8ff"))
	markerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
)

// renderPlot draws the assembled analemma into a width x height cell grid.
// Drawing-space coordinates are rescaled to the grid from the path's own
// bounds, so the figure fills the available terminal area at any size.
func renderPlot(res viz.Result, width, height int) string {
	if width < 2 || height < 2 {
		return ""
	}

	if res.Error != "" || res.Path == nil {
		return strings.Repeat("\n", height/2) + lipgloss.PlaceHorizontal(width, lipgloss.Center, "no data")
	}

	grid := make([][]rune, height)
	for y := range grid {
		grid[y] = make([]rune, width)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	b := res.Path.Bounds
	spanX := b.XMax - b.XMin
	spanY := b.YMax - b.YMin
	if spanX <= 0 || spanY <= 0 {
		return ""
	}

	cell := func(svgX, svgY float64) (int, int, bool) {
		col := int((svgX - b.XMin) / spanX * float64(width-1))
		row := int((svgY - b.YMin) / spanY * float64(height-1))
		if col < 0 || col >= width || row < 0 || row >= height {
			return 0, 0, false
		}
		return col, row, true
	}

	for _, p := range res.Path.Coordinates {
		if col, row, ok := cell(p.SVGX, p.SVGY); ok {
			grid[row][col] = glyphPath
		}
	}

	markerCol, markerRow := -1, -1
	if sp := res.SunPosition; sp != nil {
		if col, row, ok := cell(sp.SVGX, sp.SVGY); ok {
			grid[row][col] = glyphMarker
			markerCol, markerRow = col, row
		}
	}

	lines := make([]string, height)
	for y, rowRunes := range grid {
		var sb strings.Builder
		for x, r := range rowRunes {
			switch {
			case y == markerRow && x == markerCol:
				sb.WriteString(markerStyle.Render(string(r)))
			case r == glyphPath:
				sb.WriteString(pathStyle.Render(string(r)))
			default:
				sb.WriteRune(r)
			}
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
