// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/HarryPehkonen/analemma/internal/config"
	"github.com/HarryPehkonen/analemma/internal/solar"
	"github.com/HarryPehkonen/analemma/internal/version"
	"github.com/HarryPehkonen/analemma/internal/viz"
)

const infoPanelWidth = 34

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	warnStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)
)

// Model is the root Bubble Tea model.
type Model struct {
	assembler *viz.Assembler
	cfg       *config.Config

	width  int
	height int
	ready  bool

	date      time.Time
	presetIdx int

	result viz.Result
}

// New creates the root model positioned on today's date and the configured
// default location.
func New(assembler *viz.Assembler, cfg *config.Config) Model {
	m := Model{
		assembler: assembler,
		cfg:       cfg,
		date:      time.Now().UTC().Truncate(24 * time.Hour),
	}
	for i := range cfg.Locations {
		if cfg.Locations[i].Name == cfg.Default {
			m.presetIdx = i
			break
		}
	}
	return m.recompute()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// preset returns the currently selected location preset.
func (m Model) preset() *config.Preset {
	if len(m.cfg.Locations) == 0 {
		return nil
	}
	return &m.cfg.Locations[m.presetIdx%len(m.cfg.Locations)]
}

// recompute reassembles the visualization for the current date and preset.
func (m Model) recompute() Model {
	var loc *solar.Location
	if p := m.preset(); p != nil {
		l := p.Location()
		loc = &l
	}
	m.result = m.assembler.Assemble(context.Background(), loc, m.date)
	return m
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.date = m.date.AddDate(0, 0, -1)
			return m.recompute(), nil
		case "right", "l":
			m.date = m.date.AddDate(0, 0, 1)
			return m.recompute(), nil
		case "up", "k":
			m.date = m.date.AddDate(0, 0, 7)
			return m.recompute(), nil
		case "down", "j":
			m.date = m.date.AddDate(0, 0, -7)
			return m.recompute(), nil
		case "t":
			m.date = time.Now().UTC().Truncate(24 * time.Hour)
			return m.recompute(), nil
		case "tab":
			if n := len(m.cfg.Locations); n > 0 {
				m.presetIdx = (m.presetIdx + 1) % n
			}
			return m.recompute(), nil
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	plotW := m.width - infoPanelWidth - 6
	plotH := m.height - 4
	if plotW < 20 || plotH < 10 {
		return "Terminal too small for the analemma view."
	}

	plot := panelStyle.Render(renderPlot(m.result, plotW, plotH))
	info := panelStyle.Width(infoPanelWidth).Render(m.infoPanel())

	body := lipgloss.JoinHorizontal(lipgloss.Top, plot, info)
	help := helpStyle.Render("←/→ day · ↑/↓ week · t today · tab location · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, body, help)
}

// infoPanel renders the right-hand details column.
func (m Model) infoPanel() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Analemma "+version.Version) + "\n\n")

	if p := m.preset(); p != nil {
		b.WriteString(labelStyle.Render("Location  ") +
			valueStyle.Render(p.Name) + "\n")
		b.WriteString(labelStyle.Render("Lat/Lon   ") +
			valueStyle.Render(fmt.Sprintf("%.4f°, %.4f°", p.Latitude, p.Longitude)) + "\n")
	}
	b.WriteString(labelStyle.Render("Date      ") +
		valueStyle.Render(m.date.Format("2006-01-02")) + "\n\n")

	r := m.result
	if r.Error != "" {
		b.WriteString(warnStyle.Render("Error: "+r.Error) + "\n")
		return b.String()
	}

	b.WriteString(labelStyle.Render("Noon UTC  ") +
		valueStyle.Render(r.NoonUTC.Format("15:04")) + "\n")
	b.WriteString(labelStyle.Render("Elevation ") +
		valueStyle.Render(fmt.Sprintf("%.1f°", r.Elevation)) + "\n")

	if sp := r.SunPosition; sp != nil {
		b.WriteString(labelStyle.Render("EoT       ") +
			valueStyle.Render(fmt.Sprintf("%+.2f min", sp.X)) + "\n")
		b.WriteString(labelStyle.Render("Declin.   ") +
			valueStyle.Render(fmt.Sprintf("%+.2f°", sp.Y)) + "\n")
	}
	if d := r.Direction; d != nil {
		b.WriteString(labelStyle.Render("Facing    ") +
			valueStyle.Render(d.Label) + "\n")
	}
	if r.IsExtreme {
		b.WriteString("\n" + warnStyle.Render("Polar night: sun below horizon at noon") + "\n")
	}

	return b.String()
}
