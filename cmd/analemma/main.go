// Command analemma shows where the noon sun sits on the analemma for a
// location and date, as an interactive terminal view or headless export.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/HarryPehkonen/analemma/internal/config"
	"github.com/HarryPehkonen/analemma/internal/logging"
	"github.com/HarryPehkonen/analemma/internal/solar"
	"github.com/HarryPehkonen/analemma/internal/table"
	"github.com/HarryPehkonen/analemma/internal/transform"
	"github.com/HarryPehkonen/analemma/internal/ui"
	"github.com/HarryPehkonen/analemma/internal/version"
	"github.com/HarryPehkonen/analemma/internal/viz"
)

var (
	configPath  string
	presetName  string
	latFlag     float64
	lonFlag     float64
	dateFlag    string
	summaryMode bool
	jsonPath    string
	svgPath     string
)

func main() {
	flag.StringVar(&configPath, "config", "", "Path to YAML config file")
	flag.StringVar(&presetName, "location", "", "Named location preset from the config")
	flag.Float64Var(&latFlag, "lat", 999, "Latitude in degrees (overrides presets)")
	flag.Float64Var(&lonFlag, "lon", 999, "Longitude in degrees (overrides presets)")
	flag.StringVar(&dateFlag, "date", "", "Date as YYYY-MM-DD (default today)")
	flag.BoolVar(&summaryMode, "summary", false, "Print text summary instead of TUI")
	flag.StringVar(&jsonPath, "json", "", "Export JSON result to file (use - for stdout)")
	flag.StringVar(&svgPath, "svg", "", "Export SVG document to file (use - for stdout)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	flag.Parse()

	if *showVersion {
		fmt.Println("analemma", version.Version)
		return
	}

	// .env overrides are optional; a missing file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		fatalf("config: %v", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		fatalf("config: %v", err)
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	logger := logging.New(logging.ParseLevel(cfg.Logging.Level))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	loader := table.NewLoader(nil)
	vizCfg := viz.Config{
		Bounds: transform.DrawingBounds{
			Width:  cfg.Drawing.Width,
			Height: cfg.Drawing.Height,
		},
		Padding: transform.Padding{
			Top:    cfg.Drawing.Padding.Top,
			Right:  cfg.Drawing.Padding.Right,
			Bottom: cfg.Drawing.Padding.Bottom,
			Left:   cfg.Drawing.Padding.Left,
		},
	}
	assembler := viz.NewAssembler(loader, vizCfg, logger)

	date, err := parseDate(dateFlag)
	if err != nil {
		fatalf("%v", err)
	}

	headless := summaryMode || jsonPath != "" || svgPath != ""
	if !headless && !term.IsTerminal(int(os.Stdout.Fd())) {
		// Piped output: fall back to the text summary.
		logger.Debug("stdout is not a TTY, using summary mode")
		headless, summaryMode = true, true
	}

	if headless {
		loc, err := resolveLocation(cfg)
		if err != nil {
			fatalf("%v", err)
		}
		runHeadless(ctx, assembler, loc, date, vizCfg)
		return
	}

	model := ui.New(assembler, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fatalf("run TUI: %v", err)
	}
}

// resolveLocation picks the observer location from flags, falling back to
// the configured default preset. Explicit coordinates win over presets.
func resolveLocation(cfg *config.Config) (*solar.Location, error) {
	if latFlag != 999 || lonFlag != 999 {
		if latFlag == 999 || lonFlag == 999 {
			return nil, fmt.Errorf("-lat and -lon must be given together")
		}
		if err := solar.ValidateCoordinates(latFlag, lonFlag); err != nil {
			return nil, err
		}
		return &solar.Location{Latitude: latFlag, Longitude: lonFlag}, nil
	}

	if presetName != "" {
		p := cfg.PresetByName(presetName)
		if p == nil {
			return nil, fmt.Errorf("unknown location preset %q", presetName)
		}
		loc := p.Location()
		return &loc, nil
	}

	if p := cfg.DefaultPreset(); p != nil {
		loc := p.Location()
		return &loc, nil
	}
	return nil, nil
}

// parseDate parses the -date flag, defaulting to today (UTC).
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse -date %q: want YYYY-MM-DD", s)
	}
	return d, nil
}

// runHeadless handles summary, JSON and SVG exports without starting a TUI.
func runHeadless(ctx context.Context, assembler *viz.Assembler, loc *solar.Location, date time.Time, cfg viz.Config) {
	result := assembler.Assemble(ctx, loc, date)

	if jsonPath != "" {
		if err := writeTo(jsonPath, func(f *os.File) error {
			return result.WriteJSON(f)
		}); err != nil {
			fatalf("write JSON: %v", err)
		}
	}

	if svgPath != "" {
		if err := writeTo(svgPath, func(f *os.File) error {
			return viz.WriteSVG(f, result, cfg)
		}); err != nil {
			fatalf("write SVG: %v", err)
		}
	}

	if summaryMode {
		viz.WriteSummary(os.Stdout, loc, result)
	}

	if result.Error != "" {
		os.Exit(1)
	}
}

// writeTo writes to a file path, with "-" meaning stdout.
func writeTo(path string, write func(*os.File) error) error {
	if path == "-" {
		return write(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
