// Package config loads runtime configuration from YAML with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/HarryPehkonen/analemma/internal/solar"
)

// Config is the complete application configuration.
type Config struct {
	Drawing   DrawingConfig `yaml:"drawing"`
	Locations []Preset      `yaml:"locations"`
	Default   string        `yaml:"default_location"`
	Logging   LoggingConfig `yaml:"logging"`
}

// DrawingConfig sizes the drawing space.
type DrawingConfig struct {
	Width   float64       `yaml:"width"`
	Height  float64       `yaml:"height"`
	Padding PaddingConfig `yaml:"padding"`
}

// PaddingConfig is the inset between drawing edge and plotted data.
type PaddingConfig struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

// Preset is a named observer location.
type Preset struct {
	Name      string  `yaml:"name"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration used when no file is given.
func Default() *Config {
	return &Config{
		Drawing: DrawingConfig{
			Width:  300,
			Height: 400,
			Padding: PaddingConfig{
				Top: 20, Right: 20, Bottom: 20, Left: 20,
			},
		},
		Locations: []Preset{
			{Name: "Vancouver", Latitude: 49.2827, Longitude: -123.1207},
			{Name: "London", Latitude: 51.5074, Longitude: -0.1278},
			{Name: "Sydney", Latitude: -33.8688, Longitude: 151.2093},
			{Name: "Quito", Latitude: -0.1807, Longitude: -78.4678},
			{Name: "Longyearbyen", Latitude: 78.2232, Longitude: 15.6267},
		},
		Default: "Vancouver",
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads a YAML config file, fills omitted values with defaults and
// validates the result. An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides config values from ANALEMMA_* environment variables.
// Unset variables leave the config untouched; a malformed value is an error
// rather than a silent fallback.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("ANALEMMA_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}

	lat, lon := os.Getenv("ANALEMMA_LAT"), os.Getenv("ANALEMMA_LON")
	if lat == "" && lon == "" {
		return nil
	}
	if lat == "" || lon == "" {
		return fmt.Errorf("ANALEMMA_LAT and ANALEMMA_LON must be set together")
	}

	latF, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return fmt.Errorf("ANALEMMA_LAT: %w", err)
	}
	lonF, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return fmt.Errorf("ANALEMMA_LON: %w", err)
	}
	if err := solar.ValidateCoordinates(latF, lonF); err != nil {
		return err
	}

	c.Locations = append([]Preset{{Name: "env", Latitude: latF, Longitude: lonF}}, c.Locations...)
	c.Default = "env"
	return nil
}

// PresetByName finds a preset, nil if unknown.
func (c *Config) PresetByName(name string) *Preset {
	for i := range c.Locations {
		if c.Locations[i].Name == name {
			return &c.Locations[i]
		}
	}
	return nil
}

// DefaultPreset returns the configured default location.
func (c *Config) DefaultPreset() *Preset {
	if p := c.PresetByName(c.Default); p != nil {
		return p
	}
	if len(c.Locations) > 0 {
		return &c.Locations[0]
	}
	return nil
}

// Location converts a preset to a solar.Location.
func (p *Preset) Location() solar.Location {
	return solar.Location{Latitude: p.Latitude, Longitude: p.Longitude}
}

// normalize fills zero values with defaults.
func (c *Config) normalize() {
	def := Default()
	if c.Drawing.Width == 0 {
		c.Drawing.Width = def.Drawing.Width
	}
	if c.Drawing.Height == 0 {
		c.Drawing.Height = def.Drawing.Height
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
	if len(c.Locations) == 0 {
		c.Locations = def.Locations
	}
	if c.Default == "" {
		c.Default = c.Locations[0].Name
	}
}

// validate rejects configurations the renderer cannot use.
func (c *Config) validate() error {
	d := c.Drawing
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("drawing size %gx%g must be positive", d.Width, d.Height)
	}
	if d.Padding.Left+d.Padding.Right >= d.Width {
		return fmt.Errorf("horizontal padding %g leaves no drawing width", d.Padding.Left+d.Padding.Right)
	}
	if d.Padding.Top+d.Padding.Bottom >= d.Height {
		return fmt.Errorf("vertical padding %g leaves no drawing height", d.Padding.Top+d.Padding.Bottom)
	}
	for _, p := range c.Locations {
		if err := solar.ValidateCoordinates(p.Latitude, p.Longitude); err != nil {
			return fmt.Errorf("location %q: %w", p.Name, err)
		}
	}
	if c.PresetByName(c.Default) == nil {
		return fmt.Errorf("default_location %q is not in locations", c.Default)
	}
	return nil
}
