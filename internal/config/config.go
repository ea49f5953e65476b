// Package config loads the CLI configuration from a YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// PageConfig describes the page geometry in points. When Size names a known
// paper size, Width and Height are derived from it.
type PageConfig struct {
	Size         string  `yaml:"size"`
	Width        float64 `yaml:"width,omitempty"`
	Height       float64 `yaml:"height,omitempty"`
	MarginTop    float64 `yaml:"margin_top"`
	MarginRight  float64 `yaml:"margin_right"`
	MarginBottom float64 `yaml:"margin_bottom"`
	MarginLeft   float64 `yaml:"margin_left"`
	FontSize     float64 `yaml:"font_size"`
	LineHeight   float64 `yaml:"line_height"`
}

// ChromeConfig is the per-page header/footer text.
type ChromeConfig struct {
	Title string `yaml:"title,omitempty"` // overrides the document title
	Stamp string `yaml:"stamp"`
	Year  int    `yaml:"year,omitempty"` // zero means the current year
}

// Duration decodes YAML values like "250ms" or "2s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// ReflowConfig tunes the engine.
type ReflowConfig struct {
	Interval Duration `yaml:"interval"`
}

// Config is the full CLI configuration.
type Config struct {
	Page     PageConfig   `yaml:"page"`
	Chrome   ChromeConfig `yaml:"chrome"`
	Reflow   ReflowConfig `yaml:"reflow"`
	LogLevel string       `yaml:"log_level"`
}

// Paper sizes in points (1/72 inch).
var paperSizes = map[string][2]float64{
	"a4":     {595.28, 841.89},
	"letter": {612, 792},
	"legal":  {612, 1008},
}

// Default returns the default configuration: US Legal paper, one-inch
// margins, 12pt body text.
func Default() Config {
	return Config{
		Page: PageConfig{
			Size:         "legal",
			MarginTop:    72,
			MarginRight:  72,
			MarginBottom: 72,
			MarginLeft:   72,
			FontSize:     12,
			LineHeight:   1.5,
		},
		Chrome: ChromeConfig{
			Stamp: "Confidential",
		},
		Reflow: ReflowConfig{
			Interval: Duration(250 * time.Millisecond),
		},
		LogLevel: "info",
	}
}

// Load reads the configuration file at path, layered over the defaults,
// then applies environment overrides. An empty path loads defaults only.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}
	cfg.applyEnv()
	if err := cfg.resolve(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DOCFOLIO_STAMP"); v != "" {
		c.Chrome.Stamp = v
	}
	if v := os.Getenv("DOCFOLIO_PAGE_SIZE"); v != "" {
		c.Page.Size = v
	}
	if v := os.Getenv("DOCFOLIO_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("DOCFOLIO_REFLOW_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Reflow.Interval = Duration(d)
		}
	}
}

// resolve fills Width/Height from a named paper size.
func (c *Config) resolve() error {
	if c.Page.Width > 0 && c.Page.Height > 0 {
		return nil
	}
	size, ok := paperSizes[c.Page.Size]
	if !ok {
		return fmt.Errorf("unknown page size %q", c.Page.Size)
	}
	c.Page.Width = size[0]
	c.Page.Height = size[1]
	return nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var err error
	if c.Page.Width <= 0 || c.Page.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("page dimensions must be positive, got %gx%g", c.Page.Width, c.Page.Height))
	}
	if c.Page.MarginTop+c.Page.MarginBottom >= c.Page.Height {
		err = multierr.Append(err, fmt.Errorf("vertical margins (%g) leave no content height", c.Page.MarginTop+c.Page.MarginBottom))
	}
	if c.Page.MarginLeft+c.Page.MarginRight >= c.Page.Width {
		err = multierr.Append(err, fmt.Errorf("horizontal margins (%g) leave no content width", c.Page.MarginLeft+c.Page.MarginRight))
	}
	if c.Page.FontSize <= 0 {
		err = multierr.Append(err, fmt.Errorf("font size must be positive, got %g", c.Page.FontSize))
	}
	if c.Page.LineHeight <= 0 {
		err = multierr.Append(err, fmt.Errorf("line height must be positive, got %g", c.Page.LineHeight))
	}
	if c.Reflow.Interval < 0 {
		err = multierr.Append(err, fmt.Errorf("reflow interval must not be negative, got %s", time.Duration(c.Reflow.Interval)))
	}
	if _, lerr := zapcore.ParseLevel(c.LogLevel); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	return err
}
