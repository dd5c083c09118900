// Package config loads launchdash settings from defaults, an optional YAML
// file and LAUNCHDASH_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config is the complete process configuration.
type Config struct {
	DataPath  string `yaml:"data_path" env:"DATA"`
	Listen    string `yaml:"listen" env:"LISTEN"`
	QueueSize int    `yaml:"queue_size" env:"QUEUE_SIZE"`

	Log    LogConfig    `yaml:"log" envPrefix:"LOG_"`
	Slider SliderConfig `yaml:"slider" envPrefix:"SLIDER_"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"` // "text" or "json"
}

// SliderConfig is the display range of the payload range selector. It is
// passed through to the renderer; the default selection comes from the
// dataset bounds, not from here.
type SliderConfig struct {
	Min   float64   `yaml:"min" json:"min" env:"MIN"`
	Max   float64   `yaml:"max" json:"max" env:"MAX"`
	Step  float64   `yaml:"step" json:"step" env:"STEP"`
	Marks []float64 `yaml:"marks" json:"marks" env:"MARKS" envSeparator:","`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataPath:  "spacex_launch_dash.csv",
		Listen:    ":8050",
		QueueSize: 16,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Slider: SliderConfig{
			Min:   0,
			Max:   10000,
			Step:  1000,
			Marks: []float64{0, 2500, 5000, 7500, 10000},
		},
	}
}

// Load builds a Config. path may be empty, in which case only defaults and
// the environment are used.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "LAUNCHDASH_"}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.DataPath) == "" {
		errs = append(errs, errors.New("data_path is required"))
	}
	if c.QueueSize < 1 {
		errs = append(errs, fmt.Errorf("queue_size must be positive, got %d", c.QueueSize))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	if c.Slider.Min < 0 || c.Slider.Max < c.Slider.Min {
		errs = append(errs, fmt.Errorf("slider range [%v, %v] is invalid", c.Slider.Min, c.Slider.Max))
	}
	if c.Slider.Step < 0 {
		errs = append(errs, fmt.Errorf("slider.step must not be negative, got %v", c.Slider.Step))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
