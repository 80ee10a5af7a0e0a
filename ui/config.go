// Package ui drives a single gauge screen on the display: a title line, a
// unit label and a large odometer value that rolls smoothly between
// readings.
package ui

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"periph.io/x/conn/v3/physic"

	"github.com/kcgauge/ssd1306"
)

// Config holds the application configuration.
type Config struct {
	Bus      string        `toml:"bus"`       // I²C bus name, empty for the first bus
	Address  uint16        `toml:"address"`   // I²C address
	SpeedKHz int           `toml:"speed_khz"` // Bus speed, 0 keeps the bus default
	Width    int           `toml:"width"`
	Height   int           `toml:"height"`
	Contrast uint8         `toml:"contrast"`
	Frame    time.Duration `toml:"frame"` // Animation frame interval
	Tween    time.Duration `toml:"tween"` // Duration of the roll between two readings
	Ease     string        `toml:"ease"`  // Easing function name, see Easing

	Screen Screen `toml:"screen"`
}

// Screen describes the gauge layout.
type Screen struct {
	Title  string  `toml:"title"`
	Unit   string  `toml:"unit"`
	ValueX int     `toml:"value_x"` // Right edge of the value
	ValueY int     `toml:"value_y"`
	ClearX int     `toml:"clear_x"` // Top left corner of the area cleared before each value
	ClearY int     `toml:"clear_y"`
	Min    float64 `toml:"min"`
	Max    float64 `toml:"max"`
}

// DefaultConfig returns the configuration of a 128x64 oil temperature gauge.
func DefaultConfig() Config {
	return Config{
		Address:  ssd1306.DefaultAddr,
		SpeedKHz: 400,
		Width:    128,
		Height:   64,
		Contrast: ssd1306.DefaultContrast,
		Frame:    40 * time.Millisecond,
		Tween:    time.Second,
		Ease:     "outCubic",
		Screen: Screen{
			Title:  "Oil temp     1/1",
			Unit:   "°C",
			ValueX: 127,
			ValueY: 22,
			ClearX: 24,
			ClearY: 16,
			Min:    0,
			Max:    999,
		},
	}
}

// LoadConfig returns the default configuration overridden by the TOML file
// at path. An empty path returns the defaults. Unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("parsing %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// LoadEnv loads the given .env files into the process environment. Missing
// files are skipped; variables already set are kept.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides c with the GAUGE_* environment variables.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv("GAUGE_BUS"); ok {
		c.Bus = v
	}
	if v, ok := os.LookupEnv("GAUGE_ADDRESS"); ok {
		n, err := strconv.ParseUint(v, 0, 16)
		if err != nil {
			return fmt.Errorf("GAUGE_ADDRESS: %w", err)
		}
		c.Address = uint16(n)
	}
	if v, ok := os.LookupEnv("GAUGE_CONTRAST"); ok {
		n, err := strconv.ParseUint(v, 0, 8)
		if err != nil {
			return fmt.Errorf("GAUGE_CONTRAST: %w", err)
		}
		c.Contrast = uint8(n)
	}
	if v, ok := os.LookupEnv("GAUGE_TITLE"); ok {
		c.Screen.Title = v
	}
	if v, ok := os.LookupEnv("GAUGE_UNIT"); ok {
		c.Screen.Unit = v
	}
	return nil
}

// Validate checks the settings the driver does not check itself.
func (c *Config) Validate() error {
	if c.Frame <= 0 {
		return errors.New("ui: frame interval must be positive")
	}
	if c.Tween < 0 {
		return errors.New("ui: tween duration must not be negative")
	}
	if c.Screen.Max <= c.Screen.Min {
		return errors.New("ui: screen max must be greater than min")
	}
	if _, err := Easing(c.Ease); err != nil {
		return err
	}
	return nil
}

// Opts returns the driver options for c.
func (c *Config) Opts(logger *slog.Logger) *ssd1306.Opts {
	return &ssd1306.Opts{
		W:        c.Width,
		H:        c.Height,
		Addr:     c.Address,
		Speed:    physic.Frequency(c.SpeedKHz) * physic.KiloHertz,
		Contrast: c.Contrast,
		Logger:   logger,
	}
}
