// Package config loads application settings for the cells commands.
// Values resolve in order: defaults, YAML file, CELLS_* environment
// variables, then explicitly set command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"cells/internal/core"
	"cells/internal/engine"
	"cells/internal/logging"
	"cells/internal/rules"
	"cells/internal/schedule"
	"cells/internal/sims/cells"
)

// EnvPrefix is prepended to upper-cased keys for environment overrides.
const EnvPrefix = "CELLS"

// Config holds every setting the commands read.
type Config struct {
	Sim            string   `yaml:"sim"`
	ScreenWidth    int      `yaml:"screen_width"`
	ScreenHeight   int      `yaml:"screen_height"`
	Scale          int      `yaml:"scale"`
	TPS            int      `yaml:"tps"`
	Seed           int64    `yaml:"seed"`
	AliveChance    float64  `yaml:"alive_chance"`
	RotationPeriod int      `yaml:"rotation_period"`
	Playlist       []string `yaml:"playlist,omitempty"`
	LogLevel       string   `yaml:"log_level"`
}

// Default returns the reference settings.
func Default() *Config {
	return &Config{
		Sim:            "cells",
		ScreenWidth:    1920,
		ScreenHeight:   1080,
		Scale:          10,
		TPS:            core.DefaultTPS,
		Seed:           0,
		AliveChance:    engine.DefaultAliveChance,
		RotationPeriod: schedule.DefaultPeriod,
		LogLevel:       "info",
	}
}

// flagKeys maps config keys to the flag names Bind registers.
var flagKeys = map[string]string{
	"sim":             "sim",
	"screen_width":    "screen-width",
	"screen_height":   "screen-height",
	"scale":           "scale",
	"tps":             "tps",
	"seed":            "seed",
	"alive_chance":    "alive-chance",
	"rotation_period": "rotation-period",
	"playlist":        "playlist",
	"log_level":       "log-level",
}

// Bind registers one flag per setting on fs, defaulting to c's values.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.String("sim", c.Sim, "simulation to run (see `cells rules` for cells/<rule> variants)")
	fs.Int("screen-width", c.ScreenWidth, "display width in pixels")
	fs.Int("screen-height", c.ScreenHeight, "display height in pixels")
	fs.Int("scale", c.Scale, "pixels per cell")
	fs.Int("tps", c.TPS, "ticks per second")
	fs.Int64("seed", c.Seed, "seed for the initial grid (0 picks one from the clock)")
	fs.Float64("alive-chance", c.AliveChance, "probability a seeded cell starts alive")
	fs.Int("rotation-period", c.RotationPeriod, "generations each rule stays active")
	fs.StringSlice("playlist", c.Playlist, "comma separated rule names (default rotation when empty)")
	fs.String("log-level", c.LogLevel, "log level: debug, info, warn, error")
}

// Load resolves the configuration. path may be empty to skip the file and
// fs may be nil to skip flags.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	vp := viper.New()
	def := Default()
	vp.SetDefault("sim", def.Sim)
	vp.SetDefault("screen_width", def.ScreenWidth)
	vp.SetDefault("screen_height", def.ScreenHeight)
	vp.SetDefault("scale", def.Scale)
	vp.SetDefault("tps", def.TPS)
	vp.SetDefault("seed", def.Seed)
	vp.SetDefault("alive_chance", def.AliveChance)
	vp.SetDefault("rotation_period", def.RotationPeriod)
	vp.SetDefault("playlist", []string{})
	vp.SetDefault("log_level", def.LogLevel)

	vp.SetEnvPrefix(EnvPrefix)
	vp.AutomaticEnv()

	if path != "" {
		vp.SetConfigFile(path)
		vp.SetConfigType("yaml")
		if err := vp.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	if fs != nil {
		for key, name := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := vp.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
	}

	cfg := &Config{
		Sim:            vp.GetString("sim"),
		ScreenWidth:    vp.GetInt("screen_width"),
		ScreenHeight:   vp.GetInt("screen_height"),
		Scale:          vp.GetInt("scale"),
		TPS:            vp.GetInt("tps"),
		Seed:           vp.GetInt64("seed"),
		AliveChance:    vp.GetFloat64("alive_chance"),
		RotationPeriod: vp.GetInt("rotation_period"),
		Playlist:       normalizeNames(vp.GetStringSlice("playlist")),
		LogLevel:       vp.GetString("log_level"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	var errs []error
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %d", c.Scale))
	} else if c.ScreenWidth < c.Scale || c.ScreenHeight < c.Scale {
		errs = append(errs, fmt.Errorf("scale %d leaves no cells on a %dx%d screen", c.Scale, c.ScreenWidth, c.ScreenHeight))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if c.AliveChance < 0 || c.AliveChance > 1 {
		errs = append(errs, fmt.Errorf("alive_chance must be between 0 and 1, got %v", c.AliveChance))
	}
	if c.RotationPeriod < 1 {
		errs = append(errs, fmt.Errorf("rotation_period must be at least 1, got %d", c.RotationPeriod))
	}
	for _, name := range c.Playlist {
		if _, err := rules.Lookup(name); err != nil {
			errs = append(errs, fmt.Errorf("playlist: %w", err))
		}
	}
	if !logging.ValidLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", c.LogLevel))
	}
	return errors.Join(errs...)
}

// GridSize returns the cell dimensions the screen holds at the configured scale.
func (c *Config) GridSize() core.Size {
	return core.Size{W: c.ScreenWidth / c.Scale, H: c.ScreenHeight / c.Scale}
}

// SimConfig converts the settings into the session's key/value form.
func (c *Config) SimConfig() map[string]string {
	size := c.GridSize()
	sc := cells.Config{
		Width:          size.W,
		Height:         size.H,
		Seed:           c.Seed,
		AliveChance:    c.AliveChance,
		RotationPeriod: c.RotationPeriod,
		Playlist:       c.Playlist,
	}
	return sc.ToMap()
}

// YAML renders the configuration as a YAML document.
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return out, nil
}

func normalizeNames(in []string) []string {
	var out []string
	for _, v := range in {
		for _, part := range strings.Split(v, ",") {
			if name := strings.TrimSpace(part); name != "" {
				out = append(out, name)
			}
		}
	}
	return out
}
