package cells

import (
	"strconv"
	"strings"

	"cells/internal/engine"
	"cells/internal/schedule"
)

// Config controls the dimensions, seeding and rule rotation of a Session.
type Config struct {
	Width  int
	Height int

	// Seed drives the initial grid. Zero picks a time-based seed on reset.
	Seed int64

	AliveChance    float64
	RotationPeriod int
	// Playlist holds catalog rule names; empty selects the default rotation.
	Playlist []string
}

// DefaultConfig returns the reference configuration: a 1920x1080 display at
// ten pixels per cell.
func DefaultConfig() Config {
	return Config{
		Width:          192,
		Height:         108,
		AliveChance:    engine.DefaultAliveChance,
		RotationPeriod: schedule.DefaultPeriod,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable or out of range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["alive_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.AliveChance = parsed
		}
	}
	if v, ok := cfg["rotation_period"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.RotationPeriod = parsed
		}
	}
	if v, ok := cfg["playlist"]; ok {
		c.Playlist = splitNames(v)
	}
	return c
}

// ToMap is the inverse of FromMap.
func (c Config) ToMap() map[string]string {
	m := map[string]string{
		"w":               strconv.Itoa(c.Width),
		"h":               strconv.Itoa(c.Height),
		"seed":            strconv.FormatInt(c.Seed, 10),
		"alive_chance":    strconv.FormatFloat(c.AliveChance, 'f', -1, 64),
		"rotation_period": strconv.Itoa(c.RotationPeriod),
	}
	if len(c.Playlist) > 0 {
		m["playlist"] = strings.Join(c.Playlist, ",")
	}
	return m
}

func splitNames(v string) []string {
	var names []string
	for _, part := range strings.Split(v, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
