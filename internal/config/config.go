// Package config loads the per-session settings file.
package config

import (
	"fmt"
	"os"
	"time"

	"tile-robot/internal/component"
	"tile-robot/internal/system"

	"gopkg.in/yaml.v3"
)

// Config is the YAML settings file. Absent keys keep their Default values.
type Config struct {
	StartEnergy   int   `yaml:"start_energy"`
	GlitchDelayMs int   `yaml:"glitch_delay_ms"`
	Spawn         Point `yaml:"spawn"`

	// TilePixels and CanvasTiles size the viewport: at zoom 0 the canvas is
	// CanvasTiles tiles of TilePixels each on every side.
	TilePixels  int `yaml:"tile_pixels"`
	CanvasTiles int `yaml:"canvas_tiles"`

	// Keys maps a key name ("w", "arrowUp", "+") to an action descriptor
	// such as [robotAction, move, up]. An entry with an empty list unbinds
	// the key.
	Keys map[string][]string `yaml:"keys"`
}

// Point is a grid coordinate in the config file.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// DefaultKeys returns a fresh copy of the stock control table.
func DefaultKeys() map[string][]string {
	return map[string][]string{
		"a": {system.NSRobot, "move", "left"},
		"d": {system.NSRobot, "move", "right"},
		"s": {system.NSRobot, "move", "down"},
		"w": {system.NSRobot, "move", "up"},

		"r": {system.NSRobot, "respawn"},

		"arrowDown":  {system.NSCamera, "move", "down"},
		"arrowLeft":  {system.NSCamera, "move", "left"},
		"arrowRight": {system.NSCamera, "move", "right"},
		"arrowUp":    {system.NSCamera, "move", "up"},

		"+": {system.NSCamera, "zoom", system.ZoomIn},
		"-": {system.NSCamera, "zoom", system.ZoomOut},
	}
}

// Default returns the stock settings.
func Default() Config {
	rules := system.DefaultRules()
	return Config{
		StartEnergy:   rules.StartEnergy,
		GlitchDelayMs: int(rules.GlitchDelay.Milliseconds()),
		Spawn:         Point{X: rules.Spawn.X, Y: rules.Spawn.Y},
		TilePixels:    64,
		CanvasTiles:   8,
		Keys:          DefaultKeys(),
	}
}

// Load reads a YAML file on top of Default. Only keys present in the file
// override defaults; a key binding given as an empty list is removed.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	for k, v := range cfg.Keys {
		if len(v) == 0 {
			delete(cfg.Keys, k)
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the session cannot run with.
func (c Config) Validate() error {
	if c.StartEnergy < 0 {
		return fmt.Errorf("start_energy %d is negative", c.StartEnergy)
	}
	if c.GlitchDelayMs < 0 {
		return fmt.Errorf("glitch_delay_ms %d is negative", c.GlitchDelayMs)
	}
	if c.TilePixels <= 0 || c.CanvasTiles <= 0 {
		return fmt.Errorf("tile_pixels and canvas_tiles must be positive")
	}
	for k, v := range c.Keys {
		if len(v) == 0 {
			return fmt.Errorf("key %q: empty action", k)
		}
		args := make([]any, 0, len(v)-1)
		for _, a := range v[1:] {
			args = append(args, a)
		}
		if _, err := system.Decode(v[0], args...); err != nil {
			return fmt.Errorf("key %q: %w", k, err)
		}
	}
	return nil
}

// Rules are the reducer settings derived from c.
func (c Config) Rules() system.Rules {
	return system.Rules{
		StartEnergy: c.StartEnergy,
		GlitchDelay: time.Duration(c.GlitchDelayMs) * time.Millisecond,
		Spawn:       c.SpawnPos(),
	}
}

// SpawnPos is the spawn point as a grid position.
func (c Config) SpawnPos() component.Position {
	return component.Position{X: c.Spawn.X, Y: c.Spawn.Y}
}
