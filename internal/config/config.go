// Package config provides YAML-based configuration loading for the
// platformer: world physics, the starting player, and the level graph
// that goal triggers resolve against.
package config

import (
	"errors"
	"fmt"
)

// ErrMissingKey reports a required configuration key that is absent.
// Missing keys are fatal: the application shows a notice and exits.
var ErrMissingKey = errors.New("config: missing required key")

// Config is the full game configuration.
//
// The scalar keys mirror the original flat "key: value" configuration
// text; all of them are required. Levels maps a level name to its
// trigger declarations (e.g. "goal: level2", "tunnel: level3"), which
// the goal-trigger protocol looks up when a flag or tunnel fires.
type Config struct {
	Gravity     float64 `yaml:"gravity"`      // Downward acceleration, px/s^2
	Start       string  `yaml:"start"`        // Name of the starting level
	X           int     `yaml:"x"`            // Player spawn column, in tiles
	Y           int     `yaml:"y"`            // Player spawn row, in tiles
	Mass        float64 `yaml:"mass"`         // Player body mass
	Health      int     `yaml:"health"`       // Player maximum health
	MaxVelocity float64 `yaml:"max_velocity"` // Speed clamp, px/s
	Name        string  `yaml:"name"`         // Player character name

	// Levels holds per-level trigger targets. The special target "END"
	// means the game is won.
	Levels map[string]map[string]string `yaml:"levels"`

	// LevelDir is an optional directory to load level grid files from.
	// Builtin levels are used when empty or when a file is absent there.
	LevelDir string `yaml:"level_dir"`
}

// rawConfig mirrors Config with pointer fields so that absent keys can be
// told apart from zero values during validation.
type rawConfig struct {
	Gravity     *float64 `yaml:"gravity"`
	Start       *string  `yaml:"start"`
	X           *int     `yaml:"x"`
	Y           *int     `yaml:"y"`
	Mass        *float64 `yaml:"mass"`
	Health      *int     `yaml:"health"`
	MaxVelocity *float64 `yaml:"max_velocity"`
	Name        *string  `yaml:"name"`

	Levels   map[string]map[string]string `yaml:"levels"`
	LevelDir string                       `yaml:"level_dir"`
}

// validate checks that every required key is present and converts the raw
// form into a Config. The player name is optional and defaults to "Mario".
func (r rawConfig) validate() (Config, error) {
	required := []struct {
		name string
		ok   bool
	}{
		{"gravity", r.Gravity != nil},
		{"start", r.Start != nil},
		{"x", r.X != nil},
		{"y", r.Y != nil},
		{"mass", r.Mass != nil},
		{"health", r.Health != nil},
		{"max_velocity", r.MaxVelocity != nil},
	}
	for _, key := range required {
		if !key.ok {
			return Config{}, fmt.Errorf("%w: %s", ErrMissingKey, key.name)
		}
	}

	cfg := Config{
		Gravity:     *r.Gravity,
		Start:       *r.Start,
		X:           *r.X,
		Y:           *r.Y,
		Mass:        *r.Mass,
		Health:      *r.Health,
		MaxVelocity: *r.MaxVelocity,
		Name:        "Mario",
		Levels:      r.Levels,
		LevelDir:    r.LevelDir,
	}
	if r.Name != nil {
		cfg.Name = *r.Name
	}
	if cfg.Levels == nil {
		cfg.Levels = make(map[string]map[string]string)
	}
	return cfg, nil
}

// NextLevel looks up the trigger target for the given level and trigger
// key. It returns false when the level has no declaration for the key,
// which the goal-trigger protocol treats as a fatal configuration error.
func (c Config) NextLevel(level, key string) (string, bool) {
	links, ok := c.Levels[level]
	if !ok {
		return "", false
	}
	next, ok := links[key]
	return next, ok
}
