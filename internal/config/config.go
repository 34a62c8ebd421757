// Package config provides YAML-based arena configuration loading and
// speed presets for the raycast drivers.
package config

import (
	"errors"
	"fmt"
)

// Config contains all configuration for a raycast session.
type Config struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Emitter EmitterConfig `yaml:"emitter"`
	Render  RenderConfig  `yaml:"render"`
	Window  WindowConfig  `yaml:"window"`
}

// ArenaConfig defines the bounding rectangle and wall generation.
type ArenaConfig struct {
	Layout      string     `yaml:"layout"`
	Origin      [2]float64 `yaml:"origin,flow"`
	Width       float64    `yaml:"width"`  // 0 = fit the screen
	Height      float64    `yaml:"height"` // 0 = fit the screen
	RandomWalls int        `yaml:"random_walls"`
}

// EmitterConfig defines the emitter's initial state and numeric parameters.
type EmitterConfig struct {
	Position    *[2]float64  `yaml:"position,flow,omitempty"` // nil = arena center
	Velocity    [2]float64   `yaml:"velocity,flow"`
	Directions  int          `yaml:"directions"`
	Tolerance   float64      `yaml:"tolerance"`
	Restitution float64      `yaml:"restitution"`
	Targets     [][2]float64 `yaml:"targets,flow,omitempty"` // replaces the fan when set
}

// RenderConfig toggles what the terminal driver draws.
type RenderConfig struct {
	Rays   bool `yaml:"rays"`
	Hits   bool `yaml:"hits"`
	Colors bool `yaml:"colors"`
}

// WindowConfig defines the desktop window, measured in pixels.
type WindowConfig struct {
	Width    int        `yaml:"width"`
	Height   int        `yaml:"height"`
	Velocity [2]float64 `yaml:"velocity,flow"`
}

var (
	// ErrInvalid is wrapped by every Validate failure.
	ErrInvalid = errors.New("invalid config")
)

// Validate checks the values the simulation cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Arena.Width < 0 || c.Arena.Height < 0:
		return fmt.Errorf("config: arena size %gx%g: %w", c.Arena.Width, c.Arena.Height, ErrInvalid)
	case c.Arena.RandomWalls < 0:
		return fmt.Errorf("config: random_walls %d: %w", c.Arena.RandomWalls, ErrInvalid)
	case c.Emitter.Directions <= 0 && len(c.Emitter.Targets) == 0:
		return fmt.Errorf("config: directions %d: %w", c.Emitter.Directions, ErrInvalid)
	case !(c.Emitter.Tolerance > 0):
		return fmt.Errorf("config: tolerance %g must be positive: %w", c.Emitter.Tolerance, ErrInvalid)
	case !(c.Emitter.Restitution > 0):
		return fmt.Errorf("config: restitution %g must be positive: %w", c.Emitter.Restitution, ErrInvalid)
	case c.Window.Width < 0 || c.Window.Height < 0:
		return fmt.Errorf("config: window size %dx%d: %w", c.Window.Width, c.Window.Height, ErrInvalid)
	}
	return nil
}

// SpeedPreset represents a named emitter speed.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
)

// ParseSpeed returns the preset named s. The empty string is SpeedNormal.
func ParseSpeed(s string) (SpeedPreset, error) {
	switch SpeedPreset(s) {
	case "", SpeedNormal:
		return SpeedNormal, nil
	case SpeedSlow, SpeedFast:
		return SpeedPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown speed %q (want slow, normal or fast)", s)
	}
}

// MultiplierForPreset returns the velocity scale of a preset.
func MultiplierForPreset(preset SpeedPreset) float64 {
	switch preset {
	case SpeedSlow:
		return 0.5
	case SpeedFast:
		return 2.0
	default:
		return 1.0
	}
}

// ApplySpeedPreset scales both the terminal and window velocities.
func ApplySpeedPreset(cfg *Config, preset SpeedPreset) {
	m := MultiplierForPreset(preset)
	cfg.Emitter.Velocity[0] *= m
	cfg.Emitter.Velocity[1] *= m
	cfg.Window.Velocity[0] *= m
	cfg.Window.Velocity[1] *= m
}
