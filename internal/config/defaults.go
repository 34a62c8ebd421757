package config

import (
	_ "embed"

	"github.com/vovakirdan/raycast-arena/internal/emitter"
)

//go:embed defaults/raycast.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration used when no YAML is found.
func Default() Config {
	return Config{
		Arena: ArenaConfig{
			Layout:      "random",
			Origin:      [2]float64{1, 1},
			RandomWalls: 5,
		},
		Emitter: EmitterConfig{
			Velocity:    [2]float64{0.6, 0.6},
			Directions:  200,
			Tolerance:   emitter.DefaultTolerance,
			Restitution: emitter.DefaultRestitution,
		},
		Render: RenderConfig{
			Rays:   true,
			Hits:   true,
			Colors: true,
		},
		Window: WindowConfig{
			Width:    1200,
			Height:   900,
			Velocity: [2]float64{10, 10},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
