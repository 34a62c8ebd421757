package sim

import (
	"fmt"

	"github.com/vovakirdan/raycast-arena/internal/config"
	"github.com/vovakirdan/raycast-arena/internal/core"
)

// NewPixelArena builds an arena for a desktop canvas of cfg.Window size.
// The arena fills the window unless its size is configured, and the
// emitter starts with the window velocity.
func NewPixelArena(l Layout, cfg config.Config, seed int64) (*Arena, PixelViewport, error) {
	w, h := cfg.Window.Width, cfg.Window.Height
	if w <= 0 || h <= 0 {
		return nil, PixelViewport{}, fmt.Errorf("sim: window %dx%d: %w", w, h, config.ErrInvalid)
	}

	if cfg.Arena.Width == 0 {
		cfg.Arena.Width = float64(w)
	}
	if cfg.Arena.Height == 0 {
		cfg.Arena.Height = float64(h)
	}
	cfg.Emitter.Velocity = cfg.Window.Velocity

	a := New(l, cfg)
	a.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h + 1, TickRate: core.DefaultConfig().TickRate, Seed: seed})
	if err := a.Err(); err != nil {
		return nil, PixelViewport{}, err
	}

	return a, PixelViewport{Origin: a.Scene().Params().Origin, W: w, H: h}, nil
}
