package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/raycast-arena/internal/platform/window"
	"github.com/vovakirdan/raycast-arena/internal/sim"
)

var windowCmd = &cobra.Command{
	Use:   "window [layout]",
	Short: "Run a layout in a desktop window",
	Long: `Open a desktop window sized by window.width and window.height, with one
world unit per pixel. The emitter starts with window.velocity.

Controls:
  Left click   - Move the emitter
  Arrows       - Send the emitter up/down/left/right
  A / F        - Aim at the corners / restore the fan
  N            - Add a random wall
  P/Space      - Pause
  R            - Rebuild with the next seed
  Q/Esc        - Quit

Examples:
  raycast window
  raycast window prism --fps 30`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	id := layoutArg(args, cfg)
	l, ok := sim.Lookup(id)
	if !ok {
		fatal("unknown layout %q", id)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g, err := window.New(l, cfg, seed, newLogger("window"))
	if err != nil {
		fatal("%v", err)
	}
	if err := window.Run(g, flagFPS); err != nil {
		fatal("window: %v", err)
	}
}
