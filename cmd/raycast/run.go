package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/raycast-arena/internal/core"
	"github.com/vovakirdan/raycast-arena/internal/platform/tui"
	"github.com/vovakirdan/raycast-arena/internal/registry"
)

var runCmd = &cobra.Command{
	Use:   "run [layout]",
	Short: "Run a layout in the terminal",
	Long: `Start the arena in the terminal. Without a layout argument the
configured arena.layout is used.

Controls:
  Click        - Move the emitter
  Arrows       - Send the emitter up/down/left/right at its current speed
  A            - Aim one ray at each arena corner
  F            - Restore the evenly spread fan of rays
  N            - Add a random wall
  P/Space      - Pause
  R            - Rebuild with a new seed
  Tab          - Inspect ray hits
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Examples:
  raycast run
  raycast run box --speed slow
  raycast run random --seed 42
  raycast run prism --config ./my-raycast.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRun,
}

func runRun(_ *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	id := layoutArg(args, cfg)
	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown layout %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'raycast list' to see available layouts.")
		os.Exit(1)
	}

	sim, err := registry.Create(id, cfg)
	if err != nil {
		fatal("%v", err)
	}

	if _, err := tui.Run(sim, terminalConfig()); err != nil {
		fatal("running arena: %v", err)
	}
}

// terminalConfig returns the runtime config for the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
