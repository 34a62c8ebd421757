package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/raycast-arena/internal/platform/tui"
	"github.com/vovakirdan/raycast-arena/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick arena layouts from a menu",
	Long: `Start raycast in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a layout.
Press B or Esc inside an arena to return to the menu.

Examples:
  raycast menu
  raycast menu --fps 30
  raycast menu --speed fast`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	arenaCfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	cfg := terminalConfig()
	seeded := cfg.Seed != 0

	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = result.Config

		if result.Quit || result.LayoutID == "" {
			break
		}

		sim, err := registry.Create(result.LayoutID, arenaCfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating arena: %v\n", err)
			continue
		}

		if !seeded {
			cfg.Seed = time.Now().UnixNano()
		}

		back, err := tui.Run(sim, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running arena: %v\n", err)
		}
		if !back {
			break
		}
	}
}
