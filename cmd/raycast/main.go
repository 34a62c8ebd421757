// raycast bounces a ray-casting emitter around a walled arena.
//
// Usage:
//
//	raycast list              - List available arena layouts
//	raycast run [layout]      - Run a layout in the terminal
//	raycast menu              - Pick layouts interactively
//	raycast window [layout]   - Run a layout in a desktop window
//	raycast cast [layout]     - Step headlessly and print the ray hits
//	raycast serve             - Start SSH server for remote viewing
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible layouts
//	--config <path>     - Load a custom raycast.yaml
//	--speed <preset>    - Emitter speed: slow, normal, fast
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/raycast-arena/internal/config"

	// Import layouts to register them
	_ "github.com/vovakirdan/raycast-arena/internal/sim"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagSpeed    string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "raycast",
	Short: "Raycast Arena - watch rays bounce around your terminal",
	Long: `Raycast Arena moves a point emitter through a box of walls. The emitter
bounces off every wall it meets and casts a fan of rays that stop at the
nearest wall in their direction.

Available commands:
  list     - Show all arena layouts
  run      - Run a layout in the terminal
  menu     - Interactive layout picker
  window   - Run a layout in a desktop window
  cast     - Step headlessly and print ray hits
  serve    - Start SSH server for remote viewing

Examples:
  raycast list
  raycast run box
  raycast menu --speed fast
  raycast window prism
  raycast cast random --seed 7 --ticks 120 --yaml
  raycast serve --addr :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom raycast.yaml")
	rootCmd.PersistentFlags().StringVar(&flagSpeed, "speed", "", "Speed preset: slow, normal, fast")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(castCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the configuration and applies --speed.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagSpeed != "" {
		preset, err := config.ParseSpeed(flagSpeed)
		if err != nil {
			return cfg, err
		}
		config.ApplySpeedPreset(&cfg, preset)
	}
	return cfg, nil
}

// newLogger returns a stderr logger at --log-level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// layoutArg returns the layout named on the command line, or the
// configured one.
func layoutArg(args []string, cfg config.Config) string {
	if len(args) > 0 {
		return args[0]
	}
	if cfg.Arena.Layout != "" {
		return cfg.Arena.Layout
	}
	return "random"
}

// fatal prints err and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
