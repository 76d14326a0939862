package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/gridterm/config"
	"github.com/lixenwraith/gridterm/terminal"
)

// global flag state, merged over the config file in loadConfig
var (
	configPath string
	flagCfg    = config.Default()
	flagHold   time.Duration
	verbose    bool
	dryRun     bool
)

var rootCmd = &cobra.Command{
	Use:           "gridterm",
	Short:         "Double-buffered character grid renderer for ANSI terminals",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Draw a few styled cells and render only the changed ones",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "TOML config file")
	pf.StringVar(&flagCfg.Backend, "backend", flagCfg.Backend, "Output backend: ansi, tcell")
	pf.StringVar(&flagCfg.Color, "color", flagCfg.Color, "Color mode: auto, truecolor, 256")
	pf.IntVar(&flagCfg.Width, "width", 0, "Grid width (0 = terminal width)")
	pf.IntVar(&flagCfg.Height, "height", 0, "Grid height (0 = terminal height)")
	pf.BoolVar(&flagCfg.HideCursor, "hide-cursor", flagCfg.HideCursor, "Hide the cursor while rendering")
	pf.DurationVar(&flagHold, "hold", 0, "Keep the frame on screen before exiting")
	pf.BoolVar(&flagCfg.Debug, "debug", false, "Write trace logs to logs/gridterm.log")

	demoCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print changesets to stderr")
	demoCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the command stream instead of rendering")

	rootCmd.AddCommand(demoCmd)
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if rendering crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mGRIDTERM CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "gridterm: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file, if any, then applies explicitly set flags on top
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = flagCfg.Backend
	}
	if flags.Changed("color") {
		cfg.Color = flagCfg.Color
	}
	if flags.Changed("width") {
		cfg.Width = flagCfg.Width
	}
	if flags.Changed("height") {
		cfg.Height = flagCfg.Height
	}
	if flags.Changed("hide-cursor") {
		cfg.HideCursor = flagCfg.HideCursor
	}
	if flags.Changed("hold") {
		cfg.Hold.Duration = flagHold
	}
	if flags.Changed("debug") {
		cfg.Debug = flagCfg.Debug
	}
	return cfg, cfg.Validate()
}
