package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/gridterm/config"
	"github.com/lixenwraith/gridterm/diff"
	"github.com/lixenwraith/gridterm/frame"
	"github.com/lixenwraith/gridterm/grid"
	"github.com/lixenwraith/gridterm/renderer"
	"github.com/lixenwraith/gridterm/screen"
	"github.com/lixenwraith/gridterm/terminal"
)

// demoCells are drawn onto an otherwise empty grid
var demoCells = []struct {
	x, y int
	cell grid.Cell
}{
	{2, 3, grid.Filled('K', terminal.Fg(terminal.Named(terminal.White)), terminal.Bg(terminal.Named(terminal.Red)))},
	{2, 4, grid.Filled('k', terminal.Fg(terminal.Named(terminal.Black)), terminal.Bg(terminal.Named(terminal.Cyan)))},
	{2, 5, grid.Filled('!', terminal.Fg(terminal.Named(terminal.White)), terminal.Bg(terminal.Named(terminal.Yellow)))},
}

// drawDemo places the demo cells, failing when the grid cannot hold them
func drawDemo(g *grid.Grid) error {
	for _, c := range demoCells {
		if c.x >= g.Width() || c.y >= g.Height() {
			return fmt.Errorf("grid %dx%d too small for demo cell at (%d, %d)", g.Width(), g.Height(), c.x, c.y)
		}
		g.Set(c.x, c.y, c.cell)
	}
	return nil
}

func runDemo(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("demo start backend=%s color=%s", cfg.Backend, cfg.Color)

	if dryRun {
		return dryRunDemo(cfg, cmd.OutOrStdout())
	}

	switch cfg.Backend {
	case config.BackendTcell:
		return runTcell(cfg)
	default:
		return runANSI(cfg)
	}
}

// frameOptions wires trace hooks into the standard logger
func frameOptions(cfg config.Config) []frame.Option {
	opts := []frame.Option{
		frame.WithPresentTrace(func(s frame.Stats) {
			log.Printf("present frame=%d changes=%d fingerprint=%016x", s.Frame, s.Changes, s.Fingerprint)
		}),
		frame.WithDiffTrace(func(c diff.Changeset) {
			log.Printf("diff %v", c)
			if verbose {
				fmt.Fprintln(os.Stderr, c)
			}
		}),
	}
	if cfg.Debug {
		opts = append(opts, frame.WithRendererOptions(renderer.WithTrace(func(c terminal.Command) {
			log.Printf("command %v", c)
		})))
	}
	if cfg.HideCursor {
		opts = append(opts, frame.WithHiddenCursor())
	}
	return opts
}

// gridSize resolves configured dimensions, querying the terminal for unset ones
func gridSize(cfg config.Config) (int, int, error) {
	w, h := cfg.Width, cfg.Height
	if w > 0 && h > 0 {
		return w, h, nil
	}
	tw, th, err := terminal.Size(os.Stdout)
	if err != nil {
		return 0, 0, fmt.Errorf("terminal geometry (set --width/--height to skip): %w", err)
	}
	if w == 0 {
		w = tw
	}
	if h == 0 {
		h = th
	}
	return w, h, nil
}

func runANSI(cfg config.Config) error {
	mode, err := terminal.ParseColorMode(cfg.Color)
	if err != nil {
		return err
	}
	w, h, err := gridSize(cfg)
	if err != nil {
		return err
	}

	sink := terminal.NewWriter(os.Stdout, terminal.WithColorMode(mode))
	return present(frame.New(w, h, sink, frameOptions(cfg)...), cfg.Hold.Duration)
}

func runTcell(cfg config.Config) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}
	defer s.Fini()

	w, h := s.Size()
	if cfg.Width > 0 {
		w = cfg.Width
	}
	if cfg.Height > 0 {
		h = cfg.Height
	}
	return present(frame.New(w, h, screen.NewSink(s), frameOptions(cfg)...), cfg.Hold.Duration)
}

// present runs one frame cycle: setup, draw, render, hold, restore
func present(f *frame.Frame, hold time.Duration) error {
	if err := f.Start(); err != nil {
		return err
	}
	if err := drawDemo(f.Back()); err != nil {
		f.Close()
		return err
	}
	if _, err := f.Present(); err != nil {
		f.Close()
		return err
	}
	if hold > 0 {
		time.Sleep(hold)
	}
	return f.Close()
}

// dryRunDemo renders into a recorder and lists the resulting commands
func dryRunDemo(cfg config.Config, out io.Writer) error {
	w, h := cfg.Width, cfg.Height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}

	var rec terminal.Recorder
	if err := present(frame.New(w, h, &rec, frameOptions(cfg)...), 0); err != nil {
		return err
	}
	for _, c := range rec.Commands {
		fmt.Fprintln(out, c)
	}
	return nil
}
