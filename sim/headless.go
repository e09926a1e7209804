package sim

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/pthm-cable/venation/config"
	"github.com/pthm-cable/venation/systems"
	"github.com/pthm-cable/venation/telemetry"
)

// HeadlessOptions configures a run without graphics.
type HeadlessOptions struct {
	Seed      int64
	Steps     int
	LogStats  bool
	OutputDir string
}

// RunHeadless resets once and runs the requested number of steps on a
// seeded source, writing output if a directory is given.
func RunHeadless(cfg *config.Config, opts HeadlessOptions) (*Simulation, error) {
	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	defer output.Close()

	if err := output.WriteConfig(cfg); err != nil {
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	s := New(cfg, systems.NewSeededSource(opts.Seed), Options{
		LogStats: opts.LogStats,
		Output:   output,
	})

	start := time.Now()
	s.Reset(cfg.Screen.Width, cfg.Screen.Height)
	for i := 0; i < opts.Steps; i++ {
		s.Step(cfg.Screen.Width, cfg.Screen.Height)
	}

	last := s.LastStats()
	slog.Info("headless run complete",
		"steps", s.Steps(),
		"veins", last.Veins,
		"auxins", last.Auxins,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	if err := output.Close(); err != nil {
		return nil, fmt.Errorf("closing output: %w", err)
	}
	return s, nil
}
