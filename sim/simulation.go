// Package sim owns the venation state and drives resets and growth steps.
package sim

import (
	"log/slog"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/venation/components"
	"github.com/pthm-cable/venation/config"
	"github.com/pthm-cable/venation/systems"
	"github.com/pthm-cable/venation/telemetry"
)

// Options configures a Simulation.
type Options struct {
	LogStats bool                     // Log step stats via slog
	Output   *telemetry.OutputManager // CSV output (nil = disabled)
}

// Simulation is the single owner of the vein network and auxin field.
// It is not safe for concurrent use; Reset and Step run to completion before
// the state is read for drawing.
type Simulation struct {
	cfg    *config.Config
	params systems.GrowthParams
	rng    systems.RandSource

	network systems.VeinNetwork
	field   systems.AuxinField

	steps int
	last  telemetry.StepStats

	perf     *telemetry.PerfCollector
	output   *telemetry.OutputManager
	logStats bool
}

// New creates a simulation. Call Reset before the first Step.
func New(cfg *config.Config, rng systems.RandSource, opts Options) *Simulation {
	return &Simulation{
		cfg:      cfg,
		params:   cfg.GrowthParams(),
		rng:      rng,
		perf:     telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		output:   opts.Output,
		logStats: opts.LogStats,
	}
}

// Reset clears the simulation and seeds a new leaf for the given viewport.
func (s *Simulation) Reset(width, height int) {
	res := systems.Reset(&s.network, &s.field, s.rng, width, height, s.params)
	s.steps = 0
	s.record(true, res)
}

// Step runs one growth step against the given viewport.
func (s *Simulation) Step(width, height int) {
	s.perf.StartStep()
	res := systems.Step(&s.network, &s.field, s.rng, width, height, s.params, s.perf)
	s.perf.EndStep()

	s.steps++
	s.record(false, res)
}

// record captures stats for the transition just applied and forwards them.
func (s *Simulation) record(reset bool, res systems.StepResult) {
	s.last = telemetry.NewStepStats(s.steps, reset, &s.network, &s.field, res)

	every := max(s.cfg.Telemetry.LogEvery, 1)
	if s.logStats && s.steps%every == 0 {
		s.last.LogStats()
		if !reset {
			slog.Info("perf", "step", s.steps, "stats", s.perf.Stats())
		}
	}

	if err := s.output.WriteStep(s.last); err != nil {
		slog.Error("failed to write step", "error", err)
	}
	if !reset {
		if err := s.output.WritePerf(s.perf.Stats(), s.steps); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// Veins returns the vein network in insertion order. The slice must not be modified.
func (s *Simulation) Veins() []components.Vein {
	return s.network.Veins
}

// Auxins returns the current auxin positions. The slice must not be modified.
func (s *Simulation) Auxins() []r2.Vec {
	return s.field.Points
}

// Steps returns the number of steps since the last reset.
func (s *Simulation) Steps() int {
	return s.steps
}

// LastStats returns the stats of the most recent reset or step.
func (s *Simulation) LastStats() telemetry.StepStats {
	return s.last
}

// Perf returns the step timing collector.
func (s *Simulation) Perf() *telemetry.PerfCollector {
	return s.perf
}

// Params returns the growth parameters in effect.
func (s *Simulation) Params() systems.GrowthParams {
	return s.params
}

// MinCullRadius returns the smallest cull radius the current vein radius allows.
func (s *Simulation) MinCullRadius() float64 {
	return max(config.MinCullRadius, s.params.VeinRadius*4)
}

// SetSprayCount changes how many auxins are sprayed per step. Negative values clamp to 0.
func (s *Simulation) SetSprayCount(n int) {
	s.params.SprayCount = max(n, 0)
}

// SetCullRadius changes the cull radius, clamped to MinCullRadius.
func (s *Simulation) SetCullRadius(r float64) {
	s.params.CullRadius = max(r, s.MinCullRadius())
}
