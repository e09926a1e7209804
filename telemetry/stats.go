// Package telemetry records per-step statistics and timing for experiment output.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/venation/systems"
)

// StepStats holds the state of the simulation after a reset or step.
type StepStats struct {
	Step   int  `csv:"step"`
	Reset  bool `csv:"reset"`
	Veins  int  `csv:"veins"`
	Auxins int  `csv:"auxins"`

	// Changes made by this transition
	Spawned int `csv:"spawned"`
	Sprayed int `csv:"sprayed"`
	Culled  int `csv:"culled"`

	// Veins with a nonzero direction after the step
	Growing int `csv:"growing"`

	// Distance from each auxin to its nearest vein
	NearestMean float64 `csv:"nearest_mean"`
	NearestStd  float64 `csv:"nearest_std"`
	NearestP10  float64 `csv:"nearest_p10"`
	NearestP50  float64 `csv:"nearest_p50"`
	NearestP90  float64 `csv:"nearest_p90"`
}

// NewStepStats captures stats for the current network and field.
func NewStepStats(step int, reset bool, net *systems.VeinNetwork, field *systems.AuxinField, res systems.StepResult) StepStats {
	s := StepStats{
		Step:    step,
		Reset:   reset,
		Veins:   net.Len(),
		Auxins:  field.Len(),
		Spawned: res.Spawned,
		Sprayed: res.Sprayed,
		Culled:  res.Culled,
		Growing: net.Growing(),
	}
	s.NearestMean, s.NearestStd, s.NearestP10, s.NearestP50, s.NearestP90 = ComputeDistanceStats(net.NearestDistances(field.Points))
	return s
}

// ComputeDistanceStats calculates mean, std, and percentiles from distances.
// Returns zeros for an empty slice.
func ComputeDistanceStats(values []float64) (mean, std, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean, std = stat.PopMeanStdDev(sorted, nil)
	p10 = stat.Quantile(0.10, stat.LinInterp, sorted, nil)
	p50 = stat.Quantile(0.50, stat.LinInterp, sorted, nil)
	p90 = stat.Quantile(0.90, stat.LinInterp, sorted, nil)
	return mean, std, p10, p50, p90
}

// LogStats logs the stats via slog.
func (s StepStats) LogStats() {
	msg := "step"
	if s.Reset {
		msg = "reset"
	}
	slog.Info(msg,
		"step", s.Step,
		"veins", s.Veins,
		"auxins", s.Auxins,
		"spawned", s.Spawned,
		"sprayed", s.Sprayed,
		"culled", s.Culled,
		"growing", s.Growing,
		"nearest_mean", s.NearestMean,
	)
}
