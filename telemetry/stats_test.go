package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/venation/components"
	"github.com/pthm-cable/venation/systems"
)

func TestComputeDistanceStatsEmpty(t *testing.T) {
	mean, std, p10, p50, p90 := ComputeDistanceStats(nil)
	assert.Zero(t, mean)
	assert.Zero(t, std)
	assert.Zero(t, p10)
	assert.Zero(t, p50)
	assert.Zero(t, p90)
}

func TestComputeDistanceStatsConstant(t *testing.T) {
	mean, std, p10, p50, p90 := ComputeDistanceStats([]float64{40, 40, 40, 40})
	assert.InDelta(t, 40, mean, 1e-12)
	assert.InDelta(t, 0, std, 1e-12)
	assert.InDelta(t, 40, p10, 1e-12)
	assert.InDelta(t, 40, p50, 1e-12)
	assert.InDelta(t, 40, p90, 1e-12)
}

func TestComputeDistanceStatsUnsortedInput(t *testing.T) {
	values := []float64{90, 10, 50, 30, 70}
	mean, std, p10, p50, p90 := ComputeDistanceStats(values)

	assert.InDelta(t, 50, mean, 1e-12)
	assert.Greater(t, std, 0.0)
	assert.True(t, p10 <= p50 && p50 <= p90, "percentiles out of order: %v %v %v", p10, p50, p90)
	assert.GreaterOrEqual(t, p10, 10.0)
	assert.LessOrEqual(t, p90, 90.0)
	// Input must not be reordered.
	assert.Equal(t, []float64{90, 10, 50, 30, 70}, values)
}

func TestNewStepStats(t *testing.T) {
	net := &systems.VeinNetwork{Veins: []components.Vein{
		components.NewVein(components.Point(0, 0)),
		components.NewVein(components.Point(100, 0)),
	}}
	net.Veins[0].Direction = components.Point(1, 0)
	field := &systems.AuxinField{Points: []r2.Vec{components.Point(0, 40), components.Point(100, 40)}}

	s := NewStepStats(3, false, net, field, systems.StepResult{Spawned: 1, Sprayed: 20, Culled: 19})

	assert.Equal(t, 3, s.Step)
	assert.False(t, s.Reset)
	assert.Equal(t, 2, s.Veins)
	assert.Equal(t, 2, s.Auxins)
	assert.Equal(t, 1, s.Spawned)
	assert.Equal(t, 20, s.Sprayed)
	assert.Equal(t, 19, s.Culled)
	assert.Equal(t, 1, s.Growing)
	assert.InDelta(t, 40, s.NearestMean, 1e-12)
}
