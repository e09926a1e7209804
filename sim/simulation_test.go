package sim

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/venation/components"
	"github.com/pthm-cable/venation/config"
	"github.com/pthm-cable/venation/systems"
	"github.com/pthm-cable/venation/telemetry"
)

func newTestSim(t *testing.T, seed int64) *Simulation {
	t.Helper()
	return New(config.MustLoad(""), systems.NewSeededSource(seed), Options{})
}

func TestResetSeedsRoot(t *testing.T) {
	s := newTestSim(t, 1)

	s.Reset(800, 600)

	require.Len(t, s.Veins(), 1)
	assert.Equal(t, components.Point(400, 400), s.Veins()[0].Position)
	assert.LessOrEqual(t, len(s.Auxins()), 20)
	assert.Equal(t, 0, s.Steps())

	last := s.LastStats()
	assert.True(t, last.Reset)
	assert.Equal(t, 20, last.Sprayed)
	assert.Equal(t, len(s.Auxins()), last.Auxins)
}

func TestStepAdvances(t *testing.T) {
	s := newTestSim(t, 5)
	s.Reset(800, 600)

	for i := 1; i <= 10; i++ {
		before := len(s.Veins())
		s.Step(800, 600)
		assert.Equal(t, i, s.Steps())
		assert.Equal(t, before+s.LastStats().Spawned, len(s.Veins()))
	}
	assert.Equal(t, 10, s.Perf().SampleCount())
	assert.False(t, s.LastStats().Reset)
}

func TestResetAfterStepsRestarts(t *testing.T) {
	s := newTestSim(t, 5)
	s.Reset(800, 600)
	for i := 0; i < 5; i++ {
		s.Step(800, 600)
	}

	s.Reset(1024, 768)

	require.Len(t, s.Veins(), 1)
	assert.Equal(t, components.Point(512, 512), s.Veins()[0].Position)
	assert.Equal(t, 0, s.Steps())
}

func TestSameSeedSameRun(t *testing.T) {
	a := newTestSim(t, 77)
	b := newTestSim(t, 77)
	a.Reset(800, 600)
	b.Reset(800, 600)
	for i := 0; i < 15; i++ {
		a.Step(800, 600)
		b.Step(800, 600)
	}

	assert.Equal(t, a.Veins(), b.Veins())
	assert.Equal(t, a.Auxins(), b.Auxins())
}

func TestParamSetters(t *testing.T) {
	s := newTestSim(t, 1)

	s.SetSprayCount(-4)
	assert.Equal(t, 0, s.Params().SprayCount)
	s.SetSprayCount(55)
	assert.Equal(t, 55, s.Params().SprayCount)

	s.SetCullRadius(5)
	assert.Equal(t, config.MinCullRadius, s.Params().CullRadius)
	s.SetCullRadius(45)
	assert.Equal(t, 45.0, s.Params().CullRadius)
}

func TestOutputWritten(t *testing.T) {
	dir := t.TempDir()
	output, err := telemetry.NewOutputManager(dir)
	require.NoError(t, err)

	s := New(config.MustLoad(""), systems.NewSeededSource(3), Options{Output: output})
	s.Reset(800, 600)
	s.Step(800, 600)
	s.Step(800, 600)
	require.NoError(t, output.Close())

	data, err := os.ReadFile(filepath.Join(dir, "steps.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 4, "header, reset and two steps")
}

func TestRunHeadless(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	s, err := RunHeadless(config.MustLoad(""), HeadlessOptions{Seed: 9, Steps: 12, OutputDir: dir})
	require.NoError(t, err)

	assert.Equal(t, 12, s.Steps())
	for _, name := range []string{"steps.csv", "perf.csv", "config.yaml"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestRunHeadlessNoOutput(t *testing.T) {
	s, err := RunHeadless(config.MustLoad(""), HeadlessOptions{Seed: 9, Steps: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Steps())
}
