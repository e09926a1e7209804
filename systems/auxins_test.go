package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/venation/components"
)

// scriptedSource returns queued values in order, wrapped into [lo, hi).
type scriptedSource struct {
	values []int
	calls  int
}

func (s *scriptedSource) Intn(lo, hi int) int {
	v := s.values[s.calls%len(s.values)]
	s.calls++
	if v < lo || v >= hi {
		v = lo + (v-lo)%(hi-lo)
	}
	return v
}

func TestSprayBounds(t *testing.T) {
	f := &AuxinField{}
	rng := NewSeededSource(7)

	n := f.Spray(rng, 800, 600, 500)

	require.Equal(t, 500, n)
	require.Equal(t, 500, f.Len())
	for _, p := range f.Points {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.Less(t, p.X, 800.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.Less(t, p.Y, 600.0)
	}
}

func TestSprayAppends(t *testing.T) {
	f := &AuxinField{Points: []r2.Vec{components.Point(1, 2)}}
	rng := &scriptedSource{values: []int{10, 20, 30, 40}}

	f.Spray(rng, 800, 600, 2)

	assert.Equal(t, []r2.Vec{
		components.Point(1, 2),
		components.Point(10, 20),
		components.Point(30, 40),
	}, f.Points)
}

func TestSprayZeroCount(t *testing.T) {
	f := &AuxinField{}
	assert.Equal(t, 0, f.Spray(NewSeededSource(1), 800, 600, 0))
	assert.Equal(t, 0, f.Spray(NewSeededSource(1), 800, 600, -3))
	assert.Equal(t, 0, f.Len())
}

func TestSprayDegenerateViewport(t *testing.T) {
	f := &AuxinField{}
	f.Spray(NewSeededSource(1), 1, 1, 5)

	require.Equal(t, 5, f.Len())
	for _, p := range f.Points {
		assert.Equal(t, components.Point(0, 0), p)
	}
}

func TestCullRemovesWithinAnyVein(t *testing.T) {
	veins := veinsAt(components.Point(0, 0), components.Point(100, 0)).Veins
	f := &AuxinField{Points: []r2.Vec{
		components.Point(50, 0),  // 50 from both, survives
		components.Point(95, 0),  // close to the second vein only
		components.Point(0, 30),  // exactly on the boundary
		components.Point(200, 0), // far from everything
		components.Point(10, 10), // close to the first vein
		components.Point(0, 31),  // just outside
	}}

	removed := f.Cull(veins, 30)

	assert.Equal(t, 3, removed)
	assert.Equal(t, []r2.Vec{
		components.Point(50, 0),
		components.Point(200, 0),
		components.Point(0, 31),
	}, f.Points)
}

func TestCullOverlappingVeinsRemovesOnce(t *testing.T) {
	veins := veinsAt(components.Point(0, 0), components.Point(1, 0)).Veins
	f := &AuxinField{Points: []r2.Vec{components.Point(0, 1), components.Point(500, 500)}}

	assert.Equal(t, 1, f.Cull(veins, 30))
	assert.Equal(t, []r2.Vec{components.Point(500, 500)}, f.Points)
}

func TestCullNoVeins(t *testing.T) {
	f := &AuxinField{Points: []r2.Vec{components.Point(0, 0), components.Point(1, 1)}}

	assert.Equal(t, 0, f.Cull(nil, 1000))
	assert.Equal(t, 2, f.Len())
}

func TestCullKeepsDuplicates(t *testing.T) {
	veins := veinsAt(components.Point(0, 0)).Veins
	f := &AuxinField{Points: []r2.Vec{
		components.Point(100, 0),
		components.Point(100, 0),
		components.Point(1, 0),
		components.Point(1, 0),
	}}

	assert.Equal(t, 2, f.Cull(veins, 30))
	assert.Equal(t, []r2.Vec{components.Point(100, 0), components.Point(100, 0)}, f.Points)
}
