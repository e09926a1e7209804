package systems

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/venation/components"
)

// AuxinField holds the attractor points the vein network grows toward.
// Duplicates are allowed; points have no identity beyond their position.
type AuxinField struct {
	Points []r2.Vec
}

// Len returns the number of auxins in the field.
func (f *AuxinField) Len() int {
	return len(f.Points)
}

// Clear removes every auxin.
func (f *AuxinField) Clear() {
	f.Points = f.Points[:0]
}

// Spray appends count auxins drawn uniformly from the integer grid inside
// [0, width) x [0, height). The exclusive upper bound is width-1 (height-1),
// clamped to at least 1 so degenerate viewports still yield the origin.
func (f *AuxinField) Spray(rng RandSource, width, height, count int) int {
	if count <= 0 {
		return 0
	}
	maxX := max(width-1, 1)
	maxY := max(height-1, 1)

	for i := 0; i < count; i++ {
		x := rng.Intn(0, maxX)
		y := rng.Intn(0, maxY)
		f.Points = append(f.Points, components.Point(float64(x), float64(y)))
	}
	return count
}

// Cull removes every auxin within radius (inclusive) of any vein and returns
// the number removed. Survivors keep their relative order.
func (f *AuxinField) Cull(veins []components.Vein, radius float64) int {
	if len(veins) == 0 {
		return 0
	}

	kept := f.Points[:0]
	for _, p := range f.Points {
		if !withinAny(p, veins, radius) {
			kept = append(kept, p)
		}
	}

	removed := len(f.Points) - len(kept)
	f.Points = kept
	return removed
}

// withinAny reports whether p lies within radius of at least one vein.
func withinAny(p r2.Vec, veins []components.Vein, radius float64) bool {
	for i := range veins {
		if components.Distance(p, veins[i].Position) <= radius {
			return true
		}
	}
	return false
}
