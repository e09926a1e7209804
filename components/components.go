// Package components defines the plain data types shared by the simulation.
package components

import "gonum.org/v1/gonum/spatial/r2"

// Vein is a growth tip of the venation network.
// Direction is a per-step accumulator, recomputed from scratch on every step.
// After direction assignment it is either the zero vector or unit length.
type Vein struct {
	Position  r2.Vec
	Direction r2.Vec
}

// NewVein creates a vein at pos with a zero direction.
func NewVein(pos r2.Vec) Vein {
	return Vein{Position: pos}
}

// Growing reports whether the vein has a nonzero direction and will spawn a child.
func (v Vein) Growing() bool {
	return !IsZero(v.Direction)
}
