package systems

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/venation/components"
)

// VeinNetwork is the ordered collection of growth tips.
// Veins[0] is the root. Order is insertion order and is preserved.
type VeinNetwork struct {
	Veins []components.Vein
}

// Len returns the number of veins.
func (n *VeinNetwork) Len() int {
	return len(n.Veins)
}

// Seed clears the network and places a single root vein at pos.
func (n *VeinNetwork) Seed(pos r2.Vec) {
	n.Veins = append(n.Veins[:0], components.NewVein(pos))
}

// Nearest returns the index of the vein closest to p, or -1 if there are no veins.
// Ties go to the earliest vein.
func Nearest(veins []components.Vein, p r2.Vec) int {
	if len(veins) == 0 {
		return -1
	}
	best := 0
	bestDist := components.Distance(veins[0].Position, p)
	for i := 1; i < len(veins); i++ {
		if d := components.Distance(veins[i].Position, p); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// ComputeDirections assigns every auxin to its nearest vein, sums the
// displacement vectors per vein and normalizes the result.
// Veins with no assigned auxins end with a zero direction.
func (n *VeinNetwork) ComputeDirections(auxins []r2.Vec) {
	if len(n.Veins) == 0 {
		return
	}

	for i := range n.Veins {
		n.Veins[i].Direction = r2.Vec{}
	}

	for _, a := range auxins {
		v := &n.Veins[Nearest(n.Veins, a)]
		v.Direction = components.Add(v.Direction, r2.Sub(a, v.Position))
	}

	for i := range n.Veins {
		n.Veins[i].Direction = components.Normalize(n.Veins[i].Direction)
	}
}

// Grow spawns one child per vein with a nonzero direction, placed two step
// radii along that direction. Children are appended after the scan, so a vein
// born this step never spawns in the same step.
//
// maxVeins caps the network size; earlier veins get priority once the cap is
// near. Zero means unbounded. Returns the number of veins spawned.
func (n *VeinNetwork) Grow(stepRadius float64, maxVeins int) int {
	var spawned []components.Vein

	for _, v := range n.Veins {
		if !v.Growing() {
			continue
		}
		if maxVeins > 0 && len(n.Veins)+len(spawned) >= maxVeins {
			break
		}
		pos := components.Add(v.Position, components.Scale(v.Direction, stepRadius*2))
		spawned = append(spawned, components.NewVein(pos))
	}

	n.Veins = append(n.Veins, spawned...)
	return len(spawned)
}

// Growing returns how many veins currently have a nonzero direction.
func (n *VeinNetwork) Growing() int {
	count := 0
	for _, v := range n.Veins {
		if v.Growing() {
			count++
		}
	}
	return count
}

// NearestDistances returns, for each auxin, the distance to its nearest vein.
// Returns nil when the network is empty.
func (n *VeinNetwork) NearestDistances(auxins []r2.Vec) []float64 {
	if len(n.Veins) == 0 {
		return nil
	}
	dists := make([]float64, len(auxins))
	for i, a := range auxins {
		dists[i] = components.Distance(a, n.Veins[Nearest(n.Veins, a)].Position)
	}
	return dists
}
