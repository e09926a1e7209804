package systems

import "github.com/pthm-cable/venation/components"

// Phase names reported to a PhaseTimer during Step.
const (
	PhaseDirections = "directions"
	PhaseGrow       = "grow"
	PhaseSpray      = "spray"
	PhaseCull       = "cull"
)

// GrowthParams is the configuration record consumed by Reset and Step.
type GrowthParams struct {
	VeinRadius float64 // Growth step is twice this
	SprayCount int     // Auxins added on reset and on every step
	CullRadius float64 // Auxins within this distance of a vein are consumed
	MaxVeins   int     // Network size cap (0 = unbounded)
}

// StepResult reports what a Reset or Step changed.
type StepResult struct {
	Spawned int
	Sprayed int
	Culled  int
}

// PhaseTimer receives a call at the start of each Step phase.
type PhaseTimer interface {
	StartPhase(name string)
}

// RootPosition returns where the root vein is seeded for a viewport:
// horizontally centered, two thirds of the way down.
func RootPosition(width, height int) (x, y float64) {
	return float64(width / 2), float64(height * 2 / 3)
}

// Reset clears both collections, seeds the root vein, sprays the initial
// auxins and culls any that landed on the root.
//
// Reset and Step are not reentrant and must not run concurrently on the same
// network and field.
func Reset(net *VeinNetwork, field *AuxinField, rng RandSource, width, height int, p GrowthParams) StepResult {
	field.Clear()
	net.Seed(components.Point(RootPosition(width, height)))

	var res StepResult
	res.Sprayed = field.Spray(rng, width, height, p.SprayCount)
	res.Culled = field.Cull(net.Veins, p.CullRadius)
	return res
}

// Step advances the simulation by one tick: compute directions, grow, spray,
// then cull against the grown network. timer may be nil.
func Step(net *VeinNetwork, field *AuxinField, rng RandSource, width, height int, p GrowthParams, timer PhaseTimer) StepResult {
	var res StepResult

	startPhase(timer, PhaseDirections)
	net.ComputeDirections(field.Points)

	startPhase(timer, PhaseGrow)
	res.Spawned = net.Grow(p.VeinRadius, p.MaxVeins)

	startPhase(timer, PhaseSpray)
	res.Sprayed = field.Spray(rng, width, height, p.SprayCount)

	startPhase(timer, PhaseCull)
	res.Culled = field.Cull(net.Veins, p.CullRadius)

	return res
}

func startPhase(timer PhaseTimer, name string) {
	if timer != nil {
		timer.StartPhase(name)
	}
}
