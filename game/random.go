package game

import rl "github.com/gen2brain/raylib-go/raylib"

// raylibSource draws auxin coordinates from raylib's generator.
type raylibSource struct{}

// Intn implements systems.RandSource. GetRandomValue is inclusive on both ends.
func (raylibSource) Intn(lo, hi int) int {
	return int(rl.GetRandomValue(int32(lo), int32(hi-1)))
}
