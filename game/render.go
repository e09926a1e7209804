package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"
)

func toVector2(v r2.Vec) rl.Vector2 {
	return rl.Vector2{X: float32(v.X), Y: float32(v.Y)}
}

// drawVeins renders each vein as a ring with a dark core and a line along its
// growth direction. Directions are scaled for display only.
func (g *Game) drawVeins() {
	d := g.cfg.Derived
	for _, v := range g.sim.Veins() {
		x, y := int32(v.Position.X), int32(v.Position.Y)
		rl.DrawCircle(x, y, d.VeinRadius32, g.palette.Vein)
		rl.DrawCircle(x, y, d.CoreRadius32, g.palette.VeinCore)

		pos := toVector2(v.Position)
		end := rl.Vector2Add(pos, rl.Vector2Scale(toVector2(v.Direction), d.DirectionScale32))
		rl.DrawLineV(pos, end, g.palette.Direction)
	}
}

// drawAuxins renders auxins as filled circles.
func (g *Game) drawAuxins() {
	r := g.cfg.Derived.AuxinRadius32
	for _, a := range g.sim.Auxins() {
		rl.DrawCircle(int32(a.X), int32(a.Y), r, g.palette.Auxin)
	}
}
