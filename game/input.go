package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/venation/ui"
)

// handleInput processes keyboard triggers and pending panel actions.
func (g *Game) handleInput() {
	if rl.IsWindowResized() {
		g.controls.SetPosition(int32(rl.GetScreenWidth())-230, 10)
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		g.controls.Toggle()
	}

	action := g.pending
	g.pending = ui.ActionNone

	if rl.IsKeyPressed(rl.KeyR) {
		action = ui.ActionReset
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		action = ui.ActionStep
	}

	switch action {
	case ui.ActionReset:
		g.reset()
	case ui.ActionStep:
		g.step(1)
	case ui.ActionStepTen:
		g.step(10)
	}
}
