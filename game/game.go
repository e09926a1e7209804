// Package game runs the simulation inside a raylib window.
package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/venation/config"
	"github.com/pthm-cable/venation/sim"
	"github.com/pthm-cable/venation/telemetry"
	"github.com/pthm-cable/venation/ui"
)

// controlsLegend is drawn along the bottom edge of the window.
const controlsLegend = "[R] reset  [Space] step  [Tab] panel"

// Options configures a graphical game.
type Options struct {
	Seed      int64
	LogStats  bool
	OutputDir string
}

// Palette holds the resolved draw colors.
type Palette struct {
	Background rl.Color
	Vein       rl.Color
	VeinCore   rl.Color
	Direction  rl.Color
	Auxin      rl.Color
}

// NewPalette converts the configured hex colors.
func NewPalette(c config.ColorConfig) Palette {
	return Palette{
		Background: rl.GetColor(uint(c.Background)),
		Vein:       rl.GetColor(uint(c.Vein)),
		VeinCore:   rl.GetColor(uint(c.VeinCore)),
		Direction:  rl.GetColor(uint(c.Direction)),
		Auxin:      rl.GetColor(uint(c.Auxin)),
	}
}

// Game holds the window-side state around a Simulation.
// The window must be initialized before NewGame.
type Game struct {
	cfg     *config.Config
	sim     *sim.Simulation
	output  *telemetry.OutputManager
	palette Palette

	hud      *ui.HUD
	controls *ui.ControlsPanel

	// Trigger requested by the controls panel; applied on the next Update
	pending ui.ControlsAction
}

// NewGame creates a game and performs the initial reset.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, err
	}

	rl.SetRandomSeed(uint32(opts.Seed))

	g := &Game{
		cfg: cfg,
		sim: sim.New(cfg, raylibSource{}, sim.Options{
			LogStats: opts.LogStats,
			Output:   output,
		}),
		output:   output,
		palette:  NewPalette(cfg.Colors),
		hud:      ui.NewHUD(),
		controls: ui.NewControlsPanel(int32(rl.GetScreenWidth())-230, 10, 220),
	}

	g.reset()
	return g, nil
}

// Update applies input triggers. Growth only advances on an explicit trigger.
func (g *Game) Update() {
	g.handleInput()
	g.sim.Perf().RecordFrame()
}

// reset reseeds the leaf for the current window size.
func (g *Game) reset() {
	g.sim.Reset(rl.GetScreenWidth(), rl.GetScreenHeight())
}

// step runs n growth steps for the current window size.
func (g *Game) step(n int) {
	for i := 0; i < n; i++ {
		g.sim.Step(rl.GetScreenWidth(), rl.GetScreenHeight())
	}
}

// Draw renders the game.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(g.palette.Background)

	g.drawVeins()
	g.drawAuxins()

	last := g.sim.LastStats()
	g.hud.Draw(ui.HUDData{
		Title:   g.cfg.Screen.Title,
		Step:    g.sim.Steps(),
		Veins:   last.Veins,
		Auxins:  last.Auxins,
		Spawned: last.Spawned,
		Culled:  last.Culled,
		Growing: last.Growing,
		FPS:     rl.GetFPS(),
	})
	g.hud.DrawControls(int32(rl.GetScreenHeight()), controlsLegend)
	g.drawControls()

	rl.EndDrawing()
}

// drawControls renders the parameter panel and stores any edits.
func (g *Game) drawControls() {
	p := g.sim.Params()
	state, action := g.controls.Draw(ui.ControlsState{
		SprayCount:    p.SprayCount,
		CullRadius:    p.CullRadius,
		MinCullRadius: g.sim.MinCullRadius(),
	})
	if state.SprayCount != p.SprayCount {
		g.sim.SetSprayCount(state.SprayCount)
	}
	if state.CullRadius != p.CullRadius {
		g.sim.SetCullRadius(state.CullRadius)
	}
	if action != ui.ActionNone {
		g.pending = action
	}
}

// Unload releases all resources.
func (g *Game) Unload() error {
	return g.output.Close()
}

// Steps returns the number of steps since the last reset.
func (g *Game) Steps() int {
	return g.sim.Steps()
}
