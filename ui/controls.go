package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlsAction is a trigger requested from the controls panel.
type ControlsAction int

const (
	ActionNone ControlsAction = iota
	ActionReset
	ActionStep
	ActionStepTen
)

// MaxSprayCount is the upper bound of the spray count slider.
const MaxSprayCount = 200

// MaxCullRadius is the upper bound of the cull radius slider.
const MaxCullRadius = 100

// ControlsState holds the adjustable growth parameters shown in the panel.
type ControlsState struct {
	SprayCount    int
	CullRadius    float64
	MinCullRadius float64
}

// ControlsPanel renders the right-side parameter panel.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		visible:  true,
	}
}

// SetPosition updates the panel position.
func (c *ControlsPanel) SetPosition(x, y int32) {
	c.x = x
	c.y = y
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Draw renders the panel and returns the edited state and any button pressed.
func (c *ControlsPanel) Draw(state ControlsState) (ControlsState, ControlsAction) {
	if !c.visible {
		return state, ActionNone
	}

	r := c.renderer
	padding := r.Theme.Padding
	r.DrawPanel(c.x, c.y, c.width, 190)

	x := float32(c.x + padding)
	y := c.y + padding
	sliderWidth := float32(c.width - padding*2)

	y = r.DrawSectionHeader(c.x+padding, y, "Growth")
	y += 4

	y = r.DrawLabelValue(c.x+padding, y, "Spray", fmt.Sprintf("%d", state.SprayCount))
	spray := gui.SliderBar(
		rl.Rectangle{X: x, Y: float32(y), Width: sliderWidth, Height: 16},
		"", "",
		float32(state.SprayCount), 0, MaxSprayCount,
	)
	state.SprayCount = int(spray)
	y += 24

	y = r.DrawLabelValue(c.x+padding, y, "Cull", fmt.Sprintf("%.1f", state.CullRadius))
	cull := gui.SliderBar(
		rl.Rectangle{X: x, Y: float32(y), Width: sliderWidth, Height: 16},
		"", "",
		float32(state.CullRadius), float32(state.MinCullRadius), MaxCullRadius,
	)
	if float64(cull) != float64(float32(state.CullRadius)) {
		state.CullRadius = float64(cull)
	}
	y += 30

	action := ActionNone
	buttonWidth := (sliderWidth - float32(padding)) / 2
	if gui.Button(rl.Rectangle{X: x, Y: float32(y), Width: buttonWidth, Height: 26}, "Reset") {
		action = ActionReset
	}
	if gui.Button(rl.Rectangle{X: x + buttonWidth + float32(padding), Y: float32(y), Width: buttonWidth, Height: 26}, "Step") {
		action = ActionStep
	}
	y += 32
	if gui.Button(rl.Rectangle{X: x, Y: float32(y), Width: sliderWidth, Height: 26}, "Step x10") {
		action = ActionStepTen
	}

	return state, action
}
