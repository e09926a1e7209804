// Package config provides configuration loading and validation for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/venation/systems"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// MinCullRadius is the smallest cull radius accepted. Below it, auxins sprayed
// next to a fresh vein are never separated from it.
const MinCullRadius = 20.0

// Validation errors.
var (
	ErrInvalidScreen      = errors.New("screen dimensions must be positive")
	ErrNegativeValue      = errors.New("value must not be negative")
	ErrRadiusMismatch     = errors.New("auxin radius must equal vein radius")
	ErrCullRadiusTooSmall = errors.New("cull radius too small")
)

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Vein      VeinConfig      `yaml:"vein"`
	Auxin     AuxinConfig     `yaml:"auxin"`
	Colors    ColorConfig     `yaml:"colors"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// VeinConfig holds vein growth and drawing parameters.
type VeinConfig struct {
	Radius         float64 `yaml:"radius"`          // Growth step is twice this
	DirectionScale float64 `yaml:"direction_scale"` // Direction line length in pixels
	MaxCount       int     `yaml:"max_count"`       // Network size cap (0 = unbounded)
}

// AuxinConfig holds attractor parameters.
type AuxinConfig struct {
	Radius     float64 `yaml:"radius"`
	SprayCount int     `yaml:"spray_count"`
	CullRadius float64 `yaml:"cull_radius"`
}

// ColorConfig holds RGBA colors as 0xRRGGBBAA.
type ColorConfig struct {
	Background uint32 `yaml:"background"`
	Vein       uint32 `yaml:"vein"`
	VeinCore   uint32 `yaml:"vein_core"`
	Direction  uint32 `yaml:"direction"`
	Auxin      uint32 `yaml:"auxin"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow int `yaml:"perf_window"` // Steps averaged by the perf collector
	LogEvery   int `yaml:"log_every"`   // Log stats every N steps
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	VeinRadius32     float32 // Vein.Radius as float32
	CoreRadius32     float32 // Half the vein radius, for the core circle
	AuxinRadius32    float32 // Auxin.Radius as float32
	DirectionScale32 float32 // Vein.DirectionScale as float32
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used. The result is validated.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg.computeDerived()
	return cfg, nil
}

// MustLoad is like Load but panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load: %v", err))
	}
	return cfg
}

// Validate checks the configuration invariants.
func (c *Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen %dx%d: %w", c.Screen.Width, c.Screen.Height, ErrInvalidScreen)
	}
	if c.Vein.Radius < 0 {
		return fmt.Errorf("vein.radius %g: %w", c.Vein.Radius, ErrNegativeValue)
	}
	if c.Vein.MaxCount < 0 {
		return fmt.Errorf("vein.max_count %d: %w", c.Vein.MaxCount, ErrNegativeValue)
	}
	if c.Auxin.SprayCount < 0 {
		return fmt.Errorf("auxin.spray_count %d: %w", c.Auxin.SprayCount, ErrNegativeValue)
	}
	if c.Auxin.Radius != c.Vein.Radius {
		return fmt.Errorf("auxin.radius %g, vein.radius %g: %w", c.Auxin.Radius, c.Vein.Radius, ErrRadiusMismatch)
	}
	if c.Auxin.CullRadius < MinCullRadius {
		return fmt.Errorf("auxin.cull_radius %g below %g: %w", c.Auxin.CullRadius, MinCullRadius, ErrCullRadiusTooSmall)
	}
	// A new vein lands two radii from its parent; the cull radius must cover twice that.
	if c.Auxin.CullRadius < c.Vein.Radius*4 {
		return fmt.Errorf("auxin.cull_radius %g below 4*vein.radius %g: %w", c.Auxin.CullRadius, c.Vein.Radius*4, ErrCullRadiusTooSmall)
	}
	return nil
}

// GrowthParams returns the core growth configuration record.
func (c *Config) GrowthParams() systems.GrowthParams {
	return systems.GrowthParams{
		VeinRadius: c.Vein.Radius,
		SprayCount: c.Auxin.SprayCount,
		CullRadius: c.Auxin.CullRadius,
		MaxVeins:   c.Vein.MaxCount,
	}
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.VeinRadius32 = float32(c.Vein.Radius)
	c.Derived.CoreRadius32 = float32(c.Vein.Radius / 2)
	c.Derived.AuxinRadius32 = float32(c.Auxin.Radius)
	c.Derived.DirectionScale32 = float32(c.Vein.DirectionScale)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
