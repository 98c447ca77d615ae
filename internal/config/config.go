// Package config loads, saves and validates simulation configuration.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Canonical simulation constants. The galaxy scenario models a star
// cloud around a central black hole, so the scales are astronomical:
// meters, kilograms, seconds.
const (
	DefaultStars         = 300
	DefaultDt            = 1e13
	DefaultG             = 6.674e-11
	DefaultDomainExtent  = 1e14
	DefaultTargetScreen  = 1000
	DefaultAnchorMass    = 1e31
	DefaultMassMean      = 8e29
	DefaultMassSigma     = 5e28
	DefaultLuminosity    = 1.0
	DefaultTemperature   = 5000.0
	DefaultStepRate      = 120.0
	DefaultFrameRate     = 60.0
	DefaultMinSeparation = 1e8
	DefaultVelRange      = 1e5
)

var (
	ErrScenario = errors.New("config: unknown scenario")
	ErrScheme   = errors.New("config: unknown integrator scheme")
	ErrStars    = errors.New("config: star count must be positive")
	ErrTimestep = errors.New("config: timestep must be positive and finite")
	ErrGravity  = errors.New("config: gravitational constant must be positive")
	ErrDomain   = errors.New("config: domain extents must be positive")
	ErrRate     = errors.New("config: loop rates must be positive")
	ErrMass     = errors.New("config: masses must be positive")
	ErrVelocity = errors.New("config: unknown velocity mode")
)

type Config struct {
	Scenario      string  `yaml:"scenario"`
	Integrator    string  `yaml:"integrator"`
	Stars         int     `yaml:"stars"`
	Dt            float64 `yaml:"dt"`
	G             float64 `yaml:"g"`
	MinSeparation float64 `yaml:"min_separation"`
	StepRate      float64 `yaml:"step_rate"`
	FrameRate     float64 `yaml:"frame_rate"`
	Workers       int     `yaml:"workers"`

	Domain   DomainConfig   `yaml:"domain"`
	Genesis  GenesisConfig  `yaml:"genesis"`
	Velocity VelocityConfig `yaml:"velocity"`
}

type DomainConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	TargetW int     `yaml:"target_width"`
	TargetH int     `yaml:"target_height"`
}

type GenesisConfig struct {
	AnchorMass  float64 `yaml:"anchor_mass"`
	MassMean    float64 `yaml:"mass_mean"`
	MassSigma   float64 `yaml:"mass_sigma"`
	Luminosity  float64 `yaml:"luminosity"`
	Temperature float64 `yaml:"temperature"`
	Seed        int64   `yaml:"seed"`
}

type VelocityConfig struct {
	Mode  string  `yaml:"mode"`
	Range float64 `yaml:"range"`
}

func DefaultConfig() *Config {
	return &Config{
		Scenario:      "galaxy",
		Integrator:    "verlet",
		Stars:         DefaultStars,
		Dt:            DefaultDt,
		G:             DefaultG,
		MinSeparation: DefaultMinSeparation,
		StepRate:      DefaultStepRate,
		FrameRate:     DefaultFrameRate,
		Domain: DomainConfig{
			Width:   DefaultDomainExtent,
			Height:  DefaultDomainExtent,
			TargetW: DefaultTargetScreen,
			TargetH: DefaultTargetScreen,
		},
		Genesis: GenesisConfig{
			AnchorMass:  DefaultAnchorMass,
			MassMean:    DefaultMassMean,
			MassSigma:   DefaultMassSigma,
			Luminosity:  DefaultLuminosity,
			Temperature: DefaultTemperature,
		},
		Velocity: VelocityConfig{
			Mode:  "zero",
			Range: DefaultVelRange,
		},
	}
}

// Load reads a YAML file over the defaults, so a partial file only
// overrides the keys it names.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

var (
	scenarios  = map[string]bool{"galaxy": true, "threebody": true, "binary": true, "cloud": true}
	schemes    = map[string]bool{"euler": true, "verlet": true, "rk4": true}
	velocities = map[string]bool{"zero": true, "uniform": true, "orbital": true}
)

// Validate rejects a configuration that must never enter the step loop.
func (c *Config) Validate() error {
	if !scenarios[c.Scenario] {
		return fmt.Errorf("%w: %q", ErrScenario, c.Scenario)
	}
	if !schemes[c.Integrator] {
		return fmt.Errorf("%w: %q", ErrScheme, c.Integrator)
	}
	if !velocities[c.Velocity.Mode] {
		return fmt.Errorf("%w: %q", ErrVelocity, c.Velocity.Mode)
	}
	if c.Stars <= 0 {
		return fmt.Errorf("%w: %d", ErrStars, c.Stars)
	}
	if c.Dt <= 0 || math.IsNaN(c.Dt) || math.IsInf(c.Dt, 0) {
		return fmt.Errorf("%w: %v", ErrTimestep, c.Dt)
	}
	if c.G <= 0 {
		return fmt.Errorf("%w: %v", ErrGravity, c.G)
	}
	if c.Domain.Width <= 0 || c.Domain.Height <= 0 || c.Domain.TargetW <= 0 || c.Domain.TargetH <= 0 {
		return fmt.Errorf("%w: %+v", ErrDomain, c.Domain)
	}
	if c.StepRate <= 0 || c.FrameRate <= 0 {
		return fmt.Errorf("%w: step %v, frame %v", ErrRate, c.StepRate, c.FrameRate)
	}
	if c.Genesis.AnchorMass <= 0 || c.Genesis.MassMean <= 0 {
		return fmt.Errorf("%w: anchor %v, mean %v", ErrMass, c.Genesis.AnchorMass, c.Genesis.MassMean)
	}
	return nil
}
