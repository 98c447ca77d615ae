package config

import "sort"

var Presets = map[string]*Config{
	"galaxy": {
		Scenario: "galaxy", Integrator: "verlet", Stars: 300,
		Dt: 1e13, G: 6.674e-11, MinSeparation: 1e8,
		StepRate: 120, FrameRate: 60,
		Domain:   DomainConfig{Width: 1e14, Height: 1e14, TargetW: 1000, TargetH: 1000},
		Genesis:  GenesisConfig{AnchorMass: 1e31, MassMean: 8e29, MassSigma: 5e28, Luminosity: 1.0, Temperature: 5000},
		Velocity: VelocityConfig{Mode: "zero"},
	},
	"cloud": {
		Scenario: "cloud", Integrator: "euler", Stars: 150,
		Dt: 1e13, G: 6.674e-11, MinSeparation: 1e8,
		StepRate: 120, FrameRate: 60,
		Domain:   DomainConfig{Width: 1e14, Height: 1e14, TargetW: 1000, TargetH: 1000},
		Genesis:  GenesisConfig{AnchorMass: 1e31, MassMean: 8e29, MassSigma: 5e28, Luminosity: 1.0, Temperature: 5000},
		Velocity: VelocityConfig{Mode: "uniform", Range: 1e5},
	},
	"orbital": {
		Scenario: "galaxy", Integrator: "rk4", Stars: 100,
		Dt: 1e12, G: 6.674e-11, MinSeparation: 1e8,
		StepRate: 120, FrameRate: 60,
		Domain:   DomainConfig{Width: 1e14, Height: 1e14, TargetW: 1000, TargetH: 1000},
		Genesis:  GenesisConfig{AnchorMass: 1e31, MassMean: 8e29, MassSigma: 5e28, Luminosity: 1.0, Temperature: 5000},
		Velocity: VelocityConfig{Mode: "orbital"},
	},
	"threebody": {
		Scenario: "threebody", Integrator: "rk4", Stars: 3,
		Dt: 1e-3, G: 1, MinSeparation: 1e-6,
		StepRate: 120, FrameRate: 60,
		Domain:   DomainConfig{Width: 2, Height: 2, TargetW: 1000, TargetH: 1000},
		Genesis:  GenesisConfig{AnchorMass: 1, MassMean: 1, MassSigma: 0, Luminosity: 1.0, Temperature: 5000},
		Velocity: VelocityConfig{Mode: "zero"},
	},
	"binary": {
		Scenario: "binary", Integrator: "verlet", Stars: 2,
		Dt: 1e-3, G: 1, MinSeparation: 1e-6,
		StepRate: 120, FrameRate: 60,
		Domain:   DomainConfig{Width: 8, Height: 8, TargetW: 1000, TargetH: 1000},
		Genesis:  GenesisConfig{AnchorMass: 1, MassMean: 1, MassSigma: 0, Luminosity: 1.0, Temperature: 5000},
		Velocity: VelocityConfig{Mode: "zero"},
	},
}

// GetPreset returns a private copy of the named preset, or nil when the
// name is unknown. Callers may overwrite fields freely.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
