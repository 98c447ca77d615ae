package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Scenario != "galaxy" {
		t.Errorf("expected scenario galaxy, got %s", cfg.Scenario)
	}
	if cfg.Stars != 300 {
		t.Errorf("expected 300 stars, got %d", cfg.Stars)
	}
	if cfg.Dt != 1e13 {
		t.Errorf("expected dt 1e13, got %v", cfg.Dt)
	}
	if cfg.G != 6.674e-11 {
		t.Errorf("expected G 6.674e-11, got %v", cfg.G)
	}
	if cfg.Domain.Width != 1e14 || cfg.Domain.TargetW != 1000 {
		t.Errorf("unexpected domain %+v", cfg.Domain)
	}
	if cfg.Genesis.AnchorMass != 1e31 {
		t.Errorf("expected anchor mass 1e31, got %v", cfg.Genesis.AnchorMass)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"bad scenario", func(c *Config) { c.Scenario = "nebula" }, ErrScenario},
		{"bad scheme", func(c *Config) { c.Integrator = "leapfrog" }, ErrScheme},
		{"bad velocity mode", func(c *Config) { c.Velocity.Mode = "spiral" }, ErrVelocity},
		{"zero stars", func(c *Config) { c.Stars = 0 }, ErrStars},
		{"negative dt", func(c *Config) { c.Dt = -1 }, ErrTimestep},
		{"nan dt", func(c *Config) { c.Dt = math.NaN() }, ErrTimestep},
		{"zero G", func(c *Config) { c.G = 0 }, ErrGravity},
		{"zero domain", func(c *Config) { c.Domain.Width = 0 }, ErrDomain},
		{"zero target", func(c *Config) { c.Domain.TargetH = 0 }, ErrDomain},
		{"zero step rate", func(c *Config) { c.StepRate = 0 }, ErrRate},
		{"zero anchor mass", func(c *Config) { c.Genesis.AnchorMass = 0 }, ErrMass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "universe.yaml")

	cfg := DefaultConfig()
	cfg.Integrator = "rk4"
	cfg.Stars = 42
	cfg.Velocity.Mode = "orbital"

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if *got != *cfg {
		t.Errorf("round trip changed config:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("integrator: rk4\nstars: 12\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Integrator != "rk4" || cfg.Stars != 12 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Dt != DefaultDt || cfg.Domain.Width != DefaultDomainExtent {
		t.Error("unnamed keys should keep their defaults")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("threebody")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.G != 1 || cfg.Dt != 1e-3 {
		t.Errorf("threebody preset has G %v, dt %v", cfg.G, cfg.Dt)
	}

	// The returned config is a copy.
	cfg.Stars = 9999
	if Presets["threebody"].Stars == 9999 {
		t.Error("mutating a preset copy leaked into the table")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestPresets_AllValid(t *testing.T) {
	for name := range Presets {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s does not validate: %v", name, err)
		}
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("listed %d presets, table has %d", len(names), len(Presets))
	}
	if !sort.StringsAreSorted(names) {
		t.Error("preset names should come back sorted")
	}
	found := false
	for _, n := range names {
		if n == "galaxy" {
			found = true
		}
	}
	if !found {
		t.Error("galaxy preset missing")
	}
}
