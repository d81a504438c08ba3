package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/san-kum/dualdist/internal/dist"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Family != "normal" {
		t.Errorf("expected family normal, got %s", cfg.Family)
	}
	if cfg.Grid.Points < 2 {
		t.Error("grid should have at least two points")
	}
	if cfg.Step <= 0 {
		t.Error("step should be positive")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.yaml")

	cfg := &Config{
		Family: "beta",
		Params: map[string]float64{"alpha": 2, "beta": 3.5},
		Grid:   GridConfig{From: 0.01, To: 0.99, Points: 50},
		Step:   1e-6,
	}
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Family != "beta" {
		t.Errorf("expected family beta, got %s", loaded.Family)
	}
	if loaded.Params["alpha"] != 2 || loaded.Params["beta"] != 3.5 {
		t.Errorf("params did not round-trip: %v", loaded.Params)
	}
	if loaded.Grid.Points != 50 {
		t.Errorf("expected 50 grid points, got %d", loaded.Grid.Points)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBuildFamilies(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want dist.Family
	}{
		{"bernoulli", Config{Family: "bernoulli", Params: map[string]float64{"p": 0.3}}, dist.FamilyBernoulli},
		{"categorical", Config{Family: "categorical", Probs: []float64{0.2, 0.3, 0.5}}, dist.FamilyCategorical},
		{"normal", Config{Family: "normal", Params: map[string]float64{"mu": 0, "sigma": 1}}, dist.FamilyNormal},
		{
			"mvnormal",
			Config{Family: "mvnormal", Mu: []float64{0, 0}, Cov: [][]float64{{1, 0}, {0, 1}}},
			dist.FamilyMultivariateNormal,
		},
		{"student_t", Config{Family: "student_t", Params: map[string]float64{"nu": 3}}, dist.FamilyStudentsT},
		{"exponential", Config{Family: "exponential", Params: map[string]float64{"theta": 1}}, dist.FamilyExponential},
		{"gamma", Config{Family: "gamma", Params: map[string]float64{"alpha": 2, "theta": 1}}, dist.FamilyGamma},
		{"inverse_gamma", Config{Family: "inverse_gamma", Params: map[string]float64{"alpha": 2, "theta": 1}}, dist.FamilyInverseGamma},
		{"beta", Config{Family: "beta", Params: map[string]float64{"alpha": 2, "beta": 2}}, dist.FamilyBeta},
	}

	for _, tc := range tests {
		v, err := tc.cfg.Build()
		if err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if v.Family() != tc.want {
			t.Errorf("%s: expected family %v, got %v", tc.name, tc.want, v.Family())
		}
	}
}

func TestBuildUnknownFamily(t *testing.T) {
	cfg := Config{Family: "poisson"}
	if _, err := cfg.Build(); err == nil {
		t.Error("expected error for unknown family")
	}
}

func TestBuildInvalidParams(t *testing.T) {
	cfg := Config{Family: "normal", Params: map[string]float64{"mu": 0, "sigma": -1}}
	_, err := cfg.Build()
	if !errors.Is(err, dist.ErrDomain) {
		t.Errorf("expected ErrDomain, got %v", err)
	}
}

func TestBuildMissingCovariance(t *testing.T) {
	cfg := Config{Family: "mvnormal"}
	if _, err := cfg.Build(); err == nil {
		t.Error("expected error for mvnormal without a covariance matrix")
	}
}

func TestGridPoints(t *testing.T) {
	cfg := Config{Grid: GridConfig{From: 0, To: 1, Points: 5}}
	xs := cfg.GridPoints()
	if len(xs) != 5 {
		t.Fatalf("expected 5 points, got %d", len(xs))
	}
	if xs[0] != 0 || xs[4] != 1 {
		t.Errorf("expected endpoints 0 and 1, got %g and %g", xs[0], xs[4])
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("normal", "standard")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Params["sigma"] != 1 {
		t.Errorf("expected sigma 1, got %f", cfg.Params["sigma"])
	}
	if _, err := cfg.Build(); err != nil {
		t.Errorf("preset should build: %v", err)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("normal", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "standard"); cfg != nil {
		t.Error("expected nil for nonexistent family")
	}
}

func TestListPresets(t *testing.T) {
	if presets := ListPresets("beta"); len(presets) == 0 {
		t.Error("expected presets for beta")
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent family")
	}
}

func TestAllPresetsBuild(t *testing.T) {
	for family, presets := range Presets {
		for name, cfg := range presets {
			if _, err := cfg.Build(); err != nil {
				t.Errorf("%s/%s: %v", family, name, err)
			}
		}
	}
}
