package config

var Presets = map[string]map[string]*Config{
	"normal": {
		"standard": {
			Family: "normal", Params: map[string]float64{"mu": 0, "sigma": 1},
			Grid: GridConfig{From: -4, To: 4, Points: 81},
		},
		"wide": {
			Family: "normal", Params: map[string]float64{"mu": 0, "sigma": 3},
			Grid: GridConfig{From: -10, To: 10, Points: 101},
		},
		"shifted": {
			Family: "normal", Params: map[string]float64{"mu": 2, "sigma": 0.5},
			Grid: GridConfig{From: 0, To: 4, Points: 81},
		},
	},
	"beta": {
		"uniform": {
			Family: "beta", Params: map[string]float64{"alpha": 1, "beta": 1},
			Grid: GridConfig{From: 0.01, To: 0.99, Points: 50},
		},
		"bathtub": {
			Family: "beta", Params: map[string]float64{"alpha": 0.5, "beta": 0.5},
			Grid: GridConfig{From: 0.05, To: 0.95, Points: 50},
		},
		"peaked": {
			Family: "beta", Params: map[string]float64{"alpha": 5, "beta": 2},
			Grid: GridConfig{From: 0.01, To: 0.99, Points: 50},
		},
	},
	"gamma": {
		"unit": {
			Family: "gamma", Params: map[string]float64{"alpha": 1, "theta": 1},
			Grid: GridConfig{From: 0.05, To: 8, Points: 80},
		},
		"peaked": {
			Family: "gamma", Params: map[string]float64{"alpha": 4, "theta": 0.5},
			Grid: GridConfig{From: 0.05, To: 8, Points: 80},
		},
	},
	"inverse_gamma": {
		"heavy": {
			Family: "inverse_gamma", Params: map[string]float64{"alpha": 2, "theta": 1},
			Grid: GridConfig{From: 0.05, To: 4, Points: 80},
		},
	},
	"student_t": {
		"cauchy_like": {
			Family: "student_t", Params: map[string]float64{"nu": 1},
			Grid: GridConfig{From: -6, To: 6, Points: 101},
		},
		"near_normal": {
			Family: "student_t", Params: map[string]float64{"nu": 30},
			Grid: GridConfig{From: -4, To: 4, Points: 81},
		},
	},
	"exponential": {
		"unit": {
			Family: "exponential", Params: map[string]float64{"theta": 1},
			Grid: GridConfig{From: 0.01, To: 6, Points: 80},
		},
	},
	"mvnormal": {
		"standard3": {
			Family: "mvnormal",
			Mu:     []float64{0, 0, 0},
			Cov: [][]float64{
				{1, 0, 0},
				{0, 1, 0},
				{0, 0, 1},
			},
		},
		"correlated2": {
			Family: "mvnormal",
			Mu:     []float64{0, 0},
			Cov: [][]float64{
				{1, 0.8},
				{0.8, 1},
			},
		},
	},
}

func GetPreset(family, preset string) *Config {
	familyPresets, ok := Presets[family]
	if !ok {
		return nil
	}
	cfg, ok := familyPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(family string) []string {
	familyPresets, ok := Presets[family]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(familyPresets))
	for name := range familyPresets {
		names = append(names, name)
	}
	return names
}
