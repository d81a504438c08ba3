package config

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/dualdist/internal/dist"
)

const (
	DefaultGridFrom   = -4.0
	DefaultGridTo     = 4.0
	DefaultGridPoints = 81
	DefaultStep       = 1e-6
)

// Config describes one distribution variant and the evaluation grid used by
// the plot and check commands.
type Config struct {
	Family string             `yaml:"family"`
	Params map[string]float64 `yaml:"params,omitempty"`
	Probs  []float64          `yaml:"probs,omitempty"`
	Mu     []float64          `yaml:"mu,omitempty"`
	Cov    [][]float64        `yaml:"cov,omitempty"`
	Grid   GridConfig         `yaml:"grid"`
	Step   float64            `yaml:"step"`
}

// GridConfig is an inclusive evaluation range with a point count.
type GridConfig struct {
	From   float64 `yaml:"from"`
	To     float64 `yaml:"to"`
	Points int     `yaml:"points"`
}

func DefaultConfig() *Config {
	return &Config{
		Family: "normal",
		Params: map[string]float64{"mu": 0, "sigma": 1},
		Grid: GridConfig{
			From:   DefaultGridFrom,
			To:     DefaultGridTo,
			Points: DefaultGridPoints,
		},
		Step: DefaultStep,
	}
}

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

// Build constructs the variant the config describes. Parameter validation is
// the constructors' job; Build only maps names to families.
func (c *Config) Build() (dist.Variant, error) {
	p := func(name string) float64 { return c.Params[name] }
	switch c.Family {
	case "bernoulli":
		return dist.NewBernoulli(p("p"))
	case "categorical":
		return dist.NewCategorical(c.Probs)
	case "normal":
		return dist.NewNormal(p("mu"), p("sigma"))
	case "mvnormal":
		n := len(c.Cov)
		if n == 0 {
			return nil, fmt.Errorf("config: mvnormal requires a covariance matrix")
		}
		data := make([]float64, 0, n*n)
		for _, row := range c.Cov {
			if len(row) != n {
				return nil, fmt.Errorf("config: covariance is not square")
			}
			data = append(data, row...)
		}
		return dist.NewMultivariateNormal(c.Mu, mat.NewSymDense(n, data))
	case "student_t":
		return dist.NewStudentsT(p("nu"))
	case "exponential":
		return dist.NewExponential(p("theta"))
	case "gamma":
		return dist.NewGamma(p("alpha"), p("theta"))
	case "inverse_gamma":
		return dist.NewInverseGamma(p("alpha"), p("theta"))
	case "beta":
		return dist.NewBeta(p("alpha"), p("beta"))
	default:
		return nil, fmt.Errorf("config: unknown family %q", c.Family)
	}
}

// GridPoints expands the grid into evaluation points.
func (c *Config) GridPoints() []float64 {
	n := c.Grid.Points
	if n < 2 {
		n = 2
	}
	step := (c.Grid.To - c.Grid.From) / float64(n-1)
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = c.Grid.From + float64(i)*step
	}
	return xs
}
