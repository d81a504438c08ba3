package dist

import (
	"math"

	"gonum.org/v1/gonum/num/dual"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/san-kum/dualdist/internal/dualnum"
)

// Categorical is the finite distribution over {0, ..., n-1} with
// probability vector p.
type Categorical struct {
	probs    []dual.Number
	delegate distuv.Categorical
}

// NewCategorical builds a Categorical variant from a plain real
// probability vector.
func NewCategorical(probs []float64) (*Categorical, error) {
	return NewCategoricalDual(dualnum.FromReals(probs))
}

// NewCategoricalDual builds a Categorical variant from dual probabilities.
// The entries must lie in [0, 1] and sum to one.
func NewCategoricalDual(probs []dual.Number) (*Categorical, error) {
	if len(probs) == 0 {
		return nil, &ConstructionError{Family: FamilyCategorical, Param: "p", Value: 0, Wrapped: ErrDomain}
	}
	sum := 0.0
	for _, p := range probs {
		if p.Real < 0 || p.Real > 1 {
			return nil, &ConstructionError{Family: FamilyCategorical, Param: "p", Value: p.Real, Wrapped: ErrDomain}
		}
		sum += p.Real
	}
	if math.Abs(sum-1) > 1e-9 {
		return nil, &ConstructionError{Family: FamilyCategorical, Param: "sum(p)", Value: sum, Wrapped: ErrDomain}
	}
	stored := make([]dual.Number, len(probs))
	copy(stored, probs)
	return &Categorical{
		probs:    stored,
		delegate: distuv.NewCategorical(dualnum.Reals(stored), nil),
	}, nil
}

func (c *Categorical) Family() Family { return FamilyCategorical }
func (*Categorical) isVariant()       {}

func (c *Categorical) inSupport(x float64) bool {
	return x == math.Floor(x) && x >= 0 && x < float64(len(c.probs))
}
func (c *Categorical) prob(x float64) float64    { return c.delegate.Prob(x) }
func (c *Categorical) logProb(x float64) float64 { return c.delegate.LogProb(x) }
func (c *Categorical) rand() float64             { return c.delegate.Rand() }

// formula selects by the real part of k and ignores k's infinitesimal part:
// a seeded index therefore reports a zero derivative, which is not a true
// derivative of anything. This is deliberate, documented behavior — the
// discrete index has no meaningful derivative — and a seed on a stored
// probability still flows through the selected entry.
func (c *Categorical) formula(k dual.Number) dual.Number {
	return c.probs[int(k.Real)]
}
