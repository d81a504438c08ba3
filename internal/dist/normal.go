package dist

import (
	"math"

	"gonum.org/v1/gonum/num/dual"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/san-kum/dualdist/internal/dualnum"
)

// Normal is the Gaussian distribution with mean mu and standard deviation
// sigma.
type Normal struct {
	mu, sigma dual.Number
	delegate  distuv.Normal
}

// NewNormal builds a Normal variant from plain real parameters.
func NewNormal(mu, sigma float64) (*Normal, error) {
	return NewNormalDual(dualnum.FromReal(mu), dualnum.FromReal(sigma))
}

// NewNormalDual builds a Normal variant from dual parameters.
func NewNormalDual(mu, sigma dual.Number) (*Normal, error) {
	if sigma.Real <= 0 {
		return nil, &ConstructionError{Family: FamilyNormal, Param: "sigma", Value: sigma.Real, Wrapped: ErrDomain}
	}
	return &Normal{
		mu:       mu,
		sigma:    sigma,
		delegate: distuv.Normal{Mu: mu.Real, Sigma: sigma.Real},
	}, nil
}

func (n *Normal) Family() Family { return FamilyNormal }
func (*Normal) isVariant()       {}

func (n *Normal) inSupport(float64) bool    { return true }
func (n *Normal) prob(x float64) float64    { return n.delegate.Prob(x) }
func (n *Normal) logProb(x float64) float64 { return n.delegate.LogProb(x) }
func (n *Normal) rand() float64             { return n.delegate.Rand() }

// exp(-(x-mu)^2 / (2 sigma^2)) / (sigma sqrt(2 pi))
func (n *Normal) formula(x dual.Number) dual.Number {
	z := dual.Sub(x, n.mu)
	expo := dualnum.Div(dual.Mul(z, z), dualnum.Scale(2, dual.Mul(n.sigma, n.sigma)))
	kernel := dual.Exp(dualnum.Scale(-1, expo))
	return dualnum.Div(kernel, dualnum.Scale(math.Sqrt(2*math.Pi), n.sigma))
}
