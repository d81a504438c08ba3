package dist

import (
	"gonum.org/v1/gonum/num/dual"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/san-kum/dualdist/internal/dualnum"
)

// Beta is the beta distribution on (0, 1) with shape parameters alpha and
// beta.
type Beta struct {
	alpha, beta dual.Number
	delegate    distuv.Beta
}

// NewBeta builds a Beta variant from plain real shape parameters.
func NewBeta(alpha, beta float64) (*Beta, error) {
	return NewBetaDual(dualnum.FromReal(alpha), dualnum.FromReal(beta))
}

// NewBetaDual builds a Beta variant from dual shape parameters.
func NewBetaDual(alpha, beta dual.Number) (*Beta, error) {
	if alpha.Real <= 0 {
		return nil, &ConstructionError{Family: FamilyBeta, Param: "alpha", Value: alpha.Real, Wrapped: ErrDomain}
	}
	if beta.Real <= 0 {
		return nil, &ConstructionError{Family: FamilyBeta, Param: "beta", Value: beta.Real, Wrapped: ErrDomain}
	}
	return &Beta{
		alpha:    alpha,
		beta:     beta,
		delegate: distuv.Beta{Alpha: alpha.Real, Beta: beta.Real},
	}, nil
}

func (b *Beta) Family() Family { return FamilyBeta }
func (*Beta) isVariant()       {}

func (b *Beta) inSupport(x float64) bool { return x > 0 && x < 1 }
func (b *Beta) prob(x float64) float64   { return b.delegate.Prob(x) }
func (b *Beta) logProb(x float64) float64 {
	return b.delegate.LogProb(x)
}
func (b *Beta) rand() float64 { return b.delegate.Rand() }

// x^(alpha-1) (1-x)^(beta-1) / B(alpha, beta)
func (b *Beta) formula(x dual.Number) dual.Number {
	one := dualnum.FromReal(1)
	kernel := dual.Mul(
		dual.Pow(x, dual.Sub(b.alpha, one)),
		dual.Pow(dual.Sub(one, x), dual.Sub(b.beta, one)),
	)
	return dualnum.Div(kernel, dualnum.Beta(b.alpha, b.beta))
}
