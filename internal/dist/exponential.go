package dist

import (
	"gonum.org/v1/gonum/num/dual"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/san-kum/dualdist/internal/dualnum"
)

// Exponential is the exponential distribution with scale theta (mean theta,
// rate 1/theta).
type Exponential struct {
	theta    dual.Number
	delegate distuv.Exponential
}

// NewExponential builds an Exponential variant from a plain real scale.
func NewExponential(theta float64) (*Exponential, error) {
	return NewExponentialDual(dualnum.FromReal(theta))
}

// NewExponentialDual builds an Exponential variant from a dual scale.
func NewExponentialDual(theta dual.Number) (*Exponential, error) {
	if theta.Real <= 0 {
		return nil, &ConstructionError{Family: FamilyExponential, Param: "theta", Value: theta.Real, Wrapped: ErrDomain}
	}
	return &Exponential{
		theta:    theta,
		delegate: distuv.Exponential{Rate: 1 / theta.Real},
	}, nil
}

func (e *Exponential) Family() Family { return FamilyExponential }
func (*Exponential) isVariant()       {}

func (e *Exponential) inSupport(x float64) bool { return x >= 0 }
func (e *Exponential) prob(x float64) float64   { return e.delegate.Prob(x) }
func (e *Exponential) logProb(x float64) float64 {
	return e.delegate.LogProb(x)
}
func (e *Exponential) rand() float64 { return e.delegate.Rand() }

// exp(-x/theta) / theta
func (e *Exponential) formula(x dual.Number) dual.Number {
	return dualnum.Div(dual.Exp(dualnum.Scale(-1, dualnum.Div(x, e.theta))), e.theta)
}
