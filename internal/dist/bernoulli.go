package dist

import (
	"gonum.org/v1/gonum/num/dual"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/san-kum/dualdist/internal/dualnum"
)

// Bernoulli is the two-point distribution on {0, 1} with success
// probability p.
type Bernoulli struct {
	p        dual.Number
	delegate distuv.Bernoulli
}

// NewBernoulli builds a Bernoulli variant from a plain real success
// probability.
func NewBernoulli(p float64) (*Bernoulli, error) {
	return NewBernoulliDual(dualnum.FromReal(p))
}

// NewBernoulliDual builds a Bernoulli variant from a dual success
// probability. An infinitesimal seed on p survives construction, so the
// density can be differentiated with respect to the parameter.
// The probability must lie strictly inside (0, 1); at either endpoint the
// density formula degenerates to 0^0 terms.
func NewBernoulliDual(p dual.Number) (*Bernoulli, error) {
	if p.Real <= 0 || p.Real >= 1 {
		return nil, &ConstructionError{Family: FamilyBernoulli, Param: "p", Value: p.Real, Wrapped: ErrDomain}
	}
	return &Bernoulli{p: p, delegate: distuv.Bernoulli{P: p.Real}}, nil
}

func (b *Bernoulli) Family() Family { return FamilyBernoulli }
func (*Bernoulli) isVariant()       {}

func (b *Bernoulli) inSupport(x float64) bool { return x == 0 || x == 1 }
func (b *Bernoulli) prob(x float64) float64   { return b.delegate.Prob(x) }
func (b *Bernoulli) logProb(x float64) float64 {
	return b.delegate.LogProb(x)
}
func (b *Bernoulli) rand() float64 { return b.delegate.Rand() }

// p^k (1-p)^(1-k). Both factors go through the dual power so a seed on
// either k or p reaches the result.
func (b *Bernoulli) formula(k dual.Number) dual.Number {
	one := dualnum.FromReal(1)
	return dual.Mul(
		dual.Pow(b.p, k),
		dual.Pow(dual.Sub(one, b.p), dual.Sub(one, k)),
	)
}
