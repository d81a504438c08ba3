package dist

import (
	"math"

	"gonum.org/v1/gonum/num/dual"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/san-kum/dualdist/internal/dualnum"
)

// StudentsT is the standard Student's t distribution with nu degrees of
// freedom (location 0, scale 1).
type StudentsT struct {
	nu       dual.Number
	delegate distuv.StudentsT
}

// NewStudentsT builds a Student's t variant from a plain real nu.
func NewStudentsT(nu float64) (*StudentsT, error) {
	return NewStudentsTDual(dualnum.FromReal(nu))
}

// NewStudentsTDual builds a Student's t variant from a dual nu. The
// gamma-function normalizing constant is evaluated on the dual parameter, so
// a seed on nu is carried exactly through the digamma term.
func NewStudentsTDual(nu dual.Number) (*StudentsT, error) {
	if nu.Real <= 0 {
		return nil, &ConstructionError{Family: FamilyStudentsT, Param: "nu", Value: nu.Real, Wrapped: ErrDomain}
	}
	return &StudentsT{
		nu:       nu,
		delegate: distuv.StudentsT{Mu: 0, Sigma: 1, Nu: nu.Real},
	}, nil
}

func (s *StudentsT) Family() Family { return FamilyStudentsT }
func (*StudentsT) isVariant()       {}

func (s *StudentsT) inSupport(float64) bool    { return true }
func (s *StudentsT) prob(x float64) float64    { return s.delegate.Prob(x) }
func (s *StudentsT) logProb(x float64) float64 { return s.delegate.LogProb(x) }
func (s *StudentsT) rand() float64             { return s.delegate.Rand() }

// Gamma((nu+1)/2) / (sqrt(nu pi) Gamma(nu/2)) * (1 + x^2/nu)^-((nu+1)/2).
// The negative power is a reciprocal of a positive power.
func (s *StudentsT) formula(x dual.Number) dual.Number {
	one := dualnum.FromReal(1)
	halfNup1 := dualnum.Scale(0.5, dual.Add(s.nu, one))
	c := dualnum.Div(
		dualnum.Gamma(halfNup1),
		dual.Mul(dual.Sqrt(dualnum.Scale(math.Pi, s.nu)), dualnum.Gamma(dualnum.Scale(0.5, s.nu))),
	)
	base := dual.Add(one, dualnum.Div(dual.Mul(x, x), s.nu))
	return dual.Mul(c, dualnum.InvPowDual(base, halfNup1))
}
