package dist

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/dual"
	"gonum.org/v1/gonum/stat/distmv"

	"github.com/san-kum/dualdist/internal/dualnum"
)

// MultivariateNormal is the Gaussian distribution on R^n with mean vector mu
// and covariance matrix sigma. The inverse and determinant of sigma are
// computed once at construction, real-valued, and reused by every dual
// evaluation; gradients with respect to the covariance are therefore not
// carried.
type MultivariateNormal struct {
	mu    []dual.Number
	sigma []dual.Number // row-major n×n copy of the covariance entries

	prec      *mat.SymDense // sigma^-1
	normCoeff float64       // 1 / sqrt((2 pi)^n det sigma)
	delegate  *distmv.Normal
}

// NewMultivariateNormal builds a variant from a plain real mean and a
// covariance matrix.
func NewMultivariateNormal(mu []float64, sigma *mat.SymDense) (*MultivariateNormal, error) {
	return NewMultivariateNormalDual(dualnum.FromReals(mu), sigma)
}

// NewMultivariateNormalDual builds a variant from a dual mean vector. The
// covariance stays a real matrix at the boundary; its entries are promoted
// for storage like every other parameter.
func NewMultivariateNormalDual(mu []dual.Number, sigma *mat.SymDense) (*MultivariateNormal, error) {
	n := len(mu)
	if n == 0 || sigma == nil {
		return nil, &ConstructionError{Family: FamilyMultivariateNormal, Param: "mu", Value: 0, Wrapped: ErrDimensionMismatch}
	}
	if r, _ := sigma.Dims(); r != n {
		return nil, &ConstructionError{Family: FamilyMultivariateNormal, Param: "sigma", Value: float64(r), Wrapped: ErrDimensionMismatch}
	}

	delegate, ok := distmv.NewNormal(dualnum.Reals(mu), sigma, nil)
	if !ok {
		return nil, &ConstructionError{Family: FamilyMultivariateNormal, Param: "sigma", Value: 0, Wrapped: ErrNotPositiveDefinite}
	}

	var chol mat.Cholesky
	if !chol.Factorize(sigma) {
		return nil, &ConstructionError{Family: FamilyMultivariateNormal, Param: "sigma", Value: 0, Wrapped: ErrNotPositiveDefinite}
	}
	var prec mat.SymDense
	if err := chol.InverseTo(&prec); err != nil {
		return nil, &ConstructionError{Family: FamilyMultivariateNormal, Param: "sigma", Value: 0, Wrapped: err}
	}

	stored := make([]dual.Number, len(mu))
	copy(stored, mu)
	sigmaDual := make([]dual.Number, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sigmaDual = append(sigmaDual, dualnum.FromReal(sigma.At(i, j)))
		}
	}

	return &MultivariateNormal{
		mu:        stored,
		sigma:     sigmaDual,
		prec:      &prec,
		normCoeff: 1 / math.Sqrt(math.Pow(2*math.Pi, float64(n))*chol.Det()),
		delegate:  delegate,
	}, nil
}

func (m *MultivariateNormal) Family() Family { return FamilyMultivariateNormal }
func (*MultivariateNormal) isVariant()       {}

func (m *MultivariateNormal) dim() int                       { return len(m.mu) }
func (m *MultivariateNormal) probVec(x []float64) float64    { return m.delegate.Prob(x) }
func (m *MultivariateNormal) logProbVec(x []float64) float64 { return m.delegate.LogProb(x) }
func (m *MultivariateNormal) randVec() []float64             { return m.delegate.Rand(nil) }

// exp(-(x-mu)' sigma^-1 (x-mu) / 2) / sqrt((2 pi)^n det sigma), with the
// precision matrix and determinant fixed at construction.
func (m *MultivariateNormal) formulaVec(x []dual.Number) dual.Number {
	n := len(m.mu)
	diff := make([]dual.Number, n)
	for i := range diff {
		diff[i] = dual.Sub(x[i], m.mu[i])
	}
	var quad dual.Number
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			quad = dual.Add(quad, dualnum.Scale(m.prec.At(i, j), dual.Mul(diff[i], diff[j])))
		}
	}
	return dualnum.Scale(m.normCoeff, dual.Exp(dualnum.Scale(-0.5, quad)))
}
