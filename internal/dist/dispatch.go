package dist

import (
	"gonum.org/v1/gonum/num/dual"

	"github.com/san-kum/dualdist/internal/dualnum"
	"github.com/san-kum/dualdist/internal/point"
)

// Density evaluates the probability density of v at p.
//
// Plain real points route to the real-valued delegate; dual points route to
// the variant's closed-form formula, which is the only path that can carry
// infinitesimal components through to the result. For any real x the two
// paths agree on the real part to within floating-point tolerance.
//
// Points outside the family's support yield a zero density, not an error.
// The result is always returned in dual form; real-path results carry a zero
// infinitesimal part.
func Density(v Variant, p point.Point) (dual.Number, error) {
	switch p := p.(type) {
	case point.Real:
		sv, ok := v.(scalarVariant)
		if !ok {
			return dual.Number{}, ErrPointShape
		}
		if !sv.inSupport(float64(p)) {
			return dual.Number{}, nil
		}
		return dualnum.FromReal(sv.prob(float64(p))), nil

	case point.Dual:
		sv, ok := v.(scalarVariant)
		if !ok {
			return dual.Number{}, ErrPointShape
		}
		x := dual.Number(p)
		if !sv.inSupport(x.Real) {
			return dual.Number{}, nil
		}
		res := sv.formula(x)
		if !dualnum.IsValid(res) {
			return res, ErrNumericDegeneracy
		}
		return res, nil

	case point.RealVec:
		vv, ok := v.(vectorVariant)
		if !ok {
			return dual.Number{}, ErrPointShape
		}
		if len(p) != vv.dim() {
			return dual.Number{}, ErrDimensionMismatch
		}
		return dualnum.FromReal(vv.probVec(p)), nil

	case point.DualVec:
		vv, ok := v.(vectorVariant)
		if !ok {
			return dual.Number{}, ErrPointShape
		}
		if len(p) != vv.dim() {
			return dual.Number{}, ErrDimensionMismatch
		}
		res := vv.formulaVec(p)
		if !dualnum.IsValid(res) {
			return res, ErrNumericDegeneracy
		}
		return res, nil
	}
	return dual.Number{}, ErrPointShape
}

// LogDensity evaluates the log-density of v at a plain real point by
// delegation. Dual points are rejected: gradients are taken through Density,
// not LogDensity.
func LogDensity(v Variant, p point.Point) (float64, error) {
	switch p := p.(type) {
	case point.Real:
		sv, ok := v.(scalarVariant)
		if !ok {
			return 0, ErrPointShape
		}
		return sv.logProb(float64(p)), nil
	case point.RealVec:
		vv, ok := v.(vectorVariant)
		if !ok {
			return 0, ErrPointShape
		}
		if len(p) != vv.dim() {
			return 0, ErrDimensionMismatch
		}
		return vv.logProbVec(p), nil
	case point.Dual, point.DualVec:
		return 0, ErrDualLogDensity
	}
	return 0, ErrPointShape
}

// Sample draws one plain-real observation from v via the delegate.
func Sample(v Variant) point.Point {
	if sv, ok := v.(scalarVariant); ok {
		return point.Real(sv.rand())
	}
	return point.RealVec(v.(vectorVariant).randVec())
}
