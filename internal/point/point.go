// Package point defines the evaluation points accepted by the density
// dispatch: a closed tagged union over real and dual, scalar and vector
// forms. Dispatch pattern-matches on the concrete type rather than probing
// values ad hoc, so adding a form is a compile-visible change.
package point

import "gonum.org/v1/gonum/num/dual"

// Point is one of [Real], [Dual], [RealVec] or [DualVec]. The set is closed.
type Point interface {
	isPoint()
}

// Real is a plain real scalar evaluation point.
type Real float64

// Dual is a dual-valued scalar evaluation point. A Dual with zero
// infinitesimal part is still dual-kind: it routes to the closed-form
// formula, not the delegate, which is what lets parameter infinitesimals
// seeded at construction flow through to the result.
type Dual dual.Number

// RealVec is a plain real vector evaluation point.
type RealVec []float64

// DualVec is a dual-valued vector evaluation point.
type DualVec []dual.Number

func (Real) isPoint()    {}
func (Dual) isPoint()    {}
func (RealVec) isPoint() {}
func (DualVec) isPoint() {}

// Reals returns the real parts of v.
func (v DualVec) Reals() []float64 {
	xs := make([]float64, len(v))
	for i, d := range v {
		xs[i] = d.Real
	}
	return xs
}

// SeedScalar wraps x as a dual with unit infinitesimal part, so the
// infinitesimal component of a density evaluated there is d(density)/dx.
func SeedScalar(x float64) Dual {
	return Dual(dual.Number{Real: x, Emag: 1})
}

// Seed promotes x to a dual vector carrying a unit infinitesimal in
// coordinate i and zero in all others. One density evaluation per seeded
// coordinate yields one partial derivative; the i loop is the caller's.
func Seed(x []float64, i int) DualVec {
	v := make(DualVec, len(x))
	for j, xj := range x {
		v[j] = dual.Number{Real: xj}
	}
	v[i].Emag = 1
	return v
}
