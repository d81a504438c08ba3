// Package dualnum provides the helpers the density formulas need on top of
// the forward-mode dual arithmetic in [gonum.org/v1/gonum/num/dual].
//
// The dual primitive itself is not reimplemented here: a [dual.Number] carries
// a real part and an infinitesimal part, and evaluating a real-analytic
// formula at a number seeded with unit infinitesimal yields (f(x), f'(x)) in
// the result's (Real, Emag) components. This package only adds the promotion
// boundary, division, reciprocal powers, and the gamma-family normalizers
// that the distribution catalog uses.
package dualnum

import (
	"math"

	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/num/dual"
)

// FromReal promotes a plain real to a dual number with zero infinitesimal
// part. Every construction boundary that accepts plain reals goes through
// this; there is no implicit conversion anywhere else.
func FromReal(x float64) dual.Number {
	return dual.Number{Real: x}
}

// FromReals promotes a real vector component-wise.
func FromReals(xs []float64) []dual.Number {
	ds := make([]dual.Number, len(xs))
	for i, x := range xs {
		ds[i] = dual.Number{Real: x}
	}
	return ds
}

// Reals extracts the real parts of a dual vector.
func Reals(ds []dual.Number) []float64 {
	xs := make([]float64, len(ds))
	for i, d := range ds {
		xs[i] = d.Real
	}
	return xs
}

// Scale returns d scaled by the real constant f.
func Scale(f float64, d dual.Number) dual.Number {
	return dual.Number{Real: f * d.Real, Emag: f * d.Emag}
}

// Div returns x/y.
func Div(x, y dual.Number) dual.Number {
	return dual.Mul(x, dual.Inv(y))
}

// InvPow returns 1/d^p for p > 0.
//
// Negative exponents must never be handed to the power functions directly:
// raising a dual with zero infinitesimal part to a negative power hits the
// special-case handling in the underlying arithmetic and yields NaN
// components. Writing x^-p as the reciprocal of x^p avoids that entirely.
func InvPow(d dual.Number, p float64) dual.Number {
	return dual.Inv(dual.PowReal(d, p))
}

// InvPowDual returns 1/d^p for a dual exponent p with positive real part.
func InvPowDual(d, p dual.Number) dual.Number {
	return dual.Inv(dual.Pow(d, p))
}

// Gamma returns the gamma function of d with its exact first derivative,
// d/dx Γ(x) = Γ(x)ψ(x), carried in the infinitesimal part.
func Gamma(d dual.Number) dual.Number {
	g := math.Gamma(d.Real)
	return dual.Number{Real: g, Emag: d.Emag * g * mathext.Digamma(d.Real)}
}

// Beta returns the beta function B(a, b) = Γ(a)Γ(b)/Γ(a+b) on duals.
func Beta(a, b dual.Number) dual.Number {
	return Div(dual.Mul(Gamma(a), Gamma(b)), Gamma(dual.Add(a, b)))
}

// IsValid reports whether both components of d are finite.
func IsValid(d dual.Number) bool {
	return !math.IsNaN(d.Real) && !math.IsInf(d.Real, 0) &&
		!math.IsNaN(d.Emag) && !math.IsInf(d.Emag, 0)
}
