package dualnum

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/num/dual"
)

func TestFromRealPromotion(t *testing.T) {
	d := FromReal(2.5)
	if d.Real != 2.5 {
		t.Errorf("expected real part 2.5, got %f", d.Real)
	}
	if d.Emag != 0 {
		t.Errorf("expected zero infinitesimal part, got %f", d.Emag)
	}

	ds := FromReals([]float64{1, -2, 3})
	if len(ds) != 3 {
		t.Fatalf("expected 3 components, got %d", len(ds))
	}
	for i, d := range ds {
		if d.Emag != 0 {
			t.Errorf("component %d: expected zero infinitesimal part, got %f", i, d.Emag)
		}
	}
	back := Reals(ds)
	if back[0] != 1 || back[1] != -2 || back[2] != 3 {
		t.Errorf("round trip mismatch: %v", back)
	}
}

func TestDiv(t *testing.T) {
	got := Div(dual.Number{Real: 6, Emag: 2}, FromReal(3))
	if math.Abs(got.Real-2) > 1e-15 {
		t.Errorf("expected real part 2, got %g", got.Real)
	}
	if math.Abs(got.Emag-2.0/3) > 1e-15 {
		t.Errorf("expected infinitesimal part 2/3, got %g", got.Emag)
	}
}

func TestScale(t *testing.T) {
	got := Scale(-2, dual.Number{Real: 3, Emag: 0.5})
	if got.Real != -6 || got.Emag != -1 {
		t.Errorf("expected (-6, -1), got (%g, %g)", got.Real, got.Emag)
	}
}

func TestInvPow(t *testing.T) {
	// d/dx x^-3 = -3 x^-4 at x=2
	got := InvPow(dual.Number{Real: 2, Emag: 1}, 3)
	if math.Abs(got.Real-0.125) > 1e-15 {
		t.Errorf("expected 1/8, got %g", got.Real)
	}
	if math.Abs(got.Emag-(-3.0/16)) > 1e-15 {
		t.Errorf("expected -3/16, got %g", got.Emag)
	}
}

func TestInvPowDual(t *testing.T) {
	got := InvPowDual(dual.Number{Real: 2, Emag: 1}, FromReal(3))
	want := InvPow(dual.Number{Real: 2, Emag: 1}, 3)
	if math.Abs(got.Real-want.Real) > 1e-12 {
		t.Errorf("real parts differ: %g vs %g", got.Real, want.Real)
	}
	if math.Abs(got.Emag-want.Emag) > 1e-12 {
		t.Errorf("infinitesimal parts differ: %g vs %g", got.Emag, want.Emag)
	}
}

func TestGammaDerivative(t *testing.T) {
	for _, x := range []float64{0.7, 1.5, 3.5, 6.0} {
		got := Gamma(dual.Number{Real: x, Emag: 1})
		if math.Abs(got.Real-math.Gamma(x)) > 1e-12*math.Gamma(x) {
			t.Errorf("x=%g: real part %g, want %g", x, got.Real, math.Gamma(x))
		}
		h := 1e-6
		fd := (math.Gamma(x+h) - math.Gamma(x-h)) / (2 * h)
		if math.Abs(got.Emag-fd) > 1e-4*math.Abs(fd) {
			t.Errorf("x=%g: derivative %g, finite difference %g", x, got.Emag, fd)
		}
	}
}

func TestBetaFunction(t *testing.T) {
	got := Beta(FromReal(1), FromReal(1))
	if math.Abs(got.Real-1) > 1e-14 {
		t.Errorf("B(1,1): expected 1, got %g", got.Real)
	}

	// B(2,3) = 1/12
	got = Beta(FromReal(2), FromReal(3))
	if math.Abs(got.Real-1.0/12) > 1e-14 {
		t.Errorf("B(2,3): expected 1/12, got %g", got.Real)
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid(dual.Number{Real: 1, Emag: -2}) {
		t.Error("finite number reported invalid")
	}
	if IsValid(dual.Number{Real: math.NaN()}) {
		t.Error("NaN real part reported valid")
	}
	if IsValid(dual.Number{Real: 1, Emag: math.Inf(1)}) {
		t.Error("infinite infinitesimal part reported valid")
	}
}
