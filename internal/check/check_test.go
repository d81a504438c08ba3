package check

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/dualdist/internal/dist"
)

func TestGradientAgreement(t *testing.T) {
	v, err := dist.NewNormal(0, 1)
	if err != nil {
		t.Fatal(err)
	}

	xs := []float64{-2, -1, -0.5, 0.5, 1, 2}
	results, err := Gradient(v, xs, DefaultStep)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(xs) {
		t.Fatalf("expected %d results, got %d", len(xs), len(results))
	}
	for _, r := range results {
		if r.RelErr > 1e-4 {
			t.Errorf("x=%g: relative error %g too large (dual %g, central %g)", r.X, r.RelErr, r.Dual, r.Central)
		}
	}
	if MaxRelErr(results) > 1e-4 {
		t.Errorf("max relative error %g too large", MaxRelErr(results))
	}
}

func TestGradientDefaultStep(t *testing.T) {
	v, err := dist.NewExponential(1)
	if err != nil {
		t.Fatal(err)
	}
	results, err := Gradient(v, []float64{0.5, 1}, 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range results {
		if r.RelErr > 1e-4 {
			t.Errorf("x=%g: relative error %g too large", r.X, r.RelErr)
		}
	}
}

func TestGradientVec(t *testing.T) {
	v, err := dist.NewMultivariateNormal(
		[]float64{0, 0},
		mat.NewSymDense(2, []float64{1, 0.5, 0.5, 1}),
	)
	if err != nil {
		t.Fatal(err)
	}

	results, err := GradientVec(v, []float64{0.4, -0.3}, DefaultStep)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for i, r := range results {
		if r.RelErr > 1e-4 {
			t.Errorf("partial %d: relative error %g too large", i, r.RelErr)
		}
	}
}

func TestRelErrZeroGradient(t *testing.T) {
	// Beta(1,1) has zero gradient everywhere; the comparison must not blow
	// up on the zero denominator.
	v, err := dist.NewBeta(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	results, err := Gradient(v, []float64{0.3, 0.7}, DefaultStep)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range results {
		if math.IsNaN(r.RelErr) || math.IsInf(r.RelErr, 0) {
			t.Errorf("x=%g: non-finite relative error", r.X)
		}
		if r.RelErr > 1e-4 {
			t.Errorf("x=%g: relative error %g too large", r.X, r.RelErr)
		}
	}
}
