package grad

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/dual"

	"github.com/san-kum/dualdist/internal/dist"
	"github.com/san-kum/dualdist/internal/dualnum"
	"github.com/san-kum/dualdist/internal/point"
)

func must[V dist.Variant](v V, err error) V {
	if err != nil {
		panic(err)
	}
	return v
}

func centralDiff(t *testing.T, v dist.Variant, x, h float64) float64 {
	t.Helper()
	hi, err := dist.Density(v, point.Real(x+h))
	if err != nil {
		t.Fatal(err)
	}
	lo, err := dist.Density(v, point.Real(x-h))
	if err != nil {
		t.Fatal(err)
	}
	return (hi.Real - lo.Real) / (2 * h)
}

func relDiff(a, b float64) float64 {
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale < 1e-9 {
		return diff
	}
	return diff / scale
}

func TestScalarMatchesFiniteDifference(t *testing.T) {
	tests := []struct {
		name string
		v    dist.Variant
		xs   []float64
	}{
		{"normal", must(dist.NewNormal(0.5, 1.2)), []float64{-1, 0, 0.5, 2}},
		{"student_t", must(dist.NewStudentsT(5)), []float64{-2, -0.5, 0.5, 2}},
		{"exponential", must(dist.NewExponential(1.5)), []float64{0.2, 1, 3}},
		{"gamma", must(dist.NewGamma(2.5, 1.2)), []float64{0.5, 1.5, 4}},
		{"inverse_gamma", must(dist.NewInverseGamma(3, 2)), []float64{0.4, 0.8, 1.5}},
		{"beta", must(dist.NewBeta(2, 3.5)), []float64{0.2, 0.5, 0.8}},
	}

	for _, tc := range tests {
		for _, x := range tc.xs {
			got, err := Scalar(tc.v, x)
			if err != nil {
				t.Fatalf("%s at %g: %v", tc.name, x, err)
			}
			fd := centralDiff(t, tc.v, x, 1e-6)
			if relDiff(got, fd) > 1e-4 {
				t.Errorf("%s at x=%g: dual %.10g, finite difference %.10g", tc.name, x, got, fd)
			}
		}
	}
}

func TestNormalGradientAnalytic(t *testing.T) {
	// d/dx N(x; mu, sigma) = -density * (x-mu)/sigma^2
	v := must(dist.NewNormal(1, 2))
	for _, x := range []float64{-1, 0, 1, 2.5} {
		d, err := dist.Density(v, point.Real(x))
		if err != nil {
			t.Fatal(err)
		}
		want := -d.Real * (x - 1) / 4
		got, err := Scalar(v, x)
		if err != nil {
			t.Fatal(err)
		}
		if relDiff(got, want) > 1e-12 {
			t.Errorf("x=%g: got %.15g, want %.15g", x, got, want)
		}
	}
}

func TestBetaUniformGradientZero(t *testing.T) {
	v := must(dist.NewBeta(1, 1))
	for _, x := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		got, err := Scalar(v, x)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got) > 1e-12 {
			t.Errorf("Beta(1,1) gradient at %g: expected 0, got %g", x, got)
		}
	}
}

func TestBernoulliParamGradient(t *testing.T) {
	v, err := dist.NewBernoulliDual(dual.Number{Real: 0.3, Emag: 1})
	if err != nil {
		t.Fatal(err)
	}

	at1, err := Param(v, 1)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(at1-1) > 1e-9 {
		t.Errorf("d(density)/dp at k=1: expected 1, got %.12g", at1)
	}

	at0, err := Param(v, 0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(at0+1) > 1e-9 {
		t.Errorf("d(density)/dp at k=0: expected -1, got %.12g", at0)
	}
}

func TestStudentsTNuGradient(t *testing.T) {
	// Seed nu and compare against a finite difference over nu.
	nu := 4.0
	seeded, err := dist.NewStudentsTDual(dual.Number{Real: nu, Emag: 1})
	if err != nil {
		t.Fatal(err)
	}
	x := 0.7
	got, err := Param(seeded, x)
	if err != nil {
		t.Fatal(err)
	}

	h := 1e-6
	hi := must(dist.NewStudentsT(nu + h))
	lo := must(dist.NewStudentsT(nu - h))
	dhi, err := dist.Density(hi, point.Real(x))
	if err != nil {
		t.Fatal(err)
	}
	dlo, err := dist.Density(lo, point.Real(x))
	if err != nil {
		t.Fatal(err)
	}
	fd := (dhi.Real - dlo.Real) / (2 * h)
	if relDiff(got, fd) > 1e-4 {
		t.Errorf("d(density)/dnu: dual %.10g, finite difference %.10g", got, fd)
	}
}

func TestVectorGradientDimensionality(t *testing.T) {
	v := must(dist.NewMultivariateNormal(
		[]float64{0, 0, 0},
		mat.NewSymDense(3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}),
	))
	x := []float64{0.3, -0.2, 0.5}

	g, err := Vector(v, x)
	if err != nil {
		t.Fatal(err)
	}
	if len(g) != 3 {
		t.Fatalf("expected 3 partials, got %d", len(g))
	}

	// Identity covariance: gradient is -density * (x - mu).
	d, err := dist.Density(v, point.RealVec(x))
	if err != nil {
		t.Fatal(err)
	}
	for i := range x {
		want := -d.Real * x[i]
		if relDiff(g[i], want) > 1e-12 {
			t.Errorf("partial %d: got %.15g, want %.15g", i, g[i], want)
		}
	}

	// And each partial against a central finite difference.
	h := 1e-6
	for i := range x {
		shifted := append([]float64(nil), x...)
		shifted[i] = x[i] + h
		hi, err := dist.Density(v, point.RealVec(shifted))
		if err != nil {
			t.Fatal(err)
		}
		shifted[i] = x[i] - h
		lo, err := dist.Density(v, point.RealVec(shifted))
		if err != nil {
			t.Fatal(err)
		}
		fd := (hi.Real - lo.Real) / (2 * h)
		if relDiff(g[i], fd) > 1e-4 {
			t.Errorf("partial %d: dual %.10g, finite difference %.10g", i, g[i], fd)
		}
	}
}

func TestVectorParallelMatchesSequential(t *testing.T) {
	v := must(dist.NewMultivariateNormal(
		[]float64{0.5, -0.5},
		mat.NewSymDense(2, []float64{1, 0.8, 0.8, 1}),
	))
	x := []float64{1.2, 0.3}

	seq, err := Vector(v, x)
	if err != nil {
		t.Fatal(err)
	}
	par, err := VectorParallel(v, x)
	if err != nil {
		t.Fatal(err)
	}
	for i := range seq {
		if seq[i] != par[i] {
			t.Errorf("partial %d: sequential %.15g, parallel %.15g", i, seq[i], par[i])
		}
	}
}

func TestParamVecMeanGradient(t *testing.T) {
	// Seed mu[0] of a 2d normal and compare against a finite difference.
	sigma := mat.NewSymDense(2, []float64{1, 0.3, 0.3, 1})
	mu := []dual.Number{{Real: 0.5, Emag: 1}, dualnum.FromReal(-0.5)}
	v, err := dist.NewMultivariateNormalDual(mu, sigma)
	if err != nil {
		t.Fatal(err)
	}
	x := []float64{1, 0}

	got, err := ParamVec(v, x)
	if err != nil {
		t.Fatal(err)
	}

	h := 1e-6
	hi := must(dist.NewMultivariateNormal([]float64{0.5 + h, -0.5}, sigma))
	lo := must(dist.NewMultivariateNormal([]float64{0.5 - h, -0.5}, sigma))
	dhi, err := dist.Density(hi, point.RealVec(x))
	if err != nil {
		t.Fatal(err)
	}
	dlo, err := dist.Density(lo, point.RealVec(x))
	if err != nil {
		t.Fatal(err)
	}
	fd := (dhi.Real - dlo.Real) / (2 * h)
	if relDiff(got, fd) > 1e-4 {
		t.Errorf("d(density)/dmu0: dual %.10g, finite difference %.10g", got, fd)
	}
}
