// Package check cross-validates dual-number gradients against central finite
// differences. It exists as a diagnostic: a large relative error at an
// interior point indicates a formula bug, not a transient condition.
package check

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"

	"github.com/san-kum/dualdist/internal/dist"
	"github.com/san-kum/dualdist/internal/grad"
	"github.com/san-kum/dualdist/internal/point"
)

// DefaultStep is the finite-difference half-step.
const DefaultStep = 1e-6

// Result compares the dual gradient with its finite-difference approximation
// at one point.
type Result struct {
	X       float64
	Dual    float64
	Central float64
	RelErr  float64
}

// Gradient evaluates the dual gradient and a central finite difference of a
// univariate variant at each point of xs.
func Gradient(v dist.Variant, xs []float64, step float64) ([]Result, error) {
	if step <= 0 {
		step = DefaultStep
	}
	results := make([]Result, len(xs))
	for i, x := range xs {
		dg, err := grad.Scalar(v, x)
		if err != nil {
			return nil, err
		}
		fd, err := central(v, x, step)
		if err != nil {
			return nil, err
		}
		results[i] = Result{X: x, Dual: dg, Central: fd, RelErr: relErr(dg, fd)}
	}
	return results, nil
}

// GradientVec compares every partial of a vector variant's gradient at x.
func GradientVec(v dist.Variant, x []float64, step float64) ([]Result, error) {
	if step <= 0 {
		step = DefaultStep
	}
	dg, err := grad.Vector(v, x)
	if err != nil {
		return nil, err
	}
	results := make([]Result, len(x))
	for i := range x {
		fd, err := centralVec(v, x, i, step)
		if err != nil {
			return nil, err
		}
		results[i] = Result{X: x[i], Dual: dg[i], Central: fd, RelErr: relErr(dg[i], fd)}
	}
	return results, nil
}

// MaxRelErr returns the largest relative error over results.
func MaxRelErr(results []Result) float64 {
	max := 0.0
	for _, r := range results {
		if r.RelErr > max {
			max = r.RelErr
		}
	}
	return max
}

// central differentiates the real-path density with fd.Central. An initial
// evaluation surfaces shape errors that fd's closure cannot report.
func central(v dist.Variant, x, h float64) (float64, error) {
	if _, err := dist.Density(v, point.Real(x)); err != nil {
		return 0, err
	}
	f := func(t float64) float64 {
		d, _ := dist.Density(v, point.Real(t))
		return d.Real
	}
	return fd.Derivative(f, x, &fd.Settings{Formula: fd.Central, Step: h}), nil
}

func centralVec(v dist.Variant, x []float64, i int, h float64) (float64, error) {
	if _, err := dist.Density(v, point.RealVec(x)); err != nil {
		return 0, err
	}
	shifted := make([]float64, len(x))
	copy(shifted, x)
	f := func(t float64) float64 {
		shifted[i] = t
		d, _ := dist.Density(v, point.RealVec(shifted))
		return d.Real
	}
	return fd.Derivative(f, x[i], &fd.Settings{Formula: fd.Central, Step: h}), nil
}

func relErr(a, b float64) float64 {
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale < 1e-12 {
		return diff
	}
	return diff / scale
}
